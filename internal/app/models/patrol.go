package models

import "time"

// PatrolRoute is a predefined ranger circuit. RouteGeometry holds a GeoJSON LineString
// and Checkpoints a JSON document, both stored as text.
type PatrolRoute struct {
	ID                int64           `db:"id" json:"id"`
	Name              string          `db:"name" json:"name"`
	Description       *string         `db:"description" json:"description"`
	RouteGeometry     *string         `db:"route_geometry" json:"route_geometry"`
	TotalDistance     *float64        `db:"total_distance" json:"total_distance"`         // km
	EstimatedDuration *int            `db:"estimated_duration" json:"estimated_duration"` // minutes
	DifficultyLevel   DifficultyLevel `db:"difficulty_level" json:"difficulty_level"`
	Frequency         *string         `db:"frequency" json:"frequency"`
	PatrolType        *string         `db:"patrol_type" json:"patrol_type"`
	Checkpoints       *string         `db:"checkpoints" json:"checkpoints"`
	CreatedAt         time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at" json:"updated_at"`
}

// PatrolLog is the report a ranger files after a patrol
type PatrolLog struct {
	ID       int64  `db:"id" json:"id"`
	RouteID  *int64 `db:"route_id" json:"route_id"`
	RangerID int64  `db:"ranger_id" json:"ranger_id"`

	PatrolDate time.Time  `db:"patrol_date" json:"patrol_date"`
	StartTime  *time.Time `db:"start_time" json:"start_time"`
	EndTime    *time.Time `db:"end_time" json:"end_time"`

	IncidentsReported int     `db:"incidents_reported" json:"incidents_reported"`
	WildlifeSightings int     `db:"wildlife_sightings" json:"wildlife_sightings"`
	IllegalActivities *string `db:"illegal_activities" json:"illegal_activities"`
	EquipmentStatus   *string `db:"equipment_status" json:"equipment_status"`

	WeatherConditions *string `db:"weather_conditions" json:"weather_conditions"`
	Visibility        *string `db:"visibility" json:"visibility"`
	TerrainConditions *string `db:"terrain_conditions" json:"terrain_conditions"`

	Summary         *string `db:"summary" json:"summary"`
	Recommendations *string `db:"recommendations" json:"recommendations"`
	Photos          *string `db:"photos" json:"photos"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
