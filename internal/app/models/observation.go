package models

import "time"

// Observation is a single field sighting of a species
type Observation struct {
	ID         int64 `db:"id" json:"id"`
	SpeciesID  int64 `db:"species_id" json:"species_id"`
	ObserverID int64 `db:"observer_id" json:"observer_id"`

	Latitude  float64  `db:"latitude" json:"latitude"`
	Longitude float64  `db:"longitude" json:"longitude"`
	Accuracy  *float64 `db:"accuracy" json:"accuracy"` // GPS accuracy in meters

	ObservationDate time.Time     `db:"observation_date" json:"observation_date"`
	Count           int           `db:"count" json:"count"`
	ActivityType    *ActivityType `db:"activity_type" json:"activity_type"`

	WeatherConditions *string  `db:"weather_conditions" json:"weather_conditions"`
	Temperature       *float64 `db:"temperature" json:"temperature"`
	Humidity          *float64 `db:"humidity" json:"humidity"`

	BehaviorNotes *string `db:"behavior_notes" json:"behavior_notes"`
	HealthStatus  *string `db:"health_status" json:"health_status"`
	AgeGroup      *string `db:"age_group" json:"age_group"`
	Sex           *string `db:"sex" json:"sex"`

	Notes     *string   `db:"notes" json:"notes"`
	PhotoURLs *string   `db:"photo_urls" json:"photo_urls"` // comma separated
	Verified  bool      `db:"verified" json:"verified"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ObservationLocation is the projection used by the map export. Coordinates and the
// species name are nullable so rows with gaps can be dropped instead of failing the scan.
type ObservationLocation struct {
	ID              int64      `db:"id"`
	SpeciesID       int64      `db:"species_id"`
	SpeciesName     *string    `db:"species_name"`
	Latitude        *float64   `db:"latitude"`
	Longitude       *float64   `db:"longitude"`
	Count           int        `db:"count"`
	ActivityType    *string    `db:"activity_type"`
	ObservationDate *time.Time `db:"observation_date"`
	Notes           *string    `db:"notes"`
}
