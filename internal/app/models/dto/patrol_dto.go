package dto

import (
	"time"

	"github.com/wildtrack/wildlife-tracker/internal/app/models"
)

// CreatePatrolRouteRequest is the body of POST /patrol-routes. RouteGeometry must be a GeoJSON
// LineString and Checkpoints a JSON document.
type CreatePatrolRouteRequest struct {
	Name              string                  `json:"name" binding:"required,max=200" example:"Circuit nord"`
	Description       *string                 `json:"description"`
	RouteGeometry     *string                 `json:"route_geometry" binding:"omitempty,linestring"`
	TotalDistance     *float64                `json:"total_distance" binding:"omitempty,min=0"`
	EstimatedDuration *int                    `json:"estimated_duration" binding:"omitempty,min=0"`
	DifficultyLevel   *models.DifficultyLevel `json:"difficulty_level" binding:"omitempty,oneof=easy medium hard"`
	Frequency         *string                 `json:"frequency"`
	PatrolType        *string                 `json:"patrol_type"`
	Checkpoints       *string                 `json:"checkpoints" binding:"omitempty,jsondoc"`
}

// ToModel builds a new route of medium difficulty unless stated otherwise
func (r *CreatePatrolRouteRequest) ToModel() *models.PatrolRoute {
	return &models.PatrolRoute{
		Name:              r.Name,
		Description:       r.Description,
		RouteGeometry:     r.RouteGeometry,
		TotalDistance:     r.TotalDistance,
		EstimatedDuration: r.EstimatedDuration,
		DifficultyLevel:   valueOr(r.DifficultyLevel, models.DifficultyMedium),
		Frequency:         r.Frequency,
		PatrolType:        r.PatrolType,
		Checkpoints:       r.Checkpoints,
	}
}

// UpdatePatrolRouteRequest is the body of PUT /patrol-routes/{id}
type UpdatePatrolRouteRequest struct {
	Name              *string                 `json:"name" binding:"omitempty,min=1,max=200"`
	Description       *string                 `json:"description"`
	RouteGeometry     *string                 `json:"route_geometry" binding:"omitempty,linestring"`
	TotalDistance     *float64                `json:"total_distance" binding:"omitempty,min=0"`
	EstimatedDuration *int                    `json:"estimated_duration" binding:"omitempty,min=0"`
	DifficultyLevel   *models.DifficultyLevel `json:"difficulty_level" binding:"omitempty,oneof=easy medium hard"`
	Frequency         *string                 `json:"frequency"`
	PatrolType        *string                 `json:"patrol_type"`
	Checkpoints       *string                 `json:"checkpoints" binding:"omitempty,jsondoc"`
}

// Apply merges the request into an existing route
func (r *UpdatePatrolRouteRequest) Apply(p *models.PatrolRoute) {
	patch(&p.Name, r.Name)
	patchOptional(&p.Description, r.Description)
	patchOptional(&p.RouteGeometry, r.RouteGeometry)
	patchOptional(&p.TotalDistance, r.TotalDistance)
	patchOptional(&p.EstimatedDuration, r.EstimatedDuration)
	patch(&p.DifficultyLevel, r.DifficultyLevel)
	patchOptional(&p.Frequency, r.Frequency)
	patchOptional(&p.PatrolType, r.PatrolType)
	patchOptional(&p.Checkpoints, r.Checkpoints)
}

// CreatePatrolLogRequest is the body of POST /patrol-logs. The ranger comes from the bearer token.
type CreatePatrolLogRequest struct {
	RouteID    *int64     `json:"route_id" binding:"omitempty,min=1"`
	PatrolDate *time.Time `json:"patrol_date" binding:"required"`
	StartTime  *time.Time `json:"start_time"`
	EndTime    *time.Time `json:"end_time"`

	IncidentsReported *int    `json:"incidents_reported" binding:"omitempty,min=0"`
	WildlifeSightings *int    `json:"wildlife_sightings" binding:"omitempty,min=0"`
	IllegalActivities *string `json:"illegal_activities"`
	EquipmentStatus   *string `json:"equipment_status"`

	WeatherConditions *string `json:"weather_conditions"`
	Visibility        *string `json:"visibility"`
	TerrainConditions *string `json:"terrain_conditions"`

	Summary         *string `json:"summary"`
	Recommendations *string `json:"recommendations"`
	Photos          *string `json:"photos"`
}

// ToModel builds the log attributed to rangerID
func (r *CreatePatrolLogRequest) ToModel(rangerID int64) *models.PatrolLog {
	return &models.PatrolLog{
		RouteID:           r.RouteID,
		RangerID:          rangerID,
		PatrolDate:        valueOr(r.PatrolDate, time.Time{}).UTC(),
		StartTime:         r.StartTime,
		EndTime:           r.EndTime,
		IncidentsReported: valueOr(r.IncidentsReported, 0),
		WildlifeSightings: valueOr(r.WildlifeSightings, 0),
		IllegalActivities: r.IllegalActivities,
		EquipmentStatus:   r.EquipmentStatus,
		WeatherConditions: r.WeatherConditions,
		Visibility:        r.Visibility,
		TerrainConditions: r.TerrainConditions,
		Summary:           r.Summary,
		Recommendations:   r.Recommendations,
		Photos:            r.Photos,
	}
}

// UpdatePatrolLogRequest is the body of PUT /patrol-logs/{id}
type UpdatePatrolLogRequest struct {
	RouteID    *int64     `json:"route_id" binding:"omitempty,min=1"`
	PatrolDate *time.Time `json:"patrol_date"`
	StartTime  *time.Time `json:"start_time"`
	EndTime    *time.Time `json:"end_time"`

	IncidentsReported *int    `json:"incidents_reported" binding:"omitempty,min=0"`
	WildlifeSightings *int    `json:"wildlife_sightings" binding:"omitempty,min=0"`
	IllegalActivities *string `json:"illegal_activities"`
	EquipmentStatus   *string `json:"equipment_status"`

	WeatherConditions *string `json:"weather_conditions"`
	Visibility        *string `json:"visibility"`
	TerrainConditions *string `json:"terrain_conditions"`

	Summary         *string `json:"summary"`
	Recommendations *string `json:"recommendations"`
	Photos          *string `json:"photos"`
}

// Apply merges the request into an existing log
func (r *UpdatePatrolLogRequest) Apply(l *models.PatrolLog) {
	patchOptional(&l.RouteID, r.RouteID)
	if r.PatrolDate != nil {
		l.PatrolDate = r.PatrolDate.UTC()
	}
	patchOptional(&l.StartTime, r.StartTime)
	patchOptional(&l.EndTime, r.EndTime)
	patch(&l.IncidentsReported, r.IncidentsReported)
	patch(&l.WildlifeSightings, r.WildlifeSightings)
	patchOptional(&l.IllegalActivities, r.IllegalActivities)
	patchOptional(&l.EquipmentStatus, r.EquipmentStatus)
	patchOptional(&l.WeatherConditions, r.WeatherConditions)
	patchOptional(&l.Visibility, r.Visibility)
	patchOptional(&l.TerrainConditions, r.TerrainConditions)
	patchOptional(&l.Summary, r.Summary)
	patchOptional(&l.Recommendations, r.Recommendations)
	patchOptional(&l.Photos, r.Photos)
}

// PatrolLogFilter narrows GET /patrol-logs
type PatrolLogFilter struct {
	RouteID  *int64
	RangerID *int64
}
