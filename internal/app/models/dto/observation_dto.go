package dto

import (
	"time"

	"github.com/wildtrack/wildlife-tracker/internal/app/models"
)

// CreateObservationRequest is the body of POST /observations. The observer is taken from the
// bearer token, never from the body.
type CreateObservationRequest struct {
	SpeciesID       int64                `json:"species_id" binding:"required,min=1" example:"1"`
	Latitude        *float64             `json:"latitude" binding:"required,min=-90,max=90" example:"11.2"`
	Longitude       *float64             `json:"longitude" binding:"required,min=-180,max=180" example:"2.1"`
	ObservationDate *time.Time           `json:"observation_date" binding:"required" example:"2025-04-23T08:30:00Z"`
	Count           *int                 `json:"count" binding:"omitempty,min=0" example:"3"`
	ActivityType    *models.ActivityType `json:"activity_type" binding:"omitempty,oneof=suivi_populations lutte_braconnage gestion_habitat implication_communautes restauration recherche"`

	Accuracy          *float64 `json:"accuracy" binding:"omitempty,min=0"`
	WeatherConditions *string  `json:"weather_conditions"`
	Temperature       *float64 `json:"temperature"`
	Humidity          *float64 `json:"humidity" binding:"omitempty,min=0,max=100"`
	BehaviorNotes     *string  `json:"behavior_notes"`
	HealthStatus      *string  `json:"health_status"`
	AgeGroup          *string  `json:"age_group"`
	Sex               *string  `json:"sex"`
	Notes             *string  `json:"notes"`
	PhotoURLs         *string  `json:"photo_urls"`
}

// ToModel builds the observation attributed to observerID. Count defaults to one.
func (r *CreateObservationRequest) ToModel(observerID int64) *models.Observation {
	return &models.Observation{
		SpeciesID:         r.SpeciesID,
		ObserverID:        observerID,
		Latitude:          valueOr(r.Latitude, 0),
		Longitude:         valueOr(r.Longitude, 0),
		ObservationDate:   valueOr(r.ObservationDate, time.Time{}).UTC(),
		Count:             valueOr(r.Count, 1),
		ActivityType:      r.ActivityType,
		Accuracy:          r.Accuracy,
		WeatherConditions: r.WeatherConditions,
		Temperature:       r.Temperature,
		Humidity:          r.Humidity,
		BehaviorNotes:     r.BehaviorNotes,
		HealthStatus:      r.HealthStatus,
		AgeGroup:          r.AgeGroup,
		Sex:               r.Sex,
		Notes:             r.Notes,
		PhotoURLs:         r.PhotoURLs,
	}
}

// UpdateObservationRequest is the body of PUT /observations/{id}
type UpdateObservationRequest struct {
	SpeciesID       *int64               `json:"species_id" binding:"omitempty,min=1"`
	Latitude        *float64             `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude       *float64             `json:"longitude" binding:"omitempty,min=-180,max=180"`
	ObservationDate *time.Time           `json:"observation_date"`
	Count           *int                 `json:"count" binding:"omitempty,min=0"`
	ActivityType    *models.ActivityType `json:"activity_type" binding:"omitempty,oneof=suivi_populations lutte_braconnage gestion_habitat implication_communautes restauration recherche"`

	Accuracy          *float64 `json:"accuracy" binding:"omitempty,min=0"`
	WeatherConditions *string  `json:"weather_conditions"`
	Temperature       *float64 `json:"temperature"`
	Humidity          *float64 `json:"humidity" binding:"omitempty,min=0,max=100"`
	BehaviorNotes     *string  `json:"behavior_notes"`
	HealthStatus      *string  `json:"health_status"`
	AgeGroup          *string  `json:"age_group"`
	Sex               *string  `json:"sex"`
	Notes             *string  `json:"notes"`
	PhotoURLs         *string  `json:"photo_urls"`
	Verified          *bool    `json:"verified"`
}

// Apply merges the request into an existing observation
func (r *UpdateObservationRequest) Apply(o *models.Observation) {
	patch(&o.SpeciesID, r.SpeciesID)
	patch(&o.Latitude, r.Latitude)
	patch(&o.Longitude, r.Longitude)
	if r.ObservationDate != nil {
		o.ObservationDate = r.ObservationDate.UTC()
	}
	patch(&o.Count, r.Count)
	patchOptional(&o.ActivityType, r.ActivityType)
	patchOptional(&o.Accuracy, r.Accuracy)
	patchOptional(&o.WeatherConditions, r.WeatherConditions)
	patchOptional(&o.Temperature, r.Temperature)
	patchOptional(&o.Humidity, r.Humidity)
	patchOptional(&o.BehaviorNotes, r.BehaviorNotes)
	patchOptional(&o.HealthStatus, r.HealthStatus)
	patchOptional(&o.AgeGroup, r.AgeGroup)
	patchOptional(&o.Sex, r.Sex)
	patchOptional(&o.Notes, r.Notes)
	patchOptional(&o.PhotoURLs, r.PhotoURLs)
	patch(&o.Verified, r.Verified)
}

// ObservationFilter narrows GET /observations and the GeoJSON export
type ObservationFilter struct {
	SpeciesID  *int64
	ObserverID *int64
	Verified   *bool
}
