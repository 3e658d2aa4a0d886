package dto

import (
	"time"

	"github.com/wildtrack/wildlife-tracker/internal/app/models"
)

// CreateWaterPointRequest is the body of POST /water-points
type CreateWaterPointRequest struct {
	Name      string   `json:"name" binding:"required,max=200" example:"Mare de Bali"`
	Latitude  *float64 `json:"latitude" binding:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" binding:"required,min=-180,max=180"`

	WaterType *string                  `json:"water_type" binding:"omitempty,oneof=river lake artificial spring"`
	Status    *models.WaterPointStatus `json:"status" binding:"omitempty,oneof=active dry contaminated under_maintenance"`
	Capacity  *float64                 `json:"capacity" binding:"omitempty,min=0"`
	Depth     *float64                 `json:"depth" binding:"omitempty,min=0"`

	InstallationDate     *time.Time `json:"installation_date"`
	MaintenanceFrequency *int       `json:"maintenance_frequency" binding:"omitempty,min=1"`
	HumanUsage           *bool      `json:"human_usage"`
	Notes                *string    `json:"notes"`
}

// ToModel builds a new water point, active unless stated otherwise
func (r *CreateWaterPointRequest) ToModel() *models.WaterPoint {
	return &models.WaterPoint{
		Name:                 r.Name,
		Latitude:             valueOr(r.Latitude, 0),
		Longitude:            valueOr(r.Longitude, 0),
		WaterType:            r.WaterType,
		Status:               valueOr(r.Status, models.WaterPointActive),
		Capacity:             r.Capacity,
		Depth:                r.Depth,
		InstallationDate:     r.InstallationDate,
		MaintenanceFrequency: r.MaintenanceFrequency,
		HumanUsage:           valueOr(r.HumanUsage, false),
		Notes:                r.Notes,
	}
}

// UpdateWaterPointRequest is the body of PUT /water-points/{id}
type UpdateWaterPointRequest struct {
	Name      *string  `json:"name" binding:"omitempty,min=1,max=200"`
	Latitude  *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`

	WaterType *string                  `json:"water_type" binding:"omitempty,oneof=river lake artificial spring"`
	Status    *models.WaterPointStatus `json:"status" binding:"omitempty,oneof=active dry contaminated under_maintenance"`
	Capacity  *float64                 `json:"capacity" binding:"omitempty,min=0"`
	Depth     *float64                 `json:"depth" binding:"omitempty,min=0"`

	PhLevel          *float64   `json:"ph_level" binding:"omitempty,min=0,max=14"`
	Conductivity     *float64   `json:"conductivity" binding:"omitempty,min=0"`
	LastQualityCheck *time.Time `json:"last_quality_check"`

	LastMaintenance      *time.Time `json:"last_maintenance"`
	MaintenanceFrequency *int       `json:"maintenance_frequency" binding:"omitempty,min=1"`
	SpeciesUsage         *string    `json:"species_usage"`
	HumanUsage           *bool      `json:"human_usage"`
	Notes                *string    `json:"notes"`
}

// Apply merges the request into an existing water point
func (r *UpdateWaterPointRequest) Apply(w *models.WaterPoint) {
	patch(&w.Name, r.Name)
	patch(&w.Latitude, r.Latitude)
	patch(&w.Longitude, r.Longitude)
	patchOptional(&w.WaterType, r.WaterType)
	patch(&w.Status, r.Status)
	patchOptional(&w.Capacity, r.Capacity)
	patchOptional(&w.Depth, r.Depth)
	patchOptional(&w.PhLevel, r.PhLevel)
	patchOptional(&w.Conductivity, r.Conductivity)
	patchOptional(&w.LastQualityCheck, r.LastQualityCheck)
	patchOptional(&w.LastMaintenance, r.LastMaintenance)
	patchOptional(&w.MaintenanceFrequency, r.MaintenanceFrequency)
	patchOptional(&w.SpeciesUsage, r.SpeciesUsage)
	patch(&w.HumanUsage, r.HumanUsage)
	patchOptional(&w.Notes, r.Notes)
}

// WaterPointFilter narrows GET /water-points
type WaterPointFilter struct {
	Status *models.WaterPointStatus
}
