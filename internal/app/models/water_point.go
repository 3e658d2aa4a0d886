package models

import "time"

// WaterPoint is a natural or artificial water source inside the park
type WaterPoint struct {
	ID        int64   `db:"id" json:"id"`
	Name      string  `db:"name" json:"name"`
	Latitude  float64 `db:"latitude" json:"latitude"`
	Longitude float64 `db:"longitude" json:"longitude"`

	WaterType *string          `db:"water_type" json:"water_type"`
	Status    WaterPointStatus `db:"status" json:"status"`
	Capacity  *float64         `db:"capacity" json:"capacity"` // liters
	Depth     *float64         `db:"depth" json:"depth"`       // meters

	PhLevel          *float64   `db:"ph_level" json:"ph_level"`
	Conductivity     *float64   `db:"conductivity" json:"conductivity"`
	LastQualityCheck *time.Time `db:"last_quality_check" json:"last_quality_check"`

	InstallationDate     *time.Time `db:"installation_date" json:"installation_date"`
	LastMaintenance      *time.Time `db:"last_maintenance" json:"last_maintenance"`
	MaintenanceFrequency *int       `db:"maintenance_frequency" json:"maintenance_frequency"` // days

	SpeciesUsage *string `db:"species_usage" json:"species_usage"`
	HumanUsage   bool    `db:"human_usage" json:"human_usage"`

	Notes     *string   `db:"notes" json:"notes"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
