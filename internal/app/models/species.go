package models

import "time"

// Species is a tracked animal or plant taxon
type Species struct {
	ID                  int64              `db:"id" json:"id"`
	CommonName          string             `db:"common_name" json:"common_name"`
	ScientificName      string             `db:"scientific_name" json:"scientific_name"`
	Category            SpeciesCategory    `db:"category" json:"category"`
	ConservationStatus  ConservationStatus `db:"conservation_status" json:"conservation_status"`
	Description         *string            `db:"description" json:"description"`
	HabitatDescription  *string            `db:"habitat_description" json:"habitat_description"`
	Threats             *string            `db:"threats" json:"threats"`
	ConservationActions *string            `db:"conservation_actions" json:"conservation_actions"`
	PopulationEstimate  *int               `db:"population_estimate" json:"population_estimate"`
	CreatedAt           time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time          `db:"updated_at" json:"updated_at"`
}

// SpeciesObservationCount is one row of the per-species observation breakdown
type SpeciesObservationCount struct {
	SpeciesID   int64  `db:"species_id" json:"species_id"`
	SpeciesName string `db:"species_name" json:"species_name"`
	Count       int64  `db:"count" json:"count"`
}

// SpeciesObservationSummary aggregates the observations of a single species
type SpeciesObservationSummary struct {
	TotalObservations   int64      `db:"total_observations"`
	LastObservationDate *time.Time `db:"last_observation_date"`
}
