package dto

import (
	"time"

	"github.com/wildtrack/wildlife-tracker/internal/app/models"
)

// CreateSpeciesRequest is the body of POST /species
type CreateSpeciesRequest struct {
	CommonName          string                    `json:"common_name" binding:"required,max=200" example:"Lion"`
	ScientificName      string                    `json:"scientific_name" binding:"required,max=200" example:"Panthera leo leo"`
	Category            models.SpeciesCategory    `json:"category" binding:"omitempty,oneof=animal plant" example:"animal"`
	ConservationStatus  models.ConservationStatus `json:"conservation_status" binding:"omitempty,oneof=LC NT VU EN CR EW EX" example:"VU"`
	Description         *string                   `json:"description"`
	HabitatDescription  *string                   `json:"habitat_description"`
	Threats             *string                   `json:"threats"`
	ConservationActions *string                   `json:"conservation_actions"`
	PopulationEstimate  *int                      `json:"population_estimate" binding:"omitempty,min=0"`
}

// ToModel applies the category and status defaults
func (r *CreateSpeciesRequest) ToModel() *models.Species {
	s := &models.Species{
		CommonName:          r.CommonName,
		ScientificName:      r.ScientificName,
		Category:            r.Category,
		ConservationStatus:  r.ConservationStatus,
		Description:         r.Description,
		HabitatDescription:  r.HabitatDescription,
		Threats:             r.Threats,
		ConservationActions: r.ConservationActions,
		PopulationEstimate:  r.PopulationEstimate,
	}
	if s.Category == "" {
		s.Category = models.CategoryAnimal
	}
	if s.ConservationStatus == "" {
		s.ConservationStatus = models.StatusLeastConcern
	}
	return s
}

// UpdateSpeciesRequest is the body of PUT /species/{id}. Absent fields are left untouched.
type UpdateSpeciesRequest struct {
	CommonName          *string                    `json:"common_name" binding:"omitempty,min=1,max=200"`
	ScientificName      *string                    `json:"scientific_name" binding:"omitempty,min=1,max=200"`
	Category            *models.SpeciesCategory    `json:"category" binding:"omitempty,oneof=animal plant"`
	ConservationStatus  *models.ConservationStatus `json:"conservation_status" binding:"omitempty,oneof=LC NT VU EN CR EW EX"`
	Description         *string                    `json:"description"`
	HabitatDescription  *string                    `json:"habitat_description"`
	Threats             *string                    `json:"threats"`
	ConservationActions *string                    `json:"conservation_actions"`
	PopulationEstimate  *int                       `json:"population_estimate" binding:"omitempty,min=0"`
}

// Apply merges the request into an existing species
func (r *UpdateSpeciesRequest) Apply(s *models.Species) {
	patch(&s.CommonName, r.CommonName)
	patch(&s.ScientificName, r.ScientificName)
	patch(&s.Category, r.Category)
	patch(&s.ConservationStatus, r.ConservationStatus)
	patchOptional(&s.Description, r.Description)
	patchOptional(&s.HabitatDescription, r.HabitatDescription)
	patchOptional(&s.Threats, r.Threats)
	patchOptional(&s.ConservationActions, r.ConservationActions)
	patchOptional(&s.PopulationEstimate, r.PopulationEstimate)
}

// SpeciesFilter narrows GET /species
type SpeciesFilter struct {
	Category           *models.SpeciesCategory
	ConservationStatus *models.ConservationStatus
}

// SpeciesStatisticsResponse is returned by GET /stats/species/{id}
type SpeciesStatisticsResponse struct {
	SpeciesID           int64      `json:"species_id" example:"1"`
	SpeciesName         string     `json:"species_name" example:"Lion"`
	TotalObservations   int64      `json:"total_observations" example:"42"`
	LastObservationDate *time.Time `json:"last_observation_date"`
	PopulationTrend     *string    `json:"population_trend"`
	ThreatLevel         *string    `json:"threat_level" example:"VU"`
}

// DashboardStatsResponse is returned by GET /stats/dashboard
type DashboardStatsResponse struct {
	TotalSpecies        int64                            `json:"total_species"`
	TotalObservations   int64                            `json:"total_observations"`
	RecentObservations  int64                            `json:"recent_observations"`
	SpeciesObservations []models.SpeciesObservationCount `json:"species_observations"`
}

// ImportResult summarises a spreadsheet import
type ImportResult struct {
	Success       bool     `json:"success"`
	ImportedCount int      `json:"imported_count"`
	SkippedCount  int      `json:"skipped_count"`
	Errors        []string `json:"errors"`
	Message       string   `json:"message"`
}
