package models

// SpeciesCategory separates fauna from flora
type SpeciesCategory string

const (
	CategoryAnimal SpeciesCategory = "animal"
	CategoryPlant  SpeciesCategory = "plant"
)

// ConservationStatus is the IUCN Red List category
type ConservationStatus string

const (
	StatusLeastConcern         ConservationStatus = "LC"
	StatusNearThreatened       ConservationStatus = "NT"
	StatusVulnerable           ConservationStatus = "VU"
	StatusEndangered           ConservationStatus = "EN"
	StatusCriticallyEndangered ConservationStatus = "CR"
	StatusExtinctInTheWild     ConservationStatus = "EW"
	StatusExtinct              ConservationStatus = "EX"
)

// ActivityType classifies both field observations and conservation activities.
// Values are the identifiers used by the field teams.
type ActivityType string

const (
	ActivityPopulationMonitoring ActivityType = "suivi_populations"
	ActivityAntiPoaching         ActivityType = "lutte_braconnage"
	ActivityHabitatManagement    ActivityType = "gestion_habitat"
	ActivityCommunityEngagement  ActivityType = "implication_communautes"
	ActivityRestoration          ActivityType = "restauration"
	ActivityResearch             ActivityType = "recherche"
)

// UserRole defines the user role type
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleRanger  UserRole = "ranger"
	RoleAnalyst UserRole = "analyst"
	RoleViewer  UserRole = "viewer"
)

// ActivityStatus tracks the lifecycle of a conservation activity
type ActivityStatus string

const (
	ActivityPlanned    ActivityStatus = "planned"
	ActivityInProgress ActivityStatus = "in_progress"
	ActivityCompleted  ActivityStatus = "completed"
	ActivityCancelled  ActivityStatus = "cancelled"
)

// ActivityPriority ranks conservation activities
type ActivityPriority string

const (
	PriorityLow      ActivityPriority = "low"
	PriorityMedium   ActivityPriority = "medium"
	PriorityHigh     ActivityPriority = "high"
	PriorityCritical ActivityPriority = "critical"
)

// WaterPointStatus is the operational state of a water point
type WaterPointStatus string

const (
	WaterPointActive           WaterPointStatus = "active"
	WaterPointDry              WaterPointStatus = "dry"
	WaterPointContaminated     WaterPointStatus = "contaminated"
	WaterPointUnderMaintenance WaterPointStatus = "under_maintenance"
)

// DifficultyLevel rates a patrol route
type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "easy"
	DifficultyMedium DifficultyLevel = "medium"
	DifficultyHard   DifficultyLevel = "hard"
)

// ParseSpeciesCategory reports whether s is a known category
func ParseSpeciesCategory(s string) (SpeciesCategory, bool) {
	switch c := SpeciesCategory(s); c {
	case CategoryAnimal, CategoryPlant:
		return c, true
	}
	return "", false
}

// ParseConservationStatus reports whether s is a known Red List category
func ParseConservationStatus(s string) (ConservationStatus, bool) {
	switch c := ConservationStatus(s); c {
	case StatusLeastConcern, StatusNearThreatened, StatusVulnerable, StatusEndangered,
		StatusCriticallyEndangered, StatusExtinctInTheWild, StatusExtinct:
		return c, true
	}
	return "", false
}
