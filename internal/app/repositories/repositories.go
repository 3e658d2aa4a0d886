package repositories

import (
	"github.com/wildtrack/wildlife-tracker/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	SpeciesRepository     *SpeciesRepository
	UserRepository        *UserRepository
	ObservationRepository *ObservationRepository
	ActivityRepository    *ActivityRepository
	WaterPointRepository  *WaterPointRepository
	PatrolRepository      *PatrolRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		SpeciesRepository:     NewSpeciesRepository(database),
		UserRepository:        NewUserRepository(database),
		ObservationRepository: NewObservationRepository(database),
		ActivityRepository:    NewActivityRepository(database),
		WaterPointRepository:  NewWaterPointRepository(database),
		PatrolRepository:      NewPatrolRepository(database),
	}
}
