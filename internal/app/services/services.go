package services

// Services defined in this package:
// - SpeciesService: species CRUD
// - ImportService: spreadsheet bulk import of species
// - ObservationService: field observations, attributed to the authenticated observer
// - ActivityService, WaterPointService, PatrolService: remaining entity CRUD
// - UserService, AuthService: accounts and login
// - StatsService: dashboard counts, per-species statistics and the GeoJSON map
// - ExportService: CSV/XLSX downloads
