package dto

import "time"

// APIResponse is the envelope for every JSON response except GeoJSON and file exports
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewSuccessResponse wraps data in a successful envelope
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// MessageResponse is used for endpoints that only report an outcome
type MessageResponse struct {
	Message string `json:"message" example:"Wildlife Tracker API"`
}

// HealthResponse reports service and database liveness
type HealthResponse struct {
	Status   string `json:"status" example:"healthy"`
	Database string `json:"database" example:"up"`
	Version  string `json:"version,omitempty" example:"1.0.0"`
}
