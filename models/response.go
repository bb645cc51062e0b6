package models

// HealthCheckResponse returns the health check response
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}

// MessageResponse is the body returned for every failure and for plain
// acknowledgements
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ReportResponse is returned after a report is created or transitioned
type ReportResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Report  *Report `json:"report,omitempty"`
}
