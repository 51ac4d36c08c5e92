package model

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status string `json:"status"`
}

// OperationsResponse is the body of GET /api/operations.
type OperationsResponse struct {
	Operations []string `json:"operations"`
}
