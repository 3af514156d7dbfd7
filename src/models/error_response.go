package models

// ErrorResponse standard error envelope
type ErrorResponse struct {
	Status  int    `json:"status"`  // HTTP status code
	Message string `json:"message"` // human-readable detail
}

// SuccessResponse envelope used by swagger annotations
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}
