package models

// FieldError is a single field-level validation failure reported upstream
type FieldError struct {
	Field   string `json:"field"`   // Name of the offending field
	Message string `json:"message"` // Human-readable message
}
