package aerr

import (
	"encoding/json"
	"errors"
	"strings"
)

// ValidationError represents an error that occurs during validation of input.
// It includes a human-readable message, the field that caused the error,
// the validation tag that failed, and an optional system error for internal use.
type ValidationError struct {
	Message  string `json:"message,omitempty"` // User-friendly error message.
	Field    string `json:"field,omitempty"`   // The input field associated with the error.
	Tag      string `json:"tag,omitempty"`     // The validation rule that was violated.
	SysError error  `json:"-"`                 // System error, not to be sent to the client.
}

// Error returns the error message.
func (ve *ValidationError) Error() string {
	return ve.Message
}

// ErrorLowercase returns the error message in lowercase.
func (ve *ValidationError) ErrorLowercase() string {
	return strings.ToLower(ve.Message)
}

// GetSysError returns the system error if present; otherwise, it returns a new error based on the message.
func (ve *ValidationError) GetSysError() error {
	if ve.SysError != nil {
		return ve.SysError
	}
	return errors.New(ve.ErrorLowercase())
}

// MarshalJSON customizes the JSON marshaling to exclude the SysError field.
func (ve *ValidationError) MarshalJSON() ([]byte, error) {
	type Alias ValidationError
	return json.Marshal(&struct {
		*Alias
	}{
		Alias: (*Alias)(ve),
	})
}

// ValidationErrors is a slice of ValidationError pointers, used to aggregate multiple validation errors.
type ValidationErrors []*ValidationError

// Add appends a new ValidationError to the slice.
func (ves *ValidationErrors) Add(ve *ValidationError) {
	*ves = append(*ves, ve)
}

// Error implements the error interface for ValidationErrors.
// It returns a concatenated message of all validation errors.
func (ves ValidationErrors) Error() string {
	var messages []string
	for _, ve := range ves {
		messages = append(messages, ve.Error())
	}
	return strings.Join(messages, "; ")
}

// MarshalJSON customizes the JSON marshaling for ValidationErrors to provide a clean error array.
func (ves ValidationErrors) MarshalJSON() ([]byte, error) {
	return json.Marshal([]*ValidationError(ves))
}
