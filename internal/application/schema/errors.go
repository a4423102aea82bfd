// Package schema validates application data in its two strictness modes:
// in-progress (every field optional, present fields fully checked) and
// valid/completed (every field required, collection bounds enforced).
//
// Validation is exhaustive: every violated rule produces a field error,
// and errors are reported in schema declaration order, not input order.
package schema

import "strings"

// FieldError locates one violated rule. Field is a dot-separated path
// matching the JSON nesting (e.g. "primaryDriver.driversLicense.number").
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is an ordered list of field errors. It implements error so
// services can wrap it; the text form is the transport-boundary summary.
type Errors []FieldError

// Error renders the "field: message; field: message" summary in
// declaration order.
func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return strings.Join(parts, "; ")
}

func (e Errors) add(field, message string) Errors {
	return append(e, FieldError{Field: field, Message: message})
}
