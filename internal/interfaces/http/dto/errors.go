package dto

import (
	"net/http"
	"sort"
	"strings"

	"github.com/mallhub/backend/internal/domain/shared"
)

// Validation locations, used as the first key of a validation error body
const (
	LocationJSON  = "json"
	LocationQuery = "querystring"
)

// Validation messages returned to clients. They are part of the public API.
const (
	MsgRequired       = "Missing data for required field."
	MsgInvalidString  = "Not a valid string."
	MsgInvalidInteger = "Not a valid integer."
	MsgInvalidList    = "Not a valid list."
	MsgInvalidInput   = "Invalid input type."
	MsgInvalidJSON    = "Invalid JSON body."
	MsgInvalidValue   = "Invalid value."
	MsgWrongPage      = "Wrong page value! Try value > 1."
	MsgInternalError  = "Internal server error"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	shared.CodeAlreadyExists: http.StatusBadRequest,
	shared.CodeDoesNotExist:  http.StatusNotFound,
	shared.CodeValidation:    http.StatusBadRequest,
	shared.CodeAccessDenied:  http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for a domain error code.
// Unknown codes map to 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ErrorResponse is the body of every non-validation error
type ErrorResponse struct {
	Error string `json:"error" example:"Account does not exist!"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// ValidationErrors holds messages keyed by location, then by field path.
// Nested fields become nested objects, list items are keyed by their index:
//
//	{"json": {"accounts": {"0": {"name": ["Missing data for required field."]}}}}
type ValidationErrors map[string]any

// ValidationErrorResponse is the body of a 422 response
type ValidationErrorResponse struct {
	Errors ValidationErrors `json:"errors" swaggertype:"object"`
}

// Add appends message for the field at path under location. An empty path
// records the message against the location itself.
func (v ValidationErrors) Add(location string, path []string, message string) {
	if len(path) == 0 {
		msgs, _ := v[location].([]string)
		v[location] = append(msgs, message)
		return
	}

	node, ok := v[location].(map[string]any)
	if !ok {
		node = map[string]any{}
		v[location] = node
	}
	for _, key := range path[:len(path)-1] {
		child, ok := node[key].(map[string]any)
		if !ok {
			child = map[string]any{}
			node[key] = child
		}
		node = child
	}

	leaf := path[len(path)-1]
	msgs, _ := node[leaf].([]string)
	node[leaf] = append(msgs, message)
}

// Empty reports whether no message was recorded
func (v ValidationErrors) Empty() bool {
	return len(v) == 0
}

// Fields returns the dotted paths of all fields with messages, sorted.
// Handy for logging.
func (v ValidationErrors) Fields() []string {
	var fields []string
	for location, node := range v {
		collectFields(location, node, &fields)
	}
	sort.Strings(fields)
	return fields
}

func collectFields(prefix string, node any, out *[]string) {
	children, ok := node.(map[string]any)
	if !ok {
		*out = append(*out, prefix)
		return
	}
	for key, child := range children {
		collectFields(strings.Join([]string{prefix, key}, "."), child, out)
	}
}

// NewValidationErrorResponse wraps errs into a response body
func NewValidationErrorResponse(errs ValidationErrors) ValidationErrorResponse {
	return ValidationErrorResponse{Errors: errs}
}
