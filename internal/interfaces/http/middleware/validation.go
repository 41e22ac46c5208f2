package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/mallhub/backend/internal/interfaces/http/dto"
)

var setupValidatorOnce sync.Once

// SetupValidator configures gin's validator: JSON field names in errors and
// the pagination tags pagenum and between.
func SetupValidator() {
	setupValidatorOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			}
			return name
		})
		_ = v.RegisterValidation("pagenum", validatePageNumber)
		_ = v.RegisterValidation("between", validateBetween)
	})
}

// validatePageNumber accepts page numbers starting at 1
func validatePageNumber(fl validator.FieldLevel) bool {
	return fl.Field().Int() >= 1
}

// validateBetween checks an integer against an inclusive range written as "min max"
func validateBetween(fl validator.FieldLevel) bool {
	lo, hi, err := parseBounds(fl.Param())
	if err != nil {
		return false
	}
	value := fl.Field().Int()
	return value >= lo && value <= hi
}

func parseBounds(param string) (int64, int64, error) {
	parts := strings.Fields(param)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("between expects two bounds, got %q", param)
	}
	lo, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, 0, err
	}
	hi, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, 0, err
	}
	return lo, hi, nil
}

// FormatValidationErrors adds the messages carried by err to errs under
// location. Fields that already have a message are left alone, so a type
// error is not repeated as a missing field.
func FormatValidationErrors(errs dto.ValidationErrors, location string, err error) {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		for _, fe := range fieldErrors {
			path := namespacePath(fe.Namespace())
			if hasField(errs, location, path) {
				continue
			}
			errs.Add(location, path, validationMessage(fe))
		}
		return
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		errs.Add(location, fieldPath(typeErr.Field), typeMessage(typeErr.Type))
		return
	}

	errs.Add(location, nil, dto.MsgInvalidValue)
}

// HandleValidationError answers with 422 and the collected messages
func HandleValidationError(c *gin.Context, errs dto.ValidationErrors) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, dto.NewValidationErrorResponse(errs))
}

// HandleMalformedBody answers with 400 for a body that is not JSON at all
func HandleMalformedBody(c *gin.Context) {
	errs := dto.ValidationErrors{}
	errs.Add(dto.LocationJSON, nil, dto.MsgInvalidJSON)
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewValidationErrorResponse(errs))
}

// validationMessage returns the client message for a failed tag
func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return dto.MsgRequired
	case "max":
		if fe.Kind() == reflect.String {
			return "Longer than maximum length " + fe.Param() + "."
		}
		return "Must be less than or equal to " + fe.Param() + "."
	case "pagenum":
		return dto.MsgWrongPage
	case "between":
		lo, hi, err := parseBounds(fe.Param())
		if err != nil {
			return dto.MsgInvalidValue
		}
		return fmt.Sprintf("Must be greater than or equal to %d and less than or equal to %d.", lo, hi)
	default:
		return dto.MsgInvalidValue
	}
}

// typeMessage returns the client message for a JSON value of the wrong type
func typeMessage(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return dto.MsgInvalidString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return dto.MsgInvalidInteger
	case reflect.Slice, reflect.Array:
		return dto.MsgInvalidList
	default:
		return dto.MsgInvalidInput
	}
}

// namespacePath turns "BulkCreateMallsRequest.malls[1].name" into [malls 1 name]
func namespacePath(namespace string) []string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}

	path := make([]string, 0, len(parts))
	for _, part := range parts {
		for {
			open := strings.IndexByte(part, '[')
			if open < 0 {
				break
			}
			end := strings.IndexByte(part[open:], ']')
			if end < 0 {
				break
			}
			if open > 0 {
				path = append(path, part[:open])
			}
			path = append(path, part[open+1:open+end])
			part = part[open+end+1:]
		}
		if part != "" {
			path = append(path, part)
		}
	}
	return path
}

// fieldPath splits a decoder field path; an empty one means the whole body
func fieldPath(field string) []string {
	if field == "" {
		return []string{"_schema"}
	}
	return strings.Split(field, ".")
}

func hasField(errs dto.ValidationErrors, location string, path []string) bool {
	var node any = errs[location]
	for _, key := range path {
		children, ok := node.(map[string]any)
		if !ok {
			return false
		}
		if node, ok = children[key]; !ok {
			return false
		}
	}
	return node != nil
}
