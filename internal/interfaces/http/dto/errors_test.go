package dto

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/mallhub/backend/internal/domain/property"
	"github.com/mallhub/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{shared.CodeAlreadyExists, http.StatusBadRequest},
		{shared.CodeDoesNotExist, http.StatusNotFound},
		{shared.CodeValidation, http.StatusBadRequest},
		{shared.CodeAccessDenied, http.StatusBadRequest},
		{"UNKNOWN_CODE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestNewErrorResponse(t *testing.T) {
	body, err := json.Marshal(NewErrorResponse(property.MsgAccountNotFound))
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"Account does not exist!"}`, string(body))
}

func TestValidationErrors_Add(t *testing.T) {
	t.Run("top level field", func(t *testing.T) {
		errs := ValidationErrors{}
		errs.Add(LocationJSON, []string{"name"}, MsgRequired)

		body, err := json.Marshal(NewValidationErrorResponse(errs))
		require.NoError(t, err)
		assert.JSONEq(t, `{"errors":{"json":{"name":["Missing data for required field."]}}}`, string(body))
	})

	t.Run("nested list item", func(t *testing.T) {
		errs := ValidationErrors{}
		errs.Add(LocationJSON, []string{"malls", "1", "account_id"}, MsgRequired)
		errs.Add(LocationJSON, []string{"malls", "1", "name"}, "Longer than maximum length 255.")

		body, err := json.Marshal(NewValidationErrorResponse(errs))
		require.NoError(t, err)
		assert.JSONEq(t, `{"errors":{"json":{"malls":{"1":{
			"account_id":["Missing data for required field."],
			"name":["Longer than maximum length 255."]
		}}}}`, string(body))
	})

	t.Run("messages accumulate per field", func(t *testing.T) {
		errs := ValidationErrors{}
		errs.Add(LocationQuery, []string{"page"}, MsgInvalidInteger)
		errs.Add(LocationQuery, []string{"page"}, MsgWrongPage)

		assert.Equal(t, map[string]any{
			"page": []string{MsgInvalidInteger, MsgWrongPage},
		}, errs[LocationQuery])
	})

	t.Run("location level message", func(t *testing.T) {
		errs := ValidationErrors{}
		errs.Add(LocationJSON, nil, MsgInvalidJSON)

		assert.Equal(t, []string{MsgInvalidJSON}, errs[LocationJSON])
	})
}

func TestValidationErrors_Fields(t *testing.T) {
	errs := ValidationErrors{}
	assert.True(t, errs.Empty())

	errs.Add(LocationQuery, []string{"per_page"}, MsgInvalidInteger)
	errs.Add(LocationJSON, []string{"units", "0", "mall_id"}, MsgRequired)

	assert.False(t, errs.Empty())
	assert.Equal(t, []string{"json.units.0.mall_id", "querystring.per_page"}, errs.Fields())
}
