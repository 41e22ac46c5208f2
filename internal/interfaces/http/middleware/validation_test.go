package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/mallhub/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	SetupValidator()
}

func TestValidationMessages_Body(t *testing.T) {
	tooLong := strings.Repeat("x", 256)

	tests := []struct {
		name     string
		req      any
		expected map[string]any
	}{
		{
			name:     "missing name",
			req:      &dto.CreateAccountRequest{},
			expected: map[string]any{"name": []string{dto.MsgRequired}},
		},
		{
			name:     "name too long",
			req:      &dto.CreateAccountRequest{Name: &tooLong},
			expected: map[string]any{"name": []string{"Longer than maximum length 255."}},
		},
		{
			name: "missing mall parent",
			req:  &dto.CreateMallRequest{Name: new(string)},
			expected: map[string]any{
				"account_id": []string{dto.MsgRequired},
			},
		},
		{
			name: "bulk item",
			req: &dto.BulkCreateUnitsRequest{Units: []dto.CreateUnitRequest{
				{Name: new(string), MallID: new(uint)},
				{MallID: new(uint)},
			}},
			expected: map[string]any{
				"units": map[string]any{"1": map[string]any{"name": []string{dto.MsgRequired}}},
			},
		},
		{
			name:     "bulk list missing",
			req:      &dto.BulkCreateAccountsRequest{},
			expected: map[string]any{"accounts": []string{dto.MsgRequired}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(tt.req)
			require.Error(t, err)

			errs := dto.ValidationErrors{}
			FormatValidationErrors(errs, dto.LocationJSON, err)
			assert.Equal(t, tt.expected, errs[dto.LocationJSON])
		})
	}
}

func TestValidationMessages_Pagination(t *testing.T) {
	tests := []struct {
		name     string
		query    dto.ListQuery
		expected map[string]any
	}{
		{"defaults are valid", dto.DefaultListQuery(), nil},
		{"upper bound is valid", dto.ListQuery{Page: 3, PerPage: 50}, nil},
		{"page zero", dto.ListQuery{Page: 0, PerPage: 20}, map[string]any{"page": []string{dto.MsgWrongPage}}},
		{
			"per_page too large",
			dto.ListQuery{Page: 1, PerPage: 51},
			map[string]any{"per_page": []string{"Must be greater than or equal to 1 and less than or equal to 50."}},
		},
		{
			"per_page zero",
			dto.ListQuery{Page: 1, PerPage: 0},
			map[string]any{"per_page": []string{"Must be greater than or equal to 1 and less than or equal to 50."}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&tt.query)
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)

			errs := dto.ValidationErrors{}
			FormatValidationErrors(errs, dto.LocationQuery, err)
			assert.Equal(t, tt.expected, errs[dto.LocationQuery])
		})
	}
}

func TestFormatValidationErrors_TypeErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		target   any
		expected any
	}{
		{"name not a string", `{"name": 12}`, &dto.CreateAccountRequest{}, map[string]any{"name": []string{dto.MsgInvalidString}}},
		{"id not an integer", `{"name": "a", "account_id": "x"}`, &dto.CreateMallRequest{}, map[string]any{"account_id": []string{dto.MsgInvalidInteger}}},
		{"list not a list", `{"units": "x"}`, &dto.BulkCreateUnitsRequest{}, map[string]any{"units": []string{dto.MsgInvalidList}}},
		{"body not an object", `[1]`, &dto.CreateAccountRequest{}, map[string]any{"_schema": []string{dto.MsgInvalidInput}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := json.Unmarshal([]byte(tt.body), tt.target)
			require.Error(t, err)

			errs := dto.ValidationErrors{}
			FormatValidationErrors(errs, dto.LocationJSON, err)
			assert.Equal(t, tt.expected, errs[dto.LocationJSON])
		})
	}
}

func TestFormatValidationErrors_SkipsFieldsAlreadyReported(t *testing.T) {
	errs := dto.ValidationErrors{}
	errs.Add(dto.LocationJSON, []string{"name"}, dto.MsgInvalidString)

	FormatValidationErrors(errs, dto.LocationJSON, binding.Validator.ValidateStruct(&dto.CreateAccountRequest{}))

	assert.Equal(t, map[string]any{"name": []string{dto.MsgInvalidString}}, errs[dto.LocationJSON])
}

func TestNamespacePath(t *testing.T) {
	assert.Equal(t, []string{"name"}, namespacePath("CreateAccountRequest.name"))
	assert.Equal(t, []string{"malls", "2", "account_id"}, namespacePath("BulkCreateMallsRequest.malls[2].account_id"))
	assert.Equal(t, []string{"accounts"}, namespacePath("BulkCreateAccountsRequest.accounts"))
}

func TestTypeMessage(t *testing.T) {
	var name *string
	assert.Equal(t, dto.MsgInvalidString, typeMessage(reflect.TypeOf(name)))
	assert.Equal(t, dto.MsgInvalidInteger, typeMessage(reflect.TypeOf(uint(0))))
	assert.Equal(t, dto.MsgInvalidInput, typeMessage(reflect.TypeOf(struct{}{})))
}

func TestHandleValidationError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	errs := dto.ValidationErrors{}
	errs.Add(dto.LocationQuery, []string{"page"}, dto.MsgWrongPage)
	HandleValidationError(c, errs)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"errors":{"querystring":{"page":["Wrong page value! Try value > 1."]}}}`, w.Body.String())
	assert.True(t, c.IsAborted())
}

func TestHandleMalformedBody(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleMalformedBody(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"errors":{"json":["Invalid JSON body."]}}`, w.Body.String())
}
