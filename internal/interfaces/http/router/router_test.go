package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(gin.New())

	assert.Equal(t, "/api", r.Prefix())
	assert.Empty(t, r.registrars)
}

func TestRouterWithAPIVersion(t *testing.T) {
	r := NewRouter(gin.New(), WithAPIVersion("v2"))

	assert.Equal(t, "/api/v2", r.Prefix())
}

func TestRouterSetup(t *testing.T) {
	tests := []struct {
		name string
		opts []RouterOption
		path string
	}{
		{"unversioned", nil, "/api/test/ping"},
		{"versioned", []RouterOption{WithAPIVersion("v1")}, "/api/v1/test/ping"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := gin.New()
			group := NewDomainGroup("test", "/test").GET("/ping", func(c *gin.Context) {
				c.String(http.StatusOK, "pong")
			})
			NewRouter(engine, tt.opts...).Register(group).Setup()

			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "pong", w.Body.String())
		})
	}
}

func TestDomainGroup(t *testing.T) {
	ok := func(body string) gin.HandlerFunc {
		return func(c *gin.Context) { c.String(http.StatusOK, body) }
	}

	group := NewDomainGroup("items", "/items").
		GET("", ok("list")).
		POST("", ok("create")).
		PATCH("/:id", ok("update")).
		DELETE("/:id", ok("delete")).
		Use(func(c *gin.Context) {
			c.Header("X-Group", "items")
			c.Next()
		})

	assert.Equal(t, "items", group.Name())
	assert.Equal(t, "/items", group.Prefix())

	engine := gin.New()
	NewRouter(engine).Register(group).Setup()

	tests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/api/items", "list"},
		{http.MethodPost, "/api/items", "create"},
		{http.MethodPatch, "/api/items/1", "update"},
		{http.MethodDelete, "/api/items/1", "delete"},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.body, w.Body.String())
			assert.Equal(t, "items", w.Header().Get("X-Group"))
		})
	}
}
