// Package handler implements the HTTP handlers of the mallhub API.
package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/mallhub/backend/internal/domain/shared"
	"github.com/mallhub/backend/internal/infrastructure/logger"
	"github.com/mallhub/backend/internal/interfaces/http/dto"
	"github.com/mallhub/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Created sends a 201 response with data as the body
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// CreatedEmpty sends a 201 response without a body
func (h *BaseHandler) CreatedEmpty(c *gin.Context) {
	c.Status(http.StatusCreated)
}

// Success sends a 200 response with data as the body
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// NotFound sends a 404 response with message
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, dto.NewErrorResponse(message))
}

// HandleError maps domain errors to their status and message. Anything else
// is logged with the request context and answered with a generic 500.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	if domainErr, ok := shared.AsDomainError(err); ok {
		c.JSON(dto.GetHTTPStatus(domainErr.Code), dto.NewErrorResponse(domainErr.Message))
		return
	}

	_ = c.Error(err)
	logger.L(c.Request.Context()).Error("Unhandled error",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.MsgInternalError))
}

// BindJSON decodes and validates the request body into obj. An empty body
// counts as {}. It writes the error response itself and returns false when
// the request must stop.
func (h *BaseHandler) BindJSON(c *gin.Context, obj any) bool {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, dto.NewErrorResponse(middleware.MsgBodyTooLarge))
			return false
		}
		h.HandleError(c, err)
		return false
	}
	if len(bytes.TrimSpace(data)) == 0 {
		data = []byte("{}")
	}

	errs := dto.ValidationErrors{}
	if err := json.Unmarshal(data, obj); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			middleware.HandleMalformedBody(c)
			return false
		}
		middleware.FormatValidationErrors(errs, dto.LocationJSON, err)
		if typeErr.Field == "" {
			// the body is valid JSON but not an object
			middleware.HandleValidationError(c, errs)
			return false
		}
	}

	if err := binding.Validator.ValidateStruct(obj); err != nil {
		middleware.FormatValidationErrors(errs, dto.LocationJSON, err)
	}
	if !errs.Empty() {
		middleware.HandleValidationError(c, errs)
		return false
	}
	return true
}

// BindListQuery reads page and per_page, falling back to 1 and 20
func (h *BaseHandler) BindListQuery(c *gin.Context) (dto.ListQuery, bool) {
	query := dto.DefaultListQuery()
	errs := dto.ValidationErrors{}

	readInt := func(name string, target *int) {
		raw, ok := c.GetQuery(name)
		if !ok {
			return
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			errs.Add(dto.LocationQuery, []string{name}, dto.MsgInvalidInteger)
			return
		}
		*target = value
	}
	readInt("page", &query.Page)
	readInt("per_page", &query.PerPage)

	if err := binding.Validator.ValidateStruct(&query); err != nil {
		middleware.FormatValidationErrors(errs, dto.LocationQuery, err)
	}
	if !errs.Empty() {
		middleware.HandleValidationError(c, errs)
		return query, false
	}
	return query, true
}

// parseID reads the :id path parameter. A malformed id answers 404 with
// notFound, the same as an id that does not exist.
func (h *BaseHandler) parseID(c *gin.Context, notFound string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil {
		h.NotFound(c, notFound)
		return 0, false
	}
	return uint(id), true
}
