package handler

import (
	"github.com/gin-gonic/gin"
	propertyapp "github.com/mallhub/backend/internal/application/property"
	"github.com/mallhub/backend/internal/domain/property"
	"github.com/mallhub/backend/internal/interfaces/http/dto"
)

// UnitHandler handles unit-related API endpoints
type UnitHandler struct {
	BaseHandler
	unitService *propertyapp.UnitService
}

// NewUnitHandler creates a new UnitHandler
func NewUnitHandler(unitService *propertyapp.UnitService) *UnitHandler {
	return &UnitHandler{unitService: unitService}
}

// Create godoc
// @ID           createUnit
//
//	@Summary		Create a unit
//	@Tags			units
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateUnitRequest	true	"Unit creation request"
//	@Success		201		{object}	dto.UnitResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		422		{object}	dto.ValidationErrorResponse
//	@Failure		500		{object}	dto.ErrorResponse
//	@Router			/units [post]
func (h *UnitHandler) Create(c *gin.Context) {
	var req dto.CreateUnitRequest
	if !h.BindJSON(c, &req) {
		return
	}

	unit, err := h.unitService.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dto.NewUnitResponse(unit))
}

// BulkCreate godoc
// @ID           bulkCreateUnits
//
//	@Summary		Create several units at once
//	@Description	All units are created in one transaction; if any name is taken or a mall is missing none is created.
//	@Tags			units
//	@Accept			json
//	@Param			request	body	dto.BulkCreateUnitsRequest	true	"Units to create"
//	@Success		201
//	@Failure		400	{object}	dto.ErrorResponse
//	@Failure		422	{object}	dto.ValidationErrorResponse
//	@Failure		500	{object}	dto.ErrorResponse
//	@Router			/units/bulk [post]
func (h *UnitHandler) BulkCreate(c *gin.Context) {
	var req dto.BulkCreateUnitsRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.unitService.BulkCreate(c.Request.Context(), req.ToDomain()); err != nil {
		h.HandleError(c, err)
		return
	}
	h.CreatedEmpty(c)
}

// List godoc
// @ID           listUnits
//
//	@Summary		List units
//	@Tags			units
//	@Produce		json
//	@Param			page		query		int	false	"Page number"	default(1)	minimum(1)
//	@Param			per_page	query		int	false	"Page size"		default(20)	minimum(1)	maximum(50)
//	@Success		200			{object}	dto.UnitListResponse
//	@Failure		404			{object}	dto.ErrorResponse
//	@Failure		422			{object}	dto.ValidationErrorResponse
//	@Router			/units [get]
func (h *UnitHandler) List(c *gin.Context) {
	query, ok := h.BindListQuery(c)
	if !ok {
		return
	}

	page, err := h.unitService.GetList(c.Request.Context(), query.Page, query.PerPage)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewUnitListResponse(page.Total, page.Items))
}

// Get godoc
// @ID           getUnit
//
//	@Summary		Get a unit
//	@Tags			units
//	@Produce		json
//	@Param			id	path		int	true	"Unit ID"
//	@Success		200	{object}	dto.UnitResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/units/{id} [get]
func (h *UnitHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c, property.MsgUnitNotFound)
	if !ok {
		return
	}

	unit, err := h.unitService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewUnitResponse(unit))
}

// Update godoc
// @ID           updateUnit
//
//	@Summary		Rename a unit
//	@Description	Answers 204 whether or not the unit exists.
//	@Tags			units
//	@Accept			json
//	@Param			id		path	int							true	"Unit ID"
//	@Param			request	body	dto.UpdateUnitRequest	true	"Fields to change"
//	@Success		204
//	@Failure		400	{object}	dto.ErrorResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Failure		422	{object}	dto.ValidationErrorResponse
//	@Router			/units/{id} [patch]
func (h *UnitHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c, property.MsgUnitNotFound)
	if !ok {
		return
	}
	var req dto.UpdateUnitRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if _, err := h.unitService.Update(c.Request.Context(), id, req.ToDomain()); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Delete godoc
// @ID           deleteUnit
//
//	@Summary		Delete a unit
//	@Tags			units
//	@Param			id	path	int	true	"Unit ID"
//	@Success		204
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/units/{id} [delete]
func (h *UnitHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c, property.MsgUnitNotFound)
	if !ok {
		return
	}

	if _, err := h.unitService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
