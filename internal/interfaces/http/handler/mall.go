package handler

import (
	"github.com/gin-gonic/gin"
	propertyapp "github.com/mallhub/backend/internal/application/property"
	"github.com/mallhub/backend/internal/domain/property"
	"github.com/mallhub/backend/internal/interfaces/http/dto"
)

// MallHandler handles mall-related API endpoints
type MallHandler struct {
	BaseHandler
	mallService *propertyapp.MallService
}

// NewMallHandler creates a new MallHandler
func NewMallHandler(mallService *propertyapp.MallService) *MallHandler {
	return &MallHandler{mallService: mallService}
}

// Create godoc
// @ID           createMall
//
//	@Summary		Create a mall
//	@Tags			malls
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateMallRequest	true	"Mall creation request"
//	@Success		201		{object}	dto.MallResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		422		{object}	dto.ValidationErrorResponse
//	@Failure		500		{object}	dto.ErrorResponse
//	@Router			/malls [post]
func (h *MallHandler) Create(c *gin.Context) {
	var req dto.CreateMallRequest
	if !h.BindJSON(c, &req) {
		return
	}

	mall, err := h.mallService.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dto.NewMallResponse(mall))
}

// BulkCreate godoc
// @ID           bulkCreateMalls
//
//	@Summary		Create several malls at once
//	@Description	All malls are created in one transaction; if any name is taken or an account is missing none is created.
//	@Tags			malls
//	@Accept			json
//	@Param			request	body	dto.BulkCreateMallsRequest	true	"Malls to create"
//	@Success		201
//	@Failure		400	{object}	dto.ErrorResponse
//	@Failure		422	{object}	dto.ValidationErrorResponse
//	@Failure		500	{object}	dto.ErrorResponse
//	@Router			/malls/bulk [post]
func (h *MallHandler) BulkCreate(c *gin.Context) {
	var req dto.BulkCreateMallsRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.mallService.BulkCreate(c.Request.Context(), req.ToDomain()); err != nil {
		h.HandleError(c, err)
		return
	}
	h.CreatedEmpty(c)
}

// List godoc
// @ID           listMalls
//
//	@Summary		List malls
//	@Tags			malls
//	@Produce		json
//	@Param			page		query		int	false	"Page number"	default(1)	minimum(1)
//	@Param			per_page	query		int	false	"Page size"		default(20)	minimum(1)	maximum(50)
//	@Success		200			{object}	dto.MallListResponse
//	@Failure		404			{object}	dto.ErrorResponse
//	@Failure		422			{object}	dto.ValidationErrorResponse
//	@Router			/malls [get]
func (h *MallHandler) List(c *gin.Context) {
	query, ok := h.BindListQuery(c)
	if !ok {
		return
	}

	page, err := h.mallService.GetList(c.Request.Context(), query.Page, query.PerPage)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewMallListResponse(page.Total, page.Items))
}

// Get godoc
// @ID           getMall
//
//	@Summary		Get a mall with its units
//	@Tags			malls
//	@Produce		json
//	@Param			id	path		int	true	"Mall ID"
//	@Success		200	{object}	dto.MallDetailResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/malls/{id} [get]
func (h *MallHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c, property.MsgMallNotFound)
	if !ok {
		return
	}

	mall, err := h.mallService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewMallDetailResponse(mall))
}

// Update godoc
// @ID           updateMall
//
//	@Summary		Rename a mall
//	@Description	Answers 204 whether or not the mall exists.
//	@Tags			malls
//	@Accept			json
//	@Param			id		path	int							true	"Mall ID"
//	@Param			request	body	dto.UpdateMallRequest	true	"Fields to change"
//	@Success		204
//	@Failure		400	{object}	dto.ErrorResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Failure		422	{object}	dto.ValidationErrorResponse
//	@Router			/malls/{id} [patch]
func (h *MallHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c, property.MsgMallNotFound)
	if !ok {
		return
	}
	var req dto.UpdateMallRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if _, err := h.mallService.Update(c.Request.Context(), id, req.ToDomain()); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Delete godoc
// @ID           deleteMall
//
//	@Summary		Delete a mall with its units
//	@Tags			malls
//	@Param			id	path	int	true	"Mall ID"
//	@Success		204
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/malls/{id} [delete]
func (h *MallHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c, property.MsgMallNotFound)
	if !ok {
		return
	}

	if _, err := h.mallService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
