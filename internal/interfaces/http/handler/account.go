package handler

import (
	"github.com/gin-gonic/gin"
	propertyapp "github.com/mallhub/backend/internal/application/property"
	"github.com/mallhub/backend/internal/domain/property"
	"github.com/mallhub/backend/internal/interfaces/http/dto"
)

// AccountHandler handles account-related API endpoints
type AccountHandler struct {
	BaseHandler
	accountService *propertyapp.AccountService
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountService *propertyapp.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// Create godoc
// @ID           createAccount
//
//	@Summary		Create an account
//	@Tags			accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateAccountRequest	true	"Account creation request"
//	@Success		201		{object}	dto.AccountResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		422		{object}	dto.ValidationErrorResponse
//	@Failure		500		{object}	dto.ErrorResponse
//	@Router			/accounts [post]
func (h *AccountHandler) Create(c *gin.Context) {
	var req dto.CreateAccountRequest
	if !h.BindJSON(c, &req) {
		return
	}

	account, err := h.accountService.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dto.NewAccountResponse(account))
}

// BulkCreate godoc
// @ID           bulkCreateAccounts
//
//	@Summary		Create several accounts at once
//	@Description	All accounts are created in one transaction; if any name is taken none is created.
//	@Tags			accounts
//	@Accept			json
//	@Param			request	body	dto.BulkCreateAccountsRequest	true	"Accounts to create"
//	@Success		201
//	@Failure		400	{object}	dto.ErrorResponse
//	@Failure		422	{object}	dto.ValidationErrorResponse
//	@Failure		500	{object}	dto.ErrorResponse
//	@Router			/accounts/bulk [post]
func (h *AccountHandler) BulkCreate(c *gin.Context) {
	var req dto.BulkCreateAccountsRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.accountService.BulkCreate(c.Request.Context(), req.ToDomain()); err != nil {
		h.HandleError(c, err)
		return
	}
	h.CreatedEmpty(c)
}

// List godoc
// @ID           listAccounts
//
//	@Summary		List accounts
//	@Tags			accounts
//	@Produce		json
//	@Param			page		query		int	false	"Page number"	default(1)	minimum(1)
//	@Param			per_page	query		int	false	"Page size"		default(20)	minimum(1)	maximum(50)
//	@Success		200			{object}	dto.AccountListResponse
//	@Failure		404			{object}	dto.ErrorResponse
//	@Failure		422			{object}	dto.ValidationErrorResponse
//	@Router			/accounts [get]
func (h *AccountHandler) List(c *gin.Context) {
	query, ok := h.BindListQuery(c)
	if !ok {
		return
	}

	page, err := h.accountService.GetList(c.Request.Context(), query.Page, query.PerPage)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewAccountListResponse(page.Total, page.Items))
}

// Get godoc
// @ID           getAccount
//
//	@Summary		Get an account with its malls
//	@Tags			accounts
//	@Produce		json
//	@Param			id	path		int	true	"Account ID"
//	@Success		200	{object}	dto.AccountDetailResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/accounts/{id} [get]
func (h *AccountHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c, property.MsgAccountNotFound)
	if !ok {
		return
	}

	account, err := h.accountService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewAccountDetailResponse(account))
}

// Update godoc
// @ID           updateAccount
//
//	@Summary		Rename an account
//	@Description	Answers 204 whether or not the account exists.
//	@Tags			accounts
//	@Accept			json
//	@Param			id		path	int							true	"Account ID"
//	@Param			request	body	dto.UpdateAccountRequest	true	"Fields to change"
//	@Success		204
//	@Failure		400	{object}	dto.ErrorResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Failure		422	{object}	dto.ValidationErrorResponse
//	@Router			/accounts/{id} [patch]
func (h *AccountHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c, property.MsgAccountNotFound)
	if !ok {
		return
	}
	var req dto.UpdateAccountRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if _, err := h.accountService.Update(c.Request.Context(), id, req.ToDomain()); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Delete godoc
// @ID           deleteAccount
//
//	@Summary		Delete an account with its malls and units
//	@Tags			accounts
//	@Param			id	path	int	true	"Account ID"
//	@Success		204
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/accounts/{id} [delete]
func (h *AccountHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c, property.MsgAccountNotFound)
	if !ok {
		return
	}

	if _, err := h.accountService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
