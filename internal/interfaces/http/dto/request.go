package dto

import (
	"github.com/mallhub/backend/internal/domain/property"
	"github.com/mallhub/backend/internal/domain/shared"
)

// Pointer fields tell an absent value from a zero one: required only rejects nil,
// so an empty name or a zero id still reaches the store.

// CreateAccountRequest is the body of POST /accounts
// @name CreateAccountRequest
type CreateAccountRequest struct {
	Name *string `json:"name" binding:"required,max=255" example:"Acme Holdings"`
}

// BulkCreateAccountsRequest is the body of POST /accounts/bulk
// @name BulkCreateAccountsRequest
type BulkCreateAccountsRequest struct {
	Accounts []CreateAccountRequest `json:"accounts" binding:"required,dive"`
}

// UpdateAccountRequest is the body of PATCH /accounts/:id
// @name UpdateAccountRequest
type UpdateAccountRequest struct {
	Name *string `json:"name" binding:"omitempty,max=255" example:"Acme Group"`
}

// CreateMallRequest is the body of POST /malls
// @name CreateMallRequest
type CreateMallRequest struct {
	Name      *string `json:"name" binding:"required,max=255" example:"Riverside Mall"`
	AccountID *uint   `json:"account_id" binding:"required" example:"1"`
}

// BulkCreateMallsRequest is the body of POST /malls/bulk
// @name BulkCreateMallsRequest
type BulkCreateMallsRequest struct {
	Malls []CreateMallRequest `json:"malls" binding:"required,dive"`
}

// UpdateMallRequest is the body of PATCH /malls/:id
// @name UpdateMallRequest
type UpdateMallRequest struct {
	Name *string `json:"name" binding:"omitempty,max=255" example:"Riverside Outlet"`
}

// CreateUnitRequest is the body of POST /units
// @name CreateUnitRequest
type CreateUnitRequest struct {
	Name   *string `json:"name" binding:"required,max=255" example:"Unit A-12"`
	MallID *uint   `json:"mall_id" binding:"required" example:"3"`
}

// BulkCreateUnitsRequest is the body of POST /units/bulk
// @name BulkCreateUnitsRequest
type BulkCreateUnitsRequest struct {
	Units []CreateUnitRequest `json:"units" binding:"required,dive"`
}

// UpdateUnitRequest is the body of PATCH /units/:id
// @name UpdateUnitRequest
type UpdateUnitRequest struct {
	Name *string `json:"name" binding:"omitempty,max=255" example:"Unit B-01"`
}

// ListQuery holds the pagination parameters of list endpoints
type ListQuery struct {
	Page    int `form:"page" binding:"pagenum"`
	PerPage int `form:"per_page" binding:"between=1 50"`
}

// DefaultListQuery returns the parameters used when none are given
func DefaultListQuery() ListQuery {
	return ListQuery{Page: 1, PerPage: shared.DefaultPerPage}
}

func (r CreateAccountRequest) ToDomain() property.NewAccount {
	return property.NewAccount{Name: *r.Name}
}

func (r BulkCreateAccountsRequest) ToDomain() []property.NewAccount {
	inputs := make([]property.NewAccount, len(r.Accounts))
	for i, item := range r.Accounts {
		inputs[i] = item.ToDomain()
	}
	return inputs
}

func (r UpdateAccountRequest) ToDomain() property.AccountUpdate {
	return property.AccountUpdate{Name: r.Name}
}

func (r CreateMallRequest) ToDomain() property.NewMall {
	return property.NewMall{Name: *r.Name, AccountID: *r.AccountID}
}

func (r BulkCreateMallsRequest) ToDomain() []property.NewMall {
	inputs := make([]property.NewMall, len(r.Malls))
	for i, item := range r.Malls {
		inputs[i] = item.ToDomain()
	}
	return inputs
}

func (r UpdateMallRequest) ToDomain() property.MallUpdate {
	return property.MallUpdate{Name: r.Name}
}

func (r CreateUnitRequest) ToDomain() property.NewUnit {
	return property.NewUnit{Name: *r.Name, MallID: *r.MallID}
}

func (r BulkCreateUnitsRequest) ToDomain() []property.NewUnit {
	inputs := make([]property.NewUnit, len(r.Units))
	for i, item := range r.Units {
		inputs[i] = item.ToDomain()
	}
	return inputs
}

func (r UpdateUnitRequest) ToDomain() property.UnitUpdate {
	return property.UnitUpdate{Name: r.Name}
}
