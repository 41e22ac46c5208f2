package dto

import "github.com/mallhub/backend/internal/domain/property"

// AccountResponse represents an account without its malls
// @name AccountResponse
type AccountResponse struct {
	ID   uint   `json:"id" example:"1"`
	Name string `json:"name" example:"Acme Holdings"`
}

// AccountDetailResponse represents an account with its malls
// @name AccountDetailResponse
type AccountDetailResponse struct {
	ID    uint           `json:"id" example:"1"`
	Name  string         `json:"name" example:"Acme Holdings"`
	Malls []MallResponse `json:"malls"`
}

// AccountListResponse is one page of accounts
// @name AccountListResponse
type AccountListResponse struct {
	Total    int64             `json:"total" example:"42"`
	Accounts []AccountResponse `json:"accounts"`
}

// MallResponse represents a mall without its units
// @name MallResponse
type MallResponse struct {
	ID        uint   `json:"id" example:"3"`
	Name      string `json:"name" example:"Riverside Mall"`
	AccountID uint   `json:"account_id" example:"1"`
}

// MallDetailResponse represents a mall with its units
// @name MallDetailResponse
type MallDetailResponse struct {
	ID        uint           `json:"id" example:"3"`
	Name      string         `json:"name" example:"Riverside Mall"`
	AccountID uint           `json:"account_id" example:"1"`
	Units     []UnitResponse `json:"units"`
}

// MallListResponse is one page of malls
// @name MallListResponse
type MallListResponse struct {
	Total int64          `json:"total" example:"42"`
	Malls []MallResponse `json:"malls"`
}

// UnitResponse represents a unit
// @name UnitResponse
type UnitResponse struct {
	ID     uint   `json:"id" example:"7"`
	Name   string `json:"name" example:"Unit A-12"`
	MallID uint   `json:"mall_id" example:"3"`
}

// UnitListResponse is one page of units
// @name UnitListResponse
type UnitListResponse struct {
	Total int64          `json:"total" example:"42"`
	Units []UnitResponse `json:"units"`
}

func NewAccountResponse(a *property.Account) AccountResponse {
	return AccountResponse{ID: a.ID, Name: a.Name}
}

func NewAccountDetailResponse(a *property.Account) AccountDetailResponse {
	malls := make([]MallResponse, len(a.Malls))
	for i := range a.Malls {
		malls[i] = NewMallResponse(&a.Malls[i])
	}
	return AccountDetailResponse{ID: a.ID, Name: a.Name, Malls: malls}
}

func NewAccountListResponse(total int64, accounts []property.Account) AccountListResponse {
	items := make([]AccountResponse, len(accounts))
	for i := range accounts {
		items[i] = NewAccountResponse(&accounts[i])
	}
	return AccountListResponse{Total: total, Accounts: items}
}

func NewMallResponse(m *property.Mall) MallResponse {
	return MallResponse{ID: m.ID, Name: m.Name, AccountID: m.AccountID}
}

func NewMallDetailResponse(m *property.Mall) MallDetailResponse {
	units := make([]UnitResponse, len(m.Units))
	for i := range m.Units {
		units[i] = NewUnitResponse(&m.Units[i])
	}
	return MallDetailResponse{ID: m.ID, Name: m.Name, AccountID: m.AccountID, Units: units}
}

func NewMallListResponse(total int64, malls []property.Mall) MallListResponse {
	items := make([]MallResponse, len(malls))
	for i := range malls {
		items[i] = NewMallResponse(&malls[i])
	}
	return MallListResponse{Total: total, Malls: items}
}

func NewUnitResponse(u *property.Unit) UnitResponse {
	return UnitResponse{ID: u.ID, Name: u.Name, MallID: u.MallID}
}

func NewUnitListResponse(total int64, units []property.Unit) UnitListResponse {
	items := make([]UnitResponse, len(units))
	for i := range units {
		items[i] = NewUnitResponse(&units[i])
	}
	return UnitListResponse{Total: total, Units: items}
}
