package models

import "github.com/mallhub/backend/internal/domain/property"

// AccountModel is the persistence model for the accounts table
type AccountModel struct {
	ID    uint        `gorm:"primaryKey"`
	Name  string      `gorm:"type:varchar(255);not null;uniqueIndex"`
	Malls []MallModel `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (AccountModel) TableName() string {
	return "accounts"
}

// ToDomain converts the model to a domain Account
func (m *AccountModel) ToDomain() *property.Account {
	account := &property.Account{
		ID:    m.ID,
		Name:  m.Name,
		Malls: make([]property.Mall, 0, len(m.Malls)),
	}
	for i := range m.Malls {
		account.Malls = append(account.Malls, *m.Malls[i].ToDomain())
	}
	return account
}

// AccountModelFromInput builds a model ready for insertion
func AccountModelFromInput(input property.NewAccount) *AccountModel {
	return &AccountModel{Name: input.Name}
}

// MallModel is the persistence model for the malls table
type MallModel struct {
	ID        uint          `gorm:"primaryKey"`
	Name      string        `gorm:"type:varchar(255);not null;uniqueIndex"`
	AccountID uint          `gorm:"not null;index"`
	Account   *AccountModel `gorm:"foreignKey:AccountID"`
	Units     []UnitModel   `gorm:"foreignKey:MallID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (MallModel) TableName() string {
	return "malls"
}

// ToDomain converts the model to a domain Mall
func (m *MallModel) ToDomain() *property.Mall {
	mall := &property.Mall{
		ID:        m.ID,
		Name:      m.Name,
		AccountID: m.AccountID,
		Units:     make([]property.Unit, 0, len(m.Units)),
	}
	if m.Account != nil {
		mall.Account = &property.Account{ID: m.Account.ID, Name: m.Account.Name}
	}
	for i := range m.Units {
		mall.Units = append(mall.Units, *m.Units[i].ToDomain())
	}
	return mall
}

// MallModelFromInput builds a model ready for insertion
func MallModelFromInput(input property.NewMall) *MallModel {
	return &MallModel{Name: input.Name, AccountID: input.AccountID}
}

// UnitModel is the persistence model for the units table
type UnitModel struct {
	ID     uint       `gorm:"primaryKey"`
	Name   string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	MallID uint       `gorm:"not null;index"`
	Mall   *MallModel `gorm:"foreignKey:MallID"`
}

// TableName returns the table name for GORM
func (UnitModel) TableName() string {
	return "units"
}

// ToDomain converts the model to a domain Unit
func (m *UnitModel) ToDomain() *property.Unit {
	unit := &property.Unit{
		ID:     m.ID,
		Name:   m.Name,
		MallID: m.MallID,
	}
	if m.Mall != nil {
		unit.Mall = &property.Mall{ID: m.Mall.ID, Name: m.Mall.Name, AccountID: m.Mall.AccountID}
	}
	return unit
}

// UnitModelFromInput builds a model ready for insertion
func UnitModelFromInput(input property.NewUnit) *UnitModel {
	return &UnitModel{Name: input.Name, MallID: input.MallID}
}
