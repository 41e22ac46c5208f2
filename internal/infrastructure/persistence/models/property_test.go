package models

import (
	"testing"

	"github.com/mallhub/backend/internal/domain/property"
	"github.com/stretchr/testify/assert"
)

func TestPropertyModels_TableName(t *testing.T) {
	assert.Equal(t, "accounts", AccountModel{}.TableName())
	assert.Equal(t, "malls", MallModel{}.TableName())
	assert.Equal(t, "units", UnitModel{}.TableName())
}

func TestAccountModel_ToDomain(t *testing.T) {
	model := &AccountModel{
		ID:   7,
		Name: "Acme",
		Malls: []MallModel{
			{ID: 1, Name: "North", AccountID: 7},
			{ID: 2, Name: "South", AccountID: 7},
		},
	}

	account := model.ToDomain()

	assert.Equal(t, uint(7), account.ID)
	assert.Equal(t, "Acme", account.Name)
	assert.Len(t, account.Malls, 2)
	assert.Equal(t, "South", account.Malls[1].Name)
	assert.Equal(t, uint(7), account.Malls[1].AccountID)
}

func TestMallModel_ToDomain(t *testing.T) {
	t.Run("with parent and children loaded", func(t *testing.T) {
		model := &MallModel{
			ID:        3,
			Name:      "North",
			AccountID: 7,
			Account:   &AccountModel{ID: 7, Name: "Acme"},
			Units:     []UnitModel{{ID: 9, Name: "A-1", MallID: 3}},
		}

		mall := model.ToDomain()

		assert.Equal(t, uint(3), mall.ID)
		assert.Equal(t, "Acme", mall.Account.Name)
		assert.Len(t, mall.Units, 1)
		assert.Equal(t, uint(3), mall.Units[0].MallID)
	})

	t.Run("without relations", func(t *testing.T) {
		mall := (&MallModel{ID: 3, Name: "North", AccountID: 7}).ToDomain()

		assert.Nil(t, mall.Account)
		assert.NotNil(t, mall.Units)
		assert.Empty(t, mall.Units)
	})
}

func TestUnitModel_ToDomain(t *testing.T) {
	model := &UnitModel{ID: 9, Name: "A-1", MallID: 3, Mall: &MallModel{ID: 3, Name: "North", AccountID: 7}}

	unit := model.ToDomain()

	assert.Equal(t, uint(9), unit.ID)
	assert.Equal(t, uint(3), unit.MallID)
	assert.Equal(t, uint(7), unit.Mall.AccountID)
}

func TestModelFromInput(t *testing.T) {
	assert.Equal(t, "Acme", AccountModelFromInput(property.NewAccount{Name: "Acme"}).Name)

	mall := MallModelFromInput(property.NewMall{Name: "North", AccountID: 7})
	assert.Equal(t, uint(7), mall.AccountID)
	assert.Zero(t, mall.ID)

	unit := UnitModelFromInput(property.NewUnit{Name: "A-1", MallID: 3})
	assert.Equal(t, uint(3), unit.MallID)
}
