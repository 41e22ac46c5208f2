package persistence

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/mallhub/backend/internal/domain/property"
	"github.com/mallhub/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// runRepositoryContract exercises the repositories against a real store.
// newDB must return an empty, migrated database on every call.
func runRepositoryContract(t *testing.T, newDB func(t *testing.T) *gorm.DB) {
	t.Run("account", func(t *testing.T) { testAccountRepository(t, newDB) })
	t.Run("mall", func(t *testing.T) { testMallRepository(t, newDB) })
	t.Run("unit", func(t *testing.T) { testUnitRepository(t, newDB) })
	t.Run("cascade", func(t *testing.T) { testCascadeDelete(t, newDB) })
	t.Run("page offset overflow", func(t *testing.T) { testPageOffsetOverflow(t, newDB) })
}

// testPageOffsetOverflow asks every repository for a page whose offset does
// not fit in an int. It must be reported as missing, not wrapped to page 1.
func testPageOffsetOverflow(t *testing.T, newDB func(t *testing.T) *gorm.DB) {
	ctx := context.Background()
	db := newDB(t)

	accounts := NewGormAccountRepository(db)
	seedAccounts(t, accounts, 10)
	first, err := accounts.GetList(ctx, 1, 1)
	require.NoError(t, err)
	malls := NewGormMallRepository(db)
	mall, err := malls.Create(ctx, property.NewMall{Name: "North", AccountID: first.Items[0].ID})
	require.NoError(t, err)
	units := NewGormUnitRepository(db)
	_, err = units.Create(ctx, property.NewUnit{Name: "U-1", MallID: mall.ID})
	require.NoError(t, err)

	const hugePage = 1<<62 + 1

	tests := []struct {
		name    string
		getList func() error
		wantMsg string
	}{
		{"accounts", func() error { _, err := accounts.GetList(ctx, hugePage, 4); return err }, property.MsgAccountsNotFound},
		{"malls", func() error { _, err := malls.GetList(ctx, hugePage, 4); return err }, property.MsgMallsNotFound},
		{"units", func() error { _, err := units.GetList(ctx, hugePage, 4); return err }, property.MsgUnitsNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.getList()
			require.Error(t, err)
			assert.True(t, shared.IsDoesNotExist(err))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}

	t.Run("largest reachable page is still queried", func(t *testing.T) {
		_, err := accounts.GetList(ctx, math.MaxInt/4+1, 4)
		assert.True(t, shared.IsDoesNotExist(err))
	})
}

func countRows(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Table(table).Count(&count).Error)
	return count
}

func strPtr(s string) *string { return &s }

func seedAccounts(t *testing.T, repo *GormAccountRepository, n int) {
	t.Helper()
	inputs := make([]property.NewAccount, 0, n)
	for i := 1; i <= n; i++ {
		inputs = append(inputs, property.NewAccount{Name: fmt.Sprintf("account-%02d", i)})
	}
	require.NoError(t, repo.BulkCreate(context.Background(), inputs))
}

func testAccountRepository(t *testing.T, newDB func(t *testing.T) *gorm.DB) {
	ctx := context.Background()

	t.Run("create assigns id", func(t *testing.T) {
		repo := NewGormAccountRepository(newDB(t))

		account, err := repo.Create(ctx, property.NewAccount{Name: "Acme"})
		require.NoError(t, err)
		assert.NotZero(t, account.ID)
		assert.Equal(t, "Acme", account.Name)
	})

	t.Run("create duplicate name", func(t *testing.T) {
		db := newDB(t)
		repo := NewGormAccountRepository(db)

		_, err := repo.Create(ctx, property.NewAccount{Name: "Acme"})
		require.NoError(t, err)

		_, err = repo.Create(ctx, property.NewAccount{Name: "Acme"})
		require.Error(t, err)
		assert.True(t, shared.IsAlreadyExists(err))
		assert.Equal(t, "Account already exists!", err.Error())
		assert.Equal(t, int64(1), countRows(t, db, "accounts"))
	})

	t.Run("bulk create is atomic", func(t *testing.T) {
		db := newDB(t)
		repo := NewGormAccountRepository(db)
		batch := []property.NewAccount{{Name: "A"}, {Name: "B"}}

		require.NoError(t, repo.BulkCreate(ctx, batch))
		assert.Equal(t, int64(2), countRows(t, db, "accounts"))

		err := repo.BulkCreate(ctx, batch)
		require.Error(t, err)
		assert.True(t, shared.IsAlreadyExists(err))
		assert.Equal(t, "One or more accounts already exist!", err.Error())

		err = repo.BulkCreate(ctx, []property.NewAccount{{Name: "C"}, {Name: "A"}})
		assert.True(t, shared.IsAlreadyExists(err))
		assert.Equal(t, int64(2), countRows(t, db, "accounts"))
	})

	t.Run("bulk create empty input", func(t *testing.T) {
		repo := NewGormAccountRepository(newDB(t))
		assert.NoError(t, repo.BulkCreate(ctx, nil))
	})

	t.Run("get list pages", func(t *testing.T) {
		repo := NewGormAccountRepository(newDB(t))
		seedAccounts(t, repo, 10)

		page, err := repo.GetList(ctx, 2, 5)
		require.NoError(t, err)
		assert.Equal(t, int64(10), page.Total)
		require.Len(t, page.Items, 5)
		assert.Equal(t, "account-06", page.Items[0].Name)
		assert.Equal(t, "account-10", page.Items[4].Name)

		_, err = repo.GetList(ctx, 3, 5)
		require.Error(t, err)
		assert.True(t, shared.IsDoesNotExist(err))
		assert.Equal(t, "`page` or `per_page` specified incorrectly or accounts are not found!", err.Error())

		_, err = repo.GetList(ctx, 0, 5)
		assert.True(t, shared.IsDoesNotExist(err))
	})

	t.Run("get list of empty table", func(t *testing.T) {
		repo := NewGormAccountRepository(newDB(t))

		page, err := repo.GetList(ctx, 1, shared.DefaultPerPage)
		require.NoError(t, err)
		assert.Zero(t, page.Total)
		assert.Empty(t, page.Items)
	})

	t.Run("get list clamps per page", func(t *testing.T) {
		repo := NewGormAccountRepository(newDB(t))
		seedAccounts(t, repo, shared.MaxPerPage+5)

		page, err := repo.GetList(ctx, 1, 500)
		require.NoError(t, err)
		assert.Len(t, page.Items, shared.MaxPerPage)
		assert.Equal(t, shared.MaxPerPage, page.PerPage)
		assert.Equal(t, int64(shared.MaxPerPage+5), page.Total)
	})

	t.Run("update", func(t *testing.T) {
		repo := NewGormAccountRepository(newDB(t))
		first, err := repo.Create(ctx, property.NewAccount{Name: "First"})
		require.NoError(t, err)
		second, err := repo.Create(ctx, property.NewAccount{Name: "Second"})
		require.NoError(t, err)

		updated, err := repo.Update(ctx, first.ID, property.AccountUpdate{Name: strPtr("Renamed")})
		require.NoError(t, err)
		assert.True(t, updated)

		_, err = repo.Update(ctx, second.ID, property.AccountUpdate{Name: strPtr("Renamed")})
		require.Error(t, err)
		assert.Equal(t, "Account already exists!", err.Error())

		got, err := repo.Get(ctx, second.ID)
		require.NoError(t, err)
		assert.Equal(t, "Second", got.Name)

		updated, err = repo.Update(ctx, 9999, property.AccountUpdate{Name: strPtr("Ghost")})
		require.NoError(t, err)
		assert.False(t, updated)

		updated, err = repo.Update(ctx, first.ID, property.AccountUpdate{})
		require.NoError(t, err)
		assert.True(t, updated)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		repo := NewGormAccountRepository(newDB(t))
		account, err := repo.Create(ctx, property.NewAccount{Name: "Gone"})
		require.NoError(t, err)

		deleted, err := repo.Delete(ctx, account.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(ctx, account.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("get missing", func(t *testing.T) {
		repo := NewGormAccountRepository(newDB(t))

		_, err := repo.Get(ctx, 42)
		require.Error(t, err)
		assert.True(t, shared.IsDoesNotExist(err))
		assert.Equal(t, "Account does not exist!", err.Error())
	})
}

func testMallRepository(t *testing.T, newDB func(t *testing.T) *gorm.DB) {
	ctx := context.Background()

	t.Run("create requires account", func(t *testing.T) {
		db := newDB(t)
		repo := NewGormMallRepository(db)

		_, err := repo.Create(ctx, property.NewMall{Name: "North", AccountID: 999})
		require.Error(t, err)
		assert.True(t, shared.IsDoesNotExist(err))
		assert.Equal(t, "Account does not exist!", err.Error())
		assert.Zero(t, countRows(t, db, "malls"))
	})

	t.Run("create and get with units", func(t *testing.T) {
		db := newDB(t)
		accounts, malls, units := NewGormAccountRepository(db), NewGormMallRepository(db), NewGormUnitRepository(db)

		account, err := accounts.Create(ctx, property.NewAccount{Name: "Acme"})
		require.NoError(t, err)
		mall, err := malls.Create(ctx, property.NewMall{Name: "North", AccountID: account.ID})
		require.NoError(t, err)
		assert.Equal(t, account.ID, mall.AccountID)

		require.NoError(t, units.BulkCreate(ctx, []property.NewUnit{
			{Name: "N-1", MallID: mall.ID},
			{Name: "N-2", MallID: mall.ID},
		}))

		got, err := malls.Get(ctx, mall.ID)
		require.NoError(t, err)
		require.Len(t, got.Units, 2)
		assert.Equal(t, "N-1", got.Units[0].Name)

		gotAccount, err := accounts.Get(ctx, account.ID)
		require.NoError(t, err)
		require.Len(t, gotAccount.Malls, 1)
		assert.Equal(t, "North", gotAccount.Malls[0].Name)
	})

	t.Run("create duplicate name", func(t *testing.T) {
		db := newDB(t)
		account, err := NewGormAccountRepository(db).Create(ctx, property.NewAccount{Name: "Acme"})
		require.NoError(t, err)
		repo := NewGormMallRepository(db)

		_, err = repo.Create(ctx, property.NewMall{Name: "North", AccountID: account.ID})
		require.NoError(t, err)
		_, err = repo.Create(ctx, property.NewMall{Name: "North", AccountID: account.ID})
		assert.True(t, shared.IsAlreadyExists(err))
		assert.Equal(t, "Mall already exists!", err.Error())
	})

	t.Run("bulk create with missing account is not translated", func(t *testing.T) {
		db := newDB(t)
		repo := NewGormMallRepository(db)

		err := repo.BulkCreate(ctx, []property.NewMall{{Name: "North", AccountID: 999}})
		require.Error(t, err)
		_, isDomain := shared.AsDomainError(err)
		assert.False(t, isDomain)

		var integrityErr *IntegrityError
		require.True(t, errors.As(err, &integrityErr))
		assert.Equal(t, ForeignKeyViolation, integrityErr.Kind)
		assert.Zero(t, countRows(t, db, "malls"))
	})

	t.Run("list loads account", func(t *testing.T) {
		db := newDB(t)
		account, err := NewGormAccountRepository(db).Create(ctx, property.NewAccount{Name: "Acme"})
		require.NoError(t, err)
		repo := NewGormMallRepository(db)
		require.NoError(t, repo.BulkCreate(ctx, []property.NewMall{
			{Name: "North", AccountID: account.ID},
			{Name: "South", AccountID: account.ID},
		}))

		page, err := repo.GetList(ctx, 1, 20)
		require.NoError(t, err)
		assert.Equal(t, int64(2), page.Total)
		require.Len(t, page.Items, 2)
		require.NotNil(t, page.Items[1].Account)
		assert.Equal(t, "Acme", page.Items[1].Account.Name)

		_, err = repo.GetList(ctx, 2, 20)
		assert.Equal(t, "`page` or `per_page` specified incorrectly or malls are not found!", err.Error())
	})

	t.Run("update and get missing", func(t *testing.T) {
		repo := NewGormMallRepository(newDB(t))

		updated, err := repo.Update(ctx, 5, property.MallUpdate{Name: strPtr("x")})
		require.NoError(t, err)
		assert.False(t, updated)

		_, err = repo.Get(ctx, 5)
		assert.Equal(t, "Mall does not exist!", err.Error())
	})
}

func testUnitRepository(t *testing.T, newDB func(t *testing.T) *gorm.DB) {
	ctx := context.Background()

	t.Run("create requires mall", func(t *testing.T) {
		repo := NewGormUnitRepository(newDB(t))

		_, err := repo.Create(ctx, property.NewUnit{Name: "U-1", MallID: 999})
		require.Error(t, err)
		assert.True(t, shared.IsDoesNotExist(err))
		assert.Equal(t, "Mall does not exist!", err.Error())
	})

	t.Run("lifecycle", func(t *testing.T) {
		db := newDB(t)
		account, err := NewGormAccountRepository(db).Create(ctx, property.NewAccount{Name: "Acme"})
		require.NoError(t, err)
		mall, err := NewGormMallRepository(db).Create(ctx, property.NewMall{Name: "North", AccountID: account.ID})
		require.NoError(t, err)
		repo := NewGormUnitRepository(db)

		unit, err := repo.Create(ctx, property.NewUnit{Name: "U-1", MallID: mall.ID})
		require.NoError(t, err)
		_, err = repo.Create(ctx, property.NewUnit{Name: "U-2", MallID: mall.ID})
		require.NoError(t, err)

		_, err = repo.Create(ctx, property.NewUnit{Name: "U-1", MallID: mall.ID})
		assert.Equal(t, "Unit already exists!", err.Error())

		err = repo.BulkCreate(ctx, []property.NewUnit{{Name: "U-3", MallID: mall.ID}, {Name: "U-2", MallID: mall.ID}})
		assert.Equal(t, "One or more units already exist!", err.Error())
		assert.Equal(t, int64(2), countRows(t, db, "units"))

		got, err := repo.Get(ctx, unit.ID)
		require.NoError(t, err)
		require.NotNil(t, got.Mall)
		assert.Equal(t, "North", got.Mall.Name)

		_, err = repo.Update(ctx, unit.ID, property.UnitUpdate{Name: strPtr("U-2")})
		assert.Equal(t, "Unit already exists!", err.Error())

		page, err := repo.GetList(ctx, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(2), page.Total)
		assert.Equal(t, "U-1", page.Items[0].Name)
		assert.Equal(t, 2, page.TotalPages)

		deleted, err := repo.Delete(ctx, unit.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = repo.Get(ctx, unit.ID)
		assert.Equal(t, "Unit does not exist!", err.Error())
	})
}

func testCascadeDelete(t *testing.T, newDB func(t *testing.T) *gorm.DB) {
	ctx := context.Background()
	db := newDB(t)
	accounts, malls, units := NewGormAccountRepository(db), NewGormMallRepository(db), NewGormUnitRepository(db)

	account, err := accounts.Create(ctx, property.NewAccount{Name: "Acme"})
	require.NoError(t, err)
	mall, err := malls.Create(ctx, property.NewMall{Name: "North", AccountID: account.ID})
	require.NoError(t, err)
	unit, err := units.Create(ctx, property.NewUnit{Name: "N-1", MallID: mall.ID})
	require.NoError(t, err)

	other, err := accounts.Create(ctx, property.NewAccount{Name: "Other"})
	require.NoError(t, err)
	_, err = malls.Create(ctx, property.NewMall{Name: "Elsewhere", AccountID: other.ID})
	require.NoError(t, err)

	deleted, err := accounts.Delete(ctx, account.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = malls.Get(ctx, mall.ID)
	assert.True(t, shared.IsDoesNotExist(err))
	_, err = units.Get(ctx, unit.ID)
	assert.True(t, shared.IsDoesNotExist(err))

	assert.Equal(t, int64(1), countRows(t, db, "malls"))
	assert.Zero(t, countRows(t, db, "units"))
}
