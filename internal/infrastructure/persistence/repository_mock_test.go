package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mallhub/backend/internal/domain/property"
	"github.com/mallhub/backend/internal/domain/shared"
	"github.com/mallhub/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests pin the SQL sent to PostgreSQL and the handling of native pgx errors.

func TestGormAccountRepository_Create_Postgres(t *testing.T) {
	ctx := context.Background()
	insert := `INSERT INTO "accounts" \("name"\) VALUES \(\$1\) RETURNING "id"`

	t.Run("returns assigned id", func(t *testing.T) {
		mdb := testutil.NewMockDB(t)
		repo := NewGormAccountRepository(mdb.DB)

		mdb.Mock.ExpectBegin()
		mdb.Mock.ExpectQuery(insert).
			WithArgs("Acme").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
		mdb.Mock.ExpectCommit()

		account, err := repo.Create(ctx, property.NewAccount{Name: "Acme"})
		require.NoError(t, err)
		assert.Equal(t, uint(7), account.ID)
		mdb.ExpectationsWereMet(t)
	})

	t.Run("unique violation rolls back", func(t *testing.T) {
		mdb := testutil.NewMockDB(t)
		repo := NewGormAccountRepository(mdb.DB)

		mdb.Mock.ExpectBegin()
		mdb.Mock.ExpectQuery(insert).
			WithArgs("Acme").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_accounts_name"})
		mdb.Mock.ExpectRollback()

		_, err := repo.Create(ctx, property.NewAccount{Name: "Acme"})
		assert.True(t, shared.IsAlreadyExists(err))
		assert.Equal(t, "Account already exists!", err.Error())
		mdb.ExpectationsWereMet(t)
	})

	t.Run("other integrity failure is reported as duplicate", func(t *testing.T) {
		mdb := testutil.NewMockDB(t)
		repo := NewGormAccountRepository(mdb.DB)

		mdb.Mock.ExpectBegin()
		mdb.Mock.ExpectQuery(insert).WillReturnError(&pgconn.PgError{Code: "23502"})
		mdb.Mock.ExpectRollback()

		_, err := repo.Create(ctx, property.NewAccount{Name: "Acme"})
		assert.True(t, shared.IsAlreadyExists(err))
		mdb.ExpectationsWereMet(t)
	})

	t.Run("driver failure is passed through", func(t *testing.T) {
		mdb := testutil.NewMockDB(t)
		repo := NewGormAccountRepository(mdb.DB)
		connErr := errors.New("connection reset by peer")

		mdb.Mock.ExpectBegin()
		mdb.Mock.ExpectQuery(insert).WillReturnError(connErr)
		mdb.Mock.ExpectRollback()

		_, err := repo.Create(ctx, property.NewAccount{Name: "Acme"})
		require.Error(t, err)
		assert.ErrorIs(t, err, connErr)
		_, isDomain := shared.AsDomainError(err)
		assert.False(t, isDomain)
		mdb.ExpectationsWereMet(t)
	})
}

func TestGormMallRepository_Postgres(t *testing.T) {
	ctx := context.Background()

	t.Run("create with missing account", func(t *testing.T) {
		mdb := testutil.NewMockDB(t)
		repo := NewGormMallRepository(mdb.DB)

		mdb.Mock.ExpectBegin()
		mdb.Mock.ExpectQuery(`INSERT INTO "malls" \("name","account_id"\) VALUES \(\$1,\$2\) RETURNING "id"`).
			WithArgs("North", 99).
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "fk_malls_account"})
		mdb.Mock.ExpectRollback()

		_, err := repo.Create(ctx, property.NewMall{Name: "North", AccountID: 99})
		assert.True(t, shared.IsDoesNotExist(err))
		assert.Equal(t, "Account does not exist!", err.Error())
		mdb.ExpectationsWereMet(t)
	})

	t.Run("bulk create with missing account", func(t *testing.T) {
		mdb := testutil.NewMockDB(t)
		repo := NewGormMallRepository(mdb.DB)

		mdb.Mock.ExpectBegin()
		mdb.Mock.ExpectQuery(`INSERT INTO "malls" \("name","account_id"\) VALUES \(\$1,\$2\),\(\$3,\$4\) RETURNING "id"`).
			WithArgs("North", 1, "South", 99).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		mdb.Mock.ExpectRollback()

		err := repo.BulkCreate(ctx, []property.NewMall{
			{Name: "North", AccountID: 1},
			{Name: "South", AccountID: 99},
		})
		var integrityErr *IntegrityError
		require.ErrorAs(t, err, &integrityErr)
		assert.Equal(t, ForeignKeyViolation, integrityErr.Kind)
		mdb.ExpectationsWereMet(t)
	})

	t.Run("update", func(t *testing.T) {
		mdb := testutil.NewMockDB(t)
		repo := NewGormMallRepository(mdb.DB)
		name := "Renamed"

		mdb.Mock.ExpectBegin()
		mdb.Mock.ExpectExec(`UPDATE "malls" SET "name"=\$1 WHERE id = \$2`).
			WithArgs(name, 3).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mdb.Mock.ExpectCommit()

		updated, err := repo.Update(ctx, 3, property.MallUpdate{Name: &name})
		require.NoError(t, err)
		assert.True(t, updated)
		mdb.ExpectationsWereMet(t)
	})

	t.Run("delete", func(t *testing.T) {
		mdb := testutil.NewMockDB(t)
		repo := NewGormMallRepository(mdb.DB)

		mdb.Mock.ExpectBegin()
		mdb.Mock.ExpectExec(`DELETE FROM "malls" WHERE "malls"."id" = \$1`).
			WithArgs(3).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mdb.Mock.ExpectCommit()

		deleted, err := repo.Delete(ctx, 3)
		require.NoError(t, err)
		assert.False(t, deleted)
		mdb.ExpectationsWereMet(t)
	})

	t.Run("get list orders by id and loads accounts", func(t *testing.T) {
		mdb := testutil.NewMockDB(t)
		repo := NewGormMallRepository(mdb.DB)

		mdb.Mock.ExpectBegin()
		mdb.Mock.ExpectQuery(`SELECT count\(\*\) FROM "malls"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		mdb.Mock.ExpectQuery(`SELECT \* FROM "malls" ORDER BY id ASC LIMIT`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "account_id"}).
				AddRow(1, "North", 5).
				AddRow(2, "South", 5))
		mdb.Mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE "accounts"."id" = \$1 ORDER BY id ASC`).
			WithArgs(5).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(5, "Acme"))
		mdb.Mock.ExpectCommit()

		page, err := repo.GetList(ctx, 1, 20)
		require.NoError(t, err)
		assert.Equal(t, int64(2), page.Total)
		require.Len(t, page.Items, 2)
		assert.Equal(t, "Acme", page.Items[0].Account.Name)
		mdb.ExpectationsWereMet(t)
	})
}

func TestGormUnitRepository_Get_Postgres(t *testing.T) {
	mdb := testutil.NewMockDB(t)
	repo := NewGormUnitRepository(mdb.DB)

	mdb.Mock.ExpectBegin()
	mdb.Mock.ExpectQuery(`SELECT \* FROM "units" WHERE "units"."id" = \$1 ORDER BY "units"."id" LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "mall_id"}))
	mdb.Mock.ExpectRollback()

	_, err := repo.Get(context.Background(), 4)
	assert.True(t, shared.IsDoesNotExist(err))
	assert.Equal(t, "Unit does not exist!", err.Error())
	mdb.ExpectationsWereMet(t)
}
