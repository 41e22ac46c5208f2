package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/mallhub/backend/internal/domain/property"
	"github.com/mallhub/backend/internal/domain/shared"
	"github.com/mallhub/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormAccountRepository implements AccountRepository using GORM
type GormAccountRepository struct {
	repositoryBase
}

// NewGormAccountRepository creates a new GormAccountRepository
func NewGormAccountRepository(db *gorm.DB, opts ...RepositoryOption) *GormAccountRepository {
	return &GormAccountRepository{repositoryBase: newRepositoryBase(db, "account", opts...)}
}

// Create inserts an account. Any constraint failure means the name is taken.
func (r *GormAccountRepository) Create(ctx context.Context, input property.NewAccount) (*property.Account, error) {
	model := models.AccountModelFromInput(input)
	err := r.inTransaction(ctx, opCreate, func(tx *gorm.DB) error {
		return tx.Create(model).Error
	})
	if err != nil {
		if ClassifyIntegrity(err) != NotIntegrity {
			return nil, property.ErrAccountExists()
		}
		return nil, fmt.Errorf("create account: %w", err)
	}
	return model.ToDomain(), nil
}

// BulkCreate inserts all accounts in a single statement
func (r *GormAccountRepository) BulkCreate(ctx context.Context, inputs []property.NewAccount) error {
	if len(inputs) == 0 {
		return nil
	}

	rows := make([]models.AccountModel, 0, len(inputs))
	for _, input := range inputs {
		rows = append(rows, *models.AccountModelFromInput(input))
	}

	err := r.inTransaction(ctx, opBulkCreate, func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
	return translateBulkError(err, property.MsgAccountsExist, "accounts")
}

// GetList returns a page of accounts with their malls
func (r *GormAccountRepository) GetList(ctx context.Context, page, perPage int) (*shared.Paginated[property.Account], error) {
	var (
		rows  []models.AccountModel
		total int64
	)
	err := r.inTransaction(ctx, opGetList, func(tx *gorm.DB) error {
		var err error
		rows, total, err = fetchPage[models.AccountModel](tx, page, perPage, "Malls")
		return err
	})
	if err != nil {
		if errors.Is(err, errPageOutOfRange) {
			return nil, shared.NewDoesNotExistError(property.MsgAccountsNotFound)
		}
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	items := make([]property.Account, 0, len(rows))
	for i := range rows {
		items = append(items, *rows[i].ToDomain())
	}
	return shared.NewPaginated(items, total, page, shared.ClampPerPage(perPage)), nil
}

// Update renames an account
func (r *GormAccountRepository) Update(ctx context.Context, id uint, update property.AccountUpdate) (bool, error) {
	var updated bool
	err := r.inTransaction(ctx, opUpdate, func(tx *gorm.DB) error {
		var err error
		updated, err = updateByID(tx, &models.AccountModel{}, id, nameChanges(update.Name))
		return err
	})
	if err != nil {
		if ClassifyIntegrity(err) != NotIntegrity {
			return false, property.ErrAccountExists()
		}
		return false, fmt.Errorf("update account %d: %w", id, err)
	}
	return updated, nil
}

// Delete removes an account; malls and units go with it through ON DELETE CASCADE
func (r *GormAccountRepository) Delete(ctx context.Context, id uint) (bool, error) {
	var deleted bool
	err := r.inTransaction(ctx, opDelete, func(tx *gorm.DB) error {
		result := tx.Delete(&models.AccountModel{}, id)
		deleted = result.RowsAffected > 0
		return result.Error
	})
	if err != nil {
		return false, fmt.Errorf("delete account %d: %w", id, err)
	}
	return deleted, nil
}

// Get finds an account by ID with its malls
func (r *GormAccountRepository) Get(ctx context.Context, id uint) (*property.Account, error) {
	var model models.AccountModel
	err := r.inTransaction(ctx, opGet, func(tx *gorm.DB) error {
		return tx.Preload("Malls", orderByID).First(&model, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, property.ErrAccountNotFound()
		}
		return nil, fmt.Errorf("get account %d: %w", id, err)
	}
	return model.ToDomain(), nil
}

// translateBulkError maps a bulk insert failure. Only duplicates become a
// domain error; other constraint failures are returned as *IntegrityError.
func translateBulkError(err error, existsMessage, entities string) error {
	if err == nil {
		return nil
	}
	switch kind := ClassifyIntegrity(err); kind {
	case UniqueViolation:
		return shared.NewAlreadyExistsError(existsMessage)
	case NotIntegrity:
		return fmt.Errorf("bulk create %s: %w", entities, err)
	default:
		return &IntegrityError{Kind: kind, Err: err}
	}
}
