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

// GormMallRepository implements MallRepository using GORM
type GormMallRepository struct {
	repositoryBase
}

// NewGormMallRepository creates a new GormMallRepository
func NewGormMallRepository(db *gorm.DB, opts ...RepositoryOption) *GormMallRepository {
	return &GormMallRepository{repositoryBase: newRepositoryBase(db, "mall", opts...)}
}

// Create inserts a mall under an existing account
func (r *GormMallRepository) Create(ctx context.Context, input property.NewMall) (*property.Mall, error) {
	model := models.MallModelFromInput(input)
	err := r.inTransaction(ctx, opCreate, func(tx *gorm.DB) error {
		return tx.Create(model).Error
	})
	if err != nil {
		switch ClassifyIntegrity(err) {
		case ForeignKeyViolation:
			return nil, property.ErrAccountNotFound()
		case NotIntegrity:
			return nil, fmt.Errorf("create mall: %w", err)
		default:
			return nil, property.ErrMallExists()
		}
	}
	return model.ToDomain(), nil
}

// BulkCreate inserts all malls in a single statement.
// A missing account is not translated and comes back as *IntegrityError.
func (r *GormMallRepository) BulkCreate(ctx context.Context, inputs []property.NewMall) error {
	if len(inputs) == 0 {
		return nil
	}

	rows := make([]models.MallModel, 0, len(inputs))
	for _, input := range inputs {
		rows = append(rows, *models.MallModelFromInput(input))
	}

	err := r.inTransaction(ctx, opBulkCreate, func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
	return translateBulkError(err, property.MsgMallsExist, "malls")
}

// GetList returns a page of malls with their owning account
func (r *GormMallRepository) GetList(ctx context.Context, page, perPage int) (*shared.Paginated[property.Mall], error) {
	var (
		rows  []models.MallModel
		total int64
	)
	err := r.inTransaction(ctx, opGetList, func(tx *gorm.DB) error {
		var err error
		rows, total, err = fetchPage[models.MallModel](tx, page, perPage, "Account")
		return err
	})
	if err != nil {
		if errors.Is(err, errPageOutOfRange) {
			return nil, shared.NewDoesNotExistError(property.MsgMallsNotFound)
		}
		return nil, fmt.Errorf("list malls: %w", err)
	}

	items := make([]property.Mall, 0, len(rows))
	for i := range rows {
		items = append(items, *rows[i].ToDomain())
	}
	return shared.NewPaginated(items, total, page, shared.ClampPerPage(perPage)), nil
}

// Update renames a mall
func (r *GormMallRepository) Update(ctx context.Context, id uint, update property.MallUpdate) (bool, error) {
	var updated bool
	err := r.inTransaction(ctx, opUpdate, func(tx *gorm.DB) error {
		var err error
		updated, err = updateByID(tx, &models.MallModel{}, id, nameChanges(update.Name))
		return err
	})
	if err != nil {
		if ClassifyIntegrity(err) != NotIntegrity {
			return false, property.ErrMallExists()
		}
		return false, fmt.Errorf("update mall %d: %w", id, err)
	}
	return updated, nil
}

// Delete removes a mall; its units go with it through ON DELETE CASCADE
func (r *GormMallRepository) Delete(ctx context.Context, id uint) (bool, error) {
	var deleted bool
	err := r.inTransaction(ctx, opDelete, func(tx *gorm.DB) error {
		result := tx.Delete(&models.MallModel{}, id)
		deleted = result.RowsAffected > 0
		return result.Error
	})
	if err != nil {
		return false, fmt.Errorf("delete mall %d: %w", id, err)
	}
	return deleted, nil
}

// Get finds a mall by ID with its units
func (r *GormMallRepository) Get(ctx context.Context, id uint) (*property.Mall, error) {
	var model models.MallModel
	err := r.inTransaction(ctx, opGet, func(tx *gorm.DB) error {
		return tx.Preload("Units", orderByID).First(&model, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, property.ErrMallNotFound()
		}
		return nil, fmt.Errorf("get mall %d: %w", id, err)
	}
	return model.ToDomain(), nil
}
