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

// GormUnitRepository implements UnitRepository using GORM
type GormUnitRepository struct {
	repositoryBase
}

// NewGormUnitRepository creates a new GormUnitRepository
func NewGormUnitRepository(db *gorm.DB, opts ...RepositoryOption) *GormUnitRepository {
	return &GormUnitRepository{repositoryBase: newRepositoryBase(db, "unit", opts...)}
}

// Create inserts a unit under an existing mall
func (r *GormUnitRepository) Create(ctx context.Context, input property.NewUnit) (*property.Unit, error) {
	model := models.UnitModelFromInput(input)
	err := r.inTransaction(ctx, opCreate, func(tx *gorm.DB) error {
		return tx.Create(model).Error
	})
	if err != nil {
		switch ClassifyIntegrity(err) {
		case ForeignKeyViolation:
			return nil, property.ErrMallNotFound()
		case NotIntegrity:
			return nil, fmt.Errorf("create unit: %w", err)
		default:
			return nil, property.ErrUnitExists()
		}
	}
	return model.ToDomain(), nil
}

// BulkCreate inserts all units in a single statement.
// A missing mall is not translated and comes back as *IntegrityError.
func (r *GormUnitRepository) BulkCreate(ctx context.Context, inputs []property.NewUnit) error {
	if len(inputs) == 0 {
		return nil
	}

	rows := make([]models.UnitModel, 0, len(inputs))
	for _, input := range inputs {
		rows = append(rows, *models.UnitModelFromInput(input))
	}

	err := r.inTransaction(ctx, opBulkCreate, func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
	return translateBulkError(err, property.MsgUnitsExist, "units")
}

// GetList returns a page of units with their owning mall
func (r *GormUnitRepository) GetList(ctx context.Context, page, perPage int) (*shared.Paginated[property.Unit], error) {
	var (
		rows  []models.UnitModel
		total int64
	)
	err := r.inTransaction(ctx, opGetList, func(tx *gorm.DB) error {
		var err error
		rows, total, err = fetchPage[models.UnitModel](tx, page, perPage, "Mall")
		return err
	})
	if err != nil {
		if errors.Is(err, errPageOutOfRange) {
			return nil, shared.NewDoesNotExistError(property.MsgUnitsNotFound)
		}
		return nil, fmt.Errorf("list units: %w", err)
	}

	items := make([]property.Unit, 0, len(rows))
	for i := range rows {
		items = append(items, *rows[i].ToDomain())
	}
	return shared.NewPaginated(items, total, page, shared.ClampPerPage(perPage)), nil
}

// Update renames a unit
func (r *GormUnitRepository) Update(ctx context.Context, id uint, update property.UnitUpdate) (bool, error) {
	var updated bool
	err := r.inTransaction(ctx, opUpdate, func(tx *gorm.DB) error {
		var err error
		updated, err = updateByID(tx, &models.UnitModel{}, id, nameChanges(update.Name))
		return err
	})
	if err != nil {
		if ClassifyIntegrity(err) != NotIntegrity {
			return false, property.ErrUnitExists()
		}
		return false, fmt.Errorf("update unit %d: %w", id, err)
	}
	return updated, nil
}

// Delete removes a unit
func (r *GormUnitRepository) Delete(ctx context.Context, id uint) (bool, error) {
	var deleted bool
	err := r.inTransaction(ctx, opDelete, func(tx *gorm.DB) error {
		result := tx.Delete(&models.UnitModel{}, id)
		deleted = result.RowsAffected > 0
		return result.Error
	})
	if err != nil {
		return false, fmt.Errorf("delete unit %d: %w", id, err)
	}
	return deleted, nil
}

// Get finds a unit by ID with its mall
func (r *GormUnitRepository) Get(ctx context.Context, id uint) (*property.Unit, error) {
	var model models.UnitModel
	err := r.inTransaction(ctx, opGet, func(tx *gorm.DB) error {
		return tx.Preload("Mall").First(&model, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, property.ErrUnitNotFound()
		}
		return nil, fmt.Errorf("get unit %d: %w", id, err)
	}
	return model.ToDomain(), nil
}
