package persistence

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/mallhub/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// OperationObserver receives the outcome of every repository operation.
// The error passed in is the raw store error, before translation.
type OperationObserver interface {
	ObserveOperation(ctx context.Context, entity, operation string, duration time.Duration, err error)
}

// RepositoryOption configures a repository
type RepositoryOption func(*repositoryBase)

// WithObserver attaches an OperationObserver to a repository
func WithObserver(observer OperationObserver) RepositoryOption {
	return func(r *repositoryBase) {
		r.observer = observer
	}
}

// Operation names reported to observers
const (
	opCreate     = "create"
	opBulkCreate = "bulk_create"
	opGetList    = "get_list"
	opUpdate     = "update"
	opDelete     = "delete"
	opGet        = "get"
)

// repositoryBase holds what every entity repository shares: the session
// factory and an optional observer.
type repositoryBase struct {
	db       *gorm.DB
	entity   string
	observer OperationObserver
}

func newRepositoryBase(db *gorm.DB, entity string, opts ...RepositoryOption) repositoryBase {
	base := repositoryBase{db: db, entity: entity}
	for _, opt := range opts {
		opt(&base)
	}
	return base
}

// inTransaction runs fn in a new transaction. It commits when fn returns nil
// and rolls back otherwise.
func (r *repositoryBase) inTransaction(ctx context.Context, operation string, fn func(tx *gorm.DB) error) error {
	start := time.Now()
	err := r.db.WithContext(ctx).Transaction(fn)
	if r.observer != nil {
		r.observer.ObserveOperation(ctx, r.entity, operation, time.Since(start), err)
	}
	return err
}

var errPageOutOfRange = errors.New("page out of range")

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

// fetchPage loads one page of M ordered by id, preloading one relation.
//
// It returns errPageOutOfRange when page or perPage is below 1, when the page
// offset does not fit in an int, or when a page after the first is empty.
// Page 1 of an empty table is a valid empty page.
func fetchPage[M any](tx *gorm.DB, page, perPage int, preload string) ([]M, int64, error) {
	if page < 1 || perPage < 1 {
		return nil, 0, errPageOutOfRange
	}
	perPage = shared.ClampPerPage(perPage)
	if page-1 > math.MaxInt/perPage {
		return nil, 0, errPageOutOfRange
	}

	var total int64
	if err := tx.Model(new(M)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []M
	if err := tx.Preload(preload, orderByID).
		Order("id ASC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}

	if len(items) == 0 && page != 1 {
		return nil, 0, errPageOutOfRange
	}
	return items, total, nil
}

// nameChanges converts an optional name into the column map passed to Updates
func nameChanges(name *string) map[string]any {
	changes := make(map[string]any, 1)
	if name != nil {
		changes["name"] = *name
	}
	return changes
}

// updateByID applies changes to the row with the given id. An empty change set
// only checks that the row exists.
func updateByID(tx *gorm.DB, model any, id uint, changes map[string]any) (bool, error) {
	if len(changes) == 0 {
		var count int64
		if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
			return false, err
		}
		return count == 1, nil
	}

	result := tx.Model(model).Where("id = ?", id).Updates(changes)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
