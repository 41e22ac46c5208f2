package property

import (
	"context"

	"github.com/mallhub/backend/internal/domain/property"
	"github.com/mallhub/backend/internal/domain/shared"
	"github.com/mallhub/backend/internal/infrastructure/telemetry"
)

// UnitService exposes unit operations to the HTTP layer.
// Every call runs inside a "unit.<operation>" span.
type UnitService struct {
	repo property.UnitRepository
}

// NewUnitService creates a new UnitService
func NewUnitService(repo property.UnitRepository) *UnitService {
	return &UnitService{repo: repo}
}

// Create creates a unit
func (s *UnitService) Create(ctx context.Context, input property.NewUnit) (_ *property.Unit, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "unit", "create")
	defer func() { telemetry.EndSpan(span, err) }()

	return s.repo.Create(ctx, input)
}

// BulkCreate creates several units in one transaction
func (s *UnitService) BulkCreate(ctx context.Context, inputs []property.NewUnit) (err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "unit", "bulk_create", telemetry.SpanAttrBatchSize, len(inputs))
	defer func() { telemetry.EndSpan(span, err) }()

	return s.repo.BulkCreate(ctx, inputs)
}

// GetList returns a page of units
func (s *UnitService) GetList(ctx context.Context, page, perPage int) (_ *shared.Paginated[property.Unit], err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "unit", "get_list",
		telemetry.SpanAttrPage, page,
		telemetry.SpanAttrPerPage, perPage,
	)
	defer func() { telemetry.EndSpan(span, err) }()

	return s.repo.GetList(ctx, page, perPage)
}

// Update applies a partial update to a unit
func (s *UnitService) Update(ctx context.Context, id uint, update property.UnitUpdate) (_ bool, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "unit", "update", telemetry.SpanAttrUnitID, id)
	defer func() { telemetry.EndSpan(span, err) }()

	return s.repo.Update(ctx, id, update)
}

// Delete deletes a unit
func (s *UnitService) Delete(ctx context.Context, id uint) (_ bool, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "unit", "delete", telemetry.SpanAttrUnitID, id)
	defer func() { telemetry.EndSpan(span, err) }()

	return s.repo.Delete(ctx, id)
}

// Get returns a unit with its mall
func (s *UnitService) Get(ctx context.Context, id uint) (_ *property.Unit, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "unit", "get", telemetry.SpanAttrUnitID, id)
	defer func() { telemetry.EndSpan(span, err) }()

	return s.repo.Get(ctx, id)
}
