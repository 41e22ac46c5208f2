package property

import (
	"context"

	"github.com/mallhub/backend/internal/domain/property"
	"github.com/mallhub/backend/internal/domain/shared"
	"github.com/mallhub/backend/internal/infrastructure/telemetry"
)

// MallService exposes mall operations to the HTTP layer.
// Every call runs inside a "mall.<operation>" span.
type MallService struct {
	repo property.MallRepository
}

// NewMallService creates a new MallService
func NewMallService(repo property.MallRepository) *MallService {
	return &MallService{repo: repo}
}

// Create creates a mall
func (s *MallService) Create(ctx context.Context, input property.NewMall) (_ *property.Mall, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "mall", "create")
	defer func() { telemetry.EndSpan(span, err) }()

	return s.repo.Create(ctx, input)
}

// BulkCreate creates several malls in one transaction
func (s *MallService) BulkCreate(ctx context.Context, inputs []property.NewMall) (err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "mall", "bulk_create", telemetry.SpanAttrBatchSize, len(inputs))
	defer func() { telemetry.EndSpan(span, err) }()

	return s.repo.BulkCreate(ctx, inputs)
}

// GetList returns a page of malls
func (s *MallService) GetList(ctx context.Context, page, perPage int) (_ *shared.Paginated[property.Mall], err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "mall", "get_list",
		telemetry.SpanAttrPage, page,
		telemetry.SpanAttrPerPage, perPage,
	)
	defer func() { telemetry.EndSpan(span, err) }()

	return s.repo.GetList(ctx, page, perPage)
}

// Update applies a partial update to a mall
func (s *MallService) Update(ctx context.Context, id uint, update property.MallUpdate) (_ bool, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "mall", "update", telemetry.SpanAttrMallID, id)
	defer func() { telemetry.EndSpan(span, err) }()

	return s.repo.Update(ctx, id, update)
}

// Delete deletes a mall and its units
func (s *MallService) Delete(ctx context.Context, id uint) (_ bool, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "mall", "delete", telemetry.SpanAttrMallID, id)
	defer func() { telemetry.EndSpan(span, err) }()

	return s.repo.Delete(ctx, id)
}

// Get returns a mall with its units
func (s *MallService) Get(ctx context.Context, id uint) (_ *property.Mall, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "mall", "get", telemetry.SpanAttrMallID, id)
	defer func() { telemetry.EndSpan(span, err) }()

	return s.repo.Get(ctx, id)
}
