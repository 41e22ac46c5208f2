package property

import (
	"context"

	"github.com/mallhub/backend/internal/domain/property"
	"github.com/mallhub/backend/internal/domain/shared"
	"github.com/mallhub/backend/internal/infrastructure/telemetry"
)

// AccountService exposes account operations to the HTTP layer.
// Every call runs inside a "account.<operation>" span.
type AccountService struct {
	repo property.AccountRepository
}

// NewAccountService creates a new AccountService
func NewAccountService(repo property.AccountRepository) *AccountService {
	return &AccountService{repo: repo}
}

// Create creates an account
func (s *AccountService) Create(ctx context.Context, input property.NewAccount) (_ *property.Account, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "account", "create")
	defer func() { telemetry.EndSpan(span, err) }()

	return s.repo.Create(ctx, input)
}

// BulkCreate creates several accounts in one transaction
func (s *AccountService) BulkCreate(ctx context.Context, inputs []property.NewAccount) (err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "account", "bulk_create", telemetry.SpanAttrBatchSize, len(inputs))
	defer func() { telemetry.EndSpan(span, err) }()

	return s.repo.BulkCreate(ctx, inputs)
}

// GetList returns a page of accounts
func (s *AccountService) GetList(ctx context.Context, page, perPage int) (_ *shared.Paginated[property.Account], err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "account", "get_list",
		telemetry.SpanAttrPage, page,
		telemetry.SpanAttrPerPage, perPage,
	)
	defer func() { telemetry.EndSpan(span, err) }()

	return s.repo.GetList(ctx, page, perPage)
}

// Update applies a partial update to an account
func (s *AccountService) Update(ctx context.Context, id uint, update property.AccountUpdate) (_ bool, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "account", "update", telemetry.SpanAttrAccountID, id)
	defer func() { telemetry.EndSpan(span, err) }()

	return s.repo.Update(ctx, id, update)
}

// Delete deletes an account and everything it owns
func (s *AccountService) Delete(ctx context.Context, id uint) (_ bool, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "account", "delete", telemetry.SpanAttrAccountID, id)
	defer func() { telemetry.EndSpan(span, err) }()

	return s.repo.Delete(ctx, id)
}

// Get returns an account with its malls
func (s *AccountService) Get(ctx context.Context, id uint) (_ *property.Account, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "account", "get", telemetry.SpanAttrAccountID, id)
	defer func() { telemetry.EndSpan(span, err) }()

	return s.repo.Get(ctx, id)
}
