package property

import (
	"context"

	"github.com/mallhub/backend/internal/domain/property"
	"github.com/mallhub/backend/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock implementation of AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, input property.NewAccount) (*property.Account, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Account), args.Error(1)
}

func (m *MockAccountRepository) BulkCreate(ctx context.Context, inputs []property.NewAccount) error {
	return m.Called(ctx, inputs).Error(0)
}

func (m *MockAccountRepository) GetList(ctx context.Context, page, perPage int) (*shared.Paginated[property.Account], error) {
	args := m.Called(ctx, page, perPage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[property.Account]), args.Error(1)
}

func (m *MockAccountRepository) Update(ctx context.Context, id uint, update property.AccountUpdate) (bool, error) {
	args := m.Called(ctx, id, update)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) Delete(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) Get(ctx context.Context, id uint) (*property.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Account), args.Error(1)
}

// MockMallRepository is a mock implementation of MallRepository
type MockMallRepository struct {
	mock.Mock
}

func (m *MockMallRepository) Create(ctx context.Context, input property.NewMall) (*property.Mall, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Mall), args.Error(1)
}

func (m *MockMallRepository) BulkCreate(ctx context.Context, inputs []property.NewMall) error {
	return m.Called(ctx, inputs).Error(0)
}

func (m *MockMallRepository) GetList(ctx context.Context, page, perPage int) (*shared.Paginated[property.Mall], error) {
	args := m.Called(ctx, page, perPage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[property.Mall]), args.Error(1)
}

func (m *MockMallRepository) Update(ctx context.Context, id uint, update property.MallUpdate) (bool, error) {
	args := m.Called(ctx, id, update)
	return args.Bool(0), args.Error(1)
}

func (m *MockMallRepository) Delete(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockMallRepository) Get(ctx context.Context, id uint) (*property.Mall, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Mall), args.Error(1)
}

// MockUnitRepository is a mock implementation of UnitRepository
type MockUnitRepository struct {
	mock.Mock
}

func (m *MockUnitRepository) Create(ctx context.Context, input property.NewUnit) (*property.Unit, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Unit), args.Error(1)
}

func (m *MockUnitRepository) BulkCreate(ctx context.Context, inputs []property.NewUnit) error {
	return m.Called(ctx, inputs).Error(0)
}

func (m *MockUnitRepository) GetList(ctx context.Context, page, perPage int) (*shared.Paginated[property.Unit], error) {
	args := m.Called(ctx, page, perPage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[property.Unit]), args.Error(1)
}

func (m *MockUnitRepository) Update(ctx context.Context, id uint, update property.UnitUpdate) (bool, error) {
	args := m.Called(ctx, id, update)
	return args.Bool(0), args.Error(1)
}

func (m *MockUnitRepository) Delete(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUnitRepository) Get(ctx context.Context, id uint) (*property.Unit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Unit), args.Error(1)
}
