package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/mallhub/backend/internal/domain/shared"
	"github.com/mallhub/backend/internal/infrastructure/persistence"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Operation outcomes reported on repository metrics.
const (
	OutcomeSuccess   = "success"
	OutcomeNotFound  = "not_found"
	OutcomeIntegrity = "integrity_violation"
	OutcomeError     = "error"
)

// RepositoryMetrics records the outcome of every repository operation.
// It implements persistence.OperationObserver.
type RepositoryMetrics struct {
	operations          *Counter
	integrityViolations *Counter
	duration            *Histogram
	logger              *zap.Logger
}

var _ persistence.OperationObserver = (*RepositoryMetrics)(nil)

// NewRepositoryMetrics creates the repository instruments on meter.
func NewRepositoryMetrics(meter metric.Meter, logger *zap.Logger) (*RepositoryMetrics, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	operations, err := NewCounter(meter,
		"repository_operations_total",
		"Repository operations by entity, operation and outcome",
		"{operation}",
	)
	if err != nil {
		return nil, err
	}

	integrityViolations, err := NewCounter(meter,
		"repository_integrity_violations_total",
		"Integrity constraint violations raised by the store",
		"{violation}",
	)
	if err != nil {
		return nil, err
	}

	duration, err := NewHistogram(meter,
		"repository_operation_duration_seconds",
		"Repository operation latency including the enclosing transaction",
		"s",
		DBDurationBuckets,
	)
	if err != nil {
		return nil, err
	}

	return &RepositoryMetrics{
		operations:          operations,
		integrityViolations: integrityViolations,
		duration:            duration,
		logger:              logger,
	}, nil
}

// ObserveOperation implements persistence.OperationObserver.
func (m *RepositoryMetrics) ObserveOperation(ctx context.Context, entity, operation string, duration time.Duration, err error) {
	outcome := Outcome(err)
	entityAttr := AttrEntity.String(entity)
	operationAttr := AttrOperation.String(operation)

	m.operations.Inc(ctx, entityAttr, operationAttr, AttrOutcome.String(outcome))
	m.duration.RecordDuration(ctx, duration, entityAttr, operationAttr)

	if outcome == OutcomeIntegrity {
		kind := persistence.ClassifyIntegrity(err)
		m.integrityViolations.Inc(ctx, entityAttr, operationAttr, AttrIntegrityKind.String(kind.String()))
	}
	if outcome == OutcomeError && !errors.Is(err, context.Canceled) {
		m.logger.Warn("Repository operation failed",
			zap.String("entity", entity),
			zap.String("operation", operation),
			zap.Error(err),
		)
	}
}

// Outcome buckets a raw repository error into a low-cardinality label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, gorm.ErrRecordNotFound), shared.IsDoesNotExist(err):
		return OutcomeNotFound
	case persistence.ClassifyIntegrity(err) != persistence.NotIntegrity:
		return OutcomeIntegrity
	default:
		return OutcomeError
	}
}
