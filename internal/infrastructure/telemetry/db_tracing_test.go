package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/mallhub/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
)

func findSpanAttr(span tracetest.SpanStub, key attribute.Key) (attribute.Value, bool) {
	for _, kv := range span.Attributes {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestDBTracingPlugin_Disabled(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	plugin := NewDBTracingPlugin(DBTracingConfig{Enabled: false}, zap.NewNop())
	require.NoError(t, plugin.Register(db))

	_, registered := db.Config.Plugins["otelgorm"]
	assert.False(t, registered)
}

func TestDBTracingPlugin_AnnotatesSpans(t *testing.T) {
	exporter := useInMemoryTracing(t)
	db := testutil.NewSQLiteDB(t)

	plugin := NewDBTracingPlugin(DBTracingConfig{
		Enabled:         true,
		DBSystem:        "sqlite",
		SlowQueryThresh: time.Nanosecond,
	}, zap.NewNop())
	require.NoError(t, plugin.Register(db))

	require.NoError(t, db.WithContext(context.Background()).
		Table("accounts").
		Create(map[string]any{"name": "Acme"}).Error)

	var insert *tracetest.SpanStub
	for _, span := range exporter.GetSpans() {
		if _, ok := findSpanAttr(span, "db.sql.table"); ok {
			span := span
			insert = &span
			break
		}
	}
	require.NotNil(t, insert, "expected an annotated statement span")

	rows, ok := findSpanAttr(*insert, "db.rows_affected")
	require.True(t, ok)
	assert.Equal(t, int64(1), rows.AsInt64())

	slow, ok := findSpanAttr(*insert, "db.slow_query")
	require.True(t, ok)
	assert.True(t, slow.AsBool())
}
