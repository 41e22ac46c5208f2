package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func newObservedGormLogger(level gormlogger.LogLevel, opts ...GormLoggerOption) (*GormLogger, *observer.ObservedLogs) {
	core, recorded := observer.New(zapcore.DebugLevel)
	return NewGormLogger(zap.New(core), level, opts...), recorded
}

func sqlFunc(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestGormLogger_LogMode(t *testing.T) {
	gl, _ := newObservedGormLogger(gormlogger.Info)
	changed, ok := gl.LogMode(gormlogger.Warn).(*GormLogger)
	require.True(t, ok)

	assert.Equal(t, gormlogger.Info, gl.logLevel)
	assert.Equal(t, gormlogger.Warn, changed.logLevel)
}

func TestGormLogger_Trace(t *testing.T) {
	t.Run("logs errors", func(t *testing.T) {
		gl, recorded := newObservedGormLogger(gormlogger.Warn)
		gl.Trace(context.Background(), time.Now(), sqlFunc(`INSERT INTO "accounts"`, 0), errors.New("duplicate key"))

		logs := recorded.FilterMessage("SQL Error").All()
		require.Len(t, logs, 1)
		assert.Equal(t, `INSERT INTO "accounts"`, logs[0].ContextMap()["sql"])
	})

	t.Run("skips record not found", func(t *testing.T) {
		gl, recorded := newObservedGormLogger(gormlogger.Warn)
		gl.Trace(context.Background(), time.Now(), sqlFunc("SELECT 1", 0), gormlogger.ErrRecordNotFound)
		assert.Zero(t, recorded.Len())
	})

	t.Run("warns on slow queries", func(t *testing.T) {
		gl, recorded := newObservedGormLogger(gormlogger.Warn, WithSlowThreshold(10*time.Millisecond))
		gl.Trace(context.Background(), time.Now().Add(-time.Second), sqlFunc("SELECT * FROM units", 3), nil)
		assert.Equal(t, 1, recorded.FilterMessage("Slow SQL").Len())
	})

	t.Run("omits statement when disabled", func(t *testing.T) {
		gl, recorded := newObservedGormLogger(gormlogger.Info, WithSQL(false))
		ctx, _ := WithRequestID(context.Background(), zap.NewNop(), "req-9")
		gl.Trace(ctx, time.Now(), sqlFunc("SELECT * FROM malls", 1), nil)

		logs := recorded.FilterMessage("SQL Query").All()
		require.Len(t, logs, 1)
		fields := logs[0].ContextMap()
		assert.NotContains(t, fields, "sql")
		assert.Equal(t, "req-9", fields["request_id"])
	})

	t.Run("expected errors are warnings", func(t *testing.T) {
		errDuplicate := errors.New("UNIQUE constraint failed: accounts.name")
		gl, recorded := newObservedGormLogger(gormlogger.Warn, WithExpectedErrors(func(err error) bool {
			return errors.Is(err, errDuplicate)
		}))
		gl.Trace(context.Background(), time.Now(), sqlFunc(`INSERT INTO "accounts"`, 0), errDuplicate)

		logs := recorded.All()
		require.Len(t, logs, 1)
		assert.Equal(t, "SQL constraint violation", logs[0].Message)
		assert.Equal(t, zapcore.WarnLevel, logs[0].Level)
	})

	t.Run("expected errors are dropped at error level", func(t *testing.T) {
		gl, recorded := newObservedGormLogger(gormlogger.Error, WithExpectedErrors(func(error) bool { return true }))
		gl.Trace(context.Background(), time.Now(), sqlFunc(`INSERT INTO "malls"`, 0), errors.New("fk"))
		assert.Zero(t, recorded.Len())
	})

	t.Run("fast queries are not logged at warn", func(t *testing.T) {
		gl, recorded := newObservedGormLogger(gormlogger.Warn)
		gl.Trace(context.Background(), time.Now(), sqlFunc("SELECT 1", 1), nil)
		assert.Zero(t, recorded.Len())
	})

	t.Run("silent logs nothing", func(t *testing.T) {
		gl, recorded := newObservedGormLogger(gormlogger.Silent)
		gl.Trace(context.Background(), time.Now(), sqlFunc("SELECT 1", 1), errors.New("boom"))
		assert.Zero(t, recorded.Len())
	})
}

func TestMapGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, MapGormLogLevel("silent"))
	assert.Equal(t, gormlogger.Error, MapGormLogLevel("error"))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("unknown"))
}
