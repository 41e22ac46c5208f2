package telemetry

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type statementStartKey struct{}

func markStatementStart(tx *gorm.DB) {
	ctx := tx.Statement.Context
	if ctx == nil {
		ctx = context.Background()
	}
	tx.Statement.Context = context.WithValue(ctx, statementStartKey{}, time.Now())
}

func statementStart(tx *gorm.DB) (time.Time, bool) {
	if tx.Statement.Context == nil {
		return time.Time{}, false
	}
	start, ok := tx.Statement.Context.Value(statementStartKey{}).(time.Time)
	return start, ok
}

type gormRegister interface {
	Register(name string, fn func(*gorm.DB)) error
}

// registerAround registers a start-time callback before every GORM statement
// kind and after(kind) once the statement ran. With insideSpan the after
// callback runs before otelgorm ends the statement span.
func registerAround(db *gorm.DB, prefix string, insideSpan bool, after func(kind string) func(*gorm.DB)) error {
	cb := db.Callback()
	hooks := []struct {
		kind       string
		before     gormRegister
		after      gormRegister
		afterInner gormRegister
	}{
		{"create", cb.Create().Before("gorm:create"), cb.Create().After("gorm:create"),
			cb.Create().After("gorm:create").Before("otel:after:create")},
		{"query", cb.Query().Before("gorm:query"), cb.Query().After("gorm:query"),
			cb.Query().After("gorm:query").Before("otel:after:select")},
		{"update", cb.Update().Before("gorm:update"), cb.Update().After("gorm:update"),
			cb.Update().After("gorm:update").Before("otel:after:update")},
		{"delete", cb.Delete().Before("gorm:delete"), cb.Delete().After("gorm:delete"),
			cb.Delete().After("gorm:delete").Before("otel:after:delete")},
		{"row", cb.Row().Before("gorm:row"), cb.Row().After("gorm:row"),
			cb.Row().After("gorm:row").Before("otel:after:row")},
		{"raw", cb.Raw().Before("gorm:raw"), cb.Raw().After("gorm:raw"),
			cb.Raw().After("gorm:raw").Before("otel:after:raw")},
	}

	for _, h := range hooks {
		if err := h.before.Register(prefix+":before_"+h.kind, markStatementStart); err != nil {
			return fmt.Errorf("register %s before %s: %w", prefix, h.kind, err)
		}
		afterHook := h.after
		if insideSpan {
			afterHook = h.afterInner
		}
		if err := afterHook.Register(prefix+":after_"+h.kind, after(h.kind)); err != nil {
			return fmt.Errorf("register %s after %s: %w", prefix, h.kind, err)
		}
	}
	return nil
}
