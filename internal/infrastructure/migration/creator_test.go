package migration

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"create malls table", "create_malls_table"},
		{"Add-Unit-Index", "add_unit_index"},
		{"ADD_UNIT_INDEX", "add_unit_index"},
		{"add__unit__index", "add_unit_index"},
		{"Add Units 123", "add_units_123"},
		{"   spaces   ", "spaces"},
		{"special!@#$chars", "specialchars"},
		{"_leading", "leading"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeName(tt.input))
		})
	}
}

func TestCreateMigration(t *testing.T) {
	root := t.TempDir()

	files, err := CreateMigration(root, "add unit index", "Index units by mall")
	require.NoError(t, err)
	require.Len(t, files, len(Dialects))

	for _, mf := range files {
		assert.Len(t, mf.Version, 14)
		assert.Equal(t, files[0].Version, mf.Version)
		assert.Equal(t, mf.Dialect.Dir(root), filepath.Dir(mf.UpPath))

		upBase := strings.TrimSuffix(filepath.Base(mf.UpPath), ".up.sql")
		downBase := strings.TrimSuffix(filepath.Base(mf.DownPath), ".down.sql")
		assert.Equal(t, upBase, downBase)

		upContent, err := os.ReadFile(mf.UpPath)
		require.NoError(t, err)
		assert.Contains(t, string(upContent), "Index units by mall")
		assert.Contains(t, string(upContent), string(mf.Dialect))

		downContent, err := os.ReadFile(mf.DownPath)
		require.NoError(t, err)
		assert.Contains(t, string(downContent), "rollback")
	}

	assert.NoError(t, CheckAligned(root))
}

func TestCreateMigration_RejectsEmptyName(t *testing.T) {
	_, err := CreateMigration(t.TempDir(), "!!!", "")
	assert.Error(t, err)
}

func TestListMigrations(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		"000002_add_units.up.sql",
		"000002_add_units.down.sql",
		"000001_init_schema.up.sql",
		"000001_init_schema.down.sql",
		"README.md",
		".gitkeep",
	}
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("-- test"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir.up.sql"), 0755))

	migrations, err := ListMigrations(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"000001_init_schema", "000002_add_units"}, migrations)
}

func TestListMigrations_NonexistentDirectory(t *testing.T) {
	migrations, err := ListMigrations("/nonexistent/path/to/migrations")
	require.NoError(t, err)
	assert.Empty(t, migrations)
}

func TestCheckAligned_DetectsDrift(t *testing.T) {
	root := t.TempDir()
	pgDir := DialectPostgres.Dir(root)
	require.NoError(t, os.MkdirAll(pgDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(pgDir, "000001_init.up.sql"), nil, 0644))

	assert.Error(t, CheckAligned(root))
}

func TestRepositoryMigrationsAreAligned(t *testing.T) {
	_, filename, _, ok := runtime.Caller(0)
	require.True(t, ok)
	root := filepath.Join(filepath.Dir(filename), "..", "..", "..", "migrations")

	names, err := ListMigrations(DialectPostgres.Dir(root))
	require.NoError(t, err)
	assert.NotEmpty(t, names)
	assert.NoError(t, CheckAligned(root))
}

func TestParseDialect(t *testing.T) {
	tests := []struct {
		input   string
		want    Dialect
		wantErr bool
	}{
		{"", DialectPostgres, false},
		{"postgres", DialectPostgres, false},
		{"sqlite", DialectSQLite, false},
		{"sqlite3", DialectSQLite, false},
		{"mysql", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDialect(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDialect_DriverName(t *testing.T) {
	assert.Equal(t, "postgres", DialectPostgres.DriverName())
	assert.Equal(t, "sqlite3", DialectSQLite.DriverName())
}
