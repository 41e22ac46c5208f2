//go:build integration

package persistence

import (
	"os"
	"testing"

	"github.com/mallhub/backend/internal/testutil"
)

func TestMain(m *testing.M) {
	code := m.Run()
	testutil.TerminatePostgres()
	os.Exit(code)
}

func TestRepositories_Postgres(t *testing.T) {
	runRepositoryContract(t, testutil.NewPostgresDB)
}
