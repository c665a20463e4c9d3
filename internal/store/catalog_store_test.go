package store

import (
	"context"
	"os"
	"testing"

	"github.com/jjenkins/resume/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a real PostgreSQL when TEST_DATABASE_URL is set
func TestCatalogStoreRoundTrip(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := NewDB(dsn)
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	s := NewCatalogStore(db)
	require.NoError(t, s.EnsureSchema(ctx))

	want, err := catalog.Default()
	require.NoError(t, err)

	n, err := s.Replace(ctx, want)
	require.NoError(t, err)
	assert.Equal(t, want.Len(), n)

	got, err := s.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, want.Categories(), got.Categories())
}
