package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/emoji-ontology/internal/core/domain"
)

func TestUsageFetchCmd_DefaultURL(t *testing.T) {
	s := setupTestServices(t)

	out, err := execute(t, "usage", "fetch")
	require.NoError(t, err)

	assert.Equal(t, "http://tracker.test/", s.usage.url)
	assert.Contains(t, out, "Cached usage for 845 glyphs.")
}

func TestUsageFetchCmd_ExplicitURL(t *testing.T) {
	s := setupTestServices(t)

	_, err := execute(t, "usage", "fetch", "http://other.test/")
	require.NoError(t, err)

	assert.Equal(t, "http://other.test/", s.usage.url)
}

func TestUsageFetchCmd_NoURL(t *testing.T) {
	setupTestServices(t)
	defaultUsageURL = ""

	_, err := execute(t, "usage", "fetch")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage.url")
}

func TestUsageFetchCmd_Failure(t *testing.T) {
	s := setupTestServices(t)
	s.usage.err = domain.ErrExternalService

	_, err := execute(t, "usage", "fetch")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExternalService)
}

func TestUsageImportCmd(t *testing.T) {
	s := setupTestServices(t)

	out, err := execute(t, "usage", "import", "saved.txt")
	require.NoError(t, err)

	assert.Equal(t, "saved.txt", s.usage.path)
	assert.Contains(t, out, "Cached usage for 12 glyphs.")
}

func TestUsageImportCmd_RequiresFile(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "usage", "import")

	assert.Error(t, err)
}
