package pcn_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/the-pinbo/ROBDD/internal/pcn"
)

func TestCacheParseCachesUntilMtimeChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.pcn")
	require.NoError(t, os.WriteFile(path, []byte("1\n1\n1 1\n"), 0o644))

	c := pcn.NewCache()
	_, _, changed, err := c.Parse(path)
	require.NoError(t, err)
	assert.True(t, changed, "first parse is always reported changed")

	_, _, changed, err = c.Parse(path)
	require.NoError(t, err)
	assert.False(t, changed, "unchanged mtime must hit the cache")
}

func TestCacheParseReportsUnchangedContentAfterTouch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.pcn")
	require.NoError(t, os.WriteFile(path, []byte("1\n1\n1 1\n"), 0o644))

	c := pcn.NewCache()
	_, _, _, err := c.Parse(path)
	require.NoError(t, err)

	// Bump mtime without changing content: the semantic digest must be
	// unchanged even though the file was rewritten.
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, future, future))
	require.NoError(t, os.WriteFile(path, []byte("1\n1\n1 1\n"), 0o644))
	require.NoError(t, os.Chtimes(path, future, future))

	_, _, changed, err := c.Parse(path)
	require.NoError(t, err)
	assert.False(t, changed, "identical cube content must not be reported as changed")
}

func TestCacheParseReportsChangedContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.pcn")
	require.NoError(t, os.WriteFile(path, []byte("1\n1\n1 1\n"), 0o644))

	c := pcn.NewCache()
	_, _, _, err := c.Parse(path)
	require.NoError(t, err)

	future := time.Now().Add(time.Hour)
	require.NoError(t, os.WriteFile(path, []byte("1\n1\n1 -1\n"), 0o644))
	require.NoError(t, os.Chtimes(path, future, future))

	_, _, changed, err := c.Parse(path)
	require.NoError(t, err)
	assert.True(t, changed, "different cube content must be reported as changed")
}
