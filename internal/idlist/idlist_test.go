package idlist

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	s := New("ENST1", " ENST2 ", "", "ENST1")

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("ENST1"))
	assert.True(t, s.Contains("ENST2"))
	assert.False(t, s.Contains(""))
}

func TestContainsEmptySet(t *testing.T) {
	var s Set
	assert.False(t, s.Contains("ENST1"))
	assert.Equal(t, 0, s.Len())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcripts.txt")
	content := "# transcripts of interest\nENST00000311936\n\nENST00000646891\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("ENST00000311936"))
	assert.True(t, s.Contains("ENST00000646891"))
}

func TestLoadGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcripts.txt.gz")

	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte("ENST00000311936\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Contains("ENST00000311936"))
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load("/nonexistent/transcripts.txt")
	assert.Error(t, err)
}
