package util

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWrite(t *testing.T) {
	file := filepath.Join(t.TempDir(), "a", "b", "conf.yaml")

	exist, err := FileExists(file)
	require.NoError(t, err)
	assert.False(t, exist)

	require.NoError(t, FileWrite(file, []byte("one"), 0600))
	require.NoError(t, FileWrite(file, []byte("two"), 0600))

	data, err := ioutil.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))

	info, err := os.Stat(file)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	entries, err := ioutil.ReadDir(filepath.Dir(file))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCreateDirIfNotExist(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "x", "y")
	require.NoError(t, CreateDirIfNotExist(dir))
	require.NoError(t, CreateDirIfNotExist(dir))

	exist, err := FileExists(dir)
	require.NoError(t, err)
	assert.True(t, exist)
}
