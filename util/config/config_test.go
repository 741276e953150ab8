package config

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemConfigDefaults(t *testing.T) {
	c, err := NewMemConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", c.GetString("log/log_level"))
	assert.Equal(t, 3600, c.GetInt("log/log_rotationTime"))
	assert.Equal(t, "levelDB", c.GetString("database/db_type"))
	assert.False(t, c.GetBool("stats/enable_metrics"))
	assert.Nil(t, c.Get("missing/key"))
	assert.Nil(t, c.Get("log/log_level/deeper"))
	assert.Equal(t, "", c.FilePath())
}

func TestSetAndGetObject(t *testing.T) {
	c, err := NewMemConfig()
	require.NoError(t, err)

	type db struct {
		DbType string `yaml:"db_type"`
		DbDir  string `yaml:"db_dir"`
	}
	assert.Equal(t, "levelDB", c.GetString("database/db_type"))
	c.Set("database", &db{DbType: "memory", DbDir: "x"})
	assert.Equal(t, "memory", c.GetString("database/db_type"), "cache must be invalidated by Set")

	out := new(db)
	assert.NotNil(t, c.GetObject("database", out))
	assert.Equal(t, "x", out.DbDir)

	c.Set("new/section/key", 7)
	assert.Equal(t, 7, c.GetInt("new/section/key"))

	assert.Nil(t, c.GetObject("absent", out))
}

func TestInitConfigCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "ucoin.yaml")
	c, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, path, c.FilePath())

	data, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "log_level")

	again, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "info", again.GetString("log/log_level"))
}

func TestNewFileConfigErrors(t *testing.T) {
	_, err := NewFileConfig("")
	assert.Equal(t, ErrEmptyPath, err)

	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, ioutil.WriteFile(path, nil, 0600))
	_, err = NewFileConfig(path)
	assert.Equal(t, ErrEmptyConfig, err)
}
