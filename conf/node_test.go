package conf

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gt.pro/gtio/go-ucoin/util/config"
)

func TestNodeConfig(t *testing.T) {
	c, err := config.NewMemConfig()
	require.NoError(t, err)

	node := GetNodeConfig(c)
	assert.Equal(t, "data", node.Datadir)
	assert.Equal(t, filepath.Join("data", "records"), node.RecordsDir())

	SetNodeConfig(c, &NodeConfig{Datadir: ""})
	assert.Equal(t, DefaultDataDIR, GetNodeConfig(c).Datadir)

	SetNodeConfig(c, &NodeConfig{Datadir: "/var/ucoin"})
	assert.Equal(t, "/var/ucoin/records", GetNodeConfig(c).RecordsDir())
}
