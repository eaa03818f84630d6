package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	defer viper.Reset()
	path := filepath.Join(t.TempDir(), "arealookup.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mysql:\n  ip: 10.0.0.1\n  port: \"3306\"\n"), 0o600))
	t.Setenv("AREA_MYSQL_PORT", "3307")

	require.NoError(t, LoadConfig(WithConfigFile(path)))
	assert.Equal(t, "10.0.0.1", viper.GetString("mysql.ip"))
	assert.Equal(t, "3307", viper.GetString("mysql.port"))
}

func TestLoadConfigMissing(t *testing.T) {
	defer viper.Reset()
	err := LoadConfig(WithConfigFile(filepath.Join(t.TempDir(), "absent.yaml")))
	assert.Error(t, err)
}
