package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termpong/internal/pong"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pong.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	path := writeConfig(t, `{
		"logLevel": "debug",
		"logFile": "/tmp/game.log",
		"assetDir": "/srv/assets",
		"backend": "ansi",
		"player": "green",
		"seed": 99,
		"maxFps": 30
	}`)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, Configuration{
		LogLevel: "debug",
		LogFile:  "/tmp/game.log",
		AssetDir: "/srv/assets",
		Backend:  BackendANSI,
		Player:   pong.GreenPaddle,
		Seed:     99,
		MaxFps:   30,
	}, c)
}

func TestLoad_DefaultValues(t *testing.T) {
	c, err := Load(writeConfig(t, `{}`))
	require.NoError(t, err)

	assert.Equal(t, Configuration{
		LogLevel: "info",
		LogFile:  "pong.log",
		AssetDir: "./assets",
		Backend:  BackendTcell,
		Player:   pong.BluePaddle,
	}, c)
}

func TestLoad_ShippedConfig(t *testing.T) {
	c, err := Load(filepath.Join("..", "..", DefaultFile))
	require.NoError(t, err)

	assert.Zero(t, c.MaxFps, "the sample config leaves the loop unthrottled")
	assert.Equal(t, BackendTcell, c.Backend)
	assert.Equal(t, pong.BluePaddle, c.Player)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)

	assert.Equal(t, BackendTcell, c.Backend)
	assert.Equal(t, "./assets", c.AssetDir)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PONG_BACKEND", "ansi")
	t.Setenv("PONG_PLAYER", "green")

	c, err := Load(writeConfig(t, `{"backend": "tcell"}`))
	require.NoError(t, err)

	assert.Equal(t, BackendANSI, c.Backend)
	assert.Equal(t, pong.GreenPaddle, c.Player)
}

func TestLoad_MalformedFile(t *testing.T) {
	_, err := Load(writeConfig(t, `{"logLevel": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoad_UnknownPlayer(t *testing.T) {
	_, err := Load(writeConfig(t, `{"player": "red"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown player")
}

func TestLoad_InvalidValues(t *testing.T) {
	_, err := Load(writeConfig(t, `{"backend": "opengl", "maxFps": -1, "logLevel": "loud"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validating config")
	assert.Contains(t, err.Error(), `unknown backend "opengl"`)
	assert.Contains(t, err.Error(), "maxFps must not be negative")
	assert.Contains(t, err.Error(), `unknown logLevel "loud"`)
}

func TestValidate(t *testing.T) {
	c := Configuration{LogLevel: "WARN", LogFile: "x.log", AssetDir: "a", Backend: BackendTcell}
	assert.NoError(t, c.Validate())

	c.AssetDir = ""
	c.LogFile = ""
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "assetDir is required")
	assert.Contains(t, err.Error(), "logFile is required")
}
