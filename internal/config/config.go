package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	goerrors "github.com/pixil98/go-errors"
	"github.com/spf13/viper"

	"termpong/internal/pong"
)

const (
	DefaultFile = "pong.json"
	envPrefix   = "PONG"
)

type Backend string

const (
	BackendTcell Backend = "tcell"
	BackendANSI  Backend = "ansi"
)

type Configuration struct {
	LogLevel string        `mapstructure:"logLevel"`
	LogFile  string        `mapstructure:"logFile"`
	AssetDir string        `mapstructure:"assetDir"`
	Backend  Backend       `mapstructure:"backend"`
	Player   pong.PlayerId `mapstructure:"-"`
	Seed     uint64        `mapstructure:"seed"`
	MaxFps   int           `mapstructure:"maxFps"`
}

func (c *Configuration) Validate() error {
	el := goerrors.NewErrorList()

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		el.Add(fmt.Errorf("unknown logLevel %q", c.LogLevel))
	}

	if c.LogFile == "" {
		el.Add(fmt.Errorf("logFile is required"))
	}

	if c.AssetDir == "" {
		el.Add(fmt.Errorf("assetDir is required"))
	}

	switch c.Backend {
	case BackendTcell, BackendANSI:
	default:
		el.Add(fmt.Errorf("unknown backend %q", c.Backend))
	}

	if c.MaxFps < 0 {
		el.Add(fmt.Errorf("maxFps must not be negative"))
	}

	return el.Err()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", "pong.log")
	v.SetDefault("assetDir", "./assets")
	v.SetDefault("backend", string(BackendTcell))
	v.SetDefault("player", pong.BluePaddle.String())
	v.SetDefault("seed", 0)
	v.SetDefault("maxFps", 0)
}

// Load reads the JSON configuration at path, falling back to DefaultFile when
// path is empty. A missing file is not an error: defaults and PONG_*
// environment variables are used instead.
func Load(path string) (Configuration, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if path == "" {
		path = DefaultFile
	}
	v.SetConfigFile(path)
	v.SetConfigType("json")

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Configuration{}, fmt.Errorf("reading config file %q: %w", path, err)
		}
		slog.Info("failed to open config at path provided, using default config instead", slog.String("path", path))
	}

	var c Configuration
	err = v.Unmarshal(&c)
	if err != nil {
		return Configuration{}, fmt.Errorf("decoding config: %w", err)
	}

	err = c.Player.UnmarshalText([]byte(v.GetString("player")))
	if err != nil {
		return Configuration{}, fmt.Errorf("decoding config: %w", err)
	}

	err = c.Validate()
	if err != nil {
		return Configuration{}, fmt.Errorf("validating config: %w", err)
	}

	return c, nil
}
