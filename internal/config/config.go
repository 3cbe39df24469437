// Package config loads service settings from defaults, an optional config
// file, the environment and command-line flags, in increasing precedence.
package config

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Keys understood by Load. Environment variables use the upper-cased key
// with dots replaced by underscores, e.g. HTTP_ADDR.
const (
	KeyHTTPAddr         = "http.addr"
	KeyHTTPReadTimeout  = "http.read_timeout"
	KeyHTTPWriteTimeout = "http.write_timeout"
	KeyShutdownTimeout  = "shutdown.timeout"
	KeyLogLevel         = "log.level"
	KeyLogDir           = "log.dir"
	KeyOTelEnabled      = "otel.enabled"
	KeyOTelLogsEnabled  = "otel.logs_enabled"
)

type Config struct {
	HTTP      HTTP
	Shutdown  time.Duration
	Log       Log
	Telemetry Telemetry
}

type HTTP struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type Log struct {
	Level string
	Dir   string
}

type Telemetry struct {
	Enabled     bool
	LogsEnabled bool
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyHTTPAddr, ":8080")
	v.SetDefault(KeyHTTPReadTimeout, 5*time.Second)
	v.SetDefault(KeyHTTPWriteTimeout, 10*time.Second)
	v.SetDefault(KeyShutdownTimeout, 5*time.Second)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogDir, "")
	v.SetDefault(KeyOTelEnabled, false)
	v.SetDefault(KeyOTelLogsEnabled, false)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the optional config file and returns the validated settings.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "reading config file %s", file)
		}
	}

	cfg := Config{
		HTTP: HTTP{
			Addr:         v.GetString(KeyHTTPAddr),
			ReadTimeout:  v.GetDuration(KeyHTTPReadTimeout),
			WriteTimeout: v.GetDuration(KeyHTTPWriteTimeout),
		},
		Shutdown: v.GetDuration(KeyShutdownTimeout),
		Log: Log{
			Level: v.GetString(KeyLogLevel),
			Dir:   v.GetString(KeyLogDir),
		},
		Telemetry: Telemetry{
			Enabled:     v.GetBool(KeyOTelEnabled),
			LogsEnabled: v.GetBool(KeyOTelLogsEnabled),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.HTTP.Addr == "" {
		return errors.Newf("%s must not be empty", KeyHTTPAddr)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrapf(err, "invalid %s", KeyLogLevel)
	}
	for key, d := range map[string]time.Duration{
		KeyHTTPReadTimeout:  c.HTTP.ReadTimeout,
		KeyHTTPWriteTimeout: c.HTTP.WriteTimeout,
		KeyShutdownTimeout:  c.Shutdown,
	} {
		if d <= 0 {
			return errors.Newf("%s must be positive, got %s", key, d)
		}
	}
	if c.Telemetry.LogsEnabled && !c.Telemetry.Enabled {
		return errors.Newf("%s requires %s", KeyOTelLogsEnabled, KeyOTelEnabled)
	}
	return nil
}
