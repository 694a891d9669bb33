package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/akyairhashvil/ecoweek/internal/models"
	"github.com/akyairhashvil/ecoweek/internal/util"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// ThemeNames lists the themes the TUI ships.
var ThemeNames = []string{"default", "forest", "ocean"}

// Settings is the runtime configuration resolved from file, environment and
// flags, in increasing order of precedence.
type Settings struct {
	Theme        string        `mapstructure:"theme"`
	Seed         bool          `mapstructure:"seed"`
	CatalogDB    string        `mapstructure:"catalog_db"`
	Today        string        `mapstructure:"today"`
	LogFile      string        `mapstructure:"log_file"`
	LogLevel     string        `mapstructure:"log_level"`
	AlertTimeout time.Duration `mapstructure:"alert_timeout"`
	ReportDir    string        `mapstructure:"report_dir"`
	Mouse        bool          `mapstructure:"mouse"`
}

// SetDefaults registers every key so environment variables bind to them.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("theme", "default")
	v.SetDefault("seed", true)
	v.SetDefault("catalog_db", "")
	v.SetDefault("today", "")
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("alert_timeout", DefaultAlertTimeout)
	v.SetDefault("report_dir", util.ReportsDir(AppName))
	v.SetDefault("mouse", true)
}

// Load reads configFile, or the first config.yaml found in the config
// directory or the working directory. A missing file is not an error.
func Load(v *viper.Viper, configFile string) (Settings, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(ConfigFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(util.ConfigDir(AppName))
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	var s Settings
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		timeToDateKeyHook(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&s, hook); err != nil {
		return Settings{}, fmt.Errorf("decode config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// timeToDateKeyHook turns a YAML date such as `today: 2025-06-11`, which
// the parser yields as time.Time, back into its YYYY-MM-DD form.
func timeToDateKeyHook() mapstructure.DecodeHookFuncType {
	return func(_ reflect.Type, to reflect.Type, data any) (any, error) {
		t, ok := data.(time.Time)
		if !ok || to.Kind() != reflect.String {
			return data, nil
		}
		return models.DateKeyOf(t).String(), nil
	}
}

func (s *Settings) Validate() error {
	s.Theme = strings.ToLower(strings.TrimSpace(s.Theme))
	if s.Theme == "" {
		s.Theme = "default"
	}
	known := false
	for _, name := range ThemeNames {
		if name == s.Theme {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("invalid theme %q", s.Theme)
	}

	switch strings.ToLower(s.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", s.LogLevel)
	}
	if s.LogLevel == "" {
		s.LogLevel = "info"
	}

	if s.AlertTimeout < 0 || s.AlertTimeout > MaxAlertTimeout {
		return fmt.Errorf("alert timeout %s out of range [0, %s]", s.AlertTimeout, MaxAlertTimeout)
	}

	if s.Today != "" {
		if _, err := models.ParseDateKey(s.Today); err != nil {
			return fmt.Errorf("invalid today override: %w", err)
		}
	}
	return nil
}

// Clock returns the function the planner uses for "today". With a Today
// override the clock is pinned to that day.
func (s Settings) Clock() func() time.Time {
	if s.Today == "" {
		return time.Now
	}
	key, err := models.ParseDateKey(s.Today)
	if err != nil {
		return time.Now
	}
	pinned, _ := key.Time()
	return func() time.Time { return pinned }
}
