package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Settings holds the runtime-tunable part of the configuration.
type Settings struct {
	LogLevel         string          `mapstructure:"logLevel"`
	Seed             int64           `mapstructure:"seed"`
	ContentDir       string          `mapstructure:"contentDir"`
	RegistryCapacity int             `mapstructure:"registryCapacity"`
	FortressHealth   int             `mapstructure:"fortressHealth"`
	Intermission     float64         `mapstructure:"intermission"`
	Journal          JournalSettings `mapstructure:"journal"`
}

// JournalSettings configures the battle journal database.
type JournalSettings struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// SettingsFileName is looked up in the directory passed to Load.
const SettingsFileName = "fortress.cfg.json"

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("seed", 0)
	v.SetDefault("contentDir", "./assets/data")
	v.SetDefault("registryCapacity", RegistryCapacity)
	v.SetDefault("fortressHealth", FortressHealth)
	v.SetDefault("intermission", WaveIntermission)
	v.SetDefault("journal.enabled", false)
	v.SetDefault("journal.path", "battle_journal.db")
}

// Defaults returns the settings used when no file is present.
func Defaults() Settings {
	v := viper.New()
	setDefaults(v)
	var s Settings
	// Unmarshal of pure defaults cannot fail.
	_ = v.Unmarshal(&s)
	return s
}

// Load reads configuration from a JSON file in configDir and fills in defaults.
// Environment variables prefixed with FORTRESS_ override file values;
// nested keys use underscores, e.g. FORTRESS_JOURNAL_PATH.
func Load(configDir string) (Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(SettingsFileName)
	v.SetConfigType("json")
	v.AddConfigPath(configDir)
	v.SetEnvPrefix("fortress")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return Settings{}, fmt.Errorf("error reading config file: %w", err)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	if s.RegistryCapacity <= 0 {
		s.RegistryCapacity = RegistryCapacity
	}
	return s, nil
}
