package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Calendar CalendarConfig `mapstructure:"calendar"`
	UI       UIConfig       `mapstructure:"ui"`
}

// CalendarConfig selects the display calendar and its holiday data.
type CalendarConfig struct {
	System      string `mapstructure:"system"`
	HolidayFile string `mapstructure:"holiday_file"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Placeholder string   `mapstructure:"placeholder"`
	Labels      []string `mapstructure:"labels"`
}

// Load reads configuration from file and env. Env var overrides use prefix JASKDATE_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("calendar.system", "jalali")
	v.SetDefault("calendar.holiday_file", "")
	v.SetDefault("ui.placeholder", "y/m/d")
	v.SetDefault("ui.labels", []string{"From", "To"})

	v.SetConfigType("toml")

	cfgPath := os.Getenv("JASKDATE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "jaskdate"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("JASKDATE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return normalize(c), nil
}

func normalize(c Config) Config {
	switch strings.ToLower(strings.TrimSpace(c.Calendar.System)) {
	case "gregorian":
		c.Calendar.System = "gregorian"
	default:
		c.Calendar.System = "jalali"
	}
	c.Calendar.HolidayFile = strings.TrimSpace(c.Calendar.HolidayFile)
	if strings.TrimSpace(c.UI.Placeholder) == "" {
		c.UI.Placeholder = "y/m/d"
	}
	if len(c.UI.Labels) == 0 {
		c.UI.Labels = []string{"Date"}
	}
	return c
}
