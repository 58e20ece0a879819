package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/balkashynov/wcagpairs/internal/models"
	"github.com/balkashynov/wcagpairs/internal/palette"
)

// SampleColors is the palette offered by --sample and the studio's sample key
const SampleColors = "#FF6F61, #FDD66F, #8ED6A9, #6FA8FF, #B76FFF, #111827, #FFFFFF"

// Settings are the user preferences after merging defaults, config file,
// environment and flags
type Settings struct {
	Level     models.Profile
	Filter    models.Profile
	Sort      models.SortOrder
	MaxColors int
	Sample    string
	Verbose   bool
}

// SessionOptions converts settings into palette session options
func (s Settings) SessionOptions() palette.Options {
	return palette.Options{
		Level:   s.Level,
		Filter:  s.Filter,
		Sort:    s.Sort,
		SoftCap: s.MaxColors,
	}
}

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("level", "aa-small")
	v.SetDefault("filter", "all")
	v.SetDefault("sort", "ratio")
	v.SetDefault("max_colors", palette.DefaultSoftCap)
	v.SetDefault("sample", SampleColors)
	v.SetDefault("verbose", false)
}

// Init points v at the config file and environment.
// cfgFile overrides the default $HOME/.wcagpairs.yaml.
func Init(v *viper.Viper, cfgFile string) error {
	// A missing .env is fine, anything else is worth a warning
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: Error loading .env file: %v\n", err)
	}

	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigType("yaml")
		v.SetConfigName(".wcagpairs")
	}

	v.SetEnvPrefix("WCAGPAIRS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		return nil
	}

	if v.GetBool("verbose") {
		fmt.Fprintln(os.Stderr, "Using config file:", v.ConfigFileUsed())
	}
	return nil
}

// Load reads and validates settings from v
func Load(v *viper.Viper) (Settings, error) {
	level, err := models.ParseProfile(v.GetString("level"))
	if err != nil {
		return Settings{}, fmt.Errorf("invalid level setting: %w", err)
	}
	if !level.Gradable() {
		return Settings{}, fmt.Errorf("invalid level setting: %w", palette.ErrProfileNotGradable)
	}

	filter, err := models.ParseProfile(v.GetString("filter"))
	if err != nil {
		return Settings{}, fmt.Errorf("invalid filter setting: %w", err)
	}

	order, err := models.ParseSortOrder(v.GetString("sort"))
	if err != nil {
		return Settings{}, fmt.Errorf("invalid sort setting: %w", err)
	}

	maxColors := v.GetInt("max_colors")
	if maxColors <= 0 {
		maxColors = palette.DefaultSoftCap
	}

	return Settings{
		Level:     level,
		Filter:    filter,
		Sort:      order,
		MaxColors: maxColors,
		Sample:    v.GetString("sample"),
		Verbose:   v.GetBool("verbose"),
	}, nil
}
