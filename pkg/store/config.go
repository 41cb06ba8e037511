package store

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// ErrConfigMissing means no sheet path was supplied. Fatal at startup,
// before any UI is shown.
var ErrConfigMissing = errors.New("store: sheet path missing - set MOODQ_SHEET or the sheet key in .moodq.yaml")

// Config names the sheet the log lives in and the reference timezone used
// for day-boundary math.
type Config interface {
	SheetPath() string
	Timezone() *time.Location
}

// LoadConfig reads .moodq config and MOODQ_* env vars.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("sheet", "~/.moodq.db")
	v.SetDefault("timezone", "America/New_York")
	v.SetConfigName(".moodq") // .yaml is implicit
	v.SetEnvPrefix("MOODQ")
	v.AutomaticEnv()

	if override := os.Getenv("MOODQ_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}

	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config file: %w", err)
		}
	}

	path := strings.TrimSpace(v.GetString("sheet"))
	if path == "" {
		return nil, ErrConfigMissing
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("store: expand sheet path: %w", err)
	}

	zone := v.GetString("timezone")
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("store: load timezone %q: %w", zone, err)
	}

	return &fileConfig{path: expanded, loc: loc}, nil
}

type fileConfig struct {
	path string
	loc  *time.Location
}

func (f *fileConfig) SheetPath() string {
	return f.path
}

func (f *fileConfig) Timezone() *time.Location {
	return f.loc
}
