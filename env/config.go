package env

import (
	"fmt"
	"strings"

	"github.com/Asteroidea-tn/astrotiles/pkg/astroenv"
	"github.com/Asteroidea-tn/astrotiles/pkg/astrolog"
)

/*
.env FILE example:

TILES_INPUT=./input
TILES_FORMAT=yaml
LOG_LEVEL=debug
LOG_TO_FILE=true

*/

type Config struct {
	Input  string `env:"TILES_INPUT,input"`
	Format string `env:"TILES_FORMAT,text"`

	Log struct {
		Level       string `env:"LOG_LEVEL,info"`
		ToFile      bool   `env:"LOG_TO_FILE,false"`
		Dir         string `env:"LOG_DIR,./logs"`
		FileName    string `env:"LOG_FILE_NAME,astrotiles"`
		Formatted   bool   `env:"LOG_FORMATTED,true"`
		MaxFileSize int    `env:"LOG_MAX_FILE_SIZE,10"`
		MaxFiles    int    `env:"LOG_MAX_FILES,5"`
	}
}

// Output formats understood by the command.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Load reads the configuration from the environment and the optional dotenv files.
func Load(files ...string) (Config, error) {
	var cfg Config
	if err := astroenv.Load(&cfg, files...); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values the tags cannot.
func (c *Config) Validate() error {
	c.Format = strings.ToLower(c.Format)
	switch c.Format {
	case FormatText, FormatYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", c.Format, FormatText, FormatYAML)
	}
}

// Logger maps the log settings onto the astrolog configuration.
func (c Config) Logger() astrolog.Config {
	return astrolog.Config{
		LogLevel:    c.Log.Level,
		LogToFile:   c.Log.ToFile,
		LogDir:      c.Log.Dir,
		LogFileName: c.Log.FileName,
		Formatted:   c.Log.Formatted,
		MaxFileSize: c.Log.MaxFileSize,
		MaxLogFiles: c.Log.MaxFiles,
		RunLabel:    c.Input,
	}
}
