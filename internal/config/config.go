package config

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrEmptySongsPath is returned when the song file path is blank.
var ErrEmptySongsPath = errors.New("song file path is empty")

// Flag names bound into the configuration.
const (
	FlagFile    = "file"
	FlagSeed    = "seed"
	FlagVerbose = "verbose"
)

// Config holds the settings of one run.
type Config struct {
	SongsPath string `mapstructure:"file"`    // path to the comment;song;artist file
	Seed      uint64 `mapstructure:"seed"`    // shuffle seed, 0 picks one from the clock
	Verbose   bool   `mapstructure:"verbose"` // debug logging
}

// Default returns the configuration used when no flag is set.
func Default() Config {
	return Config{
		SongsPath: "songs.txt",
	}
}

// Load reads the configuration from parsed command-line flags. Environment
// variables and config files are not consulted.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	d := Default()
	v.SetDefault(FlagFile, d.SongsPath)
	v.SetDefault(FlagSeed, d.Seed)
	v.SetDefault(FlagVerbose, d.Verbose)

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.SongsPath == "" {
		return nil, ErrEmptySongsPath
	}
	return &cfg, nil
}

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.StringP(FlagFile, "f", d.SongsPath, "Path to the song file (comment;song;artist per line)")
	fs.Uint64(FlagSeed, d.Seed, "Seed for question order and options (0 = random)")
	fs.BoolP(FlagVerbose, "v", d.Verbose, "Enable debug logging on stderr")
}
