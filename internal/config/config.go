package config

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/yaml.v3"

	"git.lost.host/meutraa/drumveil/internal/game"
)

const (
	Version            = "0.3.0"
	DefaultFramePeriod = 16 * time.Millisecond
	DefaultDifficulty  = game.Easy
)

type Config struct {
	Difficulty  game.Difficulty
	FramePeriod time.Duration
	Seed        int64 // 0 picks a random seed
	LogLevel    slog.Level
	LogFile     string
	Keys        map[string]string // voice alias to key
}

// File is the optional YAML configuration.
type File struct {
	Difficulty  int               `yaml:"difficulty"`
	FramePeriod time.Duration     `yaml:"frame-period"`
	LogLevel    string            `yaml:"log-level"`
	Keys        map[string]string `yaml:"keys"`
}

// Parse reads flags from args, which exclude the program name. Values given
// on the command line win over the config file.
func Parse(args []string) (*Config, error) {
	app := kingpin.New("drumveil", "Drum along to a generated metal groove in the terminal.")
	app.Version(Version)

	difficulty := app.Flag("difficulty", "Difficulty, 1 easy, 2 medium, 3 hard").Short('d').Int()
	framePeriod := app.Flag("frame-period", "Frame period").Short('p').Duration()
	seed := app.Flag("seed", "Chart seed, 0 for random").Default("0").Int64()
	file := app.Flag("config", "YAML config file").Short('c').ExistingFile()
	logLevel := app.Flag("log-level", "Log level").Enum("debug", "info", "warn", "error")
	logFile := app.Flag("log-file", "Write logs here instead of stderr").String()

	if _, err := app.Parse(args); nil != err {
		return nil, errors.Wrap(err, "unable to parse arguments")
	}

	f := &File{}
	if *file != "" {
		var err error
		if f, err = LoadFile(*file); nil != err {
			return nil, err
		}
	}

	cfg := &Config{
		Difficulty:  DefaultDifficulty,
		FramePeriod: DefaultFramePeriod,
		Seed:        *seed,
		LogLevel:    slog.LevelInfo,
		LogFile:     *logFile,
		Keys:        f.Keys,
	}
	if *difficulty != 0 {
		cfg.Difficulty = game.Difficulty(*difficulty)
	} else if f.Difficulty != 0 {
		cfg.Difficulty = game.Difficulty(f.Difficulty)
	}
	if *framePeriod != 0 {
		cfg.FramePeriod = *framePeriod
	} else if f.FramePeriod != 0 {
		cfg.FramePeriod = f.FramePeriod
	}
	level := f.LogLevel
	if *logLevel != "" {
		level = *logLevel
	}
	if level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(level)); nil != err {
			return nil, errors.Wrapf(err, "log level %q", level)
		}
	}

	if err := cfg.Validate(); nil != err {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := c.Difficulty.Tuning(); nil != err {
		return err
	}
	if c.FramePeriod <= 0 {
		return errors.Errorf("frame period must be positive, got %v", c.FramePeriod)
	}
	return nil
}

func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if nil != err {
		return nil, errors.Wrap(err, "unable to read config")
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	f := &File{}
	if err := dec.Decode(f); nil != err && err != io.EOF {
		return nil, errors.Wrapf(err, "unable to parse config %v", path)
	}
	return f, nil
}
