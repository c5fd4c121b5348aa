package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultNumElevators      = 3
	DefaultMinFloor          = 1
	DefaultMaxFloor          = 10
	DefaultBusyPenalty       = 10
	DefaultUnsuitablePenalty = 100
	DefaultTickInterval      = 1 * time.Second
	DefaultDoorOpenDuration  = 2 * time.Second
	DefaultCmdPort           = 16569
	DefaultBcastPort         = 16570

	MsgRepetitions = 2
	MsgInterval    = 10 * time.Millisecond
	MaxPacketSize  = 8192
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the fleet parameters. Floor bounds are enforced by the transport, not by the cars.
// Cars start at MinFloor.
type Config struct {
	NumElevators      int           `yaml:"numElevators"`
	MinFloor          int           `yaml:"minFloor"`
	MaxFloor          int           `yaml:"maxFloor"`
	BusyPenalty       int           `yaml:"busyPenalty"`
	UnsuitablePenalty int           `yaml:"unsuitablePenalty"`
	TickInterval      time.Duration `yaml:"tickInterval"`
	DoorOpenDuration  time.Duration `yaml:"doorOpenDuration"`
	CmdPort           int           `yaml:"cmdPort"`
	BcastPort         int           `yaml:"bcastPort"`
	LogFile           string        `yaml:"logFile"`
}

func Default() Config {
	return Config{
		NumElevators:      DefaultNumElevators,
		MinFloor:          DefaultMinFloor,
		MaxFloor:          DefaultMaxFloor,
		BusyPenalty:       DefaultBusyPenalty,
		UnsuitablePenalty: DefaultUnsuitablePenalty,
		TickInterval:      DefaultTickInterval,
		DoorOpenDuration:  DefaultDoorOpenDuration,
		CmdPort:           DefaultCmdPort,
		BcastPort:         DefaultBcastPort,
	}
}

// Load builds a Config from the defaults, an optional YAML file and an optional .env file.
// Variables already present in the process environment win over the .env file.
//   - An empty path skips that source
//   - A missing .env file is not an error
func Load(yamlPath, envPath string) (Config, error) {
	cfg := Default()

	if yamlPath != "" {
		data, err := os.ReadFile(yamlPath)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", yamlPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", yamlPath, err)
		}
	}

	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("load env %s: %w", envPath, err)
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func applyEnv(cfg *Config) error {
	overrides := []struct {
		key   string
		field *int
	}{
		{"MIN_FLOOR", &cfg.MinFloor},
		{"MAX_FLOOR", &cfg.MaxFloor},
		{"NUM_ELEVATORS", &cfg.NumElevators},
		{"PORT", &cfg.CmdPort},
		{"BCAST_PORT", &cfg.BcastPort},
	}
	for _, o := range overrides {
		raw, ok := os.LookupEnv(o.key)
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, o.key, raw)
		}
		*o.field = v
	}
	return nil
}

func (cfg Config) Validate() error {
	switch {
	case cfg.NumElevators < 1:
		return fmt.Errorf("%w: numElevators must be at least 1, got %d", ErrInvalidConfig, cfg.NumElevators)
	case cfg.MinFloor > cfg.MaxFloor:
		return fmt.Errorf("%w: minFloor (%d) > maxFloor (%d)", ErrInvalidConfig, cfg.MinFloor, cfg.MaxFloor)
	case cfg.TickInterval <= 0:
		return fmt.Errorf("%w: tickInterval must be positive", ErrInvalidConfig)
	case cfg.DoorOpenDuration <= 0:
		return fmt.Errorf("%w: doorOpenDuration must be positive", ErrInvalidConfig)
	}
	return nil
}

// FloorInRange reports whether floor lies within the configured bounds.
func (cfg Config) FloorInRange(floor int) bool {
	return floor >= cfg.MinFloor && floor <= cfg.MaxFloor
}
