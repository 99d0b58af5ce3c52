package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

type GameConfig struct {
	Width    uint     `yaml:"width"`
	Height   uint     `yaml:"height"`
	NumBombs uint     `yaml:"bombs"`
	Mode     GameMode `yaml:"mode"`

	// Cell guaranteed to be free of bombs, along with its neighbours, in
	// Win7 mode. When nil, the first revealed cell is used instead.
	Start *Coordinates `yaml:"start,omitempty"`

	Seed int64 `yaml:"seed"`

	// Snapshot to load board configuration from
	Snapshot *BoardSnapshot `yaml:"-"`
	// Whether to set all cells as unrevealed when loading the Snapshot
	LoadSnapshotFresh bool `yaml:"-"`
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Width:             DefaultWidth,
		Height:            DefaultHeight,
		NumBombs:          DefaultBombs,
		Mode:              Classic,
		Snapshot:          nil,
		LoadSnapshotFresh: true,
	}
}

// SafeStart returns whether the first reveal is guaranteed not to hit a bomb
func (config GameConfig) SafeStart() bool {
	return config.Mode == Win7
}

func (config GameConfig) dimensions() (int, int, int) {
	return int(config.Width), int(config.Height), int(config.NumBombs)
}

// Validate checks that a board can be generated from the config, whatever
// cell ends up being revealed first.
func (config GameConfig) Validate() error {
	if config.Snapshot != nil {
		return nil
	}

	width, height, numBombs := config.dimensions()
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfiguration, width, height)
	}

	// Without a safe zone, one safe cell must still remain
	excluded := 1
	if config.SafeStart() {
		if config.Start != nil {
			if !config.Start.In(width, height) {
				return fmt.Errorf("%w: start %v outside %dx%d board", ErrInvalidConfiguration, *config.Start, width, height)
			}
			excluded = SafeZone(width, height, *config.Start).Len()
		} else {
			excluded = maxSafeZone(width, height)
		}
	}

	if numBombs > width*height-excluded {
		return fmt.Errorf(
			"%w: %d bombs do not fit a %dx%d board (at most %d)",
			ErrInvalidConfiguration, numBombs, width, height, width*height-excluded,
		)
	}
	return nil
}

// LoadConfig reads a YAML game config, filling anything left unset with the
// defaults of NewGameConfig
func LoadConfig(path string) (GameConfig, error) {
	config := NewGameConfig()

	in, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := yaml.UnmarshalStrict(in, &config); err != nil {
		return config, fmt.Errorf("load config %s: %w: %v", path, ErrInvalidConfiguration, err)
	}

	return config, nil
}

var gameModes = map[string]GameMode{
	"classic": Classic,
	"win7":    Win7,
}

func ParseGameMode(name string) (GameMode, error) {
	if mode, isValid := gameModes[name]; isValid {
		return mode, nil
	}
	return Classic, fmt.Errorf("invalid game mode %q", name)
}

func (mode GameMode) String() string {
	for name, m := range gameModes {
		if m == mode {
			return name
		}
	}
	return fmt.Sprint(int(mode))
}

func (mode GameMode) MarshalYAML() (interface{}, error) {
	return mode.String(), nil
}

func (mode *GameMode) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}

	parsed, err := ParseGameMode(name)
	if err != nil {
		return err
	}
	*mode = parsed
	return nil
}
