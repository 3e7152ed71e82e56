// Package rotation loads the named on-call rotations this tool can
// report on.
package rotation

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	ConfigFile string `split_words:"true" default:"rotations.yaml"`
}

// Defaults applied to fields the file leaves out.
const (
	defaultTimezone           = "UTC"
	defaultGraveyardUntilHour = 6
	defaultTopTriggers        = 5
)

// Rotation is one named rotation entry from the config file. Location is
// derived from Timezone at load time.
type Rotation struct {
	Name               string         `yaml:"-"`
	ScheduleID         string         `yaml:"schedule" validate:"required"`
	EscalationPolicyID string         `yaml:"escalation_policy"`
	SlackChannelID     string         `yaml:"slack_channel"`
	Timezone           string         `yaml:"timezone"`
	GraveyardUntilHour int            `yaml:"graveyard_until_hour" validate:"min=0,max=23"`
	TopTriggers        int            `yaml:"top_triggers" validate:"min=0"`
	Location           *time.Location `yaml:"-"`
}

type config = map[string]*Rotation

// Load reads and validates the rotations file.
func Load(c Config) (config, error) {
	b, err := os.ReadFile(c.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("reading rotations file: %w", err)
	}

	parsed, err := parse(b)
	if err != nil {
		return nil, fmt.Errorf("parsing rotations file %s: %w", c.ConfigFile, err)
	}

	return parsed, nil
}

func parse(b []byte) (config, error) {
	parsed := config{}
	if err := yaml.Unmarshal(b, &parsed); err != nil {
		return nil, err
	}
	if len(parsed) == 0 {
		return nil, fmt.Errorf("no rotations defined")
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	for name, rot := range parsed {
		if rot == nil {
			return nil, fmt.Errorf("empty entry for rotation %s", name)
		}

		rot.Name = name
		if rot.Timezone == "" {
			rot.Timezone = defaultTimezone
		}
		if rot.GraveyardUntilHour == 0 {
			rot.GraveyardUntilHour = defaultGraveyardUntilHour
		}
		if rot.TopTriggers == 0 {
			rot.TopTriggers = defaultTopTriggers
		}

		if err := validate.Struct(rot); err != nil {
			return nil, fmt.Errorf("validating rotation %s: %w", name, err)
		}

		loc, err := time.LoadLocation(rot.Timezone)
		if err != nil {
			return nil, fmt.Errorf("loading timezone for rotation %s: %w", name, err)
		}
		rot.Location = loc
	}

	return parsed, nil
}

// Pick selects a rotation by name. With an empty name it falls back to
// the only configured rotation, if there is exactly one.
func Pick(rotations config, name string) (*Rotation, error) {
	if name == "" {
		if len(rotations) == 1 {
			for _, rot := range rotations {
				return rot, nil
			}
		}
		return nil, fmt.Errorf("rotation not specified; configured: %s", names(rotations))
	}

	rot, ok := rotations[name]
	if !ok {
		return nil, fmt.Errorf("unknown rotation %q; configured: %s", name, names(rotations))
	}

	return rot, nil
}

func names(rotations config) string {
	return strings.Join(slices.Sorted(maps.Keys(rotations)), ", ")
}
