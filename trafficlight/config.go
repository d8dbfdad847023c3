package trafficlight

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidConfig = errors.New("invalid color configuration")
	ErrUnknownColor  = errors.New("unknown color")
)

// ColorState is one entry of the color cycle.
type ColorState struct {
	Name         string
	DisplayColor string
	Duration     time.Duration
	Next         string
}

// Colors is the ordered color cycle. The order is the order the light slots
// are rendered in.
type Colors []ColorState

// DefaultColors is the classic three light cycle, top to bottom.
func DefaultColors() Colors {
	return Colors{
		{Name: "red", DisplayColor: "red", Duration: 4000 * time.Millisecond, Next: "green"},
		{Name: "yellow", DisplayColor: "yellow", Duration: 500 * time.Millisecond, Next: "red"},
		{Name: "green", DisplayColor: "green", Duration: 3000 * time.Millisecond, Next: "yellow"},
	}
}

func (c Colors) Lookup(name string) (ColorState, bool) {
	for _, s := range c {
		if s.Name == name {
			return s, true
		}
	}
	return ColorState{}, false
}

func (c Colors) Names() []string {
	names := make([]string, len(c))
	for i, s := range c {
		names[i] = s.Name
	}
	return names
}

// Validate checks that the configuration is a closed cycle: names are unique,
// durations positive and every next points at an entry. All problems are
// reported together.
func (c Colors) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("%w: no colors configured", ErrInvalidConfig)
	}

	var err error
	seen := make(map[string]bool, len(c))
	for i, s := range c {
		if s.Name == "" {
			err = multierr.Append(err, fmt.Errorf("color %d has no name", i))
			continue
		}
		if seen[s.Name] {
			err = multierr.Append(err, fmt.Errorf("color %q is defined more than once", s.Name))
		}
		seen[s.Name] = true

		if s.Duration <= 0 {
			err = multierr.Append(err, fmt.Errorf("color %q has non-positive duration %s", s.Name, s.Duration))
		}
	}
	for _, s := range c {
		if s.Name == "" {
			continue
		}
		if s.Next == "" {
			err = multierr.Append(err, fmt.Errorf("color %q has no next color", s.Name))
		} else if !seen[s.Next] {
			err = multierr.Append(err, fmt.Errorf("color %q: next %w %q", s.Name, ErrUnknownColor, s.Next))
		}
	}

	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// ValidateFrom validates the configuration and that initial is one of its colors.
func (c Colors) ValidateFrom(initial string) error {
	err := c.Validate()
	if _, ok := c.Lookup(initial); !ok {
		err = multierr.Append(err, fmt.Errorf("%w: initial color %w %q", ErrInvalidConfig, ErrUnknownColor, initial))
	}
	return err
}

// colorEntry is the on-disk shape of one color, keyed by name in a mapping.
type colorEntry struct {
	BackgroundColor string         `yaml:"backgroundColor"`
	Duration        millisDuration `yaml:"duration"`
	Next            string         `yaml:"next"`
}

// millisDuration reads integer milliseconds or a Go duration string.
type millisDuration time.Duration

func (d *millisDuration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: duration must be a scalar", value.Line)
	}
	if ms, err := strconv.ParseInt(value.Value, 10, 64); err == nil {
		*d = millisDuration(time.Duration(ms) * time.Millisecond)
		return nil
	}
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid duration %q", value.Line, value.Value)
	}
	*d = millisDuration(parsed)
	return nil
}

// UnmarshalYAML decodes a mapping of color name to entry. Mapping order is kept.
func (c *Colors) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: colors must be a mapping of name to color", value.Line)
	}

	out := make(Colors, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]

		var entry colorEntry
		if err := val.Decode(&entry); err != nil {
			return fmt.Errorf("color %q: %w", key.Value, err)
		}
		out = append(out, ColorState{
			Name:         key.Value,
			DisplayColor: entry.BackgroundColor,
			Duration:     time.Duration(entry.Duration),
			Next:         entry.Next,
		})
	}
	*c = out
	return nil
}

func (c Colors) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, s := range c {
		var val yaml.Node
		err := val.Encode(map[string]interface{}{
			"backgroundColor": s.DisplayColor,
			"duration":        s.Duration.Milliseconds(),
			"next":            s.Next,
		})
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s.Name},
			&val,
		)
	}
	return node, nil
}

// ParseColors decodes and validates a YAML color configuration.
func ParseColors(data []byte) (Colors, error) {
	var c Colors
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func LoadColors(path string) (Colors, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading color configuration: %w", err)
	}
	return ParseColors(data)
}
