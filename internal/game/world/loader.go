package world

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// yamlZoneFile is the top-level YAML structure for zone files.
type yamlZoneFile struct {
	Zone yamlZone `yaml:"zone"`
}

// yamlZone is the YAML representation of a world.
type yamlZone struct {
	ID        string        `yaml:"id"`
	Name      localizedText `yaml:"name"`
	StartRoom string        `yaml:"start_room"`
	Rooms     []yamlRoom    `yaml:"rooms"`
}

// yamlRoom is the YAML representation of a room.
type yamlRoom struct {
	ID          string          `yaml:"id"`
	Title       localizedText   `yaml:"title"`
	Description localizedText   `yaml:"description"`
	Items       []localizedText `yaml:"items"`
	Exits       []yamlExit      `yaml:"exits"`
}

// yamlExit is the YAML representation of an exit.
type yamlExit struct {
	Direction string `yaml:"direction"`
	Target    string `yaml:"target"`
}

// localizedText holds display text keyed by base language ("en", "zh").
// A plain scalar is stored under the empty key and used for every language.
type localizedText map[string]string

// UnmarshalYAML accepts either a scalar or a language-keyed mapping.
func (t *localizedText) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*t = localizedText{"": node.Value}
		return nil
	}
	var m map[string]string
	if err := node.Decode(&m); err != nil {
		return fmt.Errorf("line %d: localized text must be a string or a language map: %w", node.Line, err)
	}
	*t = m
	return nil
}

// pick returns the text for tag, falling back to the default locale and then
// to an unkeyed scalar.
func (t localizedText) pick(tag language.Tag) string {
	for _, key := range []string{baseOf(tag), baseOf(DefaultLocale), ""} {
		if s, ok := t[key]; ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func baseOf(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}

// LoadGraphFromBytes parses and validates a world from YAML bytes, choosing
// display text for the given language.
//
// Precondition: data must be valid YAML conforming to the zone schema.
// Postcondition: Returns a validated Graph built in fresh storage, or a non-nil error.
func LoadGraphFromBytes(data []byte, tag language.Tag) (*Graph, error) {
	var file yamlZoneFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing zone YAML: %w", err)
	}

	g, err := convertYAMLZone(file.Zone, tag)
	if err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("validating zone: %w", err)
	}
	return g, nil
}

// convertYAMLZone converts the parsed YAML structures into domain types.
func convertYAMLZone(yz yamlZone, tag language.Tag) (*Graph, error) {
	rooms := make([]*Room, 0, len(yz.Rooms))
	for _, yr := range yz.Rooms {
		room := NewRoom(yr.ID, yr.Title.pick(tag), yr.Description.pick(tag))
		for _, item := range yr.Items {
			room.AddItem(item.pick(tag))
		}
		for _, ye := range yr.Exits {
			room.AddExit(Direction(strings.ToLower(ye.Direction)), ye.Target)
		}
		rooms = append(rooms, room)
	}
	return NewGraph(yz.ID, yz.Name.pick(tag), yz.StartRoom, rooms)
}
