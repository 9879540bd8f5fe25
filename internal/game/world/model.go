// Package world provides the game world model: directions, rooms, exits, and the room graph.
package world

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Direction represents one of the six movement directions.
type Direction string

// Compass directions and vertical movements.
const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
	Up    Direction = "up"
	Down  Direction = "down"
)

// StandardDirections contains every direction in canonical order.
var StandardDirections = []Direction{North, South, East, West, Up, Down}

// directionLabels holds the localized display word for each direction.
var directionLabels = map[Direction]string{
	North: "北",
	South: "南",
	East:  "东",
	West:  "西",
	Up:    "上",
	Down:  "下",
}

// directionTokens maps every accepted lowercase input token to its direction.
var directionTokens = map[string]Direction{
	"north": North, "n": North, "北": North,
	"south": South, "s": South, "南": South,
	"east": East, "e": East, "东": East,
	"west": West, "w": West, "西": West,
	"up": Up, "u": Up, "上": Up,
	"down": Down, "d": Down, "下": Down,
}

// Label returns the localized display word for d.
//
// Postcondition: Returns a non-empty string for every standard direction.
func (d Direction) Label() string {
	return directionLabels[d]
}

// IsStandard reports whether d is one of the six directions.
func (d Direction) IsStandard() bool {
	_, ok := directionLabels[d]
	return ok
}

// Opposite returns the opposite of a standard direction.
// For anything else, it returns an empty string.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	case Up:
		return Down
	case Down:
		return Up
	default:
		return ""
	}
}

// ParseDirection resolves a typed token to a direction. Matching is
// case-insensitive and accepts the full English word, its single-letter
// abbreviation, and the localized word.
//
// Postcondition: Returns (d, true) on a match, or ("", false) for any other input.
func ParseDirection(s string) (Direction, bool) {
	d, ok := directionTokens[cases.Lower(language.Und).String(s)]
	return d, ok
}

// Exit represents a passage from one room to another.
type Exit struct {
	// Direction is the direction the exit leads.
	Direction Direction
	// TargetRoom is the ID of the destination room.
	TargetRoom string
}

// Room represents a location in the game world. Rooms refer to each other
// only by ID; the owning Graph resolves those references.
type Room struct {
	id          string
	name        string
	description string
	items       []string
	// exits keeps first-insertion order so rendering is deterministic.
	exits []Exit
}

// NewRoom creates a room with no items and no exits.
func NewRoom(id, name, description string) *Room {
	return &Room{
		id:          id,
		name:        name,
		description: description,
	}
}

// ID returns the room's unique identifier.
func (r *Room) ID() string { return r.id }

// Name returns the room's display name.
func (r *Room) Name() string { return r.name }

// Description returns the room's description text.
func (r *Room) Description() string { return r.description }

// AddItem appends an item name to the room. Duplicates are allowed.
func (r *Room) AddItem(item string) {
	r.items = append(r.items, item)
}

// AddExit sets the destination for dir. Calling it again for the same
// direction replaces the target and keeps the exit's original position.
//
// Postcondition: Exit(dir) returns roomID.
func (r *Room) AddExit(dir Direction, roomID string) {
	for i := range r.exits {
		if r.exits[i].Direction == dir {
			r.exits[i].TargetRoom = roomID
			return
		}
	}
	r.exits = append(r.exits, Exit{Direction: dir, TargetRoom: roomID})
}

// Exit returns the target room ID for dir, if the room has such an exit.
//
// Postcondition: Returns (target, true) if found, or ("", false) otherwise.
func (r *Room) Exit(dir Direction) (string, bool) {
	for _, e := range r.exits {
		if e.Direction == dir {
			return e.TargetRoom, true
		}
	}
	return "", false
}

// Items returns a copy of the room's item names in insertion order.
func (r *Room) Items() []string {
	out := make([]string, len(r.items))
	copy(out, r.items)
	return out
}

// Exits returns a copy of the room's exits in insertion order.
func (r *Room) Exits() []Exit {
	out := make([]Exit, len(r.exits))
	copy(out, r.exits)
	return out
}

// Directions returns the directions of all exits in insertion order.
func (r *Room) Directions() []Direction {
	out := make([]Direction, 0, len(r.exits))
	for _, e := range r.exits {
		out = append(out, e.Direction)
	}
	return out
}
