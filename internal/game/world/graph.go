package world

import (
	"fmt"
	"sort"
)

// Graph owns every room of a world, indexed by room ID for O(1) lookup.
// All cross-room relationships are room IDs resolved through the graph.
//
// A Graph is not mutated after construction and needs no locking.
type Graph struct {
	// ID uniquely identifies this world.
	ID string
	// Name is the display name of the world.
	Name string
	// StartRoom is the ID of the room new players begin in.
	StartRoom string

	rooms map[string]*Room
}

// NewGraph creates a Graph over the given rooms.
//
// Precondition: room IDs must be unique.
// Postcondition: Returns a Graph indexing every room, or an error on a duplicate ID.
// The graph is not validated; call Validate before handing it to players.
func NewGraph(id, name, startRoom string, rooms []*Room) (*Graph, error) {
	g := &Graph{
		ID:        id,
		Name:      name,
		StartRoom: startRoom,
		rooms:     make(map[string]*Room, len(rooms)),
	}
	for _, r := range rooms {
		if _, exists := g.rooms[r.ID()]; exists {
			return nil, fmt.Errorf("world %q: duplicate room ID %q", id, r.ID())
		}
		g.rooms[r.ID()] = r
	}
	return g, nil
}

// Validate checks graph invariants, including that every exit target
// resolves to a room in the graph.
//
// Postcondition: Returns nil if valid, or an error describing the first violation.
func (g *Graph) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("world ID must not be empty")
	}
	if g.Name == "" {
		return fmt.Errorf("world %q: name must not be empty", g.ID)
	}
	if len(g.rooms) == 0 {
		return fmt.Errorf("world %q: must contain at least one room", g.ID)
	}
	if _, ok := g.rooms[g.StartRoom]; !ok {
		return fmt.Errorf("world %q: start_room %q not found in rooms", g.ID, g.StartRoom)
	}
	// Sorted so the reported violation is stable.
	for _, id := range g.RoomIDs() {
		room := g.rooms[id]
		if room.ID() != id {
			return fmt.Errorf("world %q: room key %q does not match room ID %q", g.ID, id, room.ID())
		}
		if room.Name() == "" {
			return fmt.Errorf("world %q: room %q: name must not be empty", g.ID, id)
		}
		for _, exit := range room.Exits() {
			if !exit.Direction.IsStandard() {
				return fmt.Errorf("world %q: room %q: unknown exit direction %q", g.ID, id, exit.Direction)
			}
			if exit.TargetRoom == "" {
				return fmt.Errorf("world %q: room %q: exit %q has empty target", g.ID, id, exit.Direction)
			}
			if _, ok := g.rooms[exit.TargetRoom]; !ok {
				return fmt.Errorf("world %q: room %q: exit %q targets unknown room %q", g.ID, id, exit.Direction, exit.TargetRoom)
			}
		}
	}
	return nil
}

// GetRoom returns the room with the given ID.
//
// Postcondition: Returns (room, true) if found, or (nil, false) otherwise.
func (g *Graph) GetRoom(id string) (*Room, bool) {
	r, ok := g.rooms[id]
	return r, ok
}

// Navigate resolves movement from a room in a direction.
//
// Postcondition: Returns the destination room, or an error if the source room
// is unknown, has no exit that way, or the exit targets a missing room.
func (g *Graph) Navigate(fromRoomID string, dir Direction) (*Room, error) {
	from, ok := g.rooms[fromRoomID]
	if !ok {
		return nil, fmt.Errorf("room %q not found", fromRoomID)
	}

	target, ok := from.Exit(dir)
	if !ok {
		return nil, fmt.Errorf("no exit %q from %q", dir, fromRoomID)
	}

	dest, ok := g.rooms[target]
	if !ok {
		return nil, fmt.Errorf("exit %q from %q targets unknown room %q", dir, fromRoomID, target)
	}
	return dest, nil
}

// RoomCount returns the number of rooms in the graph.
func (g *Graph) RoomCount() int {
	return len(g.rooms)
}

// RoomIDs returns every room ID in sorted order.
func (g *Graph) RoomIDs() []string {
	ids := make([]string, 0, len(g.rooms))
	for id := range g.rooms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
