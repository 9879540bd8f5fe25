// Package player provides the player cursor over the world graph and its item bag.
package player

// Player is the operator's character: a position in the world, held as a
// room ID, plus an append-only inventory.
type Player struct {
	name      string
	roomID    string
	inventory []string
}

// New creates a player standing in startRoomID with an empty inventory.
// The name is accepted verbatim, including the empty string.
func New(name, startRoomID string) *Player {
	return &Player{
		name:   name,
		roomID: startRoomID,
	}
}

// Name returns the player's name.
func (p *Player) Name() string { return p.name }

// RoomID returns the ID of the room the player currently occupies.
func (p *Player) RoomID() string { return p.roomID }

// AddItem appends an item name to the inventory.
//
// Postcondition: the item is the last element of Inventory().
func (p *Player) AddItem(item string) {
	p.inventory = append(p.inventory, item)
}

// MoveTo sets the player's current room. The caller is responsible for
// having resolved roomID through the world graph.
func (p *Player) MoveTo(roomID string) {
	p.roomID = roomID
}

// Inventory returns a copy of the carried items in pickup order.
func (p *Player) Inventory() []string {
	out := make([]string, len(p.inventory))
	copy(out, p.inventory)
	return out
}

// Carrying reports how many items the player holds.
func (p *Player) Carrying() int {
	return len(p.inventory)
}
