package world

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestDirection_Label(t *testing.T) {
	want := map[Direction]string{
		North: "北", South: "南", East: "东", West: "西", Up: "上", Down: "下",
	}
	for _, d := range StandardDirections {
		assert.NotEmpty(t, d.Label(), "label for %q", d)
		assert.Equal(t, want[d], d.Label())
	}
	assert.Len(t, StandardDirections, 6)
}

func TestDirection_IsStandard(t *testing.T) {
	for _, d := range StandardDirections {
		assert.True(t, d.IsStandard(), "expected %q to be standard", d)
	}
	assert.False(t, Direction("northeast").IsStandard())
	assert.False(t, Direction("stairs").IsStandard())
}

func TestDirection_Opposite(t *testing.T) {
	pairs := [][2]Direction{
		{North, South},
		{East, West},
		{Up, Down},
	}
	for _, pair := range pairs {
		assert.Equal(t, pair[1], pair[0].Opposite())
		assert.Equal(t, pair[0], pair[1].Opposite())
	}
	assert.Equal(t, Direction(""), Direction("stairs").Opposite())
}

func TestParseDirection_Tokens(t *testing.T) {
	cases := map[Direction][]string{
		North: {"north", "n", "北"},
		South: {"south", "s", "南"},
		East:  {"east", "e", "东"},
		West:  {"west", "w", "西"},
		Up:    {"up", "u", "上"},
		Down:  {"down", "d", "下"},
	}
	for want, tokens := range cases {
		for _, tok := range tokens {
			got, ok := ParseDirection(tok)
			assert.True(t, ok, "token %q", tok)
			assert.Equal(t, want, got, "token %q", tok)

			got, ok = ParseDirection(strings.ToUpper(tok))
			assert.True(t, ok, "token %q upper-cased", tok)
			assert.Equal(t, want, got)
		}
	}
}

func TestParseDirection_NoMatch(t *testing.T) {
	for _, s := range []string{"", "northeast", "ne", "go north", " north", "x", "上下", "inventory"} {
		_, ok := ParseDirection(s)
		assert.False(t, ok, "input %q should not parse", s)
	}
}

func TestPropertyParseDirectionIgnoresCase(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := rapid.SampledFrom(StandardDirections).Draw(t, "dir")
		word := []byte(string(d))
		for i := range word {
			if rapid.Bool().Draw(t, "upper") {
				word[i] = byte(strings.ToUpper(string(word[i]))[0])
			}
		}
		got, ok := ParseDirection(string(word))
		assert.True(t, ok)
		assert.Equal(t, d, got)
	})
}

func TestPropertyParseDirectionRejectsUnknown(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.StringMatching(`[a-z]{2,8}`).Draw(t, "word")
		_, known := directionTokens[s]
		_, ok := ParseDirection(s)
		assert.Equal(t, known, ok)
	})
}

func TestPropertyOppositeIsInvolution(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := rapid.SampledFrom(StandardDirections).Draw(t, "dir")
		assert.Equal(t, d, d.Opposite().Opposite(), "opposite should be an involution for %q", d)
	})
}

func TestNewRoom_Empty(t *testing.T) {
	room := NewRoom("a", "Room A", "This is room A.")
	assert.Equal(t, "a", room.ID())
	assert.Equal(t, "Room A", room.Name())
	assert.Equal(t, "This is room A.", room.Description())
	assert.Empty(t, room.Items())
	assert.Empty(t, room.Exits())
}

func TestRoom_AddItem_KeepsOrderAndDuplicates(t *testing.T) {
	room := NewRoom("a", "Room A", "desc")
	room.AddItem("torch")
	room.AddItem("coin")
	room.AddItem("torch")
	assert.Equal(t, []string{"torch", "coin", "torch"}, room.Items())
}

func TestRoom_Items_ReturnsCopy(t *testing.T) {
	room := NewRoom("a", "Room A", "desc")
	room.AddItem("torch")
	items := room.Items()
	items[0] = "stolen"
	assert.Equal(t, []string{"torch"}, room.Items())
}

func TestRoom_Exit(t *testing.T) {
	room := NewRoom("test", "Test", "desc")
	room.AddExit(North, "north_room")
	room.AddExit(East, "east_room")

	target, ok := room.Exit(North)
	assert.True(t, ok)
	assert.Equal(t, "north_room", target)

	_, ok = room.Exit(South)
	assert.False(t, ok)
}

func TestRoom_AddExit_LastWriteWins(t *testing.T) {
	room := NewRoom("test", "Test", "desc")
	room.AddExit(North, "first")
	room.AddExit(East, "east_room")
	room.AddExit(North, "second")

	target, ok := room.Exit(North)
	assert.True(t, ok)
	assert.Equal(t, "second", target)
	assert.Equal(t, []Direction{North, East}, room.Directions())
	assert.Len(t, room.Exits(), 2)
}

func TestRoom_Exits_ReturnsCopy(t *testing.T) {
	room := NewRoom("test", "Test", "desc")
	room.AddExit(West, "w")
	exits := room.Exits()
	exits[0].TargetRoom = "elsewhere"
	target, _ := room.Exit(West)
	assert.Equal(t, "w", target)
}

func TestPropertyAddExitKeepsOneTargetPerDirection(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		room := NewRoom("r", "R", "desc")
		last := map[Direction]string{}
		n := rapid.IntRange(0, 20).Draw(t, "n")
		for i := 0; i < n; i++ {
			d := rapid.SampledFrom(StandardDirections).Draw(t, "dir")
			target := rapid.StringMatching(`[a-z]{1,6}`).Draw(t, "target")
			room.AddExit(d, target)
			last[d] = target
		}
		assert.Len(t, room.Exits(), len(last))
		for d, want := range last {
			got, ok := room.Exit(d)
			assert.True(t, ok)
			assert.Equal(t, want, got)
		}
	})
}
