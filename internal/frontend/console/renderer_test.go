package console

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/cavern/internal/game/locale"
	"github.com/cory-johannsen/cavern/internal/game/world"
)

func englishRoom(t *testing.T, id string) *world.Room {
	t.Helper()
	g, err := world.ReferenceIn(language.English)
	require.NoError(t, err)
	room, ok := g.GetRoom(id)
	require.True(t, ok)
	return room
}

func TestRenderer_Room_English(t *testing.T) {
	r := NewRenderer(locale.NewPrinter(language.English), false, 0)
	got := r.Room(englishRoom(t, "entrance"))
	assert.Equal(t, "\n== Cave Entrance ==\n"+
		"You stand at the mouth of a dark cave. The opening is gloomy and damp, yet a faint light flickers somewhere inside.\n"+
		"You see: torch\n"+
		"\nExits:\n"+
		"- north", got)
}

func TestRenderer_Room_ExitOrder(t *testing.T) {
	r := NewRenderer(locale.NewPrinter(language.English), false, 0)
	got := r.Room(englishRoom(t, "hall"))
	assert.True(t, strings.HasSuffix(got, "Exits:\n- south\n- east\n- west"), got)
}

func TestRenderer_Room_Chinese(t *testing.T) {
	g := world.MustReference()
	room, _ := g.GetRoom("dark_passage")
	r := NewRenderer(locale.NewPrinter(language.Chinese), false, 0)
	assert.Equal(t, "\n== 黑暗通道 ==\n"+
		"这是一条幽深狭窄的通道，几乎看不到任何光线。\n"+
		"\n出口:\n"+
		"- 东\n"+
		"- 下", r.Room(room))
}

func TestRenderer_Room_NoExitsNoItems(t *testing.T) {
	r := NewRenderer(locale.NewPrinter(language.English), false, 0)
	got := r.Room(world.NewRoom("cell", "Cell", "Four bare walls."))
	assert.Equal(t, "\n== Cell ==\nFour bare walls.", got)
}

func TestRenderer_Room_NeverShowsTargetIDs(t *testing.T) {
	r := NewRenderer(locale.NewPrinter(language.English), false, 0)
	got := r.Room(englishRoom(t, "hall"))
	assert.NotContains(t, got, "dark_passage")
	assert.NotContains(t, got, "treasure")
}

func TestRenderer_Color(t *testing.T) {
	r := NewRenderer(locale.NewPrinter(language.English), true, 0)
	got := r.Room(englishRoom(t, "entrance"))
	assert.Contains(t, got, Colorize(BrightYellow, "== Cave Entrance =="))
	assert.Contains(t, got, "- "+Colorize(BrightCyan, "north"))
	assert.Equal(t, Colorize(Red, "boom"), r.Error("boom"))
	assert.Equal(t, Colorize(Yellow, "ok"), r.Feedback("ok"))
	assert.Equal(t, Colorize(Bold, "> "), r.Prompt("> "))

	plain := NewRenderer(locale.NewPrinter(language.English), false, 0)
	assert.Equal(t, plain.Room(englishRoom(t, "entrance")), StripANSI(got))
}

func TestRenderer_Wrap(t *testing.T) {
	r := NewRenderer(locale.NewPrinter(language.English), false, 30)
	got := r.Room(englishRoom(t, "treasure"))
	for _, line := range strings.Split(got, "\n") {
		assert.LessOrEqual(t, len(line), 30, "line %q", line)
	}
	assert.Contains(t, strings.ReplaceAll(got, "\n", " "), "a dragon lies asleep!")
}

func TestPropertyWrapRespectsWidth(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		width := rapid.IntRange(8, 80).Draw(t, "width")
		words := rapid.SliceOfN(rapid.StringMatching(`[a-z]{1,8}`), 1, 30).Draw(t, "words")
		r := NewRenderer(locale.NewPrinter(language.English), false, width)
		got := r.wrap(strings.Join(words, " "))
		for _, line := range strings.Split(got, "\n") {
			assert.LessOrEqual(t, len(line), width, "line %q", line)
		}
	})
}
