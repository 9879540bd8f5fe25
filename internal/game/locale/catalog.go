// Package locale holds the translated player-facing strings and builds
// message printers for the supported languages.
package locale

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/cory-johannsen/cavern/internal/game/world"
)

// Message keys. Keys are the English text, so an English printer needs no lookup.
const (
	MsgStarting     = "Text adventure engine starting..."
	MsgNamePrompt   = "Enter your name: "
	MsgWelcome      = "Welcome to the text adventure, %s!"
	MsgHelpHint     = "Type 'help' for a list of commands."
	MsgExits        = "Exits:"
	MsgItemsHere    = "You see:"
	MsgFarewell     = "Thanks for playing!"
	MsgHelpHeader   = "Available commands:"
	MsgHelpMove     = "north/south/east/west/up/down (n/s/e/w/u/d): move in that direction"
	MsgHelpInv      = "inventory: show what you are carrying"
	MsgHelpTake     = "take [item] (or get [item]): pick up an item"
	MsgHelpHelp     = "help: show this help text"
	MsgHelpQuit     = "quit (or exit): end the game"
	MsgInvEmpty     = "Your inventory is empty."
	MsgInvHeader    = "You are carrying:"
	MsgTaken        = "You take %s."
	MsgTakeWhat     = "Take what?"
	MsgMoved        = "You move %s."
	MsgNoExit       = "There is no exit that way."
	MsgUnknown      = "I don't understand. Type 'help' for a list of commands."
	MsgRoomNotFound = "Error: the current room could not be found!"
)

// translations maps each key to its Chinese text.
var translations = map[string]string{
	MsgStarting:     "文本冒险游戏引擎启动中...",
	MsgNamePrompt:   "请输入你的名字: ",
	MsgWelcome:      "欢迎来到文本冒险游戏，%s！",
	MsgHelpHint:     "输入 '帮助' 获取游戏指令列表。",
	MsgExits:        "出口:",
	MsgItemsHere:    "你看到:",
	MsgFarewell:     "感谢游玩！",
	MsgHelpHeader:   "可用指令:",
	MsgHelpMove:     "北/南/东/西/上/下：移动到指定方向",
	MsgHelpInv:      "查看背包：显示您的物品",
	MsgHelpTake:     "拿取 [物品]：拿取房间中的物品",
	MsgHelpHelp:     "帮助：显示此帮助信息",
	MsgHelpQuit:     "退出：结束游戏",
	MsgInvEmpty:     "您的背包是空的。",
	MsgInvHeader:    "您的背包中有:",
	MsgTaken:        "你拿取了 %s。",
	MsgTakeWhat:     "你要拿取什么？",
	MsgMoved:        "你向%s方向移动。",
	MsgNoExit:       "那个方向没有出口。",
	MsgUnknown:      "我不明白你的意思。输入'帮助'获取指令列表。",
	MsgRoomNotFound: "错误：找不到当前房间！",
}

// Supported lists the languages the catalog carries, default first.
var Supported = []language.Tag{language.Chinese, language.English}

var cat = mustBuildCatalog()

func mustBuildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, zh := range translations {
		if err := b.SetString(language.English, key, key); err != nil {
			panic(fmt.Sprintf("locale: registering %q: %v", key, err))
		}
		if err := b.SetString(language.Chinese, key, zh); err != nil {
			panic(fmt.Sprintf("locale: registering %q: %v", key, err))
		}
	}
	// Direction names are keyed by their canonical English value.
	for _, d := range world.StandardDirections {
		if err := b.SetString(language.English, string(d), string(d)); err != nil {
			panic(fmt.Sprintf("locale: registering direction %q: %v", d, err))
		}
		if err := b.SetString(language.Chinese, string(d), d.Label()); err != nil {
			panic(fmt.Sprintf("locale: registering direction %q: %v", d, err))
		}
	}
	return b
}

// Parse resolves a configured locale name such as "zh" or "en" to the
// closest supported language. Well-formed names with no close match resolve
// to English.
//
// Postcondition: Returns one of Supported, or an error for malformed input.
func Parse(name string) (language.Tag, error) {
	tag, err := language.Parse(name)
	if err != nil {
		return language.Und, fmt.Errorf("parsing locale %q: %w", name, err)
	}
	matched, _, conf := cat.Matcher().Match(tag)
	if conf == language.No {
		return language.English, nil
	}
	base, _ := matched.Base()
	for _, s := range Supported {
		if sb, _ := s.Base(); sb == base {
			return s, nil
		}
	}
	return language.English, nil
}

// NewPrinter returns a printer that formats catalog messages in tag.
func NewPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(cat))
}

// Direction returns the display name of d in the printer's language.
func Direction(p *message.Printer, d world.Direction) string {
	return p.Sprintf(string(d))
}
