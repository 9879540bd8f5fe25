package console

import "strings"

// SGR escape sequences used by the renderer.
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"

	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
	White  = "\033[37m"

	BrightYellow = "\033[93m"
	BrightCyan   = "\033[96m"
)

const csi = "\033["

// Colorize wraps text in an SGR sequence and a trailing Reset.
//
// Precondition: color must be one of the sequences above.
func Colorize(color, text string) string {
	return color + text + Reset
}

// StripANSI drops every complete \033[...m sequence from s. An unterminated
// sequence is kept as is.
func StripANSI(s string) string {
	if !strings.Contains(s, csi) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for {
		start := strings.Index(s, csi)
		if start < 0 {
			break
		}
		end := strings.IndexByte(s[start+len(csi):], 'm')
		if end < 0 {
			break
		}
		b.WriteString(s[:start])
		s = s[start+len(csi)+end+1:]
	}
	b.WriteString(s)
	return b.String()
}
