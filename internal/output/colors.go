// Package output prints the highlighted status lines of the CLI.
package output

import (
	"strings"
)

var colors = map[string]string{
	"black": "0;30", "gray": "1;30", "silver": "0;37", "white": "1;37",
	"navy": "0;34", "blue": "1;34", "green": "0;32", "lime": "1;32",
	"teal": "0;36", "aqua": "1;36", "maroon": "0;31", "red": "1;31",
	"purple": "0;35", "fuchsia": "1;35", "olive": "0;33", "yellow": "1;33",
	"": "0",
}

// Reset restores default terminal attributes.
const Reset = "\x1b[0m"

// Color returns the escape sequence for a "foreground[/background]" color
// spec such as "yellow/maroon". Unknown names reset the terminal.
func Color(spec string) string {
	fg, bg, _ := strings.Cut(spec, "/")
	code, ok := colors[fg]
	if !ok {
		code = colors[""]
	}
	if bgCode, ok := colors[bg]; ok && bg != "" {
		code += ";4" + bgCode[len(bgCode)-1:]
	}
	return "\x1b[" + strings.ReplaceAll(code, ";", "m\x1b[") + "m"
}
