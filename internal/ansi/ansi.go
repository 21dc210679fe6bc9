// Package ansi holds the escape-sequence vocabulary used to draw the menu:
// pipe color codes, screen control, and SGR-aware width helpers.
package ansi

import (
	"bytes"
)

// Pipe code replacements. Foreground |00-|15 follow the DOS/CGA palette,
// bright variants use the bold attribute.
var pipeCodeReplacements = map[string]string{
	"|00": "\x1B[0;30m", // Black
	"|01": "\x1B[0;34m", // Blue
	"|02": "\x1B[0;32m", // Green
	"|03": "\x1B[0;36m", // Cyan
	"|04": "\x1B[0;31m", // Red
	"|05": "\x1B[0;35m", // Magenta
	"|06": "\x1B[0;33m", // Brown/Yellow
	"|07": "\x1B[0;37m", // Light Gray
	"|08": "\x1B[1;30m", // Dark Gray (Bright Black)
	"|09": "\x1B[1;34m", // Light Blue (Bright Blue)
	"|10": "\x1B[1;32m", // Light Green (Bright Green)
	"|11": "\x1B[1;36m", // Light Cyan (Bright Cyan)
	"|12": "\x1B[1;31m", // Light Red (Bright Red)
	"|13": "\x1B[1;35m", // Light Magenta (Bright Magenta)
	"|14": "\x1B[1;33m", // Yellow (Bright Yellow)
	"|15": "\x1B[1;37m", // White (Bright White)

	"|B0":  "\x1B[40m",
	"|B1":  "\x1B[41m",
	"|B2":  "\x1B[42m",
	"|B3":  "\x1B[43m",
	"|B4":  "\x1B[44m",
	"|B5":  "\x1B[45m",
	"|B6":  "\x1B[46m",
	"|B7":  "\x1B[47m",
	"|B8":  "\x1B[100m",
	"|B9":  "\x1B[101m",
	"|B10": "\x1B[102m",
	"|B11": "\x1B[103m",
	"|B12": "\x1B[104m",
	"|B13": "\x1B[105m",
	"|B14": "\x1B[106m",
	"|B15": "\x1B[107m",

	"|23": "\x1B[0m", // Reset attributes
}

// ReplacePipeCodes translates |XX color codes into SGR sequences.
// "||" is a literal pipe; anything that is not a known code passes through.
func ReplacePipeCodes(data []byte) []byte {
	var buf bytes.Buffer
	i := 0
	dataLen := len(data)

	for i < dataLen {
		if data[i] == '|' && i+1 < dataLen && data[i+1] == '|' {
			buf.WriteByte('|')
			i += 2
			continue
		}

		if data[i] == '|' && i+2 < dataLen {
			// Longest match first so |B12 is not read as |B1 followed by "2".
			if i+3 < dataLen {
				if replacement, ok := pipeCodeReplacements[string(data[i:i+4])]; ok {
					buf.WriteString(replacement)
					i += 4
					continue
				}
			}
			if replacement, ok := pipeCodeReplacements[string(data[i:i+3])]; ok {
				buf.WriteString(replacement)
				i += 3
				continue
			}
		}

		buf.WriteByte(data[i])
		i++
	}
	return buf.Bytes()
}

// Pipe is the string form of ReplacePipeCodes.
func Pipe(s string) string {
	return string(ReplacePipeCodes([]byte(s)))
}

// ClearScreen clears the display and homes the cursor.
func ClearScreen() string {
	return "\x1B[2J\x1B[H"
}
