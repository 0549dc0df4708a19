// Package colorize highlights normalized listing lines for terminals.
package colorize

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"disnorm/internal/disasm"
)

// Disabled reports whether DISNORM_NO_COLOR turns highlighting off.
func Disabled() bool {
	return os.Getenv("DISNORM_NO_COLOR") != ""
}

// getAssemblyLexer returns an appropriate assembly lexer with fallbacks
func getAssemblyLexer() chroma.Lexer {
	candidates := []string{"armasm", "gas", "nasm"}
	for _, name := range candidates {
		if lexer := lexers.Get(name); lexer != nil {
			return lexer
		}
	}
	return nil
}

// getDisasmStyle returns the disassembly style with fallbacks
func getDisasmStyle() *chroma.Style {
	candidates := []string{DisasmDark.Name, "dracula", "monokai"}
	for _, name := range candidates {
		if style := styles.Get(name); style != nil {
			return style
		}
	}
	return styles.Fallback
}

// getTerminalFormatter returns an appropriate terminal formatter
func getTerminalFormatter() chroma.Formatter {
	candidates := []string{"terminal16m", "terminal256"}
	for _, name := range candidates {
		if formatter := formatters.Get(name); formatter != nil {
			return formatter
		}
	}
	return formatters.Fallback
}

// Line colorizes one normalized line: the opcode column in gray, the
// instruction text through the assembly lexer. Padding is preserved.
func Line(line string) string {
	if Disabled() || len(line) <= disasm.OpcodeWidth {
		return line
	}

	opcode := line[:disasm.OpcodeWidth]
	rest := line[disasm.OpcodeWidth:]
	return fmt.Sprintf("\033[38;2;79;79;79m%s\033[0m%s", opcode, Code(rest))
}

// Code applies syntax highlighting to assembly text. On any lexer or
// formatter failure the text is returned unchanged.
func Code(code string) string {
	if Disabled() {
		return code
	}

	lexer := getAssemblyLexer()
	if lexer == nil {
		return code
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf strings.Builder
	if err := getTerminalFormatter().Format(&buf, getDisasmStyle(), iterator); err != nil {
		return code
	}

	// The lexer terminates its input with a newline; drop it again.
	out := buf.String()
	if !strings.HasSuffix(code, "\n") {
		if i := strings.LastIndexByte(out, '\n'); i >= 0 {
			out = out[:i] + out[i+1:]
		}
	}
	return out
}

// StripANSI removes ANSI escape sequences.
func StripANSI(s string) string {
	var result strings.Builder
	inEscape := false

	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
		} else if inEscape {
			if r == 'm' {
				inEscape = false
			}
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}
