package cliutil

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func init() {
	cobra.AddTemplateFunc("terminalWidth", TerminalWidth)
	cobra.AddTemplateFunc("wrap", Wrap)
	cobra.AddTemplateFunc("wrapIndent", WrapIndent)
	cobra.AddTemplateFunc("add", func(args ...int) int {
		ret := 0
		for _, arg := range args {
			ret += arg
		}
		return ret
	})
}

// TerminalWidth returns the width that help text should be wrapped to:
// $COLUMNS if set, otherwise the detected width of stdout, otherwise 0
// (meaning "don't wrap") when stdout isn't a terminal.
func TerminalWidth() int {
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil {
		return cols
	}
	if cols, _, err := term.GetSize(1); err == nil {
		return cols
	}
	if term.IsTerminal(1) {
		return 80
	}
	return 0
}

// Wrap greedily word-wraps s to width w; w == 0 disables wrapping.  Wrapping
// happens within paragraphs only; blank lines are preserved.
func Wrap(w int, s string) string {
	return wrap(0, w, s)
}

// WrapIndent is Wrap with every line but the first prefixed by i spaces.
// (Indenting the first line is the caller's job, since the caller put
// something there already.)
func WrapIndent(i, w int, s string) string {
	return wrap(i, w, s)
}

func wrap(indent, width int, s string) string {
	if width == 0 {
		return s
	}
	limit := width - indent
	prefix := strings.Repeat(" ", indent)

	var out strings.Builder
	for p, paragraph := range strings.Split(s, "\n\n") {
		if p > 0 {
			out.WriteString("\n\n")
		}
		lineLen := 0
		for _, word := range strings.Fields(paragraph) {
			switch {
			case lineLen == 0:
				// A word longer than the limit gets a line to itself.
			case lineLen+1+len(word) > limit:
				out.WriteString("\n")
				out.WriteString(prefix)
				lineLen = 0
			default:
				out.WriteString(" ")
				lineLen++
			}
			out.WriteString(word)
			lineLen += len(word)
		}
	}
	return out.String()
}

// HelpTemplate is a cobra help template that word-wraps the long description
// and the per-command table to the terminal width.
const HelpTemplate = `Usage: {{ .UseLine }}

{{- if .Short }}
{{ .Short }}
{{- end }}

{{- if .Long }}

{{ .Long | wrap terminalWidth | trimTrailingWhitespaces }}
{{- end }}

{{- if .HasExample }}

Examples:
{{ .Example }}
{{- end }}

{{- if .HasAvailableSubCommands }}

Available Commands:
{{- range .Commands }}
  {{- if (or .IsAvailableCommand (eq .Name "help")) }}
    {{- "\n" }}  {{ rpad .Name .NamePadding }}   {{ .Short | wrapIndent (add .NamePadding 5) terminalWidth }}
  {{- end }}
{{- end }}
{{- end }}

{{- if .HasAvailableLocalFlags }}

Flags:
{{ terminalWidth | .LocalFlags.FlagUsagesWrapped | trimTrailingWhitespaces }}
{{- end }}

{{- if .HasAvailableInheritedFlags }}

Global Flags:
{{ terminalWidth | .InheritedFlags.FlagUsagesWrapped | trimTrailingWhitespaces }}
{{- end }}

{{- if .HasAvailableSubCommands }}

Use "{{ .CommandPath }} [command] --help" for more information about a command.
{{- end }}
`
