package getopt

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

const (
	helpArgument  = `\*.+?\*`
	helpDelimiter = "*"
)

var helpArgumentRE = regexp.MustCompile(helpArgument)

// FormatHelp extracts the help text and the argument placeholder from
// an option's description. If the description contains a term enclosed
// by a pair of "*", that term becomes the placeholder and the
// delimiters are removed from the help text; otherwise a generic
// placeholder is used.
func formatHelp(opt Option) (string, string) {
	help, argname := opt.Description, "VALUE"

	if limits := helpArgumentRE.FindStringIndex(help); limits != nil {
		argname = help[limits[0]+1 : limits[1]-1]
		help = strings.ReplaceAll(help, helpDelimiter, "")
	}

	return help, argname
}

// WriteShortUsage writes a one-line summary of the declared options to
// w, in declaration order.
func WriteShortUsage(w io.Writer, spec Spec) {
	for _, opt := range spec {
		fmt.Fprintf(w, "[")
		if opt.Short != 0 {
			fmt.Fprintf(w, "-%c|", opt.Short)
		}
		fmt.Fprintf(w, "--%s", opt.Name)

		// Don't print an argument for flags
		if opt.Kind == Value {
			_, argname := formatHelp(opt)
			fmt.Fprintf(w, " %s", argname)
		}
		fmt.Fprintf(w, "] ")
	}
	fmt.Fprintf(w, "\n")
}

// PrintShortUsage writes a one-line summary of the declared options to
// standard error.
func PrintShortUsage(spec Spec) {
	WriteShortUsage(os.Stderr, spec)
}

// WriteUsage writes a detailed description of the declared options,
// including their help texts, to w, in declaration order.
func WriteUsage(w io.Writer, spec Spec) {
	for _, opt := range spec {
		// Indent
		fmt.Fprintf(w, "    ")

		if opt.Short != 0 {
			fmt.Fprintf(w, "-%c ", opt.Short)
		}
		fmt.Fprintf(w, "--%s", opt.Name)

		help, argname := formatHelp(opt)

		// Don't print an argument for flags
		if opt.Kind == Value {
			fmt.Fprintf(w, "=[%s]", argname)
		}

		// Print actual help text (if any!), on new line, indented
		if help != "" {
			fmt.Fprintf(w, "\n       %s", help)
		}

		// Newline
		fmt.Fprintf(w, "\n")
	}
}

// PrintUsage writes a detailed description of the declared options to
// standard error.
func PrintUsage(spec Spec) {
	WriteUsage(os.Stderr, spec)
}
