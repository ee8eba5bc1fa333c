package getopt

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Kind classifies a declared option. A Flag takes no argument and
// resolves to a boolean; a Value takes exactly one string argument.
type Kind int

const (
	Flag Kind = iota
	Value
)

// Option declares a single recognized option. Name is the canonical
// long name (eg. "verbose" for --verbose) and must be unique within a
// Spec. Short is an optional single-character alias (0 for none); when
// present it must be unique within the Spec as well. Description is
// used for usage rendering only and never influences parsing.
type Option struct {
	Name        string
	Kind        Kind
	Short       rune
	Description string
}

// Spec is an ordered set of option declarations. The order matters
// only for usage rendering, not for parsing. Duplicate names or short
// aliases are caller bugs; they are not detected.
type Spec []Option

// -----

// Reason identifies the category of a parse failure.
type Reason int

const (
	UnknownOption       Reason = iota // long name matched no declaration
	UnknownShortOption                // short character matched no declaration
	AmbiguousOption                   // abbreviation matched several long names
	UnexpectedArgument                // a Flag option was given =value
	MissingArgument                   // a Value option has no argument to consume
	CombinedValueOption               // a Value option inside a combined-flag token
)

// Error describes a single parse failure: the category, and the
// offending option token (with its leading dashes). Parsing stops at
// the first failure; there is never more than one.
type Error struct {
	Reason Reason
	Option string
}

func (e *Error) Error() string {
	switch e.Reason {
	case UnknownOption:
		return "Unknown option: " + e.Option
	case UnknownShortOption:
		return "Option unknown: " + e.Option
	case AmbiguousOption:
		return "Ambiguous option abbreviation: " + e.Option
	case UnexpectedArgument:
		return "Option takes no argument: " + e.Option
	case MissingArgument:
		return "Option requires an argument: " + e.Option
	case CombinedValueOption:
		return "Option needs an argument: " + e.Option
	default:
		return "Invalid option: " + e.Option
	}
}

// -----

// ResolveLong takes a candidate long name (without the leading dashes)
// and resolves it against the declared options: an exact match wins
// outright; otherwise the candidate must be a prefix of exactly one
// declared name. Returns an Error if the candidate matches no declared
// name, or abbreviates more than one.
func (s Spec) resolveLong(candidate string) (*Option, error) {
	for i := range s {
		if s[i].Name == candidate {
			return &s[i], nil
		}
	}

	var match *Option
	count := 0
	for i := range s {
		if strings.HasPrefix(s[i].Name, candidate) {
			match = &s[i]
			count++
		}
	}

	switch count {
	case 0:
		return nil, &Error{UnknownOption, "--" + candidate}
	case 1:
		return match, nil
	default:
		return nil, &Error{AmbiguousOption, "--" + candidate}
	}
}

// LookupShort returns the declared option with the given short
// character, or nil if there is none.
func (s Spec) lookupShort(c rune) *Option {
	for i := range s {
		if s[i].Short != 0 && s[i].Short == c {
			return &s[i]
		}
	}
	return nil
}

// IsOption reports whether a token is option-shaped: it starts with
// '-' and is longer than one character. The bare tokens "-" and ""
// are not option-shaped. Note that "--" IS option-shaped: it is a
// short-option token for the character '-', there is no end-of-options
// marker.
func isOption(s string) bool {
	return len(s) > 1 && s[0] == '-'
}

// Parse scans args once, left to right, classifying every element by
// its own shape: option-shaped tokens are resolved against spec, all
// others are collected in order as non-options. An element's role is
// fixed by its shape alone; non-options may appear before, between,
// and after options.
//
// Every declared Flag option appears in the result, defaulted to
// false. Value options appear only when supplied. If the same option
// is given more than once, the last occurrence wins.
//
// On the first malformed token Parse stops and returns a nil Result
// and an *Error identifying the token; there are no partial results.
func Parse(args []string, spec Spec) (*Result, error) {
	result := newResult(spec)

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case !isOption(arg):
			result.NonOptions = append(result.NonOptions, arg)

		case strings.HasPrefix(arg, "--") && len(arg) > 2:
			consumed, err := parseLong(arg, args[i+1:], spec, result)
			if err != nil {
				return nil, err
			}
			i += consumed

		default:
			consumed, err := parseShort(arg, args[i+1:], spec, result)
			if err != nil {
				return nil, err
			}
			i += consumed
		}
	}

	return result, nil
}

// ParseLong resolves one long-option token (--name or --name=value).
// rest holds the remaining input, in case the option takes a detached
// argument. Returns how many extra input elements were consumed.
func parseLong(token string, rest []string, spec Spec, result *Result) (int, error) {
	candidate, attached, hasAttached := strings.Cut(token[2:], "=")

	opt, err := spec.resolveLong(candidate)
	if err != nil {
		return 0, err
	}

	if opt.Kind == Flag {
		if hasAttached {
			return 0, &Error{UnexpectedArgument, "--" + candidate}
		}
		result.Flags[opt.Name] = true
		return 0, nil
	}

	// Value kind: the argument is either attached with '=', or the
	// next input element, which must not itself be option-shaped.
	if hasAttached {
		result.Values[opt.Name] = attached
		return 0, nil
	}
	if len(rest) == 0 || isOption(rest[0]) {
		return 0, &Error{MissingArgument, "--" + candidate}
	}
	result.Values[opt.Name] = rest[0]
	return 1, nil
}

// ParseShort resolves one short-option token. The character after the
// leading '-' selects the option. For a Flag, every further character
// is another short flag to set (combined flags, eg. -vr). For a Value,
// the argument is embedded in the token (-ofoo, -o=foo) or, if the
// token is just the option itself (-o), taken from the next input
// element, which must not be option-shaped. Returns how many extra
// input elements were consumed.
func parseShort(token string, rest []string, spec Spec, result *Result) (int, error) {
	c, size := utf8.DecodeRuneInString(token[1:])

	opt := spec.lookupShort(c)
	if opt == nil {
		return 0, &Error{UnknownShortOption, "-" + string(c)}
	}

	tail := token[1+size:]

	if opt.Kind == Flag {
		result.Flags[opt.Name] = true
		for _, f := range tail {
			other := spec.lookupShort(f)
			if other == nil {
				return 0, &Error{UnknownShortOption, "-" + string(f)}
			}
			if other.Kind != Flag {
				return 0, &Error{CombinedValueOption, "-" + string(f)}
			}
			result.Flags[other.Name] = true
		}
		return 0, nil
	}

	// Value kind
	if tail == "" {
		if len(rest) == 0 || isOption(rest[0]) {
			return 0, &Error{MissingArgument, "-" + string(c)}
		}
		result.Values[opt.Name] = rest[0]
		return 1, nil
	}
	if tail[0] == '=' {
		tail = tail[1:]
	}
	result.Values[opt.Name] = tail
	return 0, nil
}

// ParseOS parses the process's own command line (os.Args without the
// program name) against spec, and additionally returns the base name
// of the program for use in messages.
func ParseOS(spec Spec) (program string, result *Result, err error) {
	result, err = Parse(os.Args[1:], spec)
	program = filepath.Base(os.Args[0])
	return
}
