/*
Package getopt implements a GNU-style command-line option parser.
Given a declarative specification of the recognized options and the
raw argument vector, it separates the arguments into a mapping from
option name to resolved value and the remaining non-option arguments
(such as filenames).

# Option Specification

Options are declared as an ordered Spec of Option values. Each option
has a canonical long name, a kind (Flag or Value), an optional short
single-character alias, and a description used only for usage
rendering. Within one Spec, names and short aliases must be unique;
the package does not check this, a violation is a bug in the calling
program.

# Recognized Forms

The parser understands the usual GNU forms:

	--name          long flag
	--name=value    long option with attached value
	--name value    long option with detached value
	-n              short flag
	-nvalue         short option with attached value
	-n=value        short option with attached value
	-n value        short option with detached value
	-abc            combined short flags (equivalent to -a -b -c)

Long options may be abbreviated, as long as the abbreviation is a
prefix of exactly one declared name: --verb selects --verbose if no
other declared name starts with "verb". An exact match always wins
over prefix matches, so a declared name is never shadowed by a longer
one.

# Processing Rules

Every argument is classified by its own shape, independent of its
position: tokens that do not start with "-", as well as the bare
tokens "-" and "", are non-options and are collected in their
original relative order. There is no "--" end-of-options marker and
no POSIX-style permutation; an option may appear after a non-option.

In a combined short-flag token every character must name a Flag-kind
option. A Value-kind short option may only lead its token; in any
later position it is an error. A detached option argument is taken
from the following element only if that element is not itself
option-shaped; otherwise the option is considered to be missing its
argument.

If the same option occurs more than once, the last occurrence wins;
values are not accumulated.

# Errors

Parsing either succeeds completely or stops at the first malformed
token with an *Error carrying the failure category and the offending
token. The categories are: unknown long option, unknown short
character, ambiguous abbreviation, a flag given an argument, a value
option missing its argument, and a value option inside a combined
flag token.

Parse performs no I/O and touches no global state; concurrent calls,
even against the same Spec, are safe.
*/
package getopt
