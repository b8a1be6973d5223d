// This file is part of Gopherworld.
//
// Gopherworld is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherworld is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherworld.  If not, see <https://www.gnu.org/licenses/>.

package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
)

const modeSeparator = "/"

// Modes provides an easy way of handling command line arguments. The Output
// field should be specified before calling Parse() or help messages will not
// be seen.
type Modes struct {
	// where to print help messages
	Output io.Writer

	// whether Parse() has been called since the last NewMode()
	parsed bool

	// a new flagset is created on every call to NewMode()
	flags *flag.FlagSet

	args    []string
	argsIdx int

	// sub-modes for the next call to Parse()
	subModes []string

	// every mode found so far. never reset
	path []string

	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the last mode to be encountered.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode encountered during parsing, separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs with a string of arguments (from the command line for example).
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.NewMode()
}

// NewMode indicates that further arguments should be considered part of a
// new mode.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.parsed = false
	md.additionalHelp = ""
}

// AdditionalHelp adds text to be displayed after the help for the available
// flags.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// Parsed returns false if Parse() has not been called since the last call
// to NewArgs() or NewMode().
func (md *Modes) Parsed() bool {
	return md.parsed
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// continue with command line processing
	ParseContinue ParseResult = iota

	// help was requested and has been printed
	ParseHelp

	// an error has occurred and is returned as the second return value
	ParseError
)

// Parse the current layer of arguments. Help messages are printed
// automatically and ParseHelp returned. The caller should treat ParseHelp
// as the end of processing.
func (md *Modes) Parse() (ParseResult, error) {
	md.parsed = true

	var help strings.Builder
	md.flags.SetOutput(&help)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if err == flag.ErrHelp {
			md.writeHelp(help.String())
			return ParseHelp, nil
		}

		// unrecognised flags are an error unless there is a default mode to
		// fall back on
		if len(md.subModes) == 0 {
			return ParseError, err
		}
		md.path = append(md.path, md.subModes[0])
		return ParseContinue, nil
	}

	if len(md.subModes) > 0 {
		mode := md.subModes[0]
		arg := strings.ToUpper(md.flags.Arg(0))
		for _, m := range md.subModes {
			if m == arg {
				mode = m

				// the mode argument is consumed. the flags for the next
				// layer begin after it
				md.argsIdx += len(md.args[md.argsIdx:]) - md.flags.NArg() + 1
				break
			}
		}
		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

func (md *Modes) writeHelp(flagHelp string) {
	if md.Output == nil {
		return
	}

	lines := strings.SplitN(flagHelp, "\n", 2)
	hasFlags := len(lines) == 2 && lines[1] != ""

	if !hasFlags && len(md.subModes) == 0 {
		if md.Path() != "" {
			fmt.Fprintf(md.Output, "No help available for %s\n", md.Path())
		} else {
			io.WriteString(md.Output, "No help available\n")
		}
		return
	}

	if md.Path() != "" {
		fmt.Fprintf(md.Output, "Usage for %s mode:\n", md.Path())
	} else {
		io.WriteString(md.Output, "Usage:\n")
	}

	if hasFlags {
		io.WriteString(md.Output, lines[1])
	}

	if len(md.subModes) > 0 {
		if hasFlags {
			io.WriteString(md.Output, "\n")
		}
		fmt.Fprintf(md.Output, "  available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(md.Output, "    default: %s\n", md.subModes[0])
	}

	if md.additionalHelp != "" {
		fmt.Fprintf(md.Output, "\n%s\n", md.additionalHelp)
	}
}

// RemainingArgs after a call to Parse(). These are arguments that are not
// flags and not a listed sub-mode.
func (md *Modes) RemainingArgs() []string {
	args := md.flags.Args()
	if len(md.subModes) > 0 && len(args) > 0 && strings.ToUpper(args[0]) == md.Mode() {
		return args[1:]
	}
	return args
}

// GetArg returns the numbered argument from the list returned by
// RemainingArgs(). An empty string is returned if there is no such argument.
func (md *Modes) GetArg(i int) string {
	args := md.RemainingArgs()
	if i < 0 || i >= len(args) {
		return ""
	}
	return args[i]
}

// AddSubModes to list of sub-modes for next parse. The first sub-mode in
// the list is the default sub-mode.
func (md *Modes) AddSubModes(submodes ...string) {
	for _, m := range submodes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddDuration flag for next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}
