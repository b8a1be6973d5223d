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

// Package version reports the version of the program. The version number is
// set at build time with the linker flag:
//
//	-ldflags "-X github.com/jetsetilly/gopherworld/version.number=v0.1.0"
//
// Revision information is taken from the VCS information embedded by the Go
// toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopherworld"

// set by the linker
var number string

// Info about the current build.
type Info struct {
	// the version number. "unreleased" if the program was not built with a
	// version number but there is VCS information. "local" if there is no
	// version information of any kind
	Number string

	// the VCS revision, suffixed with "+dirty" if the source had
	// uncommitted modifications
	Revision string

	// true if Number was set at build time
	Release bool
}

func (inf Info) String() string {
	if inf.Release {
		return fmt.Sprintf("%s %s", ApplicationName, inf.Number)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, inf.Number, inf.Revision)
}

var info Info

// Version returns information about the current build.
func Version() Info {
	return info
}

func init() {
	info = fromBuildInfo(number, debug.ReadBuildInfo)
}

func fromBuildInfo(number string, read func() (*debug.BuildInfo, bool)) Info {
	var vcs bool
	var inf Info

	if bi, ok := read(); ok {
		var modified bool
		for _, v := range bi.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				inf.Revision = v.Value
			case "vcs.modified":
				modified = v.Value == "true"
			}
		}
		if inf.Revision != "" && modified {
			inf.Revision = fmt.Sprintf("%s+dirty", inf.Revision)
		}
	}

	if inf.Revision == "" {
		inf.Revision = "no revision information"
	}

	switch {
	case number != "":
		inf.Number = number
		inf.Release = true
	case vcs:
		inf.Number = "unreleased"
	default:
		inf.Number = "local"
	}

	return inf
}
