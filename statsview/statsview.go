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

// Package statsview provides a HTTP server running locally offering runtime
// statistics for the running VM. Underlying funcionality provided by
// "github.com/go-echarts/statsview"
//
// After launch, graphical statistics will be viewable at:
//
//	localhost:12700/debug/statsview
//
// And standard Go pprof statistics available at:
//
//	localhost:12700/debug/pprof/
package statsview

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Address of the statistics server.
const Address = "localhost:12700"

const url = "/debug/statsview"

// the server can only be launched once
var launched sync.Once

// Launch a new goroutine running the statsview. Subsequent calls do nothing.
func Launch(output io.Writer) {
	launched.Do(func() {
		viewer.SetConfiguration(viewer.WithAddr(Address))
		mgr := statsview.New()
		go mgr.Start()

		fmt.Fprintf(output, "stats server available at %s%s\n", Address, url)
	})
}
