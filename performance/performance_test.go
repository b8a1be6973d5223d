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

package performance_test

import (
	"testing"

	"github.com/jetsetilly/gopherworld/performance"
	"github.com/jetsetilly/gopherworld/test"
)

func TestCalcRPS(t *testing.T) {
	rps, accuracy := performance.CalcRPS(500, 10, 50)
	test.ExpectEquality(t, rps, 50.0)
	test.ExpectEquality(t, accuracy, 100.0)

	rps, accuracy = performance.CalcRPS(250, 10, 50)
	test.ExpectEquality(t, rps, 25.0)
	test.ExpectEquality(t, accuracy, 50.0)

	rps, _ = performance.CalcRPS(100, 0, 50)
	test.ExpectEquality(t, rps, 0.0)
}

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("cpu,mem")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)
	test.ExpectEquality(t, p.String(), "cpu,mem")

	p, err = performance.ParseProfile("ALL")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	p, err = performance.ParseProfile("none")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)
	test.ExpectEquality(t, p.String(), "none")

	_, err = performance.ParseProfile("disk")
	test.ExpectFailure(t, err)
}

func TestRunProfiler(t *testing.T) {
	var ran bool
	err := performance.RunProfiler(performance.ProfileNone, "test", func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)
}
