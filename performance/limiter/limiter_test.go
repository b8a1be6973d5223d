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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopherworld/performance/limiter"
	"github.com/jetsetilly/gopherworld/test"
)

func TestLimiter(t *testing.T) {
	lim := limiter.NewLimiter(100)
	defer lim.Stop()

	start := time.Now()
	for range 10 {
		lim.Wait()
	}
	elapsed := time.Since(start)

	// ten ticks at 100 per second can't be quicker than about 90ms
	test.ExpectSuccess(t, elapsed >= 90*time.Millisecond)

	lim.SetLimit(200)
	test.ExpectEquality(t, lim.Limit(), 200)
	lim.Wait()
}
