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

// Package gamestrings loads the text displayed by the drawstring
// instruction. The strings file has one entry per line:
//
//	0x001: text
//
// The two characters \n in the text are replaced with a newline.
package gamestrings

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopherworld/curated"
	"github.com/jetsetilly/gopherworld/logger"
)

// Sentinal error patterns.
const (
	InvalidLine = "gamestrings: line %d: %v"
)

// Table maps string IDs to text.
type Table map[uint16]string

// Get returns the string with the ID.
func (tab Table) Get(id uint16) (string, bool) {
	s, ok := tab[id]
	return s, ok
}

// Parse reads strings from r.
func Parse(r io.Reader) (Table, error) {
	tab := make(Table)

	scanner := bufio.NewScanner(r)
	ln := 0
	for scanner.Scan() {
		ln++

		s := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(s) == "" {
			continue
		}

		key, text, ok := strings.Cut(s, ":")
		if !ok {
			return nil, curated.Errorf(InvalidLine, ln, "missing separator")
		}

		key = strings.TrimSpace(key)
		if !strings.HasPrefix(key, "0x") {
			return nil, curated.Errorf(InvalidLine, ln, fmt.Sprintf("invalid id %q", key))
		}
		id, err := strconv.ParseUint(key[2:], 16, 16)
		if err != nil {
			return nil, curated.Errorf(InvalidLine, ln, err)
		}

		text = strings.TrimPrefix(text, " ")
		tab[uint16(id)] = strings.ReplaceAll(text, `\n`, "\n")
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("gamestrings: %w", err)
	}

	return tab, nil
}

// Load reads the strings file. A missing file is not an error, an empty
// table is returned and the absence is logged.
func Load(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Logf(logger.Allow, "gamestrings", "%s not found: no strings available", path)
			return make(Table), nil
		}
		return nil, fmt.Errorf("gamestrings: %w", err)
	}
	defer f.Close()

	return Parse(f)
}
