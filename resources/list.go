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

package resources

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopherworld/logger"
)

// List writes one line per resource followed by a summary for each type.
func (mgr *Manager) List(w io.Writer) {
	type stats struct {
		count  int
		size   int
		packed int
	}
	var byType [Unknown + 1]stats

	for id, e := range mgr.entries {
		fmt.Fprintf(w, "%02x  %s\n", id, e)
		s := &byType[e.Type]
		s.count++
		s.size += e.Size
		s.packed += e.PackedSize
	}

	fmt.Fprintln(w)
	for t, s := range byType {
		if s.count == 0 {
			continue
		}
		fmt.Fprintf(w, "%-9s %3d entries %7d bytes (%7d packed)\n", Type(t), s.count, s.size, s.packed)
	}
}

// Dump writes every loadable resource to the output directory. Bitmaps are
// also written as greyscale PNG images.
func (mgr *Manager) Dump(dir string) error {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("resources: %w", err)
	}

	for id := 1; id < len(mgr.entries); id++ {
		res, err := mgr.Load(id)
		if err != nil {
			logger.Logf(logger.Allow, "resources", "dump: %v", err)
			continue
		}
		if len(res.Data) == 0 {
			continue
		}

		name := filepath.Join(dir, fmt.Sprintf("%02x.%s", id, strings.ToLower(res.Type.String())))
		if err := os.WriteFile(name, res.Data, 0600); err != nil {
			return fmt.Errorf("resources: %w", err)
		}

		if res.Type == Bitmap {
			if err := dumpBitmap(filepath.Join(dir, fmt.Sprintf("%02x.png", id)), res.Data); err != nil {
				logger.Logf(logger.Allow, "resources", "dump: %02x: %v", id, err)
			}
		}
	}

	return nil
}

func dumpBitmap(name string, data []byte) error {
	pixels, err := Deplanarise(data)
	if err != nil {
		return err
	}

	img := image.NewGray(image.Rect(0, 0, BitmapWidth, BitmapHeight))
	for i, c := range pixels {
		img.Pix[i] = c * 0x11
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
