package converter

import (
	"fmt"
	"os"

	"github.com/rwcarlsen/goexif/exif"
)

// ReadOrientation returns the EXIF orientation tag of the image at path.
// 1 is upright; 2 to 8 mean the pixels are stored mirrored and/or rotated.
func ReadOrientation(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return 0, fmt.Errorf("exif decode failed: %w", err)
	}

	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 0, err
	}
	return tag.Int(0)
}

// Probe collects what the recipe needs to know about each input file.
// Only photos with AutoOrient read anything from disk; unreadable EXIF data
// leaves the orientation unknown.
func (r Recipe) Probe(paths []string) []Input {
	inputs := make([]Input, len(paths))
	for i, p := range paths {
		inputs[i] = Input{Path: p}
		if r.Kind != Photo || !r.Options.AutoOrient {
			continue
		}
		if orientation, err := ReadOrientation(p); err == nil {
			inputs[i].Orientation = orientation
		}
	}
	return inputs
}
