package render

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gogpu/voronoi"
)

// Snapshotter writes numbered debug images of in-progress fills.
type Snapshotter struct {
	// Dir receives <index><ext> files.
	Dir string

	// Format of the written files.
	Format Format

	// Colors is the seed palette.
	Colors []color.RGBA

	// Scale is the pixel size of one cell.
	Scale int
}

// PrepareDir empties dir and recreates it.
func PrepareDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("render: clear debug dir: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("render: create debug dir: %w", err)
	}
	return nil
}

// Path returns the file a snapshot with the given index is written to.
func (s *Snapshotter) Path(index int) string {
	return filepath.Join(s.Dir, strconv.Itoa(index)+s.Format.Ext())
}

// Write renders labels and stores it as snapshot index. Its signature
// matches voronoi.SnapshotFunc.
func (s *Snapshotter) Write(index int, labels voronoi.Labels) error {
	img, err := Image(labels, s.Colors, s.Scale)
	if err != nil {
		return err
	}
	return Save(s.Path(index), img)
}
