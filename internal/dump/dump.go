// Package dump writes the id matrix of a labeled grid as text.
package dump

import (
	"bufio"
	"io"
	"strconv"

	"github.com/gogpu/voronoi"
)

// Write prints one grid row per line, ids separated by single spaces.
func Write(w io.Writer, labels voronoi.Labels) error {
	bw := bufio.NewWriter(w)
	size := labels.Size()
	buf := make([]byte, 0, 16)

	for y := range size.Y {
		for x := range size.X {
			if x > 0 {
				_ = bw.WriteByte(' ')
			}
			buf = strconv.AppendInt(buf[:0], int64(labels.IDAt(x, y)), 10)
			_, _ = bw.Write(buf)
		}
		_ = bw.WriteByte('\n')
	}
	return bw.Flush()
}
