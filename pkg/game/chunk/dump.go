package chunk

import (
	"fmt"
	"io"

	"github.com/gookit/color"

	"chunkgen/pkg/engine/world"
)

var (
	roomStyle = color.Style{color.FgYellow}
	doorStyle = color.Style{color.FgCyan}
)

// Dump writes the chunk header and its grid as text.
func (c *Chunk) Dump(w io.Writer) {
	fmt.Fprintf(w, "Chunk (width=%d, height=%d) (top=%d, right=%d, bottom=%d, left=%d)\n",
		c.Width(), c.Height(), c.Top, c.Right, c.Bottom, c.Left)
	fmt.Fprint(w, c.String())
	fmt.Fprintln(w)
}

// DumpRoom writes the grid with the room at idx highlighted and its
// properties printed beside the first rows.
func (c *Chunk) DumpRoom(w io.Writer, idx int) {
	r := c.Rooms[idx]
	info := []string{
		fmt.Sprintf("Room: %d", idx),
		fmt.Sprintf("Size: %d", r.Size()),
		fmt.Sprintf("Isolation: %d", r.Isolation),
		fmt.Sprintf("Area: (%d, %d), (%d, %d)", r.X1, r.Y1, r.X2, r.Y2),
		fmt.Sprintf("Exits: top=%d, right=%d, bottom=%d, left=%d", r.Top, r.Right, r.Bottom, r.Left),
		fmt.Sprintf("Flags: %04b", r.Flags),
		fmt.Sprintf("Cluster: %d", r.Cluster),
	}
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			t := c.At(x, y)
			sym := string(t.Symbol())
			switch {
			case r.Contains(x, y):
				fmt.Fprint(w, roomStyle.Sprint(sym))
			case t.IsPassage() && t != world.TileEmpty:
				fmt.Fprint(w, doorStyle.Sprint(sym))
			default:
				fmt.Fprint(w, sym)
			}
		}
		if y < len(info) {
			fmt.Fprintf(w, "\t%s", info[y])
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}
