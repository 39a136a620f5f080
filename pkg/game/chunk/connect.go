package chunk

const (
	innerLoopOdds     = 24
	grandCentralOdds  = 9
	corridorMinLength = 2
	loopClearance     = 3
	seedRoomGrowth    = 4
)

// ConnectExits joins the border openings through the chunk interior. It tries
// an inner loop, then a grand central room, and falls back to spokes. It does
// nothing and returns false when rooms already exist.
func (c *Chunk) ConnectExits() bool {
	if len(c.Rooms) > 0 {
		return false
	}
	switch {
	case c.Roll(0, innerLoopOdds) == 0 && c.ConnectExitsInnerLoop():
		c.trace("connected exits with an inner loop")
	case c.Roll(0, grandCentralOdds) == 0 && c.ConnectExitsGrandCentral():
		c.trace("connected exits with a grand central room")
	default:
		c.ConnectExitsSpokes()
		c.trace("connected exits with spokes")
	}
	return true
}

func (c *Chunk) hasExits() bool {
	return c.Top != NoExit || c.Bottom != NoExit || c.Left != NoExit || c.Right != NoExit
}

// ConnectExitsSpokes digs a straight corridor from every opening toward the
// middle of the chunk. Corridors run until they reach the line of a
// perpendicular exit, or the middle when there is none. Opposite openings
// with no perpendicular exits are joined by a bridge across the midline.
func (c *Chunk) ConnectExitsSpokes() bool {
	if len(c.Rooms) > 0 {
		return false
	}
	w, h := c.Width(), c.Height()

	if !c.hasExits() {
		r := c.seedRoom(seedRoomGrowth, w/2, h/2)
		c.AddRoom(r)
		return true
	}

	// top
	if c.Top != NoExit {
		limit := max(c.Left, c.Right)
		if limit == NoExit {
			limit = h >> 1
		}
		c.digCorridor(c.Top, 1, 0, 1, limit)
	}

	// bottom
	if c.Bottom != NoExit {
		limit := c.Left
		if limit == NoExit || (c.Right != NoExit && c.Right < limit) {
			limit = c.Right
		}
		if limit == NoExit {
			limit = h >> 1
		}
		c.digCorridor(c.Bottom, h-2, 0, -1, h-1-limit)
	}

	if c.Top != NoExit && c.Bottom != NoExit && c.Left == NoExit && c.Right == NoExit {
		c.digBridge(min(c.Top, c.Bottom)+1, h>>1, max(c.Top, c.Bottom)-1, h>>1)
	}

	// left
	if c.Left != NoExit {
		limit := max(c.Top, c.Bottom)
		if limit == NoExit {
			limit = w >> 1
		}
		c.digCorridor(1, c.Left, 1, 0, limit)
	}

	// right
	if c.Right != NoExit {
		limit := c.Top
		if limit == NoExit || (c.Bottom != NoExit && c.Bottom < limit) {
			limit = c.Bottom
		}
		if limit == NoExit {
			limit = w >> 1
		}
		c.digCorridor(w-2, c.Right, -1, 0, w-1-limit)
	}

	if c.Left != NoExit && c.Right != NoExit && c.Top == NoExit && c.Bottom == NoExit {
		c.digBridge(w>>1, min(c.Left, c.Right)+1, w>>1, max(c.Left, c.Right)-1)
	}

	if debugAssertions {
		c.mustPass(c.Validate())
	}
	return true
}

// digCorridor opens n tiles from x0, y0 stepping by dx, dy. The part dug
// through solid ground before meeting an open tile becomes a corridor room.
func (c *Chunk) digCorridor(x0, y0, dx, dy, n int) {
	fresh := 0
	for i := 0; i < n; i++ {
		x, y := x0+dx*i, y0+dy*i
		if fresh == i && c.Solid(x, y) {
			fresh++
		}
		c.Dig(x, y)
	}
	if fresh < corridorMinLength {
		return
	}
	ex, ey := x0+dx*(fresh-1), y0+dy*(fresh-1)
	r := NewRoom(min(x0, ex), min(y0, ey), max(x0, ex), max(y0, ey), 0, FlagCorridor)
	r.Cluster = len(c.Rooms)
	c.AddRoom(r)
}

// digBridge opens the straight segment between two tiles if it is all solid.
func (c *Chunk) digBridge(x1, y1, x2, y2 int) {
	if x1 > x2 || y1 > y2 {
		return
	}
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			if !c.Solid(x, y) {
				return
			}
		}
	}
	r := NewRoom(x1, y1, x2, y2, 0, FlagCorridor)
	c.digRoom(r)
	if r.Size() >= corridorMinLength {
		r.Cluster = len(c.Rooms)
		c.AddRoom(r)
	}
}

// seedRoom grows a room from a single tile when there is nothing to connect.
func (c *Chunk) seedRoom(times, x, y int) Room {
	var flags RoomFlags
	if c.Roll(0, c.Config.Chaos) == 0 {
		flags |= FlagNeat
	}
	r := NewRoom(x, y, x, y, 0, flags)
	c.Dig(x, y)
	for i := 0; i < times; i++ {
		if !c.grow(&r) {
			break
		}
	}
	return r
}

// ConnectExitsGrandCentral digs one large central room reaching every exit
// coordinate and runs a straight corridor from each opening into it.
func (c *Chunk) ConnectExitsGrandCentral() bool {
	if len(c.Rooms) > 0 || !c.hasExits() {
		return false
	}
	w, h := c.Width(), c.Height()
	x1, x2 := w/4, w-1-w/4
	y1, y2 := h/4, h-1-h/4
	for _, v := range []int{c.Top, c.Bottom} {
		if v != NoExit {
			x1, x2 = min(x1, v), max(x2, v)
		}
	}
	for _, v := range []int{c.Left, c.Right} {
		if v != NoExit {
			y1, y2 = min(y1, v), max(y2, v)
		}
	}
	r := NewRoom(max(x1, 2), max(y1, 2), min(x2, w-3), min(y2, h-3), 0, FlagNeat)
	c.digRoom(r)

	if c.Top != NoExit {
		for y := 1; y < r.Y1; y++ {
			c.Dig(c.Top, y)
		}
		r.Top = c.Top
	}
	if c.Bottom != NoExit {
		for y := r.Y2 + 1; y < h-1; y++ {
			c.Dig(c.Bottom, y)
		}
		r.Bottom = c.Bottom
	}
	if c.Left != NoExit {
		for x := 1; x < r.X1; x++ {
			c.Dig(x, c.Left)
		}
		r.Left = c.Left
	}
	if c.Right != NoExit {
		for x := r.X2 + 1; x < w-1; x++ {
			c.Dig(x, c.Right)
		}
		r.Right = c.Right
	}
	idx := c.AddRoom(r)

	switch c.Roll(0, 2) {
	case 0:
		c.RoomInRoom(idx, 1)
	case 1:
		c.RoomCorners(idx, AllCorners, 9)
	}
	if debugAssertions {
		c.mustPass(c.Validate())
	}
	return true
}

// ConnectExitsInnerLoop digs a rectangular loop around the chunk centre and a
// spoke from every opening to it. It fails without touching the chunk when
// the loop cannot keep its clearance from the border.
func (c *Chunk) ConnectExitsInnerLoop() bool {
	if len(c.Rooms) > 0 || !c.hasExits() {
		return false
	}
	w, h := c.Width(), c.Height()
	if w < minChunkSize || h < minChunkSize {
		return false
	}
	cx, cy := w/2, h/2
	x1, x2 := cx-w/8, cx+w/8
	y1, y2 := cy-h/8, cy+h/8
	for _, v := range []int{c.Top, c.Bottom} {
		if v != NoExit {
			x1, x2 = min(x1, v-1), max(x2, v+1)
		}
	}
	for _, v := range []int{c.Left, c.Right} {
		if v != NoExit {
			y1, y2 = min(y1, v-1), max(y2, v+1)
		}
	}
	if x1 < loopClearance || y1 < loopClearance || x2 > w-1-loopClearance || y2 > h-1-loopClearance {
		return false
	}

	edges := []Room{
		NewRoom(x1, y1, x2, y1, 0, FlagCorridor),
		NewRoom(x1, y2, x2, y2, 0, FlagCorridor),
		NewRoom(x1, y1+1, x1, y2-1, 0, FlagCorridor),
		NewRoom(x2, y1+1, x2, y2-1, 0, FlagCorridor),
	}
	if c.Top != NoExit {
		edges = append(edges, NewRoom(c.Top, 1, c.Top, y1-1, 0, FlagCorridor))
	}
	if c.Bottom != NoExit {
		edges = append(edges, NewRoom(c.Bottom, y2+1, c.Bottom, h-2, 0, FlagCorridor))
	}
	if c.Left != NoExit {
		edges = append(edges, NewRoom(1, c.Left, x1-1, c.Left, 0, FlagCorridor))
	}
	if c.Right != NoExit {
		edges = append(edges, NewRoom(x2+1, c.Right, w-2, c.Right, 0, FlagCorridor))
	}
	for _, r := range edges {
		c.digRoom(r)
		r.Cluster = len(c.Rooms)
		c.AddRoom(r)
	}
	if debugAssertions {
		c.mustPass(c.Validate())
	}
	return true
}
