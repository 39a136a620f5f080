package chunk

import (
	"bytes"
	"strings"
	"testing"

	"chunkgen/pkg/engine/dice"
	"chunkgen/pkg/engine/world"
	"chunkgen/pkg/game/state"
)

func newTestChunk(t *testing.T, cfg Config) *Chunk {
	t.Helper()
	c, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func exitTestConfig(width, height int) Config {
	cfg := DefaultConfig(0)
	cfg.Width = width
	cfg.Height = height
	cfg.LevelWidth = 4
	cfg.LevelHeight = 4
	cfg.X = 1
	cfg.Y = 1
	return cfg
}

// buildStructure runs the structural filters in pipeline order.
func buildStructure(t *testing.T, cfg Config) *Chunk {
	t.Helper()
	c := newTestChunk(t, cfg)
	c.GenerateExits()
	c.ConnectExits()
	c.Expand(3, 6)
	c.FilterRoomInRoom()
	c.Expand(2, 4)
	c.ClusterDoors(3)
	c.OneWayDoors(1)
	c.Beautify()
	return c
}

func TestNew_RejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Config)
	}{
		{"non power of two", func(c *Config) { c.Width = 48 }},
		{"too small", func(c *Config) { c.Width, c.Height = 8, 8 }},
		{"outside level", func(c *Config) { c.X = 4 }},
		{"negative openness", func(c *Config) { c.Openness = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig(1)
			tt.edit(&cfg)
			if _, err := New(cfg, nil); err == nil {
				t.Error("New succeeded, want error")
			}
		})
	}
}

func TestConnectExitsSpokes_ExpandScenario(t *testing.T) {
	c := newTestChunk(t, exitTestConfig(32, 32))
	c.MakeExit(world.Left, 8)
	c.MakeExit(world.Right, 8)
	c.MakeExit(world.Top, 8)
	if !c.ConnectExitsSpokes() {
		t.Fatal("ConnectExitsSpokes returned false")
	}
	c.Expand(3, 6)
	if len(c.Rooms) <= 4 {
		t.Errorf("rooms = %d, want more than 4", len(c.Rooms))
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestConnectExitsSpokes_ExitLayouts(t *testing.T) {
	tests := []struct {
		width, height            int
		left, right, top, bottom int
	}{
		{32, 32, 8, 8, 8, -1},
		{32, 32, 8, 8, -1, -1},
		{32, 32, 3, -1, 3, -1},
		{32, 32, 29, 29, 3, -1},
		{32, 32, 3, 29, 3, 29},
		{32, 32, 29, 29, 29, 29},
		{32, 32, -1, -1, 5, 20},
		{64, 32, -1, 29, -1, 38},
	}
	for _, tt := range tests {
		c := newTestChunk(t, exitTestConfig(tt.width, tt.height))
		exits := []struct {
			d world.Direction
			v int
		}{{world.Left, tt.left}, {world.Right, tt.right}, {world.Top, tt.top}, {world.Bottom, tt.bottom}}
		for _, e := range exits {
			if e.v != NoExit {
				c.MakeExit(e.d, e.v)
			}
		}
		c.ConnectExitsSpokes()
		if len(c.Rooms) == 0 {
			t.Errorf("%+v: no rooms after connecting exits", tt)
			continue
		}
		for _, r := range c.Rooms {
			if !r.Has(FlagCorridor) {
				t.Errorf("%+v: room %v is not a corridor", tt, r)
			}
		}
		if !c.Connected() {
			t.Errorf("%+v: exits not connected\n%s", tt, c.String())
		}
		if err := c.Validate(); err != nil {
			t.Errorf("%+v: Validate: %v", tt, err)
		}
	}
}

func TestConnectExitsSpokes_NoExitsMakesSeedRoom(t *testing.T) {
	cfg := DefaultConfig(3)
	cfg.LevelWidth, cfg.LevelHeight = 1, 1
	c := newTestChunk(t, cfg)
	c.GenerateExits()
	if c.hasExits() {
		t.Fatal("single-chunk level has exits")
	}
	c.ConnectExits()
	if len(c.Rooms) != 1 {
		t.Fatalf("rooms = %d, want 1", len(c.Rooms))
	}
	if r := c.Rooms[0]; r.Size() <= 1 {
		t.Errorf("seed room size = %d, want it grown", r.Size())
	}
}

func TestConnectExits_RequiresNoRooms(t *testing.T) {
	c := newTestChunk(t, exitTestConfig(32, 32))
	c.MakeExit(world.Top, 10)
	c.ConnectExits()
	n := len(c.Rooms)
	if c.ConnectExits() {
		t.Error("second ConnectExits returned true")
	}
	if len(c.Rooms) != n {
		t.Errorf("rooms changed from %d to %d", n, len(c.Rooms))
	}
}

func TestConnectExitsInnerLoop(t *testing.T) {
	c := newTestChunk(t, exitTestConfig(32, 32))
	c.MakeExit(world.Top, 14)
	c.MakeExit(world.Left, 17)
	c.MakeExit(world.Right, 12)
	if !c.ConnectExitsInnerLoop() {
		t.Fatal("ConnectExitsInnerLoop failed with central exits")
	}
	if len(c.Rooms) != 7 {
		t.Errorf("rooms = %d, want 4 loop edges and 3 spokes", len(c.Rooms))
	}
	if !c.Connected() {
		t.Errorf("inner loop not connected\n%s", c.String())
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestConnectExitsInnerLoop_FailsWithoutClearance(t *testing.T) {
	c := newTestChunk(t, exitTestConfig(32, 32))
	c.MakeExit(world.Top, 3)
	c.MakeExit(world.Bottom, 20)
	before := c.String()
	seed := c.Config.Seed
	if c.ConnectExitsInnerLoop() {
		t.Fatal("ConnectExitsInnerLoop succeeded with an exit next to the corner")
	}
	if c.String() != before || len(c.Rooms) != 0 || c.Config.Seed != seed {
		t.Error("failed inner loop modified the chunk")
	}
}

func TestConnectExitsGrandCentral(t *testing.T) {
	c := newTestChunk(t, exitTestConfig(32, 32))
	c.MakeExit(world.Top, 5)
	c.MakeExit(world.Bottom, 27)
	c.MakeExit(world.Left, 12)
	if !c.ConnectExitsGrandCentral() {
		t.Fatal("ConnectExitsGrandCentral failed")
	}
	central := c.Rooms[0]
	if central.Top != 5 || central.Bottom != 27 || central.Left != 12 || central.Right != NoExit {
		t.Errorf("central exits = %d/%d/%d/%d", central.Top, central.Bottom, central.Left, central.Right)
	}
	if !central.Has(FlagNeat) {
		t.Error("central room is not neat")
	}
	if !c.Connected() {
		t.Errorf("grand central not connected\n%s", c.String())
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestGenerateExits_TwoByTwoWorld(t *testing.T) {
	chunks := make(map[[2]int]*Chunk)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			cfg := DefaultConfig(0)
			cfg.LevelWidth, cfg.LevelHeight = 2, 2
			cfg.X, cfg.Y = x, y
			c := newTestChunk(t, cfg)
			c.GenerateExits()
			if err := c.SelfTest(); err != nil {
				t.Fatalf("chunk %d,%d: %v", x, y, err)
			}
			chunks[[2]int{x, y}] = c
		}
	}
	c1, c2, c3, c4 := chunks[[2]int{0, 0}], chunks[[2]int{1, 0}], chunks[[2]int{0, 1}], chunks[[2]int{1, 1}]

	for name, v := range map[string]int{
		"c1.top": c1.Top, "c1.left": c1.Left, "c2.top": c2.Top, "c2.right": c2.Right,
		"c3.left": c3.Left, "c3.bottom": c3.Bottom, "c4.right": c4.Right, "c4.bottom": c4.Bottom,
	} {
		if v != NoExit {
			t.Errorf("%s = %d, want none", name, v)
		}
	}
	pairs := []struct {
		name string
		a, b int
	}{
		{"c1.bottom/c3.top", c1.Bottom, c3.Top},
		{"c1.right/c2.left", c1.Right, c2.Left},
		{"c2.bottom/c4.top", c2.Bottom, c4.Top},
		{"c3.right/c4.left", c3.Right, c4.Left},
	}
	for _, p := range pairs {
		if p.a == NoExit || p.a != p.b {
			t.Errorf("%s = %d/%d, want equal exits", p.name, p.a, p.b)
		}
		if p.a < 3 || p.a > 29 {
			t.Errorf("%s = %d, out of [3, 29]", p.name, p.a)
		}
	}
}

func TestGenerateExits_OrderIndependent(t *testing.T) {
	cfg := DefaultConfig(77)
	cfg.X, cfg.Y = 2, 1
	a := newTestChunk(t, cfg)
	for i := 0; i < 13; i++ {
		a.Roll(0, 100)
	}
	a.GenerateExits()

	right := cfg
	right.X = 3
	b := newTestChunk(t, right)
	b.GenerateExits()
	if a.Right != b.Left {
		t.Errorf("shared border differs: %d vs %d", a.Right, b.Left)
	}
}

func TestGenerateExits_AdvancesSeed(t *testing.T) {
	cfg := DefaultConfig(0)
	cfg.X, cfg.Y = 1, 1
	c := newTestChunk(t, cfg)
	before := c.Config.Seed.State
	c.GenerateExits()
	if c.Config.Seed.State == before {
		t.Error("GenerateExits did not consume the main stream")
	}
	if c.Config.Seed.Orig != cfg.Seed.Orig {
		t.Error("GenerateExits changed the seed origin")
	}
}

func TestRoomInRoom_TooSmall(t *testing.T) {
	c := newTestChunk(t, exitTestConfig(32, 32))
	r := NewRoom(5, 5, 9, 9, 0, 0)
	c.digRoom(r)
	idx := c.AddRoom(r)
	before := c.String()
	if c.RoomInRoom(idx, 1) {
		t.Fatal("RoomInRoom succeeded on a 5x5 room")
	}
	if c.Rooms[idx] != r || len(c.Rooms) != 1 || c.String() != before {
		t.Error("failed RoomInRoom modified the chunk")
	}
}

func TestRoomInRoom(t *testing.T) {
	c := newTestChunk(t, exitTestConfig(32, 32))
	r := NewRoom(4, 4, 14, 12, 2, 0)
	c.digRoom(r)
	idx := c.AddRoom(r)
	if !c.RoomInRoom(idx, 1) {
		t.Fatal("RoomInRoom failed on an 11x9 room")
	}
	if !c.Rooms[idx].Has(FlagFurnished) {
		t.Error("parent not marked furnished")
	}
	inner := c.Rooms[len(c.Rooms)-1]
	if inner.X1 != 6 || inner.Y1 != 6 || inner.X2 != 12 || inner.Y2 != 10 {
		t.Errorf("inner room = %v, want (6,6)-(12,10)", inner)
	}
	if !inner.Has(FlagNested) || inner.Isolation != 3 {
		t.Errorf("inner flags = %b isolation = %d", inner.Flags, inner.Isolation)
	}
	if c.RoomInRoom(idx, 1) {
		t.Error("RoomInRoom succeeded twice on the same room")
	}
	if err := c.RoomListSelfTest(); err != nil {
		t.Errorf("RoomListSelfTest: %v", err)
	}
}

func TestRoomCorners(t *testing.T) {
	c := newTestChunk(t, exitTestConfig(32, 32))
	r := NewRoom(3, 3, 22, 20, 1, 0)
	r.Top = 12
	c.digRoom(r)
	c.Dig(12, 2)
	idx := c.AddRoom(r)
	if !c.RoomCorners(idx, AllCorners, 9) {
		t.Fatal("RoomCorners added nothing to a 20x18 room")
	}
	if got := len(c.Rooms); got != 5 {
		t.Errorf("rooms = %d, want parent plus four corners", got)
	}
	for _, cr := range c.Rooms[1:] {
		if !c.Rooms[idx].Encloses(cr) {
			t.Errorf("corner %v escapes parent", cr)
		}
		if cr.Contains(12, 3) {
			t.Errorf("corner %v blocks the parent's exit", cr)
		}
	}
	if !c.Connected() {
		t.Errorf("corners disconnected the room\n%s", c.String())
	}
	if err := c.RoomListSelfTest(); err != nil {
		t.Errorf("RoomListSelfTest: %v", err)
	}
}

func TestRoomCorners_SmallQuadrantsGetClosets(t *testing.T) {
	for seed := uint64(0); seed < 32; seed++ {
		cfg := exitTestConfig(32, 32)
		cfg.SeedValue = seed
		cfg.Reseed()
		c := newTestChunk(t, cfg)
		r := NewRoom(4, 4, 12, 12, 1, 0)
		c.digRoom(r)
		idx := c.AddRoom(r)
		if !c.RoomCorners(idx, AllCorners, 16) {
			t.Fatalf("seed %d: RoomCorners added nothing to a 9x9 room", seed)
		}
		if got := len(c.Rooms); got != 5 {
			t.Fatalf("seed %d: rooms = %d, want parent plus four closets", seed, got)
		}
		for _, cl := range c.Rooms[1:] {
			if cl.Size() != 1 || !cl.Has(FlagNested) || cl.Isolation != 2 {
				t.Errorf("seed %d: closet %v size %d flags %04b isolation %d", seed, cl, cl.Size(), cl.Flags, cl.Isolation)
			}
			exits := 0
			for _, d := range world.AllDirections() {
				if cl.Exit(d) != NoExit {
					exits++
				}
			}
			if exits != 1 {
				t.Errorf("seed %d: closet %v has %d exits, want 1", seed, cl, exits)
			}
		}
		if !c.Rooms[idx].Has(FlagFurnished) {
			t.Errorf("seed %d: parent not marked furnished", seed)
		}
		if !c.Connected() {
			t.Errorf("seed %d: closets disconnected the room\n%s", seed, c.String())
		}
		if err := c.RoomListSelfTest(); err != nil {
			t.Errorf("seed %d: RoomListSelfTest: %v", seed, err)
		}
	}
}

func TestRoomCorners_TinyQuadrantsSkipped(t *testing.T) {
	c := newTestChunk(t, exitTestConfig(32, 32))
	r := NewRoom(4, 4, 8, 8, 0, 0)
	c.digRoom(r)
	idx := c.AddRoom(r)
	before := c.String()
	if c.RoomCorners(idx, AllCorners, 16) {
		t.Fatal("RoomCorners carved closets into 1x1 quadrants")
	}
	if len(c.Rooms) != 1 || c.String() != before || c.Rooms[idx].Has(FlagFurnished) {
		t.Error("failed RoomCorners modified the chunk")
	}
}

func TestShrinkTop_Guard(t *testing.T) {
	c := newTestChunk(t, exitTestConfig(32, 32))
	r := NewRoom(5, 5, 12, 7, 0, 0)
	r.Top = 8
	c.digRoom(r)
	idx := c.AddRoom(r)
	if c.ShrinkTop(idx) {
		t.Error("ShrinkTop succeeded with height 3")
	}
	if c.Rooms[idx] != r {
		t.Error("failed ShrinkTop modified the room")
	}
}

func TestShrinkTop(t *testing.T) {
	c := newTestChunk(t, exitTestConfig(32, 32))
	r := NewRoom(5, 5, 12, 12, 0, 0)
	r.Top = 8
	c.digRoom(r)
	c.Dig(8, 4)
	idx := c.AddRoom(r)
	if !c.ShrinkTop(idx) {
		t.Fatal("ShrinkTop failed")
	}
	got := c.Rooms[idx]
	if got.Y1 != 7 {
		t.Errorf("Y1 = %d, want 7", got.Y1)
	}
	if got.Top < got.X1 || got.Top > got.X2 || !c.Empty(got.Top, got.Y1-1) {
		t.Errorf("new top exit %d is not an open gap", got.Top)
	}
	if !c.Connected() {
		t.Errorf("shrink disconnected the room\n%s", c.String())
	}
}

func TestShrink_NeedsExitOnSide(t *testing.T) {
	c := newTestChunk(t, exitTestConfig(32, 32))
	r := NewRoom(5, 5, 12, 12, 0, 0)
	c.digRoom(r)
	idx := c.AddRoom(r)
	for _, d := range world.AllDirections() {
		if c.Shrink(idx, d) {
			t.Errorf("Shrink(%v) succeeded without an exit", d)
		}
	}
}

func TestGrow_StopsAtNeighbours(t *testing.T) {
	c := newTestChunk(t, exitTestConfig(32, 32))
	a := NewRoom(5, 5, 7, 7, 0, 0)
	b := NewRoom(11, 5, 13, 7, 0, 0)
	c.digRoom(a)
	c.digRoom(b)
	ia := c.AddRoom(a)
	c.AddRoom(b)
	for i := 0; i < 10; i++ {
		c.Grow(ia)
	}
	got := c.Rooms[ia]
	if got.X2 > c.Rooms[1].X1-2 {
		t.Errorf("room grew to X2 = %d, leaving no wall before its neighbour", got.X2)
	}
	if got.Overlaps(c.Rooms[1]) {
		t.Error("grown room overlaps its neighbour")
	}
}

func TestOneWayDoors(t *testing.T) {
	c := newTestChunk(t, exitTestConfig(32, 32))
	deep := NewRoom(5, 5, 9, 9, 4, 0)
	shallow := NewRoom(11, 6, 15, 12, 0, 0)
	c.digRoom(deep)
	c.digRoom(shallow)
	c.AddRoom(deep)
	c.AddRoom(shallow)
	if n := c.OneWayDoors(1); n != 1 {
		t.Fatalf("OneWayDoors placed %d doors, want 1", n)
	}
	d, s := c.Rooms[0], c.Rooms[1]
	if d.Right == NoExit || d.Right != s.Left {
		t.Fatalf("exits = %d/%d, want matching", d.Right, s.Left)
	}
	if got := c.At(10, d.Right); got != world.TileOneWayRight {
		t.Errorf("door tile = %v, want one-way right", got)
	}
	if n := c.OneWayDoors(1); n != 0 {
		t.Errorf("second pass placed %d doors", n)
	}
}

func TestOneWayDoors_SkipsWallBackedByNestedRoom(t *testing.T) {
	c := newTestChunk(t, exitTestConfig(32, 32))
	parent := NewRoom(3, 3, 13, 13, 4, 0)
	c.digRoom(parent)
	c.AddRoom(parent)
	if !c.RoomCorners(0, CornerTopRight, 9) {
		t.Fatal("RoomCorners failed on an 11x11 room")
	}
	corner := c.Rooms[1]
	if corner.X2 != 13 || corner.Y1 != 3 || corner.Y2 != 6 {
		t.Fatalf("corner room = %v, want (10,3)-(13,6)", corner)
	}
	// Shares the parent's right wall only along the corner room's rows.
	next := NewRoom(15, 3, 19, 6, 0, 0)
	c.digRoom(next)
	c.AddRoom(next)

	if n := c.OneWayDoors(1); n != 1 {
		t.Fatalf("OneWayDoors placed %d doors, want 1", n)
	}
	if got := c.Rooms[0].Right; got != NoExit {
		t.Errorf("parent right exit = %d, want none: the door opens into its corner room", got)
	}
	if cr, n := c.Rooms[1], c.Rooms[2]; cr.Right == NoExit || cr.Right != n.Left {
		t.Errorf("corner/next exits = %d/%d, want matching", cr.Right, n.Left)
	}
	if err := c.RoomListSelfTest(); err != nil {
		t.Errorf("RoomListSelfTest: %v", err)
	}
}

func TestClusterDoors(t *testing.T) {
	c := newTestChunk(t, exitTestConfig(32, 32))
	a := NewRoom(5, 5, 9, 9, 3, 0)
	b := NewRoom(5, 11, 9, 15, 1, 0)
	a.Cluster, b.Cluster = 0, 1
	c.digRoom(a)
	c.digRoom(b)
	c.AddRoom(a)
	c.AddRoom(b)
	if n := c.ClusterDoors(2); n != 1 {
		t.Fatalf("ClusterDoors placed %d doors, want 1", n)
	}
	if got := c.At(c.Rooms[0].Bottom, 10); got != world.TileDoor {
		t.Errorf("door tile = %v, want door", got)
	}
}

func TestErodeRoom_KeepsSeed(t *testing.T) {
	cfg := exitTestConfig(32, 32)
	cfg.Brokenness = 12
	c := newTestChunk(t, cfg)
	r := NewRoom(5, 5, 14, 14, 0, 0)
	r.Left = 9
	c.digRoom(r)
	c.drawRoom(r, false)
	idx := c.AddRoom(r)
	seed := c.Config.Seed
	c.ErodeRoom(idx)
	if c.Config.Seed != seed {
		t.Error("ErodeRoom advanced the main seed")
	}
	if c.Count(world.TileWallDamaged)+c.Count(world.TileDebris) == 0 {
		t.Error("maximum brokenness eroded nothing")
	}
	if !c.Empty(4, 9) {
		t.Error("erosion touched the exit")
	}
}

func TestGeneration_Deterministic(t *testing.T) {
	cfg := DefaultConfig(1234)
	cfg.X, cfg.Y = 2, 2
	a := buildStructure(t, cfg)
	b := buildStructure(t, cfg)
	if a.String() != b.String() {
		t.Fatal("same config produced different grids")
	}
	if len(a.Rooms) != len(b.Rooms) {
		t.Fatalf("room counts differ: %d vs %d", len(a.Rooms), len(b.Rooms))
	}
	for i := range a.Rooms {
		if a.Rooms[i] != b.Rooms[i] {
			t.Errorf("room %d differs: %v vs %v", i, a.Rooms[i], b.Rooms[i])
		}
	}
}

func TestGeneration_Stress(t *testing.T) {
	for seed := uint64(0); seed < 64; seed++ {
		cfg := DefaultConfig(seed)
		cfg.X, cfg.Y = int(seed%4), int(seed/4%4)
		cfg.Chaos = int(seed % 3)
		c := buildStructure(t, cfg)
		if err := c.Validate(); err != nil {
			t.Fatalf("seed %d: Validate: %v\n%s", seed, err, c.String())
		}
		if !c.Connected() {
			t.Fatalf("seed %d: open tiles not connected\n%s", seed, c.String())
		}
		checkRoomLayout(t, c)
	}
}

// checkRoomLayout verifies that non-nested rooms are pairwise disjoint and
// that every nested room lies inside some other room.
func checkRoomLayout(t *testing.T, c *Chunk) {
	t.Helper()
	for i, a := range c.Rooms {
		if a.Has(FlagNested) {
			enclosed := false
			for j, b := range c.Rooms {
				if i != j && b.Encloses(a) && !b.SameBounds(a) {
					enclosed = true
					break
				}
			}
			if !enclosed {
				t.Errorf("nested room %d %v has no parent", i, a)
			}
			continue
		}
		for j := i + 1; j < len(c.Rooms); j++ {
			b := c.Rooms[j]
			if !b.Has(FlagNested) && a.Overlaps(b) {
				t.Errorf("rooms %d %v and %d %v overlap", i, a, j, b)
			}
		}
	}
}

func TestExpand_DebugSessionDumpsRooms(t *testing.T) {
	var out bytes.Buffer
	cfg := exitTestConfig(32, 32)
	c, err := New(cfg, state.NewSession(true, &out))
	if err != nil {
		t.Fatal(err)
	}
	c.MakeExit(world.Top, 8)
	c.MakeExit(world.Left, 8)
	c.ConnectExitsSpokes()
	n := len(c.Rooms)
	c.Expand(3, 6)
	if len(c.Rooms) > n && !strings.Contains(out.String(), "Isolation: 1") {
		t.Errorf("debug session did not dump expanded rooms:\n%s", out.String())
	}
}

func TestConfig_SeedFromValue(t *testing.T) {
	cfg := DefaultConfig(9)
	if cfg.Seed != dice.NewSeed(9) {
		t.Error("DefaultConfig seed does not match NewSeed")
	}
	cfg.SeedValue = 10
	cfg.Reseed()
	if cfg.Seed != dice.NewSeed(10) {
		t.Error("Reseed did not follow SeedValue")
	}
}
