package world

// Tile is the content of one grid cell.
type Tile uint8

// Tile values. Rock is the zero value so a fresh grid is solid.
const (
	TileRock Tile = iota
	TileEmpty
	TileDoor
	TileOneWayTop
	TileOneWayBottom
	TileOneWayLeft
	TileOneWayRight
	TileWall
	TileWallDamaged
	TileDebris
	TileRail
	TileSentinel
	TileTurret
	TileTotem
	TileTrap
	TileAltar
	TileShrine
	TileGrove
	TileShrub
	TileBoss
	TileLeader
	TileSupport
	TileTank
	TileDamage
	TileSpecialist
	TileWild

	tileCount
)

var tileInfo = [tileCount]struct {
	name   string
	symbol rune
}{
	TileRock:         {"rock", ' '},
	TileEmpty:        {"empty", '.'},
	TileDoor:         {"door", '+'},
	TileOneWayTop:    {"one-way top", '^'},
	TileOneWayBottom: {"one-way bottom", 'v'},
	TileOneWayLeft:   {"one-way left", '<'},
	TileOneWayRight:  {"one-way right", '>'},
	TileWall:         {"wall", '#'},
	TileWallDamaged:  {"damaged wall", '%'},
	TileDebris:       {"debris", ','},
	TileRail:         {"rail", '='},
	TileSentinel:     {"sentinel", 'S'},
	TileTurret:       {"turret", 'T'},
	TileTotem:        {"totem", 'I'},
	TileTrap:         {"trap", 'x'},
	TileAltar:        {"altar", 'A'},
	TileShrine:       {"shrine", 'H'},
	TileGrove:        {"grove", 'G'},
	TileShrub:        {"shrub", '"'},
	TileBoss:         {"boss", 'B'},
	TileLeader:       {"leader", 'L'},
	TileSupport:      {"support", 's'},
	TileTank:         {"tank", 't'},
	TileDamage:       {"damage", 'd'},
	TileSpecialist:   {"specialist", 'p'},
	TileWild:         {"wild", 'w'},
}

// AllTiles returns every tile value in enumeration order.
func AllTiles() []Tile {
	tiles := make([]Tile, tileCount)
	for i := range tiles {
		tiles[i] = Tile(i)
	}
	return tiles
}

// String returns the tile name.
func (t Tile) String() string {
	if !t.IsValid() {
		return "unknown"
	}
	return tileInfo[t].name
}

// Symbol returns the single character used for the tile in text dumps.
func (t Tile) Symbol() rune {
	if !t.IsValid() {
		return '?'
	}
	return tileInfo[t].symbol
}

// IsValid reports whether t is part of the enumeration.
func (t Tile) IsValid() bool {
	return t < tileCount
}

// IsSolid reports whether the tile blocks movement and digging adjacency.
func (t Tile) IsSolid() bool {
	return t == TileRock || t == TileWall || t == TileWallDamaged
}

// IsOneWay reports whether the tile is a one-way passage.
func (t Tile) IsOneWay() bool {
	return t >= TileOneWayTop && t <= TileOneWayRight
}

// IsPassage reports whether the tile may sit on an exit cell.
func (t Tile) IsPassage() bool {
	return t == TileEmpty || t == TileDoor || t.IsOneWay()
}

// IsEntity reports whether the tile is a population marker.
func (t Tile) IsEntity() bool {
	return t >= TileSentinel && t <= TileWild
}

// OneWayTile returns the one-way tile that allows travel toward d.
func OneWayTile(d Direction) Tile {
	switch d {
	case Top:
		return TileOneWayTop
	case Bottom:
		return TileOneWayBottom
	case Left:
		return TileOneWayLeft
	default:
		return TileOneWayRight
	}
}
