package tiling

// Tile4 layout constants.
const (
	tile4WidthBytes    = 128 // bytes
	tile4Height        = 32  // rows
	tile4SubtileBytes  = 64
	tile4SubtileWidth  = OWordBytes // bytes
	tile4SubtileHeight = 4          // rows
	tile4SubtileCols   = tile4WidthBytes / tile4SubtileWidth
)

// Tile4SubtileMap permutes subtile indices inside a 4 KiB Tile4 tile.
// Subtiles are numbered row-major over an 8x8 grid of 16-byte x 4-row cells.
// The table is an involution, map[map[i]] == i, so it both tiles and untiles.
var Tile4SubtileMap = [64]uint8{
	0, 1, 2, 3, 8, 9, 10, 11,
	4, 5, 6, 7, 12, 13, 14, 15,
	16, 17, 18, 19, 24, 25, 26, 27,
	20, 21, 22, 23, 28, 29, 30, 31,
	32, 33, 34, 35, 40, 41, 42, 43,
	36, 37, 38, 39, 44, 45, 46, 47,
	48, 49, 50, 51, 56, 57, 58, 59,
	52, 53, 54, 55, 60, 61, 62, 63,
}

func init() {
	for i, v := range Tile4SubtileMap {
		if int(Tile4SubtileMap[v]) != i {
			panic("tiling: Tile4SubtileMap is not an involution")
		}
	}
}

// tile4Offset returns the byte offset of byte column xb on row y.
func tile4Offset(xb, y, stride uint64) uint64 {
	// The 4 KiB tile origin is the same as for a 128x32 Y tile.
	base := (y/tile4Height)*stride*tile4Height + PageBytes*(xb/tile4WidthBytes)

	tx := xb % tile4WidthBytes
	ty := y % tile4Height

	sub := (ty/tile4SubtileHeight)*tile4SubtileCols + tx/tile4SubtileWidth
	sub = uint64(Tile4SubtileMap[sub])

	return base +
		sub*tile4SubtileBytes +
		(ty%tile4SubtileHeight)*OWordBytes +
		tx%tile4SubtileWidth
}

// tile4Coord inverts tile4Offset, returning a byte column and a row.
func tile4Coord(off, stride uint64) (xb, y uint64) {
	tilesPerLine := stride / tile4WidthBytes

	n := off / PageBytes
	originX := (n % tilesPerLine) * tile4WidthBytes
	originY := (n / tilesPerLine) * tile4Height

	sub := uint64(Tile4SubtileMap[(off%PageBytes)/tile4SubtileBytes])
	subX := (sub % tile4SubtileCols) * tile4SubtileWidth
	subY := (sub / tile4SubtileCols) * tile4SubtileHeight

	in := off % tile4SubtileBytes

	return originX + subX + in%OWordBytes, originY + subY + in/OWordBytes
}
