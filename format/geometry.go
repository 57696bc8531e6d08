package format

// Geometry describes how a format is tiled.
//
// TileWidth and TileHeight are the tile size in source texels. Samples is
// the number of source texels that fold into one output pixel horizontally;
// callers size the destination as sourceWidth / Samples.
type Geometry struct {
	TileWidth  int
	TileHeight int
	Samples    int
}

var geometries = map[TextureFormat]Geometry{
	I4:     {8, 8, 8},
	I8:     {8, 4, 4},
	IA4:    {8, 4, 4},
	IA8:    {4, 4, 2},
	RGB565: {4, 4, 2},
	RGB5A3: {4, 4, 2},
	RGBA8:  {4, 4, 1},
	Z8:     {8, 4, 4},
	Z16:    {4, 4, 2},
	Z24X8:  {4, 4, 1},
	R4:     {8, 8, 8},
	RA4:    {8, 4, 4},
	RA8:    {4, 4, 2},
	A8:     {8, 4, 4},
	R8:     {8, 4, 4},
	G8:     {8, 4, 4},
	B8:     {8, 4, 4},
	RG8:    {4, 4, 2},
	GB8:    {4, 4, 2},
	Z4:     {8, 8, 8},
	Z8M:    {8, 4, 4},
	Z8L:    {8, 4, 4},
	Z16L:   {4, 4, 2},
}

// GeometryOf returns the tile geometry of f.
// The second result is false for unknown formats.
func GeometryOf(f TextureFormat) (Geometry, bool) {
	g, ok := geometries[f]
	return g, ok
}

// TileTexels returns the number of texels in one tile.
func (g Geometry) TileTexels() int {
	return g.TileWidth * g.TileHeight
}
