package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// Terrain marks a merged run of solid level tiles.
type Terrain struct{}

var TerrainComponent = NewComponent[Terrain]()
