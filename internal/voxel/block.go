package voxel

// BlockType identifica o material de um bloco.
type BlockType uint8

const (
	BlockAir BlockType = iota
	BlockGrass
	BlockStone
	BlockDirt
	BlockWater
)

// String retorna o nome do material (usado em logs e debug).
func (t BlockType) String() string {
	switch t {
	case BlockAir:
		return "air"
	case BlockGrass:
		return "grass"
	case BlockStone:
		return "stone"
	case BlockDirt:
		return "dirt"
	case BlockWater:
		return "water"
	}
	return "unknown"
}

// Block representa uma célula do grid de voxels de um chunk.
type Block struct {
	Type BlockType
}

// Opaque indica se o bloco oculta as faces dos vizinhos.
// Ar nunca é desenhado e nunca oculta.
func (b Block) Opaque() bool {
	return b.Type != BlockAir
}
