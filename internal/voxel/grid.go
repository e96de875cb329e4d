package voxel

// ChunkSize é o comprimento da aresta do grid cúbico de um chunk,
// igual nos três eixos.
const ChunkSize = 32

// GridVolume é o total de células de um grid.
const GridVolume = ChunkSize * ChunkSize * ChunkSize

// Grid é o grid cúbico de blocos de um chunk. Os blocos ficam num buffer
// plano indexado por x*S*S + y*S + z; a checagem de limites acontece na
// fronteira (Solid), não por célula.
//
// O grid pertence exclusivamente ao seu chunk e é imutável depois que a
// geração de terreno termina: o mesher apenas lê.
type Grid struct {
	blocks [GridVolume]Block
}

// NewGrid cria um grid preenchido com Ar.
func NewGrid() *Grid {
	return &Grid{}
}

func index(x, y, z int) int {
	return x*ChunkSize*ChunkSize + y*ChunkSize + z
}

// At retorna o bloco na posição local. Exige 0 <= i < ChunkSize em cada
// eixo; consultas de vizinhança fora do grid passam por Solid.
func (g *Grid) At(x, y, z int) Block {
	return g.blocks[index(x, y, z)]
}

// Set grava o bloco na posição local.
func (g *Grid) Set(x, y, z int, b Block) {
	g.blocks[index(x, y, z)] = b
}

// Solid resolve consultas de vizinhança com a política de bordas do
// chunk: abaixo do chão do mundo (y < 0) tudo conta como sólido, para o
// fundo do chunk nunca gerar faces; fora dos demais limites não existe
// bloco. Dentro do grid, sólido é qualquer bloco opaco.
func (g *Grid) Solid(x, y, z int) bool {
	if y < 0 {
		return true
	}
	if x < 0 || x >= ChunkSize || y >= ChunkSize || z < 0 || z >= ChunkSize {
		return false
	}
	return g.blocks[index(x, y, z)].Opaque()
}
