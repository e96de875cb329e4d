package terrain

import (
	"math"

	"github.com/aquilax/go-perlin"

	"cubeland/internal/voxel"
)

// Parâmetros da composição do relevo.
const (
	baseHeight   = 15.0
	baseVariance = 10.0

	// waterLevel é o nível do mar: colunas abaixo dele recebem água
	// acima do terreno.
	waterLevel = 10

	// dirtBandMax é a altura máxima de coluna em que ainda aparece a
	// faixa de terra/grama; acima disso a superfície fica em pedra.
	dirtBandMax = 20
)

// Parâmetros dos geradores de Perlin (mesma calibração para os quatro
// campos; o que muda é a seed derivada).
const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
)

// Generator preenche grids de voxels a partir de uma seed. Os quatro
// campos de ruído usam seeds derivadas (seed, seed*7, seed*13, seed*17)
// para não ficarem correlacionados entre si. A amostragem é feita em
// coordenadas de mundo, então o relevo é contínuo de um chunk para o
// outro.
type Generator struct {
	seed   uint32
	relief *perlin.Perlin // relevo local, frequência alta
	soil   *perlin.Perlin // espessura da faixa de terra
	cont   *perlin.Perlin // formato continental, frequência baixa
	elev   *perlin.Perlin // elevação de base, frequência muito baixa
}

// NewGenerator cria um gerador determinístico para a seed.
func NewGenerator(seed uint32) *Generator {
	field := func(mult int64) *perlin.Perlin {
		return perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, int64(seed)*mult)
	}
	return &Generator{
		seed:   seed,
		relief: field(1),
		soil:   field(7),
		cont:   field(13),
		elev:   field(17),
	}
}

// Seed retorna a seed do gerador.
func (g *Generator) Seed() uint32 {
	return g.seed
}

// column guarda o resultado da amostragem de uma coluna do mundo.
type column struct {
	height int     // altura do terreno, em [1, ChunkSize-1]
	dirt   float64 // espessura da faixa de terra
}

// columnAt amostra os campos de ruído na coordenada de mundo (wx, wz).
// Depende só da coordenada de mundo e da seed, nunca do chunk que
// contém a coluna.
func (g *Generator) columnAt(wx, wz int64) column {
	fx, fz := float64(wx), float64(wz)

	n1 := g.relief.Noise2D(fx*0.07, fz*0.04)
	n2 := g.soil.Noise2D(fx*0.05, fz*0.05)
	n3 := g.cont.Noise2D(fx*0.005, fz*0.005)
	n4 := g.elev.Noise2D(fx*0.001, fz*0.001)

	h := baseHeight + n4*10 + baseVariance*math.Pow(n3+1, 2.5)*n1
	height := int(math.Round(h))
	if height < 1 {
		height = 1
	}
	if height > voxel.ChunkSize-1 {
		height = voxel.ChunkSize - 1
	}

	return column{
		height: height,
		dirt:   4 + n2*8,
	}
}

// Generate preenche um grid para o chunk com origem (chunkX, chunkZ) em
// coordenadas de mundo (múltiplos de voxel.ChunkSize). A mesma tripla
// (seed, chunkX, chunkZ) produz sempre o mesmo grid — o cache depende
// disso para regenerar chunks descartados.
func (g *Generator) Generate(chunkX, chunkZ int64) *voxel.Grid {
	grid := voxel.NewGrid()

	for bx := 0; bx < voxel.ChunkSize; bx++ {
		for bz := 0; bz < voxel.ChunkSize; bz++ {
			col := g.columnAt(chunkX+int64(bx), chunkZ+int64(bz))

			for y := 0; y < col.height; y++ {
				bt := voxel.BlockStone
				if col.height <= dirtBandMax && float64(y)+col.dirt >= float64(col.height) {
					// Faixa de terra perto da superfície; as duas
					// camadas do topo viram grama.
					if y >= col.height-2 {
						bt = voxel.BlockGrass
					} else {
						bt = voxel.BlockDirt
					}
				}
				grid.Set(bx, y, bz, voxel.Block{Type: bt})
			}

			for y := col.height; y < waterLevel; y++ {
				grid.Set(bx, y, bz, voxel.Block{Type: voxel.BlockWater})
			}
		}
	}

	return grid
}
