package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"cubeland/internal/voxel"
)

// BlockColor mapeia o material de um bloco para a cor de vértice usada
// no lugar de textura. Água é translúcida.
func BlockColor(t voxel.BlockType) rl.Color {
	switch t {
	case voxel.BlockGrass:
		return rl.NewColor(106, 170, 64, 255)
	case voxel.BlockStone:
		return rl.NewColor(125, 125, 125, 255)
	case voxel.BlockDirt:
		return rl.NewColor(134, 96, 67, 255)
	case voxel.BlockWater:
		return rl.NewColor(52, 108, 202, 200)
	}
	return rl.White
}
