package meshing

import (
	"cubeland/internal/voxel"
)

// cellIndex lineariza uma posição do grid, no mesmo layout do buffer de
// blocos (x*S*S + y*S + z).
func cellIndex(x, y, z int) int {
	return x*voxel.ChunkSize*voxel.ChunkSize + y*voxel.ChunkSize + z
}

// cellAt converte coordenadas na base da orientação (camada i ao longo
// da normal, posição j/k no plano da face) para o espaço do grid.
func cellAt(f *Face, i, j, k int) (int, int, int) {
	var c [3]int
	c[f.Axis] = i
	c[f.AxisJ] = j
	c[f.AxisK] = k
	return c[0], c[1], c[2]
}

// Mesh converte o grid de um chunk no conjunto mínimo de quads
// texturizáveis: para cada orientação marca as faces expostas e depois
// funde faces vizinhas do mesmo material em retângulos máximos (greedy
// meshing). chunkX/chunkZ são a origem do chunk em coordenadas de
// mundo, somada aos vértices emitidos.
//
// O resultado cobre cada face exposta exatamente uma vez; nenhum quad
// mistura materiais. A fusão é gulosa na ordem de varredura — o número
// de quads não é necessariamente o mínimo global, mas o recorte é
// sempre válido e sem sobreposição.
func Mesh(chunkX, chunkZ int64, grid *voxel.Grid) *Geometry {
	geo := newGeometry()

	var mask [voxel.GridVolume]bool
	for f := range Faces {
		start := int32(len(geo.Indices))
		buildExposureMask(&Faces[f], grid, &mask)
		mergeMask(&Faces[f], grid, &mask, chunkX, chunkZ, geo)
		geo.Ranges[f] = IndexRange{Offset: start, Count: int32(len(geo.Indices)) - start}
	}

	return geo
}

// buildExposureMask marca os voxels cuja face nesta orientação precisa
// ser desenhada: bloco não-Ar cujo vizinho um passo na direção da
// normal não é sólido. A política de bordas fica toda no Grid: abaixo
// do chão do mundo o vizinho conta como sólido (o fundo do chunk nunca
// gera face), nas demais bordas conta como ausente (face exposta).
func buildExposureMask(f *Face, grid *voxel.Grid, mask *[voxel.GridVolume]bool) {
	var n [3]int
	n[f.Axis] = f.Dir

	for x := 0; x < voxel.ChunkSize; x++ {
		for y := 0; y < voxel.ChunkSize; y++ {
			for z := 0; z < voxel.ChunkSize; z++ {
				b := grid.At(x, y, z)
				mask[cellIndex(x, y, z)] = b.Opaque() && !grid.Solid(x+n[0], y+n[1], z+n[2])
			}
		}
	}
}

// mergeMask varre a máscara na base da orientação e emite, para cada
// célula marcada ainda não consumida, o maior retângulo uniforme em
// material ancorado nela: primeiro o comprimento máximo ao longo de
// AxisK, depois o maior número de linhas completas ao longo de AxisJ.
// A área coberta é desmarcada para não ser reemitida.
func mergeMask(f *Face, grid *voxel.Grid, mask *[voxel.GridVolume]bool, chunkX, chunkZ int64, geo *Geometry) {
	const s = voxel.ChunkSize

	for i := 0; i < s; i++ {
		for j := 0; j < s; j++ {
			for k := 0; k < s; k++ {
				x, y, z := cellAt(f, i, j, k)
				if !mask[cellIndex(x, y, z)] {
					continue
				}
				bt := grid.At(x, y, z).Type

				runK := 1
				for k+runK < s {
					cx, cy, cz := cellAt(f, i, j, k+runK)
					if !mask[cellIndex(cx, cy, cz)] || grid.At(cx, cy, cz).Type != bt {
						break
					}
					runK++
				}

				runJ := 1
			growJ:
				for j+runJ < s {
					for kk := 0; kk < runK; kk++ {
						cx, cy, cz := cellAt(f, i, j+runJ, k+kk)
						if !mask[cellIndex(cx, cy, cz)] || grid.At(cx, cy, cz).Type != bt {
							break growJ
						}
					}
					runJ++
				}

				for jj := 0; jj < runJ; jj++ {
					for kk := 0; kk < runK; kk++ {
						cx, cy, cz := cellAt(f, i, j+jj, k+kk)
						mask[cellIndex(cx, cy, cz)] = false
					}
				}

				emitQuad(f, geo, x, y, z, runJ, runK, bt, chunkX, chunkZ)
			}
		}
	}
}

// emitQuad acrescenta à geometria os 4 vértices do retângulo (template
// unitário da orientação escalado pelas extensões em AxisJ/AxisK e
// transladado pela célula-âncora mais a origem do chunk), a normal e o
// id de material repetidos por vértice, e os 6 índices dos dois
// triângulos.
func emitQuad(f *Face, geo *Geometry, x, y, z, runJ, runK int, bt voxel.BlockType, chunkX, chunkZ int64) {
	base := uint32(len(geo.Vertices) / 3)

	var ext [3]float32
	ext[f.Axis] = 1
	ext[f.AxisJ] = float32(runJ)
	ext[f.AxisK] = float32(runK)

	ox := float32(chunkX) + float32(x)
	oy := float32(y)
	oz := float32(chunkZ) + float32(z)

	for _, v := range f.Vertices {
		geo.Vertices = append(geo.Vertices, ox+v[0]*ext[0], oy+v[1]*ext[1], oz+v[2]*ext[2])
		geo.Normals = append(geo.Normals, f.Normal[0], f.Normal[1], f.Normal[2])
		geo.Materials = append(geo.Materials, float32(bt))
	}
	for _, e := range quadIndices {
		geo.Indices = append(geo.Indices, base+e)
	}
}
