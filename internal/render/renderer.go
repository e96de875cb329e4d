package render

/*
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"

	"cubeland/internal/meshing"
	"cubeland/internal/voxel"
	"cubeland/internal/world"
)

// ChunkModel implementa world.BufferSet com um modelo raylib (VBOs de
// vértices/normais/cores na GPU).
type ChunkModel struct {
	model    rl.Model
	released bool
}

// Release descarrega o modelo da GPU. O cache garante uma única
// chamada; o flag cobre o teardown.
func (m *ChunkModel) Release() {
	if m.released {
		return
	}
	rl.UnloadModel(m.model)
	m.released = true
}

// Renderer implementa a fronteira de upload gráfico com raylib e
// desenha os chunks residentes. Tudo roda na thread principal do SO,
// junto com o contexto OpenGL.
type Renderer struct {
	Wireframe bool
}

// NewRenderer cria o renderizador. A janela raylib já deve existir.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Upload copia os buffers de geometria para a GPU e devolve o handle
// opaco. O chamador já pulou geometrias vazias.
func (r *Renderer) Upload(geo *meshing.Geometry) (world.BufferSet, error) {
	mesh := geometryToMesh(geo)
	rl.UploadMesh(&mesh, false)
	model := rl.LoadModelFromMesh(mesh)
	return &ChunkModel{model: model}, nil
}

// Draw desenha todos os chunks residentes do cache. Os vértices já
// estão em coordenadas de mundo, então o modelo vai na origem.
func (r *Renderer) Draw(cache *world.Cache) {
	cache.Each(func(ch *world.Chunk) {
		bs := ch.Buffers()
		if bs == nil {
			return
		}
		cm := bs.(*ChunkModel)
		if r.Wireframe {
			rl.DrawModelWires(cm.model, rl.Vector3{}, 1.0, rl.White)
		} else {
			rl.DrawModel(cm.model, rl.Vector3{}, 1.0, rl.White)
		}
	})
}

// geometryToMesh expande os índices em lista de triângulos e resolve a
// cor de cada vértice pela paleta de materiais. O raylib indexa com 16
// bits, pouco para um chunk denso; a expansão dispensa o element buffer
// sem mudar o desenho.
func geometryToMesh(geo *meshing.Geometry) rl.Mesh {
	n := len(geo.Indices)
	verts := make([]float32, 0, n*3)
	norms := make([]float32, 0, n*3)
	colors := make([]uint8, 0, n*4)

	for _, idx := range geo.Indices {
		i := int(idx)
		verts = append(verts, geo.Vertices[i*3], geo.Vertices[i*3+1], geo.Vertices[i*3+2])
		norms = append(norms, geo.Normals[i*3], geo.Normals[i*3+1], geo.Normals[i*3+2])
		c := BlockColor(voxel.BlockType(geo.Materials[i]))
		colors = append(colors, c.R, c.G, c.B, c.A)
	}

	var mesh rl.Mesh
	mesh.VertexCount = int32(n)
	mesh.TriangleCount = int32(n / 3)
	if n > 0 {
		mesh.Vertices = (*float32)(copyToC(unsafe.Pointer(&verts[0]), len(verts)*4))
		mesh.Normals = (*float32)(copyToC(unsafe.Pointer(&norms[0]), len(norms)*4))
		mesh.Colors = (*uint8)(copyToC(unsafe.Pointer(&colors[0]), len(colors)))
	}
	return mesh
}

// copyToC duplica um slice Go em memória C. O raylib guarda os
// ponteiros dentro da Mesh e os libera no UnloadModel, então não podem
// apontar para memória gerenciada pelo GC.
func copyToC(data unsafe.Pointer, size int) unsafe.Pointer {
	if size <= 0 || data == nil {
		return nil
	}
	ptr := C.malloc(C.size_t(size))
	if ptr == nil {
		return nil
	}
	cSlice := unsafe.Slice((*byte)(ptr), size)
	goSlice := unsafe.Slice((*byte)(data), size)
	copy(cSlice, goSlice)
	return ptr
}
