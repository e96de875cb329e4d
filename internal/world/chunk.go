package world

import (
	"fmt"
	"time"

	"cubeland/internal/meshing"
	"cubeland/internal/voxel"
)

// Coord identifica um chunk pela origem da sua coluna no plano
// horizontal, em unidades de bloco (múltiplos de voxel.ChunkSize).
// Chunks são colunas de altura completa; não há divisão vertical.
type Coord struct {
	X, Z int64
}

// String retorna a representação em string da coordenada.
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Z)
}

// Chunk é uma coluna de voxels mais a geometria derivada dela. Nasce no
// Load do cache, muda apenas pelo Touch e morre na remoção do cache,
// quando seus buffers gráficos são liberados.
type Chunk struct {
	coord    Coord
	grid     *voxel.Grid
	geometry *meshing.Geometry
	buffers  BufferSet // nil para geometria vazia (chunk todo ar)
	lastUsed time.Time
}

// Coord retorna a coordenada de mundo do chunk.
func (c *Chunk) Coord() Coord {
	return c.coord
}

// Grid retorna o grid de voxels do chunk. Imutável após a geração.
func (c *Chunk) Grid() *voxel.Grid {
	return c.grid
}

// Geometry retorna os buffers de geometria e os ranges por orientação,
// para submissão de draw pelo chamador.
func (c *Chunk) Geometry() *meshing.Geometry {
	return c.geometry
}

// Buffers retorna o handle gráfico do chunk. nil é um estado válido:
// um chunk sem faces não tem nada na GPU.
func (c *Chunk) Buffers() BufferSet {
	return c.buffers
}

// Touch registra o uso do chunk. O relógio é monotônico; a expulsão do
// cache só precisa da ordem relativa entre os registros.
func (c *Chunk) Touch() {
	c.lastUsed = time.Now()
}

// release devolve os buffers gráficos e anula o handle, para que uma
// segunda liberação (ou uso após a expulsão) seja estruturalmente
// impossível a partir do núcleo.
func (c *Chunk) release() {
	if c.buffers != nil {
		c.buffers.Release()
		c.buffers = nil
	}
}
