package meshing

// IndexRange delimita a fatia de índices de uma orientação de face
// dentro do buffer compartilhado de índices.
type IndexRange struct {
	Offset int32
	Count  int32
}

// Geometry reúne os buffers crus de geometria de um chunk, prontos para
// a fronteira de upload gráfico, e os ranges de índices por orientação.
//
// Vertices e Normals têm 3 floats por vértice; Materials repete o id do
// material por vértice (vira atributo de GPU, como no buffer de
// blocktype do shader); Indices forma triângulos. Os ranges das seis
// orientações não se sobrepõem e cobrem exatamente o buffer de índices;
// uma orientação sem faces expostas tem Count zero.
type Geometry struct {
	Vertices  []float32
	Normals   []float32
	Materials []float32
	Indices   []uint32
	Ranges    [FaceCount]IndexRange
}

// Dicas de capacidade para os buffers; só afetam alocação, nunca o
// resultado.
const (
	expectedQuads    = 1024
	expectedVertices = expectedQuads * 4
)

// newGeometry cria os buffers com capacidade reservada para um chunk
// típico.
func newGeometry() *Geometry {
	return &Geometry{
		Vertices:  make([]float32, 0, expectedVertices*3),
		Normals:   make([]float32, 0, expectedVertices*3),
		Materials: make([]float32, 0, expectedVertices),
		Indices:   make([]uint32, 0, expectedQuads*6),
	}
}

// Empty informa se nenhuma face foi emitida. Um chunk todo de ar (ou
// totalmente oculto) produz geometria vazia — estado válido, não erro;
// o upload é simplesmente pulado.
func (g *Geometry) Empty() bool {
	return len(g.Indices) == 0
}

// QuadCount retorna o total de quads emitidos.
func (g *Geometry) QuadCount() int {
	return len(g.Indices) / 6
}
