package meshing

import "github.com/go-gl/mathgl/mgl32"

// FaceCount é o número de orientações de face de um cubo.
const FaceCount = 6

// Índices das orientações na tabela Faces e nos ranges da geometria.
const (
	FaceFront  = iota // +Z
	FaceBack          // -Z
	FaceRight         // +X
	FaceLeft          // -X
	FaceTop           // +Y
	FaceBottom        // -Y
)

// Face descreve uma orientação de face do cubo: a normal, o template de
// vértices do quad unitário e a base de coordenadas usada pelo mesher
// (eixo de varredura Axis na direção da normal, eixos AxisJ/AxisK no
// plano da face). O conjunto de orientações é fechado e pequeno, então
// a tabela é estática — sem polimorfismo.
type Face struct {
	Normal   mgl32.Vec3
	Vertices [4]mgl32.Vec3

	Axis  int // eixo da normal (0 = X, 1 = Y, 2 = Z)
	Dir   int // sentido da normal ao longo de Axis (+1 ou -1)
	AxisJ int // primeiro eixo do plano da face
	AxisK int // segundo eixo do plano da face
}

// quadIndices forma os dois triângulos de um quad, relativos à base de
// vértices do próprio quad.
var quadIndices = [6]uint32{0, 1, 2, 3, 2, 1}

// Faces é a tabela estática das 6 orientações. A ordem dos vértices de
// cada template casa com quadIndices para manter o winding correto
// visto de fora do cubo.
var Faces = [FaceCount]Face{
	FaceFront: {
		Normal: mgl32.Vec3{0, 0, 1},
		Vertices: [4]mgl32.Vec3{
			{0, 0, 1}, // inferior esquerdo
			{1, 0, 1}, // inferior direito
			{0, 1, 1}, // superior esquerdo
			{1, 1, 1}, // superior direito
		},
		Axis: 2, Dir: +1, AxisJ: 0, AxisK: 1,
	},

	FaceBack: {
		Normal: mgl32.Vec3{0, 0, -1},
		Vertices: [4]mgl32.Vec3{
			{1, 0, 0}, // inferior direito
			{0, 0, 0}, // inferior esquerdo
			{1, 1, 0}, // superior direito
			{0, 1, 0}, // superior esquerdo
		},
		Axis: 2, Dir: -1, AxisJ: 0, AxisK: 1,
	},

	FaceRight: {
		Normal: mgl32.Vec3{1, 0, 0},
		Vertices: [4]mgl32.Vec3{
			{1, 0, 1}, // inferior frente
			{1, 0, 0}, // inferior fundo
			{1, 1, 1}, // superior frente
			{1, 1, 0}, // superior fundo
		},
		Axis: 0, Dir: +1, AxisJ: 1, AxisK: 2,
	},

	FaceLeft: {
		Normal: mgl32.Vec3{-1, 0, 0},
		Vertices: [4]mgl32.Vec3{
			{0, 0, 0}, // inferior fundo
			{0, 0, 1}, // inferior frente
			{0, 1, 0}, // superior fundo
			{0, 1, 1}, // superior frente
		},
		Axis: 0, Dir: -1, AxisJ: 1, AxisK: 2,
	},

	FaceTop: {
		Normal: mgl32.Vec3{0, 1, 0},
		Vertices: [4]mgl32.Vec3{
			{0, 1, 1}, // frente esquerda
			{1, 1, 1}, // frente direita
			{0, 1, 0}, // fundo esquerda
			{1, 1, 0}, // fundo direita
		},
		Axis: 1, Dir: +1, AxisJ: 0, AxisK: 2,
	},

	FaceBottom: {
		Normal: mgl32.Vec3{0, -1, 0},
		Vertices: [4]mgl32.Vec3{
			{0, 0, 0}, // fundo esquerda
			{1, 0, 0}, // fundo direita
			{0, 0, 1}, // frente esquerda
			{1, 0, 1}, // frente direita
		},
		Axis: 1, Dir: -1, AxisJ: 0, AxisK: 2,
	},
}
