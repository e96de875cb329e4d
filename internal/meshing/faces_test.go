package meshing

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestFaceTableConsistency(t *testing.T) {
	for f, face := range Faces {
		// Normal unitária alinhada a Axis/Dir
		want := mgl32.Vec3{}
		want[face.Axis] = float32(face.Dir)
		if face.Normal != want {
			t.Errorf("orientação %d: normal %v não casa com Axis=%d Dir=%d", f, face.Normal, face.Axis, face.Dir)
		}

		// Axis, AxisJ e AxisK formam uma permutação de {0, 1, 2}
		seen := [3]bool{}
		for _, axis := range []int{face.Axis, face.AxisJ, face.AxisK} {
			if axis < 0 || axis > 2 || seen[axis] {
				t.Fatalf("orientação %d: eixos (%d, %d, %d) não são uma permutação", f, face.Axis, face.AxisJ, face.AxisK)
			}
			seen[axis] = true
		}

		for v, vert := range face.Vertices {
			// Template do cubo unitário
			for axis := 0; axis < 3; axis++ {
				if vert[axis] != 0 && vert[axis] != 1 {
					t.Errorf("orientação %d vértice %d: componente fora do cubo unitário: %v", f, v, vert)
				}
			}
			// Todos os vértices no plano da face
			wantPlane := float32(0)
			if face.Dir > 0 {
				wantPlane = 1
			}
			if vert[face.Axis] != wantPlane {
				t.Errorf("orientação %d vértice %d: fora do plano da face: %v", f, v, vert)
			}
		}
	}
}

func TestFaceTableWinding(t *testing.T) {
	// Os dois triângulos de cada quad devem ter winding anti-horário
	// visto de fora do cubo (normal geométrica apontando na direção da
	// normal declarada).
	triangles := [2][3]uint32{
		{quadIndices[0], quadIndices[1], quadIndices[2]},
		{quadIndices[3], quadIndices[4], quadIndices[5]},
	}

	for f, face := range Faces {
		for ti, tri := range triangles {
			a := face.Vertices[tri[0]]
			b := face.Vertices[tri[1]]
			c := face.Vertices[tri[2]]
			cross := b.Sub(a).Cross(c.Sub(a))
			if cross.Dot(face.Normal) <= 0 {
				t.Errorf("orientação %d triângulo %d: winding invertido (cross %v, normal %v)", f, ti, cross, face.Normal)
			}
		}
	}
}
