package voxel

import "testing"

func TestBlockOpaque(t *testing.T) {
	tests := []struct {
		bt   BlockType
		want bool
	}{
		{BlockAir, false},
		{BlockGrass, true},
		{BlockStone, true},
		{BlockDirt, true},
		{BlockWater, true},
	}

	for _, tt := range tests {
		got := Block{Type: tt.bt}.Opaque()
		if got != tt.want {
			t.Errorf("Block{%v}.Opaque() = %v, want %v", tt.bt, got, tt.want)
		}
	}
}

func TestGridSolidBoundaryPolicy(t *testing.T) {
	g := NewGrid()
	g.Set(0, 0, 0, Block{Type: BlockStone})

	tests := []struct {
		name    string
		x, y, z int
		want    bool
	}{
		{"abaixo do chão do mundo", 0, -1, 0, true},
		{"abaixo do chão, fora do plano", -5, -1, 99, true},
		{"acima do topo", 0, ChunkSize, 0, false},
		{"x negativo", -1, 0, 0, false},
		{"x além da borda", ChunkSize, 0, 0, false},
		{"z negativo", 0, 0, -1, false},
		{"z além da borda", 0, 0, ChunkSize, false},
		{"bloco sólido", 0, 0, 0, true},
		{"bloco de ar", 1, 0, 0, false},
	}

	for _, tt := range tests {
		if got := g.Solid(tt.x, tt.y, tt.z); got != tt.want {
			t.Errorf("%s: Solid(%d, %d, %d) = %v, want %v", tt.name, tt.x, tt.y, tt.z, got, tt.want)
		}
	}
}

func TestGridSetAt(t *testing.T) {
	g := NewGrid()

	if got := g.At(5, 6, 7).Type; got != BlockAir {
		t.Fatalf("grid novo deveria ser Ar, veio %v", got)
	}

	g.Set(5, 6, 7, Block{Type: BlockDirt})
	g.Set(0, 0, 0, Block{Type: BlockGrass})
	g.Set(ChunkSize-1, ChunkSize-1, ChunkSize-1, Block{Type: BlockWater})

	if got := g.At(5, 6, 7).Type; got != BlockDirt {
		t.Errorf("At(5,6,7) = %v, want %v", got, BlockDirt)
	}
	if got := g.At(0, 0, 0).Type; got != BlockGrass {
		t.Errorf("At(0,0,0) = %v, want %v", got, BlockGrass)
	}
	if got := g.At(ChunkSize-1, ChunkSize-1, ChunkSize-1).Type; got != BlockWater {
		t.Errorf("At(max) = %v, want %v", got, BlockWater)
	}

	// Vizinhos do cell gravado continuam Ar (sem aliasing no índice linear)
	if got := g.At(5, 6, 6).Type; got != BlockAir {
		t.Errorf("At(5,6,6) = %v, want Ar", got)
	}
	if got := g.At(5, 7, 7).Type; got != BlockAir {
		t.Errorf("At(5,7,7) = %v, want Ar", got)
	}
	if got := g.At(6, 6, 7).Type; got != BlockAir {
		t.Errorf("At(6,6,7) = %v, want Ar", got)
	}
}
