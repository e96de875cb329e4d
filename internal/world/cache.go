package world

import (
	"fmt"
	"log"

	"cubeland/internal/meshing"
	"cubeland/internal/terrain"
)

// Cache mantém os chunks residentes, no máximo capacity entradas; acima
// disso a entrada menos recentemente tocada é descartada. Todo o
// pipeline (terreno, meshing, upload) roda síncrono dentro de Load, na
// thread do chamador — o cache não é feito para mutação concorrente.
type Cache struct {
	seed     uint32
	capacity int
	gen      *terrain.Generator
	uploader Uploader
	entries  map[Coord]*Chunk
}

// NewCache cria o cache para a seed, com capacidade fixada em
// (2*visibleRadius)² * 2.
func NewCache(seed uint32, visibleRadius int, up Uploader) *Cache {
	side := 2 * visibleRadius
	return &Cache{
		seed:     seed,
		capacity: side * side * 2,
		gen:      terrain.NewGenerator(seed),
		uploader: up,
		entries:  make(map[Coord]*Chunk),
	}
}

// Size retorna o número de chunks residentes. Sempre <= Capacity depois
// de qualquer Load.
func (c *Cache) Size() int {
	return len(c.entries)
}

// Capacity retorna o limite de chunks residentes.
func (c *Cache) Capacity() int {
	return c.capacity
}

// Get retorna o chunk residente para a coordenada, se houver. Não conta
// como uso: quem consome chama Touch ao acessar o chunk de verdade.
func (c *Cache) Get(x, z int64) (*Chunk, bool) {
	ch, ok := c.entries[Coord{X: x, Z: z}]
	return ch, ok
}

// Load gera terreno e geometria para a coordenada e insere o chunk no
// cache. Sempre regenera, mesmo com a coordenada já residente — o chunk
// antigo é substituído e seus buffers liberados (repetir Load é
// desperdício, mas idempotente no estado final, e chamadores contam com
// o refresh após troca de seed). Depois da inserção, descarta chunks
// até caber na capacidade.
//
// Uma falha no upload sobe como erro e nada é inserido: o cache nunca
// guarda um chunk pela metade.
func (c *Cache) Load(x, z int64) error {
	coord := Coord{X: x, Z: z}
	log.Printf("[Cache] carregando chunk %s", coord)

	grid := c.gen.Generate(x, z)
	geo := meshing.Mesh(x, z, grid)

	var buffers BufferSet
	if !geo.Empty() {
		var err error
		buffers, err = c.uploader.Upload(geo)
		if err != nil {
			return fmt.Errorf("upload do chunk %s: %w", coord, err)
		}
	}

	if old, ok := c.entries[coord]; ok {
		old.release()
	}

	ch := &Chunk{coord: coord, grid: grid, geometry: geo, buffers: buffers}
	ch.Touch()
	c.entries[coord] = ch

	c.evict()
	return nil
}

// evict descarta as entradas menos recentemente tocadas até o cache
// caber na capacidade. Empates em lastUsed são raríssimos (relógio em
// nanossegundos) e qualquer uma das entradas empatadas pode sair.
func (c *Cache) evict() {
	for len(c.entries) > c.capacity {
		var victim *Chunk
		for _, ch := range c.entries {
			if victim == nil || ch.lastUsed.Before(victim.lastUsed) {
				victim = ch
			}
		}
		log.Printf("[Cache] descartando chunk %s", victim.coord)
		victim.release()
		delete(c.entries, victim.coord)
	}
}

// Each percorre os chunks residentes em ordem indefinida (suficiente
// para submissão de draw).
func (c *Cache) Each(fn func(*Chunk)) {
	for _, ch := range c.entries {
		fn(ch)
	}
}

// Close libera os buffers de todos os chunks residentes e esvazia o
// cache.
func (c *Cache) Close() {
	for _, ch := range c.entries {
		ch.release()
	}
	c.entries = make(map[Coord]*Chunk)
}
