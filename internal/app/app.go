package app

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"cubeland/internal/camera"
	"cubeland/internal/config"
	"cubeland/internal/render"
	"cubeland/internal/voxel"
	"cubeland/internal/world"
)

// maxLoadsPerFrame limita quantos chunks são gerados num único frame,
// para a carga inicial não travar a janela.
const maxLoadsPerFrame = 4

// App é a aplicação do Cubeland: janela, câmera e o loop que mantém os
// chunks ao redor da câmera residentes no cache.
type App struct {
	Config *config.Config

	Cam      *camera.Controller
	cache    *world.Cache
	renderer *render.Renderer

	frameCount int
}

// New cria uma nova instância da aplicação.
func New(cfg *config.Config) *App {
	return &App{Config: cfg}
}

// Run inicia a janela e o loop principal.
func (a *App) Run() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro fatal recuperado: %v", r)
			panic(r)
		}
	}()

	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(a.Config.WindowWidth, a.Config.WindowHeight, a.Config.WindowTitle)
	rl.SetTraceLogLevel(rl.LogWarning)

	if a.Config.Fullscreen {
		rl.ToggleFullscreen()
	}
	rl.SetTargetFPS(a.Config.TargetFPS)

	log.Printf("[App] Janela inicializada (%dx%d), seed=%d, raio=%d",
		a.Config.WindowWidth, a.Config.WindowHeight, a.Config.Seed, a.Config.VisibleRadius)

	// Começa olhando para o meio do primeiro chunk, na altura do terreno
	start := rl.Vector3{X: voxel.ChunkSize / 2, Y: 16, Z: voxel.ChunkSize / 2}
	a.Cam = camera.New(start, a.Config.CameraSpeed, a.Config.CameraSensitivity, a.Config.ZoomSpeed)

	a.renderer = render.NewRenderer()
	a.renderer.Wireframe = a.Config.WireframeMode
	a.cache = world.NewCache(a.Config.Seed, a.Config.VisibleRadius, a.renderer)

	for !rl.WindowShouldClose() {
		a.update()
		a.draw()
	}

	a.shutdown()
	rl.CloseWindow()
}

// update atualiza câmera, entrada e residência de chunks a cada frame.
func (a *App) update() {
	a.frameCount++

	dt := rl.GetFrameTime()
	a.Cam.HandleInput(dt)
	a.Cam.Update(dt)

	if rl.IsKeyPressed(rl.KeyF3) {
		a.Config.ShowDebugInfo = !a.Config.ShowDebugInfo
	}
	if rl.IsKeyPressed(rl.KeyF4) {
		a.renderer.Wireframe = !a.renderer.Wireframe
		a.Config.WireframeMode = a.renderer.Wireframe
	}

	a.updateChunks()
}

// floorDiv divide arredondando para baixo também com dividendo
// negativo.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// updateChunks garante os chunks em volta da câmera: toca os já
// residentes e carrega os que faltam, respeitando o orçamento por
// frame.
func (a *App) updateChunks() {
	const size = int64(voxel.ChunkSize)
	cx := floorDiv(int64(a.Cam.CurrentLookAt.X), size) * size
	cz := floorDiv(int64(a.Cam.CurrentLookAt.Z), size) * size

	r := int64(a.Config.VisibleRadius)
	loads := 0
	for dx := -r; dx < r; dx++ {
		for dz := -r; dz < r; dz++ {
			x := cx + dx*size
			z := cz + dz*size

			if ch, ok := a.cache.Get(x, z); ok {
				ch.Touch()
				continue
			}
			if loads >= maxLoadsPerFrame {
				continue
			}
			loads++
			if err := a.cache.Load(x, z); err != nil {
				log.Printf("[App] Falha ao carregar chunk (%d, %d): %v", x, z, err)
			}
		}
	}
}

// shutdown realiza a limpeza de recursos.
func (a *App) shutdown() {
	log.Println("[App] Finalizando aplicação...")

	a.cache.Close()

	if err := a.Config.Save(); err != nil {
		log.Printf("[App] Erro ao salvar configurações: %v", err)
	}
}
