package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"cubeland/internal/voxel"
)

// draw renderiza a cena e o HUD.
func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(92, 148, 252, 255)) // céu

	rl.BeginMode3D(a.Cam.RLCamera)
	if a.Config.ShowGrid {
		rl.DrawGrid(64, voxel.ChunkSize)
	}
	a.renderer.Draw(a.cache)
	rl.EndMode3D()

	if a.Config.ShowDebugInfo {
		a.drawHUD()
	}

	rl.EndDrawing()
}

// drawHUD desenha o painel de debug sobreposto.
func (a *App) drawHUD() {
	width := int32(260)
	height := int32(110)
	x := int32(rl.GetScreenWidth()) - width - 10
	y := int32(10)

	rl.DrawRectangle(x, y, width, height, rl.NewColor(0, 0, 0, 180))
	rl.DrawRectangleLines(x, y, width, height, rl.NewColor(50, 50, 50, 255))

	fps := rl.GetFPS()
	fpsColor := rl.Green
	if fps < 30 {
		fpsColor = rl.Red
	} else if fps < 50 {
		fpsColor = rl.Yellow
	}
	rl.DrawText(fmt.Sprintf("FPS: %d", fps), x+10, y+10, 20, fpsColor)

	look := a.Cam.CurrentLookAt
	rl.DrawText(fmt.Sprintf("Alvo: (%.0f, %.0f)", look.X, look.Z), x+10, y+38, 16, rl.White)
	rl.DrawText(fmt.Sprintf("Chunks: %d / %d", a.cache.Size(), a.cache.Capacity()), x+10, y+58, 16, rl.White)
	rl.DrawText(fmt.Sprintf("Seed: %d", a.Config.Seed), x+10, y+78, 16, rl.LightGray)
}
