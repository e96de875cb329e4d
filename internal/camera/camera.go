package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Controller gerencia a movimentação da câmera orbital sobre o terreno:
// WASD desloca o alvo no plano, o botão esquerdo do mouse orbita e o
// scroll ajusta o zoom, tudo com interpolação suave.
type Controller struct {
	// Estado interno do raylib
	RLCamera rl.Camera3D

	// Configurações
	MinZoom      float32
	MaxZoom      float32
	MoveSpeed    float32
	RotateSpeed  float32
	ZoomSpeed    float32
	SmoothFactor float32 // 0.0 a 1.0 (quanto menor, mais suave)

	// Estado alvo (para interpolação)
	TargetLookAt rl.Vector3
	TargetZoom   float32
	TargetAngleY float32 // azimute (radianos)
	TargetAngleX float32 // elevação (radianos)

	// Estado atual (interpolado)
	CurrentLookAt rl.Vector3
	CurrentZoom   float32
}

// New cria um controlador de câmera olhando para o ponto inicial.
func New(lookAt rl.Vector3, moveSpeed, sensitivity, zoomSpeed float32) *Controller {
	c := &Controller{
		MinZoom:      8.0,
		MaxZoom:      300.0,
		MoveSpeed:    moveSpeed,
		RotateSpeed:  sensitivity,
		ZoomSpeed:    zoomSpeed,
		SmoothFactor: 0.12,

		TargetLookAt: lookAt,
		TargetZoom:   80.0,
		TargetAngleY: 45.0 * rl.Deg2rad,
		TargetAngleX: -35.0 * rl.Deg2rad,
	}

	c.CurrentLookAt = c.TargetLookAt
	c.CurrentZoom = c.TargetZoom

	c.RLCamera = rl.Camera3D{
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       60.0,
		Projection: rl.CameraPerspective,
	}
	c.recalc()
	return c
}

// HandleInput processa a entrada do usuário. Retorna true se houve
// movimento manual.
func (c *Controller) HandleInput(dt float32) bool {
	moved := false

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		moved = true
		c.TargetZoom -= wheel * c.ZoomSpeed
		if c.TargetZoom < c.MinZoom {
			c.TargetZoom = c.MinZoom
		}
		if c.TargetZoom > c.MaxZoom {
			c.TargetZoom = c.MaxZoom
		}
	}

	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			moved = true
		}
		c.TargetAngleY -= delta.X * c.RotateSpeed * 0.005
		c.TargetAngleX -= delta.Y * c.RotateSpeed * 0.005

		// Clamp da elevação para a câmera não passar do zênite nem do horizonte
		maxElev := float32(-5.0 * rl.Deg2rad)
		minElev := float32(-89.0 * rl.Deg2rad)
		if c.TargetAngleX > maxElev {
			c.TargetAngleX = maxElev
		}
		if c.TargetAngleX < minElev {
			c.TargetAngleX = minElev
		}
	}

	// WASD desloca o alvo no plano XZ, relativo ao azimute da câmera
	forward := mgl32.Vec3{
		-float32(math.Sin(float64(c.TargetAngleY))),
		0,
		-float32(math.Cos(float64(c.TargetAngleY))),
	}
	right := mgl32.Vec3{-forward.Z(), 0, forward.X()}

	var dir mgl32.Vec3
	if rl.IsKeyDown(rl.KeyW) {
		dir = dir.Add(forward)
	}
	if rl.IsKeyDown(rl.KeyS) {
		dir = dir.Sub(forward)
	}
	if rl.IsKeyDown(rl.KeyD) {
		dir = dir.Add(right)
	}
	if rl.IsKeyDown(rl.KeyA) {
		dir = dir.Sub(right)
	}
	if dir.Len() > 0 {
		moved = true
		// Velocidade escala com o zoom: mais longe, mais rápido
		step := dir.Normalize().Mul(c.MoveSpeed * dt * (c.CurrentZoom / 40.0))
		c.TargetLookAt.X += step.X()
		c.TargetLookAt.Z += step.Z()
	}

	return moved
}

// Update interpola o estado da câmera em direção aos alvos. Chamado a
// cada frame.
func (c *Controller) Update(dt float32) {
	factor := c.SmoothFactor * 60.0 * dt // normalizado para 60 FPS
	if factor > 1.0 {
		factor = 1.0
	}

	cur := mgl32.Vec3{c.CurrentLookAt.X, c.CurrentLookAt.Y, c.CurrentLookAt.Z}
	tgt := mgl32.Vec3{c.TargetLookAt.X, c.TargetLookAt.Y, c.TargetLookAt.Z}
	lerped := cur.Add(tgt.Sub(cur).Mul(factor))

	c.CurrentLookAt = rl.Vector3{X: lerped.X(), Y: lerped.Y(), Z: lerped.Z()}
	c.CurrentZoom += (c.TargetZoom - c.CurrentZoom) * factor

	c.recalc()
}

// recalc converte os ângulos esféricos e o zoom em posição cartesiana.
func (c *Controller) recalc() {
	cosX := float32(math.Cos(float64(c.TargetAngleX)))
	sinX := float32(math.Sin(float64(c.TargetAngleX)))
	cosY := float32(math.Cos(float64(c.TargetAngleY)))
	sinY := float32(math.Sin(float64(c.TargetAngleY)))

	dist := c.CurrentZoom
	c.RLCamera.Position = rl.Vector3{
		X: c.CurrentLookAt.X + dist*cosX*sinY,
		Y: c.CurrentLookAt.Y + dist*-sinX,
		Z: c.CurrentLookAt.Z + dist*cosX*cosY,
	}
	c.RLCamera.Target = c.CurrentLookAt
}
