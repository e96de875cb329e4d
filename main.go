package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"cubeland/internal/app"
	"cubeland/internal/config"
)

func main() {
	// Raylib/OpenGL exige rodar na thread principal do SO
	runtime.LockOSThread()

	seed := flag.Uint("seed", 0, "Seed do mundo (padrão: valor do config)")
	radius := flag.Int("radius", 0, "Raio visível em chunks")
	fullscreen := flag.Bool("fullscreen", false, "Iniciar em tela cheia")
	debug := flag.Bool("debug", false, "Mostrar informações de debug")
	width := flag.Int("width", 0, "Largura da janela")
	height := flag.Int("height", 0, "Altura da janela")
	logFile := flag.String("logfile", "", "Arquivo de log (padrão: stderr)")
	flag.Parse()

	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err == nil {
			log.SetOutput(f)
		}
	}
	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Println("[Cubeland] iniciando")

	cfg := config.Load()

	// Flags de linha de comando sobrescrevem o config salvo
	if *seed != 0 {
		cfg.Seed = uint32(*seed)
	}
	if *radius > 0 {
		cfg.VisibleRadius = *radius
	}
	if *fullscreen {
		cfg.Fullscreen = true
	}
	if *debug {
		cfg.ShowDebugInfo = true
	}
	if *width > 0 {
		cfg.WindowWidth = int32(*width)
	}
	if *height > 0 {
		cfg.WindowHeight = int32(*height)
	}

	app.New(cfg).Run()
}
