package main

import (
	"math/rand"
	"time"

	"cube-stage/internal/commands"
	"cube-stage/internal/config"
	"cube-stage/internal/debug"
	"cube-stage/internal/env"
	"cube-stage/internal/graphics"
	"cube-stage/internal/logger"
	"cube-stage/internal/panel"
	"cube-stage/internal/primitives"
	"cube-stage/internal/scene"
	"cube-stage/internal/stage"
	"cube-stage/internal/terminal"
	"cube-stage/internal/ui"
)

func main() {
	log := logger.New(logger.DefaultPath)
	if err := env.Load(".env"); err != nil {
		log.Log(err.Error())
	}
	cfgPath := config.Path()
	prefs, err := config.Load(cfgPath)
	if err != nil {
		log.Log(err.Error())
	}

	win := graphics.NewWindow(graphics.WindowOptions{
		Width:     prefs.Window.Width,
		Height:    prefs.Window.Height,
		Title:     prefs.Window.Title,
		TargetFPS: prefs.Window.TargetFPS,
	})
	defer win.Close()
	renderer := graphics.NewRenderer(primitives.NewRegistry())
	win.OnClose(renderer.Unload)

	pnl := panel.New("debug")
	stg := stage.New(win, renderer, pnl, stageOptions(prefs, log))

	theme, err := ui.LoadTheme(prefs.PanelCSS)
	if err != nil {
		log.Log(err.Error())
	}
	view := graphics.NewPanelView(pnl, theme)
	orbitIn := graphics.NewOrbitInput(stg.Orbit())

	dbg := debug.New()
	dbg.SetShowFPS(prefs.ShowFPS)
	dbg.SetShowMemAlloc(prefs.ShowMemAlloc)
	dbg.Entities = stg.Graph().Len

	reg := commands.NewRegistry()
	stage.RegisterCommands(reg, stg)
	registerCommands(reg, stg, dbg, win, prefs, cfgPath, log)
	term := terminal.New(log, reg)

	stg.Start()
	update := func() {
		term.Update()
		captured := term.IsOpen()
		if !captured {
			captured = view.Update()
		}
		orbitIn.Update(captured)
		renderer.Tick()
	}
	draw := func() {
		renderer.Present()
		view.Draw()
		term.Draw()
		dbg.Draw()
	}
	win.Run(update, draw)
}

// stageOptions maps the config file onto stage options. STAGE_SEED overrides the seed.
func stageOptions(p config.Prefs, log *logger.Logger) stage.Options {
	opts := stage.DefaultOptions()
	opts.CameraPosition = scene.NewVec3(p.Camera.Position[0], p.Camera.Position[1], p.Camera.Position[2])
	opts.Fov = p.Camera.Fov
	opts.Near = p.Camera.Near
	opts.Far = p.Camera.Far
	opts.Ambient = p.Lights.Ambient
	opts.Directional = p.Lights.Directional
	if c, ok := ui.ParseHexColor(p.ClearColor); ok {
		opts.ClearColor = c
	}
	opts.SpawnRadius = p.SpawnRadius
	seed := p.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	seed = env.Int64("STAGE_SEED", seed)
	opts.Rand = rand.New(rand.NewSource(seed))
	opts.Log = log
	log.Logf("seed %d", seed)
	return opts
}
