package main

import (
	"flag"

	"cube-stage/internal/commands"
	"cube-stage/internal/config"
	"cube-stage/internal/debug"
	"cube-stage/internal/graphics"
	"cube-stage/internal/logger"
	"cube-stage/internal/stage"
)

// registerCommands adds the host-level console commands: overlays, window mode and save.
func registerCommands(reg *commands.Registry, stg *stage.Stage, dbg *debug.Debug, win *graphics.Window, prefs config.Prefs, cfgPath string, log *logger.Logger) {
	fpsFS := flag.NewFlagSet("fps", flag.ContinueOnError)
	fpsShow := fpsFS.Bool("show", false, "show FPS and entity count")
	fpsHide := fpsFS.Bool("hide", false, "hide FPS and entity count")
	reg.Register("fps", fpsFS, func() error {
		dbg.SetShowFPS(toggle(dbg.ShowFPS, *fpsShow, *fpsHide))
		return nil
	})

	memFS := flag.NewFlagSet("memalloc", flag.ContinueOnError)
	memShow := memFS.Bool("show", false, "show heap allocation")
	memHide := memFS.Bool("hide", false, "hide heap allocation")
	reg.Register("memalloc", memFS, func() error {
		dbg.SetShowMemAlloc(toggle(dbg.ShowMemAlloc, *memShow, *memHide))
		return nil
	})

	reg.Register("fullscreen", nil, func() error {
		win.ToggleFullscreen()
		return nil
	})

	reg.Register("save", nil, func() error {
		snap := stg.Snapshot()
		p := prefs
		p.Camera.Position = snap.CameraPosition.Array()
		p.Lights.Ambient = snap.Ambient
		p.Lights.Directional = snap.Directional
		p.ShowFPS = dbg.ShowFPS
		p.ShowMemAlloc = dbg.ShowMemAlloc
		if err := config.Save(cfgPath, p); err != nil {
			return err
		}
		log.Logf("saved %s", cfgPath)
		return nil
	})
}

// toggle resolves -show/-hide flags; with neither it flips the current state.
func toggle(current, show, hide bool) bool {
	switch {
	case show:
		return true
	case hide:
		return false
	default:
		return !current
	}
}
