package stage

import (
	"flag"
	"fmt"

	"cube-stage/internal/commands"
)

// maxCubesPerCommand bounds "cube -count" so a typo cannot stall the frame loop.
const maxCubesPerCommand = 1000

// RegisterCommands adds the console commands that drive s:
//
//	cube [-count N]              add N cubes
//	start / stop                 arm or remove the frame callback
//	set -name LABEL -value V     move a panel slider
//	press -name LABEL            press a panel button
func RegisterCommands(reg *commands.Registry, s *Stage) {
	cubeFS := flag.NewFlagSet("cube", flag.ContinueOnError)
	count := cubeFS.Int("count", 1, "number of cubes to add")
	reg.Register("cube", cubeFS, func() error {
		if *count < 1 || *count > maxCubesPerCommand {
			return fmt.Errorf("cube: count must be in [1, %d]", maxCubesPerCommand)
		}
		for i := 0; i < *count; i++ {
			s.AddCube()
		}
		return nil
	})

	reg.Register("start", nil, func() error {
		s.Start()
		return nil
	})
	reg.Register("stop", nil, func() error {
		s.Stop()
		return nil
	})

	setFS := flag.NewFlagSet("set", flag.ContinueOnError)
	setName := setFS.String("name", "", "panel control label, e.g. camera.x")
	setValue := setFS.Float64("value", 0, "new value (clamped to the control range)")
	reg.Register("set", setFS, func() error {
		c, ok := s.panel.Find(*setName)
		if !ok {
			return fmt.Errorf("set: unknown control %q", *setName)
		}
		c.Set(float32(*setValue))
		s.log.Logf("%s = %s", c.Label, c.Format())
		return nil
	})

	pressFS := flag.NewFlagSet("press", flag.ContinueOnError)
	pressName := pressFS.String("name", AddCubeAction, "panel action label")
	reg.Register("press", pressFS, func() error {
		return s.panel.Trigger(*pressName)
	})
}
