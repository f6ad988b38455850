package stage

import "cube-stage/internal/panel"

// Panel labels.
const (
	CameraX              = "camera.x"
	CameraY              = "camera.y"
	CameraZ              = "camera.z"
	DirectionalIntensity = "directional.intensity"
	AmbientIntensity     = "ambient.intensity"
	AddCubeAction        = "addCube"
)

// bindings lists every panel scalar the stage exposes, in panel order.
func (s *Stage) bindings() []panel.Binding {
	pos := &s.camera.Position
	scalar := func(label string, lo, hi float32, v *float32) panel.Binding {
		return panel.Binding{
			Label: label,
			Min:   lo,
			Max:   hi,
			Step:  0.01,
			Get:   func() float32 { return *v },
			Set:   func(x float32) { *v = x },
		}
	}
	return []panel.Binding{
		scalar(CameraX, -10, 10, &pos.X),
		scalar(CameraY, -10, 10, &pos.Y),
		scalar(CameraZ, -10, 10, &pos.Z),
		scalar(DirectionalIntensity, 0, 3, &s.directional.Intensity),
		scalar(AmbientIntensity, 0, 3, &s.ambient.Intensity),
	}
}

func (s *Stage) setupPanel() {
	for _, b := range s.bindings() {
		s.panel.Add(b)
	}
	s.panel.AddAction(AddCubeAction, func() { s.AddCube() })
}
