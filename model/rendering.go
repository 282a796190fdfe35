package model

// Signal is the input a renderer observed since its previous Render call.
type Signal int

const (
	// SignalNone means no input was observed.
	SignalNone Signal = iota
	// SignalToggleRun flips the simulation between running and paused.
	SignalToggleRun
	// SignalQuit ends the simulation.
	SignalQuit
)

// Frame carries everything a renderer needs to draw one generation.
type Frame struct {
	Generation int
	Cells      [][]bool
	Population int
	Paused     bool
	GensPerSec float64
}

/*
Renderer is the display collaborator owned by the game loop. Init
acquires the display surface and Fini releases it; Fini must be
idempotent so it can run on every exit path. A non-nil error from Init or
Render is fatal and shuts the simulation down.
*/
type Renderer interface {
	Init() error
	Render(frame Frame) (Signal, error)
	Fini()
}
