package main

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/stvsmth/conway-life/model"
	"github.com/stvsmth/conway-life/utils"
)

// gameState tracks the control loop's lifecycle. Stopped is terminal.
type gameState int

const (
	stateRunning gameState = iota
	statePaused
	stateStopped
)

// Game owns the grid for its whole lifetime and drives the
// advance/render cycle at a fixed cadence.
type Game struct {
	grid     *model.Grid
	renderer model.Renderer
	tick     time.Duration
	stats    *utils.Stats

	// stopWhenStill ends the run once the board stops changing or dies out.
	stopWhenStill bool

	state gameState
}

// NewGame wires a grid to its renderer.
func NewGame(grid *model.Grid, renderer model.Renderer, config utils.Config) *Game {
	return &Game{
		grid:          grid,
		renderer:      renderer,
		tick:          config.TickInterval,
		stats:         utils.NewStats(),
		stopWhenStill: !config.RunForever,
		state:         stateRunning,
	}
}

/*
Run drives the control loop until a quit signal, context cancellation, a
settled board, or a fatal render error. Everything happens on the calling
goroutine: each loop iteration waits out one tick interval (the bounded
wait doubles as the generation cadence), advances the grid unless paused,
and hands the renderer a snapshot. The renderer is acquired and released
here so the terminal is restored on every exit path.
*/
func (g *Game) Run(ctx context.Context) error {
	if err := g.renderer.Init(); err != nil {
		return errors.Wrap(err, "[Run] failed to acquire display")
	}
	defer g.renderer.Fini()

	// Show generation 0 before the first advance.
	if err := g.renderFrame(); err != nil {
		return err
	}

	ticker := time.NewTicker(g.tick)
	defer ticker.Stop()

	lastFrame := time.Now()
	for g.state != stateStopped {
		select {
		case <-ctx.Done():
			g.state = stateStopped
			continue
		case <-ticker.C:
		}

		if g.state == stateRunning {
			g.grid.Advance()
			g.stats.Update(g.grid.Generation(), g.grid.Population(), time.Since(lastFrame))
			lastFrame = time.Now()
		}
		if err := g.renderFrame(); err != nil {
			g.state = stateStopped
			return err
		}
		if g.stopWhenStill && g.state == stateRunning && g.settled() {
			g.state = stateStopped
		}
	}
	return nil
}

// Generations returns how far the simulation got.
func (g *Game) Generations() int { return g.grid.Generation() }

// Stats exposes the run statistics for the final report.
func (g *Game) Stats() *utils.Stats { return g.stats }

// renderFrame hands the current snapshot to the renderer and applies
// whatever input signal it observed since the last frame.
func (g *Game) renderFrame() error {
	frame := model.Frame{
		Generation: g.grid.Generation(),
		Cells:      g.grid.Snapshot(),
		Population: g.grid.Population(),
		Paused:     g.state == statePaused,
		GensPerSec: g.stats.GenerationsPerSecond,
	}

	signal, err := g.renderer.Render(frame)
	if err != nil {
		return errors.Wrap(err, "[renderFrame] render failed")
	}

	switch signal {
	case model.SignalToggleRun:
		g.toggleRun()
	case model.SignalQuit:
		g.state = stateStopped
	}
	return nil
}

func (g *Game) toggleRun() {
	switch g.state {
	case stateRunning:
		g.state = statePaused
	case statePaused:
		g.state = stateRunning
	}
}

// settled reports a board that will never change again: static or extinct.
func (g *Game) settled() bool {
	return g.grid.Stable() || g.grid.Population() == 0
}
