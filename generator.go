// seehuhn.de/go/streamlines - evenly-spaced streamlines for 2D vector fields
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package streamlines places evenly-spaced streamlines in a 2D vector field.
//
// The algorithm is a variant of the one by Jobard and Lefer. A streamline is
// grown from a seed point in both directions using fourth-order Runge-Kutta
// steps. Once complete, an exclusion zone is reserved around the streamline,
// and new seeds are placed just outside this zone. This repeats until no
// free space is left. A density function controls the local spacing.
//
// Work is organised in bursts of bounded length, so that a [Generator] can
// share a goroutine with other work and can be cancelled between bursts.
package streamlines

import (
	"context"
	"errors"
	"image"
	"runtime"
	"sync/atomic"
	"time"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/streamlines/mask"
)

// generatorState is the phase of a generation run.
type generatorState int

const (
	stateInit generatorState = iota
	stateGrow
	stateSeedNext
	stateDone
)

func (s generatorState) String() string {
	switch s {
	case stateInit:
		return "init"
	case stateGrow:
		return "grow"
	case stateSeedNext:
		return "seed"
	case stateDone:
		return "done"
	default:
		return "unknown"
	}
}

// ErrRunning is returned when a run is started on a generator which is
// already running.
var ErrRunning = errors.New("generator is already running")

// Generator computes a set of evenly-spaced streamlines.
//
// A Generator runs on one goroutine at a time. Only [Generator.Cancel] may
// be called concurrently with a run.
type Generator struct {
	cfg   Config
	start *mask.Mask // where new streamlines may begin
	stop  *mask.Mask // where growing streamlines must end
	rand  Source

	state   generatorState
	current *integrator
	queue   []*integrator // finished streamlines which may still yield seeds

	// shuffled free cells of the start mask, for reseeding
	free       []image.Point
	freePos    int
	freeLoaded bool

	count int

	running   atomic.Bool
	cancelled atomic.Bool
}

// New validates cfg and returns a generator ready to run.
// The density function is evaluated for every pixel of the domain before
// New returns.
func New(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{
		cfg:  cfg,
		rand: cfg.Rand,
	}
	if g.rand == nil {
		g.rand = newDefaultSource()
	}

	density := func(p vec.Vec2) float64 {
		return g.cfg.density(Point{Vec2: p})
	}
	g.start = mask.New(cfg.Width, cfg.Height, density,
		cfg.MinStartDist, cfg.MaxStartDist)
	g.stop = mask.New(cfg.Width, cfg.Height, density,
		cfg.MinStartDist*cfg.EndRatio, cfg.MaxStartDist*cfg.EndRatio)

	var seed Point
	if cfg.Seed != nil {
		seed = *cfg.Seed
	} else {
		seed = Pt(g.rand.Float64()*float64(cfg.Width), g.rand.Float64()*float64(cfg.Height))
	}
	g.current = newIntegrator(seed, g.start, g.stop, &g.cfg)

	return g, nil
}

// Bounds returns the domain of the generator.
func (g *Generator) Bounds() rect.Rect {
	return rect.Rect{URx: float64(g.cfg.Width), URy: float64(g.cfg.Height)}
}

// Count returns the number of streamlines kept so far.
func (g *Generator) Count() int {
	return g.count
}

// Done reports whether the generator has finished, either because the
// domain is saturated or because the run was cancelled.
func (g *Generator) Done() bool {
	return g.state == stateDone
}

// StartMask returns the mask which controls where new streamlines may begin.
// The mask must not be modified.
func (g *Generator) StartMask() *mask.Mask {
	return g.start
}

// StopMask returns the mask which controls where growing streamlines end.
// The mask must not be modified.
func (g *Generator) StopMask() *mask.Mask {
	return g.stop
}

// Cancel requests the current or next run to stop at the next burst
// boundary. The streamline being grown at that time is discarded.
// Cancel is safe for concurrent use.
func (g *Generator) Cancel() {
	g.cancelled.Store(true)
}

// Run generates streamlines until the domain is saturated, the generator
// is cancelled or ctx is done. Bursts are executed back to back without
// yielding. Run returns nil on completion and after Cancel, and ctx.Err()
// if the context ended the run.
func (g *Generator) Run(ctx context.Context) error {
	return g.run(ctx, false)
}

// RunAsync starts the generator on a new goroutine, which yields to the
// Go scheduler between bursts. The returned channel receives the result of
// the run, as described for [Generator.Run], and is then closed.
func (g *Generator) RunAsync(ctx context.Context) <-chan error {
	res := make(chan error, 1)
	go func() {
		defer close(res)
		res <- g.run(ctx, true)
	}()
	return res
}

func (g *Generator) run(ctx context.Context, yield bool) error {
	if !g.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	defer g.running.Store(false)

	log := Logger()
	t0 := time.Now()
	log.Debug("generating streamlines",
		"width", g.cfg.Width, "height", g.cfg.Height, "state", g.state)

	for g.state != stateDone {
		if g.cancelled.Load() {
			g.current = nil
			g.state = stateDone
			log.Debug("generation cancelled", "streamlines", g.count)
			break
		}
		if err := ctx.Err(); err != nil {
			log.Debug("generation interrupted", "streamlines", g.count, "err", err)
			return err
		}
		g.burst()
		if yield {
			runtime.Gosched()
		}
	}

	log.Debug("streamlines done",
		"streamlines", g.count, "elapsed", time.Since(t0).Round(time.Millisecond))
	return nil
}

// burst performs up to StepsPerIteration steps, or fewer if the time
// budget runs out first.
func (g *Generator) burst() {
	t0 := time.Now()
	for range g.cfg.StepsPerIteration {
		g.step()
		if g.state == stateDone || time.Since(t0) > g.cfg.MaxTimePerIteration {
			return
		}
	}
}

// step performs one transition of the state machine.
func (g *Generator) step() {
	switch g.state {
	case stateInit:
		if g.current.step() {
			g.retain(g.current)
			g.current = nil
			g.state = stateSeedNext
		}

	case stateGrow:
		if g.current.step() {
			g.retain(g.current)
			g.current = nil
			g.state = stateSeedNext
		}

	case stateSeedNext:
		for len(g.queue) > 0 {
			if seed, ok := g.queue[0].nextSeedCandidate(); ok {
				g.current = newIntegrator(seed, g.start, g.stop, &g.cfg)
				g.state = stateGrow
				return
			}
			g.queue[0] = nil
			g.queue = g.queue[1:]
		}
		if seed, ok := g.randomSeed(); ok {
			Logger().Debug("reseeding from free cell", "x", seed.X, "y", seed.Y)
			g.current = newIntegrator(seed, g.start, g.stop, &g.cfg)
			g.state = stateGrow
			return
		}
		g.state = stateDone
	}
}

// retain is called when a streamline is complete. Streamlines which are
// long enough are queued for seeding and reported to the caller.
func (g *Generator) retain(it *integrator) {
	if g.cfg.OnMaskUpdate != nil {
		g.cfg.OnMaskUpdate(g.start, g.stop)
	}

	n := len(it.points)
	if n < 2 || n < g.cfg.MinPointsPerLine {
		return
	}
	g.queue = append(g.queue, it)
	g.count++
	Logger().Debug("streamline added", "index", g.count, "points", n)
	if g.cfg.OnStreamlineAdded != nil {
		g.cfg.OnStreamlineAdded(it.points)
	}
}

// randomSeed returns the centre of a random pixel which is still free in
// the start mask. The free pixels are listed and shuffled once; since
// pixels never become free again, later calls only need to skip entries
// which have been blocked in the meantime.
func (g *Generator) randomSeed() (Point, bool) {
	if !g.freeLoaded {
		g.free = g.start.FreeCells()
		shuffle(g.free, g.rand)
		g.freeLoaded = true
	}
	for g.freePos < len(g.free) {
		c := g.free[g.freePos]
		g.freePos++
		p := Pt(float64(c.X)+0.5, float64(c.Y)+0.5)
		if g.start.IsUsable(p.X, p.Y) {
			return p, true
		}
	}
	g.free = nil
	return Point{}, false
}

// Generate runs a generator for cfg to completion and returns all
// streamlines kept, in the order they were found. Any OnStreamlineAdded
// callback in cfg is still called.
func Generate(ctx context.Context, cfg Config) ([][]Point, error) {
	var res [][]Point
	user := cfg.OnStreamlineAdded
	cfg.OnStreamlineAdded = func(points []Point) {
		res = append(res, points)
		if user != nil {
			user(points)
		}
	}

	g, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if err := g.Run(ctx); err != nil {
		return res, err
	}
	return res, nil
}
