// Package tern provides the frame loop: sizing, ticking, polling,
// rendering and terminal lifecycle.
package tern

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/tern-ui/tern/state"
)

// Default frame budget (~60 FPS).
const defaultTickRate = 16 * time.Millisecond

// App owns the terminal session: a backend, double buffers, the renderer,
// the root component, the shared store, focus and the animation timeline.
// Everything runs on the goroutine that calls Run.
type App struct {
	backend    Backend
	buffer     *Buffer
	prevBuffer *Buffer
	renderer   *Renderer
	root       Component
	store      *state.Store
	focus      *FocusManager
	timeline   *Timeline
	logger     *zap.Logger

	tickRate   time.Duration
	mouse      bool
	shouldQuit atomic.Bool
	lastTick   time.Time

	cleanupOnce sync.Once
}

// AppOption configures an App.
type AppOption func(*App)

// WithBackend replaces the default terminal backend.
func WithBackend(b Backend) AppOption {
	return func(a *App) { a.backend = b }
}

// WithLogger attaches a logger for lifecycle diagnostics. The default is
// a nop; the core never logs to the controlled terminal.
func WithLogger(l *zap.Logger) AppOption {
	return func(a *App) { a.logger = l }
}

// WithTickRate overrides the frame budget.
func WithTickRate(d time.Duration) AppOption {
	return func(a *App) { a.tickRate = d }
}

// WithMouse enables mouse capture for the session.
func WithMouse() AppOption {
	return func(a *App) { a.mouse = true }
}

// NewApp creates an app around the root component.
func NewApp(root Component, opts ...AppOption) *App {
	a := &App{
		backend:    NewTermBackend(),
		buffer:     NewBuffer(80, 24),
		prevBuffer: NewBuffer(80, 24),
		renderer:   NewRenderer(),
		root:       root,
		store:      state.NewStore(),
		focus:      NewFocusManager(),
		timeline:   NewTimeline(),
		logger:     zap.NewNop(),
		tickRate:   defaultTickRate,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Store returns the shared store.
func (a *App) Store() *state.Store { return a.store }

// Focus returns the focus manager.
func (a *App) Focus() *FocusManager { return a.focus }

// Timeline returns the animation timeline.
func (a *App) Timeline() *Timeline { return a.timeline }

// Quit asks the loop to exit at the next frame boundary.
func (a *App) Quit() { a.shouldQuit.Store(true) }

// Run enters the terminal session and drives the frame loop until quit.
// The terminal is restored on graceful exit, on error, and on panic
// before the panic propagates.
func (a *App) Run() error {
	if err := a.backend.EnterRawMode(); err != nil {
		return err
	}
	if err := a.backend.EnterAltScreen(); err != nil {
		a.restoreTerminal()
		return err
	}
	if a.mouse {
		if err := a.backend.EnableMouse(); err != nil {
			a.restoreTerminal()
			return err
		}
	}
	if err := a.backend.CursorHide(); err != nil {
		a.restoreTerminal()
		return err
	}
	if err := a.backend.Clear(); err != nil {
		a.restoreTerminal()
		return err
	}

	// Panic path: restore modes first, then let the panic continue.
	defer func() {
		if r := recover(); r != nil {
			a.restoreTerminal()
			panic(r)
		}
	}()

	a.logger.Info("session started")

	if a.root != nil {
		a.root.Mount(&MountContext{Store: a.store})
	}

	a.lastTick = time.Now()
	var runErr error

	for !a.shouldQuit.Load() {
		if err := a.frame(); err != nil {
			runErr = err
			a.logger.Error("fatal frame error", zap.Error(err))
			break
		}
	}

	if a.root != nil {
		a.root.Unmount(&MountContext{Store: a.store})
	}

	a.restoreTerminal()
	a.logger.Info("session ended")
	return runErr
}

// frame runs one iteration: resize check, animation tick, event poll,
// render, diff-and-flush, swap, then sleep out the budget.
func (a *App) frame() error {
	frameStart := time.Now()

	w, h, err := a.backend.Size()
	if err != nil {
		return err
	}
	if a.buffer.Width() != w || a.buffer.Height() != h {
		a.buffer.Resize(w, h)
		a.prevBuffer.Resize(w, h)
		a.logger.Debug("resized", zap.Uint16("width", w), zap.Uint16("height", h))
	}

	a.timeline.Step(frameStart.Sub(a.lastTick))
	a.lastTick = frameStart

	ev, err := a.backend.ReadEvent(a.tickRate)
	if err != nil {
		return err
	}
	if ev != nil {
		a.handleEvent(ev)
	}

	if err := a.renderFrame(); err != nil {
		return err
	}

	if elapsed := time.Since(frameStart); elapsed < a.tickRate {
		time.Sleep(a.tickRate - elapsed)
	}
	return nil
}

// handleEvent offers the event to the root first, then applies the
// default policy: Tab cycles focus, q and Ctrl+C quit.
func (a *App) handleEvent(ev Event) {
	if a.root != nil {
		ctx := &EventContext{Store: a.store, Area: a.buffer.Area()}
		switch a.root.HandleEvent(ev, ctx) {
		case Handled, Consumed:
			return
		case Ignored:
		}
	}

	key, ok := ev.(KeyEvent)
	if !ok {
		return
	}

	switch key.Code {
	case KeyTab:
		if key.Mods.Contains(ModShift) {
			a.focus.FocusPrev()
		} else {
			a.focus.FocusNext()
		}
	case KeyBackTab:
		a.focus.FocusPrev()
	case KeyChar:
		if key.Ch == 'q' && key.Mods == 0 {
			a.shouldQuit.Store(true)
		}
		if key.Ch == 'c' && key.Mods.Contains(ModControl) {
			a.shouldQuit.Store(true)
		}
	}
}

// renderFrame paints the view tree into the back buffer, lets the
// renderer flush the dirty regions, then swaps buffers.
func (a *App) renderFrame() error {
	a.buffer.Clear()

	if a.root != nil {
		area := a.buffer.Area()
		ctx := NewRenderContext(a.buffer, area, a.store)
		tree := a.root.Render(ctx)
		tree.Paint(ctx)
	}

	if err := a.renderer.Render(a.backend, a.prevBuffer, a.buffer); err != nil {
		return err
	}

	a.buffer, a.prevBuffer = a.prevBuffer, a.buffer
	return nil
}

// restoreTerminal undoes the session modes. Safe to call repeatedly; the
// work runs once.
func (a *App) restoreTerminal() {
	a.cleanupOnce.Do(func() {
		_ = a.backend.CursorShow()
		if a.mouse {
			_ = a.backend.DisableMouse()
		}
		_ = a.backend.LeaveAltScreen()
		_ = a.backend.LeaveRawMode()
	})
}

// Close restores the terminal defensively. Intended for defer alongside
// Run so a session never leaves the terminal raw.
func (a *App) Close() error {
	a.restoreTerminal()
	return nil
}
