// Package registry maps game mode IDs to factories.
// Modes register themselves in init(), so the CLI and the TUI can create
// them by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/cyber-cycle/internal/core"
)

// Game is a fixed-step simulation driven by the platform layer.
// Implementations never import Bubble Tea; the platform maps keys to
// actions, runs the clock and paints the screen.
type Game interface {
	// ID returns the registry key, e.g. "cycle" or "cycle_solo".
	ID() string

	// Title returns the name shown in the HUD and in "list".
	Title() string

	// Reset discards the current round and starts a new one.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input holds every action pressed since the previous tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current round into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns score, game over and pause status.
	State() core.GameState
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh, un-reset game.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

// Catalog is a set of named factories, safe for concurrent use.
type Catalog struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{entries: make(map[string]entry)}
}

// Register adds a factory under id. The title is read from a throwaway
// instance. Panics on duplicate IDs.
func (c *Catalog) Register(id string, f Factory) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	c.entries[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered mode sorted by ID.
func (c *Catalog) List() []GameInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]GameInfo, 0, len(c.entries))
	for id, e := range c.entries {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create instantiates the mode registered under id.
func (c *Catalog) Create(id string) (Game, error) {
	c.mu.RLock()
	e, ok := c.entries[id]
	c.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func (c *Catalog) Exists(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[id]
	return ok
}

var defaultCatalog = NewCatalog()

// Register adds a factory to the process-wide catalog.
func Register(id string, f Factory) { defaultCatalog.Register(id, f) }

// List returns the process-wide catalog's modes.
func List() []GameInfo { return defaultCatalog.List() }

// Create instantiates a mode from the process-wide catalog.
func Create(id string) (Game, error) { return defaultCatalog.Create(id) }

// Exists reports whether id is in the process-wide catalog.
func Exists(id string) bool { return defaultCatalog.Exists(id) }
