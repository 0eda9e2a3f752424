package registry

import (
	"testing"

	"github.com/vovakirdan/cyber-cycle/internal/core"
)

type stubGame struct{ id string }

func (s stubGame) ID() string                         { return s.id }
func (s stubGame) Title() string                      { return "Stub " + s.id }
func (stubGame) Reset(core.RuntimeConfig)             {}
func (stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (stubGame) Render(*core.Screen)                  {}
func (stubGame) State() core.GameState                { return core.GameState{} }

func stub(id string) Factory {
	return func() Game { return stubGame{id} }
}

func TestCatalog(t *testing.T) {
	c := NewCatalog()
	c.Register("b", stub("b"))
	c.Register("a", stub("a"))

	if !c.Exists("a") || c.Exists("missing") {
		t.Fatal("Exists reports wrong membership")
	}

	g, err := c.Create("b")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "b" {
		t.Errorf("created %q, expected b", g.ID())
	}
	if _, err := c.Create("missing"); err == nil {
		t.Error("unknown ID should fail")
	}

	list := c.List()
	if len(list) != 2 || list[0].ID != "a" || list[1].ID != "b" {
		t.Fatalf("List = %+v, expected a then b", list)
	}
	if list[0].Title != "Stub a" {
		t.Errorf("title = %q", list[0].Title)
	}
}

func TestCatalogDuplicatePanics(t *testing.T) {
	c := NewCatalog()
	c.Register("dup", stub("dup"))
	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	c.Register("dup", stub("dup"))
}
