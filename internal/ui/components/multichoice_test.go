package components

import (
	"strings"
	"testing"
)

func testChoice() MultiChoice {
	return MultiChoice{
		Options:      []string{"Mercury", "Venus", "Earth", "Mars"},
		CorrectIndex: 1,
		Selected:     2,
		Chosen:       -1,
	}
}

func TestMultiChoice_View_Open(t *testing.T) {
	view := testChoice().View()

	for _, want := range []string{"A)  Mercury", "B)  Venus", "C)  Earth", "D)  Mars"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing option %q", want)
		}
	}
	if !strings.Contains(view, "▸ C)") {
		t.Error("expected cursor on the selected option")
	}
}

func TestMultiChoice_View_Revealed(t *testing.T) {
	c := testChoice()
	c.Revealed = true
	c.Chosen = 3
	view := c.View()

	if strings.Contains(view, "▸") {
		t.Error("cursor must disappear once revealed")
	}
	for _, want := range []string{"B)  Venus", "D)  Mars"} {
		if !strings.Contains(view, want) {
			t.Errorf("revealed view missing %q", want)
		}
	}
}

func TestMultiChoice_View_RevealedTimeout(t *testing.T) {
	c := testChoice()
	c.Revealed = true
	// A timeout leaves the chosen index negative; the view must not
	// mark any option as the wrong pick.
	view := c.View()
	if view == "" {
		t.Error("expected non-empty view")
	}
}

func TestMenu_Navigation(t *testing.T) {
	m := NewMenu([]string{"easy", "medium", "hard"}, 1)

	m = m.Next()
	if m.Value() != "hard" {
		t.Errorf("Value = %q after next, want %q", m.Value(), "hard")
	}

	// Clamped at the ends.
	m = m.Next()
	if m.Value() != "hard" {
		t.Error("selection moved past the last item")
	}

	m = m.Prev().Prev().Prev()
	if m.Value() != "easy" {
		t.Errorf("Value = %q, want %q", m.Value(), "easy")
	}
}

func TestNewMenu_SelectionBounds(t *testing.T) {
	m := NewMenu([]string{"a", "b"}, 7)
	if m.Selected != 0 {
		t.Errorf("Selected = %d for out-of-range initial selection, want 0", m.Selected)
	}
}

func TestMenu_View(t *testing.T) {
	m := NewMenu([]string{"easy", "medium", "hard"}, 1)
	view := m.View()

	for _, want := range []string{"easy", "medium", "hard"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing item %q", want)
		}
	}
	if !strings.Contains(view, "▸ medium") {
		t.Error("expected cursor on the selected item")
	}
}
