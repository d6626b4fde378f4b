package tui

import (
	"strings"
	"testing"

	"github.com/theirongolddev/iexpense/internal/expense"
	"github.com/theirongolddev/iexpense/internal/model"
	"github.com/theirongolddev/iexpense/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, a App, keys ...string) App {
	t.Helper()
	for _, k := range keys {
		m, _ := a.Update(keyMsg(k))
		a = m.(App)
	}
	return a
}

func seededApp(t *testing.T, mode model.Mode) (App, *store.MemSlot) {
	t.Helper()
	slot := &store.MemSlot{}
	s := expense.New(slot)
	for _, r := range []struct{ name, cat, amount string }{
		{"Coffee", model.CategoryPersonal, "3.50"},
		{"Laptop", model.CategoryBusiness, "1200"},
		{"Lunch", model.CategoryPersonal, "12"},
	} {
		s.Add(model.NewRecord(r.name, r.cat, decimal.RequireFromString(r.amount)))
	}
	return NewApp(s, Options{Currency: "PEN", Mode: mode, Backend: "memory"}), slot
}

func visibleNames(a App) []string {
	var out []string
	for _, r := range a.Visible() {
		out = append(out, r.Name)
	}
	return out
}

func TestModeKeys(t *testing.T) {
	a, _ := seededApp(t, model.ModeBoth)

	a = press(t, a, "p")
	if a.Mode() != model.ModePersonal {
		t.Fatalf("mode after p = %v, want personal", a.Mode())
	}
	if got := strings.Join(visibleNames(a), ","); got != "Coffee,Lunch" {
		t.Fatalf("personal view = %s, want Coffee,Lunch", got)
	}

	a = press(t, a, "b")
	if got := strings.Join(visibleNames(a), ","); got != "Laptop" {
		t.Fatalf("business view = %s, want Laptop", got)
	}

	a = press(t, a, "a")
	if len(a.Visible()) != 3 {
		t.Fatalf("both view has %d records, want 3", len(a.Visible()))
	}
}

func TestTabCyclesModes(t *testing.T) {
	a, _ := seededApp(t, model.ModePersonal)
	want := []model.Mode{model.ModeBusiness, model.ModeBoth, model.ModePersonal}
	for _, m := range want {
		a = press(t, a, "tab")
		if a.Mode() != m {
			t.Fatalf("mode = %v, want %v", a.Mode(), m)
		}
	}
}

func TestCursorClampsToVisible(t *testing.T) {
	a, _ := seededApp(t, model.ModeBoth)

	a = press(t, a, "j", "j", "j", "j")
	if a.Cursor() != 2 {
		t.Fatalf("cursor = %d, want 2", a.Cursor())
	}
	a = press(t, a, "k", "k", "k")
	if a.Cursor() != 0 {
		t.Fatalf("cursor = %d, want 0", a.Cursor())
	}

	a = press(t, a, "G", "b")
	if a.Cursor() != 0 {
		t.Fatalf("cursor after mode switch = %d, want 0", a.Cursor())
	}
}

func TestDeleteUnderFilterRemovesShownRecord(t *testing.T) {
	a, slot := seededApp(t, model.ModePersonal)

	// Cursor on Lunch, the second personal record but third overall.
	a = press(t, a, "down", "d")

	if got := strings.Join(visibleNames(a), ","); got != "Coffee" {
		t.Fatalf("personal view after delete = %s, want Coffee", got)
	}
	if a.Cursor() != 0 {
		t.Fatalf("cursor = %d, want 0 after deleting last row", a.Cursor())
	}

	reloaded := expense.New(slot)
	var names []string
	for _, r := range reloaded.Records() {
		names = append(names, r.Name)
	}
	if got := strings.Join(names, ","); got != "Coffee,Laptop" {
		t.Fatalf("persisted = %s, want Coffee,Laptop", got)
	}
}

func TestDeleteOnEmptyViewIsNoop(t *testing.T) {
	s := expense.New(&store.MemSlot{})
	a := NewApp(s, Options{})
	a = press(t, a, "x")
	if s.Len() != 0 || a.Cursor() != 0 {
		t.Fatalf("len=%d cursor=%d, want 0/0", s.Len(), a.Cursor())
	}
}

func TestAddFormOpensAndCancels(t *testing.T) {
	a, _ := seededApp(t, model.ModeBusiness)

	a = press(t, a, "n")
	if a.addForm == nil {
		t.Fatal("n did not open the add form")
	}
	if a.addVals.category != model.CategoryBusiness {
		t.Fatalf("default type = %q, want %q", a.addVals.category, model.CategoryBusiness)
	}

	// Keys go to the form, not the dashboard.
	a = press(t, a, "q")
	if a.addForm == nil {
		t.Fatal("q closed the form")
	}

	a = press(t, a, "esc")
	if a.addForm != nil {
		t.Fatal("esc did not close the form")
	}
	if len(a.Visible()) != 1 {
		t.Fatalf("cancel changed the collection: %v", visibleNames(a))
	}
}

func TestAddValuesRecord(t *testing.T) {
	v := addValues{name: "  Taxi ", category: model.CategoryBusiness, amount: "25,5"}
	r := v.record()
	if r.Name != "Taxi" || r.Category != model.CategoryBusiness {
		t.Fatalf("record = %+v", r)
	}
	if !r.Amount.Equal(decimal.RequireFromString("25.5")) {
		t.Fatalf("amount = %s, want 25.5", r.Amount)
	}
	if r.ID == "" {
		t.Fatal("record has no ID")
	}
}

func TestHelpToggle(t *testing.T) {
	a, _ := seededApp(t, model.ModeBoth)
	a = press(t, a, "?")
	if !a.showHelp {
		t.Fatal("? did not open help")
	}
	// Any key closes help without acting.
	a = press(t, a, "b")
	if a.showHelp || a.Mode() != model.ModeBoth {
		t.Fatalf("help=%v mode=%v, want closed and unchanged", a.showHelp, a.Mode())
	}
}

func TestMouseSelectsMode(t *testing.T) {
	a, _ := seededApp(t, model.ModeBoth)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	a = m.(App)

	// First button (Personal) starts after the leading gap.
	m, _ = a.Update(tea.MouseMsg{X: 3, Y: modeBarRow, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	a = m.(App)
	if a.Mode() != model.ModePersonal {
		t.Fatalf("mode = %v, want personal", a.Mode())
	}
}

func TestViewRendersDashboard(t *testing.T) {
	a, _ := seededApp(t, model.ModeBoth)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	a = m.(App)

	out := a.View()
	for _, want := range []string{"iexpense", "Personal [p]", "Laptop", "Expenses", "memory"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if h := strings.Count(out, "\n") + 1; h != 40 {
		t.Errorf("view height = %d, want 40", h)
	}
}

func TestViewTooNarrow(t *testing.T) {
	a, _ := seededApp(t, model.ModeBoth)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	a = m.(App)
	if out := a.View(); !strings.Contains(out, "too narrow") {
		t.Fatalf("narrow view = %q", out)
	}
}
