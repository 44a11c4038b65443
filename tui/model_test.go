package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hoijui/rdfconvert/internal/planapp"
)

func testPlan() *planapp.Plan {
	return &planapp.Plan{
		From: "ttl",
		To:   "nt",
		Entries: []planapp.Entry{
			{InputPath: "/data/a/x.ttl", TargetPath: "/out/a/x.nt", Statements: 3, Subjects: 2},
			{InputPath: "/data/b/y.ttl", TargetPath: "/out/b/y.nt", Statements: 1, Subjects: 1},
		},
	}
}

func TestLoadPlanCmd(t *testing.T) {
	cmd := loadPlanCmd(func() (*planapp.Plan, error) { return testPlan(), nil })
	msg, ok := cmd().(planLoadedMsg)
	if !ok {
		t.Fatalf("expected planLoadedMsg, got %T", cmd())
	}
	if msg.err != nil {
		t.Fatalf("load error: %v", msg.err)
	}
	if len(msg.plan.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(msg.plan.Entries))
	}
}

func TestPlanLoadedEntersListState(t *testing.T) {
	m := NewModel(func() (*planapp.Plan, error) { return testPlan(), nil })
	updated, _ := m.Update(planLoadedMsg{plan: testPlan()})
	model := updated.(Model)
	if model.state != stateList {
		t.Fatalf("state = %v, want stateList", model.state)
	}
	if len(model.filtered) != 2 {
		t.Fatalf("filtered = %d entries", len(model.filtered))
	}
	if !strings.Contains(model.View(), "Conversion Plan") {
		t.Fatalf("view missing title: %q", model.View())
	}
}

func TestLoadErrorQuits(t *testing.T) {
	m := NewModel(func() (*planapp.Plan, error) { return nil, errors.New("boom") })
	updated, cmd := m.Update(planLoadedMsg{err: errors.New("boom")})
	model := updated.(Model)
	if model.err == nil {
		t.Fatalf("expected error recorded")
	}
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if !strings.Contains(model.View(), "boom") {
		t.Fatalf("view missing error: %q", model.View())
	}
}

func TestEnterOpensDetailAndEscReturns(t *testing.T) {
	m := NewModel(func() (*planapp.Plan, error) { return testPlan(), nil })
	updated, _ := m.Update(planLoadedMsg{plan: testPlan()})
	model := updated.(Model)

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(Model)
	if model.state != stateDetail {
		t.Fatalf("state = %v, want stateDetail", model.state)
	}
	if !strings.Contains(model.View(), "Planned Conversion") {
		t.Fatalf("detail view missing header: %q", model.View())
	}

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	model = updated.(Model)
	if model.state != stateList {
		t.Fatalf("state after esc = %v, want stateList", model.state)
	}
}

func TestRenderEntryDetail(t *testing.T) {
	entry := planapp.Entry{
		InputPath:  "/data/x.ttl",
		Statements: 2,
		Subjects:   1,
		Sample:     []string{"<http://example.org/s> <http://example.org/p> <http://example.org/o>"},
	}
	text := renderEntryDetail(entry, 78)
	if !strings.Contains(text, "(stdout)") {
		t.Fatalf("detail missing stdout target: %q", text)
	}
	if !strings.Contains(text, "example.org") {
		t.Fatalf("detail missing sample statement: %q", text)
	}

	broken := planapp.Entry{InputPath: "/data/bad.ttl", Problem: "parse failure: bad syntax"}
	text = renderEntryDetail(broken, 78)
	if !strings.Contains(text, "bad syntax") {
		t.Fatalf("detail missing problem: %q", text)
	}
}
