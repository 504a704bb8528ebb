package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/quantum-maze/internal/config"
	"github.com/vovakirdan/quantum-maze/internal/quantum"
)

func TestRenderDistribution(t *testing.T) {
	out := RenderDistribution(quantum.Outcomes{"00": 0.25, "01": 0.25, "10": 0.25, "11": 0.25}, 20)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), out)
	}
	wantOrder := []string{"00", "01", "10", "11"}
	wantDir := []string{"-> U", "-> D", "-> L", "-> R"}
	for i, line := range lines {
		if !strings.Contains(line, wantOrder[i]) || !strings.Contains(line, wantDir[i]) {
			t.Errorf("line %d = %q, want %s %s", i, line, wantOrder[i], wantDir[i])
		}
		if !strings.Contains(line, "25.0%") {
			t.Errorf("line %d = %q, want 25.0%%", i, line)
		}
	}
}

func TestRenderBloch(t *testing.T) {
	out := RenderBloch([]quantum.Bloch{{X: 1}, {Z: -1}})
	if !strings.Contains(out, "q0") || !strings.Contains(out, "q1") {
		t.Errorf("missing qubit labels:\n%s", out)
	}
	if !strings.Contains(out, "P(1)=0.50") || !strings.Contains(out, "P(1)=1.00") {
		t.Errorf("missing measurement probabilities:\n%s", out)
	}
}

func TestQubitSources(t *testing.T) {
	sources, err := QubitSources(config.DefaultMazeConfig())
	if err != nil {
		t.Fatalf("QubitSources() failed: %v", err)
	}
	if len(sources) < 2 {
		t.Fatalf("got %d sources, want both variants", len(sources))
	}

	m := NewVisualizerModel(sources, 80, 24)
	out := m.View()
	if !strings.Contains(out, "QUBITS") || !strings.Contains(out, "Bloch vectors") {
		t.Errorf("visualizer view missing sections:\n%s", out)
	}
}

func TestMenuItems(t *testing.T) {
	items := DefaultMenuItems()
	var plays, others int
	for _, it := range items {
		if it.Choice == ChoicePlay {
			plays++
			if it.GameID == "" {
				t.Errorf("play item %q has no game", it.Label)
			}
		} else {
			others++
		}
	}
	if plays < 2 || others != 3 {
		t.Errorf("got %d play items and %d others", plays, others)
	}
	if items[len(items)-1].Choice != ChoiceQuit {
		t.Error("last item should be Quit")
	}
}
