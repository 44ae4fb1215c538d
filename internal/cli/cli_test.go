package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pictolab/glyphgrid/pkg/geometry"
	"github.com/pictolab/glyphgrid/pkg/pictograph"
	"github.com/pictolab/glyphgrid/pkg/placement"
)

// captureOutput runs fn with os.Stdout redirected to a pipe and returns
// everything it printed.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()
	w.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestLetterFlags(t *testing.T) {
	tests := []struct {
		letter pictograph.Letter
		want   []string
	}{
		{"A", nil},
		{"G", []string{"beta ending"}},
		{"W-", []string{"dash family"}},
		{"Φ-", []string{"dash family", "phi/psi dash"}},
		{"Λ", []string{"lambda family"}},
		{"Ψ-", []string{"dash family", "phi/psi dash", "beta ending"}},
	}
	for _, tt := range tests {
		if got := letterFlags(tt.letter); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("letterFlags(%s) = %v, want %v", tt.letter, got, tt.want)
		}
	}
}

func TestReadPictograph(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pic.json")
	content := `{
		"letter": "A",
		"grid_mode": "diamond",
		"arrows": {
			"blue": {
				"color": "blue",
				"motion": {
					"motion_type": "pro",
					"start_loc": "n",
					"end_loc": "e",
					"start_ori": "in",
					"turns": 1.5,
					"prop_rot_dir": "cw"
				}
			}
		}
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	pic, err := readPictograph(path)
	if err != nil {
		t.Fatalf("readPictograph: %v", err)
	}
	if pic.Letter != "A" || pic.GridMode != pictograph.Diamond {
		t.Errorf("unexpected pictograph: %+v", pic)
	}
	blue, ok := pic.Arrow(pictograph.Blue)
	if !ok {
		t.Fatal("blue arrow missing")
	}
	if blue.Motion.Type != pictograph.Pro || !blue.Motion.Turns.IsHalf() {
		t.Errorf("unexpected motion: %+v", blue.Motion)
	}
}

func TestReadPictographErrors(t *testing.T) {
	if _, err := readPictograph(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for a missing file")
	}

	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte(`{broken`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := readPictograph(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestPrintResultSeparationOffsets(t *testing.T) {
	pic := &pictograph.Pictograph{Letter: "G", GridMode: pictograph.Diamond}
	result := placement.Result{
		Offsets: placement.Offsets{
			Overlap: true,
			Blue:    geometry.Point{X: -21.1, Y: 0},
			Red:     geometry.Point{X: 21.1, Y: 0},
		},
	}

	out := captureOutput(t, func() { printResult(pic, result) })
	if !strings.Contains(out, "sep blue") || !strings.Contains(out, "sep red") {
		t.Errorf("expected computed offsets in output, got:\n%s", out)
	}
	if !strings.Contains(out, "(-21.10, 0.00)") {
		t.Errorf("expected blue offset value in output, got:\n%s", out)
	}
	if strings.Contains(out, "suppressed by override") {
		t.Errorf("algorithmic separation reported as override:\n%s", out)
	}
}

func TestPrintResultSeparationOverride(t *testing.T) {
	pic := &pictograph.Pictograph{Letter: "G", GridMode: pictograph.Diamond}
	result := placement.Result{
		Offsets: placement.Offsets{Overlap: true, Override: true},
	}

	out := captureOutput(t, func() { printResult(pic, result) })
	if !strings.Contains(out, "suppressed by override") {
		t.Errorf("expected override notice in output, got:\n%s", out)
	}
	if strings.Contains(out, "sep blue") {
		t.Errorf("override must not print offsets:\n%s", out)
	}
}

func TestPrintLetter(t *testing.T) {
	out := captureOutput(t, func() {
		if err := printLetter("Ψ-"); err != nil {
			t.Errorf("printLetter: %v", err)
		}
	})
	for _, want := range []string{"dash family", "phi/psi dash", "beta ending"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got:\n%s", want, out)
		}
	}

	if err := printLetter("q"); err == nil {
		t.Error("expected error for an unknown letter")
	}
}

func TestLetterListModelNavigation(t *testing.T) {
	m := NewLetterListModel()
	if m.Cursor != 0 {
		t.Fatalf("expected cursor at 0, got %d", m.Cursor)
	}
	if len(m.Letters) != 47 {
		t.Fatalf("expected 47 letters, got %d", len(m.Letters))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m = next.(LetterListModel)
	if m.Cursor != 1 {
		t.Errorf("expected cursor at 1 after j, got %d", m.Cursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(LetterListModel)
	if m.Cursor != 0 {
		t.Errorf("expected cursor back at 0, got %d", m.Cursor)
	}

	// Moving up at the top stays put.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(LetterListModel)
	if m.Cursor != 0 {
		t.Errorf("expected cursor pinned at 0, got %d", m.Cursor)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Error("expected quit command on q")
	}
}

func TestLetterListModelScrollsPastViewport(t *testing.T) {
	m := NewLetterListModel()
	m.Height = 5
	for i := 0; i < 10; i++ {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(LetterListModel)
	}
	if m.Cursor != 10 {
		t.Fatalf("expected cursor at 10, got %d", m.Cursor)
	}
	if m.Offset != 6 {
		t.Errorf("expected offset 6 to keep the cursor visible, got %d", m.Offset)
	}
}
