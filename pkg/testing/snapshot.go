package testing

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/panes/pkg/layout"
	"github.com/go-drift/panes/pkg/renderer"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the layout tree and paint operations of one frame.
type Snapshot struct {
	Layout *LayoutNode   `yaml:"layout"`
	Ops    []renderer.Op `yaml:"ops,omitempty"`
}

// LayoutNode is a node of the serialized layout tree in absolute coordinates.
type LayoutNode struct {
	Bounds   [4]float64    `yaml:"bounds,flow"`
	Children []*LayoutNode `yaml:"children,omitempty"`
}

// CaptureSnapshot captures the current layout and draws one frame.
func (t *Tester[M]) CaptureSnapshot() *Snapshot {
	if !t.mounted {
		return &Snapshot{}
	}
	return &Snapshot{
		Layout: captureLayout(t.Layout()),
		Ops:    t.Draw(),
	}
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When PANES_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("PANES_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: PANES_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}
	actual, err := s.Marshal()
	if err != nil {
		t.Fatalf("failed to marshal snapshot: %v", err)
		return
	}
	if diff := textDiff(expected, actual); diff != "" {
		t.Errorf("snapshot mismatch: %s (-expected +actual)\n%s\n\nTo update: PANES_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := s.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between this snapshot and other, or an empty
// string if they serialize identically.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, err := s.Marshal()
	if err != nil {
		return err.Error()
	}
	b, err := other.Marshal()
	if err != nil {
		return err.Error()
	}
	return textDiff(b, a)
}

// Marshal serializes the snapshot as YAML.
func (s *Snapshot) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func captureLayout(l layout.Layout) *LayoutNode {
	b := l.Bounds()
	node := &LayoutNode{Bounds: [4]float64{b.Left, b.Top, b.Width(), b.Height()}}
	for _, child := range l.Children() {
		node.Children = append(node.Children, captureLayout(child))
	}
	return node
}

func textDiff(expected, actual []byte) string {
	if bytes.Equal(expected, actual) {
		return ""
	}
	return cmp.Diff(strings.Split(string(expected), "\n"), strings.Split(string(actual), "\n"))
}
