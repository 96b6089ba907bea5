package graphics

import (
	stderrors "errors"
	"math"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	// defaultFontSize is used when no font size is specified.
	defaultFontSize = 16
)

// TextStyle describes how text should be rendered.
type TextStyle struct {
	Color    Color
	FontSize float64
}

// TextLayout contains measured text metrics.
type TextLayout struct {
	Text       string
	Style      TextStyle
	Size       Size
	LineHeight float64
	Lines      []string
}

// FontManager resolves font faces for text measurement.
//
// Faces are bitmap faces scaled to the requested size, so measurements are
// deterministic across platforms.
type FontManager struct {
	mu       sync.RWMutex
	faces    map[string]font.Face
	base     font.Face
	revision uint64
}

// revisions numbers font manager states across the process.
var revisions atomic.Uint64

var (
	defaultFontManager     *FontManager
	defaultFontManagerOnce sync.Once
)

// NewFontManager creates a font manager backed by the bundled 7x13 face.
func NewFontManager() *FontManager {
	return &FontManager{
		faces:    make(map[string]font.Face),
		base:     basicfont.Face7x13,
		revision: revisions.Add(1),
	}
}

// DefaultFontManager returns a shared font manager.
func DefaultFontManager() *FontManager {
	defaultFontManagerOnce.Do(func() {
		defaultFontManager = NewFontManager()
	})
	return defaultFontManager
}

// RegisterFace registers a named face that replaces the bundled one for that name.
func (m *FontManager) RegisterFace(name string, face font.Face) error {
	if name == "" {
		return stderrors.New("font name required")
	}
	if face == nil {
		return stderrors.New("font face required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.faces[name] = face
	m.revision = revisions.Add(1)
	return nil
}

// Revision identifies the manager's set of faces. It differs between
// managers and changes whenever a face is registered.
func (m *FontManager) Revision() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.revision
}

// Face resolves a face by name, falling back to the bundled face.
func (m *FontManager) Face(name string) font.Face {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if face, ok := m.faces[name]; ok {
		return face
	}
	return m.base
}

// LayoutText measures text with the named face. Lines are split on '\n'.
// maxWidth <= 0 or +Inf means unconstrained; longer lines are clipped to it.
func LayoutText(text string, style TextStyle, manager *FontManager, faceName string, maxWidth float64) (*TextLayout, error) {
	if manager == nil {
		return nil, stderrors.New("font manager required")
	}
	size := style.FontSize
	if size <= 0 {
		size = defaultFontSize
		style.FontSize = size
	}
	face := manager.Face(faceName)
	metrics := face.Metrics()
	nativeHeight := float64(metrics.Height.Round())
	if nativeHeight <= 0 {
		nativeHeight = size
	}
	scale := size / nativeHeight

	lines := strings.Split(text, "\n")
	width := 0.0
	for _, line := range lines {
		advance := font.MeasureString(face, line)
		w := float64(advance.Round()) * scale
		width = math.Max(width, w)
	}
	if maxWidth > 0 && !math.IsInf(maxWidth, 1) {
		width = math.Min(width, maxWidth)
	}
	lineHeight := nativeHeight * scale
	return &TextLayout{
		Text:       text,
		Style:      style,
		Size:       Size{Width: width, Height: lineHeight * float64(len(lines))},
		LineHeight: lineHeight,
		Lines:      lines,
	}, nil
}
