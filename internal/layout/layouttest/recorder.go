// Package layouttest provides a recording layout.Surface for tests.
package layouttest

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nurpe/dealer-docs/internal/layout"
)

// ErrImage is returned by Image when FailImages is set.
var ErrImage = errors.New("layouttest: image rejected")

type Op struct {
	Page  int
	Kind  string
	X, Y  float64
	W, H  float64
	Text  string
	Style string
	Font  string
	Fill  layout.Color
}

// Recorder records every drawing call per page. Text width is approximated
// from the rune count and the current font size.
type Recorder struct {
	FailImages bool
	ImageCalls int

	Ops     []Op
	pages   int
	current int
	font    string
	size    float64
	fill    layout.Color
}

func NewRecorder() *Recorder {
	return &Recorder{size: 10}
}

func (r *Recorder) AddPage() {
	r.pages++
	r.current = r.pages
}

func (r *Recorder) PageCount() int { return r.pages }

func (r *Recorder) SetPage(n int) {
	if n >= 1 && n <= r.pages {
		r.current = n
	}
}

func (r *Recorder) SetFont(family, style string, size float64) {
	r.font = family + ":" + style
	r.size = size
}

func (r *Recorder) SetTextColor(layout.Color) {}

func (r *Recorder) SetFillColor(c layout.Color) { r.fill = c }

func (r *Recorder) SetDrawColor(layout.Color) {}

func (r *Recorder) SetLineWidth(float64) {}

func (r *Recorder) Text(x, y float64, s string) {
	r.Ops = append(r.Ops, Op{Page: r.current, Kind: "text", X: x, Y: y, Text: s, Font: r.font})
}

func (r *Recorder) Rect(x, y, w, h float64, style string) {
	r.Ops = append(r.Ops, Op{Page: r.current, Kind: "rect", X: x, Y: y, W: w, H: h, Style: style, Fill: r.fill})
}

func (r *Recorder) Line(x1, y1, x2, y2 float64) {
	r.Ops = append(r.Ops, Op{Page: r.current, Kind: "line", X: x1, Y: y1, W: x2 - x1, H: y2 - y1})
}

func (r *Recorder) Image(name string, data []byte, x, y, w, h float64) error {
	r.ImageCalls++
	if r.FailImages {
		return ErrImage
	}
	r.Ops = append(r.Ops, Op{Page: r.current, Kind: "image", X: x, Y: y, W: w, H: h, Text: name})
	return nil
}

func (r *Recorder) StringWidth(s string) float64 {
	return float64(len([]rune(s))) * r.size * 0.18
}

// Output writes a line per recorded operation.
func (r *Recorder) Output(w io.Writer) error {
	for _, op := range r.Ops {
		if _, err := fmt.Fprintf(w, "%d %s %.2f %.2f %.2f %.2f %q\n", op.Page, op.Kind, op.X, op.Y, op.W, op.H, op.Text); err != nil {
			return err
		}
	}
	return nil
}

// Texts returns the text drawn on page, or on every page when page is 0.
func (r *Recorder) Texts(page int) []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == "text" && (page == 0 || op.Page == page) {
			out = append(out, op.Text)
		}
	}
	return out
}

// AllText joins every text run with newlines.
func (r *Recorder) AllText() string {
	return strings.Join(r.Texts(0), "\n")
}

func (r *Recorder) Contains(substr string) bool {
	return strings.Contains(r.AllText(), substr)
}

// PageOf returns the page where text first appears, or 0.
func (r *Recorder) PageOf(text string) int {
	for _, op := range r.Ops {
		if op.Kind == "text" && strings.Contains(op.Text, text) {
			return op.Page
		}
	}
	return 0
}

func (r *Recorder) Find(kind string, match func(Op) bool) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind && (match == nil || match(op)) {
			out = append(out, op)
		}
	}
	return out
}
