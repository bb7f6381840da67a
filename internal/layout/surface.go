package layout

import "io"

// Surface is the drawing primitive the engine paints on. Coordinates are in
// millimetres from the top-left corner of the page; Text places the baseline
// at y. Pages are one-based.
type Surface interface {
	AddPage()
	PageCount() int
	SetPage(n int)

	SetFont(family, style string, size float64)
	SetTextColor(c Color)
	SetFillColor(c Color)
	SetDrawColor(c Color)
	SetLineWidth(width float64)

	Text(x, y float64, s string)
	Rect(x, y, w, h float64, style string)
	Line(x1, y1, x2, y2 float64)
	// Image draws raster data; an error leaves the surface usable.
	Image(name string, data []byte, x, y, w, h float64) error

	// StringWidth measures s in the current font.
	StringWidth(s string) float64

	Output(w io.Writer) error
}

// Rect styles.
const (
	Draw     = "D"
	Fill     = "F"
	FillDraw = "FD"
)
