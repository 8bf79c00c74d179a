package ring

import (
	"image/color"
	"math"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"pomotick/internal/ui/apptheme"
)

const (
	segmentCount = 120
	ringPadding  = float32(20)
	minSide      = float32(250)
	dotRadius    = float32(8)
)

// Widget is a circular progress ring with a countdown label in the center
// and a marker dot travelling along the arc.
type Widget struct {
	widget.BaseWidget

	mu       sync.Mutex
	fraction float64
	label    string
}

// New creates an empty ring showing the given label.
func New(label string) *Widget {
	ring := &Widget{label: label}
	ring.ExtendBaseWidget(ring)
	return ring
}

// SetProgress updates the filled fraction of the ring, clamped to [0, 1].
func (ring *Widget) SetProgress(fraction float64) {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	ring.mu.Lock()
	ring.fraction = fraction
	ring.mu.Unlock()
	ring.Refresh()
}

// SetLabel updates the center countdown text.
func (ring *Widget) SetLabel(label string) {
	ring.mu.Lock()
	ring.label = label
	ring.mu.Unlock()
	ring.Refresh()
}

// CreateRenderer builds the canvas objects for the ring.
func (ring *Widget) CreateRenderer() fyne.WidgetRenderer {
	track := canvas.NewCircle(color.Transparent)
	track.StrokeColor = apptheme.Track
	track.StrokeWidth = 10

	segments := make([]*canvas.Line, segmentCount)
	for index := range segments {
		line := canvas.NewLine(apptheme.Accent)
		line.StrokeWidth = 8
		line.Hide()
		segments[index] = line
	}

	dot := canvas.NewCircle(apptheme.Accent)

	label := canvas.NewText(ring.label, theme.Color(theme.ColorNameForeground))
	label.Alignment = fyne.TextAlignCenter
	label.TextSize = 30
	label.TextStyle = fyne.TextStyle{Bold: true}

	return &ringRenderer{
		ring:     ring,
		track:    track,
		segments: segments,
		dot:      dot,
		label:    label,
	}
}

type ringRenderer struct {
	ring     *Widget
	track    *canvas.Circle
	segments []*canvas.Line
	dot      *canvas.Circle
	label    *canvas.Text
	size     fyne.Size
}

func (renderer *ringRenderer) Layout(size fyne.Size) {
	renderer.size = size

	side := size.Width
	if size.Height < side {
		side = size.Height
	}
	diameter := side - ringPadding*2
	if diameter < 0 {
		diameter = 0
	}
	left := (size.Width - diameter) / 2
	top := (size.Height - diameter) / 2

	renderer.track.Position1 = fyne.NewPos(left, top)
	renderer.track.Position2 = fyne.NewPos(left+diameter, top+diameter)

	radius := diameter / 2
	centerX := left + radius
	centerY := top + radius

	// Segments start at twelve o'clock and run clockwise.
	for index, line := range renderer.segments {
		fromAngle := angleFor(index)
		toAngle := angleFor(index + 1)
		line.Position1 = pointOnCircle(centerX, centerY, radius, fromAngle)
		line.Position2 = pointOnCircle(centerX, centerY, radius, toAngle)
	}

	renderer.label.Move(fyne.NewPos(0, centerY-renderer.label.TextSize/2))
	renderer.label.Resize(fyne.NewSize(size.Width, renderer.label.TextSize+8))

	renderer.positionDot(centerX, centerY, radius)
}

func (renderer *ringRenderer) MinSize() fyne.Size {
	return fyne.NewSize(minSide, minSide)
}

func (renderer *ringRenderer) Refresh() {
	renderer.ring.mu.Lock()
	fraction := renderer.ring.fraction
	label := renderer.ring.label
	renderer.ring.mu.Unlock()

	visible := int(math.Round(fraction * segmentCount))
	for index, line := range renderer.segments {
		if index < visible {
			line.Show()
		} else {
			line.Hide()
		}
	}

	renderer.label.Text = label
	renderer.label.Color = theme.Color(theme.ColorNameForeground)
	renderer.Layout(renderer.size)

	renderer.track.Refresh()
	for _, line := range renderer.segments {
		line.Refresh()
	}
	renderer.dot.Refresh()
	renderer.label.Refresh()
}

func (renderer *ringRenderer) Objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, len(renderer.segments)+3)
	objects = append(objects, renderer.track)
	for _, line := range renderer.segments {
		objects = append(objects, line)
	}
	objects = append(objects, renderer.dot, renderer.label)
	return objects
}

func (renderer *ringRenderer) Destroy() {}

func (renderer *ringRenderer) positionDot(centerX, centerY, radius float32) {
	renderer.ring.mu.Lock()
	fraction := renderer.ring.fraction
	renderer.ring.mu.Unlock()

	angle := -math.Pi/2 + fraction*2*math.Pi
	dotX := centerX + radius*float32(math.Cos(angle))
	dotY := centerY + radius*float32(math.Sin(angle))
	renderer.dot.Position1 = fyne.NewPos(dotX-dotRadius, dotY-dotRadius)
	renderer.dot.Position2 = fyne.NewPos(dotX+dotRadius, dotY+dotRadius)
}

func angleFor(index int) float64 {
	return -math.Pi/2 + (float64(index)/segmentCount)*2*math.Pi
}

func pointOnCircle(centerX, centerY, radius float32, angle float64) fyne.Position {
	return fyne.NewPos(
		centerX+radius*float32(math.Cos(angle)),
		centerY+radius*float32(math.Sin(angle)),
	)
}
