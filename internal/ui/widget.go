package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type Rect struct {
	X, Y          int
	Width, Height int
}

// IsClicked checks if the mouse click is within the bounds
func (r Rect) IsClicked(mouseX, mouseY int) bool {
	return mouseX >= r.X && mouseX <= r.X+r.Width &&
		mouseY >= r.Y && mouseY <= r.Y+r.Height
}

type Button struct {
	Text string
	Rect
	OnClick func()
}

func NewButton(text string, x, y, width, height int, onClick func()) *Button {
	return &Button{
		Text:    text,
		Rect:    Rect{X: x, Y: y, Width: width, Height: height},
		OnClick: onClick,
	}
}

// Click fires OnClick when (x, y) is on the button and reports whether it did.
func (b *Button) Click(x, y int) bool {
	if !b.IsClicked(x, y) {
		return false
	}
	if b.OnClick != nil {
		b.OnClick()
	}
	return true
}

func (b *Button) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), color.RGBA{0, 70, 120, 255}, false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), 1, color.RGBA{100, 100, 255, 255}, false)
	ebitenutil.DebugPrintAt(screen, b.Text, b.X+8, b.Y+(b.Height-16)/2)
}
