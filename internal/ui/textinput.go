package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type TextInput struct {
	Label    string
	Text     string
	IsActive bool
	Rect
	OnSubmit func(string)
}

func NewTextInput(label string, x, y, width, height int, onSubmit func(string)) *TextInput {
	return &TextInput{
		Label:    label,
		Rect:     Rect{X: x, Y: y, Width: width, Height: height},
		OnSubmit: onSubmit,
	}
}

func (ti *TextInput) Update() {
	if !ti.IsActive {
		return
	}

	ti.Text += string(ebiten.AppendInputChars(nil))

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		if len(ti.Text) > 0 {
			ti.Text = ti.Text[:len(ti.Text)-1]
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ti.Text = ""
		ti.IsActive = false
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if ti.OnSubmit != nil {
			ti.OnSubmit(strings.TrimSpace(ti.Text))
		}
		ti.Text = ""
		ti.IsActive = false
	}
}

func (ti *TextInput) Draw(screen *ebiten.Image) {
	bgColor := color.RGBA{50, 50, 50, 255}
	if ti.IsActive {
		bgColor = color.RGBA{80, 80, 80, 255}
	}
	vector.DrawFilledRect(screen, float32(ti.X), float32(ti.Y), float32(ti.Width), float32(ti.Height), bgColor, false)
	vector.StrokeRect(screen, float32(ti.X), float32(ti.Y), float32(ti.Width), float32(ti.Height), 1, color.White, false)

	if ti.Label != "" {
		ebitenutil.DebugPrintAt(screen, ti.Label, ti.X, ti.Y-16)
	}

	displayTxt := ti.Text
	if ti.IsActive {
		displayTxt += "_" // Cursor
	}

	ebitenutil.DebugPrintAt(screen, displayTxt, ti.X+5, ti.Y+(ti.Height-16)/2)
}
