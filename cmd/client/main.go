package main

import (
	"atc-approach/internal/atc/control"
	"atc-approach/internal/config"
	"atc-approach/internal/ui"
	"errors"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/labstack/gommon/log"
)

const (
	lineHeight  = 16
	listTop     = 40
	panelMargin = 10
)

type Game struct {
	width, height int
	session       *control.Session
	logger        *log.Logger

	view   control.View
	errMsg string
	scroll int

	flightInput   *ui.TextInput
	positionInput *ui.TextInput
	codeInput     *ui.TextInput
	commandInput  *ui.TextInput
	inputs        []*ui.TextInput
	buttons       []*ui.Button
}

func NewGame(cfg *config.Config, logger *log.Logger) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := &Game{
		width:  cfg.WindowWidth,
		height: cfg.WindowHeight,
		logger: logger,
		session: control.NewSession(control.Options{
			Flights:     cfg.Flights,
			MaxMessages: cfg.MaxMessages,
			Seed:        seed,
		}, logger),
	}

	panelX := game.width*2/3 + panelMargin
	panelW := game.width/3 - 2*panelMargin

	game.flightInput = ui.NewTextInput("Flight Number", panelX, 60, panelW, 30, func(s string) {
		game.apply(game.session.Add(s))
	})
	game.positionInput = ui.NewTextInput("Position (heap view)", panelX, 190, panelW/2-5, 30, nil)
	game.codeInput = ui.NewTextInput("New AC", panelX+panelW/2+5, 190, panelW/2-5, 30, func(string) {
		game.assignApproachCode()
	})
	game.commandInput = ui.NewTextInput("Command", panelMargin, game.height-48, game.width*2/3-2*panelMargin, 30, func(cmd string) {
		game.parseAndExecuteCommand(cmd)
	})
	game.inputs = []*ui.TextInput{game.flightInput, game.positionInput, game.codeInput, game.commandInput}

	game.buttons = []*ui.Button{
		ui.NewButton("Add Flight", panelX, 100, panelW, 30, func() {
			text := game.flightInput.Text
			game.flightInput.Text = ""
			game.apply(game.session.Add(text))
		}),
		ui.NewButton("Assign Approach Code", panelX, 230, panelW, 30, game.assignApproachCode),
		ui.NewButton("View Heap", panelX, 290, panelW, 30, func() {
			game.apply(game.session.ViewHeap(), nil)
		}),
		ui.NewButton("Generate Flights", panelX, 330, panelW, 30, func() {
			game.apply(game.session.Generate(), nil)
		}),
		ui.NewButton("Next To Land", panelX, 370, panelW, 30, func() {
			_, v, err := game.session.Peek()
			game.apply(v, err)
		}),
		ui.NewButton("Land", panelX, 410, panelW, 30, func() {
			_, v, err := game.session.Land()
			game.apply(v, err)
		}),
	}

	game.apply(game.session.Generate(), nil)
	return game
}

func (g *Game) apply(v control.View, err error) {
	g.view = v
	g.errMsg = ""
	if err != nil {
		g.errMsg = userMessage(err)
		g.logger.Warnf("Operation failed: %v", err)
	}
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, control.ErrNoTraffic):
		return "There are no airplanes in the list"
	case errors.Is(err, control.ErrEmptyFlightNumber):
		return "Enter a flight number first"
	default:
		return err.Error()
	}
}

func (g *Game) assignApproachCode() {
	posText, codeText := g.positionInput.Text, g.codeInput.Text
	g.positionInput.Text, g.codeInput.Text = "", ""
	if posText == "" || codeText == "" {
		return
	}
	g.parseAndExecuteCommand("AC " + posText + " " + codeText)
}

func (g *Game) Update() error {
	g.handleInput()
	for _, in := range g.inputs {
		in.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})

	g.drawListing(screen)
	g.drawUI(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.width, g.height
}

func (g *Game) handleInput() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()

		for _, in := range g.inputs {
			in.IsActive = in.IsClicked(x, y)
		}
		for _, b := range g.buttons {
			if b.Click(x, y) {
				break
			}
		}
	}

	_, wy := ebiten.Wheel()
	if wy != 0 {
		g.scroll -= int(wy * 3)
		lines := strings.Count(g.view.Listing, "\n") + 1
		visible := (g.height - listTop - 80) / lineHeight
		g.scroll = max(0, min(g.scroll, lines-visible))
	}
}

func (g *Game) drawListing(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, "Airplanes (highest approach code first)", panelMargin, listTop-24)

	listW := g.width*2/3 - 2*panelMargin
	listH := g.height - listTop - 80
	vector.StrokeRect(screen, float32(panelMargin), float32(listTop), float32(listW), float32(listH), 1, color.RGBA{0, 100, 0, 255}, false)

	lines := strings.Split(g.view.Listing, "\n")
	visible := listH / lineHeight
	for i := 0; i < visible && g.scroll+i < len(lines); i++ {
		ebitenutil.DebugPrintAt(screen, lines[g.scroll+i], panelMargin+4, listTop+4+i*lineHeight)
	}
}

func (g *Game) drawUI(screen *ebiten.Image) {
	for _, in := range g.inputs {
		in.Draw(screen)
	}
	for _, b := range g.buttons {
		b.Draw(screen)
	}

	panelX := g.width*2/3 + panelMargin
	ebitenutil.DebugPrintAt(screen, "Flights in list: "+strconv.Itoa(g.session.Len()), panelX, 460)
	ebitenutil.DebugPrintAt(screen, g.view.Message, panelX, 490)
	ebitenutil.DebugPrintAt(screen, g.view.Details, panelX, 510)
	if g.errMsg != "" {
		vector.DrawFilledRect(screen, float32(panelX), 540, float32(g.width/3-2*panelMargin), 20, color.RGBA{255, 0, 0, 100}, false)
		ebitenutil.DebugPrintAt(screen, g.errMsg, panelX+4, 542)
	}
}

func (g *Game) parseAndExecuteCommand(cmd string) {
	if cmd == "" {
		return
	}
	v, err := g.session.ExecuteLine(cmd)
	g.apply(v, err)
	if err == nil {
		g.scroll = 0
		g.logger.Printf("Executed %s", strings.ToUpper(cmd))
	}
}

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal(err)
	}
	logger := cfg.NewLogger("client")

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("Air Traffic Control Approach Queue")
	ebiten.SetVsyncEnabled(true)

	game := NewGame(cfg, logger)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
