package main

import (
	"atc-approach/internal/atc/control"
	"atc-approach/internal/config"
	"bufio"
	"io"
	"os"
	"strings"
	"time"

	"github.com/labstack/gommon/color"
	"github.com/labstack/gommon/log"
)

const usage = `Commands:
  ADD <Flight>          add a flight with random distance and elevation
  GEN                   replace the list with freshly generated flights
  PEEK                  show the next plane to land
  LAND                  remove the next plane to land
  AC <Position> <Code>  raise the approach code at a heap view position
  HEAP                  show the list in heap order
  QUIT`

func printView(out *color.Color, v control.View) {
	if v.Listing != "" {
		out.Println(v.Listing)
	}
	if v.Message != "" {
		out.Println(out.Cyan(v.Message, color.B))
	}
	if v.Details != "" {
		out.Println(out.Grey(v.Details))
	}
}

func run(in io.Reader, session *control.Session, out *color.Color) {
	printView(out, session.Generate())
	out.Println(out.Grey(usage))

	scanner := bufio.NewScanner(in)
	for {
		out.Print(out.Green("atc> "))
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "quit") || strings.EqualFold(line, "q") {
			return
		}

		v, err := session.ExecuteLine(line)
		if err != nil {
			out.Println(out.Red(err.Error()))
			if v.Message != "" {
				out.Println(out.Yellow(v.Message))
			}
			continue
		}
		printView(out, v)
	}
}

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal(err)
	}
	logger := cfg.NewLogger("console")
	logger.SetOutput(os.Stderr)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	session := control.NewSession(control.Options{
		Flights:     cfg.Flights,
		MaxMessages: cfg.MaxMessages,
		Seed:        seed,
	}, logger)

	out := color.New()
	run(os.Stdin, session, out)
	out.Println("Good day.")
}
