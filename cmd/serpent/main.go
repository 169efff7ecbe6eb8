package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/serpent/audio"
	"github.com/lixenwraith/serpent/engine"
	"github.com/lixenwraith/serpent/input"
	"github.com/lixenwraith/serpent/parameter"
	"github.com/lixenwraith/serpent/render"
)

var (
	heightFlag = flag.Int("height", parameter.DefaultHeight, "Board height in cells")
	widthFlag  = flag.Int("width", parameter.DefaultWidth, "Board width in cells")
	lengthFlag = flag.Int("length", parameter.DefaultLength, "Starting snake length")
	speedFlag  = flag.Float64("speed", parameter.DefaultSpeedFloat, "Steps per second")
	seedFlag   = flag.Int64("seed", 0, "Food placement seed (0 = random)")
	quietFlag  = flag.Bool("quiet", false, "Disable sound")
)

func main() {
	flag.Parse()

	if *speedFlag < parameter.MinSpeedFloat || *speedFlag > parameter.MaxSpeedFloat {
		fmt.Fprintf(os.Stderr, "speed %.1f out of range [%.1f, %.1f]\n",
			*speedFlag, parameter.MinSpeedFloat, parameter.MaxSpeedFloat)
		os.Exit(1)
	}

	session, err := engine.NewSession(engine.Config{
		Height: *heightFlag,
		Width:  *widthFlag,
		Length: *lengthFlag,
		Seed:   *seedFlag,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up game: %v\n", err)
		os.Exit(1)
	}

	// Audio before the screen so a missing device is reported on a
	// usable terminal. Silence is a fallback, never an abort.
	var sounds engine.Sounds = engine.NopSounds{}
	if !*quietFlag {
		if player, err := audio.NewPlayer(); err == nil {
			sounds = player
			defer player.Close()
		} else {
			fmt.Fprintf(os.Stderr, "Audio initialization failed: %v (continuing without sound)\n", err)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before the trace prints, or
	// the report is unreadable in raw mode
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "SERPENT CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	loop := engine.NewLoop(screen, session, render.NewView(screen), input.DefaultKeyTable(), sounds, *speedFlag)
	runErr := loop.Run()
	screen.Fini()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Game loop failed: %v\n", runErr)
		os.Exit(1)
	}

	fmt.Println("Game Over")
	fmt.Println("Your final length:", session.Length())
	fmt.Println("Food Eaten:", session.FoodEaten())
}
