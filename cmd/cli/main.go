package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/minaorangina/hanabi/config"
	"github.com/minaorangina/hanabi/deck"
	"github.com/minaorangina/hanabi/engine"
	"github.com/minaorangina/hanabi/protocol"
	"github.com/peterh/liner"
)

func main() {
	interactive := flag.Bool("interactive", false, "prompt for commands and draw the game as tables")
	logLevel := flag.String("log-level", "", "log level (debug, info, warn, error); overrides HANABI_LOG_LEVEL")
	deal := flag.Bool("deal", false, "print a new game command for a shuffled deck and exit")
	seed := flag.Int64("seed", 0, "seed for -deal; 0 uses the clock")
	flag.Parse()

	if *deal {
		if *seed == 0 {
			*seed = time.Now().UnixNano()
		}
		d := deck.New()
		d.Shuffle(rand.New(rand.NewSource(*seed)))
		fmt.Println(protocol.NewGameLine(d))
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	if err := run(cfg, *interactive); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config.Config, interactive bool) error {
	logger := cfg.Logger()
	session := engine.NewSession(engine.SessionOpts{Logger: logger})

	if !interactive {
		return engine.Run(session, engine.NewScannerReader(os.Stdin), engine.NewTextWriter(os.Stdout))
	}

	line := liner.NewLiner()
	defer line.Close()

	fmt.Println("Start with: Start new game with deck R1 G1 ... (at least 11 cards)")
	return engine.Run(session, engine.NewPromptReader(line, "hanabi> "), engine.NewPrettyWriter(os.Stdout))
}
