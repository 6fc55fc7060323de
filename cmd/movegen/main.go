package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/pprof"
	"strings"

	"github.com/Ravenwolve/Chess/internal/board"
	"github.com/Ravenwolve/Chess/internal/console"
	"github.com/Ravenwolve/Chess/internal/storage"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	fen        = flag.String("fen", "", "start from this FEN instead of the initial position")
	depth      = flag.Int("depth", 0, "run perft to this depth and exit")
	divide     = flag.Bool("divide", false, "with -depth, print the node count of every root move")
	workers    = flag.Int("workers", 0, "goroutines for perft (0 = GOMAXPROCS)")
	useCache   = flag.Bool("cache", false, "store perft results in the data directory")
	debug      = flag.Bool("debug", false, "log moves applied in an inconsistent position")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] [command ...]\n\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "Without -depth or a command, commands are read from stdin.")
		flag.PrintDefaults()
	}
	flag.Parse()

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	board.DebugMoveValidation = *debug
	board.InitCache()

	var store *storage.Storage
	if *useCache {
		var err error
		store, err = storage.NewStorage()
		if err != nil {
			log.Fatal("could not open perft store: ", err)
		}
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, console.New(os.Stdout, store, *workers)); err != nil {
		log.Printf("movegen: %v", err)
		// os.Exit skips deferred calls
		stop()
		if store != nil {
			store.Close()
		}
		pprof.StopCPUProfile()
		os.Exit(1)
	}
}

func run(ctx context.Context, c *console.Console) error {
	if *fen != "" {
		if err := c.Execute(ctx, "position fen "+*fen); err != nil {
			return err
		}
	}

	if *depth > 0 {
		cmd := "perft"
		if *divide {
			cmd = "divide"
		}
		return c.Execute(ctx, fmt.Sprintf("%s %d", cmd, *depth))
	}

	if flag.NArg() > 0 {
		return c.Execute(ctx, strings.Join(flag.Args(), " "))
	}

	return c.Run(ctx, os.Stdin)
}
