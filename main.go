package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/stvsmth/conway-life/model"
	"github.com/stvsmth/conway-life/render"
	"github.com/stvsmth/conway-life/utils"
)

const defaultConfigFile = "config.json"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "conway-life: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	config, err := parseConfig(args)
	if err != nil {
		return err
	}
	if err = config.Validate(); err != nil {
		return err
	}

	grid, err := buildGrid(config)
	if err != nil {
		return err
	}

	game := NewGame(grid, render.NewTerminal(), config)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The simulation stays on one goroutine; the group's only other member
	// watches for SIGINT/SIGTERM so Ctrl-C rides the same cancellation
	// path as the quit key.
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)

		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
		return nil
	})
	eg.Go(func() error {
		defer cancel()
		return game.Run(ctx)
	})

	if err = eg.Wait(); err != nil {
		return err
	}

	fmt.Printf("ran %d generations in %.1fs (avg population %.1f)\n",
		game.Generations(),
		time.Since(game.Stats().StartTime).Seconds(),
		game.Stats().AveragePopulation)
	return nil
}

/*
parseConfig layers defaults, the JSON config file, then flags, so flags
always win. The arguments are parsed twice: a throwaway FlagSet finds
-config first, then the real one runs against the file-loaded values.
*/
func parseConfig(args []string) (utils.Config, error) {
	peek := flag.NewFlagSet("conway-life", flag.ContinueOnError)
	peek.SetOutput(io.Discard)
	configPath := peek.String("config", defaultConfigFile, "")
	throwaway := utils.DefaultConfig()
	throwaway.Bind(peek)
	_ = peek.Parse(args)

	config, err := utils.LoadConfig(*configPath, utils.DefaultConfig())
	if err != nil {
		return config, err
	}

	fs := flag.NewFlagSet("conway-life", flag.ExitOnError)
	fs.String("config", *configPath, "JSON config file")
	config.Bind(fs)
	if err = fs.Parse(args); err != nil {
		return config, err
	}
	return config, nil
}

// buildGrid seeds from the pattern file when one is given, otherwise from
// a random fill at the configured density.
func buildGrid(config utils.Config) (*model.Grid, error) {
	if config.PatternFile != "" {
		seed, err := model.LoadPattern(config.PatternFile)
		if err != nil {
			return nil, err
		}
		return model.New(config.Rows, config.Cols, seed)
	}

	seed := config.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	return model.NewRandom(config.Rows, config.Cols, config.RandomDensity, rng)
}
