package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"cell-smoother/internal/app"
	"cell-smoother/internal/core"
	_ "cell-smoother/internal/sims/smoother"
)

type stableReporter interface {
	Stable() bool
}

func main() {
	fs := flag.NewFlagSet("smoother-run", flag.ExitOnError)
	every := fs.Int("every", 0, "log parameters every N generations (0 = only at the end)")
	printGrid := fs.Bool("print", false, "print the final grid")
	cfg, err := app.Parse(fs, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Generations <= 0 && !cfg.UntilStable {
		log.Fatal("refusing to run forever: pass -gens N and/or -until-stable")
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %v)", cfg.Sim, core.SimNames())
	}
	sim, err := factory(cfg.Options)
	if err != nil {
		log.Fatalf("create %s: %v", cfg.Sim, err)
	}
	sim.Reset(cfg.Seed)

	stable, _ := sim.(stableReporter)
	start := time.Now()
	steps := 0
	for cfg.Generations <= 0 || steps < cfg.Generations {
		sim.Step()
		steps++
		if *every > 0 && steps%*every == 0 {
			logParameters(sim)
		}
		if cfg.UntilStable && stable != nil && stable.Stable() {
			log.Printf("fixed point reached after %d generations", steps)
			break
		}
	}
	elapsed := time.Since(start)

	logParameters(sim)
	log.Printf("%d generations in %v (%.1f gen/s)", steps, elapsed, float64(steps)/elapsed.Seconds())

	if *printGrid {
		if s, ok := sim.(fmt.Stringer); ok {
			fmt.Println(s.String())
		}
	}
}

func logParameters(sim core.Sim) {
	p, ok := sim.(core.ParameterProvider)
	if !ok {
		return
	}
	for _, line := range p.Parameters().Lines() {
		log.Print(line)
	}
}
