package main

import (
	"flag"
	"log"
	"os"

	"cell-smoother/internal/app"
	"cell-smoother/internal/core"
	_ "cell-smoother/internal/sims/smoother"
	"cell-smoother/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg, err := app.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
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

	host := term.NewHost(sim, cfg.TPS, cfg.Seed)
	host.Limit = cfg.Generations
	host.UntilStable = cfg.UntilStable

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	err = host.Run(screen)
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("%s: %d steps", sim.Name(), host.Steps())
}
