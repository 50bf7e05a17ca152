package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"cell-smoother/internal/sims/smoother"
)

type scenario struct {
	size     int
	maxValue int
	seed     int64
}

func (s scenario) String() string {
	return fmt.Sprintf("%dx%d max=%d seed=%d", s.size, s.size, s.maxValue, s.seed)
}

type scenarioResult struct {
	scenario scenario
	result   smoother.ConvergenceResult
	err      error
}

func main() {
	steps := flag.Int("steps", 2000, "generation cap per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seeds := flag.Int("seeds", 4, "seeds per size/value combination")
	flag.Parse()

	sizeOptions := []int{8, 16, 32, 64}
	maxOptions := []int{4, 16, 64, 256}

	var sets []scenario
	for _, size := range sizeOptions {
		for _, maxValue := range maxOptions {
			for s := 1; s <= *seeds; s++ {
				sets = append(sets, scenario{size: size, maxValue: maxValue, seed: int64(s)})
			}
		}
	}

	fmt.Printf("Sweeping %d scenarios (%d workers, cap %d steps)\n", len(sets), *workers, *steps)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(sc, *steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range sets {
			jobs <- sc
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	unstable := 0
	for res := range results {
		if res.err != nil {
			fmt.Printf("%s: %v\n", res.scenario, res.err)
			continue
		}
		if !res.result.Stable {
			unstable++
		}
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool {
		a, b := all[i].scenario, all[j].scenario
		if a.size != b.size {
			return a.size < b.size
		}
		if a.maxValue != b.maxValue {
			return a.maxValue < b.maxValue
		}
		return a.seed < b.seed
	})

	fmt.Printf("\n%-28s %8s %7s %10s %8s\n", "scenario", "steps", "stable", "changes", "spread")
	for _, res := range all {
		r := res.result
		fmt.Printf("%-28s %8d %7v %10d %4d->%-3d\n", res.scenario, r.Steps, r.Stable, r.TotalChanges, r.InitialSpread, r.FinalSpread)
	}
	fmt.Printf("\n%d scenarios in %s, %d hit the step cap\n", len(all), time.Since(start).Round(time.Millisecond), unstable)
}

func runScenario(sc scenario, steps int) scenarioResult {
	cfg := smoother.DefaultConfig()
	cfg.Width = sc.size
	cfg.Height = sc.size
	cfg.MaxValue = sc.maxValue
	cfg.Seed = sc.seed
	// scenarios already run in parallel
	cfg.Workers = 1

	res, err := smoother.Converge(cfg, steps)
	return scenarioResult{scenario: sc, result: res, err: err}
}
