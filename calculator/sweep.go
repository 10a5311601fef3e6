package calculator

import (
	"sync"

	"splinther/model"
)

// SweepResult pairs one sweep configuration with its outcome.
type SweepResult struct {
	Index   int
	Config  model.ReactorConfig
	Results model.Results
	Err     error
}

// Sweep runs a batch of independent configurations across a pool of
// workers and returns their outcomes in input order. A failing
// configuration only fails its own slot. workers <= 0 takes the settings
// default. Safe because each pipeline run is a pure function of its
// configuration.
func Sweep(configs []model.ReactorConfig, mode model.Mode, workers int) []SweepResult {
	if workers <= 0 {
		workers = calSettings.Workers
	}
	if workers > len(configs) {
		workers = len(configs)
	}

	out := make([]SweepResult, len(configs))
	tasks := make(chan int, len(configs))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range tasks {
				res, err := NewCalculator(configs[i], mode).Calculate()
				out[i] = SweepResult{Index: i, Config: configs[i], Results: res, Err: err}
			}
		}()
	}
	for i := range configs {
		tasks <- i
	}
	close(tasks)
	wg.Wait()

	return out
}
