package main

import (
	"context"
	"fmt"
	"time"

	"github.com/lifegrid/golife/model"
	"github.com/lifegrid/golife/utils"
)

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (
	*model.Grid,
	*model.GridPool,
	*model.TerminalRenderer,
	*utils.Stats,
) {
	pool := model.NewGridPool()
	grid := model.RandomGrid(config.Width, config.Height)
	renderer := &model.TerminalRenderer{}
	stats := utils.NewStats()

	return grid, pool, renderer, stats
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid *model.Grid) {
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		grid.GetWidth(), grid.GetHeight(), grid.CountLiveCells())
	fmt.Printf("Frame rate: %v | Max generations: %d\n",
		config.FrameRate, config.MaxGenerations)
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// runGameLoop drives the simulation until the generation limit, an error, or
// context cancellation. The grid is owned by this goroutine only.
func runGameLoop(
	ctx context.Context,
	config utils.Config,
	grid *model.Grid,
	pool *model.GridPool,
	renderer *model.TerminalRenderer,
	stats *utils.Stats,
) error {
	var (
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
	)

	for {
		frameStart := time.Now()
		renderer.Clear()

		// Update game state
		livingCells, density, status, isStagnant := updateGameState(grid, generation, lastFrameTime, stats)
		lastFrameTime = frameStart

		// Update stagnation counter
		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		// Display current status
		displayGameStatus(generation, livingCells, density, status, stats, lastRestartGen)
		renderer.Display(grid)

		// Check for max generations limit
		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			fmt.Printf("\nReached maximum generations limit (%d)\n", config.MaxGenerations)
			return nil
		}

		// Check restart conditions
		shouldRestart, restartReason := checkRestartConditions(livingCells, stagnantCount, generation, config)

		if shouldRestart && config.AutoRestart {
			fmt.Printf("Restarting due to %s...\n", restartReason)
			grid = restartGame(config, grid, pool)
			lastRestartGen = generation
			stagnantCount = 0
		} else if stagnantCount >= 2 && stagnantCount < config.StagnationThreshold {
			// Inject some life to try to break the stagnation
			grid.InjectRandomLife(config.InjectionCount)
		}

		// Calculate next generation
		grid.NextGeneration()
		generation++

		// Wait before next frame
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(config.FrameRate):
		}
	}
}

// updateGameState updates the game state and returns status information
func updateGameState(
	grid *model.Grid,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (int, float64, string, bool) {
	livingCells := grid.CountLiveCells()
	density := 0.0
	if cellCount := grid.GetWidth() * grid.GetHeight(); cellCount > 0 {
		density = float64(livingCells) / float64(cellCount) * 100
	}

	// Update performance stats
	frameDuration := time.Since(lastFrameTime)
	stats.Update(generation, livingCells, frameDuration)

	// Update history for stagnation detection
	grid.UpdateHistory()

	// Check for stagnation
	isStagnant := grid.IsStagnant()

	// Display status
	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	generation, livingCells int,
	density float64,
	status string,
	stats *utils.Stats,
	lastRestartGen int,
) {
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		generation, livingCells, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())

	// Show time since last restart
	if generation > lastRestartGen {
		fmt.Printf("Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(
	livingCells, stagnantCount, generation int,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if generation > 0 && generation%200 == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame recycles the old grid through the pool and reseeds a fresh one
func restartGame(config utils.Config, old *model.Grid, pool *model.GridPool) *model.Grid {
	model.GridToPool(old, pool)

	grid := pool.Get(config.Width, config.Height)
	grid.Randomize(config.RandomDensity)

	fmt.Printf("New board seeded. Living cells: %d\n", grid.CountLiveCells())
	time.Sleep(1 * time.Second)

	return grid
}
