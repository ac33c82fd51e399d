package game

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikhrachel/gol-board/model"
	"github.com/sheikhrachel/gol-board/utils"
)

// RunHeadless drives the board from a ticker and draws it to out as text
// until interrupted or until the generation limit is reached
func RunHeadless(board *Board, config utils.Config, out io.Writer) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	ticker := time.NewTicker(config.TickInterval)
	defer ticker.Stop()

	displayGameInfo(out, config, board)
	board.Start()
	headlessLoop(board, config, &model.TerminalRenderer{Out: out}, ticker.C, sigChan)
	displayFinalStats(out, board)
}

func headlessLoop(
	board *Board,
	config utils.Config,
	renderer *model.TerminalRenderer,
	ticks <-chan time.Time,
	stop <-chan os.Signal,
) {
	for {
		select {
		case <-stop:
			fmt.Fprintln(renderer.Out, "\n🛑 Shutting down gracefully...")
			return
		case <-ticks:
			// one tick is one interval
			board.Advance(config.TickInterval)
		}

		if err := renderFrame(renderer, board); err != nil {
			log.Printf("render: %v", err)
			return
		}

		if config.MaxGenerations > 0 && board.Generation() >= config.MaxGenerations {
			fmt.Fprintf(renderer.Out, "\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			return
		}
	}
}

func renderFrame(renderer *model.TerminalRenderer, board *Board) error {
	if err := renderer.Clear(); err != nil {
		return err
	}
	displayGameStatus(renderer.Out, board)
	return renderer.Display(board.Grid())
}

// displayGameInfo shows the initial game information
func displayGameInfo(out io.Writer, config utils.Config, board *Board) {
	fmt.Fprintf(out, "Grid: %dx%d | Topology: %s | Tick: %v | Memory Pool: %v\n",
		config.Width, config.Height, board.Topology(), config.TickInterval, config.UseMemoryPool)
	fmt.Fprintf(out, "Initial living cells: %d\n", board.Grid().CountLivingCells())
	fmt.Fprintln(out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(out)
}

// displayGameStatus shows the current game status
func displayGameStatus(out io.Writer, board *Board) {
	var (
		grid        = board.Grid()
		livingCells = grid.CountLivingCells()
		density     = float64(livingCells) / float64(grid.GetWidth()*grid.GetHeight()) * 100
		stats       = board.Stats()
	)

	fmt.Fprintf(out, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		board.Generation(), livingCells, density, board.Status())
	fmt.Fprintf(out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())
	fmt.Fprintln(out)
}

func displayFinalStats(out io.Writer, board *Board) {
	stats := board.Stats()
	fmt.Fprintf(out, "Final stats: %d generations in %.1f seconds\n",
		board.Generation(), stats.Runtime().Seconds())
	fmt.Fprintf(out, "Average population: %.1f\n", stats.AveragePopulation)
}
