package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	os.Exit(start(os.Args[1:]))
}

// start runs the game and returns the process exit code. Messages are printed
// only after the renderer is closed so they never land on a live screen.
func start(args []string) int {
	config, err := parseArgs(args)
	if err != nil {
		fmt.Println("Error:", err)
		return 2
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	renderer, columns, err := newRenderer(config, stop)
	if err != nil {
		fmt.Println("Error:", err)
		return 1
	}

	board, err := newBoard(config, columns)
	if err != nil {
		closeRenderer(renderer)
		fmt.Println("Error:", err)
		if errors.Is(err, model.ErrConfig) {
			return 2
		}
		return 1
	}

	reason, err := run(ctx, config, board, renderer)
	closeRenderer(renderer)
	if reason != "" {
		fmt.Println(reason)
	}
	if err != nil {
		fmt.Println("Error:", err)
		return 1
	}
	fmt.Println("Life is over")
	return 0
}

func closeRenderer(renderer model.Renderer) {
	if err := renderer.Close(); err != nil {
		fmt.Println("Error closing renderer:", err)
	}
}

func newBoard(config utils.Config, columns func() (int, error)) (*model.Board, error) {
	dimension, err := resolveDimension(config, columns)
	if err != nil {
		return nil, err
	}
	return model.New(dimension, boardOptions(config)...)
}

// run draws and advances the board until the context ends or the generation limit
// is hit. It returns why it stopped at the limit, or the error that ended it early.
func run(ctx context.Context, config utils.Config, board *model.Board, renderer model.Renderer) (string, error) {
	var (
		stats         = utils.NewStats()
		history       = utils.NewHistory(config.StagnationWindow)
		lastFrameTime = time.Now()
		timer         = time.NewTimer(0)
	)
	defer timer.Stop()

	for {
		frameStart := time.Now()
		stats.Update(board.Generation(), board.Population(), frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart
		stagnant := history.Record(board.Fingerprint())

		// Only the text renderer can fail to clear, and it draws on plain stdout
		if err := renderer.Clear(); err != nil {
			fmt.Println("Error clearing terminal:", err)
		}
		if err := renderer.Display(board); err != nil {
			return "", err
		}
		if config.Renderer == utils.RendererText {
			displayGameStatus(board, gameStatus(board.Population(), stagnant), stats)
		}

		if config.MaxGenerations > 0 && board.Generation() >= config.MaxGenerations {
			return fmt.Sprintf("Reached maximum generations limit (%d)", config.MaxGenerations), nil
		}

		board.Step()

		// Wait before next frame
		timer.Reset(config.FrameRate)
		select {
		case <-ctx.Done():
			return "", nil
		case <-timer.C:
		}
	}
}
