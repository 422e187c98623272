package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/sim"
)

var (
	flagSimTicks    int
	flagSimRealtime bool
	flagSimRender   bool
	flagSimWidth    int
	flagSimHeight   int
)

var simCmd = &cobra.Command{
	Use:   "sim <game>",
	Short: "Run a game headless and print the session summary",
	Long: `Run a game without a terminal UI. The session is started automatically
and receives no other input, so the run is fully determined by --seed.

By default ticks are stepped as fast as possible. With --realtime they are
delivered by the fixed-rate scheduler at --fps, which also lets wall-clock
timers (whack, bayam) run out.

Examples:
  arcade sim dodge --seed 1
  arcade sim pong --ticks 10000 --render
  arcade sim whack --realtime --ticks 2000 --log-level debug`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	addGameFlags(simCmd)
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Maximum number of ticks to run")
	simCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Pace ticks at --fps instead of running flat out")
	simCmd.Flags().BoolVar(&flagSimRender, "render", false, "Print the final frame")
	simCmd.Flags().IntVar(&flagSimWidth, "width", 80, "Frame width for --render")
	simCmd.Flags().IntVar(&flagSimHeight, "height", 24, "Frame height for --render")
}

func runSim(cmd *cobra.Command, args []string) error {
	game, err := createGame(args[0])
	if err != nil {
		return err
	}

	cfg := core.RuntimeConfig{
		ScreenW:  flagSimWidth,
		ScreenH:  flagSimHeight,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	game.Reset(cfg)
	defer game.Stop()

	logger := log.Default().With("game", game.ID(), "seed", cfg.Seed)
	d := newSimDriver(game, flagSimTicks)

	if flagSimRealtime {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		d.runRealtime(ctx, cfg.TickRate, logger)
	} else {
		d.runFast()
	}

	st := d.last
	logger.Info("simulation finished", "ticks", d.steps, "state", st.Run, "score", st.Score)
	printSummary(cmd.OutOrStdout(), game, st)

	if flagSimRender {
		screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
		game.Render(screen)
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), screen.String())
	}
	return nil
}

// simDriver feeds a game an auto-start press and then empty input until
// the session ends or the tick budget runs out.
type simDriver struct {
	game  registry.Game
	input *core.InputState
	limit int
	steps int
	last  core.GameState
}

func newSimDriver(game registry.Game, limit int) *simDriver {
	input := core.NewInputState()
	input.Tap(core.ActionConfirm)
	return &simDriver{game: game, input: input, limit: limit, last: game.State()}
}

func (d *simDriver) done() bool {
	return d.steps >= d.limit || d.last.GameOver()
}

// step runs one tick and reports whether the driver is finished.
func (d *simDriver) step() bool {
	if d.done() {
		return true
	}
	d.last = d.game.Step(d.input.Snapshot()).State
	d.steps++
	return d.done()
}

func (d *simDriver) runFast() {
	for !d.step() {
	}
}

// runRealtime delivers ticks from a sim.Runner until the driver is done
// or parent is cancelled.
func (d *simDriver) runRealtime(parent context.Context, tickRate int, logger *log.Logger) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	runner := sim.NewRunner(tickRate, func() {
		if d.step() {
			cancel()
		}
	}, logger)
	runner.Start(ctx)
	<-ctx.Done()
	runner.Stop()

	if parent.Err() != nil && !d.done() {
		logger.Warn("simulation interrupted", "ticks", d.steps)
	}
}

func printSummary(w io.Writer, game registry.Game, st core.GameState) {
	fmt.Fprintf(w, "%s (%s)\n", game.Title(), game.ID())
	fmt.Fprintf(w, "  state:  %s\n", st.Run)
	fmt.Fprintf(w, "  ticks:  %d\n", st.Ticks)
	fmt.Fprintf(w, "  score:  %d\n", st.Score)
	if st.MaxHealth > 0 {
		fmt.Fprintf(w, "  health: %d/%d\n", st.Health, st.MaxHealth)
	}
	if st.Timed {
		fmt.Fprintf(w, "  time:   %.1fs left\n", st.TimeRemaining)
	}
	if st.Message != "" {
		fmt.Fprintf(w, "  result: %s\n", st.Message)
	}
}
