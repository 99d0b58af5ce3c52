package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/they4kman/gosweep/director/constraint"
	"github.com/they4kman/gosweep/director/random"
	"github.com/they4kman/gosweep/game"
)

type options struct {
	gameConfig game.GameConfig

	configPath    string
	snapshotPath  string
	director      string
	games         int
	verbose       bool
	printSnapshot bool
}

var directors = map[string]func() game.Director{
	"random":     func() game.Director { return &random.Director{} },
	"constraint": func() game.Director { return &constraint.Director{} },
}

func newRootCmd() *cobra.Command {
	opts := options{gameConfig: game.NewGameConfig()}

	cmd := &cobra.Command{
		Use:   "gosweep",
		Short: "Play computer-driven Minesweeper",
		Long: `gosweep is a Minesweeper board engine, with directors which
play games on their own.

Let the constraint director play an expert game
	gosweep

Play 100 beginner games with first-click safety, and log every move
	gosweep -w 9 -h 9 -m 10 --mode win7 --games 100 --verbose
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.load(cmd); err != nil {
				return err
			}
			return run(opts, newLogger(cmd.ErrOrStderr(), opts.verbose), cmd.OutOrStdout())
		},
	}

	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	cmd.Flags().Bool("help", false, "Help for this command")

	cmd.Flags().UintVarP(&opts.gameConfig.Width, "width", "w", game.DefaultWidth, "Width of game board, in cells")
	cmd.Flags().UintVarP(&opts.gameConfig.Height, "height", "h", game.DefaultHeight, "Height of game board, in cells")
	cmd.Flags().UintVarP(&opts.gameConfig.NumBombs, "mines", "m", game.DefaultBombs, "Number of mines to place in the game board")
	cmd.Flags().Var(newGameModeValue(game.Classic, &opts.gameConfig.Mode), "mode", `Game mode, controlling behaviour of first click.
win7: all cells surrounding the first-clicked cell are cleared of mines (first click never loses)
classic: mines are left as is (first click can lose the game)`)
	cmd.Flags().Int64Var(&opts.gameConfig.Seed, "seed", 0, "Seed for mine placement and director choices (default: time-based)")

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "YAML file with the game config; flags override its values")
	cmd.Flags().StringVar(&opts.snapshotPath, "snapshot", "", "YAML board snapshot to play, instead of a generated board")
	cmd.Flags().BoolVar(&opts.gameConfig.LoadSnapshotFresh, "fresh", true, "Cover every cell of the loaded snapshot")

	cmd.Flags().StringVarP(&opts.director, "director", "d", "constraint", "Director playing the game: random or constraint")
	cmd.Flags().IntVarP(&opts.games, "games", "g", 1, "Number of games to play in a row")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log every move")
	cmd.Flags().BoolVar(&opts.printSnapshot, "print-snapshot", false, "Print a snapshot of each finished board")

	return cmd
}

// load applies the config file and snapshot, leaving explicitly set flags in
// place
func (opts *options) load(cmd *cobra.Command) error {
	if _, ok := directors[opts.director]; !ok {
		return fmt.Errorf("invalid director %q", opts.director)
	}
	if opts.games < 1 {
		return fmt.Errorf("games must be at least 1, got %d", opts.games)
	}

	if opts.configPath != "" {
		fileConfig, err := game.LoadConfig(opts.configPath)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if !flags.Changed("width") {
			opts.gameConfig.Width = fileConfig.Width
		}
		if !flags.Changed("height") {
			opts.gameConfig.Height = fileConfig.Height
		}
		if !flags.Changed("mines") {
			opts.gameConfig.NumBombs = fileConfig.NumBombs
		}
		if !flags.Changed("mode") {
			opts.gameConfig.Mode = fileConfig.Mode
		}
		if !flags.Changed("seed") {
			opts.gameConfig.Seed = fileConfig.Seed
		}
		opts.gameConfig.Start = fileConfig.Start
	}

	if opts.snapshotPath != "" {
		in, err := os.ReadFile(opts.snapshotPath)
		if err != nil {
			return err
		}
		snapshot, err := game.LoadSnapshot(string(in))
		if err != nil {
			return fmt.Errorf("load snapshot %s: %w", opts.snapshotPath, err)
		}
		opts.gameConfig.Snapshot = snapshot
		opts.gameConfig.Seed = snapshot.Seed
	}

	if opts.gameConfig.Seed == 0 {
		opts.gameConfig.Seed = time.Now().UnixNano()
	}

	return opts.gameConfig.Validate()
}

func newLogger(out io.Writer, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.Out = out
	logger.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func run(opts options, logger *logrus.Logger, out io.Writer) error {
	config := opts.gameConfig
	wins, losses := 0, 0

	for i := 0; i < opts.games; i++ {
		session, err := game.NewSession(config, game.WithLogger(logger))
		if err != nil {
			return err
		}

		log := logger.WithField("session", session.ID().String())
		err = game.Play(session, directors[opts.director](), func(action game.CellAction, event game.Event) {
			log.WithField("action", action.String()).Debug(event.String())
		})
		if err != nil {
			return err
		}

		switch session.State() {
		case game.Won:
			wins++
		case game.Lost:
			losses++
		}

		log.WithFields(logrus.Fields{
			"result":          session.State(),
			"seed":            session.Seed(),
			"bombs_remaining": session.BombsRemaining(),
			"safe_remaining":  session.SafeTilesRemaining(),
		}).Info("game over")

		if opts.printSnapshot {
			if err := printSnapshot(out, session); err != nil {
				return err
			}
		}

		// Snapshots replay the same board; generated boards move on to a new seed
		if config.Snapshot == nil {
			config.Seed = session.Rand().Int63()
		}
	}

	logger.WithFields(logrus.Fields{
		"games":  opts.games,
		"wins":   wins,
		"losses": losses,
	}).Info("done")

	return nil
}

func printSnapshot(out io.Writer, session *game.Session) error {
	snapshot := session.Snapshot()
	if snapshot == nil {
		return nil
	}

	serialized, err := snapshot.Serialize()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "---\n%s", serialized)
	return err
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type gameModeValue game.GameMode

func newGameModeValue(val game.GameMode, p *game.GameMode) *gameModeValue {
	*p = val
	return (*gameModeValue)(p)
}

func (modeVal *gameModeValue) String() string {
	return game.GameMode(*modeVal).String()
}

func (modeVal *gameModeValue) Set(value string) error {
	mode, err := game.ParseGameMode(value)
	if err != nil {
		return err
	}
	*modeVal = gameModeValue(mode)
	return nil
}

func (modeVal *gameModeValue) Type() string {
	return "game.GameMode"
}
