package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"taskboard/internal/config"
	"taskboard/internal/kanban/fs"
	"taskboard/internal/kanban/models"
	"taskboard/internal/kanban/operations"
	"taskboard/internal/logs"
	"taskboard/internal/scanner"
	"taskboard/internal/tui"
	"taskboard/internal/users"
)

var (
	seedFlag  string
	viewFlag  string
	themeFlag string
)

// rootCmd launches the board TUI when called without a subcommand
var rootCmd = &cobra.Command{
	Use:   "taskboard",
	Short: "taskboard - a terminal kanban board",
	Long: `taskboard is a single-user kanban board for the terminal.

Tasks move between columns by drag, and every task keeps an activity
history of what changed, when and by whom. Without a subcommand the
interactive board is started.`,
	RunE: runTUI,
}

// Execute runs the root command. Called once by main.main().
func Execute() error {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&seedFlag, "seed", "", "Board directory to load instead of the built-in seed")
	rootCmd.PersistentFlags().StringVar(&viewFlag, "view", "", "Initial view: board or week")
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "Theme: light or dark")
}

// session is everything a command needs once configuration is loaded
type session struct {
	cfg   *config.Config
	ctrl  *operations.Controller
	users *users.Directory
}

func loadSession() (*session, error) {
	cfg, err := config.Load(config.CLIFlags{
		Seed:  seedFlag,
		View:  viewFlag,
		Theme: themeFlag,
	})
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := config.EnsureConfigFile(); err != nil {
		logs.Logger.Warnf("could not create config file: %v", err)
	}

	if err := logs.Initialize(cfg.LogDir); err != nil {
		logs.Logger.Warnf("could not initialize logger in %s: %v", cfg.LogDir, err)
	}

	dir := users.Default()
	ctrl, err := openBoard(cfg.Seed, time.Now(), dir)
	if err != nil {
		return nil, err
	}

	return &session{cfg: cfg, ctrl: ctrl, users: dir}, nil
}

// openBoard loads the seed and hands it to a controller that checks
// assignees against dir
func openBoard(seed string, now time.Time, dir *users.Directory) (*operations.Controller, error) {
	board, err := loadBoard(seed, now)
	if err != nil {
		return nil, err
	}
	ctrl, err := operations.NewController(board, operations.WithUsers(dir))
	if err != nil {
		return nil, fmt.Errorf("loading board: %w", err)
	}
	return ctrl, nil
}

// loadBoard reads a seed board (or the single board below a directory), or builds the default board when seed is empty
func loadBoard(seed string, now time.Time) (*models.Board, error) {
	if seed == "" {
		return operations.SeedBoard(now), nil
	}
	dir, err := scanner.ResolveSeed(seed)
	if err != nil {
		return nil, fmt.Errorf("resolving seed: %w", err)
	}
	board, err := fs.ReadBoard(dir)
	if err != nil {
		return nil, fmt.Errorf("reading seed %s: %w", seed, err)
	}
	return board, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	defer logs.Close()

	logs.Logger.Info("starting app in TUI mode")
	app := tui.NewAppModel(s.cfg, s.ctrl, s.users)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
