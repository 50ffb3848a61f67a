package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"Warren/internal/collector"
	"Warren/internal/config"
	"Warren/internal/logger"
)

// App carries what every command needs.
type App struct {
	ConfigPath string
	Stdout     io.Writer
	Stderr     io.Writer
}

// Run parses args (without the program name) and executes the selected
// command. A leading argument that is not a command name is taken as the
// symbol of an implicit "report" command.
func (a *App) Run(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("warren", flag.ContinueOnError)
	fs.SetOutput(a.Stderr)
	fs.StringVar(&a.ConfigPath, "config", "", "Path to the YAML config file (default $CONFIG_PATH or "+config.DefaultPath+")")

	cdr := subcommands.NewCommander(fs, "warren")
	cdr.Output = a.Stdout
	cdr.Error = a.Stderr
	commands := []subcommands.Command{
		cdr.HelpCommand(),
		cdr.FlagsCommand(),
		cdr.CommandsCommand(),
		&reportCmd{},
		&watchCmd{},
	}
	for _, c := range commands {
		cdr.Register(c, "")
	}

	if err := fs.Parse(args); err != nil {
		return int(subcommands.ExitUsageError)
	}
	if pos := fs.Args(); len(pos) > 0 && !isCommand(commands, pos[0]) {
		if err := fs.Parse(implicitReport(pos)); err != nil {
			return int(subcommands.ExitUsageError)
		}
	}
	return int(cdr.Execute(ctx, a))
}

// implicitReport builds the argv of "report" for the bare-symbol shorthand.
// Flags given after the symbol are moved in front of it so that
// "warren AAPL -offline" behaves like "warren report -offline AAPL".
func implicitReport(pos []string) []string {
	argv := []string{"report"}
	var rest []string
	for _, arg := range pos {
		if len(arg) > 1 && strings.HasPrefix(arg, "-") {
			argv = append(argv, arg)
			continue
		}
		rest = append(rest, arg)
	}
	return append(argv, rest...)
}

func isCommand(commands []subcommands.Command, name string) bool {
	for _, c := range commands {
		if c.Name() == name {
			return true
		}
	}
	return false
}

// setup loads the configuration and initialises logging.
func (a *App) setup(notify bool) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(a.ConfigPath)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if err := cfg.Validate(notify); err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("config validation: %w", err)
	}
	logger.InitLevel(cfg.Log.Level)
	return cfg, *logger.L(), nil
}

// fetcher returns the Yahoo connector, or a fixed demo series when offline.
func fetcher(cfg *config.Config, offline bool) (collector.Fetcher, error) {
	if offline {
		return &collector.MockFetcher{Price: 100}, nil
	}
	return collector.NewYahooFetcher(cfg.DataSource.BaseURL, cfg.Proxy, cfg.DataSource.Timeout)
}

func app(args []interface{}) *App {
	for _, v := range args {
		if a, ok := v.(*App); ok {
			return a
		}
	}
	panic("cli: command executed without *App")
}
