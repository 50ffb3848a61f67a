package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/subcommands"

	"Warren/internal/notifier"
	"Warren/internal/report"
	"Warren/internal/scheduler"
)

// watchCmd implements the "watch" command.
type watchCmd struct {
	cron    string
	notify  bool
	now     bool
	offline bool
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "re-runs the report for a symbol on a cron schedule" }
func (*watchCmd) Usage() string {
	return `watch [-cron EXPR] [-notify] [-now] [-offline] SYMBOL:

	Runs the report for SYMBOL on a six-field cron schedule (seconds first)
	until interrupted. With -notify every report is also sent to the Telegram
	chat from the config, and the chat may request "/report SYMBOL" at any time.
`
}
func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.cron, "cron", "", "cron spec overriding schedule.watch_cron")
	f.BoolVar(&c.notify, "notify", false, "send reports to Telegram and answer chat commands")
	f.BoolVar(&c.now, "now", false, "run once immediately before waiting for the schedule")
	f.BoolVar(&c.offline, "offline", false, "use a generated demo series instead of Yahoo Finance")
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	a := app(args)
	if f.NArg() != 1 {
		fmt.Fprintf(a.Stderr, "Error: expected exactly one SYMBOL argument\n")
		return subcommands.ExitUsageError
	}
	symbol := f.Arg(0)

	cfg, log, err := a.setup(c.notify)
	if err != nil {
		fmt.Fprintf(a.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	src, err := fetcher(cfg, c.offline)
	if err != nil {
		fmt.Fprintf(a.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	spec := cfg.Schedule.WatchCron
	if c.cron != "" {
		spec = c.cron
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var sender scheduler.Sender
	var tn *notifier.TelegramNotifier
	if c.notify {
		tn, err = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy, log)
		if err != nil {
			fmt.Fprintf(a.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		sender = tn
	}

	sched := scheduler.NewScheduler(ctx, report.NewBuilder(src, log), sender, a.Stdout, log)
	if err := sched.Watch(symbol, spec); err != nil {
		fmt.Fprintf(a.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	sched.Start()
	defer sched.Stop()

	if tn != nil {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Info().Msg("telegram polling started")
	}
	if c.now {
		sched.RunNow(symbol)
	}

	log.Info().Str("symbol", symbol).Str("cron", spec).Msg("watching, press Ctrl+C to stop")
	<-ctx.Done()
	log.Info().Msg("shutdown signal received, stopping")
	return subcommands.ExitSuccess
}
