package scheduler

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"Warren/internal/model"
	"Warren/internal/notifier"
	"Warren/internal/strategy"
)

// Reporter builds a report for one symbol.
type Reporter interface {
	Build(ctx context.Context, symbol string) (model.Report, error)
}

// Sender delivers a formatted message.
type Sender interface {
	SendWithRetry(ctx context.Context, text string, maxRetries int) error
}

// Scheduler re-runs reports on a cron schedule.
type Scheduler struct {
	Cron     *cron.Cron
	Reporter Reporter
	Notifier Sender // nil disables notifications
	Out      io.Writer
	Log      zerolog.Logger
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler. Reports are written to out, one per line.
func NewScheduler(ctx context.Context, reporter Reporter, sender Sender, out io.Writer, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		Cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.Recover(cronLogger{log})),
		),
		Reporter: reporter,
		Notifier: sender,
		Out:      out,
		Log:      log,
		Ctx:      ctx,
	}
}

// Watch registers a report run for symbol on the given six-field cron spec.
func (s *Scheduler) Watch(symbol, spec string) error {
	if _, err := s.Cron.AddFunc(spec, func() { s.runReport(symbol) }); err != nil {
		return fmt.Errorf("register watch task %q: %w", spec, err)
	}
	s.Log.Info().Str("symbol", symbol).Str("cron", spec).Msg("watch registered")
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.Log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.Log.Info().Msg("scheduler stopped")
}

// RunNow runs one report for symbol immediately, with the same panic
// protection as scheduled runs.
func (s *Scheduler) RunNow(symbol string) {
	cron.Recover(cronLogger{s.Log})(cron.FuncJob(func() { s.runReport(symbol) })).Run()
}

func (s *Scheduler) runReport(symbol string) {
	runID := uuid.NewString()
	log := s.Log.With().Str("run_id", runID).Str("symbol", symbol).Logger()
	log.Info().Msg("running report")

	r, err := s.Reporter.Build(s.Ctx, symbol)
	if err != nil {
		log.Error().Err(err).Msg("report failed")
		s.trySend(notifier.FormatError(symbol, err))
		return
	}
	if _, err := fmt.Fprintln(s.Out, r.String()); err != nil {
		log.Error().Err(err).Msg("write report")
	}
	s.trySend(notifier.FormatReport(r))
}

// HandleCommand processes a chat command and returns a reply.
func (s *Scheduler) HandleCommand(ctx context.Context, command string) string {
	fields := strings.Fields(command)
	if len(fields) == 2 && (fields[0] == "/report" || strings.HasPrefix(fields[0], "/report@")) {
		symbol := strings.ToUpper(fields[1])
		r, err := s.safeBuild(ctx, symbol)
		if err != nil {
			s.Log.Error().Err(err).Str("symbol", symbol).Msg("command report failed")
			return notifier.FormatError(symbol, err)
		}
		return notifier.FormatReport(r)
	}
	return "Available commands:\n• /report SYMBOL"
}

// safeBuild turns an invariant panic into an error so one bad symbol does
// not stop the command loop.
func (s *Scheduler) safeBuild(ctx context.Context, symbol string) (r model.Report, err error) {
	defer func() {
		if p := recover(); p != nil {
			ie, ok := p.(*strategy.InvariantError)
			if !ok {
				panic(p)
			}
			err = ie
		}
	}()
	return s.Reporter.Build(ctx, symbol)
}

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		s.Log.Error().Err(err).Msg("send notification")
	}
}

// cronLogger adapts zerolog to cron.Logger.
type cronLogger struct {
	log zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
