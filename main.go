// main.go
//
// wordlehelper suggests Wordle guesses.
//
//	wordlehelper [flags] <dictionary> <answers> <day> <mode>
//
// Modes:
//   - a:     play <day> (or every day with "all") against the known answer,
//            printing "day,guesses" per game.
//   - i:     suggest guesses and read the marks shown by the real game.
//   - serve: expose the solver over HTTP.
//
// "-" for a word list selects the env var path or the embedded list.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-helper/internal/config"
	"github.com/robalobadob/wordle/apps/go-helper/internal/daily"
	"github.com/robalobadob/wordle/apps/go-helper/internal/game"
	"github.com/robalobadob/wordle/apps/go-helper/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-helper/internal/player"
	"github.com/robalobadob/wordle/apps/go-helper/internal/solver"
	"github.com/robalobadob/wordle/apps/go-helper/internal/words"
)

const GracefulShutdownTimeout = 20 * time.Second

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("bad arguments")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, os.Stdout, os.Stderr)
	stop()
	if err != nil {
		log.Fatal().Err(err).Msg("")
	}
}

// run loads the word lists and dispatches on cfg.Mode.
func run(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) error {
	dict, err := words.LoadDictionary(cfg.DictionaryFile)
	if err != nil {
		return err
	}
	answers, err := words.LoadAnswers(cfg.AnswersFile)
	if err != nil {
		return err
	}
	strategy, err := solver.ParseStrategy(cfg.Strategy)
	if err != nil {
		return err
	}
	log.Info().
		Int("dictionary", dict.Len()).
		Int("answers", len(answers)).
		Str("strategy", string(strategy)).
		Msg("loaded word lists")

	var results *daily.Store
	if cfg.ResultsDB != "" {
		db, err := openDB(cfg.ResultsDB)
		if err != nil {
			return fmt.Errorf("open results db: %w", err)
		}
		defer db.Close()
		migrations, err := fs.Sub(daily.Migrations, "sql")
		if err != nil {
			return err
		}
		if err := migrate(db, migrations); err != nil {
			return fmt.Errorf("migrate results db: %w", err)
		}
		results = daily.NewStore(db)
	}

	if cfg.Mode == config.ModeServe {
		return serve(ctx, cfg.Addr, httpserver.Options{
			Dictionary: dict,
			Answers:    answers,
			Strategy:   strategy,
			Results:    results,
			JWTSecret:  cfg.JWTSecret,
		})
	}

	sel, err := daily.ParseDay(cfg.Day, time.Now(), len(answers))
	if err != nil {
		return err
	}
	s := solver.New(dict, strategy)

	if cfg.Mode == config.ModeInteractive {
		if sel.All {
			return fmt.Errorf("%w: interactive mode needs a single day", daily.ErrInvalidDay)
		}
		return interactive(ctx, s, answers, sel.Day, stdout)
	}

	b := &player.Batch{Solver: s, Answers: answers, Out: stdout, Progress: stderr}
	if results != nil {
		b.Recorder = results
	}
	var runs []daily.Run
	if sel.All {
		runs, err = b.RunAll(ctx)
		if err != nil {
			return err
		}
	} else {
		r, err := b.RunDay(ctx, sel.Day)
		if err != nil {
			return err
		}
		if err := player.Report(stdout, r.Day, player.Outcome{Guesses: r.Guesses, Won: r.Solved}); err != nil {
			return err
		}
		runs = []daily.Run{r}
	}

	if cfg.Report != "" {
		if err := daily.WriteReport(cfg.Report, daily.Report{
			Strategy:   string(strategy),
			Dictionary: dict.Len(),
			Generated:  daily.DateKey(time.Now()),
			Summary:    daily.Summarize(runs),
			Runs:       runs,
		}); err != nil {
			return err
		}
		log.Info().Str("path", cfg.Report).Msg("wrote report")
	}
	return nil
}

// interactive suggests guesses for day and reads the marks from the terminal.
func interactive(ctx context.Context, s *solver.Solver, answers words.Answers, day int, stdout io.Writer) error {
	if answer, err := answers.For(day); err == nil {
		log.Debug().Str("answer", answer).Int("day", day).Msg("known answer")
	}
	p, err := player.NewPrompt()
	if err != nil {
		return err
	}
	defer p.Close()

	o, err := player.Play(ctx, s, game.New(""), p, answers.Past(day))
	if errors.Is(err, player.ErrAborted) {
		return nil
	}
	if err != nil {
		return err
	}
	if o.Won {
		fmt.Fprintln(stdout, "Congratulations.")
	} else {
		fmt.Fprintln(stdout, "No more words left to guess. The answer word is not in the list.")
	}
	return nil
}

// serve runs the HTTP API until ctx is cancelled.
func serve(ctx context.Context, addr string, opts httpserver.Options) error {
	srv := &http.Server{Addr: addr, Handler: httpserver.New(opts).Router()}

	idleConnsClosed := make(chan struct{})
	go func() {
		<-ctx.Done()
		// We received an interrupt signal, shut down.
		log.Info().Msg("got quit signal...")
		sctx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)
		if err := srv.Shutdown(sctx); err != nil {
			log.Error().Msgf("HTTP server Shutdown: %v", err)
		}
		cancel()
		close(idleConnsClosed)
	}()

	log.Info().Str("addr", addr).Msg("starting wordle helper API")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	<-idleConnsClosed
	return nil
}
