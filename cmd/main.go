package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/range-equity/application"
	"github.com/luca-patrignani/range-equity/domain/equity"
	"github.com/luca-patrignani/range-equity/domain/poker"
	httpadapter "github.com/luca-patrignani/range-equity/internal/adapters/http"
	"github.com/luca-patrignani/range-equity/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s eval|play|serve [flags]\n", os.Args[0])
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "eval":
		err = runEval(cfg, os.Args[2:])
	case "play":
		err = runPlay(cfg)
	case "serve":
		err = runServe(cfg)
	default:
		err = fmt.Errorf("unknown command %q", os.Args[1])
	}
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

// newLogger routes slog through the pterm logger.
func newLogger(level slog.Level) *slog.Logger {
	ptermLevel := pterm.LogLevelInfo
	switch {
	case level <= slog.LevelDebug:
		ptermLevel = pterm.LogLevelDebug
	case level >= slog.LevelError:
		ptermLevel = pterm.LogLevelError
	case level >= slog.LevelWarn:
		ptermLevel = pterm.LogLevelWarn
	}
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(ptermLevel))
	return slog.New(handler)
}

// friendFlags collects repeated --friend values.
type friendFlags []string

func (f *friendFlags) String() string {
	return strings.Join(*f, ";")
}

func (f *friendFlags) Set(v string) error {
	*f = append(*f, v)
	return nil
}

type evalArgs struct {
	hero, board, villain, exclude string
	friends                       friendFlags
}

func parseEvalArgs(args []string) (evalArgs, error) {
	var a evalArgs
	fs := flag.NewFlagSet("eval", flag.ContinueOnError)
	fs.StringVar(&a.hero, "hero", "", "hero hole cards, e.g. AsAh")
	fs.StringVar(&a.board, "board", "", "board cards, e.g. \"Ks 7d 2c\"")
	fs.StringVar(&a.villain, "villain", "", "villain hole cards for a heads-up comparison")
	fs.Var(&a.friends, "friend", "cards held by a friend (repeatable)")
	fs.StringVar(&a.exclude, "exclude", "", "comma separated matrix cells to exclude, e.g. AKs,72o")
	if err := fs.Parse(args); err != nil {
		return evalArgs{}, err
	}
	return a, nil
}

// fillTable seats the parsed cards at the table, refusing cards already in
// use exactly like the interactive selector does.
func fillTable(table *application.Table, a evalArgs) error {
	seat := func(input string, slot func(int) application.Slot) error {
		cards, err := poker.ParseCards(input)
		if err != nil {
			return err
		}
		for i, c := range cards {
			if err := table.Assign(slot(i), c); err != nil {
				return err
			}
		}
		return nil
	}
	if err := seat(a.hero, application.Hero); err != nil {
		return fmt.Errorf("hero: %w", err)
	}
	if err := seat(a.board, application.Board); err != nil {
		return fmt.Errorf("board: %w", err)
	}
	if err := seat(a.villain, application.Villain); err != nil {
		return fmt.Errorf("villain: %w", err)
	}
	for f, friend := range a.friends {
		err := seat(friend, func(i int) application.Slot { return application.Friend(f, i) })
		if err != nil {
			return fmt.Errorf("friend %d: %w", f+1, err)
		}
	}
	ex, err := equity.ParseExclusions(strings.Split(a.exclude, ",")...)
	if err != nil {
		return err
	}
	for cell := range ex {
		if _, err := table.ToggleExclusion(cell); err != nil {
			return err
		}
	}
	return nil
}

func runEval(cfg config.Config, args []string) error {
	a, err := parseEvalArgs(args)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.LogLevel)
	seats := cfg.FriendSeats
	if len(a.friends) > seats {
		seats = len(a.friends)
	}
	table := application.NewTable(equity.NewEngine(equity.WithLogger(logger)), seats, logger)
	if err := fillTable(table, a); err != nil {
		return err
	}
	return printState(table)
}

func printBanner() {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("R", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ange ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("E", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("quity", pterm.FgDarkGray.ToStyle()),
	).Render()
}

// runPlay is the interactive front end: the user edits the table slot by
// slot and the dashboard is recomputed after every change.
func runPlay(cfg config.Config) error {
	logger := newLogger(cfg.LogLevel)
	table := application.NewTable(equity.NewEngine(equity.WithLogger(logger)), cfg.FriendSeats, logger)
	printBanner()

	const (
		setCards  = "Set cards"
		clearSlot = "Clear a card"
		toggle    = "Toggle a matrix cell"
		reset     = "Clear everything"
		quit      = "Quit"
	)
	for {
		if err := printState(table); err != nil {
			return err
		}
		choice, _ := pterm.DefaultInteractiveSelect.WithDefaultText("Select your next action").
			WithOptions([]string{setCards, clearSlot, toggle, reset, quit}).Show()
		switch choice {
		case setCards:
			slot, ok := selectSlot(cfg.FriendSeats)
			if !ok {
				continue
			}
			input, _ := pterm.DefaultInteractiveTextInput.WithDefaultText(fmt.Sprintf("Cards for %s", slot)).Show()
			if err := assignFrom(table, slot, input); err != nil {
				pterm.Error.Println(err.Error())
			}
		case clearSlot:
			slot, ok := selectSlot(cfg.FriendSeats)
			if !ok {
				continue
			}
			if err := table.Clear(slot); err != nil {
				pterm.Error.Println(err.Error())
			}
		case toggle:
			name, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Cell to toggle, e.g. AKs").Show()
			cell, err := equity.ParseCell(name)
			if err != nil {
				pterm.Error.Println(err.Error())
				continue
			}
			if on, _ := table.ToggleExclusion(cell); on {
				pterm.Info.Printfln("%s excluded", cell)
			} else {
				pterm.Info.Printfln("%s included", cell)
			}
		case reset:
			if confirm, _ := pterm.DefaultInteractiveConfirm.WithDefaultText("Clear every card and exclusion?").WithDefaultValue(true).Show(); confirm {
				table.Reset()
			}
		default:
			return nil
		}
	}
}

// selectSlot asks which hand to edit; the first card of the hand is returned.
func selectSlot(friendSeats int) (application.Slot, bool) {
	options := []string{"Hero", "Board", "Villain"}
	for i := 0; i < friendSeats; i++ {
		options = append(options, fmt.Sprintf("Friend %d", i+1))
	}
	choice, err := pterm.DefaultInteractiveSelect.WithDefaultText("Which hand?").WithOptions(options).Show()
	if err != nil {
		return application.Slot{}, false
	}
	switch choice {
	case "Hero":
		return application.Hero(0), true
	case "Board":
		return application.Board(0), true
	case "Villain":
		return application.Villain(0), true
	}
	var f int
	if _, err := fmt.Sscanf(choice, "Friend %d", &f); err != nil {
		return application.Slot{}, false
	}
	return application.Friend(f-1, 0), true
}

// assignFrom fills the hand of first with the cards in input, starting at
// the first slot of that hand.
func assignFrom(table *application.Table, first application.Slot, input string) error {
	cards, err := poker.ParseCards(input)
	if err != nil {
		return err
	}
	for i, c := range cards {
		slot := first
		slot.Index = first.Index + i
		if err := table.Assign(slot, c); err != nil {
			return err
		}
	}
	return nil
}

func runServe(cfg config.Config) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(httpadapter.RequestIDMiddleware())
	e.Use(httpadapter.LoggingMiddleware(logger))

	handler := httpadapter.NewHandler(equity.NewEngine(equity.WithLogger(logger)), logger)
	handler.Register(e)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr)
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
