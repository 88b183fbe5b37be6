// Package app provides the interactive menu loop for listedit. It reads
// menu choices and integers from an input stream, drives the engine and
// prints results.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dshills/listedit/internal/config"
	"github.com/dshills/listedit/internal/engine"
	"github.com/dshills/listedit/internal/engine/list"
)

// Application runs the list editor menu.
type Application struct {
	engine *engine.Engine
	logger *Logger

	in  io.Reader
	out io.Writer

	renderOpts list.RenderOptions
	showMenu   bool
}

// Options configures the application.
type Options struct {
	// Input supplies menu choices and values. Defaults to os.Stdin.
	Input io.Reader

	// Output receives prompts and results. Defaults to os.Stdout.
	Output io.Writer

	// Config supplies render and menu settings. Defaults to config.Default().
	Config *config.Config

	// Logger receives diagnostic logs. Defaults to NullLogger.
	Logger *Logger

	// HideMenu suppresses the menu text; prompts are still printed.
	HideMenu bool
}

// New creates an Application with an empty list.
func New(opts Options) *Application {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Logger == nil {
		opts.Logger = NullLogger
	}

	renderOpts := opts.Config.Render().RenderOptions()
	return &Application{
		engine:     engine.New(engine.WithRenderOptions(renderOpts)),
		logger:     opts.Logger.WithComponent("menu"),
		in:         opts.Input,
		out:        opts.Output,
		renderOpts: renderOpts,
		showMenu:   opts.Config.Menu().Show && !opts.HideMenu,
	}
}

// Engine returns the application's engine.
func (app *Application) Engine() *engine.Engine {
	return app.engine
}

// Run reads choices until the user exits, input ends or ctx is cancelled.
// Exiting and end of input return nil; cancellation returns ctx.Err().
// Run releases the engine before returning in every case.
func (app *Application) Run(ctx context.Context) error {
	input := newTokenReader(app.in)
	defer input.stop()
	defer app.Shutdown()

	for {
		if app.showMenu {
			app.print(menuText)
		}
		app.print(promptChoice)

		n, err := input.nextInt(ctx)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				app.println(userMessage(err))
				continue
			}
			return app.stop(err)
		}

		err = app.dispatch(ctx, input, Choice(n))
		switch {
		case err == nil:
		case errors.Is(err, ErrQuit):
			return nil
		case recoverable(err):
			app.logger.WithField("op", Choice(n).String()).Warn("%v", err)
			app.println(userMessage(err))
		default:
			return app.stop(err)
		}
	}
}

// recoverable reports whether the loop should print err and continue.
// Anything else came from the input stream or ctx and ends the loop.
func recoverable(err error) bool {
	var opErr *OperationError
	return errors.As(err, &opErr) || errors.Is(err, ErrInvalidChoice) || errors.Is(err, ErrInvalidInput)
}

// stop ends the loop on end of input, cancellation or a read failure.
func (app *Application) stop(err error) error {
	switch {
	case errors.Is(err, io.EOF):
		app.println("")
		app.println("Exiting...")
		app.logger.Info("end of input")
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		app.logger.Info("stopped: %v", err)
	default:
		app.logger.Error("reading input: %v", err)
	}
	return err
}

// dispatch reads the arguments for choice and performs it.
func (app *Application) dispatch(ctx context.Context, input *tokenReader, choice Choice) error {
	log := app.logger.WithField("op", choice.String())

	switch choice {
	case ChoiceInsertEnd:
		v, err := app.readInt(ctx, input, promptInsertEnd)
		if err != nil {
			return err
		}
		log.Debug("value=%d", v)
		return app.wrap(choice, app.engine.InsertEnd(v), "value=%d", v)

	case ChoiceInsertAfter:
		pos, v, err := app.readPair(ctx, input, promptPositionAfter, promptValue)
		if err != nil {
			return err
		}
		log.Debug("position=%d value=%d", pos, v)
		return app.wrap(choice, app.engine.InsertAfter(pos, v), "position=%d value=%d", pos, v)

	case ChoiceInsertBefore:
		pos, v, err := app.readPair(ctx, input, promptPositionBefore, promptValue)
		if err != nil {
			return err
		}
		log.Debug("position=%d value=%d", pos, v)
		return app.wrap(choice, app.engine.InsertBefore(pos, v), "position=%d value=%d", pos, v)

	case ChoiceInsertBegin:
		v, err := app.readInt(ctx, input, promptInsertBegin)
		if err != nil {
			return err
		}
		log.Debug("value=%d", v)
		return app.wrap(choice, app.engine.InsertBegin(v), "value=%d", v)

	case ChoiceEdit:
		oldValue, newValue, err := app.readPair(ctx, input, promptEditOld, promptEditNew)
		if err != nil {
			return err
		}
		log.Debug("old=%d new=%d", oldValue, newValue)
		return app.wrap(choice, app.engine.EditFirst(oldValue, newValue), "old=%d new=%d", oldValue, newValue)

	case ChoicePrint:
		app.println(app.engine.Render())
		return nil

	case ChoiceUndo:
		if err := app.engine.Undo(); err != nil {
			return app.wrap(choice, err, "depth=%d", app.engine.UndoDepth())
		}
		log.Debug("depth=%d", app.engine.UndoDepth())
		return nil

	case ChoiceHistory:
		app.println(renderHistory(app.engine.UndoInfo(), app.renderOpts))
		return nil

	case ChoiceExit:
		app.println("Exiting...")
		log.Info("exit requested")
		return ErrQuit

	default:
		return ErrInvalidChoice
	}
}

func (app *Application) readInt(ctx context.Context, input *tokenReader, prompt string) (int, error) {
	app.print(prompt)
	return input.nextInt(ctx)
}

func (app *Application) readPair(ctx context.Context, input *tokenReader, first, second string) (int, int, error) {
	a, err := app.readInt(ctx, input, first)
	if err != nil {
		return 0, 0, err
	}
	b, err := app.readInt(ctx, input, second)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// wrap names the failed operation and records its arguments as context.
func (app *Application) wrap(choice Choice, err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return NewOperationError(choice.String(), err).WithContext(fmt.Sprintf(format, args...))
}

// Shutdown releases the list and undo history. Safe to call more than once.
func (app *Application) Shutdown() {
	if app.engine.IsClosed() {
		return
	}
	_ = app.engine.Close()
	app.logger.Debug("engine released")
}

func (app *Application) print(s string) {
	_, _ = io.WriteString(app.out, s)
}

func (app *Application) println(s string) {
	_, _ = fmt.Fprintln(app.out, s)
}
