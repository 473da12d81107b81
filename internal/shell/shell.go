// Package shell implements the interactive read-dispatch-render loop.
//
// The shell prints the usage banner, then reads one text command per line
// and hands it to the dispatcher. Two meta commands are handled before
// dispatch: the help command redisplays the banner and the quit command ends
// the session. End of input ends the session as well.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/roster/pkg/config"
	"github.com/arthur-debert/roster/pkg/dispatcher"
	"github.com/arthur-debert/roster/pkg/errors"
	"github.com/arthur-debert/roster/pkg/logging"
	"github.com/arthur-debert/roster/pkg/output"
)

// Shell runs text commands read from an input stream
type Shell struct {
	dispatcher *dispatcher.Dispatcher
	renderer   output.Renderer
	config     config.ShellConfig
}

// New creates a shell. Everything it prints goes through r.
func New(d *dispatcher.Dispatcher, r output.Renderer, cfg config.ShellConfig) *Shell {
	return &Shell{dispatcher: d, renderer: r, config: cfg}
}

// Run shows the banner and processes lines from in until the quit command,
// end of input or cancellation of ctx. Command failures are rendered and the
// loop continues; only read and write failures end it with an error.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	logger := logging.GetLogger("shell")
	done := logging.LogOperationStart(logger, "shell")
	defer done()

	if err := s.ShowUsage(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.renderer.RenderMessage(s.config.Prompt); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to write prompt")
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return errors.Wrap(err, errors.ErrInternal, "there was an error reading input")
			}
			logger.Debug().Msg("End of input")
			return nil
		}

		text := strings.TrimSpace(scanner.Text())
		switch text {
		case "":
			continue
		case s.config.QuitCommand:
			logger.Debug().Msg("Quit requested")
			return nil
		case s.config.HelpCommand:
			if err := s.ShowUsage(); err != nil {
				return err
			}
		default:
			if err := s.process(text); err != nil {
				return err
			}
		}
	}
}

// ShowUsage renders the usage text followed by the meta commands
func (s *Shell) ShowUsage() error {
	logger := logging.GetLogger("shell")
	logger.Info().Msg("Showing usage")

	if err := s.renderer.RenderUsage(s.dispatcher.UsageText()); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to write usage")
	}

	lines := []string{
		"Alternatively, enter:",
		fmt.Sprintf(" - %q to show this usage info", s.config.HelpCommand),
		fmt.Sprintf(" - %q to exit the program", s.config.QuitCommand),
	}
	for _, line := range lines {
		if err := s.renderer.RenderMessage(line); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to write usage")
		}
	}
	return nil
}

// process dispatches one command. The returned error is an output failure;
// command failures are rendered.
func (s *Shell) process(text string) error {
	logger := logging.GetLogger("shell")

	result, err := s.dispatcher.Dispatch(text)
	if err == nil {
		logger.Debug().Msgf("Command %q processed okay", text)
		if renderErr := s.renderer.RenderResult(result); renderErr != nil {
			return errors.Wrap(renderErr, errors.ErrInternal, "failed to write result")
		}
		return nil
	}

	if errors.IsErrorCode(err, errors.ErrNoMatchingHandler) {
		logger.Error().Msgf("No match could be found to execute the submitted command %q", text)
	} else {
		logger.Error().Msg(errors.Describe(err))
		logger.Error().Msgf("Error processing command %q, please try again", text)
	}

	if renderErr := s.renderer.RenderError(err); renderErr != nil {
		return errors.Wrap(renderErr, errors.ErrInternal, "failed to write error")
	}
	if s.config.UsageOnError {
		return s.ShowUsage()
	}
	return nil
}
