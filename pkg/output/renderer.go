// Package output renders dispatch results, errors and usage text in the
// formats roster supports: rich terminal, plain text, JSON, YAML, TOML and
// XML.
package output

import (
	"io"

	"github.com/arthur-debert/roster/pkg/dispatcher"
	"github.com/arthur-debert/roster/pkg/errors"
	"github.com/arthur-debert/roster/pkg/logging"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderResult renders the outcome of a successful dispatch
	RenderResult(result *dispatcher.Result) error

	// RenderError renders a failed dispatch or any other error
	RenderError(err error) error

	// RenderUsage renders the dispatcher's usage text
	RenderUsage(usage string) error

	// RenderMessage renders a line of shell chatter, such as the prompt
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer writing to w. FormatAuto is resolved
// against w first.
func NewRenderer(format Format, w io.Writer) (Renderer, error) {
	resolved := resolve(format, w)
	logger := logging.GetLogger("output")
	logger.Debug().
		Str("requested", format.String()).
		Str("resolved", resolved.String()).
		Msg("Creating renderer")

	switch resolved {
	case FormatTerminal:
		return newTerminalRenderer(w), nil
	case FormatText:
		return newTextRenderer(w), nil
	case FormatJSON, FormatYAML, FormatTOML, FormatXML:
		return newStructuredRenderer(resolved, w), nil
	default:
		return nil, errors.Newf(errors.ErrOutputFormat, "unknown format: %v", format)
	}
}

// errorPayload is the structured form of an error
type errorPayload struct {
	Code    string                 `json:"code" yaml:"code" toml:"code"`
	Message string                 `json:"message" yaml:"message" toml:"message"`
	Details map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty" toml:"details,omitempty"`
}

func newErrorPayload(err error) errorPayload {
	return errorPayload{
		Code:    string(errors.GetErrorCode(err)),
		Message: errors.Describe(err),
		Details: errors.GetErrorDetails(err),
	}
}
