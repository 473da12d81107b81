package dispatcher

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/roster/pkg/directory"
	"github.com/arthur-debert/roster/pkg/errors"
	"github.com/arthur-debert/roster/pkg/logging"
	"github.com/arthur-debert/roster/pkg/registry"
)

// DefaultUsageHeader is the first line of UsageText
const DefaultUsageHeader = "Employee Management - valid command formats:"

// Dispatcher matches command text against its handlers and runs the first
// match against the store it owns
type Dispatcher struct {
	handlers    registry.Registry[CommandHandler]
	store       directory.Store
	usageHeader string
}

// Option configures a Dispatcher
type Option func(*Dispatcher)

// WithUsageHeader replaces the first line of UsageText
func WithUsageHeader(header string) Option {
	return func(d *Dispatcher) {
		d.usageHeader = header
	}
}

// New creates a dispatcher with no handlers
func New(store directory.Store, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		handlers:    registry.New[CommandHandler](),
		store:       store,
		usageHeader: DefaultUsageHeader,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Register appends handlers after those already registered. Names must be
// unique; registration stops at the first duplicate.
func (d *Dispatcher) Register(handlers ...CommandHandler) error {
	for _, h := range handlers {
		if err := d.handlers.Register(h.Name(), h); err != nil {
			return err
		}
	}
	return nil
}

// Handlers returns the registered handlers in registration order
func (d *Dispatcher) Handlers() []CommandHandler {
	return d.handlers.Items()
}

// Store returns the store the dispatcher executes against
func (d *Dispatcher) Store() directory.Store {
	return d.store
}

// Dispatch runs the first handler matching text. Errors from a matched
// handler are returned unchanged.
func (d *Dispatcher) Dispatch(text string) (*Result, error) {
	logger := logging.GetLogger("dispatcher")
	logger.Debug().Msgf("Checking for command matching text %q", text)

	for _, h := range d.handlers.Items() {
		if !h.Matches(text) {
			continue
		}
		logger.Debug().Str("handler", h.Name()).Msg("Dispatching to handler")
		return h.Execute(text, d.store)
	}

	return nil, errors.Newf(errors.ErrNoMatchingHandler,
		"No matching handler found for command %q", text).
		WithDetail("command", text)
}

// UsageText lists every registered command format under the usage header
func (d *Dispatcher) UsageText() string {
	var b strings.Builder
	b.WriteString(d.usageHeader)
	b.WriteString("\n")
	for _, h := range d.handlers.Items() {
		fmt.Fprintf(&b, " - \"%s\"\n", h.Describe())
	}
	return b.String()
}
