package dispatcher

import (
	"github.com/arthur-debert/roster/pkg/directory"
	"github.com/arthur-debert/roster/pkg/errors"
	"github.com/arthur-debert/roster/pkg/pattern"
)

// Result is the outcome of a successful dispatch. Only the fields relevant to
// the handler that ran are set.
type Result struct {
	Handler         string
	Message         string
	Departments     []directory.DepartmentInfo
	DepartmentNames []string
}

// CommandHandler is one supported command family
type CommandHandler interface {
	// Name uniquely identifies the handler within a dispatcher
	Name() string

	// Matches reports whether the handler accepts the text
	Matches(text string) bool

	// Execute parses text and runs the handler against store
	Execute(text string, store directory.Store) (*Result, error)

	// Describe returns the human-readable command format
	Describe() string
}

// Executor holds the business logic of a handler
type Executor func(args pattern.Args, store directory.Store) (*Result, error)

// Handler binds a pattern to an executor
type Handler struct {
	name     string
	pattern  *pattern.Pattern
	executor Executor
}

var _ CommandHandler = (*Handler)(nil)

// NewHandler creates a handler
func NewHandler(name string, p *pattern.Pattern, executor Executor) *Handler {
	return &Handler{name: name, pattern: p, executor: executor}
}

func (h *Handler) Name() string { return h.name }

func (h *Handler) Describe() string { return h.pattern.Description() }

func (h *Handler) Matches(text string) bool { return h.pattern.Matches(text) }

// Execute extracts the declared fields and runs the executor. The result's
// Handler field is filled in when the executor leaves it empty.
func (h *Handler) Execute(text string, store directory.Store) (*Result, error) {
	args, ok := h.pattern.Extract(text)
	if !ok {
		return nil, errors.New(errors.ErrInvalidInput,
			"could not parse expected args from command by matching expected pattern").
			WithDetail("handler", h.name)
	}

	result, err := h.executor(args, store)
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = &Result{}
	}
	if result.Handler == "" {
		result.Handler = h.name
	}
	return result, nil
}
