// Package pattern matches command text against line-anchored regular
// expressions and extracts the named fields a handler declares.
package pattern

import (
	"regexp"

	"github.com/arthur-debert/roster/pkg/errors"
	"github.com/arthur-debert/roster/pkg/logging"
)

// Args maps a declared field name to the text captured for it
type Args map[string]string

// Pattern describes one command family: a description for usage output, the
// expression matched against input, and the fields a handler expects.
type Pattern struct {
	description string
	expr        *regexp.Regexp
	fields      []string
}

// New compiles expr. Fields are not checked against the expression's groups
// here; a mismatch surfaces as a panic from Extract.
func New(description, expr string, fields ...string) (*Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrHandlerMisconfigured, "invalid pattern %q", expr)
	}
	return &Pattern{
		description: description,
		expr:        re,
		fields:      append([]string(nil), fields...),
	}, nil
}

// MustCompile is New for package-level handler definitions
func MustCompile(description, expr string, fields ...string) *Pattern {
	p, err := New(description, expr, fields...)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Pattern) Description() string { return p.description }

func (p *Pattern) Fields() []string { return append([]string(nil), p.fields...) }

func (p *Pattern) String() string { return p.expr.String() }

// Matches reports whether text structurally matches the pattern
func (p *Pattern) Matches(text string) bool {
	matched := p.expr.MatchString(text)
	outcome := "did not match"
	if matched {
		outcome = "successfully matched"
	}
	logger := logging.GetLogger("pattern")
	logger.Debug().
		Str("pattern", p.expr.String()).
		Msgf("Command text %s pattern %q", outcome, p.description)
	return matched
}

// Extract returns the declared fields captured from text. The bool is false
// when text does not match. A declared field with no participating named
// group means the handler is misconfigured, and Extract panics.
func (p *Pattern) Extract(text string) (Args, bool) {
	indexes := p.expr.FindStringSubmatchIndex(text)
	if indexes == nil {
		return nil, false
	}

	args := make(Args, len(p.fields))
	for _, field := range p.fields {
		group := p.expr.SubexpIndex(field)
		if group < 0 || indexes[2*group] < 0 {
			panic(errors.Newf(errors.ErrHandlerMisconfigured,
				"could not find arg %q in match of %q against %s", field, text, p.expr).
				WithDetail("field", field).
				WithDetail("pattern", p.expr.String()))
		}
		args[field] = text[indexes[2*group]:indexes[2*group+1]]
	}
	return args, true
}

// Require returns the value of a declared field. Executors only see Args
// produced by Extract, so a missing key is a programming error.
func (a Args) Require(field string) string {
	value, ok := a[field]
	if !ok {
		panic(errors.Newf(errors.ErrHandlerMisconfigured, "arg %q was not extracted", field))
	}
	return value
}
