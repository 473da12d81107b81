package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/roster/pkg/directory"
	"github.com/arthur-debert/roster/pkg/dispatcher"
	"github.com/arthur-debert/roster/pkg/errors"
)

const (
	noDepartments = "No departments found"
	noEmployees   = "(no employees)"
)

// textRenderer provides plain text output without colors or styling
type textRenderer struct {
	output io.Writer
}

func newTextRenderer(w io.Writer) *textRenderer {
	return &textRenderer{output: w}
}

// RenderResult prints the message when there is one, otherwise the listing
func (r *textRenderer) RenderResult(result *dispatcher.Result) error {
	_, err := io.WriteString(r.output, resultLines(result))
	return err
}

func (r *textRenderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintf(r.output, "Error: %s\n", errors.Describe(err))
	return writeErr
}

func (r *textRenderer) RenderUsage(usage string) error {
	_, err := io.WriteString(r.output, usage)
	return err
}

func (r *textRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

// resultLines is the plain text form of a result, one item per line
func resultLines(result *dispatcher.Result) string {
	if result == nil {
		return ""
	}

	var b strings.Builder
	if result.Message != "" {
		b.WriteString(result.Message + "\n")
		return b.String()
	}

	if result.DepartmentNames != nil {
		if len(result.DepartmentNames) == 0 {
			b.WriteString(noDepartments + "\n")
		}
		for _, name := range result.DepartmentNames {
			b.WriteString(name + "\n")
		}
	}

	if result.Departments != nil {
		if len(result.Departments) == 0 {
			b.WriteString(noDepartments + "\n")
		}
		for _, info := range result.Departments {
			fmt.Fprintf(&b, "%s - %s\n", info.Department, employeeList(info))
		}
	}
	return b.String()
}

func employeeList(info directory.DepartmentInfo) string {
	if len(info.Employees) == 0 {
		return noEmployees
	}
	return strings.Join(info.Employees, ", ")
}
