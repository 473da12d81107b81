package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/roster/pkg/dispatcher"
	"github.com/arthur-debert/roster/pkg/errors"
	"github.com/arthur-debert/roster/pkg/logging"
	"github.com/arthur-debert/roster/pkg/output/styles"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

// terminalRenderer provides rich terminal output. Listings of departments
// with their employees are drawn as pterm tables; everything else is styled
// with lipgloss.
type terminalRenderer struct {
	output   io.Writer
	renderer *lipgloss.Renderer
	styles   styles.Registry
}

func newTerminalRenderer(w io.Writer) *terminalRenderer {
	r := &terminalRenderer{
		output:   w,
		renderer: lipgloss.NewRenderer(w),
		styles:   styles.Default(),
	}
	logger := logging.GetLogger("output.terminal")
	logger.Debug().
		Str("colorProfile", fmt.Sprintf("%v", r.renderer.ColorProfile())).
		Msg("Lipgloss renderer created")
	return r
}

func (r *terminalRenderer) style(name string) lipgloss.Style {
	return r.styles.Get(name).Renderer(r.renderer)
}

func (r *terminalRenderer) RenderResult(result *dispatcher.Result) error {
	if result == nil {
		return nil
	}

	if result.Message != "" {
		return r.println(r.style("Message").Render(result.Message))
	}

	if result.DepartmentNames != nil {
		if len(result.DepartmentNames) == 0 {
			return r.println(r.style("Muted").Render(noDepartments))
		}
		bullet := r.style("Bullet").Render("•")
		for _, name := range result.DepartmentNames {
			if err := r.println(bullet + r.style("Department").Render(name)); err != nil {
				return err
			}
		}
	}

	if result.Departments != nil {
		if len(result.Departments) == 0 {
			return r.println(r.style("Muted").Render(noDepartments))
		}
		return r.renderTable(result)
	}
	return nil
}

func (r *terminalRenderer) renderTable(result *dispatcher.Result) error {
	data := pterm.TableData{{"Department", "Employees"}}
	for _, info := range result.Departments {
		data = append(data, []string{info.Department, employeeList(info)})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, errors.ErrOutputFormat, "failed to render department table")
	}
	return r.println(table)
}

func (r *terminalRenderer) RenderError(err error) error {
	return r.println(fmt.Sprintf("%s %s",
		pterm.Error.Prefix.Text,
		r.style("Error").Render(errors.Describe(err))))
}

// RenderUsage renders the usage text as markdown through glamour, falling
// back to the plain text when glamour fails
func (r *terminalRenderer) RenderUsage(usage string) error {
	rendered := usage
	tr, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err == nil {
		if out, renderErr := tr.Render(usageMarkdown(usage)); renderErr == nil {
			rendered = out
		}
	}
	_, err = io.WriteString(r.output, rendered)
	return err
}

func (r *terminalRenderer) RenderMessage(msg string) error {
	return r.println(r.style("Muted").Render(msg))
}

func (r *terminalRenderer) println(s string) error {
	_, err := fmt.Fprintln(r.output, s)
	return err
}

// usageMarkdown turns usage text into a heading followed by a list of code
// spans, one per command format
func usageMarkdown(usage string) string {
	payload := parseUsage(usage)

	var b strings.Builder
	b.WriteString("## " + payload.Header + "\n\n")
	for _, command := range payload.Commands {
		b.WriteString("- `" + command + "`\n")
	}
	return b.String()
}
