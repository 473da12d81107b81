package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/arthur-debert/roster/pkg/directory"
	"github.com/arthur-debert/roster/pkg/dispatcher"
	"github.com/arthur-debert/roster/pkg/errors"
	"github.com/beevik/etree"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// structuredRenderer emits one machine-readable document per call
type structuredRenderer struct {
	format Format
	output io.Writer
}

func newStructuredRenderer(format Format, w io.Writer) *structuredRenderer {
	return &structuredRenderer{format: format, output: w}
}

// resultPayload keeps an empty listing distinct from an absent one
type resultPayload struct {
	Handler         string                      `json:"handler" yaml:"handler" toml:"handler"`
	Message         string                      `json:"message,omitempty" yaml:"message,omitempty" toml:"message,omitempty"`
	Departments     *[]directory.DepartmentInfo `json:"departments,omitempty" yaml:"departments,omitempty" toml:"departments,omitempty"`
	DepartmentNames *[]string                   `json:"department_names,omitempty" yaml:"department_names,omitempty" toml:"department_names,omitempty"`
}

func newResultPayload(result *dispatcher.Result) resultPayload {
	payload := resultPayload{Handler: result.Handler, Message: result.Message}
	if result.Departments != nil {
		payload.Departments = &result.Departments
	}
	if result.DepartmentNames != nil {
		payload.DepartmentNames = &result.DepartmentNames
	}
	return payload
}

type usagePayload struct {
	Header   string   `json:"header" yaml:"header" toml:"header"`
	Commands []string `json:"commands" yaml:"commands" toml:"commands"`
}

type messagePayload struct {
	Message string `json:"message" yaml:"message" toml:"message"`
}

func (r *structuredRenderer) RenderResult(result *dispatcher.Result) error {
	if result == nil {
		result = &dispatcher.Result{}
	}
	if r.format == FormatXML {
		return r.writeXML(resultXML(result))
	}
	return r.encode(newResultPayload(result))
}

func (r *structuredRenderer) RenderError(err error) error {
	payload := newErrorPayload(err)
	if r.format == FormatXML {
		doc := newXMLDocument()
		el := doc.CreateElement("error")
		el.CreateAttr("code", payload.Code)
		el.CreateElement("message").SetText(payload.Message)
		keys := make([]string, 0, len(payload.Details))
		for key := range payload.Details {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			detail := el.CreateElement("detail")
			detail.CreateAttr("key", key)
			detail.SetText(fmt.Sprint(payload.Details[key]))
		}
		return r.writeXML(doc)
	}
	return r.encode(map[string]errorPayload{"error": payload})
}

// RenderUsage splits usage text back into its header and command formats
func (r *structuredRenderer) RenderUsage(usage string) error {
	payload := parseUsage(usage)
	if r.format == FormatXML {
		doc := newXMLDocument()
		el := doc.CreateElement("usage")
		el.CreateAttr("header", payload.Header)
		for _, command := range payload.Commands {
			el.CreateElement("command").SetText(command)
		}
		return r.writeXML(doc)
	}
	return r.encode(payload)
}

func (r *structuredRenderer) RenderMessage(msg string) error {
	if r.format == FormatXML {
		doc := newXMLDocument()
		doc.CreateElement("message").SetText(msg)
		return r.writeXML(doc)
	}
	return r.encode(messagePayload{Message: msg})
}

func (r *structuredRenderer) encode(v interface{}) error {
	var err error
	switch r.format {
	case FormatJSON:
		encoder := json.NewEncoder(r.output)
		encoder.SetIndent("", "  ")
		err = encoder.Encode(v)
	case FormatYAML:
		encoder := yaml.NewEncoder(r.output)
		encoder.SetIndent(2)
		err = encoder.Encode(v)
		if err == nil {
			err = encoder.Close()
		}
	case FormatTOML:
		err = toml.NewEncoder(r.output).Encode(v)
	default:
		return errors.Newf(errors.ErrOutputFormat, "%s is not an encoder format", r.format)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrOutputFormat, "failed to encode %s", r.format)
	}
	return nil
}

func newXMLDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	return doc
}

func resultXML(result *dispatcher.Result) *etree.Document {
	doc := newXMLDocument()
	root := doc.CreateElement("result")
	root.CreateAttr("handler", result.Handler)

	if result.Message != "" {
		root.CreateElement("message").SetText(result.Message)
	}
	if result.Departments != nil {
		departments := root.CreateElement("departments")
		for _, info := range result.Departments {
			department := departments.CreateElement("department")
			department.CreateAttr("name", info.Department)
			for _, name := range info.Employees {
				department.CreateElement("employee").SetText(name)
			}
		}
	}
	if result.DepartmentNames != nil {
		names := root.CreateElement("department-names")
		for _, name := range result.DepartmentNames {
			names.CreateElement("name").SetText(name)
		}
	}
	return doc
}

func (r *structuredRenderer) writeXML(doc *etree.Document) error {
	doc.Indent(2)
	if _, err := doc.WriteTo(r.output); err != nil {
		return errors.Wrap(err, errors.ErrOutputFormat, "failed to write xml")
	}
	return nil
}

// parseUsage is the inverse of Dispatcher.UsageText
func parseUsage(usage string) usagePayload {
	lines := strings.Split(strings.TrimRight(usage, "\n"), "\n")
	payload := usagePayload{Commands: []string{}}
	if len(lines) == 0 {
		return payload
	}

	payload.Header = lines[0]
	for _, line := range lines[1:] {
		entry := strings.TrimPrefix(strings.TrimSpace(line), "- ")
		payload.Commands = append(payload.Commands, strings.Trim(entry, `"`))
	}
	return payload
}
