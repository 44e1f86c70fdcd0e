package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatHuman OutputFormat = "human"
)

// TriggersResponseCLI is the output of the triggers command
type TriggersResponseCLI struct {
	Source  string   `json:"source"`
	Params  []string `json:"params"`
	Headers []string `json:"headers"`
}

// ClassifyResponseCLI is the output of the classify command
type ClassifyResponseCLI struct {
	Path    string   `json:"path"`
	Dynamic bool     `json:"dynamic"`
	Debug   bool     `json:"debug"`
	Params  []string `json:"params"`
	Headers []string `json:"headers"`
}

// FormatResponse formats a response according to the specified format
func FormatResponse(resp interface{}, format OutputFormat) (string, error) {
	switch format {
	case FormatJSON:
		return formatJSON(resp)
	case FormatHuman:
		return formatHuman(resp)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func formatJSON(resp interface{}) (string, error) {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

func formatHuman(resp interface{}) (string, error) {
	switch v := resp.(type) {
	case *TriggersResponseCLI:
		return formatTriggersHuman(v), nil
	case *ClassifyResponseCLI:
		return formatClassifyHuman(v), nil
	default:
		// For unknown types, fall back to JSON
		return formatJSON(resp)
	}
}

func formatTriggersHuman(resp *TriggersResponseCLI) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Trigger catalog (%s)\n", resp.Source))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	b.WriteString(fmt.Sprintf("Query parameters (%d):\n", len(resp.Params)))
	for _, p := range resp.Params {
		b.WriteString("  " + p + "\n")
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Headers (%d):\n", len(resp.Headers)))
	for _, h := range resp.Headers {
		b.WriteString("  " + h + "\n")
	}

	return b.String()
}

func formatClassifyHuman(resp *ClassifyResponseCLI) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Path: %s\n", resp.Path))
	if !resp.Dynamic {
		b.WriteString("Static path: served from the file tree, triggers are ignored\n")
		return b.String()
	}

	mode := "normal"
	if resp.Debug {
		mode = "debug"
	}
	b.WriteString(fmt.Sprintf("Rendering: %s\n", mode))
	b.WriteString(fmt.Sprintf("Parameters: %s\n", listOrNone(resp.Params)))
	b.WriteString(fmt.Sprintf("Headers: %s\n", listOrNone(resp.Headers)))

	return b.String()
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

// writeResponse prints resp to w, as JSON when asJSON is set
func writeResponse(w io.Writer, resp interface{}, asJSON bool) error {
	format := FormatHuman
	if asJSON {
		format = FormatJSON
	}
	out, err := FormatResponse(resp, format)
	if err != nil {
		return err
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err = io.WriteString(w, out)
	return err
}
