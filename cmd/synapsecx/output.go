package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Output formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatText = "text"
)

// writeOutput renders v in format. The text format prints one "Label: value" line per field
// in declaration order.
func writeOutput(w io.Writer, format string, v any) error {
	switch strings.ToLower(format) {
	case "", FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "    ")
		return encoder.Encode(v)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	case FormatText:
		return writeText(w, v)
	default:
		return fmt.Errorf("unknown output format %q (want json, yaml or text)", format)
	}
}

func writeText(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if len(doc.Content) == 0 {
		return nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.SequenceNode {
		for i, item := range root.Content {
			if i > 0 {
				fmt.Fprintln(w)
			}
			writeTextNode(w, item)
		}
		return nil
	}
	writeTextNode(w, root)
	return nil
}

func writeTextNode(w io.Writer, node *yaml.Node) {
	if node.Kind != yaml.MappingNode {
		fmt.Fprintln(w, textValue(node))
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		fmt.Fprintf(w, "%s: %s\n", label(node.Content[i].Value), textValue(node.Content[i+1]))
	}
}

func textValue(node *yaml.Node) string {
	switch node.Kind {
	case yaml.SequenceNode:
		values := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			values = append(values, textValue(item))
		}
		if len(values) == 0 {
			return "-"
		}
		return strings.Join(values, ", ")
	case yaml.MappingNode:
		pairs := make([]string, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			pairs = append(pairs, node.Content[i].Value+"="+textValue(node.Content[i+1]))
		}
		return strings.Join(pairs, " ")
	default:
		return node.Value
	}
}

// label turns a field key such as "detected_language" into "Detected Language"
func label(key string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}
