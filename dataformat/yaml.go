package dataformat

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/convkit/converrors"
	"github.com/erraggy/convkit/internal/issues"
	"github.com/erraggy/convkit/internal/severity"
	"github.com/erraggy/convkit/value"
)

// maxYAMLDepth bounds recursion when folding full YAML (aliases can nest deeply).
const maxYAMLDepth = 1000

var yamlNumberPattern = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?$`)

// parseYAMLRestricted reads the line-oriented subset: "key: value" pairs,
// and "key:" lines that open a one-level nested mapping filled by the
// following indented lines. Blank lines, comments and document markers are
// skipped. Values are Numbers when they look numeric, else Strings.
func parseYAMLRestricted(text string) (value.Value, []issues.Issue, error) {
	root := value.NewMapping()
	var (
		notes        []issues.Issue
		nestedKey    string
		nested       *value.Mapping
		nestedIndent int
	)
	closeNested := func() {
		if nested != nil {
			root.Set(nestedKey, value.Map(nested))
			nested = nil
		}
	}

	for i, raw := range strings.Split(text, "\n") {
		lineNo := i + 1
		line := strings.TrimSuffix(raw, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || trimmed == "---" || trimmed == "..." {
			continue
		}
		if trimmed == "-" || strings.HasPrefix(trimmed, "- ") {
			return value.Null(), notes, &converrors.ParseError{
				Format:  string(FormatYAML),
				Line:    lineNo,
				Message: "list items are not supported by the restricted parser (enable full YAML)",
			}
		}
		rawKey, rawVal, ok := strings.Cut(trimmed, ":")
		if !ok {
			return value.Null(), notes, &converrors.ParseError{
				Format:  string(FormatYAML),
				Line:    lineNo,
				Message: `expected "key: value"`,
			}
		}
		key := unquoteYAML(strings.TrimSpace(rawKey))
		if key == "" {
			return value.Null(), notes, &converrors.ParseError{
				Format:  string(FormatYAML),
				Line:    lineNo,
				Message: "empty key",
			}
		}
		val := strings.TrimSpace(rawVal)
		indent := len(line) - len(strings.TrimLeft(line, " \t"))

		if indent > 0 && nested != nil {
			if nestedIndent == 0 {
				nestedIndent = indent
			}
			if indent > nestedIndent || val == "" {
				notes = append(notes, issues.Issue{
					Path:     nestedKey + "." + key,
					Message:  "nesting deeper than one level was flattened",
					Severity: severity.SeverityWarning,
					Context:  "the restricted YAML parser reads one level of nesting; enable full YAML for more",
				})
			}
			if val == "" {
				nested.Set(key, value.Map(nil))
			} else {
				nested.Set(key, yamlScalar(val))
			}
			continue
		}

		closeNested()
		if val == "" {
			nestedKey = key
			nested = value.NewMapping()
			nestedIndent = 0
			// reserve the key's position; the filled mapping replaces it on close
			root.Set(key, value.Map(nil))
			continue
		}
		root.Set(key, yamlScalar(val))
	}
	closeNested()
	return value.Map(root), notes, nil
}

func yamlScalar(raw string) value.Value {
	if raw[0] == '"' || raw[0] == '\'' {
		return value.String(unquoteYAML(raw))
	}
	if before, _, found := strings.Cut(raw, " #"); found {
		raw = strings.TrimSpace(before)
	}
	switch raw {
	case "{}":
		return value.Map(nil)
	case "[]":
		return value.List()
	}
	if yamlNumberPattern.MatchString(raw) {
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			return value.Number(n)
		}
	}
	return value.String(raw)
}

// unquoteYAML strips one level of matching single or double quotes.
func unquoteYAML(s string) string {
	if len(s) < 2 {
		return s
	}
	switch {
	case s[0] == '"' && s[len(s)-1] == '"':
		if u, err := strconv.Unquote(s); err == nil {
			return u
		}
		return s[1 : len(s)-1]
	case s[0] == '\'' && s[len(s)-1] == '\'':
		return strings.ReplaceAll(s[1:len(s)-1], "''", "'")
	default:
		return s
	}
}

// parseYAMLFull decodes any YAML document through the yaml.Node tree so
// mapping order is preserved.
func parseYAMLFull(text string) (value.Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return value.Null(), &converrors.ParseError{
			Format:  string(FormatYAML),
			Message: "syntax error",
			Cause:   err,
		}
	}
	v, err := foldYAMLNode(&doc, 0)
	if err != nil {
		return value.Null(), &converrors.ParseError{
			Format:  string(FormatYAML),
			Line:    doc.Line,
			Message: "unsupported structure",
			Cause:   err,
		}
	}
	return v, nil
}

func foldYAMLNode(n *yaml.Node, depth int) (value.Value, error) {
	if n == nil {
		return value.Null(), nil
	}
	if depth > maxYAMLDepth {
		return value.Null(), errors.New("document nests too deeply")
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return value.Null(), nil
		}
		return foldYAMLNode(n.Content[0], depth+1)
	case yaml.MappingNode:
		m := value.NewMapping()
		for i := 0; i+1 < len(n.Content); i += 2 {
			child, err := foldYAMLNode(n.Content[i+1], depth+1)
			if err != nil {
				return value.Null(), err
			}
			m.Set(n.Content[i].Value, child)
		}
		return value.Map(m), nil
	case yaml.SequenceNode:
		items := make([]value.Value, 0, len(n.Content))
		for _, c := range n.Content {
			child, err := foldYAMLNode(c, depth+1)
			if err != nil {
				return value.Null(), err
			}
			items = append(items, child)
		}
		return value.List(items...), nil
	case yaml.AliasNode:
		return foldYAMLNode(n.Alias, depth+1)
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			return value.Null(), nil
		case "!!bool", "!!int", "!!float":
			var decoded any
			if err := n.Decode(&decoded); err != nil {
				return value.String(n.Value), nil //nolint:nilerr // keep the literal text when the scalar does not decode
			}
			return value.FromInterface(decoded), nil
		default:
			return value.String(n.Value), nil
		}
	default:
		return value.Null(), nil
	}
}

// serializeYAML renders v through a yaml.Node tree with 2-space indentation.
func serializeYAML(v value.Value) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(yamlNode(v)); err != nil {
		return "", fmt.Errorf("dataformat: encoding YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("dataformat: encoding YAML: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func yamlNode(v value.Value) *yaml.Node {
	switch v.Kind() {
	case value.KindBool:
		b, _ := v.AsBool()
		return scalarNode("!!bool", strconv.FormatBool(b))
	case value.KindNumber:
		n, _ := v.AsNumber()
		switch {
		case math.IsNaN(n):
			return scalarNode("!!float", ".nan")
		case math.IsInf(n, 1):
			return scalarNode("!!float", ".inf")
		case math.IsInf(n, -1):
			return scalarNode("!!float", "-.inf")
		case n == math.Trunc(n) && math.Abs(n) < 1<<53:
			return scalarNode("!!int", value.FormatNumber(n))
		default:
			return scalarNode("!!float", value.FormatNumber(n))
		}
	case value.KindString:
		s, _ := v.AsString()
		node := scalarNode("!!str", s)
		if strings.ContainsAny(s, "\n\r") {
			// keep line breaks escaped so every entry stays on one line
			node.Style = yaml.DoubleQuotedStyle
		}
		return node
	case value.KindList:
		items, _ := v.AsList()
		node := &yaml.Node{Kind: yaml.SequenceNode, Content: make([]*yaml.Node, 0, len(items))}
		for _, item := range items {
			node.Content = append(node.Content, yamlNode(item))
		}
		return node
	case value.KindMapping:
		m, _ := v.AsMapping()
		node := &yaml.Node{Kind: yaml.MappingNode, Content: make([]*yaml.Node, 0, 2*m.Len())}
		for _, e := range m.Entries() {
			node.Content = append(node.Content, scalarNode("!!str", e.Key), yamlNode(e.Value))
		}
		return node
	default:
		return scalarNode("!!null", "null")
	}
}

func scalarNode(tag, val string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: val}
}
