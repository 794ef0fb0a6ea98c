package dataformat

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/erraggy/convkit/converrors"
	"github.com/erraggy/convkit/internal/issues"
	"github.com/erraggy/convkit/internal/severity"
	"github.com/erraggy/convkit/value"
)

const (
	// AttributesKey holds an element's attributes in the folded mapping.
	AttributesKey = "@attributes"
	// TextKey holds the text of an element that also carries attributes.
	TextKey = "#text"

	xmlDeclaration = `<?xml version="1.0" encoding="UTF-8"?>`
)

type xmlElement struct {
	name     string
	attrs    []xml.Attr
	children []*xmlElement
	text     strings.Builder
}

// parseXML builds an element tree from the token stream and folds the root
// element's content into a Value. The root tag itself is discarded.
func parseXML(text string) (value.Value, error) {
	dec := xml.NewDecoder(strings.NewReader(text))
	var (
		root  *xmlElement
		stack []*xmlElement
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return value.Null(), xmlParseError(dec, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := &xmlElement{name: qualifiedName(t.Name), attrs: t.Attr}
			if len(stack) == 0 {
				if root != nil {
					return value.Null(), xmlParseError(dec, errors.New("multiple root elements"))
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			} else if strings.TrimSpace(string(t)) != "" {
				return value.Null(), xmlParseError(dec, errors.New("text outside the root element"))
			}
		}
	}
	if root == nil {
		return value.Null(), &converrors.ParseError{Format: string(FormatXML), Message: "no root element"}
	}
	if len(stack) > 0 {
		return value.Null(), xmlParseError(dec, io.ErrUnexpectedEOF)
	}
	return foldXML(root), nil
}

// foldXML maps an element to a Value: attributes under AttributesKey, child
// tags as keys (repeats accumulate into a List in document order), and
// text-only elements without attributes collapse to a String.
func foldXML(el *xmlElement) value.Value {
	text := strings.TrimSpace(el.text.String())
	if len(el.children) == 0 && len(el.attrs) == 0 && text != "" {
		return value.String(text)
	}

	m := value.NewMapping()
	if len(el.attrs) > 0 {
		attrs := value.NewMapping()
		for _, a := range el.attrs {
			attrs.Set(qualifiedName(a.Name), value.String(a.Value))
		}
		m.Set(AttributesKey, value.Map(attrs))
	}
	if len(el.children) == 0 {
		if text != "" {
			m.Set(TextKey, value.String(text))
		}
		return value.Map(m)
	}

	// Group repeated tags before building immutable values.
	var order []string
	grouped := make(map[string][]value.Value)
	for _, child := range el.children {
		if _, seen := grouped[child.name]; !seen {
			order = append(order, child.name)
		}
		grouped[child.name] = append(grouped[child.name], foldXML(child))
	}
	for _, name := range order {
		items := grouped[name]
		if len(items) == 1 {
			m.Set(name, items[0])
		} else {
			m.Set(name, value.List(items...))
		}
	}
	return value.Map(m)
}

func qualifiedName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

func xmlParseError(dec *xml.Decoder, err error) error {
	line, _ := dec.InputPos()
	msg := "malformed document"
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		line = syntaxErr.Line
		msg = "syntax error"
		err = errors.New(syntaxErr.Msg)
	}
	return &converrors.ParseError{Format: string(FormatXML), Line: line, Message: msg, Cause: err}
}

// serializeXML writes the declaration line followed by v rendered under rootName.
// List items under a name render as name_0, name_1, ... elements.
func serializeXML(v value.Value, rootName string) string {
	var buf bytes.Buffer
	buf.WriteString(xmlDeclaration)
	buf.WriteByte('\n')
	writeXMLValue(&buf, v, rootName)
	return buf.String()
}

func writeXMLValue(buf *bytes.Buffer, v value.Value, name string) {
	tag := XMLName(name)
	switch v.Kind() {
	case value.KindList:
		items, _ := v.AsList()
		for i, item := range items {
			writeXMLValue(buf, item, fmt.Sprintf("%s_%d", name, i))
		}
	case value.KindMapping:
		buf.WriteByte('<')
		buf.WriteString(tag)
		if attrs, ok := v.Get(AttributesKey); ok && attrs.Kind() == value.KindMapping {
			m, _ := attrs.AsMapping()
			for _, a := range m.Entries() {
				buf.WriteByte(' ')
				buf.WriteString(XMLName(a.Key))
				buf.WriteString(`="`)
				_ = xml.EscapeText(buf, []byte(a.Value.Text()))
				buf.WriteByte('"')
			}
		}
		buf.WriteByte('>')
		m, _ := v.AsMapping()
		for _, e := range m.Entries() {
			switch {
			case e.Key == AttributesKey && e.Value.Kind() == value.KindMapping:
				// already written on the start tag
			case e.Key == TextKey && e.Value.IsScalar():
				_ = xml.EscapeText(buf, []byte(e.Value.Text()))
			default:
				writeXMLValue(buf, e.Value, e.Key)
			}
		}
		buf.WriteString("</")
		buf.WriteString(tag)
		buf.WriteByte('>')
	default:
		buf.WriteByte('<')
		buf.WriteString(tag)
		buf.WriteByte('>')
		_ = xml.EscapeText(buf, []byte(v.Text()))
		buf.WriteString("</")
		buf.WriteString(tag)
		buf.WriteByte('>')
	}
}

// XMLName turns an arbitrary key into a valid XML element name: characters
// outside letters, digits, '-', '_', '.' and ':' become '_', and a name that
// does not start with a letter or '_' gets a '_' prefix.
func XMLName(key string) string {
	if key == "" {
		return "_"
	}
	var b strings.Builder
	for _, r := range key {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '.' || r == ':' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	name := b.String()
	first := []rune(name)[0]
	if !unicode.IsLetter(first) && first != '_' {
		name = "_" + name
	}
	return name
}

// xmlIssues reports the parts of v that XML output cannot carry faithfully.
func xmlIssues(v value.Value, rootName string) []issues.Issue {
	var notes []issues.Issue
	if v.Kind() == value.KindList {
		notes = append(notes, issues.Issue{
			Path:     rootName,
			Message:  "top-level list rendered as sibling elements; the output has no single root element",
			Severity: severity.SeverityWarning,
		})
	}
	value.Walk(v, func(path string, node value.Value) bool {
		p := rootName
		if path != "" {
			p = rootName + "." + path
		}
		if path != "" && node.Kind() == value.KindList {
			notes = append(notes, issues.Issue{
				Path:     p,
				Message:  "list rendered as indexed elements (name_0, name_1, ...)",
				Severity: severity.SeverityWarning,
				Context:  "re-parsing reads each indexed element as its own key, not as a list",
			})
		}
		for _, key := range node.Keys() {
			if key != AttributesKey && key != TextKey && XMLName(key) != key {
				notes = append(notes, issues.Issue{
					Path:     p + "." + key,
					Message:  fmt.Sprintf("key renamed to %q to form a valid element name", XMLName(key)),
					Severity: severity.SeverityWarning,
				})
			}
		}
		return true
	})
	return notes
}
