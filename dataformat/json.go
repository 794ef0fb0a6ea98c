package dataformat

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/erraggy/convkit/converrors"
	"github.com/erraggy/convkit/value"
)

// parseJSON decodes text with the token stream so mapping order survives.
// Content after the top-level value is rejected.
func parseJSON(text string) (value.Value, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	v, err := decodeJSONValue(dec)
	if err != nil {
		return value.Null(), jsonParseError(text, dec, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return value.Null(), jsonParseError(text, dec, err)
	}
	return v, nil
}

func decodeJSONValue(dec *json.Decoder) (value.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return value.Null(), io.ErrUnexpectedEOF
		}
		return value.Null(), err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			m := value.NewMapping()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return value.Null(), err
				}
				key, ok := keyTok.(string)
				if !ok {
					return value.Null(), errors.New("object key is not a string")
				}
				item, err := decodeJSONValue(dec)
				if err != nil {
					return value.Null(), err
				}
				m.Set(key, item)
			}
			if _, err := dec.Token(); err != nil {
				return value.Null(), err
			}
			return value.Map(m), nil
		case '[':
			var items []value.Value
			for dec.More() {
				item, err := decodeJSONValue(dec)
				if err != nil {
					return value.Null(), err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil {
				return value.Null(), err
			}
			return value.List(items...), nil
		default:
			return value.Null(), errors.New("unexpected delimiter " + t.String())
		}
	case json.Number:
		n, err := strconv.ParseFloat(t.String(), 64)
		if err != nil {
			return value.Null(), err
		}
		return value.Number(n), nil
	case string:
		return value.String(t), nil
	case bool:
		return value.Bool(t), nil
	case nil:
		return value.Null(), nil
	default:
		return value.Null(), errors.New("unexpected token")
	}
}

func jsonParseError(text string, dec *json.Decoder, err error) error {
	// InputOffset points at the failing token; SyntaxError offsets from
	// value decoding are relative to the value, not the document.
	offset := dec.InputOffset()
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		// the input ran out, so the error belongs to its last line
		offset = int64(len(text))
		err = errors.New("unexpected end of JSON input")
	}
	return &converrors.ParseError{
		Format:  string(FormatJSON),
		Line:    lineAt(text, offset),
		Message: "syntax error",
		Cause:   err,
	}
}

// lineAt returns the 1-based line containing byte offset.
func lineAt(text string, offset int64) int {
	if offset <= 0 {
		return 1
	}
	if offset > int64(len(text)) {
		offset = int64(len(text))
	}
	return strings.Count(text[:offset], "\n") + 1
}

// serializeJSON renders v with the given indent ("" for compact output).
func serializeJSON(v value.Value, indent string) string {
	var buf bytes.Buffer
	writeJSONValue(&buf, v, indent, 0)
	return buf.String()
}

func writeJSONValue(buf *bytes.Buffer, v value.Value, indent string, depth int) {
	switch v.Kind() {
	case value.KindNull:
		buf.WriteString("null")
	case value.KindBool:
		b, _ := v.AsBool()
		buf.WriteString(strconv.FormatBool(b))
	case value.KindNumber:
		n, _ := v.AsNumber()
		if math.IsNaN(n) || math.IsInf(n, 0) {
			buf.WriteString("null")
			return
		}
		buf.WriteString(value.FormatNumber(n))
	case value.KindString:
		s, _ := v.AsString()
		writeJSONString(buf, s)
	case value.KindList:
		items, _ := v.AsList()
		if len(items) == 0 {
			buf.WriteString("[]")
			return
		}
		buf.WriteByte('[')
		for i, item := range items {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeJSONIndent(buf, indent, depth+1)
			writeJSONValue(buf, item, indent, depth+1)
		}
		writeJSONIndent(buf, indent, depth)
		buf.WriteByte(']')
	case value.KindMapping:
		m, _ := v.AsMapping()
		if m.Len() == 0 {
			buf.WriteString("{}")
			return
		}
		buf.WriteByte('{')
		for i, e := range m.Entries() {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeJSONIndent(buf, indent, depth+1)
			writeJSONString(buf, e.Key)
			buf.WriteByte(':')
			if indent != "" {
				buf.WriteByte(' ')
			}
			writeJSONValue(buf, e.Value, indent, depth+1)
		}
		writeJSONIndent(buf, indent, depth)
		buf.WriteByte('}')
	}
}

func writeJSONIndent(buf *bytes.Buffer, indent string, depth int) {
	if indent == "" {
		return
	}
	buf.WriteByte('\n')
	for range depth {
		buf.WriteString(indent)
	}
}

// writeJSONString quotes s without HTML escaping.
func writeJSONString(buf *bytes.Buffer, s string) {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		buf.WriteString(strconv.Quote(s))
		return
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
}
