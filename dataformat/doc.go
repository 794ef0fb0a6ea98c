// Package dataformat converts structured data between JSON, CSV, XML and YAML.
//
// Every conversion parses the input into a [value.Value] tree and serializes
// that tree into the target format. The tree is built fresh for each call and
// discarded afterwards; nothing is cached.
//
// # Quick Start
//
//	result, err := dataformat.Convert(`[{"name":"John","age":30}]`,
//	    dataformat.FormatJSON, dataformat.FormatCSV)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Output) // name,age\nJohn,30
//
// Or with functional options:
//
//	result, err := dataformat.ConvertWithOptions(
//	    dataformat.WithFilePath("users.xml"),
//	    dataformat.WithTargetFormat(dataformat.FormatYAML),
//	    dataformat.WithStrictMode(true),
//	)
//
// # Format Rules
//
// JSON is parsed strictly and printed with two-space indentation in source
// key order.
//
// CSV input takes its header from the first non-empty line and splits every
// line on commas; quoted commas are not recognised and every cell is a
// string. CSV output takes the header from the first row, quotes fields that
// contain commas or quotes, and writes nested values as compact JSON.
//
// XML input folds the root element's content into a mapping: attributes
// under "@attributes", repeated child tags into lists, and text-only elements
// into strings. XML output writes list items under a name as name_0,
// name_1, ... which does not read back as a list.
//
// YAML input uses a restricted line-oriented parser by default: "key: value"
// pairs with numeric coercion and one level of indented nesting. Lists and
// deeper structures need [WithFullYAML] (or [ParseFullYAML]). YAML output is
// produced by go.yaml.in/yaml/v4 with two-space indentation.
//
// # Conversion Issues
//
// [ConversionResult] reports the lossy parts of a conversion as issues with
// info, warning or critical severity, in the same shape as the rest of
// convkit. [WithStrictMode] turns any warning into an error.
//
// # Errors
//
// Malformed input returns a *converrors.ParseError naming the format; an
// unknown format returns a *converrors.UnsupportedFormatError before any
// parsing is attempted.
package dataformat
