// Package convkit is a collection of small, independent conversion utilities.
//
// Every converter lives in its own package and is a set of pure functions:
// it takes input text or numbers, applies a deterministic transformation and
// returns the result or a structured error. No converter shares state with
// another, so each can be imported on its own.
//
// # Packages
//
//   - dataformat: JSON, CSV, XML and YAML interconversion over a common tree
//   - value: the tagged-union tree shared by dataformat parsers and serializers
//   - markup: Markdown to HTML and back
//   - document: plain-text export to txt/html/csv/json/md and print-ready HTML
//   - units: length, weight, area, volume and temperature
//   - currency: conversion over a fixed table of reference rates
//   - color: HEX, RGB and HSL
//   - numbase: decimal, binary, hexadecimal and octal
//   - textconv: case transforms, Base64, URL encoding and text statistics
//   - datetime: Unix timestamps, ISO dates and time zones
//   - hashgen: MD5 and SHA digests as lowercase hex
//   - password: random passwords, passphrases and strength scoring
//   - qrcode: QR image request URLs
//   - catalog: the searchable list of converters
//   - converrors: structured error types shared by all of the above
//
// # Quick Start
//
// Convert JSON to YAML:
//
//	result, err := dataformat.ConvertWithOptions(
//		dataformat.WithInput(`{"name":"John","age":30}`),
//		dataformat.WithSourceFormat(dataformat.FormatJSON),
//		dataformat.WithTargetFormat(dataformat.FormatYAML),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Output)
//
// Convert a temperature:
//
//	f, _ := units.Convert(100, "celsius", "fahrenheit", units.Temperature)
//	fmt.Println(f) // 212
//
// # Command Line and MCP
//
// The convkit command (cmd/convkit) exposes each converter as a subcommand,
// and `convkit mcp` serves the same converters as MCP tools over stdio.
package convkit
