package mcpserver

import (
	"context"
	"log/slog"

	"github.com/erraggy/convkit/dataformat"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type dataConvertInput struct {
	Input       textInput `json:"input"                  jsonschema:"The document to convert"`
	From        string    `json:"from,omitempty"         jsonschema:"Source format (json\\, csv\\, xml or yaml). Detected when omitted."`
	To          string    `json:"to"                     jsonschema:"Target format (json\\, csv\\, xml or yaml)"`
	RootName    string    `json:"root_name,omitempty"    jsonschema:"XML root element name. Defaults to CONVKIT_ROOT_NAME."`
	FullYAML    *bool     `json:"full_yaml,omitempty"    jsonschema:"Parse YAML input with the full YAML parser. Defaults to CONVKIT_FULL_YAML."`
	Strict      bool      `json:"strict,omitempty"       jsonschema:"Fail the conversion when any warning is reported"`
	IncludeInfo *bool     `json:"include_info,omitempty" jsonschema:"Include informational issues (default true)"`
	Output      string    `json:"output,omitempty"       jsonschema:"File path to write the converted document. If omitted the document is returned inline."`
}

type dataIssue struct {
	Severity string `json:"severity"`
	Path     string `json:"path"`
	Message  string `json:"message"`
	Context  string `json:"context,omitempty"`
}

type dataConvertOutput struct {
	SourceFormat string      `json:"source_format"`
	TargetFormat string      `json:"target_format"`
	Success      bool        `json:"success"`
	IssueCount   int         `json:"issue_count"`
	Issues       []dataIssue `json:"issues,omitempty"`
	WrittenTo    string      `json:"written_to,omitempty"`
	Document     string      `json:"document,omitempty"`
}

func handleDataConvert(_ context.Context, _ *mcp.CallToolRequest, input dataConvertInput) (*mcp.CallToolResult, dataConvertOutput, error) {
	opts, err := buildDataOptions(input)
	if err != nil {
		return errResult(err), dataConvertOutput{}, nil
	}

	result, err := dataformat.ConvertWithOptions(opts...)
	if err != nil {
		return errResult(err), dataConvertOutput{}, nil
	}

	output := dataConvertOutput{
		SourceFormat: result.SourceFormat.String(),
		TargetFormat: result.TargetFormat.String(),
		Success:      result.Success,
		IssueCount:   len(result.Issues),
	}

	output.Issues = makeSlice[dataIssue](len(result.Issues))
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, dataIssue{
			Severity: issue.Severity.String(),
			Path:     issue.Path,
			Message:  issue.Message,
			Context:  issue.Context,
		})
	}

	written, err := writeOrInline(input.Output, []byte(result.Output))
	if err != nil {
		return errResult(err), dataConvertOutput{}, nil
	}
	if written != "" {
		output.WrittenTo = written
	} else {
		output.Document = result.Output
	}

	return nil, output, nil
}

// buildDataOptions translates the MCP input into dataformat options,
// filling unset settings from the server configuration.
func buildDataOptions(input dataConvertInput) ([]dataformat.Option, error) {
	text, err := input.Input.resolve()
	if err != nil {
		return nil, err
	}
	to, err := dataformat.ParseFormat(input.To, "output")
	if err != nil {
		return nil, err
	}
	var from dataformat.Format
	if input.From != "" {
		if from, err = dataformat.ParseFormat(input.From, "input"); err != nil {
			return nil, err
		}
	}

	rootName := input.RootName
	if rootName == "" {
		rootName = cfg.RootName
	}
	fullYAML := cfg.FullYAML
	if input.FullYAML != nil {
		fullYAML = *input.FullYAML
	}
	includeInfo := true
	if input.IncludeInfo != nil {
		includeInfo = *input.IncludeInfo
	}

	return []dataformat.Option{
		dataformat.WithInput(text),
		dataformat.WithSourceFormat(from),
		dataformat.WithTargetFormat(to),
		dataformat.WithRootName(rootName),
		dataformat.WithFullYAML(fullYAML),
		dataformat.WithStrictMode(input.Strict),
		dataformat.WithIncludeInfo(includeInfo),
		dataformat.WithMaxInputSize(cfg.MaxInputSize),
		dataformat.WithLogger(dataformat.NewSlogAdapter(slog.Default())),
	}, nil
}
