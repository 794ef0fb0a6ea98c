package mcpserver

import (
	"context"
	"strings"
	"time"

	"github.com/erraggy/convkit/converrors"
	"github.com/erraggy/convkit/datetime"
	"github.com/erraggy/convkit/textconv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type textTransformInput struct {
	Input     textInput `json:"input"               jsonschema:"The text to transform"`
	Transform string    `json:"transform,omitempty" jsonschema:"Transform name. Omit to run every transform."`
}

type textResult struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type textTransformOutput struct {
	Results            []textResult `json:"results"`
	Words              int          `json:"words"`
	Characters         int          `json:"characters"`
	CharactersNoSpaces int          `json:"characters_no_spaces"`
	Lines              int          `json:"lines"`
}

func handleTextTransform(_ context.Context, _ *mcp.CallToolRequest, input textTransformInput) (*mcp.CallToolResult, textTransformOutput, error) {
	text, err := input.Input.resolve()
	if err != nil {
		return errResult(err), textTransformOutput{}, nil
	}

	var results []textResult
	if input.Transform == "" {
		all := textconv.All(text)
		results = make([]textResult, 0, len(all))
		for _, r := range all {
			results = append(results, textResult{Name: r.Name, Value: r.Value})
		}
	} else {
		v, err := textconv.Apply(input.Transform, text)
		if err != nil {
			return errResult(err), textTransformOutput{}, nil
		}
		results = []textResult{{Name: strings.ToLower(input.Transform), Value: v}}
	}

	counts := textconv.Count(text)
	return nil, textTransformOutput{
		Results:            results,
		Words:              counts.Words,
		Characters:         counts.Characters,
		CharactersNoSpaces: counts.CharactersNoSpaces,
		Lines:              counts.Lines,
	}, nil
}

type datetimeInput struct {
	Timestamp string `json:"timestamp,omitempty" jsonschema:"Unix timestamp in seconds"`
	Date      string `json:"date,omitempty"      jsonschema:"Date as YYYY-MM-DDTHH:MM or RFC 3339"`
	Timezone  string `json:"timezone,omitempty"  jsonschema:"IANA timezone for rendering and for reading date. Defaults to CONVKIT_TIMEZONE."`
}

type datetimeFormat struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type datetimeOutput struct {
	Unix     int64            `json:"unix"`
	Human    string           `json:"human"`
	ISO      string           `json:"iso"`
	Timezone string           `json:"timezone"`
	Zoned    string           `json:"zoned"`
	Formats  []datetimeFormat `json:"formats"`
}

// now is replaced in tests.
var now = time.Now

func handleDatetimeConvert(_ context.Context, _ *mcp.CallToolRequest, input datetimeInput) (*mcp.CallToolResult, datetimeOutput, error) {
	tz := input.Timezone
	if tz == "" {
		tz = cfg.Timezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return errResult(err), datetimeOutput{}, nil
	}

	var t time.Time
	switch {
	case input.Timestamp != "" && input.Date != "":
		return errResult(&converrors.ConfigError{Option: "input", Message: "set only one of timestamp or date"}), datetimeOutput{}, nil
	case input.Timestamp != "":
		if t, err = datetime.ParseUnix(input.Timestamp); err != nil {
			return errResult(err), datetimeOutput{}, nil
		}
	case input.Date != "":
		secs, err := datetime.ParseHuman(input.Date, loc)
		if err != nil {
			return errResult(err), datetimeOutput{}, nil
		}
		t = datetime.FromUnix(secs)
	default:
		t = now().Truncate(time.Second)
	}

	formats := datetime.Formats(t)
	output := datetimeOutput{
		Unix:     t.Unix(),
		Human:    datetime.HumanDate(t),
		ISO:      datetime.ISO(t),
		Timezone: tz,
		Zoned:    datetime.InZone(t, tz),
		Formats:  make([]datetimeFormat, 0, len(formats)),
	}
	for _, f := range formats {
		output.Formats = append(output.Formats, datetimeFormat{Name: f.Name, Value: f.Value})
	}
	return nil, output, nil
}
