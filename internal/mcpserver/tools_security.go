package mcpserver

import (
	"context"

	"github.com/erraggy/convkit/hashgen"
	"github.com/erraggy/convkit/password"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type hashInput struct {
	Input     textInput `json:"input"               jsonschema:"The text to hash"`
	Algorithm string    `json:"algorithm,omitempty" jsonschema:"md5\\, sha1\\, sha256 or sha512. Omit for all four."`
}

type hashOutput struct {
	Algorithm  string `json:"algorithm,omitempty"`
	Digest     string `json:"digest,omitempty"`
	MD5        string `json:"md5,omitempty"`
	SHA1       string `json:"sha1,omitempty"`
	SHA256     string `json:"sha256,omitempty"`
	SHA512     string `json:"sha512,omitempty"`
	Bytes      int    `json:"bytes"`
	Characters int    `json:"characters"`
}

func handleHashGenerate(_ context.Context, _ *mcp.CallToolRequest, input hashInput) (*mcp.CallToolResult, hashOutput, error) {
	text, err := input.Input.resolve()
	if err != nil {
		return errResult(err), hashOutput{}, nil
	}

	sums := hashgen.Sum(text)
	if input.Algorithm != "" {
		a, err := hashgen.ParseAlgorithm(input.Algorithm)
		if err != nil {
			return errResult(err), hashOutput{}, nil
		}
		return nil, hashOutput{
			Algorithm:  a.DisplayName(),
			Digest:     sums.Get(a),
			Bytes:      sums.Bytes,
			Characters: sums.Characters,
		}, nil
	}

	return nil, hashOutput{
		MD5:        sums.MD5,
		SHA1:       sums.SHA1,
		SHA256:     sums.SHA256,
		SHA512:     sums.SHA512,
		Bytes:      sums.Bytes,
		Characters: sums.Characters,
	}, nil
}

type passwordInput struct {
	Length           int    `json:"length,omitempty"            jsonschema:"Password length 4-128. Defaults to CONVKIT_PASSWORD_LENGTH."`
	Uppercase        *bool  `json:"uppercase,omitempty"         jsonschema:"Include A-Z (default true)"`
	Lowercase        *bool  `json:"lowercase,omitempty"         jsonschema:"Include a-z (default true)"`
	Digits           *bool  `json:"digits,omitempty"            jsonschema:"Include 0-9 (default true)"`
	Symbols          *bool  `json:"symbols,omitempty"           jsonschema:"Include punctuation symbols (default true)"`
	ExcludeSimilar   bool   `json:"exclude_similar,omitempty"   jsonschema:"Drop look-alike characters such as l and 1 and O and 0"`
	ExcludeAmbiguous bool   `json:"exclude_ambiguous,omitempty" jsonschema:"Drop brackets and quotes and other hard-to-type symbols"`
	Passphrase       bool   `json:"passphrase,omitempty"        jsonschema:"Generate a four-word passphrase instead"`
	Check            string `json:"check,omitempty"             jsonschema:"Score this password instead of generating one"`
}

type passwordOutput struct {
	Password string `json:"password,omitempty"`
	Score    int    `json:"score"`
	Label    string `json:"label"`
}

func handlePasswordGenerate(_ context.Context, _ *mcp.CallToolRequest, input passwordInput) (*mcp.CallToolResult, passwordOutput, error) {
	if input.Check != "" {
		s := password.Score(input.Check)
		return nil, passwordOutput{Score: s.Score, Label: s.Label}, nil
	}

	var pw string
	var err error
	if input.Passphrase {
		pw, err = password.Passphrase(nil)
	} else {
		pw, err = password.Generate(passwordOptions(input))
	}
	if err != nil {
		return errResult(err), passwordOutput{}, nil
	}
	s := password.Score(pw)
	return nil, passwordOutput{Password: pw, Score: s.Score, Label: s.Label}, nil
}

func passwordOptions(input passwordInput) password.Options {
	o := password.DefaultOptions()
	o.Length = cfg.PasswordLength
	if input.Length != 0 {
		o.Length = input.Length
	}
	for _, f := range []struct {
		in  *bool
		dst *bool
	}{
		{input.Uppercase, &o.Uppercase},
		{input.Lowercase, &o.Lowercase},
		{input.Digits, &o.Digits},
		{input.Symbols, &o.Symbols},
	} {
		if f.in != nil {
			*f.dst = *f.in
		}
	}
	o.ExcludeSimilar = input.ExcludeSimilar
	o.ExcludeAmbiguous = input.ExcludeAmbiguous
	return o
}
