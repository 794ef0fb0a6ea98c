// Package hashgen computes message digests of text and formats them as
// lowercase hexadecimal.
//
// MD5 and SHA-1 are offered for checksums and legacy interoperability only.
package hashgen

import (
	"crypto/md5"  //nolint:gosec // checksum display, not a security boundary
	"crypto/sha1" //nolint:gosec // checksum display, not a security boundary
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"
	"strings"
	"unicode/utf8"

	"github.com/erraggy/convkit/converrors"
)

// Algorithm names a digest algorithm.
type Algorithm string

// Supported algorithms.
const (
	MD5    Algorithm = "md5"
	SHA1   Algorithm = "sha1"
	SHA256 Algorithm = "sha256"
	SHA512 Algorithm = "sha512"
)

// Algorithms returns the supported algorithms in display order.
func Algorithms() []Algorithm {
	return []Algorithm{MD5, SHA1, SHA256, SHA512}
}

// ParseAlgorithm resolves an algorithm name. Case and hyphens are ignored,
// so "SHA-256" and "sha256" are the same.
func ParseAlgorithm(name string) (Algorithm, error) {
	a := Algorithm(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", ""))
	switch a {
	case MD5, SHA1, SHA256, SHA512:
		return a, nil
	}
	return "", &converrors.ValidationError{Field: "algorithm", Value: name, Message: "expected md5, sha1, sha256 or sha512"}
}

// DisplayName returns the conventional spelling, e.g. "SHA-256".
func (a Algorithm) DisplayName() string {
	switch a {
	case MD5:
		return "MD5"
	case SHA1:
		return "SHA-1"
	case SHA256:
		return "SHA-256"
	case SHA512:
		return "SHA-512"
	}
	return strings.ToUpper(string(a))
}

func (a Algorithm) hasher() hash.Hash {
	switch a {
	case MD5:
		return md5.New() //nolint:gosec // checksum display
	case SHA1:
		return sha1.New() //nolint:gosec // checksum display
	case SHA256:
		return sha256.New()
	case SHA512:
		return sha512.New()
	}
	return nil
}

// Hex formats b as lowercase hexadecimal, two digits per byte.
func Hex(b []byte) string {
	return hex.EncodeToString(b)
}

// Digest hashes the UTF-8 bytes of text with the named algorithm.
func Digest(a Algorithm, text string) (string, error) {
	h := a.hasher()
	if h == nil {
		return "", &converrors.ValidationError{Field: "algorithm", Value: string(a), Message: "unsupported algorithm"}
	}
	h.Write([]byte(text))
	return Hex(h.Sum(nil)), nil
}

// Sums holds every digest of one input.
type Sums struct {
	MD5    string `json:"md5" yaml:"md5"`
	SHA1   string `json:"sha1" yaml:"sha1"`
	SHA256 string `json:"sha256" yaml:"sha256"`
	SHA512 string `json:"sha512" yaml:"sha512"`
	// Bytes is the length of the UTF-8 input.
	Bytes int `json:"bytes" yaml:"bytes"`
	// Characters is the number of runes in the input.
	Characters int `json:"characters" yaml:"characters"`
}

// Sum computes every supported digest of text.
func Sum(text string) Sums {
	s := Sums{Bytes: len(text), Characters: utf8.RuneCountInString(text)}
	for _, a := range Algorithms() {
		d, _ := Digest(a, text)
		switch a {
		case MD5:
			s.MD5 = d
		case SHA1:
			s.SHA1 = d
		case SHA256:
			s.SHA256 = d
		case SHA512:
			s.SHA512 = d
		}
	}
	return s
}

// Get returns the digest for a.
func (s Sums) Get(a Algorithm) string {
	switch a {
	case MD5:
		return s.MD5
	case SHA1:
		return s.SHA1
	case SHA256:
		return s.SHA256
	case SHA512:
		return s.SHA512
	}
	return ""
}
