package hashgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/convkit/converrors"
)

func TestDigest_KnownVectors(t *testing.T) {
	tests := []struct {
		alg  Algorithm
		in   string
		want string
	}{
		{MD5, "", "d41d8cd98f00b204e9800998ecf8427e"},
		{MD5, "abc", "900150983cd24fb0d6963f7d28e17f72"},
		{MD5, "Hello, World!", "65a8e27d8879283831b664bd8b7f0ad4"},
		{SHA1, "", "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
		{SHA1, "abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{SHA256, "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{SHA256, "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{SHA256, "Hello, World!", "dffd6021bb2bd5b0af676290809ec3a53191dd81c7f70a4b28688a362182986f"},
		{SHA512, "", "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e"},
	}
	for _, tt := range tests {
		got, err := Digest(tt.alg, tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s(%q)", tt.alg, tt.in)
	}

	_, err := Digest(Algorithm("crc32"), "x")
	assert.ErrorIs(t, err, converrors.ErrValidation)
}

func TestHex(t *testing.T) {
	assert.Equal(t, "000fa0ff", Hex([]byte{0x00, 0x0f, 0xa0, 0xff}))
	assert.Equal(t, "", Hex(nil))
}

func TestSum(t *testing.T) {
	s := Sum("héllo")
	assert.Equal(t, 6, s.Bytes)
	assert.Equal(t, 5, s.Characters)
	assert.Len(t, s.MD5, 32)
	assert.Len(t, s.SHA1, 40)
	assert.Len(t, s.SHA256, 64)
	assert.Len(t, s.SHA512, 128)

	for _, a := range Algorithms() {
		d, err := Digest(a, "héllo")
		require.NoError(t, err)
		assert.Equal(t, d, s.Get(a))
	}
}

func TestParseAlgorithm(t *testing.T) {
	for in, want := range map[string]Algorithm{"MD5": MD5, "sha-1": SHA1, " SHA-256 ": SHA256, "sha512": SHA512} {
		got, err := ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseAlgorithm("sha3")
	assert.ErrorIs(t, err, converrors.ErrValidation)

	assert.Equal(t, "SHA-256", SHA256.DisplayName())
}
