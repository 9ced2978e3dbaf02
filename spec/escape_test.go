package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		result  string
		err     error
	}{
		{
			caption: "named escape sequences denote white spaces",
			src:     `\s\n\r\t`,
			result:  " \n\r\t",
		},
		{
			caption: "a hexadecimal escape sequence denotes a character code",
			src:     `\x41\x7F\x00`,
			result:  "A\x7f\x00",
		},
		{
			caption: "a backslash followed by a graphic character denotes the character",
			src:     `\\\-\!`,
			result:  `\-!`,
		},
		{
			caption: "\\x without two hexadecimal digits denotes x",
			src:     `\xg1\x4`,
			result:  `xg1x4`,
		},
		{
			caption: "a trailing backslash stands for itself",
			src:     `a\`,
			result:  `a\`,
		},
		{
			caption: "characters without backslashes are kept as they are",
			src:     `a-z`,
			result:  `a-z`,
		},
		{
			caption: "a hexadecimal escape sequence must be in ASCII range",
			src:     `\x80`,
			err:     synErrNonASCIIEscSeq,
		},
		{
			caption: "\\xFF is outside ASCII range",
			src:     `\xFF`,
			err:     synErrNonASCIIEscSeq,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			result, err := Escape(tt.src)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestUnescape(t *testing.T) {
	assert.Equal(t, `\s\n\r\t\x00\x7F\x1Bab`, Unescape(" \n\r\t\x00\x7f\x1bab"))

	// Unescape inverts Escape.
	for c := 0; c <= 0x7f; c++ {
		s := string([]byte{byte(c)})
		escaped, err := Escape(Unescape(s))
		require.NoError(t, err)
		assert.Equal(t, s, escaped, "character 0x%02x", c)
	}
}
