package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmcampos/spendlane/internal/encoding"
)

func TestNewUTF8Reader_UTF8Passthrough(t *testing.T) {
	// Valid UTF-8 with accented characters should pass through unchanged.
	input := "supplier;amount\nCafé São Jorge;12.50\n"
	r, err := encoding.NewUTF8Reader(bytes.NewReader([]byte(input)))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, input, string(got))
}

func TestNewUTF8Reader_Latin1(t *testing.T) {
	// Windows-1252 encoded "Declaração\n".
	// In Windows-1252: ç = 0xE7, ã = 0xE3
	latin1Bytes := []byte{
		'D', 'e', 'c', 'l', 'a', 'r', 'a', 0xE7, 0xE3, 'o', '\n',
	}

	r, err := encoding.NewUTF8Reader(bytes.NewReader(latin1Bytes))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "Declaração\n", string(got))
}

func TestNewUTF8Reader_UTF8BOM(t *testing.T) {
	// UTF-8 BOM (0xEF 0xBB 0xBF) should be stripped.
	bom := []byte{0xEF, 0xBB, 0xBF}
	content := []byte("supplier;amount\n")
	input := append(bom, content...)

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "supplier;amount\n", string(got))
}

func TestDecodePrefix_UTF8(t *testing.T) {
	got, err := encoding.DecodePrefix([]byte("supplier,category\nAcme,Travel\n"))
	require.NoError(t, err)
	assert.Equal(t, "supplier,category\nAcme,Travel\n", got)
}

func TestDecodePrefix_Latin1Fallback(t *testing.T) {
	got, err := encoding.DecodePrefix([]byte{'S', 0xE3, 'o', ' ', 'P', 'a', 'u', 'l', 'o'})
	require.NoError(t, err)
	assert.Equal(t, "São Paulo", got)
}

func TestDecodePrefix_StripsBOM(t *testing.T) {
	got, err := encoding.DecodePrefix([]byte{0xEF, 0xBB, 0xBF, 'a', 'b'})
	require.NoError(t, err)
	assert.Equal(t, "ab", got)
}
