package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// NewUTF8Reader detects the encoding of the input and returns a reader
// that decodes the content to UTF-8.
//
// Detection order:
//  1. Check for BOM (UTF-8 BOM is stripped; UTF-16 LE/BE is decoded)
//  2. Validate if the content is valid UTF-8 and return as-is
//  3. Heuristic detection via chardet
//  4. Fallback to Windows-1252
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	// Peek enough bytes for BOM detection and charset heuristics.
	buf, err := br.Peek(4096)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peek: %w", err)
	}

	if bytes.HasPrefix(buf, bomUTF8) {
		// Discard the 3-byte UTF-8 BOM and return the rest as-is.
		_, _ = br.Discard(len(bomUTF8))
		return br, nil
	}

	if bytes.HasPrefix(buf, bomUTF16LE) {
		decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		return transform.NewReader(br, decoder), nil
	}

	if bytes.HasPrefix(buf, bomUTF16BE) {
		decoder := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
		return transform.NewReader(br, decoder), nil
	}

	if utf8.Valid(buf) {
		return br, nil
	}

	return transform.NewReader(br, legacyDecoder(buf)), nil
}

// DecodePrefix decodes a bounded content prefix to UTF-8. It is used for
// pre-flight validation: a prefix that cannot be decoded under UTF-8 or a
// detected legacy single-byte encoding marks the whole file as unreadable.
func DecodePrefix(buf []byte) (string, error) {
	buf = bytes.TrimPrefix(buf, bomUTF8)

	if bytes.HasPrefix(buf, bomUTF16LE) || bytes.HasPrefix(buf, bomUTF16BE) {
		endian := unicode.LittleEndian
		if bytes.HasPrefix(buf, bomUTF16BE) {
			endian = unicode.BigEndian
		}

		decoded, _, err := transform.Bytes(unicode.UTF16(endian, unicode.UseBOM).NewDecoder(), buf)
		if err != nil {
			return "", fmt.Errorf("decoding UTF-16 prefix: %w", err)
		}

		return string(decoded), nil
	}

	if utf8.Valid(buf) {
		return string(buf), nil
	}

	decoded, _, err := transform.Bytes(legacyDecoder(buf), buf)
	if err != nil {
		return "", fmt.Errorf("decoding legacy prefix: %w", err)
	}

	return string(decoded), nil
}

// legacyDecoder picks a single-byte decoder for content that is not valid
// UTF-8, using chardet heuristics with a Windows-1252 fallback.
func legacyDecoder(buf []byte) transform.Transformer {
	detector := chardet.NewTextDetector()

	result, err := detector.DetectBest(buf)
	if err == nil {
		switch result.Charset {
		case "ISO-8859-9":
			return charmap.ISO8859_9.NewDecoder()
		}
	}

	return charmap.Windows1252.NewDecoder()
}
