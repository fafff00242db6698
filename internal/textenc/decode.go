package textenc

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Encoding identifies a charset that successfully decoded a file and can
// re-encode rewritten content the same way.
type Encoding struct {
	name  string
	codec encoding.Encoding
}

// Name returns the charset label (e.g. "utf-8", "windows-1252").
func (e Encoding) Name() string {
	return e.name
}

// Encode converts decoded text back into the bytes of this charset. UTF-8
// text passes through untouched.
func (e Encoding) Encode(text string) ([]byte, error) {
	if e.codec == nil {
		return []byte(text), nil
	}
	out, err := e.codec.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", e.name, err)
	}
	return out, nil
}

// DecodeError reports that no encoding in the chain could decode a file.
type DecodeError struct {
	Attempted []string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("content not decodable as %s", strings.Join(e.Attempted, " or "))
}

var fallbacks = map[string]encoding.Encoding{
	"windows-1252": charmap.Windows1252,
	"iso-8859-1":   charmap.ISO8859_1,
	"koi8-r":       charmap.KOI8R,
}

// SupportedFallback reports whether name is a usable fallback charset.
func SupportedFallback(name string) bool {
	_, ok := fallbacks[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// Decode runs raw through the encoding chain: strict UTF-8 first, then the
// named fallback charset. It returns the decoded text and the Encoding that
// accepted it, or a *DecodeError when the whole chain fails.
func Decode(raw []byte, fallback string) (string, Encoding, error) {
	if utf8.Valid(raw) {
		return string(raw), Encoding{name: "utf-8"}, nil
	}

	name := strings.ToLower(strings.TrimSpace(fallback))
	codec, ok := fallbacks[name]
	if !ok {
		return "", Encoding{}, &DecodeError{Attempted: []string{"utf-8"}}
	}

	decoded, err := codec.NewDecoder().Bytes(raw)
	// Charmap decoders substitute U+FFFD for bytes the charset leaves
	// undefined; treat that as a failed decode rather than silently
	// corrupting entry lines.
	if err != nil || strings.ContainsRune(string(decoded), utf8.RuneError) {
		return "", Encoding{}, &DecodeError{Attempted: []string{"utf-8", name}}
	}
	return string(decoded), Encoding{name: name, codec: codec}, nil
}

// Newline reports the line terminator the content uses: CRLF when it appears
// anywhere, LF otherwise.
func Newline(content string) string {
	if strings.Contains(content, "\r\n") {
		return "\r\n"
	}
	return "\n"
}
