package syntax

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf16"
)

// ErrBadEscape is returned by DecodeString for a malformed escape sequence.
var ErrBadEscape = errors.New("malformed escape sequence")

// DecodeString decodes the escape sequences in the raw value of a string
// literal token.  A `\u` escape naming a lone UTF-16 surrogate is malformed.
func DecodeString(raw string) (string, error) {
	if !strings.ContainsRune(raw, '\\') {
		return raw, nil
	}

	sb := strings.Builder{}
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' {
			sb.WriteByte(raw[i])
			continue
		}

		i++
		if i >= len(raw) {
			return "", ErrBadEscape
		}

		switch raw[i] {
		case '"', '\\':
			sb.WriteByte(raw[i])
		case 'b':
			sb.WriteByte('\b')
		case 'n':
			sb.WriteByte('\n')
		case 'f':
			sb.WriteByte('\f')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'u':
			if i+5 > len(raw) {
				return "", ErrBadEscape
			}

			code, err := strconv.ParseUint(raw[i+1:i+5], 16, 32)
			if err != nil || utf16.IsSurrogate(rune(code)) {
				return "", ErrBadEscape
			}

			sb.WriteRune(rune(code))
			i += 4
		default:
			return "", ErrBadEscape
		}
	}

	return sb.String(), nil
}
