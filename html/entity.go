package html

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark/util"
)

// DecodeEntity decodes the body of an HTML character reference, i.e. the
// text between '&' and ';'. Both named ("amp", "hellip") and numeric
// ("#8212", "#x2014") forms are accepted. The second return value is false
// when the reference is not recognized.
func DecodeEntity(ref string) (string, bool) {
	if ref == "" {
		return "", false
	}

	if ref[0] == '#' {
		return decodeNumericEntity(ref[1:])
	}

	entity, ok := util.LookUpHTML5EntityByName(ref)
	if !ok {
		return "", false
	}
	return string(entity.Characters), true
}

func decodeNumericEntity(digits string) (string, bool) {
	base := 10
	if strings.HasPrefix(digits, "x") || strings.HasPrefix(digits, "X") {
		base = 16
		digits = digits[1:]
	}
	if digits == "" {
		return "", false
	}

	code, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return "", false
	}

	r := rune(code)
	if r == 0 || !utf8.ValidRune(r) {
		return string(utf8.RuneError), true
	}
	return string(r), true
}
