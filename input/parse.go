package input

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// nameToKind is the case-insensitive reverse of kindNames plus aliases
var nameToKind map[string]KeyKind

func init() {
	nameToKind = make(map[string]KeyKind, len(kindNames)+8)
	for k, name := range kindNames {
		nameToKind[strings.ToLower(name)] = k
	}
	nameToKind["escape"] = KindEsc
	nameToKind["return"] = KindEnter
	nameToKind["pgup"] = KindPageUp
	nameToKind["pgdn"] = KindPageDown
	nameToKind["del"] = KindDelete
	nameToKind["ins"] = KindInsert
	nameToKind["print"] = KindPrintScreen
}

// ParseKeyCode parses a key name such as "Esc", "F5", "q", "Space" or "Media:Play"
func ParseKeyCode(name string) (KeyCode, error) {
	if name == "" {
		return KeyCode{}, errors.New("empty key name")
	}
	if utf8.RuneCountInString(name) == 1 {
		return Scalar(name), nil
	}

	lower := strings.ToLower(name)
	if lower == "space" {
		return Scalar(" "), nil
	}
	if k, ok := nameToKind[lower]; ok {
		return Code(k), nil
	}

	if lower[0] == 'f' {
		if n, err := strconv.Atoi(lower[1:]); err == nil && n >= 1 && n <= 64 {
			return Function(uint8(n)), nil
		}
	}

	if rest, ok := strings.CutPrefix(lower, "media:"); ok {
		for i, n := range mediaNames {
			if strings.ToLower(n) == rest {
				return Media(MediaKey(i)), nil
			}
		}
	}
	if rest, ok := strings.CutPrefix(lower, "modifier:"); ok {
		for i, n := range modifierNames {
			if strings.ToLower(n) == rest {
				return Modifier(ModifierKey(i)), nil
			}
		}
	}

	return KeyCode{}, errors.Errorf("unknown key name %q", name)
}
