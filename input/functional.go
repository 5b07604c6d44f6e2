package input

// Kitty keyboard protocol functional-key codepoints (Unicode private use area)
// Terminals using the protocol may deliver these as plain runes
const (
	kittyCapsLock    = 57358
	kittyScrollLock  = 57359
	kittyNumLock     = 57360
	kittyPrintScreen = 57361
	kittyPause       = 57362
	kittyMenu        = 57363
	kittyF13         = 57376
	kittyF35         = 57398
	kittyKP0         = 57399
	kittyKPBegin     = 57427
	kittyMediaFirst  = 57428 // Play
	kittyMediaLast   = 57440 // MuteVolume
	kittyModFirst    = 57441 // LeftShift
	kittyModLast     = 57454 // IsoLevel5Shift

	kittyFirst = kittyCapsLock
	kittyLast  = kittyModLast
)

// kittyKeypad covers KP_DECIMAL through KP_DELETE, following KP_0..KP_9
var kittyKeypad = [...]KeyCode{
	Scalar("."), Scalar("/"), Scalar("*"), Scalar("-"), Scalar("+"),
	Code(KindEnter), Scalar("="), Scalar(","),
	Code(KindLeft), Code(KindRight), Code(KindUp), Code(KindDown),
	Code(KindPageUp), Code(KindPageDown), Code(KindHome), Code(KindEnd),
	Code(KindInsert), Code(KindDelete),
}

// translateFunctional maps a functional-key codepoint through the lock, function,
// keypad, media and modifier sub-translators
// Modifier-only keys also report their own modifier bit
func translateFunctional(r rune) (KeyCode, Mods, bool) {
	if r < kittyFirst || r > kittyLast {
		return KeyCode{}, 0, false
	}

	switch {
	case r <= kittyMenu:
		return translateLock(r), 0, true
	case r >= kittyF13 && r <= kittyF35:
		return Function(uint8(r-kittyF13) + 13), 0, true
	case r >= kittyKP0 && r < kittyKPBegin:
		return translateKeypad(r), 0, true
	case r == kittyKPBegin:
		return Code(KindKeypadBegin), 0, true
	case r >= kittyMediaFirst && r <= kittyMediaLast:
		return Media(MediaKey(r - kittyMediaFirst)), 0, true
	case r >= kittyModFirst && r <= kittyModLast:
		m := ModifierKey(r - kittyModFirst)
		return Modifier(m), modifierBit(m), true
	}

	// 57364-57375 are unassigned
	return Code(KindNull), 0, true
}

func translateLock(r rune) KeyCode {
	switch r {
	case kittyCapsLock:
		return Code(KindCapsLock)
	case kittyScrollLock:
		return Code(KindScrollLock)
	case kittyNumLock:
		return Code(KindNumLock)
	case kittyPrintScreen:
		return Code(KindPrintScreen)
	case kittyPause:
		return Code(KindPause)
	}
	return Code(KindMenu)
}

func translateKeypad(r rune) KeyCode {
	if r < kittyKP0+10 {
		return Scalar(string('0' + r - kittyKP0))
	}
	idx := int(r - kittyKP0 - 10)
	if idx < len(kittyKeypad) {
		return kittyKeypad[idx]
	}
	return Code(KindNull)
}

func modifierBit(m ModifierKey) Mods {
	switch m {
	case ModLeftShift, ModRightShift:
		return ModShift
	case ModLeftControl, ModRightControl:
		return ModCtrl
	case ModLeftAlt, ModRightAlt:
		return ModAlt
	case ModLeftSuper, ModRightSuper, ModLeftMeta, ModRightMeta:
		return ModMeta
	case ModLeftHyper, ModRightHyper:
		return ModHyper
	}
	return 0
}
