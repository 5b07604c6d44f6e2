package input

import (
	"github.com/gdamore/tcell/v2"
)

// navKeys maps tcell special keys to payload-free kinds
// Keypad diagonals resolve to their navigation equivalents
var navKeys = map[tcell.Key]KeyKind{
	tcell.KeyBackspace:  KindBackspace,
	tcell.KeyDEL:        KindBackspace,
	tcell.KeyEnter:      KindEnter,
	tcell.KeyTab:        KindTab,
	tcell.KeyBacktab:    KindBackTab,
	tcell.KeyEsc:        KindEsc,
	tcell.KeyUp:         KindUp,
	tcell.KeyDown:       KindDown,
	tcell.KeyLeft:       KindLeft,
	tcell.KeyRight:      KindRight,
	tcell.KeyUpLeft:     KindHome,
	tcell.KeyUpRight:    KindPageUp,
	tcell.KeyDownLeft:   KindEnd,
	tcell.KeyDownRight:  KindPageDown,
	tcell.KeyCenter:     KindKeypadBegin,
	tcell.KeyPgUp:       KindPageUp,
	tcell.KeyPgDn:       KindPageDown,
	tcell.KeyHome:       KindHome,
	tcell.KeyEnd:        KindEnd,
	tcell.KeyInsert:     KindInsert,
	tcell.KeyDelete:     KindDelete,
	tcell.KeyPrint:      KindPrintScreen,
	tcell.KeyPause:      KindPause,
	tcell.KeyMenu:       KindMenu,
	tcell.KeyCapsLock:   KindCapsLock,
	tcell.KeyScrollLock: KindScrollLock,
	tcell.KeyNumLock:    KindNumLock,
}

// TranslateKey maps a tcell key event to the abstract key vocabulary
// Total: keys without an entry yield KindNull
func TranslateKey(ev *tcell.EventKey) Key {
	mods := translateMods(ev.Modifiers())
	k := ev.Key()

	switch {
	case k == tcell.KeyRune:
		r := ev.Rune()
		if code, extra, ok := translateFunctional(r); ok {
			return Key{Code: code, Mods: mods | extra}
		}
		return Key{Code: Scalar(string(r)), Mods: mods}

	case k >= tcell.KeyF1 && k <= tcell.KeyF64:
		return Key{Code: Function(uint8(k-tcell.KeyF1) + 1), Mods: mods}

	case k >= tcell.KeyCtrlSpace && k <= tcell.KeyCtrlUnderscore:
		// Ctrl+Space, Ctrl+A..Z and Ctrl+[\]^_
		return Key{Code: Scalar(ctrlBase(rune(k - tcell.KeyCtrlSpace))), Mods: mods | ModCtrl}
	}

	if kind, ok := navKeys[k]; ok {
		return Key{Code: Code(kind), Mods: mods}
	}

	// Remaining C0 control codes arrive when no Ctrl modifier was reported
	if k < 0x20 {
		return Key{Code: Scalar(ctrlBase(rune(k))), Mods: mods | ModCtrl}
	}

	return Key{Code: Code(KindNull), Mods: mods}
}

// ctrlBase returns the character typed with Ctrl for a control code offset 0-31
func ctrlBase(off rune) string {
	switch {
	case off == 0:
		return " "
	case off >= 1 && off <= 26:
		return string('a' + off - 1)
	}
	return string('@' + off)
}

func translateMods(m tcell.ModMask) Mods {
	var out Mods
	if m&tcell.ModShift != 0 {
		out |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= ModAlt
	}
	if m&tcell.ModMeta != 0 {
		out |= ModMeta
	}
	if m&tcell.ModHyper != 0 {
		out |= ModHyper
	}
	return out
}
