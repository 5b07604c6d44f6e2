// Package input translates raw terminal events into the host event vocabulary.
package input

import (
	"fmt"
	"strings"
)

// KeyKind discriminates KeyCode variants
type KeyKind uint8

const (
	KindNull KeyKind = iota // Key with no vocabulary entry
	KindBackspace
	KindEnter
	KindLeft
	KindRight
	KindUp
	KindDown
	KindHome
	KindEnd
	KindPageUp
	KindPageDown
	KindTab
	KindBackTab
	KindDelete
	KindInsert
	KindFunction // F1..F64, number in KeyCode.F
	KindScalar   // Literal character in KeyCode.Text
	KindEsc
	KindCapsLock
	KindScrollLock
	KindNumLock
	KindPrintScreen
	KindPause
	KindMenu
	KindKeypadBegin
	KindMedia    // KeyCode.Media
	KindModifier // KeyCode.Modifier
)

// MediaKey enumerates media keys
type MediaKey uint8

const (
	MediaPlay MediaKey = iota
	MediaPause
	MediaPlayPause
	MediaReverse
	MediaStop
	MediaFastForward
	MediaRewind
	MediaTrackNext
	MediaTrackPrevious
	MediaRecord
	MediaLowerVolume
	MediaRaiseVolume
	MediaMuteVolume
)

// ModifierKey enumerates modifier keys pressed on their own
type ModifierKey uint8

const (
	ModLeftShift ModifierKey = iota
	ModLeftControl
	ModLeftAlt
	ModLeftSuper
	ModLeftHyper
	ModLeftMeta
	ModRightShift
	ModRightControl
	ModRightAlt
	ModRightSuper
	ModRightHyper
	ModRightMeta
	ModIsoLevel3Shift
	ModIsoLevel5Shift
)

// KeyCode is an abstract key identity
// Only the payload field matching Kind is meaningful
type KeyCode struct {
	Kind     KeyKind
	F        uint8
	Text     string
	Media    MediaKey
	Modifier ModifierKey
}

// Code returns a KeyCode for kinds without payload
func Code(k KeyKind) KeyCode {
	return KeyCode{Kind: k}
}

// Function returns the function key Fn
func Function(n uint8) KeyCode {
	return KeyCode{Kind: KindFunction, F: n}
}

// Scalar returns a character key carrying the literal text
func Scalar(s string) KeyCode {
	return KeyCode{Kind: KindScalar, Text: s}
}

// Media returns a media key code
func Media(m MediaKey) KeyCode {
	return KeyCode{Kind: KindMedia, Media: m}
}

// Modifier returns a modifier-only key code
func Modifier(m ModifierKey) KeyCode {
	return KeyCode{Kind: KindModifier, Modifier: m}
}

// Mods is a bitset of modifiers held with a key
type Mods uint8

const (
	ModShift Mods = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
	ModHyper

	ModNone Mods = 0
)

// Key is a key press with its held modifiers
type Key struct {
	Code KeyCode
	Mods Mods
}

// kindNames maps payload-free kinds to canonical config names
var kindNames = map[KeyKind]string{
	KindNull:        "Null",
	KindBackspace:   "Backspace",
	KindEnter:       "Enter",
	KindLeft:        "Left",
	KindRight:       "Right",
	KindUp:          "Up",
	KindDown:        "Down",
	KindHome:        "Home",
	KindEnd:         "End",
	KindPageUp:      "PageUp",
	KindPageDown:    "PageDown",
	KindTab:         "Tab",
	KindBackTab:     "BackTab",
	KindDelete:      "Delete",
	KindInsert:      "Insert",
	KindEsc:         "Esc",
	KindCapsLock:    "CapsLock",
	KindScrollLock:  "ScrollLock",
	KindNumLock:     "NumLock",
	KindPrintScreen: "PrintScreen",
	KindPause:       "Pause",
	KindMenu:        "Menu",
	KindKeypadBegin: "KeypadBegin",
}

var mediaNames = [...]string{
	MediaPlay:          "Play",
	MediaPause:         "Pause",
	MediaPlayPause:     "PlayPause",
	MediaReverse:       "Reverse",
	MediaStop:          "Stop",
	MediaFastForward:   "FastForward",
	MediaRewind:        "Rewind",
	MediaTrackNext:     "TrackNext",
	MediaTrackPrevious: "TrackPrevious",
	MediaRecord:        "Record",
	MediaLowerVolume:   "LowerVolume",
	MediaRaiseVolume:   "RaiseVolume",
	MediaMuteVolume:    "MuteVolume",
}

var modifierNames = [...]string{
	ModLeftShift:      "LeftShift",
	ModLeftControl:    "LeftControl",
	ModLeftAlt:        "LeftAlt",
	ModLeftSuper:      "LeftSuper",
	ModLeftHyper:      "LeftHyper",
	ModLeftMeta:       "LeftMeta",
	ModRightShift:     "RightShift",
	ModRightControl:   "RightControl",
	ModRightAlt:       "RightAlt",
	ModRightSuper:     "RightSuper",
	ModRightHyper:     "RightHyper",
	ModRightMeta:      "RightMeta",
	ModIsoLevel3Shift: "IsoLevel3Shift",
	ModIsoLevel5Shift: "IsoLevel5Shift",
}

func (m MediaKey) String() string {
	if int(m) < len(mediaNames) {
		return mediaNames[m]
	}
	return fmt.Sprintf("MediaKey(%d)", m)
}

func (m ModifierKey) String() string {
	if int(m) < len(modifierNames) {
		return modifierNames[m]
	}
	return fmt.Sprintf("ModifierKey(%d)", m)
}

// String returns the canonical name accepted by ParseKeyCode
func (c KeyCode) String() string {
	switch c.Kind {
	case KindFunction:
		return fmt.Sprintf("F%d", c.F)
	case KindScalar:
		if c.Text == " " {
			return "Space"
		}
		return c.Text
	case KindMedia:
		return "Media:" + c.Media.String()
	case KindModifier:
		return "Modifier:" + c.Modifier.String()
	}
	if name, ok := kindNames[c.Kind]; ok {
		return name
	}
	return fmt.Sprintf("KeyKind(%d)", c.Kind)
}

func (m Mods) String() string {
	var parts []string
	if m&ModCtrl != 0 {
		parts = append(parts, "Ctrl")
	}
	if m&ModAlt != 0 {
		parts = append(parts, "Alt")
	}
	if m&ModShift != 0 {
		parts = append(parts, "Shift")
	}
	if m&ModMeta != 0 {
		parts = append(parts, "Meta")
	}
	if m&ModHyper != 0 {
		parts = append(parts, "Hyper")
	}
	return strings.Join(parts, "+")
}

func (k Key) String() string {
	if k.Mods == ModNone {
		return k.Code.String()
	}
	return k.Mods.String() + "+" + k.Code.String()
}
