package status

import "sync/atomic"

// MaxStringLen bounds stored text so a runaway error message cannot flood the info view
const MaxStringLen = 96

// AtomicString is a lock-free string cell
// Zero value is ready to use and reads ""
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the value, truncating to MaxStringLen bytes on a rune boundary
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		cut := MaxStringLen
		for cut > 0 && !runeStart(val[cut]) {
			cut--
		}
		val = val[:cut]
	}
	s.ptr.Store(&val)
}

func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}

func runeStart(b byte) bool {
	return b&0xC0 != 0x80
}
