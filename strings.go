package arena

import "unsafe"

// CopyBytes copies b into the arena and returns the arena-backed copy.
// Returns nil for an empty input.
func CopyBytes(a *Arena, b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	dst := a.AllocBytes(len(b))
	copy(dst, b)
	return dst
}

// CopyString copies s into the arena and returns a string backed by arena
// memory. The copy is valid until the arena is reset past it, rewound
// past it, or released.
func CopyString(a *Arena, s string) string {
	if len(s) == 0 {
		return ""
	}
	b := a.AllocBytes(len(s))
	copy(b, s)
	return unsafe.String(unsafe.SliceData(b), len(b))
}
