package demo

import "unicode/utf16"

const (
	hashInit       uint32 = 1779033703
	hashMultiplier uint32 = 3432918353
	mulberryStep   uint32 = 0x6D2B79F5
)

// HashStringToInt folds a string into an unsigned 32-bit seed.
// Characters are hashed as UTF-16 code units so keys produced by the web
// client and by this service land on the same seed.
func HashStringToInt(s string) uint32 {
	units := utf16.Encode([]rune(s))
	h := hashInit ^ uint32(len(units))
	for _, c := range units {
		h = (h ^ uint32(c)) * hashMultiplier
		h = h<<13 | h>>19
	}
	return h
}

// Mulberry32 returns a generator of floats in [0, 1) seeded with seed.
// The returned function owns its state; do not share it between goroutines.
func Mulberry32(seed uint32) func() float64 {
	a := seed
	return func() float64 {
		a += mulberryStep
		t := (a ^ a>>15) * (a | 1)
		t ^= t + (t^t>>7)*(t|61)
		return float64(t^t>>14) / 4294967296
	}
}
