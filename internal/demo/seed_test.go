package demo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashStringToInt(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want uint32
	}{
		{name: "empty string", in: "", want: 1779033703},
		{name: "single character", in: "a", want: 1617361628},
		{name: "county key", in: "ca|los angeles county", want: 3230476093},
		{name: "geo key", in: "geo:34.05,-118.24", want: 4145071043},
		{name: "global key", in: GlobalRegionKey, want: 536883433},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HashStringToInt(tt.in))
		})
	}
}

func TestHashStringToInt_Total(t *testing.T) {
	inputs := []string{
		"",
		" ",
		strings.Repeat("x", 10_000),
		"café|münchen",
		"🐕|🐾",
		"\x00\x01\x02",
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() { HashStringToInt(in) })
		assert.Equal(t, HashStringToInt(in), HashStringToInt(in))
	}
	// Keys differing only in case must not collide by accident of the fold.
	assert.NotEqual(t, HashStringToInt("ca|orange county"), HashStringToInt("CA|orange county"))
}

func TestMulberry32_KnownSequence(t *testing.T) {
	rng := Mulberry32(0)
	assert.InDelta(t, 0.26642920868471265, rng(), 1e-15)
	assert.InDelta(t, 0.0003297457005828619, rng(), 1e-15)
	assert.InDelta(t, 0.2232720274478197, rng(), 1e-15)

	rng = Mulberry32(HashStringToInt("ca|los angeles county"))
	assert.InDelta(t, 0.246931518195197, rng(), 1e-15)
	assert.InDelta(t, 0.6178923593834043, rng(), 1e-15)
	assert.InDelta(t, 0.6657017506659031, rng(), 1e-15)
}

func TestMulberry32_Range(t *testing.T) {
	for _, seed := range []uint32{0, 1, 42, 1779033703, 0xFFFFFFFF} {
		rng := Mulberry32(seed)
		for i := 0; i < 10_000; i++ {
			v := rng()
			require.GreaterOrEqual(t, v, 0.0, "seed %d draw %d", seed, i)
			require.Less(t, v, 1.0, "seed %d draw %d", seed, i)
		}
	}
}

func TestMulberry32_IndependentState(t *testing.T) {
	a := Mulberry32(7)
	b := Mulberry32(7)
	first := a()
	a()
	a()
	// b has its own state and starts from the beginning.
	assert.Equal(t, first, b())
}
