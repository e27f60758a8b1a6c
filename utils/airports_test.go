package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAirportCode(t *testing.T) {
	tests := map[string]string{
		"KJFK":  "JFK",
		" lax ": "LAX",
		"kord":  "ORD",
		"YSSY":  "YSSY",
		"SYD":   "SYD",
		"K-JF":  "K-JF",
		"":      "",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeAirportCode(in), "input %q", in)
	}
}

func TestNormalizeAirlineCode(t *testing.T) {
	assert.Equal(t, "QF", NormalizeAirlineCode(" qf"))
	assert.Equal(t, "KL", NormalizeAirlineCode("kl\t"))
}

func TestIsIATACode(t *testing.T) {
	assert.True(t, IsIATACode("QF"))
	assert.True(t, IsIATACode("SYD"))
	assert.True(t, IsIATACode("U2"))
	assert.False(t, IsIATACode(""))
	assert.False(t, IsIATACode("YSSY"))
	assert.False(t, IsIATACode("sy"))
	assert.False(t, IsIATACode("S-D"))
}
