package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "emerald-drop-earrings", slugify("Emerald Drop Earrings"))
	assert.Equal(t, "22k-gold-bangle", slugify("  22k Gold Bangle "))
	assert.Equal(t, "rani-haar", slugify("Rani  Haar!!"))
	assert.Equal(t, "a-b", slugify("a---b"))
}

func TestValidProductType(t *testing.T) {
	for _, valid := range []string{"jewellery", "set", "bangle", "bead"} {
		assert.True(t, validProductType(valid), valid)
	}
	assert.False(t, validProductType("ring"))
	assert.False(t, validProductType(""))
}
