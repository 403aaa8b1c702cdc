package goldprice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKaratRate(t *testing.T) {
	assert.Equal(t, 6000.0, KaratRate(6000, 24))
	assert.Equal(t, 5500.0, KaratRate(6000, 22))
	assert.Equal(t, 4500.0, KaratRate(6000, 18))
	assert.Equal(t, 0.0, KaratRate(6000, 0))
	assert.Equal(t, 0.0, KaratRate(6000, 30))
}

func TestProductPrice_MakingChargeOnTopOfMetalValue(t *testing.T) {
	// 10g of 22k at a 6000 base rate = 55000 metal, +12% making = 61600
	assert.Equal(t, 61600.0, ProductPrice(10, 22, 6000, 12))

	// zero making charge is just the metal value
	assert.Equal(t, 55000.0, ProductPrice(10, 22, 6000, 0))
}

func TestPercentChange(t *testing.T) {
	assert.Equal(t, 10.0, PercentChange(100, 110))
	assert.Equal(t, -5.0, PercentChange(100, 95))
	assert.Equal(t, 0.0, PercentChange(0, 95))
}
