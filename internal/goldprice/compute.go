package goldprice

import "math"

// Karats the store stocks. 24k is the feed's base rate.
var Karats = []int{24, 22, 18}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// KaratRate scales the 24k per-gram rate down by purity.
func KaratRate(rate24k float64, karat int) float64 {
	if karat <= 0 || karat > 24 {
		return 0
	}
	return round2(rate24k * float64(karat) / 24)
}

// ProductPrice prices one gold piece: metal value by weight and purity, plus
// the making charge percentage on top.
func ProductPrice(weightGrams float64, karat int, rate24k, makingChargePct float64) float64 {
	metal := weightGrams * KaratRate(rate24k, karat)
	return round2(metal * (1 + makingChargePct/100))
}

// PercentChange is the day-over-day movement shown next to the live rate.
func PercentChange(prev, current float64) float64 {
	if prev == 0 {
		return 0
	}
	return round2((current - prev) / prev * 100)
}
