// Package market generates the round's tradeable offers. Offer
// generation is a pluggable strategy behind the Market interface; two
// policies are provided, both driven by an explicit seed so runs are
// reproducible.
package market

import (
	"math"
	"math/rand"

	"github.com/forgesim/smithg/internal/economy"
)

// Market produces and exposes one round's offers. Tick replaces the
// entire book; an item never appears on both sides in the same round,
// and unfilled offers are never carried over.
type Market interface {
	Tick()
	FindBuy(item economy.Item) (economy.BuyOffer, bool)
	FindSell(item economy.Item) (economy.SellOffer, bool)
	BuyOffers() []economy.BuyOffer
	SellOffers() []economy.SellOffer
}

// Price and amount bounds shared by both policies.
const (
	minPrice  = 1
	maxPrice  = 10000
	maxAmount = 1000
)

// triangular samples a triangular distribution on [lo, hi] with the
// given mode.
func triangular(rng *rand.Rand, lo, hi, mode float64) float64 {
	u := rng.Float64()
	c := (mode - lo) / (hi - lo)
	if u < c {
		return lo + math.Sqrt(u*(hi-lo)*(mode-lo))
	}
	return hi - math.Sqrt((1-u)*(hi-lo)*(hi-mode))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
