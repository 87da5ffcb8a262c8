package market

import (
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/forgesim/smithg/internal/economy"
)

// Drift tuning. The noise coordinate advances by driftStep per round;
// itemSpread keeps the per-item noise tracks decorrelated.
const (
	driftStep      = 0.05
	itemSpread     = 17.31
	priceDriftFrac = 0.15 // bias moves at most ±15% per round
	amountDriftAbs = 250.0
)

type itemBias struct {
	midPrice  float64
	midAmount float64
}

// DriftMarket assigns each item a persistent mid-price and mid-amount
// bias at construction and perturbs it every tick with coherent noise,
// so prices drift smoothly across rounds instead of being independent
// draws. The perturbed bias is the mode of a triangular distribution
// the round's quote is sampled from.
//
// The sign of the sampled amount picks the side: negative means the
// market sells |amount| units, positive means it buys, zero drops the
// item from the round entirely. One draw per item means an item can
// never be quoted on both sides.
type DriftMarket struct {
	rng   *rand.Rand
	noise opensimplex.Noise
	items []economy.Item
	bias  []itemBias
	book  *economy.OfferBook
	round int
}

var _ Market = (*DriftMarket)(nil)

// NewDriftMarket creates a drift market over the catalog. The seed
// fixes both the per-item biases and the whole offer sequence.
func NewDriftMarket(items []economy.Item, seed int64) *DriftMarket {
	rng := rand.New(rand.NewSource(seed))
	m := &DriftMarket{
		rng:   rng,
		noise: opensimplex.New(seed),
		items: make([]economy.Item, len(items)),
		bias:  make([]itemBias, 0, len(items)),
		book:  economy.NewOfferBook(items),
	}
	copy(m.items, items)
	for range m.items {
		m.bias = append(m.bias, itemBias{
			midPrice:  float64(rng.Intn(maxPrice-2) + 2),
			midAmount: float64(rng.Intn(2*maxAmount-1)) - (maxAmount - 1),
		})
	}
	return m
}

// Tick regenerates the offer book for the next round.
func (m *DriftMarket) Tick() {
	m.round++
	m.book.Reset()

	for i, item := range m.items {
		bias := m.bias[i]
		x := float64(i) * itemSpread
		y := float64(m.round) * driftStep

		priceDrift := m.noise.Eval2(x, y)
		amountDrift := m.noise.Eval2(x+itemSpread/2, y)

		mode := clamp(bias.midPrice*(1+priceDriftFrac*priceDrift), minPrice, maxPrice)
		midAmount := clamp(bias.midAmount+amountDriftAbs*amountDrift, -maxAmount, maxAmount)

		price := economy.Price(triangular(m.rng, minPrice, maxPrice, mode))
		amount := economy.Amount(triangular(m.rng, -maxAmount, maxAmount, midAmount))

		offer := economy.TradeOffer{Item: item, Price: price}
		switch {
		case amount < 0:
			offer.Amount = -amount
			m.book.PutSell(economy.SellOffer{TradeOffer: offer})
		case amount > 0:
			offer.Amount = amount
			m.book.PutBuy(economy.BuyOffer{TradeOffer: offer})
		}
	}
}

// FindBuy returns the current buy offer for an item, if any.
func (m *DriftMarket) FindBuy(item economy.Item) (economy.BuyOffer, bool) {
	return m.book.FindBuy(item)
}

// FindSell returns the current sell offer for an item, if any.
func (m *DriftMarket) FindSell(item economy.Item) (economy.SellOffer, bool) {
	return m.book.FindSell(item)
}

// BuyOffers returns this round's buy offers in catalog order.
func (m *DriftMarket) BuyOffers() []economy.BuyOffer {
	return m.book.BuyOffers()
}

// SellOffers returns this round's sell offers in catalog order.
func (m *DriftMarket) SellOffers() []economy.SellOffer {
	return m.book.SellOffers()
}
