package market

import (
	"math/rand"

	"github.com/forgesim/smithg/internal/economy"
)

// ShuffleMarket regenerates the book from nothing every round: the
// catalog is shuffled, the first half becomes buy offers and the rest
// sell offers, with uniform prices and amounts. No bias is carried
// between rounds, so prices jump freely. Kept as the alternative to
// DriftMarket for worlds that want memoryless quotes.
type ShuffleMarket struct {
	rng   *rand.Rand
	items []economy.Item
	book  *economy.OfferBook
}

var _ Market = (*ShuffleMarket)(nil)

// NewShuffleMarket creates a shuffle market over the catalog.
func NewShuffleMarket(items []economy.Item, seed int64) *ShuffleMarket {
	m := &ShuffleMarket{
		rng:   rand.New(rand.NewSource(seed)),
		items: make([]economy.Item, len(items)),
		book:  economy.NewOfferBook(items),
	}
	copy(m.items, items)
	return m
}

// Tick regenerates the offer book for the next round.
func (m *ShuffleMarket) Tick() {
	m.book.Reset()

	shuffled := make([]economy.Item, len(m.items))
	copy(shuffled, m.items)
	m.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	mid := len(shuffled) / 2
	for i, item := range shuffled {
		offer := economy.TradeOffer{
			Item:   item,
			Amount: economy.Amount(m.rng.Intn(100) + 1),
			Price:  economy.Price(m.rng.Intn(maxPrice) + 1),
		}
		if i < mid {
			m.book.PutBuy(economy.BuyOffer{TradeOffer: offer})
		} else {
			m.book.PutSell(economy.SellOffer{TradeOffer: offer})
		}
	}
}

// FindBuy returns the current buy offer for an item, if any.
func (m *ShuffleMarket) FindBuy(item economy.Item) (economy.BuyOffer, bool) {
	return m.book.FindBuy(item)
}

// FindSell returns the current sell offer for an item, if any.
func (m *ShuffleMarket) FindSell(item economy.Item) (economy.SellOffer, bool) {
	return m.book.FindSell(item)
}

// BuyOffers returns this round's buy offers in catalog order.
func (m *ShuffleMarket) BuyOffers() []economy.BuyOffer {
	return m.book.BuyOffers()
}

// SellOffers returns this round's sell offers in catalog order.
func (m *ShuffleMarket) SellOffers() []economy.SellOffer {
	return m.book.SellOffers()
}
