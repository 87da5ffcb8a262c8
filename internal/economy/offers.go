package economy

// OfferBook holds one round's worth of market quotes, keyed by item for
// O(1) lookup. The book is rebuilt from scratch every round; unfilled
// offers are never carried over.
type OfferBook struct {
	catalog []Item
	buys    map[Item]BuyOffer
	sells   map[Item]SellOffer
}

// NewOfferBook creates an empty book over the given catalog. Snapshot
// order follows catalog order, which keeps runs reproducible.
func NewOfferBook(catalog []Item) *OfferBook {
	b := &OfferBook{
		catalog: make([]Item, len(catalog)),
		buys:    make(map[Item]BuyOffer, len(catalog)),
		sells:   make(map[Item]SellOffer, len(catalog)),
	}
	copy(b.catalog, catalog)
	return b
}

// Reset drops every offer on both sides.
func (b *OfferBook) Reset() {
	clear(b.buys)
	clear(b.sells)
}

// PutBuy records the round's buy offer for an item.
func (b *OfferBook) PutBuy(o BuyOffer) {
	b.buys[o.Item] = o
}

// PutSell records the round's sell offer for an item.
func (b *OfferBook) PutSell(o SellOffer) {
	b.sells[o.Item] = o
}

// FindBuy returns the current buy offer for an item, if any.
func (b *OfferBook) FindBuy(item Item) (BuyOffer, bool) {
	o, ok := b.buys[item]
	return o, ok
}

// FindSell returns the current sell offer for an item, if any.
func (b *OfferBook) FindSell(item Item) (SellOffer, bool) {
	o, ok := b.sells[item]
	return o, ok
}

// BuyOffers returns the round's buy offers in catalog order.
func (b *OfferBook) BuyOffers() []BuyOffer {
	offers := make([]BuyOffer, 0, len(b.buys))
	for _, item := range b.catalog {
		if o, ok := b.buys[item]; ok {
			offers = append(offers, o)
		}
	}
	return offers
}

// SellOffers returns the round's sell offers in catalog order.
func (b *OfferBook) SellOffers() []SellOffer {
	offers := make([]SellOffer, 0, len(b.sells))
	for _, item := range b.catalog {
		if o, ok := b.sells[item]; ok {
			offers = append(offers, o)
		}
	}
	return offers
}
