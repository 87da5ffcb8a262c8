package economy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOfferBookLookupAndReset(t *testing.T) {
	catalog := []Item{"a", "b", "c"}
	book := NewOfferBook(catalog)

	book.PutBuy(BuyOffer{TradeOffer: TradeOffer{Item: "b", Amount: 4, Price: 9}})
	book.PutSell(SellOffer{TradeOffer: TradeOffer{Item: "a", Amount: 2, Price: 3}})

	buy, ok := book.FindBuy("b")
	require.True(t, ok)
	require.Equal(t, Amount(4), buy.Amount)

	_, ok = book.FindBuy("a")
	require.False(t, ok)

	sell, ok := book.FindSell("a")
	require.True(t, ok)
	require.Equal(t, Price(3), sell.Price)

	book.Reset()
	_, ok = book.FindBuy("b")
	require.False(t, ok)
	require.Empty(t, book.BuyOffers())
	require.Empty(t, book.SellOffers())
}

func TestOfferBookSnapshotsFollowCatalogOrder(t *testing.T) {
	catalog := []Item{"a", "b", "c"}
	book := NewOfferBook(catalog)

	// Insert out of catalog order.
	book.PutBuy(BuyOffer{TradeOffer: TradeOffer{Item: "c", Amount: 1, Price: 1}})
	book.PutBuy(BuyOffer{TradeOffer: TradeOffer{Item: "a", Amount: 1, Price: 1}})

	offers := book.BuyOffers()
	require.Len(t, offers, 2)
	require.Equal(t, Item("a"), offers[0].Item)
	require.Equal(t, Item("c"), offers[1].Item)
}
