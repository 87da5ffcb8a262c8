// Package economy defines the scalar domain types of the simulation:
// items, quantities, prices, fuel costs, and the trade offers the
// market quotes each round.
package economy

// Item identifies a tradeable good. The catalog of items is fixed for
// the duration of a run and known to every agent.
type Item string

// Amount is a signed quantity or delta of items, fuel, or money.
type Amount int64

// Price is an integer amount of minor currency units. Trade math stays
// in integers so totals never pick up rounding error.
type Price int64

// FuelCost is the command fuel debited when a command is applied.
type FuelCost int64

// TradeOffer is a market quote: up to Amount units of Item at Price,
// valid for exactly one round.
type TradeOffer struct {
	Item   Item   `json:"item"`
	Amount Amount `json:"amount"`
	Price  Price  `json:"price"`
}

// BuyOffer is a quote where the market wants to buy (agents may sell into it).
type BuyOffer struct {
	TradeOffer
}

// SellOffer is a quote where the market wants to sell (agents may buy from it).
type SellOffer struct {
	TradeOffer
}
