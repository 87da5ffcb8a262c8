// Package command defines the closed set of intents an agent may return
// from its turn. Commands communicate intent only; the engine validates
// and applies them against world and agent state.
//
// The set is sealed: only the three variants in this package satisfy
// Command, so the engine can match exhaustively and adding a new kind
// of command is a deliberate, compile-time-visible change.
package command

import (
	"github.com/forgesim/smithg/internal/economy"
)

// Command is one intent in an agent's ordered command list. Every
// command has a fuel cost; the trade fee is a per-agent tunable, so it
// is passed in rather than baked into the variant.
type Command interface {
	Cost(tradeFee economy.FuelCost) economy.FuelCost
	isCommand()
}

// Work converts Amount units of command fuel into money at the
// per-world work rate. Its fuel cost is the amount worked.
type Work struct {
	Amount economy.Amount
}

// Cost returns the fuel debited for working: the amount itself.
func (w Work) Cost(economy.FuelCost) economy.FuelCost {
	return economy.FuelCost(w.Amount)
}

func (Work) isCommand() {}

// BuyItem asks to buy up to MaxAmount units of Item, provided the
// market's sell offer does not exceed MaxPrice. Costs the trade fee
// whether or not a trade happens.
//
// Note there is no funds check: if MaxAmount at the offer price exceeds
// the agent's balance, the balance simply goes negative.
type BuyItem struct {
	Item      economy.Item
	MaxAmount economy.Amount
	MaxPrice  economy.Price
}

// Cost returns the fixed trade fee.
func (BuyItem) Cost(tradeFee economy.FuelCost) economy.FuelCost {
	return tradeFee
}

func (BuyItem) isCommand() {}

// SellItem asks to sell up to MaxAmount units of Item, provided the
// market's buy offer pays at least MinPrice. Costs the trade fee
// whether or not a trade happens. The agent must actually hold the
// matched amount; overselling is a fatal protocol violation.
type SellItem struct {
	Item      economy.Item
	MaxAmount economy.Amount
	MinPrice  economy.Price
}

// Cost returns the fixed trade fee.
func (SellItem) Cost(tradeFee economy.FuelCost) economy.FuelCost {
	return tradeFee
}

func (SellItem) isCommand() {}
