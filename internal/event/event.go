// Package event defines the closed set of notifications the engine
// delivers to an agent at the start of its turn. Events describe state
// changes from the previous round; they are never delivered in the same
// turn they were caused.
package event

import (
	"github.com/forgesim/smithg/internal/economy"
)

// Event is one notification in the queue handed to an agent. The set is
// sealed to the variants in this package.
type Event interface {
	isEvent()
}

// FuelDelta reports the net change in command fuel since the agent's
// last turn, including the per-round replenishment.
type FuelDelta struct {
	Diff economy.Amount
}

func (FuelDelta) isEvent() {}

// BalanceDelta reports the net change in balance since the agent's
// last turn.
type BalanceDelta struct {
	Diff economy.Amount
}

func (BalanceDelta) isEvent() {}

// ItemDelta reports the net inventory change for one item since the
// agent's last turn.
type ItemDelta struct {
	Item economy.Item
	Diff economy.Amount
}

func (ItemDelta) isEvent() {}

// BuyReceipt confirms a buy executed during the previous round.
type BuyReceipt struct {
	Item   economy.Item
	Amount economy.Amount
	Price  economy.Price
}

func (BuyReceipt) isEvent() {}

// SellReceipt confirms a sell executed during the previous round.
type SellReceipt struct {
	Item   economy.Item
	Amount economy.Amount
	Price  economy.Price
}

func (SellReceipt) isEvent() {}
