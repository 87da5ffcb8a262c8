// Package agent defines the contract between the engine and agent
// implementations: the immutable environment snapshot an agent sees,
// the function signature it must satisfy, a command buffer helper for
// stateful agents, and the registry used to hand agents to a world.
package agent

import (
	"github.com/forgesim/smithg/internal/command"
	"github.com/forgesim/smithg/internal/economy"
	"github.com/forgesim/smithg/internal/event"
)

// Func is the agent contract. Each round the engine calls the function
// with a fresh environment snapshot and the events pending since the
// agent's last turn, and applies the returned commands in order.
//
// Implementations must be side-effect-free with respect to world state:
// every effect flows through the returned commands.
type Func func(env Environment, events []event.Event) []command.Command

// Environment is the read-only snapshot handed to an agent at the start
// of its turn. Collections are copied on construction and on access, so
// nothing an agent does to them reaches engine state.
type Environment struct {
	// Balance is the agent's funds after this round's passive increase.
	Balance economy.Amount
	// Fuel is the command fuel available this turn, after replenishment.
	Fuel economy.Amount
	// TradeFee is the fuel cost of a buy or sell command, letting agents
	// budget fuel before queueing trades.
	TradeFee economy.FuelCost

	knownItems []economy.Item
	buyOffers  []economy.BuyOffer
	sellOffers []economy.SellOffer
	inventory  map[economy.Item]economy.Amount
}

// NewEnvironment builds a snapshot, copying every collection.
func NewEnvironment(
	knownItems []economy.Item,
	buyOffers []economy.BuyOffer,
	sellOffers []economy.SellOffer,
	balance economy.Amount,
	fuel economy.Amount,
	tradeFee economy.FuelCost,
	inventory map[economy.Item]economy.Amount,
) Environment {
	env := Environment{
		Balance:    balance,
		Fuel:       fuel,
		TradeFee:   tradeFee,
		knownItems: make([]economy.Item, len(knownItems)),
		buyOffers:  make([]economy.BuyOffer, len(buyOffers)),
		sellOffers: make([]economy.SellOffer, len(sellOffers)),
		inventory:  make(map[economy.Item]economy.Amount, len(inventory)),
	}
	copy(env.knownItems, knownItems)
	copy(env.buyOffers, buyOffers)
	copy(env.sellOffers, sellOffers)
	for item, amount := range inventory {
		env.inventory[item] = amount
	}
	return env
}

// KnownItems returns the full item catalog, in catalog order.
func (e Environment) KnownItems() []economy.Item {
	items := make([]economy.Item, len(e.knownItems))
	copy(items, e.knownItems)
	return items
}

// Knows reports whether an item is part of the catalog.
func (e Environment) Knows(item economy.Item) bool {
	for _, known := range e.knownItems {
		if known == item {
			return true
		}
	}
	return false
}

// BuyOffers returns this round's offers where the market buys.
func (e Environment) BuyOffers() []economy.BuyOffer {
	offers := make([]economy.BuyOffer, len(e.buyOffers))
	copy(offers, e.buyOffers)
	return offers
}

// SellOffers returns this round's offers where the market sells.
func (e Environment) SellOffers() []economy.SellOffer {
	offers := make([]economy.SellOffer, len(e.sellOffers))
	copy(offers, e.sellOffers)
	return offers
}

// Inventory returns how many units of an item the agent holds. Items
// never held report zero.
func (e Environment) Inventory(item economy.Item) economy.Amount {
	return e.inventory[item]
}
