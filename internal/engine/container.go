package engine

import (
	"github.com/forgesim/smithg/internal/agent"
	"github.com/forgesim/smithg/internal/economy"
	"github.com/forgesim/smithg/internal/event"
)

// State is the mutable economic state of one agent. The last* shadows
// record what the agent has been told about, and feed the sync events
// emitted at the start of its next turn.
type State struct {
	Fuel      economy.Amount
	Balance   economy.Amount
	Inventory map[economy.Item]economy.Amount

	lastFuel      economy.Amount
	lastBalance   economy.Amount
	lastInventory map[economy.Item]economy.Amount
}

// NewState creates agent state with the given starting fuel and
// balance. The shadows start at zero, so the agent's first turn reports
// its initial endowment as deltas.
func NewState(fuel, balance economy.Amount) State {
	return State{
		Fuel:          fuel,
		Balance:       balance,
		Inventory:     make(map[economy.Item]economy.Amount),
		lastInventory: make(map[economy.Item]economy.Amount),
	}
}

// AgentContainer owns one agent's state and pending event queue. The
// agent function itself is external: the engine calls it but never
// mutates or retains anything of the agent's own.
type AgentContainer struct {
	Name  string
	State State

	// Per-container tunables, copied from the world at registration.
	FuelIncrease    economy.Amount
	BalanceIncrease economy.Amount
	WorkToMoney     economy.Amount
	TradeFee        economy.FuelCost

	fn          agent.Func
	eventsQueue []event.Event
}

// queueEvent appends an event for delivery on the agent's next turn.
func (c *AgentContainer) queueEvent(evt event.Event) {
	c.eventsQueue = append(c.eventsQueue, evt)
}

// syncEvents computes one delta event per nonzero change to fuel,
// balance, and each inventory entry since the agent's last turn, and
// advances the shadows. Inventory deltas come out in catalog order so
// runs stay deterministic.
func (c *AgentContainer) syncEvents(catalog []economy.Item) []event.Event {
	var events []event.Event

	if diff := c.State.Fuel - c.State.lastFuel; diff != 0 {
		events = append(events, event.FuelDelta{Diff: diff})
	}
	c.State.lastFuel = c.State.Fuel

	if diff := c.State.Balance - c.State.lastBalance; diff != 0 {
		events = append(events, event.BalanceDelta{Diff: diff})
	}
	c.State.lastBalance = c.State.Balance

	for _, item := range catalog {
		if diff := c.State.Inventory[item] - c.State.lastInventory[item]; diff != 0 {
			events = append(events, event.ItemDelta{Item: item, Diff: diff})
			c.State.lastInventory[item] = c.State.Inventory[item]
		}
	}

	return events
}
