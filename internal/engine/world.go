// Package engine drives the simulation: the round loop, market ticks,
// agent invocation, command validation and application, and the event
// synchronization layer.
//
// Everything is single-threaded. Agents run strictly one at a time in
// registration order, a whole command list is applied before the next
// agent's turn, and a fixed seed plus fixed registration order makes a
// run fully deterministic.
package engine

import (
	"log/slog"
	"strconv"

	"github.com/forgesim/smithg/internal/agent"
	"github.com/forgesim/smithg/internal/economy"
	"github.com/forgesim/smithg/internal/market"
)

// Default per-agent tunables, matching the canonical world.
const (
	DefaultFuelInit        = economy.Amount(100)
	DefaultFuelIncrease    = economy.Amount(25)
	DefaultBalanceInit     = economy.Amount(100)
	DefaultBalanceIncrease = economy.Amount(0)
	DefaultWorkToMoney     = economy.Amount(10)
	DefaultTradeFee        = economy.FuelCost(50)
)

// Result is one line of the run outcome: an agent and its final balance,
// in registration order. Ranking and formatting are the caller's job.
type Result struct {
	Name    string         `json:"agent_name"`
	Balance economy.Amount `json:"balance"`
}

// World owns the item catalog, the market, and the agents. The catalog
// is read-only after construction; container order is registration
// order and never changes across rounds.
type World struct {
	KnownItems []economy.Item
	Market     market.Market
	Containers []*AgentContainer

	// Tunables applied to agents registered after they are set.
	FuelInit        economy.Amount
	FuelIncrease    economy.Amount
	BalanceInit     economy.Amount
	BalanceIncrease economy.Amount
	WorkToMoney     economy.Amount
	TradeFee        economy.FuelCost

	known map[economy.Item]struct{}
}

// New creates a world over the given catalog and market with default
// tunables.
func New(knownItems []economy.Item, m market.Market) *World {
	w := &World{
		KnownItems:      make([]economy.Item, len(knownItems)),
		Market:          m,
		FuelInit:        DefaultFuelInit,
		FuelIncrease:    DefaultFuelIncrease,
		BalanceInit:     DefaultBalanceInit,
		BalanceIncrease: DefaultBalanceIncrease,
		WorkToMoney:     DefaultWorkToMoney,
		TradeFee:        DefaultTradeFee,
		known:           make(map[economy.Item]struct{}, len(knownItems)),
	}
	copy(w.KnownItems, knownItems)
	for _, item := range w.KnownItems {
		w.known[item] = struct{}{}
	}
	return w
}

// AddAgent registers an agent under the given name. An empty name gets
// a positional fallback. Returns the new container.
func (w *World) AddAgent(fn agent.Func, name string) *AgentContainer {
	if name == "" {
		name = "agent_" + strconv.Itoa(len(w.Containers)+1)
	}
	c := &AgentContainer{
		Name:            name,
		State:           NewState(w.FuelInit, w.BalanceInit),
		FuelIncrease:    w.FuelIncrease,
		BalanceIncrease: w.BalanceIncrease,
		WorkToMoney:     w.WorkToMoney,
		TradeFee:        w.TradeFee,
		fn:              fn,
	}
	w.Containers = append(w.Containers, c)
	slog.Debug("agent registered", "name", name, "position", len(w.Containers))
	return c
}

// AddAgentsFromRegistry registers every agent in the registry, in
// registration order.
func (w *World) AddAgentsFromRegistry(reg *agent.Registry) {
	for _, entry := range reg.Entries() {
		w.AddAgent(entry.Func, entry.Name)
	}
}

// Run simulates the given number of rounds and returns the final
// results in registration order. The first fault aborts the run.
func (w *World) Run(rounds int) ([]Result, error) {
	slog.Info("simulation starting", "rounds", rounds, "agents", len(w.Containers), "items", len(w.KnownItems))

	for round := 0; round < rounds; round++ {
		if err := w.Step(round); err != nil {
			return nil, err
		}
	}

	slog.Info("simulation finished", "rounds", rounds)
	return w.Results(), nil
}

// Step runs one round: the market regenerates its offers, then every
// agent takes exactly one turn in registration order. Offers are fixed
// for the round; later agents observe only their own state changes.
func (w *World) Step(round int) error {
	w.Market.Tick()

	for _, c := range w.Containers {
		if err := w.executeAgent(c, round); err != nil {
			return err
		}
	}

	slog.Debug("round complete", "round", round)
	return nil
}

// Results returns (name, final balance) pairs in registration order.
func (w *World) Results() []Result {
	results := make([]Result, 0, len(w.Containers))
	for _, c := range w.Containers {
		results = append(results, Result{Name: c.Name, Balance: c.State.Balance})
	}
	return results
}

func (w *World) knows(item economy.Item) bool {
	_, ok := w.known[item]
	return ok
}
