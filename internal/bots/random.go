// Package bots ships illustrative agents. They demonstrate the agent
// contract and give a fresh world something to trade against; serious
// strategies live outside the module and are registered the same way.
package bots

import (
	"math/rand"

	"github.com/forgesim/smithg/internal/agent"
	"github.com/forgesim/smithg/internal/command"
	"github.com/forgesim/smithg/internal/economy"
	"github.com/forgesim/smithg/internal/event"
)

// Random returns an agent that each round collects every viable trade —
// selling held items into buy offers at the quoted price, buying
// whatever its balance affords from sell offers — and picks one at
// random. With no viable trade it works a random slice of its fuel.
func Random(seed int64) agent.Func {
	rng := rand.New(rand.NewSource(seed))

	return func(env agent.Environment, _ []event.Event) []command.Command {
		var possible []command.Command

		for _, buy := range env.BuyOffers() {
			if held := env.Inventory(buy.Item); held > 0 {
				possible = append(possible, command.SellItem{
					Item:      buy.Item,
					MaxAmount: held,
					MinPrice:  buy.Price,
				})
			}
		}

		for _, sell := range env.SellOffers() {
			affordable := economy.Amount(int64(env.Balance) / int64(sell.Price))
			if affordable > 0 {
				possible = append(possible, command.BuyItem{
					Item:      sell.Item,
					MaxAmount: affordable,
					MaxPrice:  sell.Price,
				})
			}
		}

		if len(possible) == 0 {
			if env.Fuel <= 0 {
				return nil
			}
			possible = append(possible, command.Work{
				Amount: economy.Amount(rng.Int63n(int64(env.Fuel)) + 1),
			})
		}

		var buf agent.Buffer
		buf.SafeQueue(env, possible[rng.Intn(len(possible))])
		return buf.Commands()
	}
}
