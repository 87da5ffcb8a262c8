package agent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forgesim/smithg/internal/command"
	"github.com/forgesim/smithg/internal/economy"
	"github.com/forgesim/smithg/internal/event"
)

func testEnv(fuel economy.Amount, fee economy.FuelCost) Environment {
	return NewEnvironment(
		[]economy.Item{"widget"},
		nil, nil,
		100, fuel, fee,
		map[economy.Item]economy.Amount{"widget": 3},
	)
}

func TestEnvironmentIsDetachedFromInputs(t *testing.T) {
	inventory := map[economy.Item]economy.Amount{"widget": 3}
	items := []economy.Item{"widget"}
	buys := []economy.BuyOffer{{TradeOffer: economy.TradeOffer{Item: "widget", Amount: 1, Price: 5}}}

	env := NewEnvironment(items, buys, nil, 100, 125, 50, inventory)

	// Mutating the originals must not reach the snapshot.
	inventory["widget"] = 99
	items[0] = "gadget"
	buys[0].Price = 9999

	require.Equal(t, economy.Amount(3), env.Inventory("widget"))
	require.Equal(t, []economy.Item{"widget"}, env.KnownItems())
	require.Equal(t, economy.Price(5), env.BuyOffers()[0].Price)

	// Mutating an accessor's result must not reach the snapshot either.
	got := env.BuyOffers()
	got[0].Price = 1
	require.Equal(t, economy.Price(5), env.BuyOffers()[0].Price)
}

func TestEnvironmentInventoryDefaultsToZero(t *testing.T) {
	env := testEnv(125, 50)
	require.Equal(t, economy.Amount(3), env.Inventory("widget"))
	require.Equal(t, economy.Amount(0), env.Inventory("never_held"))
}

func TestBufferSafeQueueBudgetsFuel(t *testing.T) {
	env := testEnv(100, 50)

	var buf Buffer
	require.True(t, buf.SafeQueue(env, command.Work{Amount: 60}))
	require.False(t, buf.SafeQueue(env, command.SellItem{Item: "widget", MaxAmount: 1, MinPrice: 1}),
		"trade fee should not fit in remaining fuel")
	require.True(t, buf.SafeQueue(env, command.Work{Amount: 40}))
	require.False(t, buf.SafeQueue(env, command.Work{Amount: 1}))

	require.Equal(t, []command.Command{
		command.Work{Amount: 60},
		command.Work{Amount: 40},
	}, buf.Commands())
}

func TestBufferQueueIsUnchecked(t *testing.T) {
	var buf Buffer
	buf.Queue(command.Work{Amount: 1_000_000})
	require.Len(t, buf.Commands(), 1)
}

func TestRegistryKeepsOrderAndNames(t *testing.T) {
	noop := func(Environment, []event.Event) []command.Command { return nil }

	var reg Registry
	reg.Register(noop, "alpha")
	reg.Register(noop, "")
	reg.Register(noop, "gamma")

	entries := reg.Entries()
	require.Equal(t, 3, reg.Len())
	require.Equal(t, "alpha", entries[0].Name)
	require.Equal(t, "agent_2", entries[1].Name)
	require.Equal(t, "gamma", entries[2].Name)
}
