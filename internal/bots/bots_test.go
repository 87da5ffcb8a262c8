package bots

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forgesim/smithg/internal/agent"
	"github.com/forgesim/smithg/internal/command"
	"github.com/forgesim/smithg/internal/economy"
)

func makeEnv(balance, fuel economy.Amount, buys []economy.BuyOffer, sells []economy.SellOffer, inventory map[economy.Item]economy.Amount) agent.Environment {
	return agent.NewEnvironment(
		[]economy.Item{"widget"}, buys, sells, balance, fuel, 50, inventory,
	)
}

func TestWorkerWorksEntireFuelBudget(t *testing.T) {
	bot := Worker()
	cmds := bot(makeEnv(100, 125, nil, nil, nil), nil)
	require.Equal(t, []command.Command{command.Work{Amount: 125}}, cmds)
}

func TestWorkerIdlesWithoutFuel(t *testing.T) {
	bot := Worker()
	require.Empty(t, bot(makeEnv(100, 0, nil, nil, nil), nil))
}

func TestRandomWorksWhenNoTradeIsViable(t *testing.T) {
	bot := Random(1)
	cmds := bot(makeEnv(100, 125, nil, nil, nil), nil)

	require.Len(t, cmds, 1)
	work, ok := cmds[0].(command.Work)
	require.True(t, ok, "expected a work command, got %T", cmds[0])
	require.GreaterOrEqual(t, work.Amount, economy.Amount(1))
	require.LessOrEqual(t, work.Amount, economy.Amount(125))
}

func TestRandomSellsIntoBuyOffer(t *testing.T) {
	buys := []economy.BuyOffer{
		{TradeOffer: economy.TradeOffer{Item: "widget", Amount: 10, Price: 20}},
	}
	inventory := map[economy.Item]economy.Amount{"widget": 4}

	bot := Random(1)
	cmds := bot(makeEnv(0, 125, buys, nil, inventory), nil)

	require.Equal(t, []command.Command{
		command.SellItem{Item: "widget", MaxAmount: 4, MinPrice: 20},
	}, cmds)
}

func TestRandomBuysAffordableSellOffer(t *testing.T) {
	sells := []economy.SellOffer{
		{TradeOffer: economy.TradeOffer{Item: "widget", Amount: 10, Price: 30}},
	}

	bot := Random(1)
	cmds := bot(makeEnv(100, 125, nil, sells, nil), nil)

	require.Equal(t, []command.Command{
		command.BuyItem{Item: "widget", MaxAmount: 3, MaxPrice: 30},
	}, cmds)
}

func TestRandomIsDeterministicPerSeed(t *testing.T) {
	env := makeEnv(100, 125, nil, nil, nil)

	a := Random(7)
	b := Random(7)
	for i := 0; i < 10; i++ {
		require.Equal(t, a(env, nil), b(env, nil), "call %d", i)
	}
}

func TestRandomIdlesWithoutFuel(t *testing.T) {
	bot := Random(1)
	require.Empty(t, bot(makeEnv(100, 0, nil, nil, nil), nil))
}
