package engine

import (
	"fmt"
	"log/slog"

	"github.com/forgesim/smithg/internal/agent"
	"github.com/forgesim/smithg/internal/command"
	"github.com/forgesim/smithg/internal/economy"
	"github.com/forgesim/smithg/internal/event"
)

// executeAgent runs one agent's turn: replenish resources, synchronize
// events, snapshot the environment, invoke the agent, then validate and
// apply its commands in order.
func (w *World) executeAgent(c *AgentContainer, round int) error {
	c.State.Fuel += c.FuelIncrease
	c.State.Balance += c.BalanceIncrease

	// Sync events go in front so the agent always sees its own-state
	// deltas before the previous round's trade receipts.
	c.eventsQueue = append(c.syncEvents(w.KnownItems), c.eventsQueue...)

	env := agent.NewEnvironment(
		w.KnownItems,
		w.Market.BuyOffers(),
		w.Market.SellOffers(),
		c.State.Balance,
		c.State.Fuel,
		c.TradeFee,
		c.State.Inventory,
	)

	slog.Debug("invoking agent", "agent", c.Name, "round", round, "pending_events", len(c.eventsQueue))
	commands := c.fn(env, c.eventsQueue)

	// Delivered is delivered; unprocessed events are not carried forward.
	// Receipts from the commands below start a fresh queue for next round.
	c.eventsQueue = nil

	for _, cmd := range commands {
		if err := w.executeCommand(c, cmd); err != nil {
			return fmt.Errorf("agent %s, round %d: %w", c.Name, round, err)
		}
	}
	return nil
}

// executeCommand debits the command's fuel cost and applies its effect.
// Fuel is debited before anything else; a cost that would drive fuel
// negative is fatal and leaves the remaining commands unapplied.
func (w *World) executeCommand(c *AgentContainer, cmd command.Command) error {
	if cmd == nil {
		return fmt.Errorf("%w: nil command in returned list", ErrProtocolViolation)
	}

	c.State.Fuel -= economy.Amount(cmd.Cost(c.TradeFee))
	if c.State.Fuel < 0 {
		return fmt.Errorf("%w: command %#v cost %d", ErrFuelExhausted, cmd, cmd.Cost(c.TradeFee))
	}

	switch cmd := cmd.(type) {
	case command.Work:
		if cmd.Amount < 0 {
			return fmt.Errorf("%w: negative work amount %d", ErrProtocolViolation, cmd.Amount)
		}
		// Fuel already paid; payday.
		c.State.Balance += c.WorkToMoney * cmd.Amount
		slog.Debug("worked", "agent", c.Name, "amount", cmd.Amount, "earned", c.WorkToMoney*cmd.Amount)
		return nil
	case command.BuyItem:
		return w.applyBuy(c, cmd)
	case command.SellItem:
		return w.applySell(c, cmd)
	default:
		return fmt.Errorf("%w: unexpected command type %T", ErrProtocolViolation, cmd)
	}
}

func (w *World) applyBuy(c *AgentContainer, cmd command.BuyItem) error {
	if !w.knows(cmd.Item) {
		return fmt.Errorf("%w: buy of %q", ErrUnknownItem, cmd.Item)
	}

	sell, ok := w.Market.FindSell(cmd.Item)
	if !ok {
		slog.Debug("buy skipped, item not for sale", "agent", c.Name, "item", cmd.Item)
		return nil
	}
	if sell.Price > cmd.MaxPrice {
		slog.Debug("buy skipped, ask above limit",
			"agent", c.Name, "item", cmd.Item, "ask", sell.Price, "limit", cmd.MaxPrice)
		return nil
	}

	if cmd.MaxAmount < 0 {
		return fmt.Errorf("%w: negative buy amount %d", ErrProtocolViolation, cmd.MaxAmount)
	}
	bought := min(sell.Amount, cmd.MaxAmount)
	if bought == 0 {
		return nil
	}
	c.State.Balance -= economy.Amount(int64(bought) * int64(sell.Price))
	c.State.Inventory[cmd.Item] += bought
	c.queueEvent(event.BuyReceipt{Item: cmd.Item, Amount: bought, Price: sell.Price})

	slog.Debug("bought", "agent", c.Name, "item", cmd.Item, "amount", bought, "price", sell.Price)
	return nil
}

func (w *World) applySell(c *AgentContainer, cmd command.SellItem) error {
	if !w.knows(cmd.Item) {
		return fmt.Errorf("%w: sell of %q", ErrUnknownItem, cmd.Item)
	}

	buy, ok := w.Market.FindBuy(cmd.Item)
	if !ok {
		slog.Debug("sell skipped, nobody is buying", "agent", c.Name, "item", cmd.Item)
		return nil
	}
	if buy.Price < cmd.MinPrice {
		slog.Debug("sell skipped, bid below limit",
			"agent", c.Name, "item", cmd.Item, "bid", buy.Price, "limit", cmd.MinPrice)
		return nil
	}

	if cmd.MaxAmount < 0 {
		return fmt.Errorf("%w: negative sell amount %d", ErrProtocolViolation, cmd.MaxAmount)
	}
	sold := min(buy.Amount, cmd.MaxAmount)
	if sold == 0 {
		return nil
	}
	if held := c.State.Inventory[cmd.Item]; sold > held {
		return fmt.Errorf("%w: selling %d %s while holding %d",
			ErrInsufficientInventory, sold, cmd.Item, held)
	}
	c.State.Balance += economy.Amount(int64(sold) * int64(buy.Price))
	c.State.Inventory[cmd.Item] -= sold
	c.queueEvent(event.SellReceipt{Item: cmd.Item, Amount: sold, Price: buy.Price})

	slog.Debug("sold", "agent", c.Name, "item", cmd.Item, "amount", sold, "price", buy.Price)
	return nil
}
