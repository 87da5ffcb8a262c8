package agent

import (
	"log/slog"

	"github.com/forgesim/smithg/internal/command"
	"github.com/forgesim/smithg/internal/economy"
)

// Buffer collects commands during a turn. It is a plain value an agent
// embeds or declares locally; no base type is required to implement Func.
type Buffer struct {
	commands []command.Command
}

// Queue appends a command without any fuel check.
func (b *Buffer) Queue(cmd command.Command) {
	b.commands = append(b.commands, cmd)
}

// SafeQueue appends a command only if the fuel cost of everything
// already queued plus this command stays within the environment's fuel.
// It performs no other validation; item existence and inventory are
// still the agent's problem.
func (b *Buffer) SafeQueue(env Environment, cmd command.Command) bool {
	total := cmd.Cost(env.TradeFee)
	for _, queued := range b.commands {
		total += queued.Cost(env.TradeFee)
	}
	if economy.FuelCost(env.Fuel) < total {
		slog.Debug("command dropped, would exceed fuel",
			"fuel", env.Fuel, "needed", total)
		return false
	}
	b.commands = append(b.commands, cmd)
	return true
}

// Commands returns the buffered command list in queue order.
func (b *Buffer) Commands() []command.Command {
	return b.commands
}
