package bots

import (
	"github.com/forgesim/smithg/internal/agent"
	"github.com/forgesim/smithg/internal/command"
	"github.com/forgesim/smithg/internal/event"
)

// Worker returns an agent that does nothing but convert its entire fuel
// budget into money every round.
func Worker() agent.Func {
	return func(env agent.Environment, _ []event.Event) []command.Command {
		if env.Fuel <= 0 {
			return nil
		}
		return []command.Command{command.Work{Amount: env.Fuel}}
	}
}
