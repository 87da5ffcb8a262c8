package engine

import "errors"

// Fault taxonomy. Every fault is fatal: it propagates out of World.Run
// and terminates the whole simulation rather than disqualifying the
// offending agent. Callers match with errors.Is.
var (
	// ErrProtocolViolation is returned when an agent's command list
	// contains a nil entry, a value outside the closed command set, or a
	// command with a nonsensical payload such as negative work.
	ErrProtocolViolation = errors.New("agent protocol violation")
	// ErrFuelExhausted is returned when a command's fuel cost would
	// drive the agent's fuel below zero.
	ErrFuelExhausted = errors.New("command fuel exhausted")
	// ErrUnknownItem is returned when a trade command references an item
	// outside the known catalog.
	ErrUnknownItem = errors.New("unknown item")
	// ErrInsufficientInventory is returned when a sell command's matched
	// amount exceeds the inventory the agent actually holds. Agents are
	// responsible for tracking their own inventory, so this is a
	// violation rather than a no-op.
	ErrInsufficientInventory = errors.New("insufficient inventory")
)
