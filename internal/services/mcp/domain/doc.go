// Package domain translates MCP operations into dice-notation commands.
//
// The package is intentionally explicit about that mapping:
// - parse MCP tool input into a validated roll specification,
// - evaluate the roll against a seeded random source,
// - and surface structured outputs that MCP clients can render.
//
// Parse failures are returned as handler errors so the protocol layer
// reports them as tool errors, distinct from roll results.
package domain
