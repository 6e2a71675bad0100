package domain

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tabletop-tools/dicebox/internal/dice"
	"github.com/tabletop-tools/dicebox/internal/random"
)

// tracer emits spans for roll evaluations when tracing is configured.
var tracer = otel.Tracer("github.com/tabletop-tools/dicebox/internal/services/mcp/domain")

// RollInput represents the MCP tool input for rolling dice.
type RollInput struct {
	Notation string `json:"notation" jsonschema:"dice notation to roll, e.g. d20, 1d6 or 2d20+1"`
	Seed     *int64 `json:"seed,omitempty" jsonschema:"optional seed for deterministic rolls"`
}

// RollOutput represents the MCP tool output for rolling dice.
type RollOutput struct {
	Notation    string `json:"notation" jsonschema:"the original dice notation, normalised"`
	Result      int    `json:"result" jsonschema:"the result of the dice roll with modifiers applied"`
	RawTotal    int    `json:"raw_total" jsonschema:"sum of all dice rolled without modifiers"`
	RollResults []int  `json:"roll_results" jsonschema:"the individual results of each roll"`
	Seed        int64  `json:"seed" jsonschema:"seed used for the roll; replaying it reproduces the result"`
}

// RollTool defines the MCP tool schema for rolling dice.
func RollTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "roll",
		Description: "Rolls dice based upon standard dice notation (e.g. 1d6, 2d20+1 etc. see rules://dice for more info), with an optional seed number for the random number generator.",
	}
}

// RollHandler parses dice notation and evaluates the roll.
//
// When the input carries no seed, one is drawn from crypto/rand and echoed
// back in the output so the roll stays replayable.
func RollHandler() mcp.ToolHandlerFor[RollInput, RollOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RollInput) (*mcp.CallToolResult, RollOutput, error) {
		_, span := tracer.Start(ctx, "dice.roll",
			trace.WithAttributes(attribute.String("dice.notation", input.Notation)),
		)
		defer span.End()

		spec, err := dice.ParseNotation(input.Notation)
		if err != nil {
			span.RecordError(err)
			return nil, RollOutput{}, err
		}

		seed := int64(0)
		if input.Seed != nil {
			seed = *input.Seed
		} else {
			seed, err = random.NewSeed()
			if err != nil {
				span.RecordError(err)
				return nil, RollOutput{}, fmt.Errorf("generate roll seed: %w", err)
			}
		}

		result, err := dice.Roll(spec, seed)
		if err != nil {
			span.RecordError(err)
			return nil, RollOutput{}, err
		}

		span.SetAttributes(attribute.Int("dice.total", result.Total))

		return nil, RollOutput{
			Notation:    result.Notation,
			Result:      result.Total,
			RawTotal:    result.RawTotal,
			RollResults: result.Rolls,
			Seed:        seed,
		}, nil
	}
}
