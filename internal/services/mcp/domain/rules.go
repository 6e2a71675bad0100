package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// DiceRulesURI addresses the dice-notation reference resource.
const DiceRulesURI = "rules://dice"

// diceHelpDefaultExample is explained by the help prompt when the caller
// does not name a notation of their own.
const diceHelpDefaultExample = "3d6+2"

const diceRulesText = `Dice notation takes the form XdY+Z:
- X = number of dice (default 1 if omitted)
- Y = sides per die (minimum 2)
- Z = optional modifier, added or subtracted
Examples:
  - ` + "`d20`" + ` roll one 20-sided die
  - ` + "`3d6+2`" + ` roll three six-sided dice and add 2
  - ` + "`1d10`" + ` roll one 10-sided die
  - ` + "`36d12-10`" + ` roll 36 12-sided dice and subtract 10 from the total
`

// DiceRulesResource defines the MCP resource schema for notation rules.
func DiceRulesResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "rules",
		Description: "Reference rules for dice notation.",
		MIMEType:    "text/plain",
		URI:         DiceRulesURI,
	}
}

// DiceRulesResourceHandler returns the static notation reference text.
func DiceRulesResourceHandler() mcp.ResourceHandler {
	return func(_ context.Context, _ *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      DiceRulesURI,
					MIMEType: "text/plain",
					Text:     diceRulesText,
				},
			},
		}, nil
	}
}

// DiceHelpPrompt defines the MCP prompt schema for notation help.
func DiceHelpPrompt() *mcp.Prompt {
	return &mcp.Prompt{
		Name:        "dice_help",
		Description: "How to use dice notation.",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "example",
				Description: "notation to explain, defaults to " + diceHelpDefaultExample,
			},
		},
	}
}

// DiceHelpPromptHandler renders the notation help prompt.
func DiceHelpPromptHandler() mcp.PromptHandler {
	return func(_ context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		example := diceHelpDefaultExample
		if req != nil && req.Params != nil {
			if value, ok := req.Params.Arguments["example"]; ok && strings.TrimSpace(value) != "" {
				example = strings.TrimSpace(value)
			}
		}

		return &mcp.GetPromptResult{
			Messages: []*mcp.PromptMessage{
				{
					Role: "user",
					Content: &mcp.TextContent{
						Text: fmt.Sprintf(
							"Explain how to write dice notation and give a few examples. Include what %q means. Reference %s if needed.",
							example, DiceRulesURI,
						),
					},
				},
			},
		}, nil
	}
}
