package domain

import (
	"context"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestDiceRulesResourceHandler(t *testing.T) {
	handler := DiceRulesResourceHandler()
	result, err := handler(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Contents) != 1 {
		t.Fatalf("expected 1 content entry, got %d", len(result.Contents))
	}
	content := result.Contents[0]
	if content.URI != DiceRulesURI {
		t.Errorf("expected URI %q, got %q", DiceRulesURI, content.URI)
	}
	if content.MIMEType != "text/plain" {
		t.Errorf("expected text/plain, got %q", content.MIMEType)
	}
	if !strings.Contains(content.Text, "XdY+Z") {
		t.Errorf("expected rules text to describe the grammar, got %q", content.Text)
	}
}

func TestDiceHelpPromptHandler(t *testing.T) {
	t.Run("defaults the example", func(t *testing.T) {
		handler := DiceHelpPromptHandler()
		result, err := handler(context.Background(), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Messages) != 1 {
			t.Fatalf("expected 1 message, got %d", len(result.Messages))
		}
		text, ok := result.Messages[0].Content.(*mcp.TextContent)
		if !ok {
			t.Fatalf("expected text content, got %T", result.Messages[0].Content)
		}
		if !strings.Contains(text.Text, diceHelpDefaultExample) {
			t.Errorf("expected default example %q in %q", diceHelpDefaultExample, text.Text)
		}
		if !strings.Contains(text.Text, DiceRulesURI) {
			t.Errorf("expected rules URI in %q", text.Text)
		}
	})

	t.Run("uses the provided example", func(t *testing.T) {
		handler := DiceHelpPromptHandler()
		result, err := handler(context.Background(), &mcp.GetPromptRequest{
			Params: &mcp.GetPromptParams{
				Name:      "dice_help",
				Arguments: map[string]string{"example": "2d8+1"},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text, ok := result.Messages[0].Content.(*mcp.TextContent)
		if !ok {
			t.Fatalf("expected text content, got %T", result.Messages[0].Content)
		}
		if !strings.Contains(text.Text, `"2d8+1"`) {
			t.Errorf("expected example 2d8+1 in %q", text.Text)
		}
	})
}
