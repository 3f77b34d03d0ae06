package assistant_test

import (
	"strings"
	"testing"

	"github.com/marketdesk/paper-trading-backend/internal/assistant"
)

func TestReply(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		contains string
	}{
		{"reliance keyword", "What do you think about Reliance?", "Reliance Industries"},
		{"ril alias", "should I buy RIL today", "Reliance Industries"},
		{"nifty keyword", "how is the NIFTY doing", "NIFTY 50"},
		{"market keyword", "what's the market outlook", "NIFTY 50"},
		{"strategy keyword", "suggest a trading strategy", "Momentum Strategy"},
		{"backtest keyword", "show me backtest results", "Backtesting"},
		{"recommendation keyword", "any stock recommendations?", "HDFC Bank"},
		{"paper trading keyword", "how does paper trading work", "virtual capital"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := assistant.Reply(tt.message)
			if !strings.Contains(reply, tt.contains) {
				t.Errorf("Reply(%q) does not mention %q", tt.message, tt.contains)
			}
		})
	}

	t.Run("matching is case-insensitive", func(t *testing.T) {
		if assistant.Reply("RELIANCE") != assistant.Reply("reliance") {
			t.Error("Expected the same reply regardless of case")
		}
	})

	t.Run("first matching rule wins", func(t *testing.T) {
		// "reliance" outranks "strategy" because its rule comes first.
		reply := assistant.Reply("reliance trading strategy")
		if !strings.Contains(reply, "Reliance Industries") {
			t.Error("Expected the earlier rule to take precedence")
		}
	})

	t.Run("unmatched messages get the default reply", func(t *testing.T) {
		reply := assistant.Reply("what is the meaning of life")
		if !strings.Contains(reply, "trading questions") {
			t.Errorf("Expected the default reply, got %q", reply)
		}
	})
}
