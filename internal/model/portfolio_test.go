package model_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/marketdesk/paper-trading-backend/internal/model"
)

func holding(symbol string, qty int64, buy, current float64) model.Holding {
	return model.Holding{
		Symbol:       symbol,
		Quantity:     qty,
		BuyPrice:     decimal.NewFromFloat(buy),
		CurrentPrice: decimal.NewFromFloat(current),
	}
}

func TestPortfolioState_DerivedBalances(t *testing.T) {
	state := model.PortfolioState{
		Capital: decimal.NewFromInt(100000),
		Holdings: []model.Holding{
			holding("RELIANCE", 10, 2840, 2900),
			holding("INFY", 4, 1500, 1450),
		},
	}

	t.Run("invested amount is the cost basis", func(t *testing.T) {
		// 10*2840 + 4*1500 = 34400
		if !state.InvestedAmount().Equal(decimal.NewFromInt(34400)) {
			t.Errorf("InvestedAmount() = %s, want 34400", state.InvestedAmount())
		}
	})

	t.Run("cash is capital minus cost basis", func(t *testing.T) {
		if !state.CashBalance().Equal(decimal.NewFromInt(65600)) {
			t.Errorf("CashBalance() = %s, want 65600", state.CashBalance())
		}
	})

	t.Run("current value marks holdings to market", func(t *testing.T) {
		// 65600 + 10*2900 + 4*1450 = 100400
		if !state.CurrentValue().Equal(decimal.NewFromInt(100400)) {
			t.Errorf("CurrentValue() = %s, want 100400", state.CurrentValue())
		}
	})

	t.Run("summary is internally consistent", func(t *testing.T) {
		summary := state.Summarize()

		if !summary.CurrentValue.Equal(summary.CashBalance.Add(decimal.NewFromInt(34800))) {
			t.Errorf("CurrentValue %s != cash %s + market value 34800",
				summary.CurrentValue, summary.CashBalance)
		}
		if !summary.ProfitLoss.Equal(summary.CurrentValue.Sub(summary.Capital)) {
			t.Errorf("ProfitLoss %s != CurrentValue - Capital", summary.ProfitLoss)
		}
		if summary.HoldingCount != 2 {
			t.Errorf("HoldingCount = %d, want 2", summary.HoldingCount)
		}
	})

	t.Run("empty account values at exactly its capital", func(t *testing.T) {
		empty := model.PortfolioState{Capital: decimal.NewFromInt(100000)}
		if !empty.CurrentValue().Equal(empty.Capital) {
			t.Errorf("CurrentValue() = %s, want %s", empty.CurrentValue(), empty.Capital)
		}
	})
}

func TestPortfolioState_Clone(t *testing.T) {
	state := model.PortfolioState{
		Capital:  decimal.NewFromInt(100000),
		Holdings: []model.Holding{holding("RELIANCE", 10, 2840, 2840)},
		Transactions: []model.Transaction{
			{ID: "t1", Symbol: "RELIANCE", Type: model.OrderSideBuy, Quantity: 10},
		},
	}

	clone := state.Clone()
	clone.Holdings[0].Quantity = 99
	clone.Transactions[0].Symbol = "CHANGED"

	if state.Holdings[0].Quantity != 10 {
		t.Error("Mutating a clone's holdings changed the original")
	}
	if state.Transactions[0].Symbol != "RELIANCE" {
		t.Error("Mutating a clone's transactions changed the original")
	}
}
