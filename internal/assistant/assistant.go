// Package assistant implements the dashboard's scripted trading
// assistant: a fixed table of keyword rules mapped to canned replies.
// There is no inference here and none is pretended; the first rule
// whose keywords match wins.
package assistant

import "strings"

// rule pairs trigger keywords with a canned reply. Rules are checked in
// order; the first match wins.
type rule struct {
	keywords []string
	reply    string
}

var rules = []rule{
	{
		keywords: []string{"reliance", "ril"},
		reply: "Reliance Industries (RELIANCE) is currently showing a bullish trend on daily charts. " +
			"The stock is trading above its 50-day moving average with increasing volumes. Based on technical " +
			"indicators, there's a potential for a breakout above ₹2,890. For intraday trading, consider a buy " +
			"strategy with a stop loss at ₹2,870 and targets at ₹2,920 and ₹2,950.",
	},
	{
		keywords: []string{"nifty", "market"},
		reply: "The NIFTY 50 is currently in an uptrend, trading at 22,523.65 with a gain of 0.68% today. " +
			"The index is showing strength above the 22,400 support level. The majority of technical indicators " +
			"suggest a positive outlook in the short term, with resistance levels at 22,600 and 22,750. For " +
			"trading strategies, consider buying on dips with strict stop losses.",
	},
	{
		keywords: []string{"strategy", "trade"},
		reply: "Based on current market conditions, here are a few trading strategies to consider:\n\n" +
			"1. **Momentum Strategy**: Look for stocks that have broken out of consolidation patterns with " +
			"increasing volume. Set a stop loss at the breakout level.\n\n" +
			"2. **Gap Trading**: Identify stocks with opening gaps and trade in the direction of the gap if " +
			"supported by market trend.\n\n" +
			"3. **Moving Average Strategy**: Buy when the 9-day EMA crosses above the 21-day EMA, sell when it " +
			"crosses below.\n\n" +
			"For each strategy, it's crucial to maintain proper risk management with position sizing of 1-2% of " +
			"your capital per trade.",
	},
	{
		keywords: []string{"backtest", "performance"},
		reply: "Backtesting is an essential step in validating trading strategies. Our system shows that for the " +
			"Indian market, momentum strategies have performed well with a 68% win rate over the past year. Mean " +
			"reversion strategies work better in sideways markets with a 62% success rate. The key to successful " +
			"backtesting is to include sufficient historical data covering various market conditions and to " +
			"account for execution costs and slippage.",
	},
	{
		keywords: []string{"recommend", "suggestion"},
		reply: "Based on current market analysis, here are a few stock recommendations:\n\n" +
			"1. **HDFC Bank (HDFCBANK)**: Showing strong support at ₹1,620. Swing trade opportunity with 3-5 day " +
			"holding period. Target: ₹1,720\n\n" +
			"2. **Tata Motors (TATAMOTORS)**: Potential for intraday short on breaking ₹940 level. Target: ₹920\n\n" +
			"3. **Infosys (INFY)**: Accumulate on dips for long-term portfolio. Strong fundamentals and technical " +
			"support visible at ₹1,480.\n\n" +
			"Always use stop losses and size positions according to your risk tolerance.",
	},
	{
		keywords: []string{"paper trading", "simulation"},
		reply: "Paper trading is a great way to practice strategies without risking real money. Our platform " +
			"offers paper trading with real-time market data, allowing you to simulate your trades accurately. " +
			"To start paper trading, go to the Paper Trading section from the sidebar, set your virtual capital " +
			"amount, and begin executing trades. The system will track your performance metrics including win " +
			"rate, profit factor, and drawdown to help you evaluate your strategies.",
	},
}

const defaultReply = "I'm here to help with your trading questions! You can ask me about specific stocks, " +
	"market analysis, trading strategies, backtesting results, or request recommendations based on current " +
	"market conditions. What specific aspect of trading would you like to explore?"

// Greeting is the assistant's opening message.
const Greeting = "👋 Hello! I'm your AI Trading Assistant. How can I help you today? You can ask me about " +
	"stocks, trading strategies, market analysis, or specific companies."

// Reply returns the canned response for a user message.
func Reply(message string) string {
	lowered := strings.ToLower(message)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lowered, kw) {
				return r.reply
			}
		}
	}
	return defaultReply
}
