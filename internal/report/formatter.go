// Package report renders analysis results as plain text.
package report

import (
	"fmt"
	"strings"

	"StockLab/internal/evaluate"
	"StockLab/internal/histstore"
	"StockLab/internal/stats"
)

// FormatFetch summarizes a fetch outcome for display.
func FormatFetch(symbol string, res histstore.Result) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("== %s ==\n", symbol))
	b.WriteString(fmt.Sprintf("source: %s\n", res.Source))
	if res.Attempts > 0 {
		b.WriteString(fmt.Sprintf("attempts: %d\n", res.Attempts))
	}
	if res.Series.Empty() {
		b.WriteString("no data available\n")
		return b.String()
	}
	first, last := res.Series.First(), res.Series.Last()
	b.WriteString(fmt.Sprintf("bars: %d (%s .. %s)\n",
		len(res.Series),
		first.Date.Format("2006-01-02"),
		last.Date.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("last close: %.2f (adj %.2f)\n", last.Close, last.AdjClose))
	return b.String()
}

// FormatSummary renders descriptive statistics for one series.
func FormatSummary(s *stats.Summary) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("== %s statistics ==\n", s.Symbol))
	b.WriteString(fmt.Sprintf("bars:        %d\n", s.Bars))
	b.WriteString(fmt.Sprintf("range:       %s .. %s\n",
		s.FirstDate.Format("2006-01-02"), s.LastDate.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("close:       last %.2f, min %.2f, max %.2f\n",
		s.LastClose, s.MinClose, s.MaxClose))
	b.WriteString(fmt.Sprintf("mean return: %+.4f%% per day\n", s.MeanReturn*100))
	b.WriteString(fmt.Sprintf("volatility:  %.2f%% annualized\n", s.AnnualVol*100))
	return b.String()
}

// FormatBacktest renders the per-model score table.
func FormatBacktest(symbol string, res *evaluate.BacktestResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("== %s backtest ==\n", symbol))
	b.WriteString(fmt.Sprintf("train: %d returns | test: %d returns\n\n", res.TrainSize, res.TestSize))
	b.WriteString(fmt.Sprintf("%-14s %12s %12s\n", "model", "RMSE", "MAE"))
	b.WriteString(strings.Repeat("-", 40) + "\n")
	for _, s := range res.Scores {
		if s.Err != nil {
			b.WriteString(fmt.Sprintf("%-14s failed: %v\n", s.Model, s.Err))
			continue
		}
		b.WriteString(fmt.Sprintf("%-14s %12.6f %12.6f\n", s.Model, s.RMSE, s.MAE))
	}
	return b.String()
}
