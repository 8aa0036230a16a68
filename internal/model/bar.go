package model

import "time"

// Bar represents one trading day's price record.
// AdjClose is always populated; loaders default it to Close when the
// source omits it.
type Bar struct {
	Date     time.Time
	Open     float64
	High     float64
	Low      float64
	Close    float64
	AdjClose float64
	Volume   float64
}

// Series is an ordered sequence of bars, strictly increasing by date.
type Series []Bar

// Closes extracts the close column.
func (s Series) Closes() []float64 {
	closes := make([]float64, len(s))
	for i, b := range s {
		closes[i] = b.Close
	}
	return closes
}

// AdjCloses extracts the adjusted-close column.
func (s Series) AdjCloses() []float64 {
	adj := make([]float64, len(s))
	for i, b := range s {
		adj[i] = b.AdjClose
	}
	return adj
}

// Empty reports whether the series has no bars.
func (s Series) Empty() bool { return len(s) == 0 }

// First returns the earliest bar. Only valid on a non-empty series.
func (s Series) First() Bar { return s[0] }

// Last returns the most recent bar. Only valid on a non-empty series.
func (s Series) Last() Bar { return s[len(s)-1] }
