// Package model defines domain models for product provenance.
package model

// LogEntry is a single supply-chain event in a product's history.
// The timestamp is assigned by the ledger at append time and is
// non-decreasing across the sequence.
type LogEntry struct {
	Status    string `json:"status"`
	Location  string `json:"location"`
	Timestamp int64  `json:"timestamp"`
}

// Product is the ledger-resident provenance record for one product.
// ProductID, Name, FarmName, HarvestTimestamp and Authority are set once
// at creation and immutable thereafter; History only grows.
type Product struct {
	ProductID        uint64     `json:"productId"`
	Name             string     `json:"name"`
	FarmName         string     `json:"farmName"`
	HarvestTimestamp int64      `json:"harvestTimestamp"`
	Authority        string     `json:"authority"`
	History          []LogEntry `json:"history"`
}
