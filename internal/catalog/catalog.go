// Package catalog maps human-readable stock names to provider symbol codes.
package catalog

import (
	"fmt"
	"sort"
)

// defaultEntries is the built-in selection of stocks.
var defaultEntries = map[string]string{
	"Johnson & Johnson":               "JNJ",
	"Alphabet Inc Class C":            "GOOG",
	"Apple Inc":                       "AAPL",
	"Berkshire Hathaway Inc. Class A": "BRK-A",
	"Amazon.com, Inc.":                "AMZN",
	"Microsoft Corporation":           "MSFT",
	"JPMorgan Chase & Co":             "JPM",
	"Netflix Inc":                     "NFLX",
	"Meta Platforms Inc":              "META",
	"Bank of America Corp":            "BAC",
	"GameStop Corp.":                  "GME",
	"McDonald's Corp":                 "MCD",
	"Coca-Cola Co":                    "KO",
}

// Catalog is a fixed display-name to symbol-code mapping. The forecast
// pipeline only ever receives resolved codes.
type Catalog struct {
	entries map[string]string
	codes   map[string]bool
}

// New creates a Catalog from entries, falling back to the built-in set when
// entries is empty.
func New(entries map[string]string) *Catalog {
	if len(entries) == 0 {
		entries = defaultEntries
	}
	codes := make(map[string]bool, len(entries))
	for _, code := range entries {
		codes[code] = true
	}
	return &Catalog{entries: entries, codes: codes}
}

// Resolve maps a display name or an already-resolved code to a symbol code.
func (c *Catalog) Resolve(nameOrCode string) (string, error) {
	if code, ok := c.entries[nameOrCode]; ok {
		return code, nil
	}
	if c.codes[nameOrCode] {
		return nameOrCode, nil
	}
	return "", fmt.Errorf("unknown stock %q", nameOrCode)
}

// Names returns display names in sorted order for presentation.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Codes returns symbol codes in sorted order.
func (c *Catalog) Codes() []string {
	codes := make([]string, 0, len(c.codes))
	for code := range c.codes {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
