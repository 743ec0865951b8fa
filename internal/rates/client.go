// Package rates consumes the public NBU exchange-rate feed, read-only,
// filtered to the currencies the app displays.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"
)

// countryMap lists the displayed currency codes with their flag country.
var countryMap = map[string]string{
	"USD": "US", "EUR": "EU", "GBP": "GB", "PLN": "PL", "CHF": "CH",
	"CAD": "CA", "JPY": "JP", "CZK": "CZ", "SEK": "SE", "NOK": "NO",
	"HUF": "HU", "TRY": "TR", "AUD": "AU", "DKK": "DK", "CNY": "CN",
	"KZT": "KZ", "MXN": "MX", "INR": "IN", "ZAR": "ZA", "SGD": "SG",
	"KRW": "KR", "BGN": "BG", "RON": "RO", "THB": "TH", "HKD": "HK",
}

// popularCodes come first in display order.
var popularCodes = []string{"USD", "EUR", "GBP", "PLN", "CHF", "CAD", "JPY"}

type Rate struct {
	Code    string  `json:"cc"`
	Name    string  `json:"txt"`
	Rate    float64 `json:"rate"`
	Country string  `json:"country"`
}

type Client struct {
	url  string
	http *http.Client
}

func NewClient(url string) *Client {
	return &Client{
		url: url,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Fetch queries the feed and returns the display set: known codes only,
// popular codes first, then alphabetical.
func (c *Client) Fetch(ctx context.Context) ([]Rate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)

	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rates feed returned status %d", resp.StatusCode)
	}

	var all []Rate

	if err := json.NewDecoder(resp.Body).Decode(&all); err != nil {
		return nil, fmt.Errorf("decode rates feed: %w", err)
	}

	return displaySet(all), nil
}

func displaySet(all []Rate) []Rate {
	out := make([]Rate, 0, len(countryMap))

	for _, r := range all {
		if country, ok := countryMap[r.Code]; ok {
			r.Country = country
			out = append(out, r)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		pi := popularIndex(out[i].Code)
		pj := popularIndex(out[j].Code)

		if pi != pj {
			return pi < pj
		}

		return out[i].Code < out[j].Code
	})

	return out
}

func popularIndex(code string) int {
	for i, p := range popularCodes {
		if p == code {
			return i
		}
	}

	return len(popularCodes)
}
