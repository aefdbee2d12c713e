// Package cart holds the per-profile shopping cart: a list of
// (book snapshot, quantity) lines persisted to a single named slot
// and broadcast to every open view of the same profile.
package cart

import "encoding/json"

// Item is the immutable catalog snapshot taken when a book is added.
// The price is the price at add time, not re-fetched later.
type Item struct {
	BookID    string  `json:"bookId"`
	Title     string  `json:"title"`
	UnitPrice float64 `json:"unitPrice"`
}

// Line is one cart entry. At most one line exists per BookID.
type Line struct {
	Item     Item  `json:"item"`
	Quantity int64 `json:"quantity"`
}

// Persisted payloads carry a version tag so a future shape change
// does not silently corrupt old carts.
const payloadVersion = 1

type payload struct {
	Version int    `json:"version"`
	Lines   []Line `json:"lines"`
}

// EncodeLines serializes the full cart state into the versioned
// envelope used for both the storage slot and bus payloads.
func EncodeLines(lines []Line) ([]byte, error) {
	return json.Marshal(payload{Version: payloadVersion, Lines: lines})
}

// DecodeLines is the inverse of EncodeLines. It returns ErrBadPayload
// for an unknown version.
func DecodeLines(raw []byte) ([]Line, error) {
	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	if p.Version != payloadVersion {
		return nil, ErrBadPayload
	}
	if p.Lines == nil {
		return []Line{}, nil
	}
	return p.Lines, nil
}
