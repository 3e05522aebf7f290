package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/lesnaszkolka/ino-backend/internal/core/domain"
)

// CreateResultRequest defines the payload for adding a single result.
type CreateResultRequest struct {
	EventID       int64  `json:"event_id" binding:"required"`
	Category      string `json:"category" binding:"required"`
	Team          string `json:"team"`
	PenaltyPoints int    `json:"penalty_points"`
}

// ResultResponse is the wire representation of a result.
type ResultResponse struct {
	ID            int64  `json:"id"`
	EventID       int64  `json:"event_id"`
	Category      string `json:"category"`
	Team          string `json:"team"`
	PenaltyPoints int    `json:"penalty_points"`
	Deleted       bool   `json:"deleted"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// ToResultResponse converts a domain result to its wire representation.
func ToResultResponse(result *domain.Result) ResultResponse {
	return ResultResponse{
		ID:            result.ResultID,
		EventID:       result.EventID,
		Category:      result.Category,
		Team:          result.Team,
		PenaltyPoints: result.PenaltyPoints,
		Deleted:       result.Deleted,
		CreatedAt:     result.CreatedAt.Format(TimestampLayout),
		UpdatedAt:     result.UpdatedAt.Format(TimestampLayout),
	}
}

// ResultGroup is one category's slice of the grouped results response.
type ResultGroup struct {
	Category string
	Results  []ResultResponse
}

// GroupedResultsResponse serializes results grouped by category as a JSON
// object keyed by category name. encoding/json sorts map keys, which would
// destroy the first-seen category order, so the groups are kept as an ordered
// slice and marshalled by hand.
type GroupedResultsResponse struct {
	Groups []ResultGroup
}

// ToGroupedResultsResponse converts the ordered category groups returned by
// the result service.
func ToGroupedResultsResponse(groups []domain.CategoryResults) GroupedResultsResponse {
	resp := GroupedResultsResponse{Groups: make([]ResultGroup, len(groups))}
	for i, group := range groups {
		results := make([]ResultResponse, len(group.Results))
		for j := range group.Results {
			results[j] = ToResultResponse(&group.Results[j])
		}
		resp.Groups[i] = ResultGroup{Category: group.Category, Results: results}
	}
	return resp
}

// MarshalJSON writes the groups as a single JSON object, preserving group
// order.
func (g GroupedResultsResponse) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, group := range g.Groups {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(group.Category)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(group.Results)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ReplaceResultEntry is one row of a replace-all payload.
type ReplaceResultEntry struct {
	Team          string `json:"team"`
	PenaltyPoints int    `json:"penalty_points"`
}

// ReplaceResultGroup holds the replacement entries for one category.
type ReplaceResultGroup struct {
	Category string
	Entries  []ReplaceResultEntry
}

// ReplaceResultsRequest is the payload of the replace-all-results operation:
// a JSON object mapping category names to entry lists. Decoding walks the
// object token by token so the category order of the payload survives into
// the insert order.
type ReplaceResultsRequest struct {
	Groups []ReplaceResultGroup
}

// UnmarshalJSON decodes the category-to-entries object preserving key order.
func (r *ReplaceResultsRequest) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object mapping categories to results")
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		category, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected string category key")
		}
		var entries []ReplaceResultEntry
		if err := dec.Decode(&entries); err != nil {
			return fmt.Errorf("invalid results for category %q: %w", category, err)
		}
		r.Groups = append(r.Groups, ReplaceResultGroup{Category: category, Entries: entries})
	}
	_, err = dec.Token() // closing brace
	return err
}
