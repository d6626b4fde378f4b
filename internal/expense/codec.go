package expense

import (
	"encoding/json"

	"github.com/theirongolddev/iexpense/internal/model"

	"github.com/shopspring/decimal"
)

// wireRecord is the persisted JSON shape of a record.
type wireRecord struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Category string      `json:"category"`
	Amount   json.Number `json:"amount"`
}

// storedRecord is what decode accepts. Older data stored the category
// under "type"; it is still accepted on read. Pointers tell a missing or
// null key apart from an empty value.
type storedRecord struct {
	ID       string          `json:"id"`
	Name     *string         `json:"name"`
	Category *string         `json:"category"`
	Type     *string         `json:"type"`
	Amount   json.RawMessage `json:"amount"`
}

// Encode serializes records as a JSON array. Amounts are written as JSON
// numbers with their exact decimal representation.
func Encode(records []model.Record) ([]byte, error) {
	out := make([]wireRecord, 0, len(records))
	for _, r := range records {
		out = append(out, wireRecord{
			ID:       r.ID,
			Name:     r.Name,
			Category: r.Category,
			Amount:   json.Number(r.Amount.String()),
		})
	}
	return json.Marshal(out)
}

// Decode parses data written by Encode. Any malformed input, including a
// record missing its id, name or category, or whose amount is not a JSON
// number, yields an empty collection rather than an error.
func Decode(data []byte) []model.Record {
	records, err := decode(data)
	if err != nil {
		return []model.Record{}
	}
	return records
}

func decode(data []byte) ([]model.Record, error) {
	var raw []storedRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	records := make([]model.Record, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, w := range raw {
		if w.ID == "" {
			return nil, errMissingID
		}
		if _, dup := seen[w.ID]; dup {
			return nil, errDuplicateID
		}
		seen[w.ID] = struct{}{}
		if w.Name == nil {
			return nil, errMissingName
		}
		var category string
		switch {
		case w.Category != nil:
			category = *w.Category
		case w.Type != nil:
			category = *w.Type
		default:
			return nil, errMissingCategory
		}
		amount, err := decodeAmount(w.Amount)
		if err != nil {
			return nil, err
		}
		records = append(records, model.Record{
			ID:       w.ID,
			Name:     *w.Name,
			Category: category,
			Amount:   amount,
		})
	}
	return records, nil
}

// decodeAmount accepts only a bare JSON number; quoted numbers, null and
// a missing key are rejected.
func decodeAmount(raw json.RawMessage) (decimal.Decimal, error) {
	if len(raw) == 0 || (raw[0] != '-' && (raw[0] < '0' || raw[0] > '9')) {
		return decimal.Decimal{}, errAmountNotNumber
	}
	return decimal.NewFromString(string(raw))
}
