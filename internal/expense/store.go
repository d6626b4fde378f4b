package expense

import (
	"errors"
	"iter"
	"slices"

	"github.com/theirongolddev/iexpense/internal/model"

	"go.uber.org/zap"
)

// Store holds the ordered expense collection. It is not safe for
// concurrent use; callers drive it from a single event loop.
type Store struct {
	slot    Slot
	log     *zap.Logger
	records []model.Record
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to report swallowed persistence failures.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates a store backed by slot and loads the persisted collection.
// Missing or undecodable data starts the store empty.
func New(slot Slot, opts ...Option) *Store {
	s := &Store{slot: slot, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	s.records = s.load()
	return s
}

func (s *Store) load() []model.Record {
	data, err := s.slot.Load()
	if err != nil {
		if !errors.Is(err, ErrNoData) {
			s.log.Warn("loading expenses", zap.Error(err))
		}
		return []model.Record{}
	}

	records, err := decode(data)
	if err != nil {
		s.log.Warn("decoding expenses, starting empty", zap.Error(err), zap.Int("bytes", len(data)))
		return []model.Record{}
	}
	return records
}

// persist writes the full collection to the slot. Failures are logged
// and dropped.
func (s *Store) persist() {
	data, err := Encode(s.records)
	if err != nil {
		s.log.Warn("encoding expenses", zap.Error(err))
		return
	}
	if err := s.slot.Save(data); err != nil {
		s.log.Warn("saving expenses", zap.Error(err), zap.Int("records", len(s.records)))
	}
}

// Add appends r and persists the collection.
func (s *Store) Add(r model.Record) {
	s.records = append(s.records, r)
	s.persist()
}

// Remove deletes the records shown at positions in the list displayed
// under mode, then persists. Positions are resolved to record IDs before
// anything is removed, so a filtered position never hits the wrong
// record. Out-of-range and repeated positions are ignored. The removed
// records are returned in canonical order.
func (s *Store) Remove(mode model.Mode, positions ...int) []model.Record {
	displayed := slices.Collect(s.View(mode))

	doomed := make(map[string]struct{}, len(positions))
	for _, pos := range positions {
		if pos < 0 || pos >= len(displayed) {
			continue
		}
		doomed[displayed[pos].ID] = struct{}{}
	}
	if len(doomed) == 0 {
		return nil
	}

	var removed []model.Record
	s.records = slices.DeleteFunc(s.records, func(r model.Record) bool {
		if _, ok := doomed[r.ID]; ok {
			removed = append(removed, r)
			return true
		}
		return false
	})
	s.persist()
	return removed
}

// Records returns a copy of the full collection in insertion order.
func (s *Store) Records() []model.Record {
	return slices.Clone(s.records)
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// FilteredBy yields every record when ok is false, otherwise only records
// whose category equals category. The sequence can be ranged over again.
func (s *Store) FilteredBy(category string, ok bool) iter.Seq[model.Record] {
	return func(yield func(model.Record) bool) {
		for _, r := range s.records {
			if ok && r.Category != category {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}

// View yields the records displayed under mode.
func (s *Store) View(mode model.Mode) iter.Seq[model.Record] {
	return s.FilteredBy(mode.Category())
}

// GroupedFirstByKey picks one exemplar per distinct key: the first record
// carrying that key in input order. Groups come out in order of first
// appearance. Amounts are not aggregated.
func GroupedFirstByKey(records iter.Seq[model.Record], key model.GroupKey) []model.Record {
	var out []model.Record
	seen := make(map[string]struct{})
	for r := range records {
		k := key.Of(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, r)
	}
	return out
}
