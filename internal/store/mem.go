package store

import (
	"slices"

	"github.com/theirongolddev/iexpense/internal/expense"
)

// MemSlot keeps the value in memory. The zero value is empty.
type MemSlot struct {
	data []byte
	set  bool
}

// Load implements expense.Slot.
func (m *MemSlot) Load() ([]byte, error) {
	if !m.set {
		return nil, expense.ErrNoData
	}
	return slices.Clone(m.data), nil
}

// Save implements expense.Slot.
func (m *MemSlot) Save(data []byte) error {
	m.data = slices.Clone(data)
	m.set = true
	return nil
}
