package catalog

import (
	"slices"
	"sync"

	"github.com/asaantaqreeb/taqreeb/internal/model"
)

// MaxMemoEntries bounds the number of cached criteria per Memo. The oldest
// entry is evicted first.
const MaxMemoEntries = 256

// Memo caches filter results for one catalog snapshot. Build a new Memo when
// the catalog changes.
type Memo struct {
	mu      sync.Mutex
	vendors []model.Vendor
	results map[Criteria][]model.Vendor
	order   []Criteria // insertion order, oldest first
	limit   int
}

// NewMemo wraps a catalog snapshot.
func NewMemo(vendors []model.Vendor) *Memo {
	return newMemo(vendors, MaxMemoEntries)
}

func newMemo(vendors []model.Vendor, limit int) *Memo {
	return &Memo{
		vendors: slices.Clone(vendors),
		results: make(map[Criteria][]model.Vendor),
		limit:   limit,
	}
}

// Filter returns the same result as Filter on the snapshot. Callers receive
// their own copy of the slice.
func (m *Memo) Filter(c Criteria) []model.Vendor {
	m.mu.Lock()
	defer m.mu.Unlock()

	res, ok := m.results[c]
	if !ok {
		res = Filter(m.vendors, c)
		if len(m.order) >= m.limit {
			delete(m.results, m.order[0])
			m.order = m.order[1:]
		}
		m.results[c] = res
		m.order = append(m.order, c)
	}
	return slices.Clone(res)
}

// Len returns the number of cached criteria.
func (m *Memo) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.results)
}
