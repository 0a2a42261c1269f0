package advice

import (
	"maps"
	"slices"

	"txkernel/pkg/types"
)

// Store is the read side of the advice map: a content-addressed mapping from
// a digest to a sequence of field elements.
type Store interface {
	// GetMappedValues returns ok == false when there is no entry for key.
	// A non-nil error means the backend itself failed.
	GetMappedValues(key types.Digest) (values []types.Felt, ok bool, err error)
}

// Inserter is implemented by stores that can be populated during
// execution context setup.
type Inserter interface {
	Insert(key types.Digest, values []types.Felt) error
}

// MapStore is an in-memory advice map.
type MapStore struct {
	entries map[types.Digest][]types.Felt
}

func NewMapStore() *MapStore {
	return &MapStore{entries: make(map[types.Digest][]types.Felt)}
}

func (m *MapStore) Insert(key types.Digest, values []types.Felt) error {
	m.entries[key] = slices.Clone(values)
	return nil
}

// Extend copies every entry of other into m, replacing existing keys.
func (m *MapStore) Extend(other map[types.Digest][]types.Felt) {
	for key, values := range other {
		m.entries[key] = slices.Clone(values)
	}
}

func (m *MapStore) GetMappedValues(key types.Digest) ([]types.Felt, bool, error) {
	values, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(values), true, nil
}

func (m *MapStore) Len() int {
	return len(m.entries)
}

// Keys returns the stored keys in no particular order.
func (m *MapStore) Keys() []types.Digest {
	return slices.Collect(maps.Keys(m.entries))
}
