// Package accountprocs maps account procedure roots to the procedure indexes
// the transaction kernel uses for dispatch.
package accountprocs

import (
	"fmt"
	"log"

	"txkernel/pkg/advice"
	"txkernel/pkg/constants"
	"txkernel/pkg/types"
)

// StackReader exposes the operand stack of the running process.
type StackReader interface {
	// Word returns the i-th word from the top of the stack.
	Word(i int) types.Word
}

type Option func(*IndexMap)

// WithLogger traces every record inserted while the map is built.
func WithLogger(logger *log.Logger) Option {
	return func(m *IndexMap) {
		m.logger = logger
	}
}

// IndexMap is a map of procedure root -> procedure index for all known
// procedures of an account interface. It is never modified after New returns,
// so concurrent Resolve calls need no locking.
type IndexMap struct {
	indexes     map[types.Digest]types.ProcedureIndex
	commitments []types.Digest
	logger      *log.Logger
}

// New builds the index map from the procedure table stored under
// accountCodeRoot. The table has to be in the store already; New reads it
// exactly once.
//
// The table is a header element followed by 8-element records whose first
// word is the procedure root. A trailing partial record is ignored.
func New(accountCodeRoot types.Digest, store advice.Store, opts ...Option) (*IndexMap, error) {
	m := &IndexMap{}
	for _, opt := range opts {
		opt(m)
	}

	procs, ok, err := store.GetMappedValues(accountCodeRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to read procedure table for %s: %w", accountCodeRoot, err)
	}
	if !ok {
		return nil, &MissingProcedureTableError{Root: accountCodeRoot}
	}

	var records []types.Felt
	if len(procs) > constants.ProcedureTableHeaderSize {
		records = procs[constants.ProcedureTableHeaderSize:]
	}
	numRecords := len(records) / constants.ProcedureRecordSize
	if numRecords > constants.MaxAccountProcedures {
		return nil, fmt.Errorf("%w: %d records under %s, at most %d allowed",
			ErrProcedureTableTooLarge, numRecords, accountCodeRoot, constants.MaxAccountProcedures)
	}

	m.indexes = make(map[types.Digest]types.ProcedureIndex, numRecords)
	m.commitments = make([]types.Digest, 0, numRecords)
	for i := 0; i < numRecords; i++ {
		record := records[i*constants.ProcedureRecordSize : (i+1)*constants.ProcedureRecordSize]

		var root types.Digest
		copy(root[:], record[:constants.ProcedureCommitmentSize])

		if prev, dup := m.indexes[root]; dup {
			m.tracef("duplicate procedure root %s: index %d replaces %d", root, i, prev)
		}
		m.indexes[root] = types.ProcedureIndex(i)
		m.commitments = append(m.commitments, root)
		m.tracef("index map inserted root %s at index %d, elements %v", root, i, types.Word(root))
	}
	if trailing := len(records) % constants.ProcedureRecordSize; trailing != 0 {
		m.tracef("dropped %d trailing elements of procedure table %s", trailing, accountCodeRoot)
	}

	return m, nil
}

// Empty returns a map with no procedures, for execution contexts that have no
// account bound. Only the mock root resolves against it.
func Empty() *IndexMap {
	return &IndexMap{indexes: map[types.Digest]types.ProcedureIndex{}}
}

// Resolve returns the index of the procedure with the given root.
//
// The zero digest always resolves to MockProcedureIndex; it stands in for the
// mock account method called from the root context and never reaches the map.
func (m *IndexMap) Resolve(commitment types.Digest) (types.ProcedureIndex, error) {
	// TODO: drop the mock root once root context tests call real account procedures.
	if commitment.IsZero() {
		return types.MockProcedureIndex, nil
	}
	index, ok := m.indexes[commitment]
	if !ok {
		return 0, &UnknownProcedureError{Commitment: commitment}
	}
	return index, nil
}

// ProcIndex returns the index of the procedure whose root is currently at
// the top of the operand stack.
func (m *IndexMap) ProcIndex(stack StackReader) (types.ProcedureIndex, error) {
	return m.Resolve(types.Digest(stack.Word(0)))
}

func (m *IndexMap) Len() int {
	return len(m.commitments)
}

// Commitments returns the procedure roots in index order. With duplicate
// roots in the table, earlier positions no longer resolve to their index.
func (m *IndexMap) Commitments() []types.Digest {
	out := make([]types.Digest, len(m.commitments))
	copy(out, m.commitments)
	return out
}

func (m *IndexMap) tracef(format string, args ...any) {
	if m.logger != nil {
		m.logger.Printf(format, args...)
	}
}
