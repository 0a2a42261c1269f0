package accountcode

import (
	"encoding/binary"
	"fmt"

	"txkernel/pkg/advice"
	"txkernel/pkg/constants"
	"txkernel/pkg/serializer"
	"txkernel/pkg/types"

	"golang.org/x/crypto/blake2b"
)

type Procedure struct {
	Commitment types.Digest
	Metadata   [constants.ProcedureMetadataSize]types.Felt // opaque to dispatch
}

// AccountCode is the ordered list of procedures an account exposes. A
// procedure's position in the list is its index.
type AccountCode struct {
	procedures []Procedure
	table      []types.Felt
	commitment types.Digest
}

func New(procedures []Procedure) (*AccountCode, error) {
	if len(procedures) == 0 {
		return nil, fmt.Errorf("account code must export at least one procedure")
	}
	if len(procedures) > constants.MaxAccountProcedures {
		return nil, fmt.Errorf("account code exports %d procedures, at most %d allowed", len(procedures), constants.MaxAccountProcedures)
	}

	seen := make(map[types.Digest]int, len(procedures))
	for i, proc := range procedures {
		// The zero root is reserved for the mock account method.
		if proc.Commitment.IsZero() {
			return nil, fmt.Errorf("procedure %d has the zero root", i)
		}
		if prev, ok := seen[proc.Commitment]; ok {
			return nil, fmt.Errorf("procedure %d duplicates root %s of procedure %d", i, proc.Commitment, prev)
		}
		seen[proc.Commitment] = i
	}

	code := &AccountCode{procedures: append([]Procedure(nil), procedures...)}
	code.table = code.buildTable()
	code.commitment = hashTable(code.table)
	return code, nil
}

// FromCommitments builds account code whose procedures carry empty metadata.
func FromCommitments(commitments ...types.Digest) (*AccountCode, error) {
	procedures := make([]Procedure, len(commitments))
	for i, c := range commitments {
		procedures[i].Commitment = c
	}
	return New(procedures)
}

func (c *AccountCode) buildTable() []types.Felt {
	table := make([]types.Felt, 0, constants.ProcedureTableHeaderSize+len(c.procedures)*constants.ProcedureRecordSize)
	table = append(table, types.Felt(len(c.procedures)))
	for _, proc := range c.procedures {
		table = append(table, proc.Commitment[:]...)
		table = append(table, proc.Metadata[:]...)
	}
	return table
}

// hashTable reduces blake2b(table) to four field elements.
func hashTable(table []types.Felt) types.Digest {
	sum := blake2b.Sum256(serializer.EncodeFelts(table))
	var d types.Digest
	for i := range d {
		d[i] = types.Felt(binary.LittleEndian.Uint64(sum[i*constants.FeltSize:]) % constants.FeltModulus)
	}
	return d
}

func (c *AccountCode) Procedures() []Procedure {
	return append([]Procedure(nil), c.procedures...)
}

func (c *AccountCode) Len() int {
	return len(c.procedures)
}

// ProcedureIndex returns the declared index of the procedure with the given root.
func (c *AccountCode) ProcedureIndex(commitment types.Digest) (types.ProcedureIndex, bool) {
	for i, proc := range c.procedures {
		if proc.Commitment == commitment {
			return types.ProcedureIndex(i), true
		}
	}
	return 0, false
}

// ProcedureTable returns the advice map value for this account code: the
// procedure count followed by one record of root and metadata per procedure.
func (c *AccountCode) ProcedureTable() []types.Felt {
	return append([]types.Felt(nil), c.table...)
}

// Commitment is the account code root the procedure table is stored under.
func (c *AccountCode) Commitment() types.Digest {
	return c.commitment
}

// LoadInto writes the procedure table into store and returns its key.
func (c *AccountCode) LoadInto(store advice.Inserter) (types.Digest, error) {
	if err := store.Insert(c.commitment, c.table); err != nil {
		return types.ZeroDigest, fmt.Errorf("failed to load account code %s: %w", c.commitment, err)
	}
	return c.commitment, nil
}
