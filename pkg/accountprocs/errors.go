package accountprocs

import (
	"errors"
	"fmt"

	"txkernel/pkg/types"
)

var (
	ErrMissingProcedureTable  = errors.New("missing account procedure table")
	ErrUnknownProcedure       = errors.New("unknown account procedure")
	ErrProcedureTableTooLarge = errors.New("account procedure table too large")
)

// MissingProcedureTableError is returned by New when the advice map has no
// entry for the account code root.
type MissingProcedureTableError struct {
	Root types.Digest
}

func (e *MissingProcedureTableError) Error() string {
	return fmt.Sprintf("%v: no advice map entry for account code root %s", ErrMissingProcedureTable, e.Root)
}

func (e *MissingProcedureTableError) Is(target error) bool {
	return target == ErrMissingProcedureTable
}

// UnknownProcedureError is returned by Resolve for a commitment that is not
// part of the account interface.
type UnknownProcedureError struct {
	Commitment types.Digest
}

func (e *UnknownProcedureError) Error() string {
	return fmt.Sprintf("%v: %s", ErrUnknownProcedure, e.Commitment)
}

func (e *UnknownProcedureError) Is(target error) bool {
	return target == ErrUnknownProcedure
}
