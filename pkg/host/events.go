package host

import "fmt"

type EventID uint32

const (
	// AccountProcedureIndexEvent asks for the index of the account procedure
	// whose root is at the top of the operand stack.
	AccountProcedureIndexEvent EventID = iota + 1
)

func (e EventID) String() string {
	switch e {
	case AccountProcedureIndexEvent:
		return "AccountProcedureIndex"
	default:
		return fmt.Sprintf("Unknown(%d)", e)
	}
}
