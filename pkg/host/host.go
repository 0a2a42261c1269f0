package host

import (
	"log"

	"txkernel/pkg/accountprocs"
	"txkernel/pkg/advice"
	"txkernel/pkg/errors"
	"txkernel/pkg/types"

	"github.com/google/uuid"
)

type Options struct {
	Logger *log.Logger // defaults to the standard logger
	// TraceIndexMap logs every procedure record while the index map is built.
	TraceIndexMap bool
}

// TransactionHost serves kernel requests for one execution context.
type TransactionHost struct {
	id          uuid.UUID
	procs       *accountprocs.IndexMap
	adviceStack []types.Felt
	logger      *log.Logger
}

// NewTransactionHost builds the procedure index map for the account whose
// code is stored in store under accountCodeRoot. A missing table is a setup
// error and the host cannot be used.
func NewTransactionHost(accountCodeRoot types.Digest, store advice.Store, opts Options) (*TransactionHost, error) {
	h := newHost(opts)

	var mapOpts []accountprocs.Option
	if opts.TraceIndexMap {
		mapOpts = append(mapOpts, accountprocs.WithLogger(h.logger))
	}
	procs, err := accountprocs.New(accountCodeRoot, store, mapOpts...)
	if err != nil {
		return nil, errors.WrapKernelError(err, "failed to set up transaction host "+h.id.String())
	}
	h.procs = procs
	h.logger.Printf("[%s] bound account code %s with %d procedures", h.id, accountCodeRoot, procs.Len())
	return h, nil
}

// NewRootContextHost returns a host with no account bound. Only the mock
// account method resolves.
func NewRootContextHost(opts Options) *TransactionHost {
	h := newHost(opts)
	h.procs = accountprocs.Empty()
	return h
}

func newHost(opts Options) *TransactionHost {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &TransactionHost{
		id:     uuid.New(),
		logger: logger,
	}
}

func (h *TransactionHost) ID() uuid.UUID {
	return h.id
}

// ProcIndex returns the index of the account procedure whose root is at the
// top of stack.
func (h *TransactionHost) ProcIndex(stack accountprocs.StackReader) (types.ProcedureIndex, error) {
	index, err := h.procs.ProcIndex(stack)
	if err != nil {
		h.logger.Printf("[%s] rejected account call: %v", h.id, err)
		return 0, errors.WrapKernelError(err, "account procedure call rejected")
	}
	return index, nil
}

// OnEvent handles an event emitted by the kernel. Results are pushed onto the
// advice stack for the kernel to read back.
func (h *TransactionHost) OnEvent(id EventID, stack accountprocs.StackReader) error {
	switch id {
	case AccountProcedureIndexEvent:
		index, err := h.ProcIndex(stack)
		if err != nil {
			return err
		}
		h.adviceStack = append(h.adviceStack, types.Felt(index))
		return nil
	default:
		return errors.KernelErrorf("unknown event %s", id)
	}
}

// AdviceStack returns the values pushed by OnEvent, oldest first.
func (h *TransactionHost) AdviceStack() []types.Felt {
	return append([]types.Felt(nil), h.adviceStack...)
}
