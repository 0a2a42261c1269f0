package constants

// Procedure table layout, as stored in the advice map under an account code root.
const (
	ProcedureTableHeaderSize = 1 // number of procedures, not interpreted by readers
	ProcedureRecordSize      = 8
	ProcedureCommitmentSize  = 4
	ProcedureMetadataSize    = ProcedureRecordSize - ProcedureCommitmentSize
)

// Index 255 is reserved for the mock dispatch path, so real procedures use 0..254.
const (
	MaxAccountProcedures = 255
	MockProcedureIndex   = 255
)

const (
	FeltModulus uint64 = 0xFFFFFFFF00000001 // 2^64 - 2^32 + 1
	FeltSize           = 8                  // bytes per field element
	WordSize           = 4                  // field elements per word
	DigestSize         = FeltSize * WordSize
)
