package advice

import (
	"fmt"
	"io"

	"txkernel/pkg/serializer"
	"txkernel/pkg/types"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
)

var keyPrefix = []byte("advice:")

// PebbleStore implements Store using PebbleDB
type PebbleStore struct {
	db    *pebble.DB
	batch *pebble.Batch // For transaction support
}

// OpenPebbleStore opens (or creates) a store in dbPath
func OpenPebbleStore(dbPath string) (*PebbleStore, error) {
	return openPebbleStore(dbPath, &pebble.Options{})
}

// OpenInMemoryPebbleStore opens a store backed by an in-memory filesystem
func OpenInMemoryPebbleStore() (*PebbleStore, error) {
	return openPebbleStore("", &pebble.Options{FS: vfs.NewMem()})
}

func openPebbleStore(dbPath string, opts *pebble.Options) (*PebbleStore, error) {
	db, err := pebble.Open(dbPath, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open advice store: %w", err)
	}
	return &PebbleStore{db: db}, nil
}

func makeKey(key types.Digest) []byte {
	b := key.Bytes()
	return append(append([]byte{}, keyPrefix...), b[:]...)
}

func (s *PebbleStore) GetMappedValues(key types.Digest) ([]types.Felt, bool, error) {
	var (
		value  []byte
		closer io.Closer
		err    error
	)
	// If there's an active batch, use it exclusively so pending writes are visible
	if s.batch != nil {
		value, closer, err = s.batch.Get(makeKey(key))
	} else {
		value, closer, err = s.db.Get(makeKey(key))
	}
	if err == pebble.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get advice entry %s: %w", key, err)
	}
	defer closer.Close()

	// value is only valid until closer.Close(); DecodeFelts copies it out
	felts, err := serializer.DecodeFelts(value)
	if err != nil {
		return nil, false, fmt.Errorf("corrupt advice entry %s: %w", key, err)
	}
	return felts, true, nil
}

func (s *PebbleStore) Insert(key types.Digest, values []types.Felt) error {
	if s.batch != nil {
		return s.batch.Set(makeKey(key), serializer.EncodeFelts(values), nil)
	}
	return s.db.Set(makeKey(key), serializer.EncodeFelts(values), pebble.Sync)
}

func (s *PebbleStore) Delete(key types.Digest) error {
	if s.batch != nil {
		return s.batch.Delete(makeKey(key), nil)
	}
	return s.db.Delete(makeKey(key), pebble.Sync)
}

// BeginTransaction starts a new transaction
func (s *PebbleStore) BeginTransaction() error {
	if s.batch != nil {
		return fmt.Errorf("transaction already in progress")
	}
	s.batch = s.db.NewIndexedBatch()
	return nil
}

// CommitTransaction commits the current transaction
func (s *PebbleStore) CommitTransaction() error {
	if s.batch == nil {
		return fmt.Errorf("no transaction in progress")
	}
	err := s.batch.Commit(pebble.Sync)
	s.batch.Close()
	s.batch = nil
	return err
}

// RollbackTransaction aborts the current transaction
func (s *PebbleStore) RollbackTransaction() error {
	if s.batch == nil {
		return fmt.Errorf("no transaction in progress")
	}
	s.batch.Close()
	s.batch = nil
	return nil
}

// Close closes the database
func (s *PebbleStore) Close() error {
	if s.batch != nil {
		s.batch.Close()
		s.batch = nil
	}
	return s.db.Close()
}
