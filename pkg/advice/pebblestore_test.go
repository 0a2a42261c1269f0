package advice

import (
	"testing"

	"txkernel/pkg/types"

	"github.com/google/go-cmp/cmp"
)

func TestPebbleStorePersists(t *testing.T) {
	dir := t.TempDir()
	want := []types.Felt{1, 9, 9, 9, 9, 0, 0, 0, 0}

	s, err := OpenPebbleStore(dir)
	if err != nil {
		t.Fatalf("OpenPebbleStore: %v", err)
	}
	if err := s.Insert(rootA, want); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := OpenPebbleStore(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	got, ok, err := reopened.GetMappedValues(rootA)
	if err != nil || !ok {
		t.Fatalf("GetMappedValues = (_, %v, %v)", ok, err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestPebbleStoreTransactions(t *testing.T) {
	s, err := OpenInMemoryPebbleStore()
	if err != nil {
		t.Fatalf("OpenInMemoryPebbleStore: %v", err)
	}
	defer s.Close()

	if err := s.CommitTransaction(); err == nil {
		t.Error("CommitTransaction without a transaction should fail")
	}
	if err := s.RollbackTransaction(); err == nil {
		t.Error("RollbackTransaction without a transaction should fail")
	}

	// Rolled back writes disappear.
	if err := s.BeginTransaction(); err != nil {
		t.Fatalf("BeginTransaction: %v", err)
	}
	if err := s.BeginTransaction(); err == nil {
		t.Error("nested BeginTransaction should fail")
	}
	s.Insert(rootA, []types.Felt{1})
	if _, ok, _ := s.GetMappedValues(rootA); !ok {
		t.Error("transaction should read its own writes")
	}
	if err := s.RollbackTransaction(); err != nil {
		t.Fatalf("RollbackTransaction: %v", err)
	}
	if _, ok, _ := s.GetMappedValues(rootA); ok {
		t.Error("rolled back write is still visible")
	}

	// Committed writes stay.
	s.BeginTransaction()
	s.Insert(rootB, []types.Felt{2})
	if err := s.CommitTransaction(); err != nil {
		t.Fatalf("CommitTransaction: %v", err)
	}
	if _, ok, _ := s.GetMappedValues(rootB); !ok {
		t.Error("committed write is missing")
	}

	s.BeginTransaction()
	s.Delete(rootB)
	s.CommitTransaction()
	if _, ok, _ := s.GetMappedValues(rootB); ok {
		t.Error("deleted entry is still present")
	}
}
