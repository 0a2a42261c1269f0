package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"txkernel/pkg/advice"
	"txkernel/pkg/host"
)

const testConfig = `{
	"procedures": [
		{"commitment": "0x1d765c651d992d85111d985b5a508756a84c364420520b301e062a6e0167e561", "metadata": [1, 0, 0, 0]},
		{"commitment": "0xd5891406d96a181a4c5b75de7de5594d9c0426b811d8bf6a07204bc1abf140d2"}
	],
	"resolve": [
		"0xd5891406d96a181a4c5b75de7de5594d9c0426b811d8bf6a07204bc1abf140d2",
		"0x0000000000000000000000000000000000000000000000000000000000000000",
		"0x8ef0092134469a1330e3c468f57c7f085ce611645d09cc7516c786fefc71d794"
	]
}`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadConfigAndResolve(t *testing.T) {
	config, err := loadConfig(writeConfig(t, testConfig))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	code, err := config.accountCode()
	if err != nil {
		t.Fatalf("accountCode: %v", err)
	}
	if code.Len() != 2 || code.Procedures()[0].Metadata[0] != 1 {
		t.Fatalf("unexpected account code: %+v", code.Procedures())
	}
	roots, err := config.roots()
	if err != nil {
		t.Fatalf("roots: %v", err)
	}

	store, err := advice.OpenPebbleStore(filepath.Join(t.TempDir(), "data"))
	if err != nil {
		t.Fatalf("OpenPebbleStore: %v", err)
	}
	defer store.Close()
	root, err := code.LoadInto(store)
	if err != nil {
		t.Fatalf("LoadInto: %v", err)
	}
	h, err := host.NewTransactionHost(root, store, host.Options{Logger: log.New(io.Discard, "", 0)})
	if err != nil {
		t.Fatalf("NewTransactionHost: %v", err)
	}

	lines := resolveAll(h, roots)
	if len(lines) != 3 {
		t.Fatalf("got %d lines", len(lines))
	}
	if !strings.HasSuffix(lines[0], "-> 1") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "-> 255") {
		t.Errorf("line 1 = %q", lines[1])
	}
	if !strings.Contains(lines[2], "unknown account procedure") {
		t.Errorf("line 2 = %q", lines[2])
	}
}

func TestConfigErrors(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file should fail")
	}
	if _, err := loadConfig(writeConfig(t, "{")); err == nil {
		t.Error("malformed JSON should fail")
	}

	bad := Config{Procedures: []ProcedureConfig{{Commitment: "0x01"}}}
	if _, err := bad.accountCode(); err == nil {
		t.Error("short commitment should fail")
	}
	if _, err := (Config{Resolve: []string{"nothex"}}).roots(); err == nil {
		t.Error("bad resolve entry should fail")
	}
}
