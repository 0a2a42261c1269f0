package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"txkernel/pkg/accountcode"
	"txkernel/pkg/advice"
	"txkernel/pkg/constants"
	"txkernel/pkg/host"
	"txkernel/pkg/types"
)

// Config represents the configuration loaded from the JSON file
type Config struct {
	Procedures []ProcedureConfig `json:"procedures"` // Account procedures in declaration order
	Resolve    []string          `json:"resolve"`    // Procedure roots to resolve, as hex strings
}

type ProcedureConfig struct {
	Commitment string                                  `json:"commitment"`
	Metadata   [constants.ProcedureMetadataSize]uint64 `json:"metadata"`
}

func loadConfig(path string) (Config, error) {
	var config Config
	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}

func (c Config) accountCode() (*accountcode.AccountCode, error) {
	procedures := make([]accountcode.Procedure, len(c.Procedures))
	for i, p := range c.Procedures {
		root, err := types.DigestFromHex(p.Commitment)
		if err != nil {
			return nil, fmt.Errorf("procedure %d: %w", i, err)
		}
		procedures[i].Commitment = root
		for j, m := range p.Metadata {
			f, err := types.NewFelt(m)
			if err != nil {
				return nil, fmt.Errorf("procedure %d metadata %d: %w", i, j, err)
			}
			procedures[i].Metadata[j] = f
		}
	}
	return accountcode.New(procedures)
}

func (c Config) roots() ([]types.Digest, error) {
	roots := make([]types.Digest, len(c.Resolve))
	for i, s := range c.Resolve {
		root, err := types.DigestFromHex(s)
		if err != nil {
			return nil, fmt.Errorf("resolve entry %d: %w", i, err)
		}
		roots[i] = root
	}
	return roots, nil
}

// resolveAll reports the index, or the rejection, for every root.
func resolveAll(h *host.TransactionHost, roots []types.Digest) []string {
	lines := make([]string, 0, len(roots))
	for _, root := range roots {
		stack := host.NewStack()
		stack.PushWord(types.Word(root))
		index, err := h.ProcIndex(stack)
		if err != nil {
			lines = append(lines, fmt.Sprintf("%s -> error: %v", root, err))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s -> %d", root, index))
	}
	return lines
}

func main() {
	configPath := flag.String("config-path", "", "Path to a JSON configuration file")
	dataPath := flag.String("data-path", "./data", "Path to the advice store directory")
	useMock := flag.Bool("mock", false, "Use the mock account code instead of the configured procedures")
	trace := flag.Bool("trace", false, "Log every procedure record while building the index map")

	flag.Parse()

	if *configPath == "" {
		log.Fatal("Error: --config-path flag is required")
	}

	config, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var code *accountcode.AccountCode
	if *useMock {
		code = accountcode.MockAccountCode()
	} else {
		code, err = config.accountCode()
		if err != nil {
			log.Fatalf("Invalid account code: %v", err)
		}
	}

	roots, err := config.roots()
	if err != nil {
		log.Fatalf("Invalid resolve list: %v", err)
	}

	store, err := advice.OpenPebbleStore(*dataPath)
	if err != nil {
		log.Fatalf("Failed to open advice store: %v", err)
	}
	defer store.Close()

	accountCodeRoot, err := code.LoadInto(store)
	if err != nil {
		log.Fatalf("Failed to load account code: %v", err)
	}
	log.Printf("Loaded %d procedures under account code root %s", code.Len(), accountCodeRoot)

	h, err := host.NewTransactionHost(accountCodeRoot, store, host.Options{TraceIndexMap: *trace})
	if err != nil {
		log.Fatalf("Failed to create transaction host: %v", err)
	}

	for _, line := range resolveAll(h, roots) {
		fmt.Println(line)
	}
}
