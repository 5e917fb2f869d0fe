package geo

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed data/russia_settlements.json
var embeddedDataset []byte

// LoadEmbedded builds a lookup from the dataset compiled into the binary.
func LoadEmbedded() (*Lookup, error) {
	return parse(embeddedDataset)
}

// LoadFile builds a lookup from a dataset file, allowing deployments to ship
// fuller reference data than the embedded default.
func LoadFile(path string) (*Lookup, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read geo dataset: %w", err)
	}
	return parse(raw)
}

// Load picks the file dataset when a path is configured, the embedded one
// otherwise.
func Load(path string) (*Lookup, error) {
	if path == "" {
		return LoadEmbedded()
	}
	return LoadFile(path)
}

func parse(raw []byte) (*Lookup, error) {
	var data Dataset
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse geo dataset: %w", err)
	}
	if len(data.FederalDistricts) == 0 {
		return nil, fmt.Errorf("geo dataset contains no federal districts")
	}
	return NewLookup(data), nil
}
