package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Jin42/SabberStone/internal/game/cards"
	"github.com/Jin42/SabberStone/internal/game/enums"
)

// catalogCard mirrors one entry of data/cards.yaml.
type catalogCard struct {
	ID    string            `yaml:"id"`
	Name  string            `yaml:"name"`
	DbfID int               `yaml:"dbf_id,omitempty"`
	Tags  map[string]string `yaml:"tags,omitempty"`
}

type catalogFile struct {
	Cards []catalogCard `yaml:"cards"`
}

// fixed leading columns of the CSV export
const (
	colID = iota
	colName
	colDbfID
	firstTagCol
)

func main() {
	// Get CSV file path from args or use default
	csvPath := "data/cards_export.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	outPath := "data/cards.yaml"
	if len(os.Args) > 2 {
		outPath = os.Args[2]
	}

	absPath, err := filepath.Abs(csvPath)
	if err != nil {
		log.Fatalf("Failed to get absolute path: %v", err)
	}

	fmt.Println("=== Card Catalog Import ===")
	fmt.Printf("CSV file: %s\n", absPath)

	file, err := os.Open(absPath)
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}
	if len(records) < 2 {
		log.Fatal("CSV file is empty or has no data rows")
	}
	fmt.Printf("Found %d cards in CSV\n", len(records)-1) // -1 for header

	startTime := time.Now()
	out, skipped, err := convert(records)
	if err != nil {
		log.Fatalf("Failed to convert cards: %v", err)
	}

	catalog, err := cards.ParseCatalog(out)
	if err != nil {
		log.Fatalf("Generated catalog does not load: %v", err)
	}

	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		log.Fatalf("Failed to write catalog: %v", err)
	}

	fmt.Println("\n=== Import Complete ===")
	fmt.Printf("✓ Wrote %d cards to %s\n", catalog.Len(), outPath)
	if skipped > 0 {
		fmt.Printf("✗ Skipped: %d rows\n", skipped)
	}
	fmt.Printf("Time taken: %s\n", time.Since(startTime))
}

// convert turns CSV records into catalog YAML. The header row names the
// columns: id, name, dbf_id, then one column per tag. Empty cells are left
// out. Rows without an id are skipped and counted.
func convert(records [][]string) ([]byte, int, error) {
	if len(records) == 0 {
		return nil, 0, fmt.Errorf("missing header row")
	}
	header := records[0]
	if len(header) < firstTagCol {
		return nil, 0, fmt.Errorf("header has %d columns, need at least %d", len(header), firstTagCol)
	}

	tagCols := make(map[int]enums.GameTag, len(header)-firstTagCol)
	for i := firstTagCol; i < len(header); i++ {
		tag, err := enums.ParseGameTag(strings.TrimSpace(header[i]))
		if err != nil {
			return nil, 0, fmt.Errorf("column %d: %w", i+1, err)
		}
		tagCols[i] = tag
	}

	var (
		file    catalogFile
		skipped int
	)
	for i, record := range records[1:] { // Skip header
		if len(record) <= colDbfID || strings.TrimSpace(record[colID]) == "" {
			log.Printf("Warning: Skipping row %d - missing id", i+2)
			skipped++
			continue
		}

		card := catalogCard{
			ID:   strings.TrimSpace(record[colID]),
			Name: strings.TrimSpace(record[colName]),
		}
		if dbf := strings.TrimSpace(record[colDbfID]); dbf != "" {
			v, err := strconv.Atoi(dbf)
			if err != nil {
				return nil, 0, fmt.Errorf("row %d: invalid dbf_id %q", i+2, dbf)
			}
			card.DbfID = v
		}

		for col, tag := range tagCols {
			if col >= len(record) {
				continue
			}
			text := strings.TrimSpace(record[col])
			if text == "" {
				continue
			}
			if _, err := enums.ParseValue(tag, text); err != nil {
				return nil, 0, fmt.Errorf("row %d: %w", i+2, err)
			}
			if card.Tags == nil {
				card.Tags = make(map[string]string)
			}
			card.Tags[tag.String()] = text
		}

		file.Cards = append(file.Cards, card)
	}

	out, err := yaml.Marshal(&file)
	if err != nil {
		return nil, 0, fmt.Errorf("encode catalog: %w", err)
	}
	return out, skipped, nil
}
