package cards

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/Jin42/SabberStone/internal/game/enums"
)

// Catalog is a read-only set of cards keyed by card id.
type Catalog struct {
	cards map[string]*Card
}

type catalogFile struct {
	Cards []cardEntry `yaml:"cards"`
}

type cardEntry struct {
	ID    string            `yaml:"id"`
	Name  string            `yaml:"name"`
	DbfID int               `yaml:"dbf_id"`
	Tags  map[string]string `yaml:"tags"`
}

// LoadCatalog reads a YAML catalog from path.
func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	catalog, err := ParseCatalog(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return catalog, nil
}

// ParseCatalog decodes a YAML catalog. Tag keys are protocol names and values
// are integers, booleans or enumeration names.
func ParseCatalog(raw []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	catalog := &Catalog{cards: make(map[string]*Card, len(file.Cards))}
	for i, entry := range file.Cards {
		if entry.ID == "" {
			return nil, fmt.Errorf("card %d: missing id", i)
		}
		if _, exists := catalog.cards[entry.ID]; exists {
			return nil, fmt.Errorf("card %s: duplicate id", entry.ID)
		}
		defaults := make(map[enums.GameTag]int, len(entry.Tags))
		for name, text := range entry.Tags {
			tag, err := enums.ParseGameTag(name)
			if err != nil {
				return nil, fmt.Errorf("card %s: %w", entry.ID, err)
			}
			value, err := enums.ParseValue(tag, text)
			if err != nil {
				return nil, fmt.Errorf("card %s: %w", entry.ID, err)
			}
			defaults[tag] = value
		}
		card := New(entry.ID, entry.Name, defaults)
		card.DbfID = entry.DbfID
		catalog.cards[entry.ID] = card
	}
	return catalog, nil
}

// Get returns the card with id.
func (c *Catalog) Get(id string) (*Card, bool) {
	card, ok := c.cards[id]
	return card, ok
}

// MustGet returns the card with id and panics if it is missing.
func (c *Catalog) MustGet(id string) *Card {
	card, ok := c.cards[id]
	if !ok {
		panic(fmt.Sprintf("card %s not in catalog", id))
	}
	return card
}

// Len returns the number of cards.
func (c *Catalog) Len() int {
	return len(c.cards)
}

// IDs returns the card ids in sorted order.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.cards))
	for id := range c.cards {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
