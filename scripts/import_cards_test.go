package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jin42/SabberStone/internal/game/cards"
	"github.com/Jin42/SabberStone/internal/game/enums"
)

func TestConvert(t *testing.T) {
	records := [][]string{
		{"id", "name", "dbf_id", "CARDTYPE", "COST", "ATK", "HEALTH", "TAUNT"},
		{"CS2_179", "Sen'jin Shieldmasta", "1753", "MINION", "4", "3", "5", "true"},
		{"CS2_029", "Fireball", "", "SPELL", "4", "", "", ""},
		{"", "Nameless", "1", "MINION", "1", "1", "1", ""},
	}

	out, skipped, err := convert(records)
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)

	catalog, err := cards.ParseCatalog(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"CS2_029", "CS2_179"}, catalog.IDs())

	shield := catalog.MustGet("CS2_179")
	assert.Equal(t, 1753, shield.DbfID)
	assert.Equal(t, enums.CardTypeMinion, shield.Type())
	assert.Equal(t, 1, shield.Default(enums.TagTaunt))

	fireball := catalog.MustGet("CS2_029")
	assert.False(t, fireball.Has(enums.TagAtk))
	assert.Equal(t, 4, fireball.Cost())
}

func TestConvertRejectsUnknownColumn(t *testing.T) {
	_, _, err := convert([][]string{{"id", "name", "dbf_id", "MANA_COLOR"}})
	assert.Error(t, err)
}

func TestConvertRejectsBadValue(t *testing.T) {
	_, _, err := convert([][]string{
		{"id", "name", "dbf_id", "CARDTYPE"},
		{"X_001", "Broken", "", "PLANESWALKER"},
	})
	assert.Error(t, err)
}
