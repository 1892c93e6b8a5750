package history

import (
	"fmt"
	"strings"

	"github.com/Jin42/SabberStone/internal/game/enums"
)

const indent = "    "

// Render returns the log-style text of e. Every line ends with a newline.
// Enumerated tag values print by name when the name is known.
func Render(e Event) string {
	var b strings.Builder
	switch ev := e.(type) {
	case CreateGame:
		b.WriteString("CREATE_GAME\n")
		fmt.Fprintf(&b, "%sGameEntity EntityID=%d\n", indent, ev.Game.ID)
		writeTags(&b, indent+indent, ev.Game.Tags)
		for _, p := range ev.Players {
			fmt.Fprintf(&b, "%sPlayer EntityID=%d PlayerID=%d GameAccountId=[hi=%d lo=%d] CardBack=%d\n",
				indent, p.Entity.ID, p.PlayerID, p.Account.Hi, p.Account.Lo, p.CardBack)
			writeTags(&b, indent+indent, p.Entity.Tags)
		}
	case TagChange:
		fmt.Fprintf(&b, "TAG_CHANGE Entity=[%d] tag=%s value=%s\n",
			ev.EntityID, ev.Tag, enums.FormatValue(ev.Tag, ev.Value))
	case FullEntity:
		fmt.Fprintf(&b, "FULL_ENTITY - Creating ID=%d CardID=%s\n", ev.EntityID, ev.CardID)
		writeTags(&b, indent, ev.Tags)
	case ShowEntity:
		fmt.Fprintf(&b, "SHOW_ENTITY - Updating Entity=[%d] CardID=%s\n", ev.EntityID, ev.CardID)
		writeTags(&b, indent, ev.Tags)
	case HideEntity:
		fmt.Fprintf(&b, "HIDE_ENTITY - Entity=[%d] tag=%s value=%s\n",
			ev.EntityID, enums.TagZone, enums.FormatValue(enums.TagZone, int(ev.Zone)))
	case BlockStart:
		fmt.Fprintf(&b, "BLOCK_START BlockType=%s Entity=[%d] EffectCardId=%s EffectIndex=%d Target=%d\n",
			ev.BlockType, ev.Source, ev.EffectCardID, ev.EffectIndex, ev.Target)
	case BlockEnd:
		b.WriteString("BLOCK_END\n")
	default:
		fmt.Fprintf(&b, "UNKNOWN %T\n", e)
	}
	return b.String()
}

func writeTags(b *strings.Builder, prefix string, values []TagValue) {
	for _, tv := range values {
		fmt.Fprintf(b, "%stag=%s value=%s\n", prefix, tv.Tag, enums.FormatValue(tv.Tag, tv.Value))
	}
}
