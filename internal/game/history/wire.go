package history

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of the PowerHistoryData oneof.
const (
	fieldFullEntity protowire.Number = 1
	fieldShowEntity protowire.Number = 2
	fieldHideEntity protowire.Number = 3
	fieldTagChange  protowire.Number = 4
	fieldCreateGame protowire.Number = 5
	fieldPowerStart protowire.Number = 6
	fieldPowerEnd   protowire.Number = 7
)

// Marshal encodes e as a PowerHistoryData protobuf message. Every scalar field
// is written, including zero values, matching the required fields of the
// client schema.
func Marshal(e Event) []byte {
	var (
		field protowire.Number
		body  []byte
	)
	switch ev := e.(type) {
	case FullEntity:
		field, body = fieldFullEntity, marshalEntity(ev.EntityID, ev.CardID, ev.Tags)
	case ShowEntity:
		field, body = fieldShowEntity, marshalEntity(ev.EntityID, ev.CardID, ev.Tags)
	case HideEntity:
		body = appendInt32(body, 1, ev.EntityID)
		body = appendInt32(body, 2, int(ev.Zone))
		field = fieldHideEntity
	case TagChange:
		body = appendInt32(body, 1, ev.EntityID)
		body = appendInt32(body, 2, int(ev.Tag.Wire()))
		body = appendInt32(body, 3, ev.Value)
		field = fieldTagChange
	case CreateGame:
		body = appendMessage(body, 1, marshalGameEntity(ev.Game))
		for _, p := range ev.Players {
			body = appendMessage(body, 2, marshalPlayer(p))
		}
		field = fieldCreateGame
	case BlockStart:
		body = appendInt32(body, 1, int(ev.BlockType))
		body = appendInt32(body, 2, ev.EffectIndex)
		body = appendInt32(body, 3, ev.Source)
		body = appendInt32(body, 4, ev.Target)
		body = protowire.AppendTag(body, 5, protowire.BytesType)
		body = protowire.AppendString(body, ev.EffectCardID)
		field = fieldPowerStart
	case BlockEnd:
		field = fieldPowerEnd
	default:
		return nil
	}
	return appendMessage(nil, field, body)
}

// marshalEntity encodes PowerHistoryEntity.
func marshalEntity(id int, cardID string, values []TagValue) []byte {
	var b []byte
	b = appendInt32(b, 1, id)
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendString(b, cardID)
	for _, tv := range values {
		b = appendMessage(b, 3, marshalTag(tv))
	}
	return b
}

// marshalGameEntity encodes the Entity sub-message of CreateGame and Player.
func marshalGameEntity(d EntityData) []byte {
	var b []byte
	b = appendInt32(b, 1, d.ID)
	for _, tv := range d.Tags {
		b = appendMessage(b, 2, marshalTag(tv))
	}
	return b
}

func marshalPlayer(p PlayerInfo) []byte {
	var account []byte
	account = protowire.AppendTag(account, 1, protowire.VarintType)
	account = protowire.AppendVarint(account, p.Account.Hi)
	account = protowire.AppendTag(account, 2, protowire.VarintType)
	account = protowire.AppendVarint(account, p.Account.Lo)

	var b []byte
	b = appendInt32(b, 1, p.PlayerID)
	b = appendMessage(b, 2, account)
	b = appendInt32(b, 3, p.CardBack)
	b = appendMessage(b, 4, marshalGameEntity(p.Entity))
	return b
}

func marshalTag(tv TagValue) []byte {
	var b []byte
	b = appendInt32(b, 1, int(tv.Tag.Wire()))
	b = appendInt32(b, 2, tv.Value)
	return b
}

// appendInt32 writes an int32 field. Negative values are sign-extended to ten
// bytes as protobuf requires.
func appendInt32(b []byte, num protowire.Number, v int) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(int64(int32(v))))
}

func appendMessage(b []byte, num protowire.Number, msg []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, msg)
}
