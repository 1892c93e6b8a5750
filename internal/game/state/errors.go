package state

import "errors"

var (
	// ErrUnknownEntity is returned for an entity that does not belong to the game.
	ErrUnknownEntity = errors.New("unknown entity")
	// ErrUnknownController is returned for a player that is not in the game.
	ErrUnknownController = errors.New("unknown controller")
	// ErrNoOpenBlock is returned by EndBlock when no block is open.
	ErrNoOpenBlock = errors.New("no open block")
	// ErrInvalidZone is returned when an entity is placed in an invalid zone.
	ErrInvalidZone = errors.New("invalid zone")
	// ErrZoneTag is returned by SetTag for ZONE, ZONE_POSITION and CONTROLLER,
	// which only change through Move.
	ErrZoneTag = errors.New("zone tags change through Move")
	// ErrNoPlayers is returned by NewGame without players.
	ErrNoPlayers = errors.New("game needs at least one player")
)
