package model

import "errors"

// Common errors used across the application
var (
	// Account errors
	ErrAccountNotFound = errors.New("account not found")

	// Match errors
	ErrMatchNotFound  = errors.New("match not found")
	ErrMatchOver      = errors.New("game is over")
	ErrMatchPaused    = errors.New("game is paused")
	ErrNotHumanTurn   = errors.New("it is an AI-controlled turn")
	ErrNotAgentTurn   = errors.New("it is a human-controlled turn")
	ErrNothingToUndo  = errors.New("nothing to undo")
	ErrUnknownMode    = errors.New("unknown game mode")
	ErrUnknownLayout  = errors.New("unknown board layout")
	ErrInvalidDepth   = errors.New("search depth must be between 1 and 5")
	ErrAgentMoveError = errors.New("agent produced an illegal move")

	// Malformed move errors (rejected before any board mutation)
	ErrMalformedPosition = errors.New("malformed board position")
	ErrBadMarbleCount    = errors.New("move must contain between 1 and 3 marbles")
	ErrDuplicateMarbles  = errors.New("move contains duplicate marbles")
	ErrNotColinear       = errors.New("marbles must form a contiguous line")
	ErrUnknownDirection  = errors.New("direction is not one of the six hex directions")

	// Illegal move errors (well-formed but rejected by the rules)
	ErrNotOwned        = errors.New("marble does not belong to the moving player")
	ErrOffBoardInline  = errors.New("cannot move own marbles off the board")
	ErrSelfPush        = errors.New("cannot push own marble")
	ErrOutnumbered     = errors.New("pushing line does not outnumber the pushed line")
	ErrPushBlocked     = errors.New("cell beyond the pushed marbles is occupied")
	ErrDestinationFull = errors.New("destination cell is occupied or off the board")
)
