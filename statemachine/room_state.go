package statemachine

import (
	"errors"

	"party-room-api/models"
)

// Transition defines a valid room lifecycle state change
type Transition struct {
	From models.RoomStatus
	To   models.RoomStatus
}

// validTransitions is the authoritative lifecycle definition. Activation is
// one-way: an active room never goes back to pending.
var validTransitions = []Transition{
	{From: models.RoomPending, To: models.RoomActive},
}

type transitionKey struct {
	From models.RoomStatus
	To   models.RoomStatus
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.RoomStatus) []models.RoomStatus {
	var nexts []models.RoomStatus
	for _, t := range validTransitions {
		if t.From == status {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}

// CanTransition checks whether a room may move from one state to another
func CanTransition(from, to models.RoomStatus) error {
	if transitionMap[transitionKey{From: from, To: to}] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
			" is not allowed. Valid transitions from " + string(from) +
			" are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.RoomStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}
