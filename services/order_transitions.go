package services

import (
	"github.com/skawashin1122/bento-ordering-system/entity"
)

// transitions is the forward-only lifecycle. Terminal states have no
// outgoing edges; cancelled is reachable from every non-terminal state.
var transitions = map[string][]string{
	entity.StatusPending:   {entity.StatusPreparing, entity.StatusCancelled},
	entity.StatusPreparing: {entity.StatusReady, entity.StatusCancelled},
	entity.StatusReady:     {entity.StatusDelivered, entity.StatusCancelled},
	entity.StatusDelivered: {},
	entity.StatusCancelled: {},
}

func ValidTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
