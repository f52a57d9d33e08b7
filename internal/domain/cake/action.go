package cake

import (
	"strconv"

	"github.com/jsamuelsen11/cakeshop/internal/domain"
)

// MaxPayload bounds how many cakes a single increment may add.
const MaxPayload = 1_000_000

// Action types understood by Reduce.
const (
	TypeIncrementQuantity = "INCREMENT_QUANTITY"
	TypeReset             = "RESET"
)

// Action describes something that happened. Values are comparable and
// immutable; building one never touches the store.
type Action struct {
	Type    string `json:"type"`
	Payload int    `json:"payload,omitempty"`
}

// IncrementQuantity is the action dispatched when a cake is bought.
func IncrementQuantity() Action {
	return Action{Type: TypeIncrementQuantity}
}

// IncrementQuantityBy adds n cakes in a single transition.
func IncrementQuantityBy(n int) Action {
	return Action{Type: TypeIncrementQuantity, Payload: n}
}

// Reset returns the quantity to zero.
func Reset() Action {
	return Action{Type: TypeReset}
}

// Delta reports how many cakes an increment action adds. A zero payload
// means a single cake.
func (a Action) Delta() int {
	if a.Payload == 0 {
		return 1
	}
	return a.Payload
}

// ActionType returns the type tag. It lets the store's observability
// middleware label actions without knowing this package.
func (a Action) ActionType() string {
	return a.Type
}

// String returns a short description for logs, e.g. "INCREMENT_QUANTITY(3)".
func (a Action) String() string {
	if a.Payload == 0 {
		return a.Type
	}
	return a.Type + "(" + strconv.Itoa(a.Payload) + ")"
}

// Validate checks that the action is one Reduce understands.
// Returns a *domain.ValidationError with per-field details, or nil.
func (a Action) Validate() error {
	verr := &domain.ValidationError{}

	switch a.Type {
	case TypeIncrementQuantity:
		switch {
		case a.Payload < 0:
			verr.Add("payload", "must not be negative")
		case a.Payload > MaxPayload:
			verr.Add("payload", "must not exceed "+strconv.Itoa(MaxPayload))
		}
	case TypeReset:
		if a.Payload != 0 {
			verr.Add("payload", "must be empty for "+TypeReset)
		}
	case "":
		verr.Add("type", "is required")
	default:
		verr.Add("type", "unknown action type "+strconv.Quote(a.Type))
	}

	return verr.Err()
}
