// Package cake holds the shop's application state, the actions that describe
// its transitions, and the reducer that applies them.
package cake

import "math"

// MaxQuantity is the largest count State can hold. Increments past it
// saturate.
const MaxQuantity = math.MaxInt

// State is the application state snapshot owned by the store.
// Quantity is the number of cakes and is never negative.
type State struct {
	Quantity int `json:"quantity"`
}

// Initial returns the state the store starts from when none is configured.
func Initial() State {
	return State{}
}
