package cake

// Reduce computes the next state for an action. It is pure: the input state
// is a value and is never modified. Unknown actions leave the state as is.
// The result always satisfies 0 <= Quantity <= MaxQuantity, even for actions
// that were never validated.
func Reduce(s State, a Action) State {
	switch a.Type {
	case TypeIncrementQuantity:
		s.Quantity = addQuantity(s.Quantity, a.Delta())
	case TypeReset:
		s.Quantity = 0
	}
	return s
}

// addQuantity adds delta to q, clamping to [0, MaxQuantity].
func addQuantity(q, delta int) int {
	q = max(q, 0)
	switch {
	case delta > MaxQuantity-q:
		return MaxQuantity
	case delta < -q:
		return 0
	default:
		return q + delta
	}
}
