package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/jsamuelsen11/cakeshop/internal/adapters/http/dto"
	"github.com/jsamuelsen11/cakeshop/internal/domain/cake"
)

func TestToStateResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToStateResponse(cake.State{Quantity: 3})
	if got.Quantity != 3 {
		t.Errorf("Quantity = %d, want 3", got.Quantity)
	}
	if back := got.ToState(); back != (cake.State{Quantity: 3}) {
		t.Errorf("ToState() = %+v, want {Quantity: 3}", back)
	}
}

func TestStateResponse_JSONShape(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(dto.ToStateResponse(cake.State{}))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if got, want := string(b), `{"quantity":0}`; got != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}
