// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import "github.com/jsamuelsen11/cakeshop/internal/domain/cake"

// StateResponse represents the store state in HTTP responses.
type StateResponse struct {
	Quantity int `json:"quantity"`
}

// ToStateResponse converts a store snapshot to an HTTP response DTO.
func ToStateResponse(s cake.State) StateResponse {
	return StateResponse{Quantity: s.Quantity}
}

// ToState converts a response DTO back to a store snapshot. Used by clients
// of the JSON API.
func (r StateResponse) ToState() cake.State {
	return cake.State{Quantity: r.Quantity}
}
