package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/jsamuelsen11/cakeshop/internal/adapters/http/dto"
	"github.com/jsamuelsen11/cakeshop/internal/components/quantity"
	"github.com/jsamuelsen11/cakeshop/internal/domain/cake"
)

func stateCmd(s *session) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "state",
		Short: "Print the current number of cakes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := s.client.GetState(cmd.Context())
			if err != nil {
				return err
			}
			return printState(cmd.OutOrStdout(), state, s.locale, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the state as JSON")
	return cmd
}

// printState writes state the way the quantity display shows it, or as the
// API's JSON body.
func printState(w io.Writer, state cake.State, locale language.Tag, asJSON bool) error {
	if asJSON {
		return json.NewEncoder(w).Encode(dto.ToStateResponse(state))
	}
	text := quantity.Text(quantity.MergeProps(quantity.MapStateToProps(state), quantity.Handlers{}, quantity.Props{Locale: locale}))
	_, err := fmt.Fprintln(w, text)
	return err
}
