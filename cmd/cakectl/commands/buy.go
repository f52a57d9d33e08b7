package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/cakeshop/internal/domain/cake"
)

// buy clicks the button count times. Each click is its own dispatch, so the
// server sees the same action sequence the page would send.
func buyCmd(s *session) *cobra.Command {
	var (
		count  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "buy",
		Short: "Buy cakes, one INCREMENT_QUANTITY dispatch per cake",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return errors.New("--count must be at least 1")
			}

			var state cake.State
			for i := range count {
				var err error
				state, err = s.client.Dispatch(cmd.Context(), cake.IncrementQuantity())
				if err != nil {
					return fmt.Errorf("buying cake %d of %d: %w", i+1, count, err)
				}
				s.logger.DebugContext(cmd.Context(), "cake bought", slog.Int("quantity", state.Quantity))
			}
			return printState(cmd.OutOrStdout(), state, s.locale, asJSON)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of cakes to buy")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the final state as JSON")
	return cmd
}
