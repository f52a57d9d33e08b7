package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/cakeshop/internal/domain/cake"
)

func dispatchCmd(s *session) *cobra.Command {
	var (
		payload int
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "dispatch <type>",
		Short: "Dispatch a raw action (e.g. INCREMENT_QUANTITY or RESET)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			action := cake.Action{
				Type:    strings.ToUpper(strings.TrimSpace(args[0])),
				Payload: payload,
			}
			state, err := s.client.Dispatch(cmd.Context(), action)
			if err != nil {
				return err
			}
			return printState(cmd.OutOrStdout(), state, s.locale, asJSON)
		},
	}
	cmd.Flags().IntVar(&payload, "payload", 0, "action payload")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the resulting state as JSON")
	return cmd
}
