package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"aplusb/internal/crypto"
)

func fingerprintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print a fingerprint of the bytes in output.txt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := appCtx.Results.LoadRaw()
			if err != nil {
				return err
			}
			fp := crypto.Fingerprint(raw)
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", fp)
			return nil
		},
	}
	return cmd
}
