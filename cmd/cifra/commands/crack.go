package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// crack: recover a caesar shift by letter-frequency analysis.
func crackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crack [text]",
		Short: "Rank caesar shifts by letter-frequency fit",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			candidates, err := appCtx.Analysis.CrackCaesar(text)
			if err != nil {
				return err
			}
			if topN > 0 && topN < len(candidates) {
				candidates = candidates[:topN]
			}

			if asJSON {
				b, err := json.MarshalIndent(candidates, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(b))
				return nil
			}

			for _, c := range candidates {
				fmt.Printf("shift %2d  score %8.2f  %s\n", c.Shift, c.Score, c.Plaintext)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&topN, "top", 5, "number of candidates to show (0 shows all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON")
	return cmd
}
