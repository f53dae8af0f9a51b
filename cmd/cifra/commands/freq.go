package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"cifra/internal/analysis"
	"cifra/internal/domain"
	"cifra/internal/freq"
)

// freq: count how often each character occurs in text.
func freqCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "freq [text]",
		Short: "Count character frequencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}

			var table domain.FrequencyTable
			if lettersOnly {
				table, _ = analysis.LetterCounts(text, appCtx.Alphabet)
			} else {
				table = freq.Count(text)
			}
			sorted := table.Sorted()

			if asJSON {
				type entry struct {
					Char  string `json:"char"`
					Count int    `json:"count"`
				}
				out := make([]entry, 0, len(sorted))
				for _, f := range sorted {
					out = append(out, entry{Char: string(f.Rune), Count: f.Count})
				}
				b, err := json.MarshalIndent(out, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(b))
				return nil
			}

			for _, f := range sorted {
				fmt.Printf("%q %d\n", f.Rune, f.Count)
			}
			fmt.Printf("%d characters, %d distinct\n", table.Total(), table.Distinct())
			return nil
		},
	}
	cmd.Flags().BoolVar(&lettersOnly, "letters", false, "count alphabet letters only, folding case")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON")
	return cmd
}
