package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cifra/internal/alphabet"
)

// alphabet: print the base alphabet or a variant derived from the flags.
func alphabetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alphabet",
		Short: "Print the working alphabet or a derived variant",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appCtx.Alphabet

			switch {
			case keyword != "":
				mixed, err := alphabet.Keyword(a, keyword)
				if err != nil {
					return err
				}
				a = mixed
			case passphrase != "":
				mixed, err := alphabet.Derived(a, passphrase)
				if err != nil {
					return err
				}
				a = mixed
			case reversed:
				a = a.Reversed()
			case cmd.Flags().Changed("shift"):
				a = a.RotatedBy(shift)
			}

			fmt.Println(a)
			return nil
		},
	}
	cmd.Flags().StringVar(&keyword, "keyword", "", "mix the alphabet with a keyword")
	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "derive a shuffled alphabet from a passphrase")
	cmd.Flags().BoolVar(&reversed, "reversed", false, "print the alphabet back to front")
	cmd.Flags().IntVar(&shift, "shift", 0, "rotate the alphabet by this many positions")
	cmd.MarkFlagsMutuallyExclusive("keyword", "passphrase", "reversed", "shift")
	return cmd
}
