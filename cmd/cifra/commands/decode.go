package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// decode: decipher text from the arguments or standard input.
func decodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [text]",
		Short: "Decipher text with the selected cipher",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildCipher()
			if err != nil {
				return err
			}
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			fmt.Println(c.Decipher(text))
			return nil
		},
	}
	cipherFlags(cmd)
	return cmd
}
