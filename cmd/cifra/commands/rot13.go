package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cifra/internal/cipher"
)

// rot13: the classic self-inverse shift, as a direct command.
func rot13Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rot13 [text]",
		Short: "Apply the self-inverse rot13 cipher",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			fmt.Println(cipher.NewRot13(appCtx.Alphabet).Encipher(text))
			return nil
		},
	}
}
