package commands

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"cifra/internal/runes"
)

// inspect: show how text breaks into characters or grapheme clusters.
func inspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [text]",
		Short: "List the characters of text with their code points",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}

			if byGrapheme {
				clusters := runes.Graphemes(text)
				for i, g := range clusters {
					fmt.Printf("%3d  %q  %s  (%d bytes)\n", i, g, codePoints(g), len(g))
				}
				fmt.Printf("%d bytes, %d characters, %d clusters\n", len(text), runes.Count(text), len(clusters))
				return nil
			}

			for i, r := range runes.Split(text) {
				fmt.Printf("%3d  %q  U+%04X  (%d bytes)\n", i, r, r, utf8.RuneLen(r))
			}
			fmt.Printf("%d bytes, %d characters\n", len(text), runes.Count(text))
			return nil
		},
	}
	cmd.Flags().BoolVar(&byGrapheme, "graphemes", false, "group by grapheme cluster instead of character")
	return cmd
}

// codePoints renders the scalar characters of s in U+XXXX notation.
func codePoints(s string) string {
	parts := make([]string, 0, runes.Count(s))
	for r := range runes.All(s) {
		parts = append(parts, fmt.Sprintf("U+%04X", r))
	}
	return strings.Join(parts, " ")
}
