package commands

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"cifra/internal/app"
)

var (
	profilePath string
	appCtx      *app.App

	cipherName string
	shift      int
	key        string
	keyword    string
	passphrase string
	reversed   bool

	lettersOnly bool
	asJSON      bool
	topN        int
	byGrapheme  bool
)

func Execute() error {
	root := &cobra.Command{
		Use:   "cifra",
		Short: "Classical cipher toolkit",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			appCtx = app.New(app.Config{ProfilePath: profilePath})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&profilePath, "profile", "", "letter-frequency profile file (default: embedded English)")

	root.AddCommand(alphabetCmd(), encodeCmd(), decodeCmd(), rot13Cmd(), freqCmd(), crackCmd(), inspectCmd())
	return root.Execute()
}

// readText returns the arguments joined with spaces, or standard input when
// no arguments were given. A single trailing newline is dropped so piped
// text round-trips cleanly.
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(b), "\n"), nil
}
