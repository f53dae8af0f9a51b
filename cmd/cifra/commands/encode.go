package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cifra/internal/cipher"
	"cifra/internal/domain"
)

// encode: encipher text from the arguments or standard input.
func encodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [text]",
		Short: "Encipher text with the selected cipher",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildCipher()
			if err != nil {
				return err
			}
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			fmt.Println(c.Encipher(text))
			return nil
		},
	}
	cipherFlags(cmd)
	return cmd
}

// cipherFlags registers the cipher selection flags shared by encode and decode.
func cipherFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&cipherName, "cipher", string(cipher.NameCaesar), "cipher to use: caesar, rot13, atbash, keyword, keyed, vigenere")
	cmd.Flags().IntVar(&shift, "shift", 3, "caesar shift")
	cmd.Flags().StringVar(&key, "key", "", "vigenère key word")
	cmd.Flags().StringVar(&keyword, "keyword", "", "keyword for the mixed alphabet")
	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase for the keyed alphabet")
}

// buildCipher constructs the cipher the flags select.
func buildCipher() (domain.Cipher, error) {
	a := appCtx.Alphabet
	switch domain.CipherName(cipherName) {
	case cipher.NameCaesar:
		return cipher.NewCaesar(a, shift), nil
	case cipher.NameRot13:
		return cipher.NewRot13(a), nil
	case cipher.NameAtbash:
		return cipher.NewAtbash(a), nil
	case cipher.NameKeyword:
		if keyword == "" {
			return nil, fmt.Errorf("keyword required (--keyword)")
		}
		return cipher.NewKeyword(a, keyword)
	case cipher.NameKeyed:
		if passphrase == "" {
			return nil, fmt.Errorf("passphrase required (-p)")
		}
		return cipher.NewKeyed(a, passphrase)
	case cipher.NameVigenere:
		if key == "" {
			return nil, fmt.Errorf("key required (--key)")
		}
		return cipher.NewVigenere(a, key)
	default:
		return nil, fmt.Errorf("unknown cipher %q", cipherName)
	}
}
