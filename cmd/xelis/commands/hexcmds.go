package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	xelis "github.com/opd-ai/go-xelis"
)

// encode <input>: print the lowercase hex encoding of the input bytes.
func encodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <input>",
		Short: "Encode bytes as lowercase hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(xelis.BytesToHex([]byte(args[0])))
			return nil
		},
	}
	return cmd
}

// decode <hex>: print the decoded bytes as a raw string.
func decodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode a hex string to bytes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := xelis.HexToBytes(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", data)
			return nil
		},
	}
	return cmd
}

// verify <hexA> <hexB>: compare two hex-encoded hashes.
func verifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <hexA> <hexB>",
		Short: "Compare two hex-encoded hashes by decoded value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			equal, err := xelis.VerifyHash(args[0], args[1])
			if err != nil {
				return err
			}
			if !equal {
				fmt.Println("mismatch")
				return fmt.Errorf("hashes differ")
			}
			fmt.Println("match")
			return nil
		},
	}
	return cmd
}

// size: print the digest size.
func sizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "size",
		Short: "Print the digest size in bytes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(xelis.HashSize)
			return nil
		},
	}
	return cmd
}
