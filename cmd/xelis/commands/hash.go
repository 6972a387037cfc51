package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	xelis "github.com/opd-ai/go-xelis"
)

// hash <input>: hash one input and print the digest.
func hashCmd() *cobra.Command {
	var withMetadata bool

	cmd := &cobra.Command{
		Use:   "hash <input>",
		Short: "Hash input and print the digest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args[0])
			if err != nil {
				return err
			}

			slog.Debug("hashing input", "bytes", len(data))

			if asJSON {
				return printHashJSON(data, withMetadata)
			}

			digest, err := hasher.HashHex(data)
			if err != nil {
				return err
			}
			fmt.Println(digest)
			return nil
		},
	}

	cmd.Flags().BoolVar(&withMetadata, "metadata", false, "include input length in JSON output")
	return cmd
}

func printHashJSON(data []byte, withMetadata bool) error {
	var record interface{}

	if withMetadata {
		result, err := hasher.HashWithMetadata(data)
		if err != nil {
			return err
		}
		record = result
	} else {
		result, err := hasher.HashDetailed(data)
		if err != nil {
			return err
		}
		record = result
	}

	enc := json.NewEncoder(os.Stdout)
	return enc.Encode(record)
}

// chain <input> <iterations>: iterated hashing.
func chainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chain <input> <iterations>",
		Short: "Hash input repeatedly, feeding each digest back in",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args[0])
			if err != nil {
				return err
			}

			var iterations uint32
			if _, err := fmt.Sscanf(args[1], "%d", &iterations); err != nil {
				return fmt.Errorf("invalid iteration count %q: %w", args[1], err)
			}

			result, err := hasher.HashMultiple(data, iterations)
			if err != nil {
				return err
			}
			fmt.Println(xelis.BytesToHex(result))
			return nil
		},
	}
	return cmd
}
