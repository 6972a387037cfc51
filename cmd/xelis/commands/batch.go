package commands

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	xelis "github.com/opd-ai/go-xelis"
)

// batch [inputs...]: hash many inputs in order. With no arguments,
// inputs are read one per line from stdin.
func batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [inputs...]",
		Short: "Hash many inputs in order, aborting on the first failure",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := collectBatchItems(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			slog.Debug("batch hashing", "items", len(items))

			digests, err := hasher.BatchHash(items)
			if err != nil {
				return err
			}

			for _, digest := range digests {
				fmt.Println(digest.Hex())
			}
			return nil
		},
	}
	return cmd
}

// collectBatchItems marshals command arguments (or stdin lines) into
// the byte buffers BatchHash expects. Any entry that cannot be
// converted aborts collection before hashing starts.
func collectBatchItems(args []string, stdin io.Reader) ([][]byte, error) {
	if len(args) > 0 {
		items := make([][]byte, 0, len(args))
		for _, arg := range args {
			data, err := readInput(arg)
			if err != nil {
				return nil, err
			}
			items = append(items, data)
		}
		return items, nil
	}

	var items [][]byte
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		data, err := readInput(scanner.Text())
		if err != nil {
			return nil, err
		}
		items = append(items, data)
	}
	if err := scanner.Err(); err != nil {
		return nil, &xelis.ConversionError{Reason: "reading batch input: " + err.Error()}
	}
	return items, nil
}
