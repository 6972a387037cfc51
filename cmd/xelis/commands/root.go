package commands

import (
	"log/slog"
	"os"
	"sync"

	"github.com/spf13/cobra"

	xelis "github.com/opd-ai/go-xelis"
)

var (
	verbose  bool
	asJSON   bool
	inputHex bool

	hasher *xelis.Hasher

	logOnce sync.Once
)

// Execute builds the command tree and runs it.
func Execute() error {
	root := &cobra.Command{
		Use:   "xelis",
		Short: "XELIS memory-hard hashing tool",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initDiagnostics()
			hasher = xelis.New()
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&asJSON, "json", false, "emit structured JSON output")
	root.PersistentFlags().BoolVar(&inputHex, "hex", false, "treat input arguments as hex-encoded bytes")

	root.AddCommand(hashCmd(), chainCmd(), batchCmd(), encodeCmd(), decodeCmd(), verifyCmd(), sizeCmd())
	return root.Execute()
}

// initDiagnostics installs the process-wide logger. It is idempotent:
// repeated calls (for example from tests driving Execute more than
// once) keep the first configuration.
func initDiagnostics() {
	logOnce.Do(func() {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		slog.SetDefault(slog.New(handler))
	})
}

// readInput resolves a single input argument to raw bytes, honoring the
// --hex flag. A malformed hex argument is a boundary marshalling
// problem, reported as a *xelis.ConversionError.
func readInput(arg string) ([]byte, error) {
	if !inputHex {
		return []byte(arg), nil
	}
	data, err := xelis.HexToBytes(arg)
	if err != nil {
		return nil, &xelis.ConversionError{Reason: "input is not valid hex: " + arg}
	}
	return data, nil
}
