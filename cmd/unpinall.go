package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pinwin/pinwin/internal/model"
	"github.com/pinwin/pinwin/internal/output"
	"github.com/pinwin/pinwin/internal/pin"
	"github.com/pinwin/pinwin/internal/platform"
)

// UnpinAllResult is the output of `unpin-all`.
type UnpinAllResult struct {
	Count   int            `yaml:"count"             json:"count"`
	Windows []model.Window `yaml:"windows,omitempty" json:"windows,omitempty"`
}

var unpinAllCmd = &cobra.Command{
	Use:   "unpin-all",
	Short: "Clear the topmost attribute on every listed window",
	Long: `Clear the topmost attribute on every visible titled window that
currently carries it, regardless of who pinned it.`,
	RunE: runUnpinAll,
}

func init() {
	rootCmd.AddCommand(unpinAllCmd)
	unpinAllCmd.Flags().Bool("pretty", false, "Pretty-print output (no-op for YAML)")
}

func runUnpinAll(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	var result UnpinAllResult
	for _, w := range pin.ListWindows(provider.Reader) {
		if !provider.Reader.IsTopmost(w.Handle) {
			continue
		}
		if err := provider.ZOrderer.SetTopmost(w.Handle, false); err != nil {
			continue // stale handle, nothing to unpin anymore
		}
		result.Count++
		result.Windows = append(result.Windows, w)
	}

	return output.Print(result)
}
