package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pinwin/pinwin/internal/output"
	"github.com/pinwin/pinwin/internal/platform"
)

// PinnedResult is the output of `pinned` for a single handle.
type PinnedResult struct {
	Handle uint64 `yaml:"hwnd"   json:"hwnd"`
	Pinned bool   `yaml:"pinned" json:"pinned"`
}

var pinnedCmd = &cobra.Command{
	Use:   "pinned",
	Short: "Query whether a window is pinned",
	Long:  "Report the current topmost state of a window, straight from the OS attribute.",
	RunE:  runPinned,
}

func init() {
	rootCmd.AddCommand(pinnedCmd)
	pinnedCmd.Flags().String("hwnd", "", "Window handle (decimal or 0x hex)")
	pinnedCmd.Flags().Bool("pretty", false, "Pretty-print output (no-op for YAML)")
	pinnedCmd.MarkFlagRequired("hwnd")
}

func runPinned(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	hwndFlag, _ := cmd.Flags().GetString("hwnd")
	h, err := platform.ParseHandle(hwndFlag)
	if err != nil {
		return err
	}

	return output.Print(PinnedResult{
		Handle: uint64(h),
		Pinned: provider.Reader.IsTopmost(h),
	})
}
