package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pinwin/pinwin/internal/output"
	"github.com/pinwin/pinwin/internal/pin"
	"github.com/pinwin/pinwin/internal/platform"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List pinnable top-level windows",
	Long:  "List the visible, titled top-level windows with their handle, title, and pinned state.",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().String("sort", "title", "Display order: title, os")
	listCmd.Flags().Bool("pinned", false, "Only show windows that are currently topmost")
	listCmd.Flags().Bool("pretty", false, "Pretty-print output (no-op for YAML)")
}

func runList(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	sortFlag, _ := cmd.Flags().GetString("sort")
	pinnedOnly, _ := cmd.Flags().GetBool("pinned")

	sortMode, err := platform.ParseSortMode(sortFlag)
	if err != nil {
		return err
	}

	wins := pin.ListWindows(provider.Reader)
	for i := range wins {
		wins[i].Pinned = provider.Reader.IsTopmost(wins[i].Handle)
	}
	if pinnedOnly {
		filtered := wins[:0]
		for _, w := range wins {
			if w.Pinned {
				filtered = append(filtered, w)
			}
		}
		wins = filtered
	}
	pin.SortWindows(wins, sortMode)

	return output.Print(wins)
}
