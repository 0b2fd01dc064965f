package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pinwin/pinwin/internal/output"
	"github.com/pinwin/pinwin/internal/pin"
	"github.com/pinwin/pinwin/internal/platform"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Toggle a window's always-on-top state",
	Long: `Toggle the topmost attribute of a window, by handle or for the
currently focused window. The reported state is the requested one; a
handle that went stale toggles as a harmless no-op.`,
	RunE: runToggle,
}

func init() {
	rootCmd.AddCommand(toggleCmd)
	toggleCmd.Flags().String("hwnd", "", "Window handle (decimal or 0x hex)")
	toggleCmd.Flags().Bool("foreground", false, "Toggle the currently focused window")
	toggleCmd.Flags().Bool("pretty", false, "Pretty-print output (no-op for YAML)")
}

func runToggle(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	hwndFlag, _ := cmd.Flags().GetString("hwnd")
	foreground, _ := cmd.Flags().GetBool("foreground")

	if hwndFlag == "" && !foreground {
		return fmt.Errorf("specify --hwnd or --foreground")
	}
	if hwndFlag != "" && foreground {
		return fmt.Errorf("--hwnd and --foreground are mutually exclusive")
	}

	ctrl := pin.NewController(provider.Reader, provider.ZOrderer)

	if foreground {
		res, ok := ctrl.ToggleForeground()
		if !ok {
			return fmt.Errorf("no focused window")
		}
		return output.Print(res)
	}

	h, err := platform.ParseHandle(hwndFlag)
	if err != nil {
		return err
	}
	return output.Print(ctrl.Toggle(h))
}
