package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"uf2status/app"
	"uf2status/ui/status"
)

func newStatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "states",
		Short: "List bootloader states, their window keys and LED colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := status.DefaultColors()
			out := cmd.OutOrStdout()
			for i, st := range status.States() {
				fmt.Fprintf(out, "%d  %-10s %-9s %s\n", i+1, st, app.LayoutFor(st), ledDescription(st, c))
			}
			return nil
		},
	}
}

func ledDescription(st status.State, c status.Colors) string {
	switch st {
	case status.StateBootloaderStarted, status.StateUSBUnmounted:
		return c.Unmounted.String()
	case status.StateUSBMounted:
		return c.Mounted.String()
	case status.StateWritingStarted:
		return "blink " + c.Writing.String()
	case status.StateWritingFinished:
		return c.Writing.String()
	default:
		return c.Unknown.String()
	}
}
