package cli

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"uf2status/app"
	"uf2status/hal"
	"uf2status/internal/logging"
	"uf2status/ui/screen"
)

func newRenderCmd(g *globalOptions) *cobra.Command {
	var (
		layoutName string
		out        string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Compose a layout and write it as PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			layout, err := screen.ParseLayout(layoutName)
			if err != nil {
				return err
			}
			b, err := g.loadBoard(cmd.Flags(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if b.Display.None {
				return fmt.Errorf("board %q has no display", b.Name)
			}
			cfg, err := b.AppConfig()
			if err != nil {
				return err
			}

			hc := b.HostConfig()
			hc.Logger = logging.NewHALLogger(logging.GetLogger("device"))
			h := hal.NewWithConfig(hc)
			sys, err := app.New(h, cfg)
			if err != nil {
				return err
			}
			defer sys.Close()

			// Icon errors still leave a complete, flushed screen.
			if err := sys.Screen().Draw(layout); err != nil {
				logging.GetLogger("render").Warn("Layout drawn with errors", "layout", layout, "error", err)
			}
			img, ok := hal.Snapshot(h)
			if !ok {
				return fmt.Errorf("no display snapshot")
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := png.Encode(f, img); err != nil {
				f.Close()
				return fmt.Errorf("encode %s: %w", out, err)
			}
			if err := f.Close(); err != nil {
				return err
			}
			logging.GetLogger("render").Info("Wrote layout", "layout", layout, "path", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&layoutName, "layout", "l", "drag", "Layout to render (drag, flashing)")
	cmd.Flags().StringVarP(&out, "out", "o", "out.png", "Output PNG path")
	return cmd
}
