// Command tern-demo runs small example apps on the tern core.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tern-ui/tern"
	"github.com/tern-ui/tern/state"
)

var (
	flagFPS   int
	flagMouse bool
	flagLog   string
)

func main() {
	root := &cobra.Command{
		Use:   "tern-demo",
		Short: "Example apps built on the tern reactive TUI core",
	}

	root.PersistentFlags().IntVar(&flagFPS, "fps", 60, "target frames per second")
	root.PersistentFlags().BoolVar(&flagMouse, "mouse", false, "enable mouse capture")
	root.PersistentFlags().StringVar(&flagLog, "log", "", "write debug logs to this file")

	root.AddCommand(&cobra.Command{
		Use:   "counter",
		Short: "A keyboard-driven counter",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(newCounter())
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "clock",
		Short: "An animated frame clock",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(newClock())
		},
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runApp(root tern.Component) error {
	opts := []tern.AppOption{
		tern.WithTickRate(time.Second / time.Duration(flagFPS)),
	}
	if flagMouse {
		opts = append(opts, tern.WithMouse())
	}
	if flagLog != "" {
		cfg := zap.NewDevelopmentConfig()
		cfg.OutputPaths = []string{flagLog}
		logger, err := cfg.Build()
		if err != nil {
			return err
		}
		defer logger.Sync()
		opts = append(opts, tern.WithLogger(logger))
	}

	app := tern.NewApp(root, opts...)
	defer app.Close()
	return app.Run()
}

// counter increments on +/up and decrements on -/down.
type counter struct {
	tern.BaseComponent
	count *state.Signal[int]
}

func newCounter() *counter {
	return &counter{count: state.NewSignal(0)}
}

func (c *counter) Render(ctx *tern.RenderContext) tern.ViewNode {
	title := tern.TextStyled("tern counter", tern.NewStyle().WithFg(tern.Cyan).WithMods(tern.ModBold))
	value := tern.TextStyled(fmt.Sprintf("count: %d", c.count.Get()), tern.NewStyle().WithFg(tern.White))
	help := tern.TextStyled("+ / - to change, q to quit", tern.NewStyle().WithFg(tern.Gray).WithMods(tern.ModDim))
	return tern.VBox(title, value, help)
}

func (c *counter) HandleEvent(ev tern.Event, _ *tern.EventContext) tern.EventResult {
	key, ok := ev.(tern.KeyEvent)
	if !ok {
		return tern.Ignored
	}

	switch {
	case key.Code == tern.KeyUp, key.Ch == '+':
		c.count.Update(func(v *int) { *v++ })
		return tern.Handled
	case key.Code == tern.KeyDown, key.Ch == '-':
		c.count.Update(func(v *int) { *v-- })
		return tern.Handled
	}
	return tern.Ignored
}

// clock shows elapsed session time, refreshed by the frame loop.
type clock struct {
	tern.BaseComponent
	started time.Time
}

func newClock() *clock {
	return &clock{started: time.Now()}
}

func (c *clock) Render(ctx *tern.RenderContext) tern.ViewNode {
	elapsed := time.Since(c.started).Truncate(100 * time.Millisecond)
	return tern.VBox(
		tern.TextStyled("tern clock", tern.NewStyle().WithFg(tern.Yellow).WithMods(tern.ModBold)),
		tern.Text(elapsed.String()),
		tern.TextStyled("q to quit", tern.NewStyle().WithMods(tern.ModDim)),
	)
}
