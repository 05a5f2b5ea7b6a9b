package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/tween"
)

var replayCmd = &cobra.Command{
	Use:   "replay <script>",
	Short: "Replay a control script against three sample tweens",
	Long: `Replay loads a YAML or JSON script and runs it against three float tweens
named a, b and c (0 to 100 over 2 seconds, c loops as a yoyo). The final
value and state of each tween is printed.

Example script:
  steps:
    - action: advance
      dt: 0.5
    - action: pause
      tween: a`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		script, err := tween.LoadScript(data)
		if err != nil {
			return err
		}

		sched := tween.NewManualScheduler()
		reg := tween.NewRegistry(
			tween.WithScheduler(sched),
			tween.WithConfig(cfg),
			tween.WithLogger(log),
		)
		defer reg.Close()

		names := []string{"a", "b", "c"}
		values := map[string]*float64{}
		handles := map[string]tween.Handle{}
		for _, name := range names {
			v := new(float64)
			values[name] = v
			b := tween.Float(reg, 0, 100, 2)
			if name == "c" {
				b = b.WithLoops(0, tween.LoopYoyo, true)
			}
			handles[name] = b.BindWithState(v, func(x float64, s any) { *s.(*float64) = x })
		}

		if err := script.Run(reg, sched, handles); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "time: %.3fs\n", sched.Now().Scaled)
		for _, name := range names {
			state := "finished"
			if c, err := reg.CoreRef(handles[name]); err == nil {
				state = c.State.String()
			}
			fmt.Fprintf(out, "%s: %8.3f %s\n", name, *values[name], state)
		}
		return nil
	},
}
