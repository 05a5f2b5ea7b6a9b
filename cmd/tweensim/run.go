package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/phanxgames/tween"
)

var (
	runTweens int
	runTicks  int
	runDt     float64
	runEase   string
	runLoops  int32
	runYoyo   bool
	runDelay  float32
	runDur    float32
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate float tweens and print statistics",
	Long: `Run creates --tweens float tweens with the given easing and loop settings,
advances a manual scheduler --ticks times by --dt seconds and prints how many
tweens completed along with the collected metrics.

Example:
  tweensim run --tweens 10000 --ticks 600 --ease OutBounce --loops 2 --yoyo`,
	RunE: func(cmd *cobra.Command, args []string) error {
		easeName := runEase
		if easeName == "" {
			easeName = cfg.DefaultEase
		}
		if _, err := tween.EaseByName(easeName); err != nil {
			return err
		}

		promReg := prometheus.NewRegistry()
		metrics, err := tween.NewMetrics(cfg.MetricsNamespace, promReg)
		if err != nil {
			return fmt.Errorf("register metrics: %w", err)
		}

		sched := tween.NewManualScheduler()
		reg := tween.NewRegistry(
			tween.WithScheduler(sched),
			tween.WithConfig(cfg),
			tween.WithLogger(log),
			tween.WithMetrics(metrics),
		)
		defer reg.Close()
		tween.EnsureCapacity[float64, tween.NoOptions, tween.FloatAdapter](reg, sched, runTweens)

		loopType := tween.LoopRestart
		if runYoyo {
			loopType = tween.LoopYoyo
		}
		values := make([]float64, runTweens)
		completed := 0
		for i := range values {
			tween.Float(reg, 0, float64(i+1), runDur).
				WithEaseName(easeName).
				WithLoops(runLoops, loopType, true).
				WithDelay(runDelay, tween.DelayFirstLoop, tween.DelayAffectOnDuration).
				OnComplete(func() { completed++ }).
				BindWithState(&values[i], func(v float64, s any) { *s.(*float64) = v })
		}

		start := time.Now()
		for range runTicks {
			sched.Advance(runDt)
		}
		elapsed := time.Since(start)

		log.Info().
			Int("tweens", runTweens).
			Int("ticks", runTicks).
			Int("completed", completed).
			Int("active", reg.Len()).
			Dur("elapsed", elapsed).
			Msg("simulation finished")

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "tweens:    %d\n", runTweens)
		fmt.Fprintf(out, "ticks:     %d (%.3fs simulated)\n", runTicks, float64(runTicks)*runDt)
		fmt.Fprintf(out, "completed: %d\n", completed)
		fmt.Fprintf(out, "active:    %d\n", reg.Len())
		if runTicks > 0 {
			fmt.Fprintf(out, "per tick:  %v\n", elapsed/time.Duration(runTicks))
		}
		return printMetrics(cmd, promReg)
	},
}

func init() {
	runCmd.Flags().IntVar(&runTweens, "tweens", 1000, "number of tweens")
	runCmd.Flags().IntVar(&runTicks, "ticks", 120, "number of ticks to simulate")
	runCmd.Flags().Float64Var(&runDt, "dt", 1.0/60, "seconds per tick")
	runCmd.Flags().StringVar(&runEase, "ease", "", "easing name (default from config)")
	runCmd.Flags().Int32Var(&runLoops, "loops", 1, "loop count, 0 loops forever")
	runCmd.Flags().BoolVar(&runYoyo, "yoyo", false, "play odd loops backwards")
	runCmd.Flags().Float32Var(&runDelay, "delay", 0, "start delay in seconds")
	runCmd.Flags().Float32Var(&runDur, "duration", 1, "duration of one loop in seconds")
}

// printMetrics writes every gathered sample as "name{labels} value".
func printMetrics(cmd *cobra.Command, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := ""
			for _, lp := range m.GetLabel() {
				labels += fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue())
			}
			var v float64
			switch {
			case m.GetCounter() != nil:
				v = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				v = m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				v = float64(m.GetHistogram().GetSampleCount())
			}
			lines = append(lines, fmt.Sprintf("%s{%s} %g", mf.GetName(), labels, v))
		}
	}
	sort.Strings(lines)
	out := cmd.OutOrStdout()
	for _, l := range lines {
		fmt.Fprintln(out, l)
	}
	return nil
}
