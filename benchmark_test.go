package tween

import "testing"

// setupBenchTweens creates a registry with n running float tweens that loop
// forever, so every Advance touches all of them.
func setupBenchTweens(n int) (*Registry, *ManualScheduler, *[]float64) {
	sched := NewManualScheduler()
	reg := NewRegistry(WithScheduler(sched))
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		Float(reg, 0, float64(i), 1).
			WithLoops(0, LoopYoyo, true).
			WithEaseName("InOutQuad").
			BindWithState(&values[i], func(v float64, s any) { *s.(*float64) = v })
	}
	sched.Advance(0) // start transition
	return reg, sched, &values
}

// --- Tick Benchmarks ---

func BenchmarkAdvance_1000Tweens(b *testing.B) {
	_, sched, _ := setupBenchTweens(1000)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sched.Advance(1.0 / 60)
	}
}

func BenchmarkAdvance_10000Tweens(b *testing.B) {
	_, sched, _ := setupBenchTweens(10000)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sched.Advance(1.0 / 60)
	}
}

// --- Lifecycle Benchmarks ---

func BenchmarkCommitAndCancel(b *testing.B) {
	sched := NewManualScheduler()
	reg := NewRegistry(WithScheduler(sched))
	var target float64
	fn := func(v float64, s any) { *s.(*float64) = v }
	EnsureCapacity[float64, NoOptions, FloatAdapter](reg, sched, 64)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		h := Float(reg, 0, 1, 1).BindWithState(&target, fn)
		reg.Cancel(h)
	}
}

func BenchmarkCommitCompleteChurn(b *testing.B) {
	sched := NewManualScheduler()
	reg := NewRegistry(WithScheduler(sched))
	EnsureCapacity[float64, NoOptions, FloatAdapter](reg, sched, 1024)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for j := 0; j < 100; j++ {
			Float(reg, 0, 1, 0.05).Run()
		}
		sched.Advance(0.05)
	}
}

// --- Handle Benchmarks ---

func BenchmarkIsActive(b *testing.B) {
	sched := NewManualScheduler()
	reg := NewRegistry(WithScheduler(sched))
	h := Float(reg, 0, 1, 1).Run()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if !reg.IsActive(h) {
			b.Fatal("tween should be active")
		}
	}
}
