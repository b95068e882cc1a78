package arena_test

import (
	"fmt"
	"testing"

	"github.com/mgrossmann/arena"
)

// BenchmarkTempRegionCycle measures raw marker push/rewind cost
func BenchmarkTempRegionCycle(b *testing.B) {
	sizes := []int{64, 1024, 16384}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("alloc_%dB", size), func(b *testing.B) {
			a := arena.NewArena(1024 * 1024)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				m, err := a.TempBegin()
				if err != nil {
					b.Fatal(err)
				}
				a.AllocBytes(size)
				a.TempEnd(m)
			}
		})
	}
}

// BenchmarkScratchVsFreshArena compares a scratch session on a long-lived
// arena against creating and releasing a whole arena per task
func BenchmarkScratchVsFreshArena(b *testing.B) {
	b.Run("Scratch", func(b *testing.B) {
		a := arena.NewArena(1024 * 1024)
		defer a.Release()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			s, err := arena.BeginScratch(a)
			if err != nil {
				b.Fatal(err)
			}
			s.AllocBytes(4096)
			s.End()
		}
	})

	b.Run("FreshArena", func(b *testing.B) {
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			a := arena.NewArena(8192)
			a.AllocBytes(4096)
			a.Release()
		}
	})
}

// BenchmarkScratchPoolWarm measures the steady-state pooled cycle: after
// warmup, each get/put pair is two marker operations with no heap traffic
func BenchmarkScratchPoolWarm(b *testing.B) {
	sizes := []int{512, 4096, 65536}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("session_%dB", size), func(b *testing.B) {
			parent := arena.NewArena(1024 * 1024)
			defer parent.Release()
			pool := arena.NewScratchPool(parent)

			// Warm the pool slot.
			s, err := pool.Get()
			if err != nil {
				b.Fatal(err)
			}
			pool.Put(s)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s, err := pool.Get()
				if err != nil {
					b.Fatal(err)
				}
				s.AllocBytes(size)
				pool.Put(s)
			}
		})
	}
}

// BenchmarkScratchPoolVsAdHoc compares pooled sessions against ad hoc
// begin/end on the same parent
func BenchmarkScratchPoolVsAdHoc(b *testing.B) {
	b.Run("Pooled", func(b *testing.B) {
		parent := arena.NewArena(1024 * 1024)
		defer parent.Release()
		pool := arena.NewScratchPool(parent)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			s, err := pool.Get()
			if err != nil {
				b.Fatal(err)
			}
			s.AllocBytes(2048)
			pool.Put(s)
		}
	})

	b.Run("AdHoc", func(b *testing.B) {
		parent := arena.NewArena(1024 * 1024)
		defer parent.Release()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			s, err := arena.BeginScratch(parent)
			if err != nil {
				b.Fatal(err)
			}
			s.AllocBytes(2048)
			s.End()
		}
	})
}

// BenchmarkContextScratch measures the full context path application code
// takes for short-lived work
func BenchmarkContextScratch(b *testing.B) {
	ctx := arena.NewContext()
	defer ctx.Destroy()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err := ctx.ScratchBegin()
		if err != nil {
			b.Fatal(err)
		}
		s.AllocBytes(1024)
		ctx.ScratchEnd(&s)
	}
}
