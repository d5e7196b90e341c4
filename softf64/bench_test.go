package softf64

import (
	"testing"
)

var bench_sink float64

func bench_inputs(n int) []float64 {
	r := newSHAKE256x4([]byte("bench"))
	v := make([]float64, n)
	for i := range v {
		v[i] = rand_fp(r)
	}
	return v
}

func bench_unary(b *testing.B, fn func(float64) float64) {
	v := bench_inputs(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bench_sink = fn(v[i&1023])
	}
}

func BenchmarkAbs(b *testing.B) {
	bench_unary(b, Abs)
}

func BenchmarkSqrt(b *testing.B) {
	bench_unary(b, func(f float64) float64 { return Sqrt(Abs(f)) })
}

func BenchmarkFloor(b *testing.B) {
	bench_unary(b, Floor)
}

func BenchmarkCeil(b *testing.B) {
	bench_unary(b, Ceil)
}

func BenchmarkTrunc(b *testing.B) {
	bench_unary(b, Trunc)
}

func BenchmarkRound(b *testing.B) {
	bench_unary(b, Round)
}

func BenchmarkMax(b *testing.B) {
	v := bench_inputs(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bench_sink = Max(v[i&1023], v[(i+1)&1023])
	}
}

func BenchmarkMin(b *testing.B) {
	v := bench_inputs(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bench_sink = Min(v[i&1023], v[(i+1)&1023])
	}
}
