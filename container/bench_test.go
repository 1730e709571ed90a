package container_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/navgraph/container"
)

func BenchmarkArray_PushBack(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		a := container.NewArray[int](1)
		for j := 0; j < 1024; j++ {
			a.PushBack(j)
		}
	}
}

func BenchmarkPriorityQueue_PushPop(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	keys := make([]float64, 4096)
	for i := range keys {
		keys[i] = rng.Float64()
	}
	pq := container.NewPriorityQueue(container.Ascending(func(v float64) float64 { return v }), len(keys))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, k := range keys {
			pq.Push(k)
		}
		for !pq.IsEmpty() {
			pq.Pop()
		}
	}
}

func BenchmarkQueue_EnqueueDequeue(b *testing.B) {
	q := container.NewQueue[int](16)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		q.Enqueue(i)
		if q.Len() > 8 {
			q.Dequeue()
		}
	}
}
