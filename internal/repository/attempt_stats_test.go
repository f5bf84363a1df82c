package repository

import (
	"math"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func foldAll(scores []float64) float64 {
	avg := 0.0
	for n, s := range scores {
		avg = foldAverage(avg, n, s)
	}
	return avg
}

func TestFoldAverageEqualsArithmeticMean(t *testing.T) {
	cases := []struct {
		name   string
		scores []float64
	}{
		{"single", []float64{75}},
		{"two", []float64{100, 50}},
		{"mixed", []float64{80, 60, 100, 0, 45}},
		{"negative raw scores", []float64{-2, 10, 4}},
		{"many identical", []float64{50, 50, 50, 50, 50, 50}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sum := 0.0
			for _, s := range tc.scores {
				sum += s
			}
			mean := sum / float64(len(tc.scores))

			if got := foldAll(tc.scores); math.Abs(got-mean) > 1e-9 {
				t.Errorf("Folded average %.6f, expected mean %.6f", got, mean)
			}
		})
	}
}

func TestFoldAverageOrderIndependent(t *testing.T) {
	// The stored average after n attempts must not depend on arrival order.
	forward := foldAll([]float64{90, 10, 55, 70, 25})
	reversed := foldAll([]float64{25, 70, 55, 10, 90})

	if math.Abs(forward-reversed) > 1e-9 {
		t.Errorf("Average depends on submission order: %.6f vs %.6f", forward, reversed)
	}
}

func TestRunningAveragePipelineShape(t *testing.T) {
	pipeline := runningAveragePipeline(42)

	if len(pipeline) != 1 {
		t.Fatalf("Expected a single pipeline stage, got %d", len(pipeline))
	}
	set, ok := pipeline[0]["$set"].(bson.M)
	if !ok {
		t.Fatal("Expected a $set stage")
	}
	for _, field := range []string{"average_score", "attempts", "updated_at"} {
		if _, ok := set[field]; !ok {
			t.Errorf("Pipeline does not update %q", field)
		}
	}
	if set["updated_at"] != "$$NOW" {
		t.Errorf("Expected updated_at to use $$NOW, got %v", set["updated_at"])
	}
}
