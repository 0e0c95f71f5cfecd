// Command arcformdemo exercises the fit -> build -> evaluate pipeline
// end to end against a hand-coded stroke, printing the resulting
// keyframes and a handful of sampled playback positions.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/arcform/arcform"
)

func main() {
	arcform.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))

	cfg := arcform.NewConfig(arcform.WithFitTolerancePx(1.5))

	points := []arcform.Vector{
		arcform.V(0, 0), arcform.V(0, 10), arcform.V(0, 25), arcform.V(0, 40), arcform.V(0, 50),
		arcform.V(10, 50), arcform.V(25, 50), arcform.V(40, 50), arcform.V(50, 50),
	}
	timestamps := []float64{0, 10, 20, 30, 40, 50, 60, 70, 80}

	keyframes, err := arcform.GenerateKeyframes(points, timestamps, cfg.FitTolerancePx(), cfg.CoarseTolerancePx())
	if err != nil {
		fmt.Fprintln(os.Stderr, "generate keyframes:", err)
		os.Exit(1)
	}

	fmt.Printf("fitted %d keyframes\n", len(keyframes))
	for i, k := range keyframes {
		fmt.Printf("  [%d] t=%.3f pos=(%.2f, %.2f)\n", i, k.Time, k.Position.X, k.Position.Y)
	}

	path := arcform.NewPath(keyframes, 0, 0.8)
	for _, ms := range []float64{0, 200, 400, 800} {
		p := path.Evaluate(ms)
		fmt.Printf("evaluate(%gms) = (%.2f, %.2f)\n", ms, p.X, p.Y)
	}
}
