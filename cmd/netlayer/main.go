// Package main provides the netlayer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/born-ml/netlayer/internal/activation"
	"github.com/born-ml/netlayer/internal/gradcheck"
	"github.com/born-ml/netlayer/internal/matrix"
	"github.com/born-ml/netlayer/internal/nn"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("netlayer %s\n", version)
	case "check":
		if !check() {
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("netlayer - feed-forward layer math")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  check      Gradient-check a small Linear/Sigmoid network")
}

// check runs finite-difference checks on every layer of a fixed network and
// on the network as a whole. Returns false if any check fails.
func check() bool {
	model := nn.NewSequential(
		nn.NewLinear(4, 6),
		nn.NewActivation(activation.Sigmoid{}),
		nn.NewLinear(6, 3),
		nn.NewActivation(activation.Tanh{}),
	)
	arena := model.NewArena()
	arena.Init(nn.NewSource(42))

	input := matrix.MustNew(8, 4, nn.Xavier(1, 1, 8*4, nn.NewSource(7)))
	cfg := gradcheck.DefaultConfig()
	trace := model.Forward(input, arena)

	ok := true
	for i := 0; i < model.Len(); i++ {
		l := model.Layer(i)
		slot := arena.Slot(i)
		params := arena.Data()[slot.Offset : slot.Offset+slot.Len()]

		for _, c := range []struct {
			name string
			run  func(nn.Layer, *matrix.Matrix, []float64, gradcheck.Config) (gradcheck.Report, error)
		}{
			{"params", gradcheck.Params},
			{"input", gradcheck.Input},
		} {
			report, err := c.run(l, trace.Input(i), params, cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "layer %d %v: %v\n", i, l, err)
				return false
			}
			fmt.Printf("layer %d %-40v %-6s %v\n", i, l, c.name, report)
			ok = ok && report.OK
		}
	}

	report := gradcheck.Sequential(model, arena, input, cfg)
	fmt.Printf("network (%d params) %v\n", arena.Len(), report)

	return ok && report.OK
}
