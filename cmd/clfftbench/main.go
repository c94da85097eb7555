// Command clfftbench lists simulated devices and benchmarks device
// transforms through the registered FFT engine.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"

	clfft "github.com/cwbudde/algo-clfft"
	"github.com/cwbudde/algo-clfft/cl"
	"github.com/cwbudde/algo-clfft/vec"
)

const (
	appName = "clfftbench"
	appDesc = "device FFT benchmark over the registered clfft engine"
)

var version = "unknown"

type config struct {
	sizeList string
	iters    int
	warmup   int
	mode     string
	seed     int64
}

func main() {
	cfg := config{
		sizeList: "256,1024,4096,16384",
		iters:    50,
		warmup:   5,
		mode:     "forward",
		seed:     1,
	}

	parser := flaggy.NewParser(appName)
	parser.Description = appDesc
	parser.Version = version

	listDevicesCmd := flaggy.Subcommand{
		Name:        "list-devices",
		ShortName:   "ld",
		Description: "list platforms, devices and the registered engine",
	}
	parser.AttachSubcommand(&listDevicesCmd, 1)

	parser.String(&cfg.sizeList, "s", "sizes", "comma-separated transform sizes")
	parser.Int(&cfg.iters, "i", "iters", "benchmark iterations")
	parser.Int(&cfg.warmup, "w", "warmup", "warmup iterations")
	parser.String(&cfg.mode, "m", "mode", "benchmark mode: forward, inverse, roundtrip, all")
	parser.Int64(&cfg.seed, "", "seed", "rng seed")

	chk(parser.Parse())

	clfft.RegisterSimEngine()

	if listDevicesCmd.Used {
		listDevices()
		return
	}

	chk(bench(&cfg))
}

func listDevices() {
	for _, p := range cl.Platforms() {
		fmt.Printf("platform: %s (%s, %s)\n", p.Name, p.Vendor, p.Version)

		for _, d := range p.Devices() {
			fmt.Printf("  device: %s\n", d.Name)
			fmt.Printf("    vendor:   %s\n", d.Vendor)
			fmt.Printf("    version:  %s\n", d.Version)
			fmt.Printf("    uuid:     %s\n", d.UUID)
			fmt.Printf("    features: %s\n", d.Features)
		}
	}

	if info, ok := clfft.CurrentEngineInfo(); ok {
		fmt.Printf("engine: %s %s — %s\n", info.Name, info.Version, info.Description)
	} else {
		fmt.Println("engine: none registered")
	}
}

func bench(cfg *config) error {
	sizes := parseSizes(cfg.sizeList)
	if len(sizes) == 0 {
		return errors.New("no sizes specified")
	}

	modes, err := resolveModes(cfg.mode)
	if err != nil {
		return err
	}

	dev := cl.Platforms()[0].Devices()[0]

	ctx, err := cl.NewContext(dev)
	if err != nil {
		return errors.Wrap(err, "create context")
	}
	defer func() { _ = ctx.Release() }()

	queue, err := ctx.NewQueue()
	if err != nil {
		return errors.Wrap(err, "create queue")
	}
	defer func() { _ = queue.Close() }()

	queues := []*cl.Queue{queue}
	rnd := rand.New(rand.NewSource(cfg.seed))

	fmt.Printf("iters=%d warmup=%d\n", cfg.iters, cfg.warmup)
	fmt.Printf("%8s  %10s  %14s  %12s\n", "size", "mode", "placement", "ns/op")

	for _, n := range sizes {
		for _, mode := range modes {
			for _, inPlace := range []bool{false, true} {
				nsPerOp, err := benchmarkSize(rnd, queues, n, cfg.iters, cfg.warmup, mode, inPlace)
				if err != nil {
					return errors.Wrapf(err, "size %d %s", n, mode)
				}

				placement := "out-of-place"
				if inPlace {
					placement = "in-place"
				}

				fmt.Printf("%8d  %10s  %14s  %12.1f\n", n, mode, placement, nsPerOp)
			}
		}
	}

	return nil
}

func benchmarkSize(rnd *rand.Rand, queues []*cl.Queue, n, iters, warmup int, mode string, inPlace bool) (float64, error) {
	data := make([]complex64, n)
	for i := range data {
		data[i] = complex(rnd.Float32()*2-1, rnd.Float32()*2-1)
	}

	in, err := vec.NewFromSlice(queues, data)
	if err != nil {
		return 0, err
	}
	defer func() { _ = in.Close() }()

	out := in
	if !inPlace {
		out, err = vec.New(queues, n)
		if err != nil {
			return 0, err
		}
		defer func() { _ = out.Close() }()
	}

	fwd, err := clfft.New(queues, []int{n}, clfft.Forward)
	if err != nil {
		return 0, err
	}
	defer func() { _ = fwd.Close() }()

	inv, err := clfft.New(queues, []int{n}, clfft.Inverse)
	if err != nil {
		return 0, err
	}
	defer func() { _ = inv.Close() }()

	step := func() error {
		switch mode {
		case "forward":
			return fwd.Transform(out, in)
		case "inverse":
			return inv.Transform(out, in)
		case "roundtrip":
			if err := fwd.Transform(out, in); err != nil {
				return err
			}
			return inv.TransformInPlace(out)
		}
		return errors.Errorf("unknown mode %q", mode)
	}

	for i := 0; i < warmup; i++ {
		if err := step(); err != nil {
			return 0, err
		}
	}
	if err := queues[0].Finish(); err != nil {
		return 0, err
	}

	start := time.Now()
	for i := 0; i < iters; i++ {
		if err := step(); err != nil {
			return 0, err
		}
	}
	if err := queues[0].Finish(); err != nil {
		return 0, err
	}

	return float64(time.Since(start).Nanoseconds()) / float64(iters), nil
}

func resolveModes(mode string) ([]string, error) {
	switch mode {
	case "forward", "inverse", "roundtrip":
		return []string{mode}, nil
	case "all":
		return []string{"forward", "inverse", "roundtrip"}, nil
	}
	return nil, errors.Errorf("unknown mode %q", mode)
}

func parseSizes(list string) []int {
	var sizes []int
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 {
			continue
		}
		sizes = append(sizes, n)
	}
	return sizes
}

func chk(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
