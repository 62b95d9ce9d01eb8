package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"time"

	"sparselife/internal/core"
	"sparselife/internal/render"
	"sparselife/internal/scene"
	"sparselife/pkg/life"
)

func main() {
	width := flag.Int("width", 512, "grid width in cells")
	height := flag.Int("height", 384, "grid height in cells")
	guns := flag.Int("guns", 10, "glider guns stamped on reset")
	soup := flag.Bool("soup", false, "seed a random soup instead of glider guns")
	seed := flag.Int64("seed", 1337, "RNG seed")
	steps := flag.Int("steps", 1000, "generations to simulate")
	tps := flag.Int("tps", 0, "pace the run at this many ticks per second (0 = flat out)")
	report := flag.Int("report", 100, "print a population line every N generations (0 = quiet)")
	scenePath := flag.String("scene", "", "TOML scene file overriding the default seeding")
	out := flag.String("out", "", "write the final frame to this PNG file")
	flag.Parse()

	var world *life.World
	if *scenePath != "" {
		sc, err := scene.Load(*scenePath)
		if err != nil {
			log.Fatal(err)
		}
		world = sc.Build()
	} else {
		cfg := life.DefaultConfig()
		cfg.Width = *width
		cfg.Height = *height
		cfg.Guns = *guns
		cfg.Soup = *soup
		cfg.Seed = *seed
		world = life.NewWithConfig(cfg)
		world.Reset(0)
	}

	size := world.Size()
	fmt.Printf("life %dx%d seed=%d steps=%d start pop=%d\n",
		size.W, size.H, *seed, *steps, world.Population())

	var pacer *core.FixedStep
	if *tps > 0 {
		pacer = core.NewFixedStep(*tps)
	}

	start := time.Now()
	peak := world.Population()
	for done := 0; done < *steps; {
		if pacer != nil && !pacer.ShouldStep() {
			time.Sleep(pacer.Idle())
			continue
		}
		world.Step()
		done++
		if pop := world.Population(); pop > peak {
			peak = pop
		}
		if *report > 0 && done%*report == 0 {
			fmt.Printf("gen=%d pop=%d\n", world.Generation(), world.Population())
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("done gen=%d pop=%d peak=%d elapsed=%s (%.0f gen/s)\n",
		world.Generation(), world.Population(), peak,
		elapsed.Round(time.Millisecond), float64(*steps)/elapsed.Seconds())

	if *out != "" {
		if err := writeFrame(*out, world); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("wrote %s\n", *out)
	}
}

func writeFrame(path string, world *life.World) error {
	size := world.Size()
	grid := core.NewByteGrid(size.W, size.H)
	render.Rasterize(grid, world.Cells(), world.Ages(), world.AgeRate())
	img := render.ToImage(grid, world.Palette())

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
