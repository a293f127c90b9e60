// Command vectorgen reproduces the hardware verification harness: a
// fixed-seed stream of random Hough indices, run through the Q10 lane
// selector, with results written as hex text files for comparison
// against a hardware test bench.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/laneref/lanedetect/vectorgen"
)

func main() {
	var (
		dir     = flag.String("dir", ".", "output directory for the generated vector files")
		seed    = flag.Int("seed", int(vectorgen.DefaultParams.Seed), "RNG seed")
		samples = flag.Int("samples", vectorgen.DefaultParams.NumSamples, "number of samples to generate")
		script  = flag.String("script", "", "batch script: one invocation per line, shell-quoted flags")
	)
	flag.Parse()
	log.SetPrefix("lanedetect: ")

	if *script != "" {
		if err := runScript(*script); err != nil {
			log.Fatal(err)
		}
		return
	}

	p := vectorgen.DefaultParams
	p.Seed = int32(*seed)
	p.NumSamples = *samples

	if err := runOne(*dir, p); err != nil {
		log.Fatal(err)
	}
}

func runOne(dir string, p vectorgen.Params) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	samples := vectorgen.Generate(p)
	oracle, err := vectorgen.Run(dir, p, samples)
	if err != nil {
		return err
	}
	log.Printf("iteration %d: left=(%d,%d) right=(%d,%d) steering=0x%03x",
		oracle.Iteration, oracle.LeftRhoIdx, oracle.LeftTheta,
		oracle.RightRhoIdx, oracle.RightTheta, oracle.Steering)
	return nil
}

func runScript(path string) error {
	invocations, err := vectorgen.ParseScript(path)
	if err != nil {
		return err
	}
	for _, inv := range invocations {
		if err := runOne(inv.Dir, inv.Params); err != nil {
			return err
		}
	}
	return nil
}
