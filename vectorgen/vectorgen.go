// Package vectorgen reproduces the reference hardware-verification
// harness: a fixed-seed stream of random (ρ, θ) index pairs, written as
// hex text files, fed back through the Q10 lane selector, and compared
// against a recorded debug oracle at a fixed iteration.
package vectorgen

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/laneref/lanedetect/lane"
	"github.com/laneref/lanedetect/trig"
)

// Params bundles the knobs that vary the vector set: seed, sample count,
// and the lattice dimensions the reference Q10 path uses.
type Params struct {
	Seed         int32
	NumSamples   int
	Rhos         int
	RhoResLog    uint
	ImageCenterY int32
}

// DefaultParams matches center.c's main(): seed 12345, 1000 samples, the
// low-res 50-bin lattice.
var DefaultParams = Params{
	Seed:         12345,
	NumSamples:   1000,
	Rhos:         50,
	RhoResLog:    2,
	ImageCenterY: 60,
}

// Sample is one generated (left, right) index pair.
type Sample struct {
	LeftRhoIdx, LeftTheta   int
	RightRhoIdx, RightTheta int
}

// Generate produces p.NumSamples index pairs from the glibc-compatible
// generator seeded with p.Seed, rejecting any θ whose cosine table entry
// is zero (θ=90) for both lanes, exactly as the reference harness does.
func Generate(p Params) []Sample {
	g := newGlibcRand(p.Seed)
	samples := make([]Sample, p.NumSamples)
	for i := range samples {
		lr := g.Intn(p.Rhos)
		rr := g.Intn(p.Rhos)
		var lt, rt int
		for {
			lt = g.Intn(trig.Thetas)
			if trig.Cos[lt] != 0 {
				break
			}
		}
		for {
			rt = g.Intn(trig.Thetas)
			if trig.Cos[rt] != 0 {
				break
			}
		}
		samples[i] = Sample{LeftRhoIdx: lr, LeftTheta: lt, RightRhoIdx: rr, RightTheta: rt}
	}
	return samples
}

// Oracle records the inputs and the final steering value at iteration 26,
// kept as a test fixture. The intermediate quantities of the steering
// computation (rho in Q10, sin/cos entries, numerators, x-intercepts,
// lane center, offset, angle error) are not recorded.
type Oracle struct {
	Iteration                                     int
	LeftRhoIdx, LeftTheta, RightRhoIdx, RightTheta int
	Steering                                       int32
}

// Run writes the four hex input files for samples, reads them back
// through the Q10 steering estimator, and writes the matching
// steering_cmp.txt, all under dir. It returns the indices and steering
// value at the fixed oracle iteration (26).
func Run(dir string, p Params, samples []Sample) (Oracle, error) {
	leftRho := make([]int, len(samples))
	rightRho := make([]int, len(samples))
	leftTheta := make([]int, len(samples))
	rightTheta := make([]int, len(samples))
	for i, s := range samples {
		leftRho[i] = s.LeftRhoIdx
		rightRho[i] = s.RightRhoIdx
		leftTheta[i] = s.LeftTheta
		rightTheta[i] = s.RightTheta
	}

	if err := writeHexFile(dir+"/left_rho_in.txt", leftRho); err != nil {
		return Oracle{}, err
	}
	if err := writeHexFile(dir+"/right_rho_in.txt", rightRho); err != nil {
		return Oracle{}, err
	}
	if err := writeHexFile(dir+"/left_theta_in.txt", leftTheta); err != nil {
		return Oracle{}, err
	}
	if err := writeHexFile(dir+"/right_theta_in.txt", rightTheta); err != nil {
		return Oracle{}, err
	}

	leftRhoIn, err := ReadHexFile(dir + "/left_rho_in.txt")
	if err != nil {
		return Oracle{}, err
	}
	rightRhoIn, err := ReadHexFile(dir + "/right_rho_in.txt")
	if err != nil {
		return Oracle{}, err
	}
	leftThetaIn, err := ReadHexFile(dir + "/left_theta_in.txt")
	if err != nil {
		return Oracle{}, err
	}
	rightThetaIn, err := ReadHexFile(dir + "/right_theta_in.txt")
	if err != nil {
		return Oracle{}, err
	}
	if len(leftRhoIn) != len(samples) || len(rightRhoIn) != len(samples) ||
		len(leftThetaIn) != len(samples) || len(rightThetaIn) != len(samples) {
		return Oracle{}, fmt.Errorf("vectorgen: hex round-trip for %s produced %d/%d/%d/%d rows, want %d",
			dir, len(leftRhoIn), len(rightRhoIn), len(leftThetaIn), len(rightThetaIn), len(samples))
	}

	steerings := make([]int, len(samples))
	var oracle Oracle
	for i := range samples {
		lr, lt, rr, rt := leftRhoIn[i], leftThetaIn[i], rightRhoIn[i], rightThetaIn[i]
		steering, _ := lane.Steering(int32(lr), int32(lt), int32(rr), int32(rt), p.Rhos, p.RhoResLog, p.ImageCenterY)
		steerings[i] = int(steering)
		if i == 26 {
			oracle = Oracle{
				Iteration:   i,
				LeftRhoIdx:  lr,
				LeftTheta:   lt,
				RightRhoIdx: rr,
				RightTheta:  rt,
				Steering:    steering,
			}
		}
	}

	if err := writeHexFile(dir+"/steering_cmp.txt", steerings); err != nil {
		return Oracle{}, err
	}
	return oracle, nil
}

// writeHexFile writes one lowercase-hex value per line, with no trailing
// newline after the final entry, matching the reference harness's
// fprintf("%x\n", ...) / fprintf("%x", ...) split.
func writeHexFile(path string, values []int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i, v := range values {
		if i > 0 {
			if _, err := w.WriteString("\n"); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(strconv.FormatInt(int64(v), 16)); err != nil {
			return err
		}
	}
	return w.Flush()
}

// ReadHexFile parses one hex integer per line (newline- or EOF-terminated,
// matching the reference's whitespace-tolerant fscanf("%x", ...) reads).
func ReadHexFile(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var values []int
	scanner := bufio.NewScanner(f)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		v, err := strconv.ParseInt(scanner.Text(), 16, 64)
		if err != nil {
			return nil, fmt.Errorf("vectorgen: parsing %q: %w", path, err)
		}
		values = append(values, int(v))
	}
	return values, scanner.Err()
}
