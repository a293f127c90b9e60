package vectorgen

// glibcRand reimplements glibc's default TYPE_3 additive-feedback
// generator (degree 31, separation 3), the generator behind the
// reference harness's srand/rand calls. A from-scratch PRNG would not
// reproduce the reference's fixed-seed sequence; this one is bit-exact
// with it so a seed of 12345 lines up with the reference's recorded
// iteration-26 debug dump.
type glibcRand struct {
	r   []int32
	idx int
}

func newGlibcRand(seed int32) *glibcRand {
	if seed == 0 {
		seed = 1
	}
	r := make([]int32, 34, 344)
	r[0] = seed
	for i := 1; i < 31; i++ {
		hi := r[i-1] / 127773
		lo := r[i-1] % 127773
		word := 16807*lo - 2836*hi
		if word < 0 {
			word += 2147483647
		}
		r[i] = word
	}
	for i := 31; i < 34; i++ {
		r[i] = r[i-31]
	}
	g := &glibcRand{r: r, idx: 34}
	for g.idx < 344 {
		g.step()
	}
	return g
}

func (g *glibcRand) step() int32 {
	i := g.idx
	val := g.r[i-31] + g.r[i-3]
	g.r = append(g.r, val)
	g.idx++
	return val
}

// Next returns the next value in [0, 2^31).
func (g *glibcRand) Next() int32 {
	val := g.step()
	return int32((uint32(val) >> 1) & 0x7fffffff)
}

// Intn returns the next value modulo n, matching the reference's
// `rand() % n` (n assumed positive and small enough that modulo bias is
// not a concern for this harness's purposes).
func (g *glibcRand) Intn(n int) int {
	return int(g.Next()) % n
}
