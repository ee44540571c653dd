package word

import (
	"fmt"
	"math/bits"

	"github.com/consensys/gnark/frontend"
)

// RotrSet returns rotr(x, r) for each of the three amounts, sharing a
// single chunk decomposition of x. The amounts must be strictly ascending
// in (0,32) and every chunk they cut must fit the 16-bit check window;
// other shapes panic.
func (w *API) RotrSet(x U32, r0, r1, r2 int) [3]U32 {
	return w.rotations(x, r0, r1, r2, false)
}

// RotrSetFirstShifted is RotrSet except that the first output is the
// logical right shift x >> r0 instead of a rotation: the chunks below r0
// are dropped rather than wrapped to the top.
func (w *API) RotrSetFirstShifted(x U32, r0, r1, r2 int) [3]U32 {
	return w.rotations(x, r0, r1, r2, true)
}

func validateAmounts(r0, r1, r2 int) [4]int {
	if !(0 < r0 && r0 < r1 && r1 < r2 && r2 < 32) {
		panic(fmt.Sprintf("word: rotation amounts (%d,%d,%d) must be strictly ascending in (0,32)", r0, r1, r2))
	}
	widths := [4]int{r0, r1 - r0, r2 - r1, 32 - r2}
	for _, d := range widths {
		if d > 16 {
			panic(fmt.Sprintf("word: rotation amounts (%d,%d,%d) cut a %d-bit chunk, want at most 16", r0, r1, r2, d))
		}
	}
	return widths
}

func (w *API) rotations(x U32, r0, r1, r2 int, firstShifted bool) [3]U32 {
	widths := validateAmounts(r0, r1, r2)

	if c, ok := w.constU32(x); ok {
		var out [3]U32
		for j, r := range [3]int{r0, r1, r2} {
			out[j] = NewU32(bits.RotateLeft32(c, -r))
		}
		if firstShifted {
			out[0] = NewU32(c >> uint(r0))
		}
		return out
	}

	chunks := w.decompose(x, r0, r1, r2, widths)
	bounds := [4]int{0, r0, r1, r2}

	var out [3]U32
	for j, r := range [3]int{r0, r1, r2} {
		var terms []frontend.Variable
		for i := 0; i < 4; i++ {
			if firstShifted && j == 0 && bounds[i] < r {
				// shifted output drops the low chunk
				continue
			}
			weight := uint64(1) << uint((bounds[i]-r+32)%32)
			terms = append(terms, w.api.Mul(chunks[i], weight))
		}
		out[j] = U32{Val: w.api.Add(terms[0], terms[1], terms[2:]...)}
	}
	return out
}

// decompose splits x into four chunks at boundaries (r0,r1,r2), checks
// each chunk to its width and asserts the weighted recomposition. The
// recomposition is exact over the integers (chunks occupy disjoint bit
// ranges), so it both fixes the chunk values and proves x < 2^32.
func (w *API) decompose(x U32, r0, r1, r2 int, widths [4]int) [4]frontend.Variable {
	outs, err := w.api.Compiler().NewHint(chunksHint, 4, x.Val, r0, r1, r2)
	if err != nil {
		panic(err)
	}
	var chunks [4]frontend.Variable
	copy(chunks[:], outs)
	for i := range chunks {
		w.AssertWidth(chunks[i], widths[i])
	}
	w.api.AssertIsEqual(x.Val, w.api.Add(
		chunks[0],
		w.api.Mul(chunks[1], uint64(1)<<uint(r0)),
		w.api.Mul(chunks[2], uint64(1)<<uint(r1)),
		w.api.Mul(chunks[3], uint64(1)<<uint(r2)),
	))
	return chunks
}
