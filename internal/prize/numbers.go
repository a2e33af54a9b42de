package prize

import "sort"

const (
	MinNumber = 1
	MaxNumber = 45

	// maxDrawAttempts bounds rejection sampling before falling back to the
	// lowest admissible number.
	maxDrawAttempts = 1000
)

// RandomSource yields floats uniformly distributed in [0,1).
// *math/rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// numberSet is a membership table over 0..MaxNumber. It is a value type:
// with returns a copy.
type numberSet [MaxNumber + 1]bool

func newNumberSet(nums ...int) numberSet {
	var s numberSet
	return s.with(nums...)
}

func (s numberSet) with(nums ...int) numberSet {
	for _, n := range nums {
		if n >= 0 && n <= MaxNumber {
			s[n] = true
		}
	}
	return s
}

func (s numberSet) has(n int) bool {
	return n >= 0 && n <= MaxNumber && s[n]
}

func (s numberSet) sorted() []int {
	out := make([]int, 0, 6)
	for n := MinNumber; n <= MaxNumber; n++ {
		if s[n] {
			out = append(out, n)
		}
	}
	return out
}

// drawNumber picks a number in [MinNumber, MaxNumber] that is not in excluded.
func drawNumber(rng RandomSource, excluded numberSet) (int, error) {
	for i := 0; i < maxDrawAttempts; i++ {
		n := int(rng.Float64()*MaxNumber) + MinNumber
		if n < MinNumber || n > MaxNumber {
			continue
		}
		if !excluded.has(n) {
			return n, nil
		}
	}
	for n := MinNumber; n <= MaxNumber; n++ {
		if !excluded.has(n) {
			return n, nil
		}
	}
	return 0, ErrNumberPoolExhausted
}

func sortedCopy(nums []int) []int {
	out := append([]int(nil), nums...)
	sort.Ints(out)
	return out
}
