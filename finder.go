// Package pairfind locates the first pair of elements in an integer
// sequence whose values sum to a target.
package pairfind

// Pair holds the zero-based indices of a matching pair, First < Second.
type Pair struct {
	First  int
	Second int
}

// Indices returns the pair as a two-element slice in index order.
func (p Pair) Indices() []int {
	return []int{p.First, p.Second}
}

// Find scans nums left to right and returns the indices of the first pair
// whose values sum to target. The returned Second is the smallest index
// that completes any pair; First is the earliest occurrence of the
// complementary value. The boolean reports whether a pair exists.
//
// Elements and target share the platform int width; sum overflow follows
// native integer arithmetic.
func Find(nums []int, target int) (Pair, bool) {
	seen := make(map[int]int, len(nums))
	for i, n := range nums {
		if j, ok := seen[target-n]; ok {
			return Pair{First: j, Second: i}, true
		}
		// Keep the earliest index for duplicate values.
		if _, ok := seen[n]; !ok {
			seen[n] = i
		}
	}

	return Pair{}, false
}
