package partition

// PrefixSums returns PS[0..n] with PS[0] = 0 and PS[i] = seq[0] + … + seq[i-1].
//
// Complexity: O(n) time and memory.
func PrefixSums(seq []int64) []int64 {
	ps := make([]int64, len(seq)+1)
	for i, v := range seq {
		ps[i+1] = ps[i] + v
	}

	return ps
}
