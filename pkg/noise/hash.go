package noise

// hash2 mixes a lattice point and a seed into a well-distributed 64-bit value.
// Each input passes through its own avalanche round so that neighbouring
// lattice points and neighbouring seeds decorrelate.
func hash2(seed, x, y int64) uint64 {
	h := mix64(uint64(seed) + 0x9e3779b97f4a7c15)
	h = mix64(h ^ uint64(x)*0xbf58476d1ce4e5b9)
	return mix64(h ^ uint64(y)*0x94d049bb133111eb)
}

// mix64 is the splitmix64 finalizer
func mix64(h uint64) uint64 {
	h ^= h >> 30
	h *= 0xbf58476d1ce4e5b9
	h ^= h >> 27
	h *= 0x94d049bb133111eb
	h ^= h >> 31
	return h
}

// hashToFloat converts a hash to a float in range [0, 1)
func hashToFloat(h uint64) float64 {
	return float64(h>>11) / (1 << 53)
}
