package util

import "math/rand/v2"

// GenerateRandomUints generates n random values in the range 0..m.
func GenerateRandomUints(n, m uint) []uint {
	items := make([]uint, n)

	for i := uint(0); i < n; i++ {
		items[i] = rand.UintN(m)
	}

	return items
}

// GenerateRandomOneOffs generates n random OneOffs whose values are in the
// range 0..m, and whose sides are chosen uniformly at random.
func GenerateRandomOneOffs(n, m uint) []OneOff[uint] {
	items := make([]OneOff[uint], n)

	for i, v := range GenerateRandomUints(n, m) {
		if rand.IntN(2) == 0 {
			items[i] = Left(v)
		} else {
			items[i] = Right(v)
		}
	}

	return items
}
