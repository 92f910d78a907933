package classify

import (
	"fmt"
	"math/rand"
)

// Split partitions row indices into train and test sets by a seeded
// permutation. No stratification; class imbalance carries through unchanged.
func Split(n int, testFraction float64, seed int64) (train, test []int, err error) {
	if n <= 0 {
		return nil, nil, fmt.Errorf("cannot split %d rows", n)
	}
	if testFraction <= 0 || testFraction >= 1 {
		return nil, nil, fmt.Errorf("test fraction %v out of (0, 1)", testFraction)
	}

	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(n)
	nTest := int(float64(n) * testFraction)
	test = append(test, perm[:nTest]...)
	train = append(train, perm[nTest:]...)
	return train, test, nil
}
