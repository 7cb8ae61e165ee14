package generators

import "math/rand/v2"

// NewRand возвращает независимый источник случайных чисел для одного запуска.
// Одинаковое зерно даёт одинаковую последовательность значений.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// randomInt - равномерное целое из [min, max] включительно.
func randomInt(rng *rand.Rand, min, max int) int {
	return min + rng.IntN(max-min+1)
}
