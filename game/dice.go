package game

import (
	"time"

	"golang.org/x/exp/rand"

	"war/meta"
)

// Source is the randomness behind dice rolls and mission draws.
type Source interface {
	Intn(n int) int
}

// NewSource returns a seeded pseudo-random source. A zero seed falls back to the wall clock.
func NewSource(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

type Dice interface {
	Roll() int
}

type die struct {
	src Source
}

// NewDice returns a fair die drawing from src.
func NewDice(src Source) Dice {
	return die{src: src}
}

func (d die) Roll() int {
	return d.src.Intn(meta.DIE_FACES) + 1
}
