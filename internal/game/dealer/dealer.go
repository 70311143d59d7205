package dealer

import (
	"math/rand"

	"CricketTrumps/internal/game/card"
)

// Dealer only shuffles and deals; it knows nothing about rounds or scoring.
type Dealer struct {
	rnd *rand.Rand
}

func NewDealer(seed int64) *Dealer {
	return &Dealer{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

// Shuffle returns a uniformly permuted copy of deck (Fisher-Yates).
// The input slice is left untouched.
func (d *Dealer) Shuffle(deck []*card.Card) []*card.Card {
	out := make([]*card.Card, len(deck))
	copy(out, deck)
	for i := len(out) - 1; i > 0; i-- {
		j := d.rnd.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Distribute deals round-robin: deck[i] goes to hand i % playerCount.
func Distribute(deck []*card.Card, playerCount int) []card.Hand {
	if playerCount <= 0 {
		return nil
	}
	hands := make([]card.Hand, playerCount)
	for i := range hands {
		hands[i] = make(card.Hand, 0, len(deck)/playerCount+1)
	}
	for i, c := range deck {
		hands[i%playerCount] = append(hands[i%playerCount], c)
	}
	return hands
}

// Deal shuffles deck and distributes it.
func (d *Dealer) Deal(deck []*card.Card, playerCount int) []card.Hand {
	return Distribute(d.Shuffle(deck), playerCount)
}
