package card

import "encoding/json"

// Hand is an ordered card sequence; index 0 is the next card to be played.
type Hand []*Card

func (h Hand) Len() int { return len(h) }

// Front returns the next card to be played, or nil for an empty hand.
func (h Hand) Front() *Card {
	if len(h) == 0 {
		return nil
	}
	return h[0]
}

// PopFront removes and returns the front card.
func (h *Hand) PopFront() (*Card, bool) {
	if len(*h) == 0 {
		return nil, false
	}
	c := (*h)[0]
	(*h)[0] = nil
	*h = (*h)[1:]
	return c, true
}

// PushBack appends cards at the back in the given order.
func (h *Hand) PushBack(cards ...*Card) {
	*h = append(*h, cards...)
}

// InsertAt places c before position i. i is clamped to [0, Len].
func (h *Hand) InsertAt(i int, c *Card) {
	if i < 0 {
		i = 0
	}
	if i > len(*h) {
		i = len(*h)
	}
	*h = append(*h, nil)
	copy((*h)[i+1:], (*h)[i:])
	(*h)[i] = c
}

// RemoveAt removes the card at position i.
func (h *Hand) RemoveAt(i int) (*Card, bool) {
	if i < 0 || i >= len(*h) {
		return nil, false
	}
	c := (*h)[i]
	*h = append((*h)[:i], (*h)[i+1:]...)
	return c, true
}

// IndexOf returns the position of the card with the given id, or -1.
func (h Hand) IndexOf(id int) int {
	for i, c := range h {
		if c != nil && c.ID == id {
			return i
		}
	}
	return -1
}

// Clear empties the hand and returns its former cards.
func (h *Hand) Clear() []*Card {
	out := []*Card(*h)
	*h = Hand{}
	return out
}

// UnmarshalJSON decodes a stored hand. A card identical to its catalog entry
// is replaced by that entry, so decoded hands share the catalog's cards.
func (h *Hand) UnmarshalJSON(data []byte) error {
	var cards []*Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return err
	}
	for i, c := range cards {
		if c == nil {
			continue
		}
		if shared, ok := ByID(c.ID); ok && *shared == *c {
			cards[i] = shared
		}
	}
	*h = cards
	return nil
}
