package card

import (
	"fmt"
	"math"
)

// Role of a player card
type Role string

const (
	Batter       Role = "Batter"
	Bowler       Role = "Bowler"
	AllRounder   Role = "All-Rounder"
	Wicketkeeper Role = "Wicketkeeper"
)

// Attribute names one comparable stat. The string value is the wire name.
type Attribute string

const (
	Runs    Attribute = "runs"
	Wickets Attribute = "wickets"
	Catches Attribute = "catches"
	Price   Attribute = "price"
)

// Attributes is the fixed stat set in declaration order.
var Attributes = []Attribute{Runs, Wickets, Catches, Price}

// FallbackAttribute is played when no stat qualifies as best.
const FallbackAttribute = Runs

// ParseAttribute validates a wire attribute name.
func ParseAttribute(name string) (Attribute, bool) {
	for _, a := range Attributes {
		if string(a) == name {
			return a, true
		}
	}
	return "", false
}

// Stats is the fixed set of numeric card attributes.
type Stats struct {
	Runs    float64 `json:"runs"`
	Wickets float64 `json:"wickets"`
	Catches float64 `json:"catches"`
	Price   float64 `json:"price"`
}

// Value returns the stat for attr; ok is false for an unknown attribute.
func (s Stats) Value(attr Attribute) (float64, bool) {
	switch attr {
	case Runs:
		return s.Runs, true
	case Wickets:
		return s.Wickets, true
	case Catches:
		return s.Catches, true
	case Price:
		return s.Price, true
	}
	return 0, false
}

// Card is immutable once in the catalog. Hands hold pointers to the same values.
type Card struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Team       string `json:"team"`
	Role       Role   `json:"role"`
	IsOverseas bool   `json:"isOverseas"`
	Stats      Stats  `json:"stats"`
}

func (c *Card) String() string {
	return fmt.Sprintf("#%d %s (%s)", c.ID, c.Name, c.Role)
}

// BestAttribute picks the stat with the greatest value. Ties keep the earlier
// attribute in Attributes order.
func BestAttribute(c *Card) Attribute {
	if c == nil {
		return FallbackAttribute
	}
	best := Attribute("")
	bestValue := math.Inf(-1)
	for _, a := range Attributes {
		v, _ := c.Stats.Value(a)
		if math.IsNaN(v) {
			continue
		}
		if v > bestValue {
			best, bestValue = a, v
		}
	}
	if best == "" {
		return FallbackAttribute
	}
	return best
}

// Catalog returns the built-in deck. The slice is a fresh copy; the cards are shared.
func Catalog() []*Card {
	out := make([]*Card, len(catalog))
	copy(out, catalog)
	return out
}

// ByID looks a catalog card up.
func ByID(id int) (*Card, bool) {
	for _, c := range catalog {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}
