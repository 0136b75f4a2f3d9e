// Package difficulty maps a player-chosen tier to a starting life budget.
package difficulty

import "strings"

// Tier is one of easy, medium or hard.
type Tier string

const (
	Easy   Tier = "easy"
	Medium Tier = "medium"
	Hard   Tier = "hard"
)

// Tiers lists the recognised tiers in menu order.
var Tiers = []Tier{Easy, Medium, Hard}

var lives = map[Tier]int{
	Easy:   10,
	Medium: 8,
	Hard:   6,
}

// Lives returns the starting lives for t, or 0 for an unknown tier.
func (t Tier) Lives() int { return lives[t] }

// Parse accepts exactly the three tier names, ignoring case and surrounding
// whitespace. Anything else is rejected; there is no default tier.
func Parse(s string) (Tier, bool) {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := lives[t]; !ok {
		return "", false
	}
	return t, true
}

// Resolve returns the starting lives for a tier name.
func Resolve(s string) (int, bool) {
	t, ok := Parse(s)
	if !ok {
		return 0, false
	}
	return t.Lives(), true
}
