package engine

import "sort"

// recalcTurnOrder rebuilds the turn order ascending by money spent this
// round, ties broken by the previous order index. The sort is stable so the
// result is always a permutation of the same player set.
func (g *GameState) recalcTurnOrder() {
	entries := make([]TurnOrderEntry, len(g.TurnOrder))
	for i, entry := range g.TurnOrder {
		spent := 0
		if p := g.Player(entry.PlayerID); p != nil {
			spent = p.MoneySpentThisRound
		}
		entries[i] = TurnOrderEntry{PlayerID: entry.PlayerID, MoneySpent: spent, Order: entry.Order}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].MoneySpent != entries[j].MoneySpent {
			return entries[i].MoneySpent < entries[j].MoneySpent
		}
		return entries[i].Order < entries[j].Order
	})

	for i := range entries {
		entries[i].Order = i
	}
	g.TurnOrder = entries
}

// resetMoneySpent clears the per-round spending counters.
func (g *GameState) resetMoneySpent() {
	for _, p := range g.Players {
		p.MoneySpentThisRound = 0
	}
	for i := range g.TurnOrder {
		g.TurnOrder[i].MoneySpent = 0
	}
}

// resetActions refills every player's action budget for a new round:
// one action in the first round of an era, two thereafter.
func (g *GameState) resetActions() {
	actions := 2
	if g.IsFirstRound {
		actions = 1
	}
	for _, p := range g.Players {
		p.ActionsRemaining = actions
		p.HasPassed = false
	}
}

// allHandsEmpty reports whether every player's hand is empty.
func (g *GameState) allHandsEmpty() bool {
	for _, p := range g.Players {
		if len(p.Hand) > 0 {
			return false
		}
	}
	return true
}

// AllPlayersPassed reports whether every player has passed this round.
func (g *GameState) AllPlayersPassed() bool {
	for _, p := range g.Players {
		if !p.HasPassed {
			return false
		}
	}
	return true
}
