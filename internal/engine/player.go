package engine

// Income track bounds.
const (
	MinIncome = -10
	MaxIncome = 30
)

// PlayerState holds one player's entire game state.
type PlayerState struct {
	PlayerID      string `json:"player_id"`
	Money         int    `json:"money"`
	Income        int    `json:"income"` // income level, MinIncome..MaxIncome
	VictoryPoints int    `json:"victory_points"`

	Hand        []Card `json:"hand"`
	DiscardPile []Card `json:"discard_pile"`

	LinkTilesRemaining int `json:"link_tiles_remaining"`

	// Mat holds the tiles not yet built, by industry type.
	Mat map[IndustryType][]*IndustryTile `json:"mat"`

	PlacedTiles []string `json:"placed_tiles"` // ids of built industry tiles
	PlacedLinks []string `json:"placed_links"` // ids of placed connections

	MoneySpentThisRound int  `json:"money_spent_this_round"`
	ActionsRemaining    int  `json:"actions_remaining"`
	HasPassed           bool `json:"has_passed"`
}

// HasCard reports whether the card id is in the player's hand.
func (p *PlayerState) HasCard(cardID string) bool {
	for _, c := range p.Hand {
		if c.ID == cardID {
			return true
		}
	}
	return false
}

// CardInHand returns the hand card with the given id.
func (p *PlayerState) CardInHand(cardID string) (Card, bool) {
	for _, c := range p.Hand {
		if c.ID == cardID {
			return c, true
		}
	}
	return Card{}, false
}

// removeFromHand removes the card with the given id from the hand.
func (p *PlayerState) removeFromHand(cardID string) (Card, bool) {
	for i, c := range p.Hand {
		if c.ID == cardID {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return c, true
		}
	}
	return Card{}, false
}

// discard moves the card with the given id from hand to the discard pile.
func (p *PlayerState) discard(cardID string) (Card, bool) {
	card, ok := p.removeFromHand(cardID)
	if !ok {
		return Card{}, false
	}
	p.DiscardPile = append(p.DiscardPile, card)
	return card, true
}

// HasWildCard reports whether the hand holds any wild card.
func (p *PlayerState) HasWildCard() bool {
	for _, c := range p.Hand {
		if c.IsWild() {
			return true
		}
	}
	return false
}

// removeFromMat removes the tile with the given id from the player mat.
func (p *PlayerState) removeFromMat(tileID string) bool {
	for industry, tiles := range p.Mat {
		for i, t := range tiles {
			if t.ID == tileID {
				p.Mat[industry] = append(tiles[:i], tiles[i+1:]...)
				return true
			}
		}
	}
	return false
}

// addIncome moves the player's income level by delta, clamped to the track.
func (p *PlayerState) addIncome(delta int) {
	p.Income += delta
	if p.Income > MaxIncome {
		p.Income = MaxIncome
	}
	if p.Income < MinIncome {
		p.Income = MinIncome
	}
}

// CanAct reports whether the player may take another action this turn.
func (p *PlayerState) CanAct() bool {
	return !p.HasPassed && p.ActionsRemaining > 0
}

// TurnOrderEntry records where a player sits in the round's turn order.
type TurnOrderEntry struct {
	PlayerID   string `json:"player_id"`
	MoneySpent int    `json:"money_spent"`
	Order      int    `json:"order"` // tie-break index
}
