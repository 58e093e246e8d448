package engine

import "sort"

// endTurn closes the current player's turn: refill the hand from the draw
// pile and advance to the next seat. When the last seat finishes, the round
// ends.
func (g *GameState) endTurn() {
	if p := g.CurrentPlayer(); p != nil {
		for len(p.Hand) < handSize {
			card, ok := g.Deck.Draw()
			if !ok {
				break
			}
			p.Hand = append(p.Hand, card)
		}
	}

	g.CurrentPlayerIndex = (g.CurrentPlayerIndex + 1) % len(g.TurnOrder)
	if g.CurrentPlayerIndex == 0 && g.allHandsEmpty() {
		g.endRound()
	}
	g.touch()
}

// endRound closes out a round: rebuild the turn order from this round's
// spending, reset the spent counters, then either end the era or start the
// next round. The era-complete test is the same empty-hands condition that
// ended the round, so in practice ending a round always ends the era.
func (g *GameState) endRound() {
	g.recalcTurnOrder()
	g.resetMoneySpent()

	if g.allHandsEmpty() {
		if g.Era == EraCanal {
			g.transitionToRail()
		} else {
			g.finishGame()
		}
		return
	}

	g.Round++
	g.IsFirstRound = false
	g.resetActions()
	g.CurrentPlayerIndex = 0
}

// transitionToRail scores and resets the board between eras: link points are
// awarded and all links removed, flipped tiles score their victory points,
// level 1 industries other than pottery are swept off the board, merchants
// and breweries restock, and a reshuffled deck deals fresh hands.
func (g *GameState) transitionToRail() {
	g.scoreLinks(true)
	g.scoreFlippedTiles()

	for _, tile := range g.placedSorted() {
		if tile.Level == 1 && tile.Industry != IndustryPottery {
			g.removePlacedTile(tile)
		}
	}

	for _, m := range g.Board.Merchants {
		if m.HasBeer {
			m.Beer = 1
		}
	}

	for _, tile := range g.PlacedTiles {
		if tile.Industry == IndustryBrewery && !tile.Flipped {
			tile.Resources = 2
		}
	}

	// Discards and any leftover draw pile become the Rail era deck.
	pile := g.Deck.DrawPile
	for _, p := range g.Players {
		pile = append(pile, p.DiscardPile...)
		p.DiscardPile = nil
		p.Hand = nil
	}
	g.rng.Shuffle(len(pile), func(i, j int) {
		pile[i], pile[j] = pile[j], pile[i]
	})
	g.Deck.DrawPile = pile

	for _, p := range g.Players {
		for i := 0; i < handSize; i++ {
			card, ok := g.Deck.Draw()
			if !ok {
				break
			}
			p.Hand = append(p.Hand, card)
		}
	}

	g.Era = EraRail
	g.Phase = PhasePlaying
	g.Round = 1
	g.IsFirstRound = true
	g.CurrentPlayerIndex = 0
	g.resetActions()
}

// finishGame scores the Rail era in place and ends the game.
func (g *GameState) finishGame() {
	g.scoreLinks(false)
	g.scoreFlippedTiles()
	g.Phase = PhaseFinished
	g.touch()
}

// scoreLinks awards each placed link's owner the adjacency value of both
// endpoints. When remove is set the links are also swept off the board.
func (g *GameState) scoreLinks(remove bool) {
	for _, conn := range g.Board.Connections {
		if conn.PlayerID == "" {
			continue
		}
		owner := g.Player(conn.PlayerID)
		if owner == nil {
			continue
		}
		owner.VictoryPoints += len(adjacentTo(conn.From)) + len(adjacentTo(conn.To))
	}
	if remove {
		g.Board.Connections = nil
		for _, p := range g.Players {
			p.PlacedLinks = nil
		}
	}
}

// scoreFlippedTiles awards victory points for every flipped tile on the board.
func (g *GameState) scoreFlippedTiles() {
	for _, tile := range g.PlacedTiles {
		if !tile.Flipped {
			continue
		}
		if owner := g.Player(tile.PlayerID); owner != nil {
			owner.VictoryPoints += tile.VP
		}
	}
}

// removePlacedTile takes a tile off the board: frees its slot and drops it
// from the global index and the owner's placed list.
func (g *GameState) removePlacedTile(tile *PlacedTile) {
	if loc := g.Board.Locations[tile.Location]; loc != nil {
		for i := range loc.Slots {
			if loc.Slots[i].TileID == tile.ID {
				loc.Slots[i].TileID = ""
				break
			}
		}
	}
	if owner := g.Player(tile.PlayerID); owner != nil {
		for i, id := range owner.PlacedTiles {
			if id == tile.ID {
				owner.PlacedTiles = append(owner.PlacedTiles[:i], owner.PlacedTiles[i+1:]...)
				break
			}
		}
	}
	delete(g.PlacedTiles, tile.ID)
}

// placedSorted returns all placed tiles ordered by id for deterministic
// sweeps over the board.
func (g *GameState) placedSorted() []*PlacedTile {
	tiles := make([]*PlacedTile, 0, len(g.PlacedTiles))
	for _, t := range g.PlacedTiles {
		tiles = append(tiles, t)
	}
	sort.Slice(tiles, func(i, j int) bool { return tiles[i].ID < tiles[j].ID })
	return tiles
}

// CollectIncome settles a player's income. Positive income pays out directly.
// Negative income is paid from cash first; if cash runs out the player's
// unflipped industries are liquidated at half their build cost (rounded down)
// in placement order until the shortfall is met, and any money still owed
// costs one victory point per pound.
func (g *GameState) CollectIncome(playerID string) error {
	p := g.Player(playerID)
	if p == nil {
		return ErrPlayerNotFound
	}
	if p.Income >= 0 {
		p.Money += p.Income
		g.touch()
		return nil
	}

	owed := -p.Income
	if p.Money >= owed {
		p.Money -= owed
		g.touch()
		return nil
	}

	shortfall := owed - p.Money
	p.Money = 0

	proceeds := 0
	var sold []*PlacedTile
	for _, id := range p.PlacedTiles {
		if proceeds >= shortfall {
			break
		}
		tile := g.PlacedTiles[id]
		if tile == nil || tile.Flipped {
			continue
		}
		proceeds += tile.Cost.Money / 2
		sold = append(sold, tile)
	}
	for _, tile := range sold {
		g.removePlacedTile(tile)
	}

	if proceeds >= shortfall {
		p.Money += proceeds - shortfall
	} else {
		p.VictoryPoints -= shortfall - proceeds
	}
	g.touch()
	return nil
}

// Winner returns the leading player: highest victory points, then income,
// then money. Returns nil for an empty game.
func (g *GameState) Winner() *PlayerState {
	var best *PlayerState
	for _, p := range g.Players {
		if best == nil {
			best = p
			continue
		}
		switch {
		case p.VictoryPoints != best.VictoryPoints:
			if p.VictoryPoints > best.VictoryPoints {
				best = p
			}
		case p.Income != best.Income:
			if p.Income > best.Income {
				best = p
			}
		case p.Money > best.Money:
			best = p
		}
	}
	return best
}
