package engine

import "fmt"

// validateDevelop checks that each nominated tile is the player's own
// unflipped, non-lightbulb tile at the lowest level of its industry, and that
// one iron per tile is sourceable and affordable.
func (g *GameState) validateDevelop(action Action) Validation {
	p := g.Player(action.PlayerID)
	if p == nil {
		return invalid("player not found")
	}

	var errs []string

	if !p.HasCard(action.CardID) {
		errs = append(errs, "card not in hand")
	}
	if len(action.TileIDs) == 0 || len(action.TileIDs) > 2 {
		errs = append(errs, "can only develop 1 or 2 tiles")
	}

	for _, tileID := range action.TileIDs {
		tile := g.PlacedTiles[tileID]
		if tile == nil {
			errs = append(errs, fmt.Sprintf("tile %s not found", tileID))
			continue
		}
		if tile.PlayerID != action.PlayerID {
			errs = append(errs, "can only develop your own tiles")
			continue
		}
		if tile.Flipped {
			errs = append(errs, fmt.Sprintf("tile %s is already flipped", tileID))
			continue
		}
		if tile.Lightbulb {
			errs = append(errs, "lightbulb pottery tiles cannot be developed")
			continue
		}
		if lvl := g.lowestPlacedLevel(action.PlayerID, tile.Industry); tile.Level != lvl {
			errs = append(errs, fmt.Sprintf("must develop the lowest level %s first", tile.Industry))
		}
	}

	ironNeeded := len(action.TileIDs)
	if len(g.FindIronSources(action.PlayerID, ironNeeded)) < ironNeeded {
		errs = append(errs, fmt.Sprintf("not enough iron available (need %d)", ironNeeded))
	}

	if ironCost := TotalCost(action.IronSources); p.Money < ironCost {
		errs = append(errs, fmt.Sprintf("not enough money for iron (need £%d)", ironCost))
	}

	return validationFrom(errs)
}

// executeDevelop consumes the iron and removes the developed tiles from the
// board.
func (g *GameState) executeDevelop(action Action) Result {
	if v := g.validateDevelop(action); !v.Valid {
		return failure(v)
	}

	var changes []StateChange
	p := g.Player(action.PlayerID)

	ironCost := g.ConsumeResources(action.IronSources)
	p.Money -= ironCost
	p.MoneySpentThisRound += ironCost
	changes = append(changes, StateChange{
		Type:     ChangeResourceConsumed,
		PlayerID: action.PlayerID,
		Details:  map[string]any{"resource": ResourceIron, "quantity": len(action.TileIDs), "cost": ironCost},
	})

	for _, tileID := range action.TileIDs {
		tile := g.PlacedTiles[tileID]
		if tile == nil {
			continue
		}
		g.removePlacedTile(tile)
		changes = append(changes, StateChange{
			Type:     ChangeTileRemoved,
			PlayerID: action.PlayerID,
			Details:  map[string]any{"tile_id": tileID, "industry": tile.Industry, "level": tile.Level},
		})
	}

	discardActionCard(p, action.CardID, &changes)
	p.ActionsRemaining--
	g.touch()

	return Result{Success: true, Errors: []string{}, StateChanges: changes}
}

// lowestPlacedLevel returns the lowest level among the player's unflipped
// placed tiles of the industry, or 0 if none.
func (g *GameState) lowestPlacedLevel(playerID string, industry IndustryType) int {
	lowest := 0
	for _, t := range g.PlacedTiles {
		if t.PlayerID != playerID || t.Industry != industry || t.Flipped {
			continue
		}
		if lowest == 0 || t.Level < lowest {
			lowest = t.Level
		}
	}
	return lowest
}
