package engine

import "fmt"

// validateSell checks each nominated sale: the tile must be the player's own
// unflipped cotton mill, manufacturer, or pottery, the merchant must accept
// its industry and be connected to it, and the sale must nominate one
// available source per required beer. Merchant beer is allowed here.
func (g *GameState) validateSell(action Action) Validation {
	p := g.Player(action.PlayerID)
	if p == nil {
		return invalid("player not found")
	}

	var errs []string

	if !p.HasCard(action.CardID) {
		errs = append(errs, "card not in hand")
	}
	if len(action.Sales) == 0 {
		errs = append(errs, "no sales nominated")
	}

	for _, sale := range action.Sales {
		tile := g.PlacedTiles[sale.TileID]
		if tile == nil {
			errs = append(errs, fmt.Sprintf("tile %s not found", sale.TileID))
			continue
		}
		if tile.PlayerID != action.PlayerID {
			errs = append(errs, "can only sell your own tiles")
			continue
		}
		if tile.Flipped {
			errs = append(errs, fmt.Sprintf("tile %s is already sold", sale.TileID))
			continue
		}
		if !tile.Sellable() {
			errs = append(errs, fmt.Sprintf("cannot sell %s", tile.Industry))
			continue
		}

		merchant := g.Board.Merchant(sale.MerchantID)
		if merchant == nil {
			errs = append(errs, fmt.Sprintf("merchant %s not found", sale.MerchantID))
			continue
		}
		if merchant.Industry != tile.Industry {
			errs = append(errs, fmt.Sprintf("merchant does not accept %s", tile.Industry))
			continue
		}
		if !g.Connected(tile.Location, merchant.Location) {
			errs = append(errs, fmt.Sprintf("tile at %s not connected to merchant at %s", tile.Location, merchant.Location))
			continue
		}

		if tile.BeerRequired > 0 {
			if len(sale.BeerSources) != tile.BeerRequired {
				errs = append(errs, fmt.Sprintf("sale of %s must nominate %d beer source(s)", sale.TileID, tile.BeerRequired))
			}
			beer := g.FindBeerSources(action.PlayerID, tile.Location, tile.BeerRequired, true)
			if len(beer) < tile.BeerRequired {
				errs = append(errs, fmt.Sprintf("not enough beer available (need %d)", tile.BeerRequired))
			}
		}
	}

	return validationFrom(errs)
}

// executeSell flips each sold tile, raises its owner's income, and applies
// the merchant's bonus when the beer came from the merchant's own barrel.
func (g *GameState) executeSell(action Action) Result {
	if v := g.validateSell(action); !v.Valid {
		return failure(v)
	}

	var changes []StateChange
	p := g.Player(action.PlayerID)

	for _, sale := range action.Sales {
		tile := g.PlacedTiles[sale.TileID]
		merchant := g.Board.Merchant(sale.MerchantID)

		if tile.BeerRequired > 0 {
			g.ConsumeResources(sale.BeerSources)
			changes = append(changes, StateChange{
				Type:     ChangeResourceConsumed,
				PlayerID: action.PlayerID,
				Details:  map[string]any{"resource": ResourceBeer, "quantity": tile.BeerRequired},
			})

			for _, src := range sale.BeerSources {
				if src.Kind == SourceMerchant {
					changes = g.applyMerchantBonus(p, merchant, changes)
				}
			}
		}

		tile.Flipped = true
		changes = append(changes, StateChange{
			Type:     ChangeTileFlipped,
			PlayerID: action.PlayerID,
			Details:  map[string]any{"tile_id": sale.TileID},
		})

		p.addIncome(tile.IncomeBonus)
		changes = append(changes, StateChange{
			Type:     ChangeIncome,
			PlayerID: action.PlayerID,
			Details:  map[string]any{"change": tile.IncomeBonus, "new_income": p.Income},
		})
	}

	discardActionCard(p, action.CardID, &changes)
	p.ActionsRemaining--
	g.touch()

	return Result{Success: true, Errors: []string{}, StateChanges: changes}
}

// applyMerchantBonus grants the merchant's reward for drinking its beer.
func (g *GameState) applyMerchantBonus(p *PlayerState, merchant *MerchantTile, changes []StateChange) []StateChange {
	switch merchant.BonusType {
	case BonusDevelop:
		// A free develop of one tile; surfaced as a change for the client
		// to follow up on rather than resolved inline.
		changes = append(changes, StateChange{
			Type:     ChangeTileRemoved,
			PlayerID: p.PlayerID,
			Details:  map[string]any{"bonus": "free_develop", "merchant_id": merchant.ID},
		})
	case BonusIncome:
		p.addIncome(merchant.BonusValue)
		changes = append(changes, StateChange{
			Type:     ChangeIncome,
			PlayerID: p.PlayerID,
			Details:  map[string]any{"change": merchant.BonusValue, "new_income": p.Income},
		})
	case BonusVP:
		p.VictoryPoints += merchant.BonusValue
		changes = append(changes, StateChange{
			Type:     ChangeVP,
			PlayerID: p.PlayerID,
			Details:  map[string]any{"change": merchant.BonusValue, "new_vp": p.VictoryPoints},
		})
	case BonusMoney:
		p.Money += merchant.BonusValue
		changes = append(changes, StateChange{
			Type:     ChangeMoney,
			PlayerID: p.PlayerID,
			Details:  map[string]any{"amount": merchant.BonusValue, "new_total": p.Money},
		})
	}
	return changes
}
