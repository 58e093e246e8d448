package engine

import "fmt"

// validateBuild checks every build rule: card legality, network reach, mat
// and slot availability, resource supply, and money.
func (g *GameState) validateBuild(action Action) Validation {
	p := g.Player(action.PlayerID)
	if p == nil {
		return invalid("player not found")
	}

	var errs []string

	card, inHand := p.CardInHand(action.CardID)
	if !inHand {
		errs = append(errs, "card not in hand")
	} else if v := g.cardAllowsBuild(action.PlayerID, card, action.Location, action.Industry); !v.Valid {
		errs = append(errs, v.Errors...)
	}

	if !g.BuildableLocations(action.PlayerID)[action.Location] {
		errs = append(errs, "location not in your network")
	}

	tile, tileErr := buildableTile(p, action.Industry, g.Era)
	if tileErr != "" {
		errs = append(errs, tileErr)
	}

	if v := g.slotAvailable(action.Location, action.Industry); !v.Valid {
		errs = append(errs, v.Errors...)
	}

	if tile != nil {
		if tile.Cost.Coal > 0 {
			if len(g.FindCoalSources(action.PlayerID, action.Location, tile.Cost.Coal)) < tile.Cost.Coal {
				errs = append(errs, fmt.Sprintf("not enough coal available (need %d)", tile.Cost.Coal))
			}
		}
		if tile.Cost.Iron > 0 {
			if len(g.FindIronSources(action.PlayerID, tile.Cost.Iron)) < tile.Cost.Iron {
				errs = append(errs, fmt.Sprintf("not enough iron available (need %d)", tile.Cost.Iron))
			}
		}

		total := tile.Cost.Money + TotalCost(action.CoalSources) + TotalCost(action.IronSources)
		if p.Money < total {
			errs = append(errs, fmt.Sprintf("not enough money (need £%d, have £%d)", total, p.Money))
		}

		if tile.NeedsMerchant {
			reachesMerchant := false
			for _, m := range g.Board.Merchants {
				if g.HasNetworkAt(action.PlayerID, m.Location) {
					reachesMerchant = true
					break
				}
			}
			if !reachesMerchant {
				errs = append(errs, "coal mine must connect to a merchant")
			}
		}
	}

	return validationFrom(errs)
}

// executeBuild places the tile: consumes resources, pays, moves the tile from
// mat to board, and force-sells mine and works output into the market.
func (g *GameState) executeBuild(action Action) Result {
	if v := g.validateBuild(action); !v.Valid {
		return failure(v)
	}

	var changes []StateChange
	p := g.Player(action.PlayerID)
	tile, _ := buildableTile(p, action.Industry, g.Era)

	total := tile.Cost.Money

	if tile.Cost.Coal > 0 {
		coalCost := g.ConsumeResources(action.CoalSources)
		total += coalCost
		changes = append(changes, StateChange{
			Type:     ChangeResourceConsumed,
			PlayerID: action.PlayerID,
			Details:  map[string]any{"resource": ResourceCoal, "quantity": tile.Cost.Coal, "cost": coalCost},
		})
	}
	if tile.Cost.Iron > 0 {
		ironCost := g.ConsumeResources(action.IronSources)
		total += ironCost
		changes = append(changes, StateChange{
			Type:     ChangeResourceConsumed,
			PlayerID: action.PlayerID,
			Details:  map[string]any{"resource": ResourceIron, "quantity": tile.Cost.Iron, "cost": ironCost},
		})
	}

	p.Money -= total
	p.MoneySpentThisRound += total
	changes = append(changes, StateChange{
		Type:     ChangeMoney,
		PlayerID: action.PlayerID,
		Details:  map[string]any{"amount": -total, "new_total": p.Money},
	})

	p.removeFromMat(tile.ID)

	placed := &PlacedTile{
		IndustryTile: *tile,
		Location:     action.Location,
		PlacedInEra:  g.Era,
	}
	placed.Resources = tile.Capacity
	g.PlacedTiles[tile.ID] = placed
	p.PlacedTiles = append(p.PlacedTiles, tile.ID)

	if loc := g.Board.Locations[action.Location]; loc != nil {
		for i := range loc.Slots {
			if loc.Slots[i].TileID == "" && loc.Slots[i].Accepts(action.Industry) {
				loc.Slots[i].TileID = tile.ID
				break
			}
		}
	}

	changes = append(changes, StateChange{
		Type:     ChangeTilePlaced,
		PlayerID: action.PlayerID,
		Details:  map[string]any{"tile_id": tile.ID, "location": action.Location, "industry": action.Industry},
	})

	// Mines and iron works dump their full output into the market at build
	// time, earning money and flipping immediately.
	if (placed.Industry == IndustryCoalMine || placed.Industry == IndustryIronWorks) && placed.Capacity > 0 {
		earned := g.AddResourcesToMarket(placed.Produces, placed.Capacity)
		p.Money += earned
		placed.Resources = 0
		g.flipTile(placed)

		changes = append(changes, StateChange{
			Type:     ChangeMarketChanged,
			PlayerID: action.PlayerID,
			Details:  map[string]any{"resource": placed.Produces, "quantity": placed.Capacity, "money_earned": earned},
		}, StateChange{
			Type:     ChangeTileFlipped,
			PlayerID: action.PlayerID,
			Details:  map[string]any{"tile_id": tile.ID},
		})
	}

	discardActionCard(p, action.CardID, &changes)
	p.ActionsRemaining--
	g.touch()

	return Result{Success: true, Errors: []string{}, StateChanges: changes}
}

// cardAllowsBuild checks that the played card licenses the location/industry
// pair. Wild cards work anywhere except farm breweries, location cards must
// name the location, and industry cards must match the industry and require
// the location to already be in the player's network.
func (g *GameState) cardAllowsBuild(playerID string, card Card, location Location, industry IndustryType) Validation {
	switch card.Type {
	case CardWildLocation, CardWildIndustry:
		if location.IsFarmBrewery() {
			return invalid("wild cards cannot build at farm breweries")
		}
		return validationOK()
	case CardLocation:
		if card.Location != location {
			return invalid("location card does not match build location")
		}
		return validationOK()
	case CardIndustry:
		if card.Industry != industry {
			return invalid("industry card does not match industry type")
		}
		if !g.HasNetworkAt(playerID, location) {
			return invalid("industry card requires a location in your network")
		}
		return validationOK()
	default:
		return invalid("invalid card type")
	}
}

// buildableTile returns the tile the build would place: the lowest-level mat
// tile of the industry, which must itself be buildable in the current era.
func buildableTile(p *PlayerState, industry IndustryType, era Era) (*IndustryTile, string) {
	tiles := p.Mat[industry]
	if len(tiles) == 0 {
		return nil, "no tiles available for this industry"
	}
	lowest := tiles[0]
	for _, t := range tiles[1:] {
		if t.Level < lowest.Level {
			lowest = t
		}
	}
	if !lowest.AvailableIn(era) {
		return nil, fmt.Sprintf("level %d %s not available in %s era", lowest.Level, industry, era)
	}
	return lowest, ""
}

// slotAvailable checks for a free slot accepting the industry. In the Canal
// era a location may hold only one industry regardless of free slots.
func (g *GameState) slotAvailable(location Location, industry IndustryType) Validation {
	loc := g.Board.Locations[location]
	if loc == nil {
		return invalid("location %s not found", location)
	}

	if g.Era == EraCanal {
		for _, slot := range loc.Slots {
			if slot.TileID != "" {
				return invalid("only one industry per location in the Canal era")
			}
		}
	}

	for _, slot := range loc.Slots {
		if slot.TileID == "" && slot.Accepts(industry) {
			return validationOK()
		}
	}
	return invalid("no available space for this industry")
}
