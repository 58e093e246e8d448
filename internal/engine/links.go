package engine

import "fmt"

// Link placement costs.
const (
	canalLinkCost      = 3
	railLinkCost       = 5
	railDoubleLinkCost = 15
)

// networkCost returns the money, coal, and beer a set of links costs in the
// current era. A second rail link in one action is discounted but adds coal
// and beer requirements.
func (g *GameState) networkCost(linkCount int) (money, coal, beer int) {
	if g.Era == EraCanal {
		return canalLinkCost * linkCount, 0, 0
	}
	if linkCount == 1 {
		return railLinkCost, 1, 0
	}
	return railDoubleLinkCost, 2, 1
}

// validateNetwork checks link count and type for the era, adjacency, link
// availability, network reach, and the money/coal/beer cost.
func (g *GameState) validateNetwork(action Action) Validation {
	p := g.Player(action.PlayerID)
	if p == nil {
		return invalid("player not found")
	}

	var errs []string

	if !p.HasCard(action.CardID) {
		errs = append(errs, "card not in hand")
	}

	switch g.Era {
	case EraCanal:
		if len(action.Connections) != 1 {
			errs = append(errs, "exactly 1 link may be placed in the Canal era")
		}
		for _, conn := range action.Connections {
			if conn.LinkType != LinkCanal {
				errs = append(errs, "only canal links may be placed in the Canal era")
				break
			}
		}
	case EraRail:
		if len(action.Connections) == 0 || len(action.Connections) > 2 {
			errs = append(errs, "1 or 2 links may be placed in the Rail era")
		}
		for _, conn := range action.Connections {
			if conn.LinkType != LinkRail {
				errs = append(errs, "only rail links may be placed in the Rail era")
				break
			}
		}
	}

	if p.LinkTilesRemaining < len(action.Connections) {
		errs = append(errs, fmt.Sprintf("not enough link tiles (need %d, have %d)", len(action.Connections), p.LinkTilesRemaining))
	}

	hasTiles := len(p.PlacedTiles) > 0
	for _, conn := range action.Connections {
		if !AreAdjacent(conn.From, conn.To) {
			errs = append(errs, fmt.Sprintf("%s and %s are not adjacent", conn.From, conn.To))
		}
		if g.Board.LinkBetween(conn.From, conn.To) != nil {
			errs = append(errs, fmt.Sprintf("link already exists between %s and %s", conn.From, conn.To))
		}
		if hasTiles && !g.HasNetworkAt(action.PlayerID, conn.From) && !g.HasNetworkAt(action.PlayerID, conn.To) {
			errs = append(errs, "at least one end of the link must be in your network")
		}
	}

	money, coalNeeded, beerNeeded := g.networkCost(len(action.Connections))

	total := money + TotalCost(action.CoalSources)
	if p.Money < total {
		errs = append(errs, fmt.Sprintf("not enough money (need £%d, have £%d)", total, p.Money))
	}
	if coalNeeded > 0 && len(action.CoalSources) < coalNeeded {
		errs = append(errs, fmt.Sprintf("need %d coal for this network action", coalNeeded))
	}
	if beerNeeded > 0 && action.BeerSource == nil {
		errs = append(errs, "need 1 beer for a 2-link network action")
	}

	return validationFrom(errs)
}

// executeNetwork pays the link cost and places the nominated links.
func (g *GameState) executeNetwork(action Action) Result {
	if v := g.validateNetwork(action); !v.Valid {
		return failure(v)
	}

	var changes []StateChange
	p := g.Player(action.PlayerID)

	cost, _, _ := g.networkCost(len(action.Connections))

	if len(action.CoalSources) > 0 {
		coalCost := g.ConsumeResources(action.CoalSources)
		cost += coalCost
		changes = append(changes, StateChange{
			Type:     ChangeResourceConsumed,
			PlayerID: action.PlayerID,
			Details:  map[string]any{"resource": ResourceCoal, "quantity": len(action.CoalSources), "cost": coalCost},
		})
	}
	if action.BeerSource != nil {
		g.ConsumeResources([]ResourceSource{*action.BeerSource})
		changes = append(changes, StateChange{
			Type:     ChangeResourceConsumed,
			PlayerID: action.PlayerID,
			Details:  map[string]any{"resource": ResourceBeer, "quantity": 1},
		})
	}

	p.Money -= cost
	p.MoneySpentThisRound += cost
	changes = append(changes, StateChange{
		Type:     ChangeMoney,
		PlayerID: action.PlayerID,
		Details:  map[string]any{"amount": -cost, "new_total": p.Money},
	})

	for _, conn := range action.Connections {
		link := &Connection{
			ID:       g.newID(),
			From:     conn.From,
			To:       conn.To,
			LinkType: conn.LinkType,
			PlayerID: action.PlayerID,
		}
		g.Board.Connections = append(g.Board.Connections, link)
		p.LinkTilesRemaining--
		p.PlacedLinks = append(p.PlacedLinks, link.ID)

		changes = append(changes, StateChange{
			Type:     ChangeLinkPlaced,
			PlayerID: action.PlayerID,
			Details:  map[string]any{"link_id": link.ID, "from": conn.From, "to": conn.To, "link_type": conn.LinkType},
		})
	}

	discardActionCard(p, action.CardID, &changes)
	p.ActionsRemaining--
	g.touch()

	return Result{Success: true, Errors: []string{}, StateChanges: changes}
}
