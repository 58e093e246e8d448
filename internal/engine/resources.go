package engine

import "sort"

// SourceKind tags where a resource comes from.
type SourceKind string

const (
	SourceTile     SourceKind = "tile"
	SourceMarket   SourceKind = "market"
	SourceMerchant SourceKind = "merchant"
)

// ResourceSource is one unit of a resource with its origin and price.
type ResourceSource struct {
	Kind       SourceKind   `json:"kind"`
	Resource   ResourceType `json:"resource"`
	TileID     string       `json:"tile_id,omitempty"`
	MerchantID string       `json:"merchant_id,omitempty"`
	Cost       int          `json:"cost"`

	// Synthesized marks a market entry priced at the ceiling because the
	// market itself is exhausted; real supply is gone but the request can
	// still be priced.
	Synthesized bool `json:"synthesized,omitempty"`
}

// TotalCost sums the money cost of a set of sources.
func TotalCost(sources []ResourceSource) int {
	total := 0
	for _, s := range sources {
		total += s.Cost
	}
	return total
}

// FindCoalSources finds up to quantity coal units for building at location.
// Coal comes from connected unflipped coal mines first (free), then the coal
// market cheapest-first, then the ceiling price once the market is empty.
func (g *GameState) FindCoalSources(playerID string, location Location, quantity int) []ResourceSource {
	var sources []ResourceSource

	for _, tile := range g.placedByIndustry(IndustryCoalMine) {
		if tile.Flipped || tile.Resources == 0 || !g.Connected(location, tile.Location) {
			continue
		}
		take := min(tile.Resources, quantity-len(sources))
		for i := 0; i < take; i++ {
			sources = append(sources, ResourceSource{Kind: SourceTile, Resource: ResourceCoal, TileID: tile.ID})
		}
		if len(sources) >= quantity {
			return sources
		}
	}

	sources = append(sources, g.marketSources(ResourceCoal, quantity-len(sources))...)
	for len(sources) < quantity {
		sources = append(sources, ResourceSource{
			Kind: SourceMarket, Resource: ResourceCoal, Cost: coalCeilingPrice, Synthesized: true,
		})
	}
	return sources
}

// FindIronSources finds up to quantity iron units. Iron needs no
// connectivity: any unflipped iron works serves first, then the iron market
// cheapest-first, then the ceiling price.
func (g *GameState) FindIronSources(playerID string, quantity int) []ResourceSource {
	var sources []ResourceSource

	for _, tile := range g.placedByIndustry(IndustryIronWorks) {
		if tile.Flipped || tile.Resources == 0 {
			continue
		}
		take := min(tile.Resources, quantity-len(sources))
		for i := 0; i < take; i++ {
			sources = append(sources, ResourceSource{Kind: SourceTile, Resource: ResourceIron, TileID: tile.ID})
		}
		if len(sources) >= quantity {
			return sources
		}
	}

	sources = append(sources, g.marketSources(ResourceIron, quantity-len(sources))...)
	for len(sources) < quantity {
		sources = append(sources, ResourceSource{
			Kind: SourceMarket, Resource: ResourceIron, Cost: ironCeilingPrice, Synthesized: true,
		})
	}
	return sources
}

// FindBeerSources finds up to quantity beer units for the player acting at
// location. The player's own unflipped breweries come first (no connectivity
// needed), then connected opponents' breweries, then — only when
// allowMerchant is set, i.e. when selling — merchant barrels reachable from
// the location. Beer is never market-traded, so no entries are synthesized.
func (g *GameState) FindBeerSources(playerID string, location Location, quantity int, allowMerchant bool) []ResourceSource {
	var sources []ResourceSource

	for _, tile := range g.placedByIndustry(IndustryBrewery) {
		if tile.PlayerID != playerID || tile.Flipped || tile.Resources == 0 {
			continue
		}
		take := min(tile.Resources, quantity-len(sources))
		for i := 0; i < take; i++ {
			sources = append(sources, ResourceSource{Kind: SourceTile, Resource: ResourceBeer, TileID: tile.ID})
		}
		if len(sources) >= quantity {
			return sources
		}
	}

	for _, tile := range g.placedByIndustry(IndustryBrewery) {
		if tile.PlayerID == playerID || tile.Flipped || tile.Resources == 0 {
			continue
		}
		if !g.Connected(location, tile.Location) {
			continue
		}
		take := min(tile.Resources, quantity-len(sources))
		for i := 0; i < take; i++ {
			sources = append(sources, ResourceSource{Kind: SourceTile, Resource: ResourceBeer, TileID: tile.ID})
		}
		if len(sources) >= quantity {
			return sources
		}
	}

	if allowMerchant {
		for _, m := range g.Board.Merchants {
			if len(sources) >= quantity {
				break
			}
			if m.Beer > 0 && g.Connected(location, m.Location) {
				sources = append(sources, ResourceSource{Kind: SourceMerchant, Resource: ResourceBeer, MerchantID: m.ID})
			}
		}
	}
	return sources
}

// marketSources pulls up to quantity units from a market, cheapest tier
// first, without mutating the market.
func (g *GameState) marketSources(resource ResourceType, quantity int) []ResourceSource {
	market := g.Board.Market(resource)
	if market == nil {
		return nil
	}
	var sources []ResourceSource
	for _, space := range market.Spaces {
		if space.Count == 0 {
			continue
		}
		take := min(space.Count, quantity-len(sources))
		for i := 0; i < take; i++ {
			sources = append(sources, ResourceSource{Kind: SourceMarket, Resource: resource, Cost: space.Price})
		}
		if len(sources) >= quantity {
			break
		}
	}
	return sources
}

// ConsumeResources takes one unit from each source: decrements the tile's
// on-tile count, the market tier, or the merchant's barrel. A tile that
// empties flips and immediately credits its owner's income bonus. Returns
// the total money owed for market-sourced units.
func (g *GameState) ConsumeResources(sources []ResourceSource) int {
	totalCost := 0
	for _, source := range sources {
		totalCost += source.Cost

		switch source.Kind {
		case SourceTile:
			tile := g.PlacedTiles[source.TileID]
			if tile == nil || tile.Resources == 0 {
				continue
			}
			tile.Resources--
			if tile.Resources == 0 {
				g.flipTile(tile)
			}
		case SourceMarket:
			if source.Synthesized {
				continue // nothing physical to remove
			}
			if market := g.Board.Market(source.Resource); market != nil {
				market.take(source.Cost)
			}
		case SourceMerchant:
			if m := g.Board.Merchant(source.MerchantID); m != nil && m.Beer > 0 {
				m.Beer--
			}
		}
	}
	return totalCost
}

// flipTile marks a tile sold and credits the owner's income bonus.
func (g *GameState) flipTile(tile *PlacedTile) {
	tile.Flipped = true
	if owner := g.Player(tile.PlayerID); owner != nil {
		owner.addIncome(tile.IncomeBonus)
	}
}

// AddResourcesToMarket sells quantity units into a market, filling the most
// expensive open capacity first, and returns the money earned. This models a
// mine or iron works dumping its full output at build time.
func (g *GameState) AddResourcesToMarket(resource ResourceType, quantity int) int {
	market := g.Board.Market(resource)
	if market == nil {
		return 0
	}
	earned := 0
	for i := len(market.Spaces) - 1; i >= 0 && quantity > 0; i-- {
		space := &market.Spaces[i]
		add := min(space.Max-space.Count, quantity)
		space.Count += add
		earned += add * space.Price
		quantity -= add
	}
	return earned
}

// placedByIndustry returns placed tiles of one industry in a stable order
// (by tile id), so sourcing is deterministic.
func (g *GameState) placedByIndustry(industry IndustryType) []*PlacedTile {
	var tiles []*PlacedTile
	for _, t := range g.PlacedTiles {
		if t.Industry == industry {
			tiles = append(tiles, t)
		}
	}
	sort.Slice(tiles, func(i, j int) bool { return tiles[i].ID < tiles[j].ID })
	return tiles
}
