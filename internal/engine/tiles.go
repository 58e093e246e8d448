package engine

// TileCost is what a tile costs to build.
type TileCost struct {
	Money int `json:"money"`
	Coal  int `json:"coal"`
	Iron  int `json:"iron"`
}

// IndustryTile is one tile instance on a player mat. Instances are stamped
// from the per-type templates at game creation.
type IndustryTile struct {
	ID            string       `json:"id"`
	PlayerID      string       `json:"player_id"`
	Industry      IndustryType `json:"industry"`
	Level         int          `json:"level"`
	Cost          TileCost     `json:"cost"`
	IncomeBonus   int          `json:"income_bonus"`
	VP            int          `json:"vp"`
	Capacity      int          `json:"capacity,omitempty"` // coal/iron/beer held when built
	Produces      ResourceType `json:"produces,omitempty"`
	BeerRequired  int          `json:"beer_required,omitempty"`  // beer needed to sell
	NeedsMerchant bool         `json:"needs_merchant,omitempty"` // coal mines must reach a merchant
	Lightbulb     bool         `json:"lightbulb,omitempty"`      // top pottery tiles cannot be developed
	CanalOnly     bool         `json:"canal_only,omitempty"`
	Flipped       bool         `json:"flipped"`
	Resources     int          `json:"resources"` // remaining on-tile resources
}

// AvailableIn reports whether the tile may be built in the given era.
func (t *IndustryTile) AvailableIn(era Era) bool {
	return !t.CanalOnly || era == EraCanal
}

// Sellable reports whether the tile type is sold to merchants.
func (t *IndustryTile) Sellable() bool {
	switch t.Industry {
	case IndustryCottonMill, IndustryManufacturer, IndustryPottery:
		return true
	}
	return false
}

// PlacedTile is an industry tile that has been built on the board.
type PlacedTile struct {
	IndustryTile
	Location    Location `json:"location"`
	PlacedInEra Era      `json:"placed_in_era"`
}

// tileDef is a tile template; count copies are stamped per player.
type tileDef struct {
	level        int
	count        int
	cost         TileCost
	incomeBonus  int
	vp           int
	capacity     int
	produces     ResourceType
	beerRequired int
	lightbulb    bool
	canalOnly    bool
}

var tileDefs = map[IndustryType][]tileDef{
	IndustryCottonMill: {
		{level: 1, count: 3, cost: TileCost{Money: 12, Coal: 1}, incomeBonus: 5, vp: 3, canalOnly: true},
		{level: 2, count: 3, cost: TileCost{Money: 14, Coal: 1, Iron: 1}, incomeBonus: 4, vp: 5, beerRequired: 1},
		{level: 3, count: 3, cost: TileCost{Money: 16, Coal: 1, Iron: 1}, incomeBonus: 3, vp: 9, beerRequired: 1},
		{level: 4, count: 2, cost: TileCost{Money: 18, Coal: 1, Iron: 1}, incomeBonus: 2, vp: 12, beerRequired: 1},
	},
	IndustryCoalMine: {
		{level: 1, count: 2, cost: TileCost{Money: 5}, incomeBonus: 4, vp: 1, capacity: 2, produces: ResourceCoal, canalOnly: true},
		{level: 2, count: 2, cost: TileCost{Money: 7}, incomeBonus: 7, vp: 2, capacity: 3, produces: ResourceCoal},
		{level: 3, count: 2, cost: TileCost{Money: 8, Iron: 1}, incomeBonus: 6, vp: 3, capacity: 4, produces: ResourceCoal},
		{level: 4, count: 1, cost: TileCost{Money: 10, Iron: 1}, incomeBonus: 5, vp: 4, capacity: 5, produces: ResourceCoal},
	},
	IndustryIronWorks: {
		{level: 1, count: 1, cost: TileCost{Money: 5, Coal: 1}, incomeBonus: 3, vp: 3, capacity: 4, produces: ResourceIron, canalOnly: true},
		{level: 2, count: 1, cost: TileCost{Money: 7, Coal: 1}, incomeBonus: 3, vp: 5, capacity: 4, produces: ResourceIron},
		{level: 3, count: 2, cost: TileCost{Money: 9, Coal: 1}, incomeBonus: 2, vp: 7, capacity: 5, produces: ResourceIron},
	},
	IndustryManufacturer: {
		{level: 1, count: 3, cost: TileCost{Money: 8, Coal: 1}, incomeBonus: 5, vp: 3, canalOnly: true},
		{level: 2, count: 3, cost: TileCost{Money: 10, Coal: 1, Iron: 1}, incomeBonus: 4, vp: 5, beerRequired: 1},
		{level: 3, count: 3, cost: TileCost{Money: 12, Coal: 1, Iron: 1}, incomeBonus: 3, vp: 8, beerRequired: 1},
		{level: 4, count: 2, cost: TileCost{Money: 14, Coal: 1, Iron: 1}, incomeBonus: 2, vp: 11, beerRequired: 1},
	},
	IndustryPottery: {
		// Level 1 pottery survives the Canal era cleanup and stays buildable in Rail.
		{level: 1, count: 1, cost: TileCost{Money: 5, Coal: 1}, incomeBonus: 5, vp: 10, beerRequired: 1},
		{level: 2, count: 1, cost: TileCost{Money: 7, Coal: 1}, incomeBonus: 4, vp: 1, beerRequired: 1},
		{level: 3, count: 1, cost: TileCost{Money: 9, Coal: 1, Iron: 1}, incomeBonus: 3, vp: 2, beerRequired: 1, lightbulb: true},
		{level: 4, count: 1, cost: TileCost{Money: 11, Coal: 1, Iron: 1}, incomeBonus: 2, vp: 1, beerRequired: 2, lightbulb: true},
		{level: 5, count: 1, cost: TileCost{Money: 11, Coal: 1, Iron: 1}, incomeBonus: 1, vp: 1, beerRequired: 2, lightbulb: true},
	},
	IndustryBrewery: {
		// Breweries hold 1 beer in Canal era; capacity becomes 2 at the era transition.
		{level: 1, count: 2, cost: TileCost{Money: 5}, incomeBonus: 4, vp: 4, capacity: 1, produces: ResourceBeer, canalOnly: true},
		{level: 2, count: 2, cost: TileCost{Money: 7}, incomeBonus: 5, vp: 5, capacity: 1, produces: ResourceBeer},
		{level: 3, count: 2, cost: TileCost{Money: 9}, incomeBonus: 5, vp: 7, capacity: 1, produces: ResourceBeer},
		{level: 4, count: 1, cost: TileCost{Money: 9}, incomeBonus: 4, vp: 10, capacity: 1, produces: ResourceBeer},
	},
}

// newPlayerMat stamps a full tile inventory for one player.
func newPlayerMat(playerID string, newID func() string) map[IndustryType][]*IndustryTile {
	mat := make(map[IndustryType][]*IndustryTile, len(tileDefs))
	for _, industry := range AllIndustries() {
		var tiles []*IndustryTile
		for _, def := range tileDefs[industry] {
			for i := 0; i < def.count; i++ {
				tiles = append(tiles, &IndustryTile{
					ID:            newID(),
					PlayerID:      playerID,
					Industry:      industry,
					Level:         def.level,
					Cost:          def.cost,
					IncomeBonus:   def.incomeBonus,
					VP:            def.vp,
					Capacity:      def.capacity,
					Produces:      def.produces,
					BeerRequired:  def.beerRequired,
					NeedsMerchant: industry == IndustryCoalMine,
					Lightbulb:     def.lightbulb,
					CanalOnly:     def.canalOnly,
					Resources:     def.capacity,
				})
			}
		}
		mat[industry] = tiles
	}
	return mat
}
