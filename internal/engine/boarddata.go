package engine

import "fmt"

// Static board data: locations, adjacency, industry slots, merchants, and
// market shapes. Coordinates use a 0-1000 scale for rendering.

func slot(allowed ...IndustryType) IndustrySlot {
	return IndustrySlot{Allowed: allowed}
}

var boardLocations = []BoardLocation{
	{
		Name:     Belper,
		Slots:    []IndustrySlot{slot(IndustryCottonMill), slot(IndustryCottonMill)},
		Adjacent: []Location{Derby},
		X:        650, Y: 300,
	},
	{
		Name: Birmingham,
		Slots: []IndustrySlot{
			slot(IndustryManufacturer), slot(IndustryManufacturer),
			slot(IndustryManufacturer), slot(IndustryManufacturer),
		},
		Adjacent: []Location{Coventry, Dudley, Nuneaton, Walsall, Wolverhampton},
		X:        400, Y: 500,
	},
	{
		Name:     BurtonOnTrent,
		Slots:    []IndustrySlot{slot(IndustryBrewery), slot(IndustryBrewery), slot(IndustryPottery)},
		Adjacent: []Location{Derby, Tamworth},
		X:        550, Y: 400,
	},
	{
		Name:     Cannock,
		Slots:    []IndustrySlot{slot(IndustryCoalMine), slot(IndustryCoalMine)},
		Adjacent: []Location{FarmBrewery2, Walsall, Wolverhampton},
		X:        350, Y: 400,
	},
	{
		Name: Coalbrookdale,
		Slots: []IndustrySlot{
			slot(IndustryCoalMine), slot(IndustryIronWorks),
			slot(IndustryIronWorks), slot(IndustryBrewery),
		},
		Adjacent: []Location{Shrewsbury, Wolverhampton, Worcester},
		X:        200, Y: 450,
	},
	{
		Name:     Coventry,
		Slots:    []IndustrySlot{slot(IndustryManufacturer), slot(IndustryManufacturer), slot(IndustryManufacturer)},
		Adjacent: []Location{Birmingham, Nuneaton, Oxford},
		X:        500, Y: 600,
	},
	{
		Name:     Derby,
		Slots:    []IndustrySlot{slot(IndustryIronWorks), slot(IndustryPottery), slot(IndustryPottery)},
		Adjacent: []Location{Belper, BurtonOnTrent, Leek, Nottingham},
		X:        600, Y: 350,
	},
	{
		Name:     Dudley,
		Slots:    []IndustrySlot{slot(IndustryCoalMine), slot(IndustryIronWorks)},
		Adjacent: []Location{Birmingham, Kidderminster, Worcester},
		X:        300, Y: 550,
	},
	{
		Name:     FarmBrewery1,
		Slots:    []IndustrySlot{slot(IndustryBrewery)},
		Adjacent: []Location{Stone},
		X:        250, Y: 250,
	},
	{
		Name:     FarmBrewery2,
		Slots:    []IndustrySlot{slot(IndustryBrewery)},
		Adjacent: []Location{Cannock, Stone},
		X:        300, Y: 300,
	},
	{
		Name:     FarmBrewery3,
		Slots:    []IndustrySlot{slot(IndustryBrewery)},
		Adjacent: []Location{Kidderminster, Worcester},
		X:        200, Y: 600,
	},
	{
		Name:     Gloucester,
		Slots:    []IndustrySlot{slot(IndustryCoalMine), slot(IndustryBrewery)},
		Adjacent: []Location{Oxford, Worcester},
		X:        300, Y: 700,
	},
	{
		Name:     Kidderminster,
		Slots:    []IndustrySlot{slot(IndustryCoalMine), slot(IndustryCottonMill)},
		Adjacent: []Location{Dudley, FarmBrewery3, Worcester},
		X:        250, Y: 600,
	},
	{
		Name:     Leek,
		Slots:    []IndustrySlot{slot(IndustryCottonMill), slot(IndustryPottery)},
		Adjacent: []Location{Derby, Stone, Uttoxeter},
		X:        500, Y: 250,
	},
	{
		Name:     MarketHarborough,
		Slots:    []IndustrySlot{slot(IndustryBrewery)},
		Adjacent: []Location{Nottingham, Nuneaton, Oxford},
		X:        650, Y: 500,
	},
	{
		Name:     Nanwich,
		Slots:    []IndustrySlot{slot(IndustryCottonMill), slot(IndustryPottery)},
		Adjacent: []Location{Stone, Warrington},
		X:        300, Y: 150,
	},
	{
		Name:     Nottingham,
		Slots:    []IndustrySlot{slot(IndustryCottonMill), slot(IndustryCottonMill), slot(IndustryManufacturer)},
		Adjacent: []Location{Derby, MarketHarborough},
		X:        700, Y: 400,
	},
	{
		Name:     Nuneaton,
		Slots:    []IndustrySlot{slot(IndustryCoalMine), slot(IndustryBrewery)},
		Adjacent: []Location{Birmingham, Coventry, MarketHarborough, Tamworth},
		X:        500, Y: 500,
	},
	{
		Name:     Oxford,
		Slots:    []IndustrySlot{slot(IndustryManufacturer), slot(IndustryManufacturer)},
		Adjacent: []Location{Coventry, Gloucester, MarketHarborough},
		X:        500, Y: 700,
	},
	{
		Name:     Redditch,
		Slots:    []IndustrySlot{slot(IndustryCoalMine)},
		Adjacent: []Location{Worcester},
		X:        350, Y: 650,
	},
	{
		Name:     Shrewsbury,
		Slots:    []IndustrySlot{slot(IndustryCoalMine), slot(IndustryPottery)},
		Adjacent: []Location{Coalbrookdale, Stone, Wolverhampton},
		X:        200, Y: 300,
	},
	{
		Name:     Stafford,
		Slots:    []IndustrySlot{slot(IndustryBrewery)},
		Adjacent: []Location{Stone, Uttoxeter},
		X:        400, Y: 300,
	},
	{
		Name:     Stone,
		Slots:    []IndustrySlot{slot(IndustryCottonMill), slot(IndustryPottery)},
		Adjacent: []Location{FarmBrewery1, FarmBrewery2, Leek, Nanwich, Shrewsbury, Stafford},
		X:        350, Y: 250,
	},
	{
		Name:     Stourbridge,
		Slots:    []IndustrySlot{slot(IndustryCoalMine), slot(IndustryIronWorks)},
		Adjacent: []Location{Worcester},
		X:        300, Y: 600,
	},
	{
		Name:     Tamworth,
		Slots:    []IndustrySlot{slot(IndustryBrewery)},
		Adjacent: []Location{BurtonOnTrent, Nuneaton, Walsall},
		X:        450, Y: 450,
	},
	{
		Name:     Uttoxeter,
		Slots:    []IndustrySlot{slot(IndustryCoalMine), slot(IndustryBrewery)},
		Adjacent: []Location{Leek, Stafford},
		X:        450, Y: 300,
	},
	{
		Name:     Walsall,
		Slots:    []IndustrySlot{slot(IndustryManufacturer)},
		Adjacent: []Location{Birmingham, Cannock, Tamworth, Wolverhampton},
		X:        400, Y: 450,
	},
	{
		Name:     Warrington,
		Slots:    []IndustrySlot{slot(IndustryCottonMill), slot(IndustryCottonMill), slot(IndustryBrewery)},
		Adjacent: []Location{Nanwich},
		X:        250, Y: 100,
	},
	{
		Name:     Wednesbury,
		Slots:    []IndustrySlot{slot(IndustryCoalMine)},
		Adjacent: []Location{Wolverhampton},
		X:        350, Y: 450,
	},
	{
		Name:     Wolverhampton,
		Slots:    []IndustrySlot{slot(IndustryManufacturer), slot(IndustryManufacturer)},
		Adjacent: []Location{Birmingham, Cannock, Coalbrookdale, Shrewsbury, Walsall, Wednesbury},
		X:        300, Y: 400,
	},
	{
		Name:     Worcester,
		Slots:    []IndustrySlot{slot(IndustryCottonMill), slot(IndustryPottery)},
		Adjacent: []Location{Coalbrookdale, Dudley, FarmBrewery3, Gloucester, Kidderminster, Redditch, Stourbridge},
		X:        250, Y: 650,
	},
}

// AllLocations returns the names of every board location.
func AllLocations() []Location {
	out := make([]Location, len(boardLocations))
	for i, loc := range boardLocations {
		out[i] = loc.Name
	}
	return out
}

// adjacentTo returns the static adjacency list for a location.
func adjacentTo(name Location) []Location {
	for _, loc := range boardLocations {
		if loc.Name == name {
			return loc.Adjacent
		}
	}
	return nil
}

// AreAdjacent reports whether two locations share a printed route on the
// board, regardless of any placed links.
func AreAdjacent(from, to Location) bool {
	for _, adj := range adjacentTo(from) {
		if adj == to {
			return true
		}
	}
	return false
}

type merchantDef struct {
	location   Location
	industry   IndustryType
	bonusType  MerchantBonusType
	bonusValue int
	hasBeer    bool
	minPlayers int
}

var merchantDefs = []merchantDef{
	{Gloucester, IndustryManufacturer, BonusDevelop, 1, true, 2},
	{Gloucester, IndustryPottery, BonusDevelop, 1, true, 3},
	{Oxford, IndustryManufacturer, BonusIncome, 2, true, 2},
	{Oxford, IndustryCottonMill, BonusIncome, 2, true, 4},
	{Warrington, IndustryCottonMill, BonusMoney, 5, true, 2},
	{Warrington, IndustryCottonMill, BonusMoney, 5, true, 3},
	{Nottingham, IndustryCottonMill, BonusVP, 3, true, 2},
	{Nottingham, IndustryManufacturer, BonusVP, 3, true, 3},
	{Shrewsbury, IndustryPottery, BonusVP, 5, true, 2},
}

// merchantsForPlayerCount instantiates the merchants in play for a game of
// the given size. Merchants with a beer space start with one barrel.
func merchantsForPlayerCount(playerCount int) []*MerchantTile {
	var merchants []*MerchantTile
	for i, def := range merchantDefs {
		if def.minPlayers > playerCount {
			continue
		}
		beer := 0
		if def.hasBeer {
			beer = 1
		}
		merchants = append(merchants, &MerchantTile{
			ID:         fmt.Sprintf("merchant-%d", i),
			Location:   def.location,
			Industry:   def.industry,
			BonusType:  def.bonusType,
			BonusValue: def.bonusValue,
			HasBeer:    def.hasBeer,
			Beer:       beer,
			MinPlayers: def.minPlayers,
		})
	}
	return merchants
}

// Market price ladders. The top tier is effectively unlimited.
const (
	coalCeilingPrice = 8
	ironCeilingPrice = 6
)

// newCoalMarket builds the starting coal market: every tier full except one
// missing barrel at the cheapest price.
func newCoalMarket() *ResourceMarket {
	spaces := []MarketSpace{
		{Price: 1, Max: 2}, {Price: 2, Max: 3}, {Price: 3, Max: 4},
		{Price: 4, Max: 5}, {Price: 5, Max: 5}, {Price: 6, Max: 5},
		{Price: 7, Max: 6}, {Price: 8, Max: 99},
	}
	for i := range spaces {
		spaces[i].Count = spaces[i].Max
	}
	spaces[0].Count = spaces[0].Max - 1
	return &ResourceMarket{Spaces: spaces}
}

// newIronMarket builds the starting iron market with the cheapest tier empty.
func newIronMarket() *ResourceMarket {
	spaces := []MarketSpace{
		{Price: 1, Max: 2}, {Price: 2, Max: 3}, {Price: 3, Max: 4},
		{Price: 4, Max: 4}, {Price: 5, Max: 5}, {Price: 6, Max: 99},
	}
	for i := range spaces {
		spaces[i].Count = spaces[i].Max
	}
	spaces[0].Count = 0
	return &ResourceMarket{Spaces: spaces}
}
