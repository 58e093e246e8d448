package engine

// GamePhase represents the current phase of the game state machine.
type GamePhase int

const (
	PhaseSetup         GamePhase = iota // game created, not yet playable
	PhasePlaying                        // players taking actions
	PhaseEraTransition                  // scoring/cleanup between eras
	PhaseFinished                       // game over
)

var phaseNames = map[GamePhase]string{
	PhaseSetup:         "Setup",
	PhasePlaying:       "Playing",
	PhaseEraTransition: "EraTransition",
	PhaseFinished:      "Finished",
}

func (p GamePhase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return "Unknown"
}

// Era is one of the two macro-phases of the game.
type Era string

const (
	EraCanal Era = "canal"
	EraRail  Era = "rail"
)

// IndustryType identifies the six buildable industries.
type IndustryType string

const (
	IndustryCottonMill   IndustryType = "cotton_mill"
	IndustryCoalMine     IndustryType = "coal_mine"
	IndustryIronWorks    IndustryType = "iron_works"
	IndustryManufacturer IndustryType = "manufacturer"
	IndustryPottery      IndustryType = "pottery"
	IndustryBrewery      IndustryType = "brewery"
)

// AllIndustries returns the six industry types in a fixed order.
func AllIndustries() []IndustryType {
	return []IndustryType{
		IndustryCottonMill, IndustryCoalMine, IndustryIronWorks,
		IndustryManufacturer, IndustryPottery, IndustryBrewery,
	}
}

// ResourceType identifies the three consumable resources.
type ResourceType string

const (
	ResourceCoal ResourceType = "coal"
	ResourceIron ResourceType = "iron"
	ResourceBeer ResourceType = "beer"
)

// LinkType distinguishes canal and rail links.
type LinkType string

const (
	LinkCanal LinkType = "canal"
	LinkRail  LinkType = "rail"
)

// CardType tags the four card variants.
type CardType string

const (
	CardLocation     CardType = "location"
	CardIndustry     CardType = "industry"
	CardWildLocation CardType = "wild_location"
	CardWildIndustry CardType = "wild_industry"
)

// MerchantBonusType identifies the bonus a merchant grants when its beer
// barrel is consumed during a sale.
type MerchantBonusType string

const (
	BonusDevelop MerchantBonusType = "develop"
	BonusIncome  MerchantBonusType = "income"
	BonusVP      MerchantBonusType = "vp"
	BonusMoney   MerchantBonusType = "money"
)

// Location names a spot on the board.
type Location string

const (
	Belper           Location = "BELPER"
	Birmingham       Location = "BIRMINGHAM"
	BurtonOnTrent    Location = "BURTON_ON_TRENT"
	Cannock          Location = "CANNOCK"
	Coalbrookdale    Location = "COALBROOKDALE"
	Coventry         Location = "COVENTRY"
	Derby            Location = "DERBY"
	Dudley           Location = "DUDLEY"
	FarmBrewery1     Location = "FARM_BREWERY_1"
	FarmBrewery2     Location = "FARM_BREWERY_2"
	FarmBrewery3     Location = "FARM_BREWERY_3"
	Gloucester       Location = "GLOUCESTER"
	Kidderminster    Location = "KIDDERMINSTER"
	Leek             Location = "LEEK"
	MarketHarborough Location = "MARKET_HARBOROUGH"
	Nanwich          Location = "NANWICH"
	Nottingham       Location = "NOTTINGHAM"
	Nuneaton         Location = "NUNEATON"
	Oxford           Location = "OXFORD"
	Redditch         Location = "REDDITCH"
	Shrewsbury       Location = "SHREWSBURY"
	Stafford         Location = "STAFFORD"
	Stone            Location = "STONE"
	Stourbridge      Location = "STOURBRIDGE"
	Tamworth         Location = "TAMWORTH"
	Uttoxeter        Location = "UTTOXETER"
	Walsall          Location = "WALSALL"
	Warrington       Location = "WARRINGTON"
	Wednesbury       Location = "WEDNESBURY"
	Wolverhampton    Location = "WOLVERHAMPTON"
	Worcester        Location = "WORCESTER"
)

// IsFarmBrewery reports whether the location is one of the farm brewery
// spots, which wild cards may not be used to build at.
func (l Location) IsFarmBrewery() bool {
	return l == FarmBrewery1 || l == FarmBrewery2 || l == FarmBrewery3
}
