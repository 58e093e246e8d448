package engine

import "math/rand/v2"

// Card is one card in the deck. Type tags which variant it is; Location is
// set for location cards, Industry for industry cards, neither for wilds.
type Card struct {
	ID         string       `json:"id"`
	Type       CardType     `json:"type"`
	Location   Location     `json:"location,omitempty"`
	Industry   IndustryType `json:"industry,omitempty"`
	MinPlayers int          `json:"min_players,omitempty"`
}

// IsWild reports whether the card is a wild location or wild industry card.
func (c Card) IsWild() bool {
	return c.Type == CardWildLocation || c.Type == CardWildIndustry
}

// Deck holds the draw pile plus the wild card supplies. Wild cards live
// outside the draw pile and only enter hands via the Scout action.
type Deck struct {
	DrawPile     []Card `json:"draw_pile"`
	WildLocation []Card `json:"wild_location"`
	WildIndustry []Card `json:"wild_industry"`
}

// Draw removes and returns the top card; ok is false if the pile is empty.
func (d *Deck) Draw() (Card, bool) {
	if len(d.DrawPile) == 0 {
		return Card{}, false
	}
	card := d.DrawPile[0]
	d.DrawPile = d.DrawPile[1:]
	return card, true
}

// Len returns the number of cards left in the draw pile.
func (d *Deck) Len() int {
	return len(d.DrawPile)
}

// Location cards: two copies per location, some gated by player count.
var locationCardDefs = []struct {
	location   Location
	minPlayers int
}{
	{Belper, 2}, {Birmingham, 2}, {BurtonOnTrent, 2}, {Cannock, 2},
	{Coalbrookdale, 2}, {Coventry, 2}, {Derby, 2}, {Dudley, 2},
	{Gloucester, 2}, {Kidderminster, 2}, {Leek, 2}, {MarketHarborough, 2},
	{Nanwich, 2}, {Nottingham, 2}, {Nuneaton, 2}, {Oxford, 2},
	{Redditch, 3}, {Shrewsbury, 2}, {Stafford, 3}, {Stone, 2},
	{Stourbridge, 3}, {Tamworth, 2}, {Uttoxeter, 3}, {Walsall, 2},
	{Warrington, 2}, {Wednesbury, 4}, {Wolverhampton, 2}, {Worcester, 2},
}

// Industry cards: cumulative counts as player count grows.
var industryCardDefs = []struct {
	industry   IndustryType
	minPlayers int
	count      int
}{
	{IndustryCottonMill, 2, 5}, {IndustryCottonMill, 3, 1}, {IndustryCottonMill, 4, 1},
	{IndustryCoalMine, 2, 4},
	{IndustryIronWorks, 2, 3}, {IndustryIronWorks, 3, 1},
	{IndustryManufacturer, 2, 5}, {IndustryManufacturer, 3, 1}, {IndustryManufacturer, 4, 1},
	{IndustryPottery, 2, 3}, {IndustryPottery, 3, 1},
	{IndustryBrewery, 2, 4},
}

const wildCardsPerType = 4

// newDeck builds and shuffles the draw pile for the given player count and
// stocks the wild card supplies.
func newDeck(playerCount int, rng *rand.Rand, newID func() string) *Deck {
	var pile []Card

	for _, def := range locationCardDefs {
		if def.minPlayers > playerCount {
			continue
		}
		for i := 0; i < 2; i++ {
			pile = append(pile, Card{
				ID:         newID(),
				Type:       CardLocation,
				Location:   def.location,
				MinPlayers: def.minPlayers,
			})
		}
	}

	for _, def := range industryCardDefs {
		if def.minPlayers > playerCount {
			continue
		}
		for i := 0; i < def.count; i++ {
			pile = append(pile, Card{
				ID:         newID(),
				Type:       CardIndustry,
				Industry:   def.industry,
				MinPlayers: def.minPlayers,
			})
		}
	}

	rng.Shuffle(len(pile), func(i, j int) {
		pile[i], pile[j] = pile[j], pile[i]
	})

	deck := &Deck{DrawPile: pile}
	for i := 0; i < wildCardsPerType; i++ {
		deck.WildLocation = append(deck.WildLocation, Card{ID: newID(), Type: CardWildLocation})
		deck.WildIndustry = append(deck.WildIndustry, Card{ID: newID(), Type: CardWildIndustry})
	}
	return deck
}
