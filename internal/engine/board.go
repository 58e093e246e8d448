package engine

// IndustrySlot is one build space at a location.
type IndustrySlot struct {
	Allowed []IndustryType `json:"allowed"`
	TileID  string         `json:"tile_id,omitempty"` // id of placed tile, "" if empty
}

// Accepts reports whether the slot allows the given industry.
func (s *IndustrySlot) Accepts(industry IndustryType) bool {
	for _, a := range s.Allowed {
		if a == industry {
			return true
		}
	}
	return false
}

// BoardLocation is a named spot on the static board.
type BoardLocation struct {
	Name     Location       `json:"name"`
	Slots    []IndustrySlot `json:"slots"`
	Adjacent []Location     `json:"adjacent"`
	X, Y     int            `json:"-"` // render coordinates
}

// Connection is a link placed between two adjacent locations. PlayerID is
// empty until a player places the link.
type Connection struct {
	ID       string   `json:"id"`
	From     Location `json:"from"`
	To       Location `json:"to"`
	LinkType LinkType `json:"link_type"`
	PlayerID string   `json:"player_id,omitempty"`
}

// Touches reports whether the connection has loc as an endpoint.
func (c *Connection) Touches(loc Location) bool {
	return c.From == loc || c.To == loc
}

// Other returns the endpoint opposite loc.
func (c *Connection) Other(loc Location) Location {
	if c.From == loc {
		return c.To
	}
	return c.From
}

// MerchantTile is a fixed board tile that industries sell to.
type MerchantTile struct {
	ID         string            `json:"id"`
	Location   Location          `json:"location"`
	Industry   IndustryType      `json:"industry"`
	BonusType  MerchantBonusType `json:"bonus_type"`
	BonusValue int               `json:"bonus_value"`
	HasBeer    bool              `json:"has_beer"`
	Beer       int               `json:"beer"`
	MinPlayers int               `json:"min_players"`
}

// MarketSpace is one price tier of a resource market.
type MarketSpace struct {
	Price int `json:"price"`
	Count int `json:"count"`
	Max   int `json:"max"`
}

// ResourceMarket is a price ladder; cheapest tier first.
type ResourceMarket struct {
	Spaces []MarketSpace `json:"spaces"`
}

// Available returns the total number of resources in the market.
func (m *ResourceMarket) Available() int {
	total := 0
	for _, s := range m.Spaces {
		total += s.Count
	}
	return total
}

// take removes one resource at the given price tier.
func (m *ResourceMarket) take(price int) {
	for i := range m.Spaces {
		if m.Spaces[i].Price == price && m.Spaces[i].Count > 0 {
			m.Spaces[i].Count--
			return
		}
	}
}

// BoardState is the dynamic board: locations with their slots, placed
// connections, merchants, and the two resource markets.
type BoardState struct {
	Locations   map[Location]*BoardLocation `json:"locations"`
	Connections []*Connection               `json:"connections"`
	Merchants   []*MerchantTile             `json:"merchants"`
	CoalMarket  *ResourceMarket             `json:"coal_market"`
	IronMarket  *ResourceMarket             `json:"iron_market"`
}

// Merchant returns the merchant with the given id, or nil.
func (b *BoardState) Merchant(id string) *MerchantTile {
	for _, m := range b.Merchants {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// LinkBetween returns the placed link joining a and b, or nil.
func (b *BoardState) LinkBetween(a, c Location) *Connection {
	for _, conn := range b.Connections {
		if conn.PlayerID == "" {
			continue
		}
		if (conn.From == a && conn.To == c) || (conn.From == c && conn.To == a) {
			return conn
		}
	}
	return nil
}

// Market returns the market holding the given resource type, or nil for beer
// (beer is never market-traded).
func (b *BoardState) Market(resource ResourceType) *ResourceMarket {
	switch resource {
	case ResourceCoal:
		return b.CoalMarket
	case ResourceIron:
		return b.IronMarket
	default:
		return nil
	}
}

// newBoardState builds the starting board for the given player count: fresh
// location slots, no connections, merchants filtered by player count, and the
// two markets at their initial fill.
func newBoardState(playerCount int) *BoardState {
	locations := make(map[Location]*BoardLocation, len(boardLocations))
	for _, loc := range boardLocations {
		l := loc
		l.Slots = make([]IndustrySlot, len(loc.Slots))
		copy(l.Slots, loc.Slots)
		locations[l.Name] = &l
	}

	return &BoardState{
		Locations:   locations,
		Connections: nil,
		Merchants:   merchantsForPlayerCount(playerCount),
		CoalMarket:  newCoalMarket(),
		IronMarket:  newIronMarket(),
	}
}
