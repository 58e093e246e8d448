package engine

import "fmt"

// ActionType identifies one of the seven action kinds.
type ActionType string

const (
	ActionBuild   ActionType = "build"
	ActionNetwork ActionType = "network"
	ActionSell    ActionType = "sell"
	ActionDevelop ActionType = "develop"
	ActionLoan    ActionType = "loan"
	ActionScout   ActionType = "scout"
	ActionPass    ActionType = "pass"
)

// AllActionTypes returns the seven action kinds in display order.
func AllActionTypes() []ActionType {
	return []ActionType{
		ActionBuild, ActionNetwork, ActionDevelop, ActionSell,
		ActionLoan, ActionScout, ActionPass,
	}
}

// ConnectionSpec nominates one link to place in a network action.
type ConnectionSpec struct {
	From     Location `json:"from"`
	To       Location `json:"to"`
	LinkType LinkType `json:"link_type"`
}

// SaleSpec nominates one tile to sell and the merchant buying it. BeerSources
// must name one source per beer the tile requires.
type SaleSpec struct {
	TileID      string           `json:"tile_id"`
	MerchantID  string           `json:"merchant_id"`
	BeerSources []ResourceSource `json:"beer_sources,omitempty"`
}

// Action is a player-submitted move. Type selects the kind; the remaining
// fields are read per kind and ignored otherwise.
type Action struct {
	PlayerID string     `json:"player_id"`
	Type     ActionType `json:"type"`
	CardID   string     `json:"card_id"`

	// Build
	Location    Location         `json:"location,omitempty"`
	Industry    IndustryType     `json:"industry,omitempty"`
	CoalSources []ResourceSource `json:"coal_sources,omitempty"`
	IronSources []ResourceSource `json:"iron_sources,omitempty"`

	// Network
	Connections []ConnectionSpec `json:"connections,omitempty"`
	BeerSource  *ResourceSource  `json:"beer_source,omitempty"`

	// Sell
	Sales []SaleSpec `json:"sales,omitempty"`

	// Develop
	TileIDs []string `json:"tile_ids,omitempty"`

	// Scout: the two extra hand cards discarded alongside the action card.
	DiscardCardIDs []string `json:"discard_card_ids,omitempty"`
}

// Validation is the outcome of a rule check. Errors lists every violated
// rule, not just the first.
type Validation struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

func validationOK() Validation {
	return Validation{Valid: true}
}

func invalid(format string, args ...any) Validation {
	return Validation{Errors: []string{fmt.Sprintf(format, args...)}}
}

func validationFrom(errs []string) Validation {
	return Validation{Valid: len(errs) == 0, Errors: errs}
}

// StateChangeType tags one observable effect of an executed action.
type StateChangeType string

const (
	ChangeMoney            StateChangeType = "money"
	ChangeIncome           StateChangeType = "income"
	ChangeVP               StateChangeType = "vp"
	ChangeTilePlaced       StateChangeType = "tile_placed"
	ChangeTileFlipped      StateChangeType = "tile_flipped"
	ChangeTileRemoved      StateChangeType = "tile_removed"
	ChangeLinkPlaced       StateChangeType = "link_placed"
	ChangeCardDrawn        StateChangeType = "card_drawn"
	ChangeCardDiscarded    StateChangeType = "card_discarded"
	ChangeResourceConsumed StateChangeType = "resource_consumed"
	ChangeResourceAdded    StateChangeType = "resource_added"
	ChangeMarketChanged    StateChangeType = "market_changed"
)

// StateChange records one effect for clients replaying or animating a move.
type StateChange struct {
	Type     StateChangeType `json:"type"`
	PlayerID string          `json:"player_id"`
	Details  map[string]any  `json:"details,omitempty"`
}

// Result is the outcome of executing an action.
type Result struct {
	Success      bool          `json:"success"`
	Errors       []string      `json:"errors"`
	StateChanges []StateChange `json:"state_changes"`
}

func failure(v Validation) Result {
	return Result{Errors: v.Errors, StateChanges: []StateChange{}}
}

// discardActionCard moves the action's card from hand to discard and records
// the change. Every executor ends with this.
func discardActionCard(p *PlayerState, cardID string, changes *[]StateChange) {
	if card, ok := p.discard(cardID); ok {
		*changes = append(*changes, StateChange{
			Type:     ChangeCardDiscarded,
			PlayerID: p.PlayerID,
			Details:  map[string]any{"card_id": card.ID},
		})
	}
}
