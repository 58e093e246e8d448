package engine

import "fmt"

// Loan terms.
const (
	loanAmount       = 30
	loanIncomeLevels = 3
)

// validateLoan rejects a loan that would push income below the track floor.
func (g *GameState) validateLoan(action Action) Validation {
	p := g.Player(action.PlayerID)
	if p == nil {
		return invalid("player not found")
	}

	var errs []string
	if !p.HasCard(action.CardID) {
		errs = append(errs, "card not in hand")
	}
	if p.Income-loanIncomeLevels < MinIncome {
		errs = append(errs, fmt.Sprintf("cannot take loan, income would fall below %d", MinIncome))
	}
	return validationFrom(errs)
}

// executeLoan grants £30 against three income levels.
func (g *GameState) executeLoan(action Action) Result {
	if v := g.validateLoan(action); !v.Valid {
		return failure(v)
	}

	var changes []StateChange
	p := g.Player(action.PlayerID)

	p.Money += loanAmount
	changes = append(changes, StateChange{
		Type:     ChangeMoney,
		PlayerID: action.PlayerID,
		Details:  map[string]any{"amount": loanAmount, "new_total": p.Money, "reason": "loan"},
	})

	p.addIncome(-loanIncomeLevels)
	changes = append(changes, StateChange{
		Type:     ChangeIncome,
		PlayerID: action.PlayerID,
		Details:  map[string]any{"change": -loanIncomeLevels, "new_income": p.Income},
	})

	discardActionCard(p, action.CardID, &changes)
	p.ActionsRemaining--
	g.touch()

	return Result{Success: true, Errors: []string{}, StateChanges: changes}
}

// validateScout requires a wild-free hand, exactly two extra discards from
// hand, and wild cards left in the supply.
func (g *GameState) validateScout(action Action) Validation {
	p := g.Player(action.PlayerID)
	if p == nil {
		return invalid("player not found")
	}

	var errs []string
	if !p.HasCard(action.CardID) {
		errs = append(errs, "card not in hand")
	}
	if p.HasWildCard() {
		errs = append(errs, "cannot scout while holding wild cards")
	}
	if len(action.DiscardCardIDs) != 2 {
		errs = append(errs, "must discard 2 additional cards to scout")
	}
	for _, id := range action.DiscardCardIDs {
		if !p.HasCard(id) {
			errs = append(errs, fmt.Sprintf("card %s not in hand", id))
		}
	}
	if len(g.Deck.WildLocation) == 0 || len(g.Deck.WildIndustry) == 0 {
		errs = append(errs, "no wild cards available")
	}
	return validationFrom(errs)
}

// executeScout trades three cards for one wild location and one wild
// industry card.
func (g *GameState) executeScout(action Action) Result {
	if v := g.validateScout(action); !v.Valid {
		return failure(v)
	}

	var changes []StateChange
	p := g.Player(action.PlayerID)

	discardActionCard(p, action.CardID, &changes)
	for _, id := range action.DiscardCardIDs {
		discardActionCard(p, id, &changes)
	}

	wildLocation := g.Deck.WildLocation[0]
	g.Deck.WildLocation = g.Deck.WildLocation[1:]
	p.Hand = append(p.Hand, wildLocation)
	changes = append(changes, StateChange{
		Type:     ChangeCardDrawn,
		PlayerID: action.PlayerID,
		Details:  map[string]any{"card_id": wildLocation.ID, "card_type": CardWildLocation},
	})

	wildIndustry := g.Deck.WildIndustry[0]
	g.Deck.WildIndustry = g.Deck.WildIndustry[1:]
	p.Hand = append(p.Hand, wildIndustry)
	changes = append(changes, StateChange{
		Type:     ChangeCardDrawn,
		PlayerID: action.PlayerID,
		Details:  map[string]any{"card_id": wildIndustry.ID, "card_type": CardWildIndustry},
	})

	p.ActionsRemaining--
	g.touch()

	return Result{Success: true, Errors: []string{}, StateChanges: changes}
}

// validatePass only needs the card to burn.
func (g *GameState) validatePass(action Action) Validation {
	p := g.Player(action.PlayerID)
	if p == nil {
		return invalid("player not found")
	}
	var errs []string
	if !p.HasCard(action.CardID) {
		errs = append(errs, "card not in hand")
	}
	return validationFrom(errs)
}

// executePass burns the card and ends the player's involvement this turn.
func (g *GameState) executePass(action Action) Result {
	if v := g.validatePass(action); !v.Valid {
		return failure(v)
	}

	var changes []StateChange
	p := g.Player(action.PlayerID)

	discardActionCard(p, action.CardID, &changes)
	p.HasPassed = true
	p.ActionsRemaining = 0
	g.touch()

	return Result{Success: true, Errors: []string{}, StateChanges: changes}
}
