package engine

// Orchestrator entry points. ValidateAction and ExecuteAction both re-derive
// the current player from turn order, so an out-of-turn submission is
// rejected before any per-kind rule runs.

// ValidateAction checks an action without mutating state.
func (g *GameState) ValidateAction(action Action) Validation {
	if v := g.validateTurn(action); !v.Valid {
		return v
	}
	switch action.Type {
	case ActionBuild:
		return g.validateBuild(action)
	case ActionNetwork:
		return g.validateNetwork(action)
	case ActionSell:
		return g.validateSell(action)
	case ActionDevelop:
		return g.validateDevelop(action)
	case ActionLoan:
		return g.validateLoan(action)
	case ActionScout:
		return g.validateScout(action)
	case ActionPass:
		return g.validatePass(action)
	default:
		return invalid("unknown action type %q", action.Type)
	}
}

// ExecuteAction validates and applies an action. On success, if the acting
// player is out of actions or has passed, the turn advances (which may end
// the round, the era, or the game).
func (g *GameState) ExecuteAction(action Action) Result {
	if v := g.validateTurn(action); !v.Valid {
		return failure(v)
	}

	var result Result
	switch action.Type {
	case ActionBuild:
		result = g.executeBuild(action)
	case ActionNetwork:
		result = g.executeNetwork(action)
	case ActionSell:
		result = g.executeSell(action)
	case ActionDevelop:
		result = g.executeDevelop(action)
	case ActionLoan:
		result = g.executeLoan(action)
	case ActionScout:
		result = g.executeScout(action)
	case ActionPass:
		result = g.executePass(action)
	default:
		return failure(invalid("unknown action type %q", action.Type))
	}

	if result.Success {
		if p := g.CurrentPlayer(); p != nil && (p.ActionsRemaining == 0 || p.HasPassed) {
			g.endTurn()
		}
	}
	return result
}

// validateTurn enforces the preconditions common to every action: the game
// is in play and the acting player is the current player with actions left.
func (g *GameState) validateTurn(action Action) Validation {
	if g.Phase != PhasePlaying {
		return invalid("game is not in progress")
	}
	current := g.CurrentPlayer()
	if current == nil {
		return invalid("no current player")
	}
	if current.PlayerID != action.PlayerID {
		return invalid("not your turn")
	}
	if current.HasPassed {
		return invalid("you have already passed")
	}
	if current.ActionsRemaining <= 0 {
		return invalid("no actions remaining")
	}
	return validationOK()
}

// AvailableActions returns the seven action kinds whenever the current
// player can act. Granular legality is left to per-action validation.
func (g *GameState) AvailableActions() []ActionType {
	p := g.CurrentPlayer()
	if g.Phase != PhasePlaying || p == nil || !p.CanAct() {
		return []ActionType{}
	}
	return AllActionTypes()
}
