package engine_test

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/vivekkr1809/brass-birmingham/internal/engine"
)

func seqIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%03d", prefix, n)
	}
}

func newTestGame(t *testing.T, players int) *engine.GameState {
	t.Helper()
	ids := make([]string, players)
	for i := range ids {
		ids[i] = fmt.Sprintf("p%d", i+1)
	}
	g, err := engine.NewGame(engine.Config{
		PlayerCount: players,
		Rand:        rand.New(rand.NewPCG(7, 0)),
		NewID:       seqIDs("id"),
	}, ids)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func TestNewGameTwoPlayers(t *testing.T) {
	g := newTestGame(t, 2)

	if g.MaxRounds != 10 {
		t.Fatalf("expected 10 max rounds, got %d", g.MaxRounds)
	}
	if g.Phase != engine.PhasePlaying {
		t.Fatalf("expected Playing phase, got %s", g.Phase)
	}
	if g.Era != engine.EraCanal {
		t.Fatalf("expected canal era, got %s", g.Era)
	}
	for _, p := range g.Players {
		if p.Money != 17 {
			t.Errorf("player %s should start with £17, got £%d", p.PlayerID, p.Money)
		}
		if p.Income != 10 {
			t.Errorf("player %s should start with income 10, got %d", p.PlayerID, p.Income)
		}
		if len(p.Hand) != 8 {
			t.Errorf("player %s should have 8 cards, got %d", p.PlayerID, len(p.Hand))
		}
		if len(p.DiscardPile) != 1 {
			t.Errorf("player %s should have 1 discarded card, got %d", p.PlayerID, len(p.DiscardPile))
		}
		if p.LinkTilesRemaining != 14 {
			t.Errorf("player %s should have 14 link tiles, got %d", p.PlayerID, p.LinkTilesRemaining)
		}
		if p.ActionsRemaining != 1 {
			t.Errorf("player %s should have 1 action in the first round, got %d", p.PlayerID, p.ActionsRemaining)
		}
	}

	seen := map[string]bool{}
	for _, entry := range g.TurnOrder {
		seen[entry.PlayerID] = true
	}
	if len(seen) != 2 {
		t.Fatalf("turn order should be a permutation of both players, got %v", g.TurnOrder)
	}
}

func TestMaxRoundsByPlayerCount(t *testing.T) {
	tests := []struct {
		players   int
		maxRounds int
	}{
		{2, 10},
		{3, 9},
		{4, 8},
	}
	for _, tt := range tests {
		g := newTestGame(t, tt.players)
		if g.MaxRounds != tt.maxRounds {
			t.Errorf("%d players: expected %d rounds, got %d", tt.players, tt.maxRounds, g.MaxRounds)
		}
	}
}

func TestNewGameRejectsBadSetup(t *testing.T) {
	if _, err := engine.NewGame(engine.Config{PlayerCount: 5}, []string{"a", "b", "c", "d", "e"}); err == nil {
		t.Error("expected error for 5 players")
	}
	if _, err := engine.NewGame(engine.Config{PlayerCount: 2}, []string{"a"}); err == nil {
		t.Error("expected error for player id/count mismatch")
	}
}

func TestBuildCottonMill(t *testing.T) {
	g := newTestGame(t, 2)
	cp := g.CurrentPlayer()

	// A free coal source: an opponent's mine at Derby, linked to Belper.
	g.Board.Connections = append(g.Board.Connections, &engine.Connection{
		ID: "link-1", From: engine.Belper, To: engine.Derby,
		LinkType: engine.LinkCanal, PlayerID: "someone",
	})
	mine := &engine.PlacedTile{
		IndustryTile: engine.IndustryTile{
			ID: "mine-1", PlayerID: "someone", Industry: engine.IndustryCoalMine,
			Level: 2, Produces: engine.ResourceCoal, Resources: 2,
		},
		Location: engine.Derby,
	}
	g.PlacedTiles[mine.ID] = mine

	card := engine.Card{ID: "card-belper", Type: engine.CardLocation, Location: engine.Belper}
	cp.Hand = append(cp.Hand, card)

	coal := g.FindCoalSources(cp.PlayerID, engine.Belper, 1)
	if len(coal) != 1 || coal[0].Cost != 0 || coal[0].TileID != "mine-1" {
		t.Fatalf("expected one free coal source from the mine, got %+v", coal)
	}

	res := g.ExecuteAction(engine.Action{
		PlayerID:    cp.PlayerID,
		Type:        engine.ActionBuild,
		CardID:      card.ID,
		Location:    engine.Belper,
		Industry:    engine.IndustryCottonMill,
		CoalSources: coal,
	})
	if !res.Success {
		t.Fatalf("build failed: %v", res.Errors)
	}

	if cp.Money != 5 {
		t.Errorf("level 1 cotton mill with free coal should cost £12, money is £%d", cp.Money)
	}
	if mine.Resources != 1 {
		t.Errorf("mine should have 1 coal left, got %d", mine.Resources)
	}

	levelOnes := 0
	for _, tile := range cp.Mat[engine.IndustryCottonMill] {
		if tile.Level == 1 {
			levelOnes++
		}
	}
	if levelOnes != 2 {
		t.Errorf("mat should hold 2 level 1 cotton mills after the build, got %d", levelOnes)
	}

	slot := g.Board.Locations[engine.Belper].Slots[0]
	placed := g.PlacedTile(slot.TileID)
	if placed == nil || placed.Industry != engine.IndustryCottonMill || placed.PlayerID != cp.PlayerID {
		t.Fatalf("expected the player's cotton mill in the Belper slot, got %+v", placed)
	}
	if len(cp.PlacedTiles) != 1 || cp.PlacedTiles[0] != placed.ID {
		t.Errorf("placed tile should be tracked on the player, got %v", cp.PlacedTiles)
	}
}

func TestBuildCoalMineForceSellsToMarket(t *testing.T) {
	g := newTestGame(t, 2)
	cp := g.CurrentPlayer()

	// Cannock reaches the Shrewsbury merchant through links via Wolverhampton.
	for i, pair := range [][2]engine.Location{
		{engine.Cannock, engine.Wolverhampton},
		{engine.Wolverhampton, engine.Shrewsbury},
	} {
		g.Board.Connections = append(g.Board.Connections, &engine.Connection{
			ID: fmt.Sprintf("link-%d", i), From: pair[0], To: pair[1],
			LinkType: engine.LinkCanal, PlayerID: cp.PlayerID,
		})
	}

	card := engine.Card{ID: "card-cannock", Type: engine.CardLocation, Location: engine.Cannock}
	cp.Hand = append(cp.Hand, card)

	res := g.ExecuteAction(engine.Action{
		PlayerID: cp.PlayerID,
		Type:     engine.ActionBuild,
		CardID:   card.ID,
		Location: engine.Cannock,
		Industry: engine.IndustryCoalMine,
	})
	if !res.Success {
		t.Fatalf("build failed: %v", res.Errors)
	}

	slot := g.Board.Locations[engine.Cannock].Slots[0]
	placed := g.PlacedTile(slot.TileID)
	if placed == nil {
		t.Fatal("expected a placed coal mine at Cannock")
	}
	if !placed.Flipped || placed.Resources != 0 {
		t.Errorf("mine should flip after dumping output to market, got flipped=%v resources=%d", placed.Flipped, placed.Resources)
	}
	// Level 1 mine: £5 cost, 2 coal sold into the £1 tier's open space and
	// the next-most expensive open capacity.
	if cp.Money <= 17-5 {
		t.Errorf("mine output should earn money back, got £%d", cp.Money)
	}
	if cp.Income <= 10 {
		t.Errorf("flipping the mine should raise income, got %d", cp.Income)
	}
}

func TestNetworkAction(t *testing.T) {
	g := newTestGame(t, 2)
	cp := g.CurrentPlayer()
	card := cp.Hand[0]

	res := g.ExecuteAction(engine.Action{
		PlayerID: cp.PlayerID,
		Type:     engine.ActionNetwork,
		CardID:   card.ID,
		Connections: []engine.ConnectionSpec{
			{From: engine.Birmingham, To: engine.Coventry, LinkType: engine.LinkCanal},
		},
	})
	if !res.Success {
		t.Fatalf("network action failed: %v", res.Errors)
	}

	if cp.Money != 14 {
		t.Errorf("canal link should cost £3, money is £%d", cp.Money)
	}
	if cp.LinkTilesRemaining != 13 {
		t.Errorf("expected 13 link tiles left, got %d", cp.LinkTilesRemaining)
	}
	link := g.Board.LinkBetween(engine.Birmingham, engine.Coventry)
	if link == nil || link.PlayerID != cp.PlayerID {
		t.Fatalf("expected the player's link between Birmingham and Coventry, got %+v", link)
	}
}

func TestNetworkRejectsNonAdjacent(t *testing.T) {
	g := newTestGame(t, 2)
	cp := g.CurrentPlayer()

	v := g.ValidateAction(engine.Action{
		PlayerID: cp.PlayerID,
		Type:     engine.ActionNetwork,
		CardID:   cp.Hand[0].ID,
		Connections: []engine.ConnectionSpec{
			{From: engine.Belper, To: engine.Birmingham, LinkType: engine.LinkCanal},
		},
	})
	if v.Valid {
		t.Fatal("expected non-adjacent link to be rejected")
	}
}

func TestSellWithMerchantBeer(t *testing.T) {
	g := newTestGame(t, 2)
	cp := g.CurrentPlayer()

	mill := &engine.PlacedTile{
		IndustryTile: engine.IndustryTile{
			ID: "mill-1", PlayerID: cp.PlayerID, Industry: engine.IndustryCottonMill,
			Level: 2, IncomeBonus: 4, VP: 5, BeerRequired: 1,
		},
		Location: engine.Nanwich,
	}
	g.PlacedTiles[mill.ID] = mill
	cp.PlacedTiles = append(cp.PlacedTiles, mill.ID)

	g.Board.Connections = append(g.Board.Connections, &engine.Connection{
		ID: "link-1", From: engine.Nanwich, To: engine.Warrington,
		LinkType: engine.LinkCanal, PlayerID: cp.PlayerID,
	})

	var merchant *engine.MerchantTile
	for _, m := range g.Board.Merchants {
		if m.Location == engine.Warrington && m.Industry == engine.IndustryCottonMill {
			merchant = m
			break
		}
	}
	if merchant == nil {
		t.Fatal("expected a cotton merchant at Warrington in a 2-player game")
	}

	beer := g.FindBeerSources(cp.PlayerID, engine.Nanwich, 1, true)
	if len(beer) != 1 || beer[0].Kind != engine.SourceMerchant {
		t.Fatalf("expected merchant beer source, got %+v", beer)
	}

	res := g.ExecuteAction(engine.Action{
		PlayerID: cp.PlayerID,
		Type:     engine.ActionSell,
		CardID:   cp.Hand[0].ID,
		Sales: []engine.SaleSpec{
			{TileID: mill.ID, MerchantID: merchant.ID, BeerSources: []engine.ResourceSource{beer[0]}},
		},
	})
	if !res.Success {
		t.Fatalf("sell failed: %v", res.Errors)
	}

	if !mill.Flipped {
		t.Error("sold mill should be flipped")
	}
	if cp.Income != 14 {
		t.Errorf("income should rise by the mill's bonus to 14, got %d", cp.Income)
	}
	// Warrington merchant pays £5 when its beer is drunk.
	if cp.Money != 22 {
		t.Errorf("merchant money bonus should apply, money is £%d", cp.Money)
	}
	if merchant.Beer != 0 {
		t.Errorf("merchant barrel should be empty, got %d", merchant.Beer)
	}
}

func TestSellRequiresNominatedBeer(t *testing.T) {
	g := newTestGame(t, 2)
	cp := g.CurrentPlayer()

	mill := &engine.PlacedTile{
		IndustryTile: engine.IndustryTile{
			ID: "mill-1", PlayerID: cp.PlayerID, Industry: engine.IndustryCottonMill,
			Level: 2, IncomeBonus: 4, VP: 5, BeerRequired: 1,
		},
		Location: engine.Nanwich,
	}
	g.PlacedTiles[mill.ID] = mill
	cp.PlacedTiles = append(cp.PlacedTiles, mill.ID)

	g.Board.Connections = append(g.Board.Connections, &engine.Connection{
		ID: "link-1", From: engine.Nanwich, To: engine.Warrington,
		LinkType: engine.LinkCanal, PlayerID: cp.PlayerID,
	})

	var merchant *engine.MerchantTile
	for _, m := range g.Board.Merchants {
		if m.Location == engine.Warrington && m.Industry == engine.IndustryCottonMill {
			merchant = m
			break
		}
	}
	if merchant == nil {
		t.Fatal("expected a cotton merchant at Warrington in a 2-player game")
	}

	incomeBefore := cp.Income
	// Beer is available on the board, but the sale names no source for it.
	res := g.ExecuteAction(engine.Action{
		PlayerID: cp.PlayerID,
		Type:     engine.ActionSell,
		CardID:   cp.Hand[0].ID,
		Sales: []engine.SaleSpec{
			{TileID: mill.ID, MerchantID: merchant.ID},
		},
	})
	if res.Success {
		t.Fatal("sale without nominated beer sources must fail")
	}

	if mill.Flipped {
		t.Error("mill must stay unflipped after a rejected sale")
	}
	if cp.Income != incomeBefore {
		t.Errorf("income must be unchanged, got %d", cp.Income)
	}
	if merchant.Beer != 1 {
		t.Errorf("merchant barrel must be untouched, got %d", merchant.Beer)
	}
}

func TestDevelopRemovesTile(t *testing.T) {
	g := newTestGame(t, 2)
	cp := g.CurrentPlayer()

	works := &engine.PlacedTile{
		IndustryTile: engine.IndustryTile{
			ID: "manu-1", PlayerID: cp.PlayerID, Industry: engine.IndustryManufacturer, Level: 1,
		},
		Location: engine.Birmingham,
	}
	g.PlacedTiles[works.ID] = works
	cp.PlacedTiles = append(cp.PlacedTiles, works.ID)

	iron := g.FindIronSources(cp.PlayerID, 1)
	if len(iron) != 1 || iron[0].Cost != 2 {
		t.Fatalf("expected one £2 market iron source, got %+v", iron)
	}

	res := g.ExecuteAction(engine.Action{
		PlayerID:    cp.PlayerID,
		Type:        engine.ActionDevelop,
		CardID:      cp.Hand[0].ID,
		TileIDs:     []string{works.ID},
		IronSources: iron,
	})
	if !res.Success {
		t.Fatalf("develop failed: %v", res.Errors)
	}

	if g.PlacedTile(works.ID) != nil {
		t.Error("developed tile should be removed from the board")
	}
	if len(cp.PlacedTiles) != 0 {
		t.Errorf("developed tile should leave the player's placed list, got %v", cp.PlacedTiles)
	}
	if cp.Money != 15 {
		t.Errorf("iron should cost £2, money is £%d", cp.Money)
	}
}

func TestLoan(t *testing.T) {
	g := newTestGame(t, 2)
	cp := g.CurrentPlayer()

	cp.Income = -8
	v := g.ValidateAction(engine.Action{
		PlayerID: cp.PlayerID, Type: engine.ActionLoan, CardID: cp.Hand[0].ID,
	})
	if v.Valid {
		t.Fatal("loan at income -8 should be rejected")
	}

	cp.Income = 5
	res := g.ExecuteAction(engine.Action{
		PlayerID: cp.PlayerID, Type: engine.ActionLoan, CardID: cp.Hand[0].ID,
	})
	if !res.Success {
		t.Fatalf("loan failed: %v", res.Errors)
	}
	if cp.Money != 47 {
		t.Errorf("loan should grant £30, money is £%d", cp.Money)
	}
	if cp.Income != 2 {
		t.Errorf("loan should drop income by 3 levels to 2, got %d", cp.Income)
	}
}

func TestScout(t *testing.T) {
	g := newTestGame(t, 2)
	cp := g.CurrentPlayer()

	wild := engine.Card{ID: "wild-x", Type: engine.CardWildLocation}
	cp.Hand = append(cp.Hand, wild)
	v := g.ValidateAction(engine.Action{
		PlayerID:       cp.PlayerID,
		Type:           engine.ActionScout,
		CardID:         cp.Hand[0].ID,
		DiscardCardIDs: []string{cp.Hand[1].ID, cp.Hand[2].ID},
	})
	if v.Valid {
		t.Fatal("scout with a wild card in hand should be rejected")
	}
	cp.Hand = cp.Hand[:len(cp.Hand)-1]

	res := g.ExecuteAction(engine.Action{
		PlayerID:       cp.PlayerID,
		Type:           engine.ActionScout,
		CardID:         cp.Hand[0].ID,
		DiscardCardIDs: []string{cp.Hand[1].ID, cp.Hand[2].ID},
	})
	if !res.Success {
		t.Fatalf("scout failed: %v", res.Errors)
	}

	wilds := 0
	for _, c := range cp.Hand {
		if c.IsWild() {
			wilds++
		}
	}
	if wilds != 2 {
		t.Errorf("scout should add exactly 2 wild cards, got %d", wilds)
	}
	if len(g.Deck.WildLocation) != 3 || len(g.Deck.WildIndustry) != 3 {
		t.Errorf("wild supplies should each lose one card, got %d/%d",
			len(g.Deck.WildLocation), len(g.Deck.WildIndustry))
	}
}

func TestPassEndsTurn(t *testing.T) {
	g := newTestGame(t, 2)
	cp := g.CurrentPlayer()

	res := g.ExecuteAction(engine.Action{
		PlayerID: cp.PlayerID, Type: engine.ActionPass, CardID: cp.Hand[0].ID,
	})
	if !res.Success {
		t.Fatalf("pass failed: %v", res.Errors)
	}
	if !cp.HasPassed || cp.ActionsRemaining != 0 {
		t.Errorf("pass should zero actions and set the flag, got actions=%d passed=%v", cp.ActionsRemaining, cp.HasPassed)
	}
	if g.CurrentPlayer().PlayerID == cp.PlayerID {
		t.Error("turn should advance to the next player after a pass")
	}
}

func TestInvalidActionLeavesStateUnchanged(t *testing.T) {
	g := newTestGame(t, 2)

	var other *engine.PlayerState
	for _, p := range g.Players {
		if p.PlayerID != g.CurrentPlayer().PlayerID {
			other = p
		}
	}

	before, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	action := engine.Action{PlayerID: other.PlayerID, Type: engine.ActionLoan, CardID: other.Hand[0].ID}
	if v := g.ValidateAction(action); v.Valid {
		t.Fatal("out-of-turn action should not validate")
	}
	if res := g.ExecuteAction(action); res.Success {
		t.Fatal("out-of-turn action should not execute")
	}

	after, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(before) != string(after) {
		t.Error("failed execution must leave the game state unchanged")
	}
}

func TestAvailableActions(t *testing.T) {
	g := newTestGame(t, 2)
	if got := g.AvailableActions(); len(got) != 7 {
		t.Fatalf("expected all 7 action kinds, got %v", got)
	}

	g.CurrentPlayer().ActionsRemaining = 0
	if got := g.AvailableActions(); len(got) != 0 {
		t.Fatalf("expected no actions for an exhausted player, got %v", got)
	}
}
