package engine

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

func testGame(t *testing.T, players int) *GameState {
	t.Helper()
	ids := make([]string, players)
	for i := range ids {
		ids[i] = fmt.Sprintf("p%d", i+1)
	}
	n := 0
	g, err := NewGame(Config{
		PlayerCount: players,
		Rand:        rand.New(rand.NewPCG(11, 0)),
		NewID: func() string {
			n++
			return fmt.Sprintf("id-%03d", n)
		},
	}, ids)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func TestRecalcTurnOrderStableSort(t *testing.T) {
	g := &GameState{
		Players: []*PlayerState{
			{PlayerID: "a", MoneySpentThisRound: 10},
			{PlayerID: "b", MoneySpentThisRound: 3},
			{PlayerID: "c", MoneySpentThisRound: 3},
			{PlayerID: "d", MoneySpentThisRound: 0},
		},
		TurnOrder: []TurnOrderEntry{
			{PlayerID: "a", Order: 0},
			{PlayerID: "b", Order: 1},
			{PlayerID: "c", Order: 2},
			{PlayerID: "d", Order: 3},
		},
	}
	g.recalcTurnOrder()

	want := []string{"d", "b", "c", "a"}
	for i, entry := range g.TurnOrder {
		if entry.PlayerID != want[i] {
			t.Fatalf("position %d: want %s, got %s (order %v)", i, want[i], entry.PlayerID, g.TurnOrder)
		}
		if entry.Order != i {
			t.Errorf("position %d: order index should be %d, got %d", i, i, entry.Order)
		}
	}

	seen := map[string]bool{}
	for _, entry := range g.TurnOrder {
		seen[entry.PlayerID] = true
	}
	if len(seen) != 4 {
		t.Fatalf("turn order must stay a permutation, got %v", g.TurnOrder)
	}
}

func TestEndTurnRefillsHandAndAdvances(t *testing.T) {
	g := testGame(t, 2)
	cp := g.CurrentPlayer()
	cp.Hand = cp.Hand[:5]

	g.endTurn()

	if len(cp.Hand) != 8 {
		t.Errorf("hand should refill to 8, got %d", len(cp.Hand))
	}
	if g.CurrentPlayer().PlayerID == cp.PlayerID {
		t.Error("endTurn should advance to the next player")
	}
}

func TestCanalEraTransition(t *testing.T) {
	g := testGame(t, 2)
	p1 := g.Players[0]
	p2 := g.Players[1]

	link := &Connection{ID: "link-1", From: Belper, To: Derby, LinkType: LinkCanal, PlayerID: p1.PlayerID}
	g.Board.Connections = append(g.Board.Connections, link)
	p1.PlacedLinks = append(p1.PlacedLinks, link.ID)

	mill := &PlacedTile{
		IndustryTile: IndustryTile{
			ID: "mill-1", PlayerID: p1.PlayerID, Industry: IndustryCottonMill,
			Level: 1, VP: 3, Flipped: true,
		},
		Location: Belper,
	}
	g.PlacedTiles[mill.ID] = mill
	p1.PlacedTiles = append(p1.PlacedTiles, mill.ID)
	g.Board.Locations[Belper].Slots[0].TileID = mill.ID

	pot := &PlacedTile{
		IndustryTile: IndustryTile{ID: "pot-1", PlayerID: p2.PlayerID, Industry: IndustryPottery, Level: 1},
		Location:     Worcester,
	}
	g.PlacedTiles[pot.ID] = pot
	p2.PlacedTiles = append(p2.PlacedTiles, pot.ID)

	brew := &PlacedTile{
		IndustryTile: IndustryTile{ID: "brew-1", PlayerID: p2.PlayerID, Industry: IndustryBrewery, Level: 2, Resources: 0},
		Location:     BurtonOnTrent,
	}
	g.PlacedTiles[brew.ID] = brew
	p2.PlacedTiles = append(p2.PlacedTiles, brew.ID)

	for _, p := range g.Players {
		p.Hand = nil
	}
	g.endRound()

	if g.Era != EraRail {
		t.Fatalf("expected rail era, got %s", g.Era)
	}
	if g.Round != 1 || !g.IsFirstRound || g.CurrentPlayerIndex != 0 {
		t.Errorf("round state should reset: round=%d first=%v index=%d", g.Round, g.IsFirstRound, g.CurrentPlayerIndex)
	}

	// Belper touches 1 location, Derby touches 4; plus the flipped mill's VP.
	if p1.VictoryPoints != 5+3 {
		t.Errorf("p1 should score 5 link VP and 3 tile VP, got %d", p1.VictoryPoints)
	}
	if len(g.Board.Connections) != 0 || len(p1.PlacedLinks) != 0 {
		t.Error("links should be swept off the board at the transition")
	}

	if g.PlacedTiles[mill.ID] != nil {
		t.Error("level 1 cotton mill should be removed")
	}
	if g.Board.Locations[Belper].Slots[0].TileID != "" {
		t.Error("removed tile should free its board slot")
	}
	if g.PlacedTiles[pot.ID] == nil {
		t.Error("level 1 pottery should survive the transition")
	}
	if brew.Resources != 2 {
		t.Errorf("breweries should hold 2 beer in the rail era, got %d", brew.Resources)
	}

	for _, m := range g.Board.Merchants {
		if m.HasBeer && m.Beer != 1 {
			t.Errorf("merchant %s should restock to 1 beer, got %d", m.ID, m.Beer)
		}
	}

	for _, p := range g.Players {
		if len(p.Hand) != 8 {
			t.Errorf("player %s should be dealt a fresh 8-card hand, got %d", p.PlayerID, len(p.Hand))
		}
		if len(p.DiscardPile) != 0 {
			t.Errorf("player %s discard pile should be reshuffled away, got %d", p.PlayerID, len(p.DiscardPile))
		}
		if p.ActionsRemaining != 1 {
			t.Errorf("first rail round should grant 1 action, got %d", p.ActionsRemaining)
		}
	}
}

func TestRailEraEndFinishesGame(t *testing.T) {
	g := testGame(t, 2)
	g.Era = EraRail

	flipped := &PlacedTile{
		IndustryTile: IndustryTile{ID: "t-1", PlayerID: "p1", Industry: IndustryPottery, Level: 2, VP: 1, Flipped: true},
		Location:     Worcester,
	}
	g.PlacedTiles[flipped.ID] = flipped

	for _, p := range g.Players {
		p.Hand = nil
	}
	g.endRound()

	if g.Phase != PhaseFinished {
		t.Fatalf("expected finished phase, got %s", g.Phase)
	}
	if g.PlacedTiles[flipped.ID] == nil {
		t.Error("endgame scoring must not remove tiles")
	}
	if g.Players[0].VictoryPoints != 1 {
		t.Errorf("flipped tile VP should score at game end, got %d", g.Players[0].VictoryPoints)
	}
}

func TestCollectIncome(t *testing.T) {
	g := testGame(t, 2)
	p := g.Players[0]

	p.Income = 10
	p.Money = 17
	if err := g.CollectIncome(p.PlayerID); err != nil {
		t.Fatalf("CollectIncome: %v", err)
	}
	if p.Money != 27 {
		t.Errorf("positive income pays out, got £%d", p.Money)
	}

	p.Income = -5
	if err := g.CollectIncome(p.PlayerID); err != nil {
		t.Fatalf("CollectIncome: %v", err)
	}
	if p.Money != 22 {
		t.Errorf("negative income paid from cash, got £%d", p.Money)
	}
}

func TestCollectIncomeLiquidatesTiles(t *testing.T) {
	g := testGame(t, 2)
	p := g.Players[0]

	tile := &PlacedTile{
		IndustryTile: IndustryTile{
			ID: "t-1", PlayerID: p.PlayerID, Industry: IndustryManufacturer,
			Level: 2, Cost: TileCost{Money: 12},
		},
		Location: Birmingham,
	}
	g.PlacedTiles[tile.ID] = tile
	p.PlacedTiles = append(p.PlacedTiles, tile.ID)
	g.Board.Locations[Birmingham].Slots[0].TileID = tile.ID

	p.Money = 2
	p.Income = -10
	p.VictoryPoints = 5
	if err := g.CollectIncome(p.PlayerID); err != nil {
		t.Fatalf("CollectIncome: %v", err)
	}

	// Owed £10: £2 cash, then the tile at half cost (£6), leaving £2 as VP loss.
	if g.PlacedTiles[tile.ID] != nil {
		t.Error("tile should be liquidated")
	}
	if g.Board.Locations[Birmingham].Slots[0].TileID != "" {
		t.Error("liquidated tile should free its slot")
	}
	if p.Money != 0 {
		t.Errorf("money should be exhausted, got £%d", p.Money)
	}
	if p.VictoryPoints != 3 {
		t.Errorf("residual £2 shortfall should cost 2 VP, got %d", p.VictoryPoints)
	}
}

func TestWinnerTieBreaks(t *testing.T) {
	g := testGame(t, 2)
	g.Players[0].VictoryPoints = 20
	g.Players[1].VictoryPoints = 20
	g.Players[0].Income = 5
	g.Players[1].Income = 8

	if w := g.Winner(); w.PlayerID != g.Players[1].PlayerID {
		t.Errorf("higher income should break the VP tie, got %s", w.PlayerID)
	}

	g.Players[1].Income = 5
	g.Players[0].Money = 9
	g.Players[1].Money = 4
	if w := g.Winner(); w.PlayerID != g.Players[0].PlayerID {
		t.Errorf("higher money should break the income tie, got %s", w.PlayerID)
	}
}

func TestIncomeClamp(t *testing.T) {
	p := &PlayerState{Income: 28}
	p.addIncome(7)
	if p.Income != MaxIncome {
		t.Errorf("income should clamp at %d, got %d", MaxIncome, p.Income)
	}
	p.addIncome(-50)
	if p.Income != MinIncome {
		t.Errorf("income should clamp at %d, got %d", MinIncome, p.Income)
	}
}
