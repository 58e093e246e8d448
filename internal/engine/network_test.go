package engine_test

import (
	"testing"

	"github.com/vivekkr1809/brass-birmingham/internal/engine"
)

func placeLink(g *engine.GameState, id string, from, to engine.Location) {
	g.Board.Connections = append(g.Board.Connections, &engine.Connection{
		ID: id, From: from, To: to, LinkType: engine.LinkCanal, PlayerID: "p1",
	})
}

func TestConnectedSymmetric(t *testing.T) {
	g := newTestGame(t, 2)
	placeLink(g, "l1", engine.Birmingham, engine.Coventry)
	placeLink(g, "l2", engine.Coventry, engine.Oxford)

	pairs := [][2]engine.Location{
		{engine.Birmingham, engine.Oxford},
		{engine.Birmingham, engine.Coventry},
		{engine.Birmingham, engine.Derby},
		{engine.Oxford, engine.Gloucester},
	}
	for _, pair := range pairs {
		if g.Connected(pair[0], pair[1]) != g.Connected(pair[1], pair[0]) {
			t.Errorf("connectivity must be symmetric for %s-%s", pair[0], pair[1])
		}
	}

	if !g.Connected(engine.Birmingham, engine.Oxford) {
		t.Error("Birmingham should reach Oxford through Coventry")
	}
	if g.Connected(engine.Birmingham, engine.Derby) {
		t.Error("Birmingham should not reach Derby without links")
	}
	if !g.Connected(engine.Derby, engine.Derby) {
		t.Error("every location is connected to itself")
	}
}

func TestPlayerNetworkExpandsThroughAnyLink(t *testing.T) {
	g := newTestGame(t, 2)

	tile := &engine.PlacedTile{
		IndustryTile: engine.IndustryTile{ID: "t-1", PlayerID: "p1", Industry: engine.IndustryManufacturer},
		Location:     engine.Birmingham,
	}
	g.PlacedTiles[tile.ID] = tile

	// An opponent's link still carries p1's network outward.
	g.Board.Connections = append(g.Board.Connections, &engine.Connection{
		ID: "l1", From: engine.Birmingham, To: engine.Coventry, LinkType: engine.LinkCanal, PlayerID: "p2",
	})

	network := g.PlayerNetwork("p1")
	if !network[engine.Birmingham] || !network[engine.Coventry] {
		t.Errorf("network should include Birmingham and Coventry, got %v", network)
	}
	if network[engine.Oxford] {
		t.Error("Oxford is not reachable and should not be in the network")
	}
}

func TestBuildableLocationsFirstTileException(t *testing.T) {
	g := newTestGame(t, 2)

	all := g.BuildableLocations("p1")
	if len(all) != len(engine.AllLocations()) {
		t.Fatalf("a player with no tiles may build anywhere, got %d locations", len(all))
	}

	tile := &engine.PlacedTile{
		IndustryTile: engine.IndustryTile{ID: "t-1", PlayerID: "p1", Industry: engine.IndustryManufacturer},
		Location:     engine.Birmingham,
	}
	g.PlacedTiles[tile.ID] = tile

	limited := g.BuildableLocations("p1")
	if !limited[engine.Birmingham] {
		t.Error("own industry location must be buildable")
	}
	if limited[engine.Oxford] {
		t.Error("locations outside the network must not be buildable")
	}
}

func TestFindPath(t *testing.T) {
	g := newTestGame(t, 2)
	placeLink(g, "l1", engine.Birmingham, engine.Coventry)
	placeLink(g, "l2", engine.Coventry, engine.Oxford)

	path := g.FindPath(engine.Birmingham, engine.Oxford)
	want := []engine.Location{engine.Birmingham, engine.Coventry, engine.Oxford}
	if len(path) != len(want) {
		t.Fatalf("expected path %v, got %v", want, path)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("expected path %v, got %v", want, path)
		}
	}

	if p := g.FindPath(engine.Birmingham, engine.Derby); p != nil {
		t.Errorf("expected no path to Derby, got %v", p)
	}
}
