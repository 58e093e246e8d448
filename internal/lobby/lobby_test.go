package lobby

import "testing"

func TestLobbyLifecycle(t *testing.T) {
	l := NewLobby("abc", 2)

	if err := l.Join("p1", "Ada"); err != nil {
		t.Fatalf("Join p1: %v", err)
	}
	if err := l.Join("p2", "Ben"); err != nil {
		t.Fatalf("Join p2: %v", err)
	}
	if err := l.Join("p3", "Cyd"); err == nil {
		t.Fatal("third player should be rejected from a 2-seat lobby")
	}

	if l.CanStart() {
		t.Fatal("lobby should not start before everyone is ready")
	}
	l.SetReady("p1", true)
	l.SetReady("p2", true)
	if !l.CanStart() {
		t.Fatal("full and ready lobby should be startable")
	}

	if err := l.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := l.Join("p3", "Cyd"); err == nil {
		t.Fatal("joining after start should fail")
	}

	ids := l.PlayerIDs()
	if len(ids) != 2 || ids[0] != "p1" || ids[1] != "p2" {
		t.Fatalf("expected join-order ids [p1 p2], got %v", ids)
	}
}

func TestLobbyRejoinKeepsSeat(t *testing.T) {
	l := NewLobby("abc", 2)
	if err := l.Join("p1", "Ada"); err != nil {
		t.Fatalf("Join: %v", err)
	}
	if err := l.Join("p1", "Ada L"); err != nil {
		t.Fatalf("rejoin: %v", err)
	}
	players := l.GetPlayers()
	if len(players) != 1 || players[0].Name != "Ada L" {
		t.Fatalf("rejoin should update the name in place, got %v", players)
	}
}

func TestManagerPlayerCountBounds(t *testing.T) {
	m := NewManager()
	if _, err := m.Create(1); err == nil {
		t.Fatal("1-player lobby should be rejected")
	}
	if _, err := m.Create(5); err == nil {
		t.Fatal("5-player lobby should be rejected")
	}
	l, err := m.Create(3)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got := m.Get(l.ID); got != l {
		t.Fatal("Get should return the created lobby")
	}
	m.Remove(l.ID)
	if m.Get(l.ID) != nil {
		t.Fatal("Remove should drop the lobby")
	}
}
