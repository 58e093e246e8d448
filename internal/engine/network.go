package engine

// Network connectivity over the dynamic link graph. The static adjacency
// graph only constrains where links may be placed; reachability questions are
// answered over placed links alone, ignoring link ownership.

// Connected reports whether two locations are joined by placed links.
// Every location is connected to itself.
func (g *GameState) Connected(from, to Location) bool {
	if from == to {
		return true
	}
	visited := map[Location]bool{from: true}
	queue := []Location{from}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == to {
			return true
		}
		for _, conn := range g.Board.Connections {
			if conn.PlayerID == "" || !conn.Touches(current) {
				continue
			}
			next := conn.Other(current)
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}

// HasNetworkAt reports whether the player's network includes the location:
// either the player has an industry there, or one of the player's own links
// touches it.
func (g *GameState) HasNetworkAt(playerID string, loc Location) bool {
	for _, tile := range g.PlacedTiles {
		if tile.PlayerID == playerID && tile.Location == loc {
			return true
		}
	}
	for _, conn := range g.Board.Connections {
		if conn.PlayerID == playerID && conn.Touches(loc) {
			return true
		}
	}
	return false
}

// PlayerNetwork returns every location in the player's network: locations
// holding the player's industries, endpoints of the player's links, and
// everything reachable from those through any placed link.
func (g *GameState) PlayerNetwork(playerID string) map[Location]bool {
	network := make(map[Location]bool)

	for _, tile := range g.PlacedTiles {
		if tile.PlayerID == playerID {
			network[tile.Location] = true
		}
	}
	for _, conn := range g.Board.Connections {
		if conn.PlayerID == playerID {
			network[conn.From] = true
			network[conn.To] = true
		}
	}

	// Expand through placed links of any owner until fixpoint.
	for changed := true; changed; {
		changed = false
		for loc := range network {
			for _, conn := range g.Board.Connections {
				if conn.PlayerID == "" || !conn.Touches(loc) {
					continue
				}
				other := conn.Other(loc)
				if !network[other] {
					network[other] = true
					changed = true
				}
			}
		}
	}
	return network
}

// BuildableLocations returns where the player may build. A player with no
// tiles on the board may build anywhere; otherwise only inside their network.
func (g *GameState) BuildableLocations(playerID string) map[Location]bool {
	hasTiles := false
	for _, tile := range g.PlacedTiles {
		if tile.PlayerID == playerID {
			hasTiles = true
			break
		}
	}
	if !hasTiles {
		all := make(map[Location]bool, len(boardLocations))
		for _, loc := range boardLocations {
			all[loc.Name] = true
		}
		return all
	}
	return g.PlayerNetwork(playerID)
}

// FindPath returns a shortest path (by link count) between two locations over
// placed links, or nil if none exists.
func (g *GameState) FindPath(from, to Location) []Location {
	if from == to {
		return []Location{from}
	}
	visited := map[Location]bool{from: true}
	type node struct {
		loc  Location
		path []Location
	}
	queue := []node{{loc: from, path: []Location{from}}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, conn := range g.Board.Connections {
			if conn.PlayerID == "" || !conn.Touches(current.loc) {
				continue
			}
			next := conn.Other(current.loc)
			if next == to {
				return append(append([]Location{}, current.path...), next)
			}
			if !visited[next] {
				visited[next] = true
				path := append(append([]Location{}, current.path...), next)
				queue = append(queue, node{loc: next, path: path})
			}
		}
	}
	return nil
}
