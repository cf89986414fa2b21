package main

import "sort"

// Ranking is one row of a group's leaderboard.
type Ranking struct {
	NombreJugador           string `json:"nombreJugador"`
	CantidadPartidasGanadas int    `json:"cantidadPartidasGanadas"`
}

// sortedRankings orders players by wins, most first. Equal counts are
// ordered by name so responses are deterministic.
func sortedRankings(players map[string]int) []Ranking {
	out := make([]Ranking, 0, len(players))
	for name, wins := range players {
		out = append(out, Ranking{NombreJugador: name, CantidadPartidasGanadas: wins})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CantidadPartidasGanadas != out[j].CantidadPartidasGanadas {
			return out[i].CantidadPartidasGanadas > out[j].CantidadPartidasGanadas
		}
		return out[i].NombreJugador < out[j].NombreJugador
	})
	return out
}
