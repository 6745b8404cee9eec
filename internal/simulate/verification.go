package simulate

import (
	"fmt"

	"github.com/okian/elo/internal/domain/types"
)

// Agreement is the fraction of player pairs whose standings order matches
// their hidden strength order. 1 is perfect, 0.5 is chance.
func Agreement(players []Player, standings []types.Standing) (float64, error) {
	pos := make(map[string]int, len(standings))
	for i, s := range standings {
		pos[s.Name] = i
	}
	var concordant, pairs int
	for i := 0; i < len(players); i++ {
		pi, ok := pos[players[i].Name]
		if !ok {
			continue
		}
		for j := i + 1; j < len(players); j++ {
			pj, ok := pos[players[j].Name]
			if !ok {
				continue
			}
			pairs++
			// players is strongest first, so i should be ranked above j.
			if pi < pj {
				concordant++
			}
		}
	}
	if pairs == 0 {
		return 0, fmt.Errorf("no rated player pairs to compare")
	}
	return float64(concordant) / float64(pairs), nil
}
