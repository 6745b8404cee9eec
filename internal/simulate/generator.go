package simulate

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/okian/elo/internal/domain/model"
	"github.com/okian/elo/internal/domain/rating"
	"github.com/okian/elo/pkg/logger"
)

// seedStream separates the two PCG words so nearby seeds do not collide.
const seedStream = 0x9e3779b97f4a7c15

// Player is a generated player and the strength that drives its results.
type Player struct {
	Name     string
	Strength float64
}

// Result is a generated history.
type Result struct {
	Players []Player // sorted by strength, strongest first
	Matches []model.Match
	Draws   int
}

// Generate builds a history of cfg.Matches matches. Match numbers run from
// 1, dates are non-decreasing and every winner is a participant or a draw.
func Generate(ctx context.Context, cfg Config, opts ...Option) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := options{logger: logger.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^seedStream))

	players := make([]Player, cfg.Players)
	for i := range players {
		players[i] = Player{
			Name:     fmt.Sprintf("Player %02d", i+1),
			Strength: rating.DefaultInitialRating + rng.NormFloat64()*cfg.Spread,
		}
	}

	start := model.CivilDate(cfg.Start)
	res := &Result{Matches: make([]model.Match, 0, cfg.Matches)}
	for i := 0; i < cfg.Matches; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("generate matches: %w", err)
		}
		a := rng.IntN(len(players))
		b := rng.IntN(len(players) - 1)
		if b >= a {
			b++
		}
		p1, p2 := players[a], players[b]

		winner := model.Draw
		if rng.Float64() >= cfg.DrawRate {
			winner = p2.Name
			if rng.Float64() < rating.Expected(p1.Strength, p2.Strength) {
				winner = p1.Name
			}
		} else {
			res.Draws++
		}

		day := i * cfg.Days / max(cfg.Matches, 1)
		res.Matches = append(res.Matches, model.Match{
			SequenceNumber: i + 1,
			Player1:        p1.Name,
			Player2:        p2.Name,
			Winner:         winner,
			Date:           start.AddDate(0, 0, day),
		})
	}

	sort.SliceStable(players, func(i, j int) bool { return players[i].Strength > players[j].Strength })
	res.Players = players

	o.logger.Info(ctx, "generated matches",
		logger.Int("matches", len(res.Matches)),
		logger.Int("players", len(players)),
		logger.Int("draws", res.Draws),
	)
	return res, nil
}

// Option applies a configuration option to Generate.
type Option func(*options)

type options struct {
	logger logger.Logger
}

// WithLogger sets the logger used to report the generated history.
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
