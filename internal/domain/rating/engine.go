package rating

import (
	"context"
	"sort"
	"time"

	"github.com/okian/elo/internal/domain/model"
	"github.com/okian/elo/internal/domain/types"
	"github.com/okian/elo/pkg/logger"
)

// Update describes the effect of one committed match.
type Update struct {
	Index      int // position of the match in the applied sequence
	Match      model.Match
	Outcome    model.Outcome
	Expected   [2]float64 // player 1, player 2
	Before     [2]float64
	After      [2]float64
	Registered []string // players created by this match
}

// Delta returns the rating change of player 1 and player 2.
func (u Update) Delta() (float64, float64) {
	return u.After[0] - u.Before[0], u.After[1] - u.Before[1]
}

// Engine owns the player registry and rating histories for one run.
// Matches must be applied in order; the engine is not safe for concurrent use.
type Engine struct {
	initialRating float64
	kFactor       float64
	logger        logger.Logger
	observers     []func(context.Context, Update)

	players map[string]*model.Player
	order   []string // registration order
	history map[string]*History

	applied int
	first   time.Time
	last    time.Time
}

// NewEngine creates an engine with an empty registry.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		initialRating: DefaultInitialRating,
		kFactor:       DefaultKFactor,
		logger:        logger.Discard(),
		players:       make(map[string]*model.Player),
		history:       make(map[string]*History),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Apply rates a single match. A malformed match returns an error wrapping
// model.ErrMalformedRecord and leaves the engine untouched.
func (e *Engine) Apply(ctx context.Context, m model.Match) (Update, error) {
	if err := m.Check(e.applied); err != nil {
		return Update{}, err
	}
	date := model.CivilDate(m.Date)

	u := Update{Index: e.applied, Match: m, Outcome: m.Outcome()}
	p1, created := e.register(m.Player1, date)
	if created {
		u.Registered = append(u.Registered, m.Player1)
	}
	p2, created := e.register(m.Player2, date)
	if created {
		u.Registered = append(u.Registered, m.Player2)
	}

	s1, s2 := m.Scores()
	switch u.Outcome {
	case model.Player1Won:
		p1.GamesWon++
		p2.GamesLost++
	case model.Player2Won:
		p2.GamesWon++
		p1.GamesLost++
	default:
		e.logger.Info(ctx, "match without winner, scored as draw",
			logger.Int("match_no", m.SequenceNumber),
			logger.String("winner", m.Winner),
		)
	}

	u.Before = [2]float64{p1.Rating, p2.Rating}
	u.Expected = [2]float64{Expected(p1.Rating, p2.Rating), Expected(p2.Rating, p1.Rating)}
	u.After = [2]float64{
		Next(p1.Rating, p1.KFactor, s1, u.Expected[0]),
		Next(p2.Rating, p2.KFactor, s2, u.Expected[1]),
	}

	p1.Rating, p2.Rating = u.After[0], u.After[1]
	e.history[p1.Name].record(date, p1.Rating)
	e.history[p2.Name].record(date, p2.Rating)
	p1.GamesPlayed++
	p2.GamesPlayed++

	if e.applied == 0 || date.Before(e.first) {
		e.first = date
	}
	if date.After(e.last) {
		e.last = date
	}
	e.applied++

	e.logger.Debug(ctx, "match applied",
		logger.Int("match_no", m.SequenceNumber),
		logger.String("player_1", p1.Name),
		logger.Float64("rating_1", p1.Rating),
		logger.String("player_2", p2.Name),
		logger.Float64("rating_2", p2.Rating),
	)
	for _, fn := range e.observers {
		fn(ctx, u)
	}
	return u, nil
}

// register returns the player for name, creating it with defaults and a
// history seeded one day before date when absent.
func (e *Engine) register(name string, date time.Time) (*model.Player, bool) {
	if p, ok := e.players[name]; ok {
		return p, false
	}
	p := &model.Player{Name: name, Rating: e.initialRating, KFactor: e.kFactor}
	e.players[name] = p
	e.order = append(e.order, name)
	e.history[name] = newHistory(date.AddDate(0, 0, -1), e.initialRating)
	return p, true
}

// Player returns a copy of the named player.
func (e *Engine) Player(name string) (model.Player, bool) {
	p, ok := e.players[name]
	if !ok {
		return model.Player{}, false
	}
	return *p, true
}

// Applied returns the number of matches applied so far.
func (e *Engine) Applied() int { return e.applied }

// Result snapshots the current engine state. Later Apply calls do not
// affect the returned value.
func (e *Engine) Result() *Result {
	r := &Result{
		Players: make(map[string]model.Player, len(e.players)),
		History: make(map[string][]types.HistoryPoint, len(e.history)),
		Order:   append([]string(nil), e.order...),
		summary: types.Summary{
			TotalMatches:   e.applied,
			TotalPlayers:   len(e.players),
			FirstMatchDate: e.first,
			LastMatchDate:  e.last,
		},
	}
	for name, p := range e.players {
		r.Players[name] = *p
	}
	for name, h := range e.history {
		r.History[name] = h.Series()
	}
	return r
}

// Process applies every match in order and returns the final state. Any
// malformed match aborts the run; no partial result is returned.
func Process(ctx context.Context, matches []model.Match, opts ...Option) (*Result, error) {
	e := NewEngine(opts...)
	for _, m := range matches {
		if _, err := e.Apply(ctx, m); err != nil {
			return nil, err
		}
	}
	return e.Result(), nil
}

// Result is the output of a rating run.
type Result struct {
	Players map[string]model.Player
	History map[string][]types.HistoryPoint
	Order   []string // registration order
	summary types.Summary
}

// Summary returns match count, player count and the date span of the run.
func (r *Result) Summary() types.Summary { return r.summary }

// Series returns the date-ordered rating history of name.
func (r *Result) Series(name string) ([]types.HistoryPoint, bool) {
	s, ok := r.History[name]
	return s, ok
}

// Standings returns every player sorted by rating, highest first. Equal
// ratings keep registration order and share a rank.
func (r *Result) Standings() []types.Standing {
	out := make([]types.Standing, 0, len(r.Order))
	for _, name := range r.Order {
		p := r.Players[name]
		out = append(out, types.Standing{
			Name:        p.Name,
			Rating:      p.Rating,
			Rounded:     Round(p.Rating),
			GamesPlayed: p.GamesPlayed,
			GamesWon:    p.GamesWon,
			GamesLost:   p.GamesLost,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	for i := range out {
		if i > 0 && out[i].Rating == out[i-1].Rating {
			out[i].Rank = out[i-1].Rank
			continue
		}
		out[i].Rank = i + 1
	}
	return out
}
