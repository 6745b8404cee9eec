package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/elo/internal/adapters/matchfile"
	"github.com/okian/elo/internal/domain/rating"
	"github.com/okian/elo/internal/simulate"
	"github.com/okian/elo/pkg/logger"
)

const dateLayout = "2006-01-02"

func main() {
	def := simulate.DefaultConfig()
	var (
		output   = flag.String("output", "matches.json", "Match file to write")
		players  = flag.Int("players", def.Players, "Number of players")
		matches  = flag.Int("matches", def.Matches, "Number of matches")
		days     = flag.Int("days", def.Days, "Days the matches are spread over")
		start    = flag.String("start", def.Start.Format(dateLayout), "Date of the first match (YYYY-MM-DD)")
		drawRate = flag.Float64("draw-rate", def.DrawRate, "Probability of a draw")
		spread   = flag.Float64("spread", def.Spread, "Standard deviation of hidden strengths")
		seed     = flag.Uint64("seed", def.Seed, "Random seed")
	)
	flag.Parse()

	if err := logger.InitWithWriter(os.Stderr); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.Named("gen-matches")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	startDate, err := time.Parse(dateLayout, *start)
	if err != nil {
		log.Error(ctx, "invalid start date", logger.String("start", *start), logger.Error(err))
		os.Exit(2)
	}

	cfg := simulate.Config{
		Players:  *players,
		Matches:  *matches,
		Days:     *days,
		Start:    startDate,
		DrawRate: *drawRate,
		Spread:   *spread,
		Seed:     *seed,
	}
	if err := generate(ctx, cfg, *output, log); err != nil {
		log.Error(ctx, "generation failed", logger.Error(err))
		os.Exit(1)
	}
}

// generate writes a synthetic history to output, rates it and logs how
// well the resulting standings recover the hidden strengths.
func generate(ctx context.Context, cfg simulate.Config, output string, log logger.Logger) error {
	res, err := simulate.Generate(ctx, cfg, simulate.WithLogger(log))
	if err != nil {
		return err
	}
	if err := matchfile.Save(ctx, output, res.Matches); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	for _, p := range res.Players {
		log.Debug(ctx, "hidden strength", logger.String("player", p.Name), logger.Float64("strength", p.Strength))
	}

	rated, err := rating.Process(ctx, res.Matches)
	if err != nil {
		return fmt.Errorf("rate generated matches: %w", err)
	}
	agreement, err := simulate.Agreement(res.Players, rated.Standings())
	if err != nil {
		return err
	}
	log.Info(ctx, "match file written",
		logger.String("output", output),
		logger.Int("matches", len(res.Matches)),
		logger.Int("draws", res.Draws),
		logger.Float64("agreement", agreement),
	)
	return nil
}
