package config_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/okian/elo/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New(context.Background())

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.MatchesFile, convey.ShouldEqual, "matches.json")
			convey.So(cfg.InitialRating, convey.ShouldEqual, 1200.0)
			convey.So(cfg.KFactor, convey.ShouldEqual, 32.0)
			convey.So(cfg.ValidateSequence, convey.ShouldBeTrue)
			convey.So(cfg.ValidateWinners, convey.ShouldBeFalse)
			convey.So(cfg.ValidateDates, convey.ShouldBeFalse)
			convey.So(cfg.StrictValidation, convey.ShouldBeFalse)
			convey.So(cfg.Serve, convey.ShouldBeFalse)
			convey.So(cfg.MaxStandingsLimit, convey.ShouldEqual, 100)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given a default config", t, func() {
		cfg := config.New(context.Background())

		cases := []struct {
			name   string
			mutate func(*config.Config)
			msg    string
		}{
			{"empty addr", func(c *config.Config) { c.Addr = "" }, "addr must not be empty"},
			{"addr without port", func(c *config.Config) { c.Addr = "localhost" }, "addr"},
			{"zero k-factor", func(c *config.Config) { c.KFactor = 0 }, "k_factor"},
			{"NaN k-factor", func(c *config.Config) { c.KFactor = math.NaN() }, "k_factor"},
			{"infinite rating", func(c *config.Config) { c.InitialRating = math.Inf(1) }, "initial_rating"},
			{"zero limit", func(c *config.Config) { c.MaxStandingsLimit = 0 }, "max_standings_limit"},
		}
		for _, tc := range cases {
			convey.Convey("When it has "+tc.name, func() {
				tc.mutate(cfg)
				err := cfg.Validate()

				convey.Convey("Then it is rejected", func() {
					convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
					convey.So(err.Error(), convey.ShouldContainSubstring, tc.msg)
				})
			})
		}
	})
}
