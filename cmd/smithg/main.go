// Command smithg runs a turn-based artificial economy simulation and
// ranks the registered agents by final balance.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/forgesim/smithg/internal/agent"
	"github.com/forgesim/smithg/internal/bots"
	"github.com/forgesim/smithg/internal/config"
	"github.com/forgesim/smithg/internal/economy"
	"github.com/forgesim/smithg/internal/engine"
	"github.com/forgesim/smithg/internal/market"
	"github.com/forgesim/smithg/internal/persistence"
	"github.com/forgesim/smithg/internal/report"
)

const builtinRandomBots = 20

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML config file")
		format     = flag.String("format", report.FormatText, "output format: text, json or csv")
		rounds     = flag.Int("rounds", 0, "override the number of rounds")
		seed       = flag.Int64("seed", 0, "override the random seed")
		dbPath     = flag.String("db", "", "record the run in a SQLite database at this path")
		noBuiltins = flag.Bool("no-builtin-bots", false, "do not register the builtin example bots")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			slog.Error("failed to load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *rounds > 0 {
		cfg.Rounds = *rounds
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	items := make([]economy.Item, 0, len(cfg.Items))
	for _, item := range cfg.Items {
		items = append(items, economy.Item(item))
	}

	var mkt market.Market
	switch cfg.Market {
	case config.MarketShuffle:
		mkt = market.NewShuffleMarket(items, cfg.Seed)
	default:
		mkt = market.NewDriftMarket(items, cfg.Seed)
	}

	world := engine.New(items, mkt)
	world.FuelInit = economy.Amount(cfg.FuelInit)
	world.FuelIncrease = economy.Amount(cfg.FuelIncrease)
	world.BalanceInit = economy.Amount(cfg.BalanceInit)
	world.BalanceIncrease = economy.Amount(cfg.BalanceIncrease)
	world.WorkToMoney = economy.Amount(cfg.WorkToMoney)
	world.TradeFee = economy.FuelCost(cfg.TradeFee)

	var registry agent.Registry
	if !*noBuiltins {
		for i := 0; i < builtinRandomBots; i++ {
			registry.Register(bots.Random(cfg.Seed+int64(i)), fmt.Sprintf("random_bot_%d", i))
		}
		registry.Register(bots.Worker(), "work_bot")
	}
	world.AddAgentsFromRegistry(&registry)

	if len(world.Containers) == 0 {
		slog.Error("no agents registered, nothing to simulate")
		os.Exit(1)
	}

	results, err := world.Run(cfg.Rounds)
	if err != nil {
		slog.Error("simulation aborted", "error", err)
		os.Exit(1)
	}

	// Rank by final balance, highest first.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Balance > results[j].Balance
	})

	if err := report.Write(os.Stdout, *format, results); err != nil {
		slog.Error("failed to write report", "error", err)
		os.Exit(1)
	}

	if *dbPath != "" {
		db, err := persistence.Open(*dbPath)
		if err != nil {
			slog.Error("failed to open run database", "path", *dbPath, "error", err)
			os.Exit(1)
		}
		defer db.Close()

		runID, err := db.SaveRun(cfg, results)
		if err != nil {
			slog.Error("failed to record run", "error", err)
			os.Exit(1)
		}
		slog.Info("run recorded", "run_id", runID, "path", *dbPath)
	}
}
