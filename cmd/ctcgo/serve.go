package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rgehrsitz/ctcgo/internal/ats"
	"github.com/rgehrsitz/ctcgo/internal/calculation"
	"github.com/rgehrsitz/ctcgo/internal/config"
	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/rgehrsitz/ctcgo/internal/logging"
	"github.com/rgehrsitz/ctcgo/internal/salary"
	"github.com/rgehrsitz/ctcgo/internal/server"
	"github.com/rgehrsitz/ctcgo/internal/stats"
	"github.com/rgehrsitz/ctcgo/internal/store"
)

// appRuntime is what serve, seed and stats share: config, logger and store.
type appRuntime struct {
	cfg   *config.AppConfig
	log   *zap.Logger
	store store.Store
	rules *domain.SalaryRules
}

func openRuntime(cmd *cobra.Command) (*appRuntime, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadAppConfig(path)
	if err != nil {
		return nil, err
	}
	level, _ := cmd.Flags().GetString("log-level")
	log, err := logging.New(cfg.Logging, level)
	if err != nil {
		return nil, err
	}

	rules, err := config.NewRulesParser().LoadOrDefault(cfg.Rules.File)
	if err != nil {
		return nil, err
	}

	var st store.Store
	if cfg.Database.DSN != "" {
		st, err = store.Connect(cfg.Database.DSN, cfg.Database.AutoMigrate, log)
		if err != nil {
			return nil, err
		}
	} else {
		log.Info("no database configured, using in-memory store")
		st = store.NewMemoryStore()
	}
	return &appRuntime{cfg: cfg, log: log, store: st, rules: rules}, nil
}

func (rt *appRuntime) Close() {
	if err := rt.store.Close(); err != nil {
		rt.log.Warn("closing store", zap.Error(err))
	}
	_ = rt.log.Sync()
}

// seedCityTax turns the professional tax table into stored city profiles.
func seedCityTax(rules domain.SalaryRules) []domain.CityTaxProfile {
	cities := make([]string, 0, len(rules.ProfessionalTax.Cities))
	for c := range rules.ProfessionalTax.Cities {
		cities = append(cities, c)
	}
	sort.Strings(cities)

	profiles := make([]domain.CityTaxProfile, 0, len(cities))
	for _, c := range cities {
		hra := rules.HRA.NonMetroPercent
		if rules.HRA.IsMetro(c) {
			hra = rules.HRA.MetroPercent
		}
		profiles = append(profiles, domain.CityTaxProfile{
			City:                c,
			ProfessionalTax:     rules.ProfessionalTax.Cities[c],
			HRAExemptionPercent: hra,
			DefaultTaxRegime:    "new",
		})
	}
	return profiles
}

func (rt *appRuntime) seed(ctx context.Context) (store.SeedResult, error) {
	res, err := store.Seed(ctx, rt.store, seedCityTax(*rt.rules))
	if err != nil {
		return res, err
	}
	rt.log.Info("seed complete",
		zap.Int("cities", res.Cities),
		zap.Int("companies", res.Companies),
		zap.Int("designations", res.Designations),
		zap.Int("cityTax", res.CityTax))
	return res, nil
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if _, err := rt.seed(ctx); err != nil {
			return err
		}

		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			rt.cfg.Server.Address = addr
		}

		engine := calculation.NewSalaryEngineWithRules(*rt.rules,
			calculation.NewCityTaxLookupWithConfig(rt.store, rt.rules.ProfessionalTax))
		engine.SetLogger(rt.log.Sugar())

		limiter := ats.NewUsageLimiter(rt.store, rt.cfg.Ats.MaxTries, time.Duration(rt.cfg.Ats.ResetHours)*time.Hour)
		srv := server.New(rt.cfg.Server,
			salary.NewService(engine, rt.store, rt.log),
			ats.NewService(rt.store, limiter, rt.cfg.Server.MaxUploadSize, rt.log),
			stats.NewService(rt.store),
			rt.log, version)
		return srv.Run(ctx)
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert reference lists and city tax data into the configured database",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		res, err := rt.seed(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d cities, %d companies, %d designations, %d city tax rows\n",
			res.Cities, res.Companies, res.Designations, res.CityTax)
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print usage statistics from the configured database",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		s, err := stats.NewService(rt.store).Compute(cmd.Context())
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides server.address)")
}
