package cmd

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/eyesofbug/VoyageIQ/internal/catalog"
	"github.com/eyesofbug/VoyageIQ/internal/models"
	"github.com/eyesofbug/VoyageIQ/internal/output"
	"github.com/eyesofbug/VoyageIQ/internal/planner"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "voyageiq",
	Short: "Plans budget-aware, geographically coherent travel itineraries",
	Long: `voyageiq builds multi-day travel itineraries from a read-only attraction
catalog, prices them against a budget, substitutes over-budget activities and
scores the result along budget, experience, transit-efficiency and risk
dimensions.`,
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a trip plan for the requested destinations",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logger, pl := mustSetup()
		defer logger.Sync()

		sink, err := output.ForConfig(cfg)
		if err != nil {
			logger.Fatal("failed to initialise output", zap.Error(err))
		}
		defer sink.Close()

		plan := pl.BuildPlan(requestFromFlags())
		if err := sink.WritePlan(plan); err != nil {
			logger.Fatal("failed to write plan", zap.Error(err))
		}
	},
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank every catalog city for the requested trip parameters",
	Run: func(cmd *cobra.Command, args []string) {
		_, logger, pl := mustSetup()
		defer logger.Sync()

		req := requestFromFlags()
		bar := progressbar.Default(int64(len(pl.Catalog().Cities())), "scoring destinations")
		recs := pl.RankDestinations(req, func(string) { bar.Add(1) })

		limit := viper.GetInt("top")
		if limit <= 0 || limit > len(recs) {
			limit = len(recs)
		}
		fmt.Println()
		for i := 0; i < limit; i++ {
			rec := recs[i]
			fmt.Printf("%2d. %-18s overall %3d%% | budget %3d%% | est. ₹%d\n",
				i+1, rec.City, rec.Plan.Scores.Overall, rec.Plan.Budget.Score, rec.Plan.Budget.TotalEstimated)
		}
	},
}

func mustSetup() (*models.Config, *zap.Logger, *planner.Planner) {
	cfg, err := models.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)

	cat, err := catalog.Load(cfg.DataDir)
	if err != nil {
		logger.Fatal("failed to load reference catalog", zap.String("data_dir", cfg.DataDir), zap.Error(err))
	}

	pl := planner.New(cat,
		planner.WithRand(rand.New(rand.NewSource(cfg.Seed))),
		planner.WithLogger(logger),
	)
	return cfg, logger, pl
}

func newLogger(cfg *models.Config) *zap.Logger {
	level := zapcore.InfoLevel
	switch cfg.LogLevel {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	}

	var zcfg zap.Config
	if cfg.LogFormat == "json" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	logger, _ := zcfg.Build()
	return logger
}

func requestFromFlags() models.PlanRequest {
	return models.PlanRequest{
		Destinations: viper.GetStringSlice("destinations"),
		Days:         viper.GetInt("days"),
		Budget:       viper.GetFloat64("budget"),
		Month:        viper.GetString("month"),
		Interests:    viper.GetStringSlice("interests"),
		Pace:         models.Pace(viper.GetString("pace")),
		TravelTier:   models.TravelTier(viper.GetString("travel-type")),
		GroupType:    models.GroupType(viper.GetString("group")),
		Students:     viper.GetInt("students"),
		Staff:        viper.GetInt("staff"),
		Drivers:      viper.GetInt("drivers"),
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")

	rootCmd.PersistentFlags().StringSlice("destinations", []string{"Munnar"}, "Destination cities, in visit order")
	rootCmd.PersistentFlags().Int("days", 3, "Number of trip days")
	rootCmd.PersistentFlags().Float64("budget", 50000, "Total budget (per student for college groups)")
	rootCmd.PersistentFlags().String("month", "December", "Travel month")
	rootCmd.PersistentFlags().StringSlice("interests", []string{"Scenic", "Relaxation"}, "Interest tags")
	rootCmd.PersistentFlags().String("pace", string(models.PaceModerate), "Travel pace (Relaxed, Moderate, Fast)")
	rootCmd.PersistentFlags().String("travel-type", string(models.TierStandard), "Travel tier (Budget, Standard, Luxury)")
	rootCmd.PersistentFlags().String("group", string(models.GroupSolo), "Group type")
	rootCmd.PersistentFlags().Int("students", 0, "Number of students (college groups)")
	rootCmd.PersistentFlags().Int("staff", 0, "Number of staff (college groups)")
	rootCmd.PersistentFlags().Int("drivers", 0, "Number of drivers (college groups)")
	rootCmd.PersistentFlags().Int("top", 10, "How many ranked destinations to print")

	viper.BindPFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(recommendCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
