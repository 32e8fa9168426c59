package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/zen-systems/agentrouter/pkg/cli"
	"github.com/zen-systems/agentrouter/pkg/config"
	"github.com/zen-systems/agentrouter/pkg/history"
	"github.com/zen-systems/agentrouter/pkg/router"
	"github.com/zen-systems/agentrouter/pkg/stats"
	"github.com/zen-systems/agentrouter/pkg/version"
)

var (
	configFile  string
	statsFile   string
	historyFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "agentrouter",
		Short:   "Intelligent task routing for agent teams",
		Version: version.String(),
		Long: `AgentRouter assigns free-text task descriptions to the best agent
	based on keyword classification, static routing rules, and an optional
	optimization mode (quality, cost, or speed).`,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to routing config file")
	rootCmd.PersistentFlags().StringVar(&statsFile, "stats-file", "", "path to statistics file")
	rootCmd.PersistentFlags().StringVar(&historyFile, "history-file", "", "path to decision history database")

	rootCmd.AddCommand(routeCmd())
	rootCmd.AddCommand(bestCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(workloadCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(agentsCmd())
	rootCmd.AddCommand(routesCmd())
	rootCmd.AddCommand(validateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig loads application config, honoring the --config, --stats-file,
// and --history-file overrides.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error

	if configFile != "" {
		cfg, err = config.LoadWithRoutingFile(configFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if statsFile != "" {
		cfg.StatsPath = statsFile
	}
	if historyFile != "" {
		cfg.HistoryPath = historyFile
	}
	return cfg, nil
}

func newRouter(cfg *config.Config) (*router.Router, error) {
	return router.New(cfg.RoutingConfig, stats.NewFileStore(cfg.StatsPath))
}

func routeCmd() *cobra.Command {
	var optimizeFlag string
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "route [description]",
		Short: "Route a task description to the best agent",
		Long: `Classifies the task description by keyword matching and selects a
	primary and fallback agent from the routing rules.

	Use --optimize cost to pick the cheapest capable agent, or
	--optimize speed to prefer a faster agent with matching strengths.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			optimize, err := router.ParseOptimize(optimizeFlag)
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			r, err := newRouter(cfg)
			if err != nil {
				return err
			}

			decision, err := r.Route(args[0], optimize)
			if err != nil {
				return err
			}

			recordHistory(cfg, args[0], string(optimize), decision)

			if jsonFlag {
				data, err := json.MarshalIndent(decision, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			printDecision(decision)
			return nil
		},
	}

	cmd.Flags().StringVar(&optimizeFlag, "optimize", "quality", "optimization mode (quality, cost, speed)")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "print the decision as JSON")

	return cmd
}

// recordHistory appends the decision to the audit log. Failures degrade to
// a warning; the route itself has already succeeded.
func recordHistory(cfg *config.Config, description, optimize string, decision *router.Decision) {
	log, err := history.Open(cfg.HistoryPath)
	if err != nil {
		cli.Warning(fmt.Sprintf("history unavailable: %v", err))
		return
	}
	defer log.Close()

	rec := &history.Record{
		Description:   description,
		TaskType:      decision.TaskType,
		Confidence:    decision.Confidence,
		Primary:       decision.Primary,
		Fallback:      decision.Fallback,
		Optimize:      optimize,
		EstimatedCost: decision.EstimatedCost,
	}
	if err := log.Append(context.Background(), rec); err != nil {
		cli.Warning(fmt.Sprintf("failed to record history: %v", err))
	}
}

func printDecision(decision *router.Decision) {
	divider := strings.Repeat("=", 60)

	fmt.Println()
	cli.Header(divider)
	cli.Header("ROUTING DECISION")
	cli.Header(divider)
	fmt.Printf("Task type: %s\n", decision.TaskType)
	fmt.Printf("Confidence: %.0f%%\n", decision.Confidence*100)
	fmt.Println()
	cli.Success(fmt.Sprintf("Primary agent: %s", decision.Primary))
	fmt.Printf("Fallback: %s\n", decision.Fallback)
	fmt.Printf("Estimated cost: %s\n", decision.EstimatedCost)
	fmt.Println()
	fmt.Printf("Reason: %s\n", decision.Reason)
	if len(decision.Alternatives) > 0 {
		fmt.Printf("Alternatives: %s\n", strings.Join(decision.Alternatives, ", "))
	}
	cli.Header(divider)
	fmt.Println()
}

func bestCmd() *cobra.Command {
	var typeFlag string

	cmd := &cobra.Command{
		Use:   "best",
		Short: "Show the best agent for a task type",
		RunE: func(cmd *cobra.Command, args []string) error {
			if typeFlag == "" {
				return fmt.Errorf("--type is required")
			}

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			r, err := newRouter(cfg)
			if err != nil {
				return err
			}

			fmt.Printf("\nBest agent for %q: %s\n\n", typeFlag, r.BestAgent(typeFlag))
			return nil
		},
	}

	cmd.Flags().StringVar(&typeFlag, "type", "", "task type (required)")

	return cmd
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show routing statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			tally, err := stats.NewFileStore(cfg.StatsPath).Load()
			if err != nil {
				return err
			}

			fmt.Println()
			cli.Header("=== ROUTING STATISTICS ===")
			fmt.Printf("Total routes: %d\n\n", tally.TotalRoutes)

			if len(tally.ByAgent) > 0 {
				cli.Header("By agent")
				cli.PrintTable([]string{"Agent", "Routes"}, countRows(tally.ByAgent))
				fmt.Println()
			}
			if len(tally.ByTaskType) > 0 {
				cli.Header("By task type")
				cli.PrintTable([]string{"Task type", "Routes"}, countRows(tally.ByTaskType))
				fmt.Println()
			}
			return nil
		},
	}
}

// countRows renders a count map as table rows sorted by count descending,
// then name, so output is stable.
func countRows(counts map[string]int) [][]string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] == counts[names[j]] {
			return names[i] < names[j]
		}
		return counts[names[i]] > counts[names[j]]
	})

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name, fmt.Sprintf("%d", counts[name])})
	}
	return rows
}

func workloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "workload",
		Short: "Show the current workload distribution across agents",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			tally, err := stats.NewFileStore(cfg.StatsPath).Load()
			if err != nil {
				return err
			}

			fmt.Println()
			cli.Header("=== CURRENT WORKLOAD ===")
			if len(tally.ByAgent) == 0 {
				cli.Dim("No routes recorded yet")
				fmt.Println()
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			for _, row := range countRows(tally.ByAgent) {
				fmt.Fprintf(w, "  %s\t%s tasks\n", row[0], row[1])
			}
			w.Flush()
			fmt.Println()
			return nil
		},
	}
}

func historyCmd() *cobra.Command {
	var limitFlag int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent routing decisions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			log, err := history.Open(cfg.HistoryPath)
			if err != nil {
				return err
			}
			defer log.Close()

			records, err := log.Recent(context.Background(), limitFlag)
			if err != nil {
				return err
			}

			if len(records) == 0 {
				cli.Dim("No routing history yet")
				return nil
			}

			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				desc := rec.Description
				if len(desc) > 48 {
					desc = desc[:45] + "..."
				}
				rows = append(rows, []string{
					rec.RoutedAt.Local().Format("2006-01-02 15:04"),
					rec.TaskType,
					rec.Primary,
					rec.Optimize,
					desc,
				})
			}

			fmt.Println()
			cli.PrintTable([]string{"When", "Task type", "Agent", "Optimize", "Description"}, rows)
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().IntVar(&limitFlag, "limit", 20, "maximum number of decisions to show")

	return cmd
}

func agentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "agents [name]",
		Short: "List agent profiles, or show one agent by name or alias",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			profiles := cfg.RoutingConfig.Agents
			if len(args) == 1 {
				name := cfg.Aliases.Resolve(args[0])
				profile, ok := cfg.RoutingConfig.Agent(name)
				if !ok {
					return fmt.Errorf("agent %q not defined", args[0])
				}
				profiles = []config.AgentProfile{profile}
			}

			rows := make([][]string, 0, len(profiles))
			for _, p := range profiles {
				cost := fmt.Sprintf("$%.2f/1M", p.CostPer1M)
				if p.CostPer1M == 0 {
					cost = "FREE"
				}
				rows = append(rows, []string{
					p.Name, p.Model, cost, string(p.Speed), p.Availability,
					strings.Join(p.Strengths, ", "),
				})
			}

			fmt.Println()
			cli.PrintTable([]string{"Agent", "Model", "Cost", "Speed", "Availability", "Strengths"}, rows)
			fmt.Println()
			return nil
		},
	}
}

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the configured routing rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			r, err := newRouter(cfg)
			if err != nil {
				return err
			}

			rows := [][]string{}
			for _, route := range r.Routes() {
				rows = append(rows, []string{
					route.TaskType,
					route.Primary,
					route.Fallback,
					strings.Join(route.Keywords, ", "),
				})
			}

			fmt.Println()
			cli.PrintTable([]string{"Task type", "Primary", "Fallback", "Keywords"}, rows)
			fmt.Println()
			return nil
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the routing configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			errs := cfg.RoutingConfig.Validate()
			errs = append(errs, cfg.Aliases.Validate(cfg.RoutingConfig)...)

			if len(errs) == 0 {
				cli.Success("Routing configuration is valid")
				return nil
			}

			for _, e := range errs {
				fmt.Fprintf(os.Stderr, "  %v\n", e)
			}
			return fmt.Errorf("%d validation error(s)", len(errs))
		},
	}
}
