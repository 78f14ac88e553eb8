package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/alexiusacademia/mechcalc/internal/catalog"
	"github.com/alexiusacademia/mechcalc/internal/config"
	"github.com/alexiusacademia/mechcalc/internal/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configFile  string
	logLevel    string
	catalogFile string

	// Resolved in PersistentPreRunE for every command.
	cfg config.Config
	cat = catalog.Default()
	log = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "mechcalc",
	Short: "Mechanism design calculators for robotics",
	Long: heredoc.Doc(`
		mechcalc - Mechanism Design Calculators

		A CLI tool for sizing robot mechanisms with unit-aware inputs.
		Every value may carry its own unit ("10 lbf*in", "3 N*m", "60psi");
		bare numbers take the unit shown in each flag's help.

		This tool helps mechanism designers perform:
		  - Gear tooth load and factor of safety checks (Lewis equation)
		  - DC motor operating point solutions and characteristic curves
		  - Compressor flow curves and air tank fill times
		  - Flywheel energy, shot speed drop and spin-up time
	`),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   mechcalc v%-46s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Mechanism Design Calculators                            ║")
		fmt.Fprintf(out, "  ║   %s ©  %-36s║\n", version.Author, version.Year)
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Planetary and spur gear stall loads vs. Lewis safe loads")
		fmt.Fprintln(out, "    • Motor equilibrium from any two of voltage, current, torque, speed")
		fmt.Fprintln(out, "    • Compressor CFM curves and tank fill simulation")
		fmt.Fprintln(out, "    • Flywheel shooter energy and recovery time")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'mechcalc --help' to see available commands.")
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default $HOME/.mechcalc.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "YAML file with extra materials, motors and compressors")
}

// setup resolves configuration, the logger and the catalog.
func setup(cmd *cobra.Command, args []string) error {
	v := viper.New()
	if err := v.BindPFlag(config.KeyLogLevel, cmd.Flags().Lookup("log-level")); err != nil {
		return err
	}
	if err := v.BindPFlag(config.KeyCatalogFile, cmd.Flags().Lookup("catalog")); err != nil {
		return err
	}

	c, err := config.Load(v, configFile)
	if err != nil {
		return err
	}
	cfg = c

	level, err := logrus.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	log.SetOutput(cmd.ErrOrStderr())
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(level)

	cat = catalog.Default()
	if cfg.CatalogFile != "" {
		if cat, err = catalog.Load(cfg.CatalogFile); err != nil {
			return err
		}
		log.WithField("file", cfg.CatalogFile).Debug("loaded catalog")
	}
	log.WithFields(logrus.Fields{
		"config":    v.ConfigFileUsed(),
		"precision": cfg.Precision,
	}).Debug("configuration resolved")
	return nil
}
