/*
 * main.go, part of chemkin.
 *
 * Copyright 2017 The chemkin authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Command chemkin computes reaction kinetics from CTML-style reaction XML:
//it ingests NASA coefficients into an SQLite store, prints rate
//coefficients and progress/production rates at a temperature, exports
//temperature sweeps and serves the HTTP front end.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chemkinetics/chemkin"
	"github.com/chemkinetics/chemkin/kinplot"
	"github.com/chemkinetics/chemkin/nasa"
	"github.com/chemkinetics/chemkin/parser"
	"github.com/chemkinetics/chemkin/sweep"
	"github.com/chemkinetics/chemkin/thermochem"
	"github.com/chemkinetics/chemkin/web"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "chemkin",
		Short:         "chemical reaction kinetics",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(ingestCmd(), ratesCmd(), sweepCmd(), plotCmd(), serveCmd())
	return root
}

func ingestCmd() *cobra.Command {
	var dbPath string
	cmd := &cobra.Command{
		Use:   "ingest <mechanism.xml>",
		Short: "load NASA coefficients from a reaction XML file into a coefficient database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parser.ParseFile(args[0])
			if err != nil {
				return err
			}
			if len(m.SpeciesData) == 0 {
				return fmt.Errorf("%s carries no species thermodynamic data", args[0])
			}
			store, err := nasa.Open(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.Load(m.SpeciesData); err != nil {
				return err
			}
			fmt.Printf("Loaded NASA coefficients for %d species into %s\n", len(m.SpeciesData), dbPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&dbPath, "database", "d", "coeffs.db", "coefficient database file")
	return cmd
}

//buildSystem assembles a ReactionSystem from the run configuration: the
//mechanism file supplies species and reactions; coefficients come from the
//configured database, or from the mechanism document itself when none is
//configured.
func buildSystem(cfg *RunConfig) (*chemkin.ReactionSystem, error) {
	if cfg.Mechanism == "" {
		return nil, fmt.Errorf("no mechanism file given (flag or run config)")
	}
	m, err := parser.ParseFile(cfg.Mechanism)
	if err != nil {
		return nil, err
	}
	dbPath := cfg.Database
	transient := false
	if dbPath == "" {
		f, err := os.CreateTemp("", "chemkin-coeffs-*.db")
		if err != nil {
			return nil, err
		}
		f.Close()
		dbPath = f.Name()
		transient = true
	}
	store, err := nasa.Open(dbPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	if transient {
		defer os.Remove(dbPath)
		if err := store.Load(m.SpeciesData); err != nil {
			return nil, err
		}
	}
	return m.System(store, thermochem.New())
}

func runFlags(cmd *cobra.Command, cfg *string, mech *string, temp *float64) {
	cmd.Flags().StringVarP(cfg, "config", "c", "", "YAML run configuration file")
	cmd.Flags().StringVarP(mech, "mechanism", "m", "", "reaction XML file (overrides config)")
	cmd.Flags().Float64VarP(temp, "temperature", "T", 0, "temperature in K (overrides config)")
}

func loadRun(cfgPath, mech string, temp float64) (*RunConfig, error) {
	cfg, err := loadRunConfig(cfgPath)
	if err != nil {
		return nil, err
	}
	if mech != "" {
		cfg.Mechanism = mech
	}
	if temp != 0 {
		cfg.Temperature = temp
	}
	return cfg, nil
}

func ratesCmd() *cobra.Command {
	var cfgPath, mech string
	var temp float64
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "print rate coefficients, progress rates and production rates at one temperature",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadRun(cfgPath, mech, temp)
			if err != nil {
				return err
			}
			sys, err := buildSystem(cfg)
			if err != nil {
				return err
			}
			concs, err := cfg.concVector(sys)
			if err != nil {
				return err
			}
			ks, err := sys.RateCoeffs(cfg.Temperature)
			if err != nil {
				return err
			}
			progress, err := sys.ProgressRates(concs, cfg.Temperature)
			if err != nil {
				return err
			}
			production, err := sys.ProductionRates(progress)
			if err != nil {
				return err
			}
			fmt.Printf("T = %v K\n", cfg.Temperature)
			for j, r := range sys.Reactions {
				fmt.Printf("%-12s %-30s k = %-14.6e r = %-14.6e\n", r.ID, r.Equation, ks[j], progress[j])
			}
			for i, sp := range sys.Species {
				fmt.Printf("omega(%-8s) = %-14.6e\n", sp, production[i])
			}
			return nil
		},
	}
	runFlags(cmd, &cfgPath, &mech, &temp)
	return cmd
}

func sweepCmd() *cobra.Command {
	var cfgPath, mech, out string
	var temp float64
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "evaluate rates over a temperature range and export them as CSV (.gz/.zst compressed by suffix)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadRun(cfgPath, mech, temp)
			if err != nil {
				return err
			}
			sys, err := buildSystem(cfg)
			if err != nil {
				return err
			}
			concs, err := cfg.concVector(sys)
			if err != nil {
				return err
			}
			sw, err := sweep.Run(sys, concs, cfg.TLow, cfg.THigh, cfg.Points)
			if err != nil {
				return err
			}
			if out == "" {
				return sw.WriteCSV(os.Stdout)
			}
			return sw.Save(out)
		},
	}
	runFlags(cmd, &cfgPath, &mech, &temp)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file; stdout if empty")
	return cmd
}

func plotCmd() *cobra.Command {
	var cfgPath, mech, prefix string
	var temp float64
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "plot progress and production rates over a temperature range",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadRun(cfgPath, mech, temp)
			if err != nil {
				return err
			}
			sys, err := buildSystem(cfg)
			if err != nil {
				return err
			}
			concs, err := cfg.concVector(sys)
			if err != nil {
				return err
			}
			sw, err := sweep.Run(sys, concs, cfg.TLow, cfg.THigh, cfg.Points)
			if err != nil {
				return err
			}
			p, err := kinplot.ProgressRates(sw, "Progress rates")
			if err != nil {
				return err
			}
			if err := kinplot.SavePNG(p, prefix+"_progress"); err != nil {
				return err
			}
			p, err = kinplot.ProductionRates(sw, "Production rates")
			if err != nil {
				return err
			}
			return kinplot.SavePNG(p, prefix+"_production")
		},
	}
	runFlags(cmd, &cfgPath, &mech, &temp)
	cmd.Flags().StringVarP(&prefix, "prefix", "p", "rates", "output file prefix")
	return cmd
}

func serveCmd() *cobra.Command {
	var addr, root, static string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "run the HTTP front end",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logrus.New()
			if err := os.MkdirAll(root, 0o750); err != nil {
				return err
			}
			s := web.NewServer(root, static, thermochem.New(), log)
			return s.ListenAndServe(addr)
		},
	}
	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "listen address")
	cmd.Flags().StringVarP(&root, "sessions", "s", "sessions", "session storage directory")
	cmd.Flags().StringVarP(&static, "static", "w", "", "static web directory; empty disables")
	return cmd
}
