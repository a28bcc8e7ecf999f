package main

import (
	"fmt"
	"os"

	"siunits"
	"siunits/internal/config"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// app carries state shared by subcommands once the root command has
// loaded configuration.
type app struct {
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *log.Logger
	reg    *siunits.Registry
}

func newRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "siunits",
		Short: "SI quantity arithmetic and unit conversion",
		Long: `siunits parses quantities such as "15 kN" or "9.81 m.s-2" and converts
them between unit expressions.

A unit expression is a dot separated product of prefixed units, each with an
optional integer exponent: "kg.m2.s-2", "mm^3", "m.h-1".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./siunits.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newParseCommand(a),
		newBaseCommand(a),
		newNoPrefixCommand(a),
		newConvertCommand(a),
		newSwapCommand(a),
		newCompareCommand(a),
		newCatalogCommand(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "siunits"})
	lvl, _ := cfg.Level()
	if a.verbose {
		lvl = log.DebugLevel
	}
	a.logger.SetLevel(lvl)
	return nil
}

// registry returns the configured registry, loading it from the catalog on
// first use.
func (a *app) registry() (*siunits.Registry, error) {
	if a.reg != nil {
		return a.reg, nil
	}
	if a.cfg.Catalog == "" {
		a.reg = siunits.SI()
		return a.reg, nil
	}

	if _, err := os.Stat(a.cfg.Catalog); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", a.cfg.Catalog, err)
	}
	cat, err := siunits.OpenCatalog(a.cfg.Catalog)
	if err != nil {
		return nil, err
	}
	defer cat.Close()
	cat.WithLogger(a.logger)

	id, err := a.registryID(cat)
	if err != nil {
		return nil, err
	}
	reg, err := cat.Load(id)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("using catalog registry", "catalog", a.cfg.Catalog, "id", id, "name", reg.Name())
	a.reg = reg
	return reg, nil
}

func (a *app) registryID(cat *siunits.Catalog) (uuid.UUID, error) {
	if a.cfg.Registry != "" {
		id, err := uuid.Parse(a.cfg.Registry)
		if err != nil {
			return uuid.Nil, fmt.Errorf("registry id %q: %w", a.cfg.Registry, err)
		}
		return id, nil
	}
	entries, err := cat.List()
	if err != nil {
		return uuid.Nil, err
	}
	if len(entries) != 1 {
		return uuid.Nil, fmt.Errorf("catalog %s holds %d registries, set registry in the config", a.cfg.Catalog, len(entries))
	}
	return entries[0].ID, nil
}

func (a *app) parse(s string) (siunits.Quantity, error) {
	reg, err := a.registry()
	if err != nil {
		return siunits.Quantity{}, err
	}
	return reg.Parse(s)
}
