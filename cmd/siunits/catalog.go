package main

import (
	"errors"
	"fmt"

	"siunits"

	"github.com/spf13/cobra"
)

func newCatalogCommand(a *app) *cobra.Command {
	catCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the SQLite unit catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	catCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Store the built-in SI registry in the configured catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.openCatalog()
			if err != nil {
				return err
			}
			defer cat.Close()
			id, err := cat.Save(siunits.SI())
			if err != nil {
				return err
			}
			a.logger.Info("catalog initialised", "path", a.cfg.Catalog, "id", id)
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	})

	catCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the registries stored in the configured catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.openCatalog()
			if err != nil {
				return err
			}
			defer cat.Close()
			entries, err := cat.List()
			if err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", e.ID, e.Name)
			}
			return nil
		},
	})
	return catCmd
}

func (a *app) openCatalog() (*siunits.Catalog, error) {
	if a.cfg.Catalog == "" {
		return nil, errors.New("no catalog configured, set catalog in siunits.toml or SIUNITS_CATALOG")
	}
	cat, err := siunits.OpenCatalog(a.cfg.Catalog)
	if err != nil {
		return nil, err
	}
	return cat.WithLogger(a.logger), nil
}
