package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/douglarek/feedreader/app"
)

var addCmd = &cobra.Command{
	Use:   "add NAME URL",
	Short: "Register a feed source",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := reader.Registry.Add(cmd.Context(), args[0], args[1]); err != nil {
			return errors.New(app.ErrorMessage(err))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", args[0])
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:     "remove NAME",
	Aliases: []string{"rm"},
	Short:   "Delete a feed source",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := reader.Registry.Remove(cmd.Context(), args[0]); err != nil {
			return errors.New(app.ErrorMessage(err))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List feed sources",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sources, err := reader.Registry.Sources(cmd.Context())
		if err != nil {
			return err
		}
		p := newPrinter(cmd.OutOrStdout())
		for _, s := range sources {
			p.source(s.Name, s.URL)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd, removeCmd, listCmd)
}
