package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/douglarek/feedreader/app"
	"github.com/douglarek/feedreader/feed"
)

var loadCmd = &cobra.Command{
	Use:   "load NAME",
	Short: "Print the items of a feed source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := reader.Session.Load(cmd.Context(), args[0])
		if err != nil {
			return errors.New(app.ErrorMessage(err))
		}
		hideRead, _ := cmd.Flags().GetBool("hide-read")
		// nothing has been viewed yet in a fresh process
		newPrinter(cmd.OutOrStdout()).items(args[0], items, hideRead, feed.NewTracker())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)
	loadCmd.Flags().Bool("hide-read", false, "hide items already viewed")
}
