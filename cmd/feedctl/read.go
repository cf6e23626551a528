package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/douglarek/feedreader/app"
	"github.com/douglarek/feedreader/feed"
)

var readCmd = &cobra.Command{
	Use:   "read NAME",
	Short: "Read a feed interactively",
	Long: `Read a feed interactively. Viewing an item marks it read for the rest
of the session; nothing is remembered after exit.

Commands:
  N    view item N
  h    toggle hiding read items
  r    reload the feed
  q    quit`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReader(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), reader.Session, args[0])
	},
}

func init() {
	rootCmd.AddCommand(readCmd)
}

// runReader is one reader view: the read set starts empty and lives until
// the loop ends.
func runReader(ctx context.Context, in io.Reader, out io.Writer, session *feed.Session, name string) error {
	state := feed.NewTracker()
	state.Reset()
	p := newPrinter(out)

	var (
		items    []feed.Item
		hideRead bool
	)
	reload := func() {
		res := <-session.LoadAsync(ctx, name)
		if res.Err != nil {
			fmt.Fprintln(out, app.ErrorMessage(res.Err))
			return
		}
		items = res.Items
		p.items(name, items, hideRead, state)
	}
	reload()

	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		switch line := strings.TrimSpace(sc.Text()); line {
		case "":
		case "q", "quit":
			return nil
		case "h":
			hideRead = !hideRead
			p.items(name, items, hideRead, state)
		case "r":
			reload()
		default:
			n, err := strconv.Atoi(line)
			if err != nil || n < 1 || n > len(items) {
				fmt.Fprintf(out, "unknown command %q\n", line)
				continue
			}
			it := items[n-1]
			p.detail(it)
			if state.MarkRead(it.Link) && hideRead {
				p.items(name, items, hideRead, state)
			}
		}
	}
}
