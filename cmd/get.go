package cmd

import (
	"github.com/urfave/cli/v2"
)

// getCmd fetches a single entry and prints its property map.
func getCmd() *cli.Command {
	return &cli.Command{
		Name:  "get",
		Usage: "Fetch one entry and print its property map as JSON",
		Flags: []cli.Flag{
			urlFlag("Full entry URL, including the entry name"),
			timeoutFlag(),
		},
		Action: func(ctx *cli.Context) error {
			props, err := newClient(ctx).GetEntry(ctx.Context, ctx.String("url"))
			if err != nil {
				return err
			}
			return printJSON(props)
		},
	}
}

// listCmd fetches a whole feed and prints its entries in feed order.
func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Fetch a feed and print all entry property maps as a JSON array",
		Flags: []cli.Flag{
			urlFlag("Feed URL, may include query parameters"),
			timeoutFlag(),
		},
		Action: func(ctx *cli.Context) error {
			maps, err := newClient(ctx).GetEntries(ctx.Context, ctx.String("url"))
			if err != nil {
				return err
			}
			return printJSON(maps)
		},
	}
}
