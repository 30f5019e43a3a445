package cmd

import (
	"github.com/urfave/cli/v2"
)

// insertCmd creates a new entry from a JSON property map. The map must
// carry a "name" property; the entry is created under <url>/<name>.
func insertCmd() *cli.Command {
	return &cli.Command{
		Name:  "insert",
		Usage: "Create a new entry from a JSON property map",
		Flags: []cli.Flag{
			urlFlag("Feed base URL, without the entry name"),
			inputFlag(),
			timeoutFlag(),
		},
		Action: func(ctx *cli.Context) error {
			props, err := readProps(ctx.String("input"))
			if err != nil {
				return err
			}
			return newClient(ctx).InsertEntry(ctx.Context, ctx.String("url"), props)
		},
	}
}
