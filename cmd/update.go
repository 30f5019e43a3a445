package cmd

import (
	"github.com/urfave/cli/v2"
)

// updateCmd replaces the entry named by the property map's "name" field.
func updateCmd() *cli.Command {
	return &cli.Command{
		Name:  "update",
		Usage: "Replace an existing entry with a JSON property map",
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
			return newClient(ctx).UpdateEntry(ctx.Context, ctx.String("url"), props)
		},
	}
}
