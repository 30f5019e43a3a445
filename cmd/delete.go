package cmd

import (
	"github.com/urfave/cli/v2"
)

// deleteCmd removes an entry, addressed either by full URL or by feed base
// URL plus --name.
func deleteCmd() *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "Delete an entry",
		Flags: []cli.Flag{
			urlFlag("Entry URL, or the feed base URL when --name is given"),
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Usage:   "Entry name to append to the base URL",
			},
			timeoutFlag(),
		},
		Action: func(ctx *cli.Context) error {
			url := ctx.String("url")
			if name := ctx.String("name"); name != "" {
				url = url + "/" + name
			}
			return newClient(ctx).DeleteEntry(ctx.Context, url)
		},
	}
}
