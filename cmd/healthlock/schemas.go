package main

import (
	"os"

	"healthlock/internal/hospital"

	"github.com/k0kubun/pp/v3"
	"github.com/urfave/cli/v2"
)

var schemasCommand = &cli.Command{
	Name:  "schemas",
	Usage: "Print the hospital entity schemas",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "type",
			Aliases: []string{"t"},
			Usage:   "Only print the schema of this entity type",
		},
	},
	Action: func(c *cli.Context) error {
		printer := pp.New()
		printer.SetOutput(os.Stdout)

		want := c.String("type")
		for _, schema := range hospital.Schemas() {
			if want != "" && schema.Type != want {
				continue
			}
			printer.Println(schema)
		}
		return nil
	},
}
