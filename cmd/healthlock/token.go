package main

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"healthlock/internal/session"
	"healthlock/internal/token"
	"healthlock/pkg/types"

	"github.com/k0kubun/pp/v3"
	"github.com/urfave/cli/v2"
)

var tokenCommand = &cli.Command{
	Name:  "token",
	Usage: "Issue an access token for a one-off file and print its QR code",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "Name of the file to share",
			Value:   "Blood_Test_Results_2024.pdf",
		},
		&cli.Int64Flag{
			Name:  "size",
			Usage: "File size in bytes",
			Value: 2048000,
		},
		&cli.StringFlag{
			Name:    "level",
			Aliases: []string{"l"},
			Usage:   "Access level: full, partial or read-only",
			Value:   string(types.AccessFull),
		},
		&cli.BoolFlag{
			Name:  "no-qr",
			Usage: "Skip printing the QR code",
		},
	},
	Action: issueToken,
}

func issueToken(cCtx *cli.Context) error {
	config, err := loadConfig(cCtx.String("env-prefix"))
	if err != nil {
		return err
	}

	level, err := types.ParseAccessLevel(cCtx.String("level"))
	if err != nil {
		return err
	}

	state, err := session.New("cli", session.Options{
		Patient:  config.Patient,
		Accessor: config.Accessor,
		Location: config.SimulatedLocation,
		Seed:     false,
		Logger:   newLogger(config),
	})
	if err != nil {
		return err
	}

	ctx := context.Background()

	files := state.UploadFiles(ctx, []types.RawFile{{
		Name:      cCtx.String("file"),
		MimeType:  mime.TypeByExtension(filepath.Ext(cCtx.String("file"))),
		SizeBytes: cCtx.Int64("size"),
	}})
	tok := state.IssueToken(ctx, files[0], level)

	payload, err := token.DecodePayload(tok.QRData)
	if err != nil {
		return err
	}

	printer := pp.New()
	printer.SetOutput(os.Stdout)
	printer.Println(payload)

	if cCtx.Bool("no-qr") {
		return nil
	}

	qr, err := token.RenderTerminal(tok.QRData)
	if err != nil {
		return err
	}
	fmt.Fprint(os.Stdout, qr)

	return nil
}
