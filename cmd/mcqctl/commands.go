package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mind-engage/mindengage-mcq/internal/app"
	"github.com/mind-engage/mindengage-mcq/internal/config"
	"github.com/mind-engage/mindengage-mcq/internal/ingest"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Print the questions extracted from a PDF or text file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		up, err := readUpload(args[0])
		if err != nil {
			return err
		}
		svc := &ingest.Service{}
		res, err := svc.Parse(cmd.Context(), up)
		if err != nil {
			return err
		}
		if err := printJSON(cmd.OutOrStdout(), res.Questions); err != nil {
			return err
		}
		for _, d := range res.Discarded {
			fmt.Fprintf(cmd.ErrOrStderr(), "discarded question %d (%s): %q\n", d.ID, d.Reason, d.Text)
		}
		if res.Orphans > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "%d lines outside any question ignored\n", res.Orphans)
		}
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Extract questions from a file and replace the stored bank",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		up, err := readUpload(args[0])
		if err != nil {
			return err
		}
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			rep, err := a.Ingest.Import(ctx, up)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d questions (%d discarded)\n", len(rep.Questions), len(rep.Discarded))
			return nil
		})
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the stored question bank as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			qs, err := a.Store.Load(ctx)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), qs)
		})
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every stored question",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			return a.Ingest.Clear(ctx)
		})
	},
}

func withApp(cmd *cobra.Command, fn func(context.Context, *app.App) error) error {
	cfg := config.Load()
	if s, _ := cmd.Flags().GetString("store"); s != "" {
		cfg.QuestionStore = config.Backend(s)
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close(ctx)
	return fn(ctx, a)
}

func readUpload(path string) (ingest.Upload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ingest.Upload{}, err
	}
	return ingest.Upload{
		Filename:    filepath.Base(path),
		ContentType: mime.TypeByExtension(filepath.Ext(path)),
		Data:        data,
	}, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
