package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	appgamelog "github.com/tyler180/pfr-gamelog/internal/app/gamelog"
	"github.com/tyler180/pfr-gamelog/internal/config"
	"github.com/tyler180/pfr-gamelog/internal/logging"
	"github.com/tyler180/pfr-gamelog/internal/pfr"
)

var (
	getSeason string
	getFormat string
	getOutDir string
	getQuiet  bool
)

func init() {
	getCmd.Flags().StringVarP(&getSeason, "season", "s", "", "season year (default $SEASON or 2024)")
	getCmd.Flags().StringVarP(&getFormat, "format", "f", "", "output format: csv or parquet (default $OUTPUT_FORMAT or csv)")
	getCmd.Flags().StringVarP(&getOutDir, "out", "o", ".", "directory to write the game log file into")
	getCmd.Flags().BoolVarP(&getQuiet, "quiet", "q", false, "do not print the game table")
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <team name>",
	Short: "Fetch a team's regular-season game log and save it to a file.",
	Example: `  gamelog-cli get "Kansas City Chiefs" --season 2024
  gamelog-cli get "Seattle Seahawks" -s 2023 -f parquet -o ./out`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		cfg.Team = args[0]
		if getSeason != "" {
			season, err := pfr.ParseSeason(getSeason)
			if err != nil {
				return err
			}
			cfg.Season = season
		}
		if getFormat != "" {
			cfg.Format = strings.ToLower(strings.TrimSpace(getFormat))
		}
		// local runs never write to AWS
		cfg.TableName, cfg.Bucket = "", ""

		logger := logging.NewLogger(cfg.Debug)
		fetcher, closeFetcher, err := appgamelog.NewFetcher(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer closeFetcher()

		res, err := appgamelog.Run(cmd.Context(), cfg, appgamelog.Deps{Fetcher: fetcher, Logger: logger})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Fetched %d games for %s in %d season.\n", len(res.Games), res.Team, res.Season)
		if !getQuiet {
			renderGames(cmd, res.Games)
		}

		path := filepath.Join(getOutDir, res.FileName)
		if err := os.WriteFile(path, res.Artifact, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleaned game log saved to '%s'.\n", path)
		return nil
	},
}

func renderGames(cmd *cobra.Command, games []pfr.GameRecord) {
	t := newTable(cmd.OutOrStdout())
	hdr := make(table.Row, len(pfr.Columns))
	for i, c := range pfr.Columns {
		hdr[i] = c
	}
	t.AppendHeader(hdr)
	for _, g := range games {
		vals := g.Values()
		row := make(table.Row, len(vals))
		for i, v := range vals {
			row[i] = v
		}
		t.AppendRow(row)
	}
	t.Render()
}
