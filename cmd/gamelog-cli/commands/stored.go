package commands

import (
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/spf13/cobra"

	appgamelog "github.com/tyler180/pfr-gamelog/internal/app/gamelog"
	"github.com/tyler180/pfr-gamelog/internal/config"
	"github.com/tyler180/pfr-gamelog/internal/pfr"
)

var (
	storedSeason string
	storedTable  string
)

func init() {
	storedCmd.Flags().StringVarP(&storedSeason, "season", "s", "", "season year (default $SEASON or 2024)")
	storedCmd.Flags().StringVarP(&storedTable, "table", "t", "", "DynamoDB table (default $TABLE_NAME)")
	rootCmd.AddCommand(storedCmd)
}

var storedCmd = &cobra.Command{
	Use:   "stored <team name>",
	Short: "Show a game log previously written to DynamoDB.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		cfg.Team = args[0]
		if storedSeason != "" {
			season, err := pfr.ParseSeason(storedSeason)
			if err != nil {
				return err
			}
			cfg.Season = season
		}
		if storedTable != "" {
			cfg.TableName = storedTable
		}

		awsCfg, err := awsconfig.LoadDefaultConfig(cmd.Context())
		if err != nil {
			return fmt.Errorf("aws config: %w", err)
		}
		games, err := appgamelog.Stored(cmd.Context(), cfg, nil, dynamodb.NewFromConfig(awsCfg))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d stored games for %s in %d season.\n", len(games), cfg.Team, cfg.Season)
		renderGames(cmd, games)
		return nil
	},
}
