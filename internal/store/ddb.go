package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/tyler180/pfr-gamelog/internal/pfr"
)

type DynamoDBAPI interface {
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

func numAttr(p *int) (types.AttributeValue, bool) {
	if p == nil {
		return nil, false
	}
	return &types.AttributeValueMemberN{Value: strconv.Itoa(*p)}, true
}

// GameItem builds the DynamoDB item for the idx-th game (0-based) of a season.
// PK=TeamSeason (S), SK=Game (N, 1-based). Missing values are left out.
func GameItem(team string, season, idx int, g pfr.GameRecord, now string) map[string]types.AttributeValue {
	item := map[string]types.AttributeValue{
		"TeamSeason": &types.AttributeValueMemberS{Value: team + "#" + strconv.Itoa(season)},
		"Game":       &types.AttributeValueMemberN{Value: strconv.Itoa(idx + 1)},
		"Team":       &types.AttributeValueMemberS{Value: team},
		"Season":     &types.AttributeValueMemberN{Value: strconv.Itoa(season)},
		"Day":        &types.AttributeValueMemberS{Value: g.Day},
		"HomeTeam":   &types.AttributeValueMemberBOOL{Value: g.IsHome},
		"Opp":        &types.AttributeValueMemberS{Value: g.Opponent},
		"Result":     &types.AttributeValueMemberS{Value: g.Result},
		"IsPlayed":   &types.AttributeValueMemberBOOL{Value: g.IsPlayed},
		"UpdatedAt":  &types.AttributeValueMemberN{Value: now},
	}
	if g.DistanceTravelled != nil {
		item["DistanceTravelled"] = &types.AttributeValueMemberN{Value: strconv.FormatFloat(*g.DistanceTravelled, 'f', -1, 64)}
	}
	for name, p := range map[string]*int{
		"Week":          g.Week,
		"RestDays":      g.RestDays,
		"PointsFor":     g.PointsFor,
		"PointsAllowed": g.PointsAllowed,
		"TotYds":        g.TotYds,
		"PassYds":       g.PassYds,
		"RushYds":       g.RushYds,
		"OppTotYds":     g.OppTotYds,
		"OppPassYds":    g.OppPassYds,
		"OppRushYds":    g.OppRushYds,
	} {
		if av, ok := numAttr(p); ok {
			item[name] = av
		}
	}
	return item
}

// PutGameRows writes a season's game log in batches of 25 with retries for UnprocessedItems.
func PutGameRows(ctx context.Context, ddb DynamoDBAPI, table, team string, season int, recs []pfr.GameRecord) error {
	if len(recs) == 0 {
		return nil
	}
	const maxBatch = 25
	now := strconv.FormatInt(time.Now().Unix(), 10)

	for i := 0; i < len(recs); i += maxBatch {
		end := i + maxBatch
		if end > len(recs) {
			end = len(recs)
		}

		reqs := make([]types.WriteRequest, 0, end-i)
		for j := i; j < end; j++ {
			reqs = append(reqs, types.WriteRequest{
				PutRequest: &types.PutRequest{Item: GameItem(team, season, j, recs[j], now)},
			})
		}
		if err := batchWriteWithRetry(ctx, ddb, table, reqs); err != nil {
			return fmt.Errorf("batch write game rows: %w", err)
		}
	}
	return nil
}

func batchWriteWithRetry(ctx context.Context, ddb DynamoDBAPI, table string, reqs []types.WriteRequest) error {
	input := &dynamodb.BatchWriteItemInput{
		RequestItems: map[string][]types.WriteRequest{table: reqs},
	}
	const maxAttempts = 6
	wait := 120 * time.Millisecond

	for attempt := 0; attempt < maxAttempts; attempt++ {
		out, err := ddb.BatchWriteItem(ctx, input)
		if err != nil {
			return err
		}
		if len(out.UnprocessedItems) == 0 {
			return nil
		}
		input.RequestItems = out.UnprocessedItems

		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
		wait = min(2*wait, 2*time.Second)
	}
	return fmt.Errorf("%d unprocessed items remained after %d attempts for table %s",
		len(input.RequestItems[table]), maxAttempts, table)
}
