package store

import (
	"context"
	"sort"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/tyler180/pfr-gamelog/internal/pfr"
)

type DynamoDBReadAPI interface {
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// QueryGameRows reads back a stored season (PK team#season), ordered by Game.
func QueryGameRows(ctx context.Context, ddb DynamoDBReadAPI, table, team string, season int) ([]pfr.GameRecord, error) {
	pk := team + "#" + strconv.Itoa(season)

	type row struct {
		game int
		rec  pfr.GameRecord
	}
	var rows []row

	var lastKey map[string]types.AttributeValue
	for {
		out, err := ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(table),
			KeyConditionExpression:    aws.String("#P = :p"),
			ExpressionAttributeNames:  map[string]string{"#P": "TeamSeason"},
			ExpressionAttributeValues: map[string]types.AttributeValue{":p": &types.AttributeValueMemberS{Value: pk}},
			ExclusiveStartKey:         lastKey,
		})
		if err != nil {
			return nil, err
		}
		for _, it := range out.Items {
			g, _ := getNum(it, "Game")
			rows = append(rows, row{game: g, rec: gameFromItem(it)})
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].game < rows[j].game })
	recs := make([]pfr.GameRecord, 0, len(rows))
	for _, r := range rows {
		recs = append(recs, r.rec)
	}
	return recs, nil
}

func gameFromItem(it map[string]types.AttributeValue) pfr.GameRecord {
	g := pfr.GameRecord{
		Day:      getStr(it, "Day"),
		IsHome:   getBool(it, "HomeTeam"),
		Opponent: getStr(it, "Opp"),
		Result:   getStr(it, "Result"),
		IsPlayed: getBool(it, "IsPlayed"),
	}
	if v, ok := it["DistanceTravelled"].(*types.AttributeValueMemberN); ok {
		if f, err := strconv.ParseFloat(v.Value, 64); err == nil {
			g.DistanceTravelled = &f
		}
	}
	for name, dst := range map[string]**int{
		"Week":          &g.Week,
		"RestDays":      &g.RestDays,
		"PointsFor":     &g.PointsFor,
		"PointsAllowed": &g.PointsAllowed,
		"TotYds":        &g.TotYds,
		"PassYds":       &g.PassYds,
		"RushYds":       &g.RushYds,
		"OppTotYds":     &g.OppTotYds,
		"OppPassYds":    &g.OppPassYds,
		"OppRushYds":    &g.OppRushYds,
	} {
		if n, ok := getNum(it, name); ok {
			*dst = &n
		}
	}
	return g
}

func getStr(m map[string]types.AttributeValue, key string) string {
	if v, ok := m[key].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func getNum(m map[string]types.AttributeValue, key string) (int, bool) {
	switch t := m[key].(type) {
	case *types.AttributeValueMemberN:
		n, err := strconv.Atoi(t.Value)
		return n, err == nil
	case *types.AttributeValueMemberS:
		n, err := strconv.Atoi(t.Value)
		return n, err == nil
	}
	return 0, false
}

func getBool(m map[string]types.AttributeValue, key string) bool {
	if v, ok := m[key].(*types.AttributeValueMemberBOOL); ok {
		return v.Value
	}
	return false
}
