// Command lambda serves solve over an AWS Lambda function URL. The request
// body is either a JSON array of players or an object:
//
//	{"poolCount": 8, "players": [{"tag": "...", "region": "...", "rank": 1}]}
//
// poolCount may also be given as a query string parameter.
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"strconv"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"nickandperla.net/pool_seeding"
	"nickandperla.net/pool_seeding/roster"
	"nickandperla.net/pool_seeding/scoring"
)

// solves must finish well inside the function timeout
const solveTimeout = 20 * time.Second

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

var logger = logrus.New()

type solveResult struct {
	PoolCount            int                  `json:"poolCount"`
	IgnoredRegion        string               `json:"ignoredRegion"`
	CollisionScore       int                  `json:"collisionScore"`
	TargetCollisionScore int                  `json:"minimumCollisionScore"`
	Solved               bool                 `json:"solved"`
	Generations          int                  `json:"generations"`
	Reason               string               `json:"reason"`
	TimeMs               int64                `json:"timeMs"`
	Players              []scoring.Competitor `json:"players"`
}

func handler(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}
	if !gjson.Valid(body) {
		return errResp(400, "invalid JSON")
	}

	doc := gjson.Parse(body)
	playersPath := ""
	poolCount := 0
	if doc.IsObject() {
		playersPath = "players"
		poolCount = int(doc.Get("poolCount").Int())
	}
	if v, ok := event.QueryStringParameters["poolCount"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errResp(400, "poolCount must be an integer")
		}
		poolCount = n
	}
	if poolCount <= 0 {
		return errResp(400, "poolCount must be a positive integer")
	}

	players, err := roster.ReadJSON([]byte(body), playersPath)
	if err != nil {
		return errResp(400, err.Error())
	}

	config := pool_seeding.DefaultSearchConfig()
	config.Timeout = solveTimeout
	ctx, cancel := context.WithTimeout(ctx, solveTimeout)
	defer cancel()

	result, err := pool_seeding.NewSolver(config, logger).Solve(ctx, players.Competitors, poolCount)
	if err != nil {
		logger.WithError(err).Error("Solve failed")
		return errResp(500, err.Error())
	}

	resp := solveResult{
		PoolCount:            result.PoolCount,
		IgnoredRegion:        result.IgnoredRegion,
		CollisionScore:       result.CollisionScore,
		TargetCollisionScore: result.TargetCollisionScore,
		Solved:               result.Solved(),
		Generations:          result.Generations,
		Reason:               string(result.Reason),
		TimeMs:               result.Elapsed.Milliseconds(),
		Players:              result.Competitors(),
	}
	respJSON, _ := json.Marshal(resp)
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}
