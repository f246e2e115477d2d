package main

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const request = `{"poolCount": 2, "players": [
	{"tag": "alpha", "region": "NEOH", "rank": 1},
	{"tag": "bravo", "region": "Dayton", "rank": 1},
	{"tag": "charlie", "region": "Dayton", "rank": 2},
	{"tag": "delta", "region": "Columbus", "rank": 2}
]}`

func TestHandlerSolves(t *testing.T) {
	resp, err := handler(context.Background(), events.LambdaFunctionURLRequest{Body: request})
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode, resp.Body)

	body := gjson.Parse(resp.Body)
	assert.Equal(t, int64(2), body.Get("poolCount").Int())
	assert.Equal(t, body.Get("minimumCollisionScore").Int(), body.Get("collisionScore").Int())
	assert.True(t, body.Get("solved").Bool())
	assert.Len(t, body.Get("players").Array(), 4)
	assert.Equal(t, int64(1), body.Get("players.0.rank").Int())
}

func TestHandlerBase64AndQuery(t *testing.T) {
	players := gjson.Get(request, "players").Raw
	resp, err := handler(context.Background(), events.LambdaFunctionURLRequest{
		Body:                  base64.StdEncoding.EncodeToString([]byte(players)),
		IsBase64Encoded:       true,
		QueryStringParameters: map[string]string{"poolCount": "2"},
	})
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode, resp.Body)
}

func TestHandlerRejectsBadRequests(t *testing.T) {
	cases := map[string]events.LambdaFunctionURLRequest{
		"json":      {Body: `{"poolCount": 2, "players": [`},
		"poolCount": {Body: `{"players": []}`},
		"query":     {Body: request, QueryStringParameters: map[string]string{"poolCount": "two"}},
		"players":   {Body: `{"poolCount": 2, "players": [{"tag": "a"}]}`},
		"base64":    {Body: "%%%", IsBase64Encoded: true},
	}
	for name, req := range cases {
		resp, err := handler(context.Background(), req)
		require.NoError(t, err, name)
		assert.Equal(t, 400, resp.StatusCode, name)
		assert.True(t, gjson.Get(resp.Body, "error").Exists(), name)
	}
}
