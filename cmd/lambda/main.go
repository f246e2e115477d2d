//go:build !lambda

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-lambda-go/events"
)

// Without the lambda tag the handler runs once against a request body read
// from stdin, for trying payloads locally.
func main() {
	body, err := io.ReadAll(os.Stdin)
	if err != nil {
		logger.WithError(err).Fatal("Failed to read request body")
	}
	resp, _ := handler(context.Background(), events.LambdaFunctionURLRequest{Body: string(body)})
	fmt.Println(resp.Body)
	if resp.StatusCode != 200 {
		os.Exit(1)
	}
}
