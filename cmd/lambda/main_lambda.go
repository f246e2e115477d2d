//go:build lambda

package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"
)

func main() {
	logger.SetFormatter(&logrus.JSONFormatter{})
	lambda.Start(handler)
}
