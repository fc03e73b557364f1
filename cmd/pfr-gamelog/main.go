package main

import (
	"log"

	"github.com/aws/aws-lambda-go/lambda"

	appgamelog "github.com/tyler180/pfr-gamelog/internal/app/gamelog"
)

func main() {
	log.SetFlags(0)
	lambda.Start(appgamelog.LambdaEntrypoint)
}
