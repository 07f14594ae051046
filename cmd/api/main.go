package main

import (
	"log"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/nanambeah/MedPrep-Ghana/internal/config"
	"github.com/nanambeah/MedPrep-Ghana/internal/container"
)

func main() {
	c := container.New()
	handler := c.Router()

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := httpadapter.NewV2(handler)
		lambda.Start(adapter.ProxyWithContext)
		return
	}

	config.Logger.Infof("Listening on %s", c.Config.HTTPAddr)
	if err := http.ListenAndServe(c.Config.HTTPAddr, handler); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
