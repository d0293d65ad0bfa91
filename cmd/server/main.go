package main

import (
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/ieltslab/internal/config"
	"github.com/saulo-duarte/ieltslab/internal/container"
	"github.com/saulo-duarte/ieltslab/internal/router"
)

func main() {
	c := container.New()

	r := router.New(router.RouterConfig{
		UserHandler:     c.UserContainer.Handler,
		PassageHandler:  c.PassageContainer.Handler,
		PracticeHandler: c.PracticeContainer.Handler,
		AIGenHandler:    c.AIGenContainer.Handler,
		VocabHandler:    c.VocabContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := chiadapter.New(r)
		lambda.Start(adapter.ProxyWithContext)
		return
	}

	addr := ":" + config.C.Port
	logrus.Infof("listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
