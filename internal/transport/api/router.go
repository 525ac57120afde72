package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/ecollect/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup    = "/api"
	RequestsRoute = "/va/requests"
	RequestRoute  = "/va/requests/:id"
	AccountRoute  = "/va/accounts/:number"
	MetricsRoute  = "/metrics"
)

type RouterArgs struct {
	Logger    *logrus.Logger
	VaService VaServicer
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	vaHandler := NewVaHandler(args.VaService)

	api := r.Group(RouteGroup)
	api.POST(RequestsRoute, vaHandler.Create)
	api.GET(RequestRoute, vaHandler.Show)
	api.GET(AccountRoute, vaHandler.ShowAccount)

	r.GET(MetricsRoute, gin.WrapH(promhttp.Handler()))
	return r
}
