package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/datapulse/backend/core/analytics"
)

type analyticsApi struct {
	svc *analytics.Service
}

func registerAnalyticsAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *analytics.Service) {
	api := analyticsApi{svc: svc}

	g.GET("/analytics", api.snapshot, jwt, adminMiddleware())
}

func (api *analyticsApi) snapshot(ctx echo.Context) error {
	snap, err := api.svc.Snapshot(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "computing analytics snapshot")
	}
	return ctx.JSON(http.StatusOK, snap)
}
