package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/datapulse/backend/core/chatbot"
)

type chatbotApi struct {
	svc *chatbot.Service
}

func registerChatbotAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *chatbot.Service) {
	api := chatbotApi{svc: svc}

	cg := g.Group("/chatbot", jwt)
	cg.POST("", api.ask)
	cg.GET("/queries", api.queries, adminMiddleware())
}

func (api *chatbotApi) ask(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	var data chatbot.NewQuery
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewQuery")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	q, err := api.svc.Ask(ctx.Request().Context(), claims.Subject, data)
	if err != nil {
		return errors.Wrap(err, "asking chatbot")
	}
	return ctx.JSON(http.StatusOK, echo.Map{
		"response": q.Response,
		"query_id": q.ID,
	})
}

func (api *chatbotApi) queries(ctx echo.Context) error {
	queries, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying chatbot queries")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"queries": queries})
}
