package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/datapulse/backend/core/activity"
	"github.com/datapulse/backend/core/course"
)

const dashboardActivityLimit = 10

type dashboardApi struct {
	courseSvc   *course.Service
	activitySvc *activity.Service
}

func registerDashboardAPI(
	g *echo.Group,
	jwt echo.MiddlewareFunc,
	courseSvc *course.Service,
	activitySvc *activity.Service,
) {
	api := dashboardApi{courseSvc: courseSvc, activitySvc: activitySvc}

	g.GET("/dashboard", api.retrieve, jwt)
}

// retrieve returns the logged in user's own dashboard data.
func (api *dashboardApi) retrieve(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}
	reqCtx := ctx.Request().Context()

	enrollments, err := api.courseSvc.QueryUserEnrollments(reqCtx, claims.Subject)
	if err != nil {
		return errors.Wrap(err, "querying enrollments")
	}
	activities, err := api.activitySvc.Query(reqCtx, activity.QueryFilter{
		UserID: claims.Subject,
		Limit:  dashboardActivityLimit,
	})
	if err != nil {
		return errors.Wrap(err, "querying activities")
	}
	total, err := api.activitySvc.CountForUser(reqCtx, claims.Subject)
	if err != nil {
		return errors.Wrap(err, "counting activities")
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"enrollments":     enrollments,
		"activities":      activities,
		"totalActivities": total,
	})
}
