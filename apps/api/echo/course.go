package echoapi

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/datapulse/backend/core"
	"github.com/datapulse/backend/core/activity"
	"github.com/datapulse/backend/core/course"
)

type courseApi struct {
	svc         *course.Service
	activitySvc *activity.Service
}

func registerCourseAPI(
	g *echo.Group,
	jwt echo.MiddlewareFunc,
	svc *course.Service,
	activitySvc *activity.Service,
) {
	api := courseApi{svc: svc, activitySvc: activitySvc}

	cg := g.Group("/courses")
	cg.GET("", api.query)
	cg.GET("/:id", api.retrieve)
	cg.POST("/enroll", api.enroll, jwt)
}

func (api *courseApi) query(ctx echo.Context) error {
	courses, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying courses")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"courses": courses})
}

func (api *courseApi) retrieve(ctx echo.Context) error {
	crs, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == course.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "course not found")
		}
		return errors.Wrap(err, "getting course")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"course": crs})
}

func (api *courseApi) enroll(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	var data course.NewEnrollment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewEnrollment")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	reqCtx := ctx.Request().Context()
	enr, err := api.svc.Enroll(reqCtx, claims.Subject, data.CourseID)
	if err != nil {
		switch errors.Cause(err) {
		case course.ErrNotFound:
			return echo.NewHTTPError(http.StatusNotFound, "course not found")
		case course.ErrAlreadyEnrolled:
			return echo.NewHTTPError(http.StatusConflict, "already enrolled")
		}
		return errors.Wrap(err, "enrolling")
	}

	_, err = api.activitySvc.Record(reqCtx, claims.Subject, activity.NewActivity{
		ActionType: activity.ActionCourseEnroll,
		Details: core.JSONMap{
			"course_id":    enr.CourseID,
			"course_title": enr.CourseTitle,
			"description":  fmt.Sprintf("Enrolled in %s", enr.CourseTitle),
		},
		Metadata: core.JSONMap{"source": "web"},
	})
	if err != nil {
		return errors.Wrap(err, "recording enrollment activity")
	}

	return ctx.JSON(http.StatusCreated, echo.Map{"enrollment": enr})
}
