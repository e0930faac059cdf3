package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/datapulse/backend/core"
	"github.com/datapulse/backend/core/activity"
	"github.com/datapulse/backend/core/course"
	"github.com/datapulse/backend/core/user"
)

var errEmailRegistered = echo.NewHTTPError(http.StatusConflict, "email already registered")

type authApi struct {
	usrSvc      *user.Service
	activitySvc *activity.Service
	logger      core.Logger
}

func registerAuthAPI(
	g *echo.Group,
	jwt echo.MiddlewareFunc,
	usrSvc *user.Service,
	activitySvc *activity.Service,
	logger core.Logger,
) {
	api := authApi{usrSvc: usrSvc, activitySvc: activitySvc, logger: logger}

	ag := g.Group("/auth")
	ag.POST("/signup", api.signup)
	ag.POST("/login", api.login)
	ag.GET("/me", api.me, jwt)
}

// TokenResponse is the payload returned on successful signup/login.
type TokenResponse struct {
	Token string    `json:"token"`
	User  user.User `json:"user"`
}

func (api *authApi) signup(ctx echo.Context) error {
	var data user.NewUser
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewUser")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	usr, err := api.usrSvc.Create(ctx.Request().Context(), data)
	if err != nil {
		if errors.Cause(err) == user.ErrEmailExists {
			return errEmailRegistered
		}
		return errors.Wrap(err, "creating user")
	}

	api.recordAuthActivity(ctx, usr.ID, activity.ActionSignup, "New user signup")

	token, err := GenerateToken(GetUserClaims(usr))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	return ctx.JSON(http.StatusCreated, TokenResponse{Token: token, User: usr})
}

func (api *authApi) login(ctx echo.Context) error {
	var data user.Credentials
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Credentials")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	usr, err := api.usrSvc.Authenticate(ctx.Request().Context(), data.Email, data.Password)
	if err != nil {
		if errors.Cause(err) == user.ErrInvalidCredentials {
			return errAuthenticationFailed
		}
		return errors.Wrap(err, "authenticating")
	}

	api.recordAuthActivity(ctx, usr.ID, activity.ActionLogin, "User login")

	token, err := GenerateToken(GetUserClaims(usr))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	return ctx.JSON(http.StatusOK, TokenResponse{Token: token, User: usr})
}

// recordAuthActivity appends the signup/login event. The record is advisory;
// a failure is logged and must not block authentication.
func (api *authApi) recordAuthActivity(ctx echo.Context, userID, action, description string) {
	_, err := api.activitySvc.Record(ctx.Request().Context(), userID, activity.NewActivity{
		ActionType: action,
		Details:    core.JSONMap{"description": description},
		Metadata:   core.JSONMap{"source": "web"},
	})
	if err != nil && api.logger != nil {
		api.logger.Error("recording "+action+" activity", err)
	}
}

func (api *authApi) me(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"user": echo.Map{
		"id":    claims.Subject,
		"name":  claims.Name,
		"email": claims.Email,
		"role":  claims.Role,
	}})
}

type userApi struct {
	usrSvc      *user.Service
	courseSvc   *course.Service
	activitySvc *activity.Service
}

func registerUserAPI(
	g *echo.Group,
	jwt echo.MiddlewareFunc,
	usrSvc *user.Service,
	courseSvc *course.Service,
	activitySvc *activity.Service,
) {
	api := userApi{usrSvc: usrSvc, courseSvc: courseSvc, activitySvc: activitySvc}

	ug := g.Group("/users", jwt, adminMiddleware())
	ug.GET("", api.query)
	ug.GET("/:id", api.retrieve)
}

func (api *userApi) query(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	users, err := api.usrSvc.QueryAll(reqCtx)
	if err != nil {
		return errors.Wrap(err, "querying users")
	}

	listed := make([]user.ListedUser, 0, len(users))
	for _, usr := range users {
		count, err := api.activitySvc.CountForUser(reqCtx, usr.ID)
		if err != nil {
			return errors.Wrap(err, "counting user activities")
		}
		listed = append(listed, user.ListedUser{User: usr, ActivityCount: count})
	}
	return ctx.JSON(http.StatusOK, echo.Map{"users": listed})
}

func (api *userApi) retrieve(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	usr, err := api.usrSvc.GetByID(reqCtx, ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == user.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "getting user")
	}

	activities, err := api.activitySvc.Query(reqCtx, activity.QueryFilter{UserID: usr.ID})
	if err != nil {
		return errors.Wrap(err, "querying user activities")
	}
	enrollments, err := api.courseSvc.QueryUserEnrollments(reqCtx, usr.ID)
	if err != nil {
		return errors.Wrap(err, "querying user enrollments")
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"user":        usr,
		"activities":  activities,
		"enrollments": enrollments,
	})
}
