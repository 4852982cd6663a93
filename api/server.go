package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List, search and sort groups, or return rating statistics when stats=true
	// (GET /groups)
	GetGroups(ctx echo.Context, params GetGroupsParams) error
	// Create a group, or update it when groupId is set
	// (POST /groups)
	PostGroups(ctx echo.Context) error
	// List reviews of one group or the latest reviews overall
	// (GET /reviews)
	GetReviews(ctx echo.Context, params GetReviewsParams) error
	// Create a review
	// (POST /reviews)
	PostReviews(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetGroups converts echo context to params.
func (w *ServerInterfaceWrapper) GetGroups(ctx echo.Context) error {
	var err error

	var params GetGroupsParams

	err = runtime.BindQueryParameter("form", true, false, "search", ctx.QueryParams(), &params.Search)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter search: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "platform", ctx.QueryParams(), &params.Platform)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter platform: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "sort", ctx.QueryParams(), &params.Sort)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter sort: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "stats", ctx.QueryParams(), &params.Stats)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter stats: %s", err))
	}

	err = w.Handler.GetGroups(ctx, params)
	return err
}

// PostGroups converts echo context to params.
func (w *ServerInterfaceWrapper) PostGroups(ctx echo.Context) error {
	return w.Handler.PostGroups(ctx)
}

// GetReviews converts echo context to params.
func (w *ServerInterfaceWrapper) GetReviews(ctx echo.Context) error {
	var err error

	var params GetReviewsParams

	err = runtime.BindQueryParameter("form", true, false, "group_id", ctx.QueryParams(), &params.GroupId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter group_id: %s", err))
	}

	err = w.Handler.GetReviews(ctx, params)
	return err
}

// PostReviews converts echo context to params.
func (w *ServerInterfaceWrapper) PostReviews(ctx echo.Context) error {
	return w.Handler.PostReviews(ctx)
}

// EchoRouter is the subset of echo routing used here; both *echo.Echo and *echo.Group satisfy it.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the handlers under a path prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/groups", wrapper.GetGroups)
	router.POST(baseURL+"/groups", wrapper.PostGroups)
	router.GET(baseURL+"/reviews", wrapper.GetReviews)
	router.POST(baseURL+"/reviews", wrapper.PostReviews)
}
