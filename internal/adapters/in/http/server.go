// Package http exposes the role workspaces over a JSON API. Every route
// requires a bearer token; the session it resolves to decides which
// workspace the request may enter.
package http

import (
	"errors"
	"net/http"
	"time"

	"orderflow/internal/core/application/sessions"
	"orderflow/internal/core/application/views"
	"orderflow/internal/core/domain/model/account"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const sessionContextKey = "orderflow.session"

// Server routes HTTP requests into the role-scoped application views.
type Server struct {
	resolver sessions.Resolver
	router   *services.RoleRouter
	customer views.CustomerView
	vendor   views.VendorView
	delivery views.DeliveryView
}

// NewServer creates the HTTP server over the session resolver and the three
// role workspaces.
func NewServer(
	resolver sessions.Resolver,
	customer views.CustomerView,
	vendor views.VendorView,
	delivery views.DeliveryView,
) *Server {
	return &Server{
		resolver: resolver,
		router:   services.NewRoleRouter(),
		customer: customer,
		vendor:   vendor,
		delivery: delivery,
	}
}

// RegisterRoutes binds all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1", s.authenticate)

	api.GET("/workspace", s.workspace)
	api.POST("/orders", s.placeOrder)
	api.GET("/orders/mine", s.listOwnOrders)
	api.GET("/orders/claimable", s.listClaimableOrders)
	api.GET("/orders/tasks", s.listDeliveryTasks)
	api.POST("/orders/:id/accept", s.acceptOrder)
	api.POST("/orders/:id/start-delivery", s.startDelivery)
	api.POST("/orders/:id/complete", s.completeOrder)
}

// ErrorResponse is the JSON error envelope for all failures.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderPlacedResponse reports the identifier of a freshly placed order.
type OrderPlacedResponse struct {
	ID string `json:"id"`
}

// OrderResponse is one entry of a customer's order history.
type OrderResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// BoardOrderResponse is one claimable order on the vendor board.
type BoardOrderResponse struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// TaskResponse is one entry on the delivery board.
type TaskResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// authenticate resolves the bearer token into a session and stores it on the
// request context. Requests without a resolvable session never reach a
// handler.
func (s *Server) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		token := bearerToken(ctx.Request().Header.Get(echo.HeaderAuthorization))

		session, err := s.resolver.Resolve(ctx.Request().Context(), token)
		if err != nil {
			return writeError(ctx, err)
		}

		ctx.Set(sessionContextKey, session)
		return next(ctx)
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && header[:len(prefix)] == prefix {
		return header[len(prefix):]
	}
	return ""
}

func sessionFromContext(ctx echo.Context) account.Session {
	session, _ := ctx.Get(sessionContextKey).(account.Session)
	return session
}

func orderIDParam(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// WorkspaceResponse names the single workspace a session is routed into.
type WorkspaceResponse struct {
	Workspace string `json:"workspace"`
}

// workspace handles GET /api/v1/workspace. It tells a client which workspace
// its session belongs to, recomputed on every request.
func (s *Server) workspace(ctx echo.Context) error {
	routed, err := s.router.Route(sessionFromContext(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, WorkspaceResponse{Workspace: routed.String()})
}

// placeOrder handles POST /api/v1/orders.
func (s *Server) placeOrder(ctx echo.Context) error {
	orderID, err := s.customer.Place(ctx.Request().Context(), sessionFromContext(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderPlacedResponse{ID: orderID.String()})
}

// listOwnOrders handles GET /api/v1/orders/mine.
func (s *Server) listOwnOrders(ctx echo.Context) error {
	orders, err := s.customer.ListOwn(ctx.Request().Context(), sessionFromContext(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderResponse{
			ID:        o.ID.String(),
			Status:    o.Status.String(),
			CreatedAt: o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// listClaimableOrders handles GET /api/v1/orders/claimable.
func (s *Server) listClaimableOrders(ctx echo.Context) error {
	board, err := s.vendor.ListClaimable(ctx.Request().Context(), sessionFromContext(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]BoardOrderResponse, len(board))
	for i, o := range board {
		response[i] = BoardOrderResponse{
			ID:         o.ID.String(),
			CustomerID: o.CustomerID.String(),
			CreatedAt:  o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// listDeliveryTasks handles GET /api/v1/orders/tasks.
func (s *Server) listDeliveryTasks(ctx echo.Context) error {
	tasks, err := s.delivery.ListClaimable(ctx.Request().Context(), sessionFromContext(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		response[i] = TaskResponse{
			ID:        task.ID.String(),
			Status:    task.Status.String(),
			CreatedAt: task.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// acceptOrder handles POST /api/v1/orders/:id/accept.
func (s *Server) acceptOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	if err = s.vendor.Accept(ctx.Request().Context(), sessionFromContext(ctx), orderID); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// startDelivery handles POST /api/v1/orders/:id/start-delivery.
func (s *Server) startDelivery(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	if err = s.delivery.StartDelivery(ctx.Request().Context(), sessionFromContext(ctx), orderID); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// completeOrder handles POST /api/v1/orders/:id/complete.
func (s *Server) completeOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	if err = s.delivery.Complete(ctx.Request().Context(), sessionFromContext(ctx), orderID); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// writeError maps application errors onto the HTTP status taxonomy. Anything
// unclassified counts as a transient store failure and is reported as 503 so
// clients know the request may be retried.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusServiceUnavailable

	switch {
	case errors.Is(err, errs.ErrNotAuthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, errs.ErrPermissionDenied):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrAlreadyClaimed):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrInvalidTransition):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
