// Package http exposes the order lifecycle over REST. Customer routes live
// under /api/v1/user/order, merchant routes under /api/v1/admin/order, and
// the merchant terminal event stream is a WebSocket upgrade at /ws.
package http

import (
	"errors"
	"net/http"

	"github.com/likecate/sky-take-out/internal/core/application/usecases/commands"
	"github.com/likecate/sky-take-out/internal/core/application/usecases/queries"
	"github.com/likecate/sky-take-out/internal/core/domain/model/kernel"
	"github.com/likecate/sky-take-out/internal/core/domain/model/order"
	"github.com/likecate/sky-take-out/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	submitHandler          commands.SubmitOrderCommandHandler
	payHandler             commands.PayOrderCommandHandler
	acceptHandler          commands.AcceptOrderCommandHandler
	rejectHandler          commands.RejectOrderCommandHandler
	userCancelHandler      commands.UserCancelOrderCommandHandler
	adminCancelHandler     commands.AdminCancelOrderCommandHandler
	dispatchHandler        commands.DispatchOrderCommandHandler
	completeHandler        commands.CompleteOrderCommandHandler
	remindHandler          commands.RemindOrderCommandHandler
	repeatHandler          commands.RepeatOrderCommandHandler
	getOrderHandler        queries.GetOrderQueryHandler
	getStatisticsHandler   queries.GetOrderStatisticsQueryHandler
	terminalStreamUpgrader http.Handler
}

// NewServer creates an HTTP server with the required command and query
// handlers. terminalStream serves the WebSocket upgrade for merchant
// terminals.
func NewServer(
	submitHandler commands.SubmitOrderCommandHandler,
	payHandler commands.PayOrderCommandHandler,
	acceptHandler commands.AcceptOrderCommandHandler,
	rejectHandler commands.RejectOrderCommandHandler,
	userCancelHandler commands.UserCancelOrderCommandHandler,
	adminCancelHandler commands.AdminCancelOrderCommandHandler,
	dispatchHandler commands.DispatchOrderCommandHandler,
	completeHandler commands.CompleteOrderCommandHandler,
	remindHandler commands.RemindOrderCommandHandler,
	repeatHandler commands.RepeatOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getStatisticsHandler queries.GetOrderStatisticsQueryHandler,
	terminalStream http.Handler,
) *Server {
	return &Server{
		submitHandler:          submitHandler,
		payHandler:             payHandler,
		acceptHandler:          acceptHandler,
		rejectHandler:          rejectHandler,
		userCancelHandler:      userCancelHandler,
		adminCancelHandler:     adminCancelHandler,
		dispatchHandler:        dispatchHandler,
		completeHandler:        completeHandler,
		remindHandler:          remindHandler,
		repeatHandler:          repeatHandler,
		getOrderHandler:        getOrderHandler,
		getStatisticsHandler:   getStatisticsHandler,
		terminalStreamUpgrader: terminalStream,
	}
}

// RegisterRoutes wires all order lifecycle routes onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	user := e.Group("/api/v1/user/order")
	user.POST("/submit", s.SubmitOrder)
	user.PUT("/payment", s.PayOrder)
	user.PUT("/cancel/:id", s.UserCancelOrder)
	user.GET("/reminder/:id", s.RemindOrder)
	user.POST("/repetition/:id", s.RepeatOrder)
	user.GET("/orderDetail/:id", s.GetOrder)

	admin := e.Group("/api/v1/admin/order")
	admin.PUT("/confirm", s.AcceptOrder)
	admin.PUT("/rejection", s.RejectOrder)
	admin.PUT("/cancel", s.AdminCancelOrder)
	admin.PUT("/delivery/:id", s.DispatchOrder)
	admin.PUT("/complete/:id", s.CompleteOrder)
	admin.GET("/statistics", s.GetStatistics)
	admin.GET("/details/:id", s.GetOrder)

	e.GET("/ws", echo.WrapHandler(s.terminalStreamUpgrader))
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type submitOrderRequest struct {
	CustomerID    string `json:"customerId"`
	AddressBookID string `json:"addressBookId"`
}

type submitOrderResponse struct {
	OrderID   string `json:"orderId"`
	Number    string `json:"orderNumber"`
	Amount    string `json:"orderAmount"`
	OrderTime string `json:"orderTime"`
}

// SubmitOrder handles POST /api/v1/user/order/submit.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	var req submitOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "invalid customer id")
	}
	addressID, err := kernel.UUIDFromString(req.AddressBookID)
	if err != nil {
		return badRequest(ctx, "invalid address book id")
	}

	cmd, err := commands.NewSubmitOrderCommand(customerID, addressID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.submitHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, submitOrderResponse{
		OrderID:   result.OrderID.String(),
		Number:    result.Number,
		Amount:    result.Amount.String(),
		OrderTime: result.OrderTime.Format(timeLayout),
	})
}

type payOrderRequest struct {
	OrderNumber string `json:"orderNumber"`
}

// PayOrder handles PUT /api/v1/user/order/payment.
func (s *Server) PayOrder(ctx echo.Context) error {
	var req payOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewPayOrderCommand(req.OrderNumber)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.payHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// UserCancelOrder handles PUT /api/v1/user/order/cancel/:id.
func (s *Server) UserCancelOrder(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewUserCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.userCancelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RemindOrder handles GET /api/v1/user/order/reminder/:id.
func (s *Server) RemindOrder(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewRemindOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.remindHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

type repeatOrderRequest struct {
	CustomerID string `json:"customerId"`
}

// RepeatOrder handles POST /api/v1/user/order/repetition/:id.
func (s *Server) RepeatOrder(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req repeatOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "invalid customer id")
	}

	cmd, err := commands.NewRepeatOrderCommand(orderID, customerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.repeatHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

type acceptOrderRequest struct {
	OrderID string `json:"orderId"`
}

// AcceptOrder handles PUT /api/v1/admin/order/confirm.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	var req acceptOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.acceptHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

type rejectOrderRequest struct {
	OrderID         string `json:"orderId"`
	RejectionReason string `json:"rejectionReason"`
}

// RejectOrder handles PUT /api/v1/admin/order/rejection.
func (s *Server) RejectOrder(ctx echo.Context) error {
	var req rejectOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewRejectOrderCommand(orderID, req.RejectionReason)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.rejectHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

type adminCancelOrderRequest struct {
	OrderID      string `json:"orderId"`
	CancelReason string `json:"cancelReason"`
}

// AdminCancelOrder handles PUT /api/v1/admin/order/cancel.
func (s *Server) AdminCancelOrder(ctx echo.Context) error {
	var req adminCancelOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewAdminCancelOrderCommand(orderID, req.CancelReason)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.adminCancelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// DispatchOrder handles PUT /api/v1/admin/order/delivery/:id.
func (s *Server) DispatchOrder(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewDispatchOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.dispatchHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CompleteOrder handles PUT /api/v1/admin/order/complete/:id.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.completeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetOrder handles GET /api/v1/user/order/orderDetail/:id and
// GET /api/v1/admin/order/details/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(detail))
}

// GetStatistics handles GET /api/v1/admin/order/statistics.
func (s *Server) GetStatistics(ctx echo.Context) error {
	query := queries.NewGetOrderStatisticsQuery()

	stats, err := s.getStatisticsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]int{
		"toBeConfirmed":      stats.ToBeConfirmed,
		"confirmed":          stats.Confirmed,
		"deliveryInProgress": stats.DeliveryInProgress,
	})
}

func pathOrderID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps application errors onto HTTP statuses. Lifecycle rule
// violations and lost check-and-set races are both conflicts: the order is
// simply not in the state the caller believed.
func writeError(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &notFound):
		status = http.StatusNotFound
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrStatusConflict):
		status = http.StatusConflict
	case errors.Is(err, commands.ErrShoppingCartIsEmpty),
		errors.Is(err, commands.ErrOutOfDeliveryRange),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, commands.ErrRoutePlanning):
		status = http.StatusBadGateway
	}

	return ctx.JSON(status, errorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
