// Package http exposes the rental operations over a REST API built on echo.
// It coordinates between HTTP handlers and application use cases: request
// bodies are bound and validated here, domain failures are translated to
// error responses carrying the stable numeric codes of each failure.
package http

import (
	"errors"
	"net/http"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles the HTTP surface of the rental service.
type Server struct {
	// Command handlers
	createMotorcycleHandler      commands.CreateMotorcycleCommandHandler
	changeMotorcyclePlacaHandler commands.ChangeMotorcyclePlacaCommandHandler
	deleteMotorcycleHandler      commands.DeleteMotorcycleByCodeCommandHandler
	createDriverHandler          commands.CreateDeliveryDriverCommandHandler
	attachCnhImageHandler        commands.AttachDriverCnhImageCommandHandler
	createRentHandler            commands.CreateVehicleRentCommandHandler
	returnRentHandler            commands.ReturnVehicleRentCommandHandler

	// Query handlers
	listMotorcyclesHandler queries.ListMotorcyclesQueryHandler
	listDriversHandler     queries.ListDeliveryDriversQueryHandler
	getRentByIDHandler     queries.GetVehicleRentByIDQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createMotorcycleHandler commands.CreateMotorcycleCommandHandler,
	changeMotorcyclePlacaHandler commands.ChangeMotorcyclePlacaCommandHandler,
	deleteMotorcycleHandler commands.DeleteMotorcycleByCodeCommandHandler,
	createDriverHandler commands.CreateDeliveryDriverCommandHandler,
	attachCnhImageHandler commands.AttachDriverCnhImageCommandHandler,
	createRentHandler commands.CreateVehicleRentCommandHandler,
	returnRentHandler commands.ReturnVehicleRentCommandHandler,
	listMotorcyclesHandler queries.ListMotorcyclesQueryHandler,
	listDriversHandler queries.ListDeliveryDriversQueryHandler,
	getRentByIDHandler queries.GetVehicleRentByIDQueryHandler,
) *Server {
	return &Server{
		createMotorcycleHandler:      createMotorcycleHandler,
		changeMotorcyclePlacaHandler: changeMotorcyclePlacaHandler,
		deleteMotorcycleHandler:      deleteMotorcycleHandler,
		createDriverHandler:          createDriverHandler,
		attachCnhImageHandler:        attachCnhImageHandler,
		createRentHandler:            createRentHandler,
		returnRentHandler:            returnRentHandler,
		listMotorcyclesHandler:       listMotorcyclesHandler,
		listDriversHandler:           listDriversHandler,
		getRentByIDHandler:           getRentByIDHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewCustomValidator()

	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/motorcycles", s.CreateMotorcycle)
	v1.GET("/motorcycles", s.ListMotorcycles)
	v1.PATCH("/motorcycles/:code/placa", s.ChangeMotorcyclePlaca)
	v1.DELETE("/motorcycles/:code", s.DeleteMotorcycle)
	v1.POST("/delivery-drivers", s.CreateDeliveryDriver)
	v1.GET("/delivery-drivers", s.ListDeliveryDrivers)
	v1.PATCH("/delivery-drivers/:code/cnh-image", s.AttachCnhImage)
	v1.POST("/rents", s.CreateVehicleRent)
	v1.GET("/rents/:id", s.GetVehicleRent)
	v1.PATCH("/rents/:id/return", s.ReturnVehicleRent)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateMotorcycle handles POST /api/v1/motorcycles - registers a new motorcycle.
func (s *Server) CreateMotorcycle(ctx echo.Context) error {
	var req CreateMotorcycleRequest
	if !bindAndValidate(ctx, &req) {
		return nil
	}

	cmd := commands.NewCreateMotorcycleCommand(req.Code, req.Placa, req.Model, req.Year)
	result, err := s.createMotorcycleHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "Failed to register motorcycle")
	}
	if result.IsFailure() {
		status, body := failureResponse(result.Errors())
		return ctx.JSON(status, body)
	}

	return ctx.JSON(http.StatusCreated, motorcycleResponse(result.RequiredValue()))
}

// ListMotorcycles handles GET /api/v1/motorcycles - lists motorcycles with
// optional code and placa filters.
func (s *Server) ListMotorcycles(ctx echo.Context) error {
	query := queries.NewListMotorcyclesQuery(
		ctx.QueryParam("code"),
		ctx.QueryParam("placa"),
	)

	rows, err := s.listMotorcyclesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve motorcycles")
	}

	response := make([]MotorcycleResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, motorcycleRowResponse(row))
	}

	return ctx.JSON(http.StatusOK, response)
}

// ChangeMotorcyclePlaca handles PATCH /api/v1/motorcycles/:code/placa.
func (s *Server) ChangeMotorcyclePlaca(ctx echo.Context) error {
	var req ChangeMotorcyclePlacaRequest
	if !bindAndValidate(ctx, &req) {
		return nil
	}

	cmd := commands.NewChangeMotorcyclePlacaCommand(ctx.Param("code"), req.Placa)
	result, err := s.changeMotorcyclePlacaHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "Failed to change motorcycle plate")
	}
	if result.IsFailure() {
		status, body := failureResponse(result.Errors())
		return ctx.JSON(status, body)
	}

	return ctx.JSON(http.StatusOK, motorcycleResponse(result.RequiredValue()))
}

// DeleteMotorcycle handles DELETE /api/v1/motorcycles/:code.
func (s *Server) DeleteMotorcycle(ctx echo.Context) error {
	cmd := commands.NewDeleteMotorcycleByCodeCommand(ctx.Param("code"))
	result, err := s.deleteMotorcycleHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "Failed to delete motorcycle")
	}
	if result.IsFailure() {
		status, body := failureResponse(result.Errors())
		return ctx.JSON(status, body)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateDeliveryDriver handles POST /api/v1/delivery-drivers.
func (s *Server) CreateDeliveryDriver(ctx echo.Context) error {
	var req CreateDeliveryDriverRequest
	if !bindAndValidate(ctx, &req) {
		return nil
	}

	cmd := commands.NewCreateDeliveryDriverCommand(
		req.Code,
		req.Name,
		req.Cnpj,
		req.BirthDate,
		req.CnhNumber,
		req.CnhCategory,
		req.CnhImageURL,
	)
	result, err := s.createDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "Failed to register delivery driver")
	}
	if result.IsFailure() {
		status, body := failureResponse(result.Errors())
		return ctx.JSON(status, body)
	}

	return ctx.JSON(http.StatusCreated, driverResponse(result.RequiredValue()))
}

// ListDeliveryDrivers handles GET /api/v1/delivery-drivers.
func (s *Server) ListDeliveryDrivers(ctx echo.Context) error {
	rows, err := s.listDriversHandler.Handle(ctx.Request().Context(), queries.NewListDeliveryDriversQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve delivery drivers")
	}

	response := make([]DeliveryDriverResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, driverRowResponse(row))
	}

	return ctx.JSON(http.StatusOK, response)
}

// AttachCnhImage handles PATCH /api/v1/delivery-drivers/:code/cnh-image.
// The license image comes in as a multipart file under "cnh_image".
func (s *Server) AttachCnhImage(ctx echo.Context) error {
	fileHeader, err := ctx.FormFile("cnh_image")
	if err != nil {
		return badRequest(ctx, "cnh_image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return internalError(ctx, "Failed to read license image")
	}
	defer func() { _ = file.Close() }()

	cmd, err := commands.NewAttachDriverCnhImageCommand(
		ctx.Param("code"),
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.attachCnhImageHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "Failed to store license image")
	}
	if result.IsFailure() {
		status, body := failureResponse(result.Errors())
		return ctx.JSON(status, body)
	}

	return ctx.JSON(http.StatusOK, driverResponse(result.RequiredValue()))
}

// CreateVehicleRent handles POST /api/v1/rents - rents a motorcycle to a driver.
func (s *Server) CreateVehicleRent(ctx echo.Context) error {
	var req CreateVehicleRentRequest
	if !bindAndValidate(ctx, &req) {
		return nil
	}

	cmd := commands.NewCreateVehicleRentCommand(
		req.DriverCode,
		req.VehicleCode,
		req.StartAt,
		req.ExpectedEndingDate,
		req.PlanDays,
	)
	result, err := s.createRentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "Failed to create rental")
	}
	if result.IsFailure() {
		status, body := failureResponse(result.Errors())
		return ctx.JSON(status, body)
	}

	return ctx.JSON(http.StatusCreated, rentResponse(result.RequiredValue()))
}

// GetVehicleRent handles GET /api/v1/rents/:id.
func (s *Server) GetVehicleRent(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid rental id")
	}

	query, err := queries.NewGetVehicleRentByIDQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid rental id")
	}

	row, err := s.getRentByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Rental not found",
			})
		}
		return internalError(ctx, "Failed to retrieve rental")
	}

	return ctx.JSON(http.StatusOK, rentRowResponse(row))
}

// ReturnVehicleRent handles PATCH /api/v1/rents/:id/return - records the
// actual devolution instant. Late devolutions are accepted.
func (s *Server) ReturnVehicleRent(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid rental id")
	}

	var req ReturnVehicleRentRequest
	if !bindAndValidate(ctx, &req) {
		return nil
	}

	cmd, err := commands.NewReturnVehicleRentCommand(id, req.EndedAt)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.returnRentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "Failed to return rental")
	}
	if result.IsFailure() {
		status, body := failureResponse(result.Errors())
		return ctx.JSON(status, body)
	}

	return ctx.JSON(http.StatusOK, rentResponse(result.RequiredValue()))
}

// bindAndValidate binds the request body and runs struct validation. On
// failure it writes the 400 response and reports false, so callers must stop.
func bindAndValidate(ctx echo.Context, req any) bool {
	if err := ctx.Bind(req); err != nil {
		_ = badRequest(ctx, "Invalid request body")
		return false
	}
	if err := ctx.Validate(req); err != nil {
		message := "Invalid request body"
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			if m, ok := httpErr.Message.(string); ok {
				message = m
			}
		}
		_ = badRequest(ctx, message)
		return false
	}
	return true
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
