package http

import (
	"net/http"
	"time"

	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/model/driver"
	"rental/internal/core/domain/model/motorcycle"
	"rental/internal/core/domain/model/rent"
	"rental/internal/pkg/results"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CustomValidator adapts go-playground/validator to echo's Validator
// interface so handlers can call ctx.Validate on bound requests.
type CustomValidator struct {
	validator *validator.Validate
}

// NewCustomValidator creates the validator used by the HTTP server.
func NewCustomValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// CreateMotorcycleRequest is the body of POST /api/v1/motorcycles.
type CreateMotorcycleRequest struct {
	Code  string `json:"code" validate:"required"`
	Placa string `json:"placa" validate:"required"`
	Model string `json:"model" validate:"required"`
	Year  int    `json:"year" validate:"required"`
}

// ChangeMotorcyclePlacaRequest is the body of PATCH /api/v1/motorcycles/:code/placa.
type ChangeMotorcyclePlacaRequest struct {
	Placa string `json:"placa" validate:"required"`
}

// CreateDeliveryDriverRequest is the body of POST /api/v1/delivery-drivers.
type CreateDeliveryDriverRequest struct {
	Code        string    `json:"code" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	Cnpj        string    `json:"cnpj" validate:"required"`
	BirthDate   time.Time `json:"birth_date" validate:"required"`
	CnhNumber   string    `json:"cnh_number" validate:"required"`
	CnhCategory string    `json:"cnh_category" validate:"required"`
	CnhImageURL string    `json:"cnh_image_url" validate:"omitempty,url"`
}

// CreateVehicleRentRequest is the body of POST /api/v1/rents.
type CreateVehicleRentRequest struct {
	DriverCode         string    `json:"driver_code" validate:"required"`
	VehicleCode        string    `json:"vehicle_code" validate:"required"`
	StartAt            time.Time `json:"start_at" validate:"required"`
	ExpectedEndingDate time.Time `json:"expected_ending_date" validate:"required"`
	PlanDays           int       `json:"plan_days" validate:"required"`
}

// ReturnVehicleRentRequest is the body of PATCH /api/v1/rents/:id/return.
type ReturnVehicleRentRequest struct {
	EndedAt time.Time `json:"ended_at" validate:"required"`
}

// MotorcycleResponse is the wire representation of a motorcycle.
type MotorcycleResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Placa     string    `json:"placa"`
	Model     string    `json:"model"`
	Year      int       `json:"year"`
	CreatedAt time.Time `json:"created_at"`
}

// DeliveryDriverResponse is the wire representation of a delivery driver.
type DeliveryDriverResponse struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Cnpj        string    `json:"cnpj"`
	BirthDate   time.Time `json:"birth_date"`
	CnhNumber   string    `json:"cnh_number"`
	CnhCategory string    `json:"cnh_category"`
	CnhImageURL string    `json:"cnh_image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// VehicleRentResponse is the wire representation of a vehicle rental.
type VehicleRentResponse struct {
	ID                 string          `json:"id"`
	DriverID           string          `json:"driver_id"`
	VehicleID          string          `json:"vehicle_id"`
	StartAt            time.Time       `json:"start_at"`
	ExpectedEndingDate time.Time       `json:"expected_ending_date"`
	PlanDays           int             `json:"plan_days"`
	DailyValue         decimal.Decimal `json:"daily_value"`
	EndedAt            *time.Time      `json:"ended_at,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

// ErrorDetail is a single typed failure inside an error response.
type ErrorDetail struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the error body returned by every endpoint.
type ErrorResponse struct {
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Errors  []ErrorDetail `json:"errors,omitempty"`
}

func motorcycleResponse(m *motorcycle.Motorcycle) MotorcycleResponse {
	return MotorcycleResponse{
		ID:        m.ID().String(),
		Code:      m.Code().String(),
		Placa:     m.Placa(),
		Model:     m.Model(),
		Year:      m.Year(),
		CreatedAt: m.CreatedAt(),
	}
}

func motorcycleRowResponse(row queries.ListMotorcyclesQueryResponse) MotorcycleResponse {
	return MotorcycleResponse{
		ID:        row.ID.String(),
		Code:      row.Code,
		Placa:     row.Placa,
		Model:     row.Model,
		Year:      row.Year,
		CreatedAt: row.CreatedAt,
	}
}

func driverResponse(d *driver.DeliveryDriver) DeliveryDriverResponse {
	return DeliveryDriverResponse{
		ID:          d.ID().String(),
		Code:        d.Code().String(),
		Name:        d.Name(),
		Cnpj:        d.Cnpj(),
		BirthDate:   d.BirthDate(),
		CnhNumber:   d.CnhNumber(),
		CnhCategory: d.CnhCategory().String(),
		CnhImageURL: d.CnhImageURL(),
		CreatedAt:   d.CreatedAt(),
	}
}

func driverRowResponse(row queries.ListDeliveryDriversQueryResponse) DeliveryDriverResponse {
	imageURL := ""
	if row.CnhImageURL != nil {
		imageURL = *row.CnhImageURL
	}

	return DeliveryDriverResponse{
		ID:          row.ID.String(),
		Code:        row.Code,
		Name:        row.Name,
		Cnpj:        row.Cnpj,
		BirthDate:   row.BirthDate,
		CnhNumber:   row.CnhNumber,
		CnhCategory: row.CnhCategory,
		CnhImageURL: imageURL,
		CreatedAt:   row.CreatedAt,
	}
}

func rentResponse(r *rent.VehicleRent) VehicleRentResponse {
	return VehicleRentResponse{
		ID:                 r.ID().String(),
		DriverID:           r.DriverID().String(),
		VehicleID:          r.VehicleID().String(),
		StartAt:            r.StartAt(),
		ExpectedEndingDate: r.ExpectedEndingDate(),
		PlanDays:           r.PlanDays(),
		DailyValue:         r.DailyValue(),
		EndedAt:            r.EndedAt(),
		CreatedAt:          r.CreatedAt(),
	}
}

func rentRowResponse(row queries.GetVehicleRentByIDQueryResponse) VehicleRentResponse {
	return VehicleRentResponse{
		ID:                 row.ID.String(),
		DriverID:           row.DriverID.String(),
		VehicleID:          row.VehicleID.String(),
		StartAt:            row.StartAt,
		ExpectedEndingDate: row.ExpectedEndingDate,
		PlanDays:           row.PlanDays,
		DailyValue:         row.DailyValue,
		EndedAt:            row.EndedAt,
		CreatedAt:          row.CreatedAt,
	}
}

// failureResponse maps accumulated domain failures to the error body. The
// response status comes from the first error's kind; the body carries every
// failure with its stable numeric code.
func failureResponse(failures []results.Error) (int, ErrorResponse) {
	status := http.StatusBadRequest
	message := "request failed"
	if len(failures) > 0 {
		status = failures[0].Kind.HTTPStatus()
		message = failures[0].Message
	}

	details := make([]ErrorDetail, 0, len(failures))
	for _, failure := range failures {
		details = append(details, ErrorDetail{
			Code:    failure.Kind.Code(),
			Message: failure.Message,
		})
	}

	return status, ErrorResponse{
		Code:    status,
		Message: message,
		Errors:  details,
	}
}
