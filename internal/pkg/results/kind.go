package results

// ErrorKind is the closed enumeration of domain failure kinds.
// Each kind carries a distinct stable numeric code; kinds below 1000 double as
// HTTP status codes, the four-digit kinds are refinements of BadRequest.
type ErrorKind int

// DefaultErrorKind is used when a failure is recorded without a specific kind.
const DefaultErrorKind = BadRequest

const (
	BadRequest   ErrorKind = 400
	Unauthorized ErrorKind = 401
	Forbidden    ErrorKind = 403
	NotFound     ErrorKind = 404
	Conflict     ErrorKind = 409

	InvalidPlate                  ErrorKind = 4001
	InvalidYear                   ErrorKind = 4002
	InvalidModel                  ErrorKind = 4003
	InvalidName                   ErrorKind = 4004
	InvalidCnpj                   ErrorKind = 4005
	InvalidBirthDate              ErrorKind = 4006
	InvalidCnhNumber              ErrorKind = 4007
	InvalidCnhType                ErrorKind = 4008
	InvalidCnhImage               ErrorKind = 4009
	InvalidStartDate              ErrorKind = 4010
	InvalidEstimatedEndDate       ErrorKind = 4011
	InvalidRentalPeriod           ErrorKind = 4012
	InvalidEndDate                ErrorKind = 4013
	LateReturn                    ErrorKind = 4014
	InvalidRentalPlan             ErrorKind = 4015
	PlanMismatch                  ErrorKind = 4016
	DriverHasInsufficientCategory ErrorKind = 4017
)

var kindNames = map[ErrorKind]string{
	BadRequest:                    "BadRequest",
	Unauthorized:                  "Unauthorized",
	Forbidden:                     "Forbidden",
	NotFound:                      "NotFound",
	Conflict:                      "Conflict",
	InvalidPlate:                  "InvalidPlate",
	InvalidYear:                   "InvalidYear",
	InvalidModel:                  "InvalidModel",
	InvalidName:                   "InvalidName",
	InvalidCnpj:                   "InvalidCnpj",
	InvalidBirthDate:              "InvalidBirthDate",
	InvalidCnhNumber:              "InvalidCnhNumber",
	InvalidCnhType:                "InvalidCnhType",
	InvalidCnhImage:               "InvalidCnhImage",
	InvalidStartDate:              "InvalidStartDate",
	InvalidEstimatedEndDate:       "InvalidEstimatedEndDate",
	InvalidRentalPeriod:           "InvalidRentalPeriod",
	InvalidEndDate:                "InvalidEndDate",
	LateReturn:                    "LateReturn",
	InvalidRentalPlan:             "InvalidRentalPlan",
	PlanMismatch:                  "PlanMismatch",
	DriverHasInsufficientCategory: "DriverHasInsufficientCategory",
}

// String returns the symbolic name of the kind, or "BadRequest" for unknown values.
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[DefaultErrorKind]
}

// Code returns the stable numeric code of the kind.
func (k ErrorKind) Code() int {
	return int(k)
}

// HTTPStatus maps the kind to the HTTP status a boundary layer should respond with.
// Kinds that are themselves status codes map directly; every four-digit
// validation kind maps to 400.
func (k ErrorKind) HTTPStatus() int {
	if k < 1000 {
		return int(k)
	}
	return int(BadRequest)
}
