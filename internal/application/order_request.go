package application

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/costflow/costflow/internal/domain"
	validator "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// OrderRequest is the raw order input accepted from the CLI and MCP tools.
type OrderRequest struct {
	CustomerID string `json:"customer_id,omitempty" validate:"omitempty,max=64"`
	Cost       string `json:"cost" validate:"required,numeric"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ParseOrder validates req and converts it into a domain.Order.
// All failures wrap domain.ErrInvalidOrder.
func ParseOrder(req OrderRequest) (domain.Order, error) {
	req.CustomerID = strings.TrimSpace(req.CustomerID)
	req.Cost = strings.TrimSpace(req.Cost)
	req.Date = strings.TrimSpace(req.Date)

	if err := validate.Struct(req); err != nil {
		return domain.Order{}, fmt.Errorf("%w: %s", domain.ErrInvalidOrder, describeValidation(err))
	}

	cost, err := decimal.NewFromString(req.Cost)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%w: cost %q: %v", domain.ErrInvalidOrder, req.Cost, err)
	}
	if cost.IsNegative() {
		return domain.Order{}, fmt.Errorf("%w: cost must not be negative", domain.ErrInvalidOrder)
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%w: date %q: %v", domain.ErrInvalidOrder, req.Date, err)
	}

	return domain.NewOrder(req.CustomerID, date, cost), nil
}

func describeValidation(err error) string {
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" is required")
		case "numeric":
			msgs = append(msgs, fe.Field()+" must be a number")
		case "datetime":
			msgs = append(msgs, fe.Field()+" must be an RFC 3339 timestamp")
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
