package v1

import (
	"fmt"
	"time"

	"github.com/cavalaria/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// OrderEditable represents all user configurable parameters
type OrderEditable struct {
	Plate           string          `json:"plate" example:"BRA2E19" default:""`                      // Plate of the serviced vehicle
	OrderNumber     string          `json:"orderNumber" example:"2024/0147" default:""`              // Unique service order number
	OrderDate       time.Time       `json:"orderDate" example:"2024-03-12T00:00:00Z"`                // Date the order was issued. Defaults to the current time.
	Amount          decimal.Decimal `json:"amount" example:"1521.95" default:"0"`                    // Total amount of the order
	Description     string          `json:"description" example:"Brake pad replacement" default:""`  // What was done
	ResponsibleShop string          `json:"responsibleShop" example:"Oficina Central" default:""`    // The shop that performed the service
}

func (editable OrderEditable) model() models.MaintenanceOrder {
	return models.MaintenanceOrder{
		Plate:           editable.Plate,
		OrderNumber:     editable.OrderNumber,
		OrderDate:       editable.OrderDate,
		Amount:          editable.Amount,
		Description:     editable.Description,
		ResponsibleShop: editable.ResponsibleShop,
	}
}

type OrderLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/orders/d430d7c3-d14c-4712-9336-ee56965a6673"` // The order itself
}

// Order is the representation of a MaintenanceOrder in API v1.
type Order struct {
	models.DefaultModel
	OrderEditable
	Links OrderLinks `json:"links"`
}

// newOrder returns the API v1 representation of the resource
func newOrder(c *gin.Context, model models.MaintenanceOrder) Order {
	url := c.GetString(string(models.DBContextURL))

	return Order{
		DefaultModel: model.DefaultModel,
		OrderEditable: OrderEditable{
			Plate:           model.Plate,
			OrderNumber:     model.OrderNumber,
			OrderDate:       model.OrderDate,
			Amount:          model.Amount,
			Description:     model.Description,
			ResponsibleShop: model.ResponsibleShop,
		},
		Links: OrderLinks{
			Self: fmt.Sprintf("%s/v1/orders/%s", url, model.ID),
		},
	}
}

type OrderListResponse struct {
	Data       []Order     `json:"data"`                                                          // List of orders
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type OrderCreateResponse struct {
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []OrderResponse `json:"data"`                                                          // List of created Orders
}

func (o *OrderCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	o.Data = append(o.Data, OrderResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type OrderResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this order
	Data  *Order  `json:"data"`                                                          // The Order data, if creation was successful
}

type OrderQueryFilter struct {
	Plate           string          `form:"plate"`                          // Exact plate
	OrderNumber     string          `form:"orderNumber"`                    // Exact order number
	ResponsibleShop string          `form:"responsibleShop"`                // Exact shop name
	FromDate        time.Time       `form:"fromDate" filterField:"false"`   // Only return orders dated on or after this date
	UntilDate       time.Time       `form:"untilDate" filterField:"false"`  // Only return orders dated on or before this date
	Amount            decimal.Decimal `form:"amount"`                                // Exact amount
	AmountLessOrEqual decimal.Decimal `form:"amountLessOrEqual" filterField:"false"` // Only return orders with this amount or less
	AmountMoreOrEqual decimal.Decimal `form:"amountMoreOrEqual" filterField:"false"` // Only return orders with this amount or more
	Search          string          `form:"search" filterField:"false"`     // Search for this text in order number, plate and description
	Offset          uint            `form:"offset" filterField:"false"`     // The offset of the first Order returned. Defaults to 0.
	Limit           int             `form:"limit" filterField:"false"`      // Maximum number of Orders to return. Defaults to 50.
}

func (f OrderQueryFilter) model() models.MaintenanceOrder {
	return models.MaintenanceOrder{
		Plate:           f.Plate,
		OrderNumber:     f.OrderNumber,
		ResponsibleShop: f.ResponsibleShop,
		Amount:          f.Amount,
	}
}
