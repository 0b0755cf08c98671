package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/cavalaria/backend/internal/httputil"
	"github.com/cavalaria/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterOrderRoutes registers the routes for MaintenanceOrders with
// the RouterGroup that is passed.
func RegisterOrderRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsOrderList)
		r.GET("", GetOrders)
		r.POST("", CreateOrders)
	}

	// Order with ID
	{
		r.OPTIONS("/:id", OptionsOrderDetail)
		r.GET("/:id", GetOrder)
		r.PATCH("/:id", UpdateOrder)
		r.DELETE("/:id", DeleteOrder)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Orders
// @Success		204
// @Router			/v1/orders [options]
func OptionsOrderList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Orders
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/orders/{id} [options]
func OptionsOrderDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.MaintenanceOrder{})
}

// @Summary		Create orders
// @Description	Creates new maintenance orders
// @Tags			Orders
// @Accept			json
// @Produce		json
// @Success		201		{object}	OrderCreateResponse
// @Failure		400		{object}	OrderCreateResponse
// @Failure		500		{object}	OrderCreateResponse
// @Param			orders	body		[]OrderEditable	true	"Orders"
// @Router			/v1/orders [post]
func CreateOrders(c *gin.Context) {
	var orders []OrderEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &orders)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OrderCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := OrderCreateResponse{}

	for _, editable := range orders {
		order := editable.model()

		err := models.DB.Create(&order).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newOrder(c, order)
		r.Data = append(r.Data, OrderResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List orders
// @Description	Returns a list of maintenance orders
// @Tags			Orders
// @Produce		json
// @Success		200	{object}	OrderListResponse
// @Failure		500	{object}	OrderListResponse
// @Router			/v1/orders [get]
// @Param			plate				query	string	false	"Filter by plate"
// @Param			orderNumber			query	string	false	"Filter by order number"
// @Param			responsibleShop		query	string	false	"Filter by shop"
// @Param			fromDate			query	string	false	"Only return orders dated on or after this date"
// @Param			untilDate			query	string	false	"Only return orders dated on or before this date"
// @Param			amount				query	string	false	"Filter by amount"
// @Param			amountLessOrEqual	query	string	false	"Only return orders with this amount or less"
// @Param			amountMoreOrEqual	query	string	false	"Only return orders with this amount or more"
// @Param			search				query	string	false	"Search for this text in order number, plate and description"
// @Param			offset				query	uint	false	"The offset of the first Order returned. Defaults to 0."
// @Param			limit				query	int		false	"Maximum number of Orders to return. Defaults to 50."
func GetOrders(c *gin.Context) {
	var filter OrderQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we're filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	var orders []models.MaintenanceOrder

	// Always sort by date, newest first
	q := models.DB.
		Order("order_date DESC").
		Where(filter.model(), queryFields...)

	if !filter.FromDate.IsZero() {
		q = q.Where("order_date >= date(?)", time.Date(filter.FromDate.Year(), filter.FromDate.Month(), filter.FromDate.Day(), 0, 0, 0, 0, time.UTC))
	}

	if !filter.UntilDate.IsZero() {
		q = q.Where("order_date < date(?)", time.Date(filter.UntilDate.Year(), filter.UntilDate.Month(), filter.UntilDate.Day()+1, 0, 0, 0, 0, time.UTC))
	}

	if !filter.AmountLessOrEqual.IsZero() {
		q = q.Where("amount <= ?", filter.AmountLessOrEqual)
	}

	if !filter.AmountMoreOrEqual.IsZero() {
		q = q.Where("amount >= ?", filter.AmountMoreOrEqual)
	}

	if filter.Search != "" {
		q = q.Where(
			models.DB.Where("order_number LIKE ?", fmt.Sprintf("%%%s%%", filter.Search)).Or(
				models.DB.Where("plate LIKE ?", fmt.Sprintf("%%%s%%", filter.Search)),
			).Or(
				models.DB.Where("description LIKE ?", fmt.Sprintf("%%%s%%", filter.Search)),
			),
		)
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Orders and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	err := q.Find(&orders).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OrderListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OrderListResponse{
			Error: &e,
		})
		return
	}

	apiResources := make([]Order, 0)
	for _, order := range orders {
		apiResources = append(apiResources, newOrder(c, order))
	}

	c.JSON(http.StatusOK, OrderListResponse{
		Data: apiResources,
		Pagination: &Pagination{
			Count:  len(apiResources),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get order
// @Description	Returns a specific maintenance order
// @Tags			Orders
// @Produce		json
// @Success		200	{object}	OrderResponse
// @Failure		400	{object}	OrderResponse
// @Failure		404	{object}	OrderResponse
// @Failure		500	{object}	OrderResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/orders/{id} [get]
func GetOrder(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OrderResponse{
			Error: &e,
		})
		return
	}

	var order models.MaintenanceOrder
	err = models.DB.First(&order, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OrderResponse{
			Error: &e,
		})
		return
	}

	data := newOrder(c, order)
	c.JSON(http.StatusOK, OrderResponse{Data: &data})
}

// @Summary		Update order
// @Description	Update an existing maintenance order. Only values to be updated need to be specified.
// @Tags			Orders
// @Accept			json
// @Produce		json
// @Success		200		{object}	OrderResponse
// @Failure		400		{object}	OrderResponse
// @Failure		404		{object}	OrderResponse
// @Failure		500		{object}	OrderResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			order	body		OrderEditable	true	"Order"
// @Router			/v1/orders/{id} [patch]
func UpdateOrder(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OrderResponse{
			Error: &e,
		})
		return
	}

	var order models.MaintenanceOrder
	err = models.DB.First(&order, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OrderResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, OrderEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OrderResponse{
			Error: &e,
		})
		return
	}

	var data OrderEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OrderResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&order).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OrderResponse{
			Error: &e,
		})
		return
	}

	apiResource := newOrder(c, order)
	c.JSON(http.StatusOK, OrderResponse{Data: &apiResource})
}

// @Summary		Delete order
// @Description	Deletes a maintenance order
// @Tags			Orders
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/orders/{id} [delete]
func DeleteOrder(c *gin.Context) {
	deleteResource[models.MaintenanceOrder](c)
}
