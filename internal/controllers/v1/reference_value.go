package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/cavalaria/backend/internal/balance"
	"github.com/cavalaria/backend/internal/httputil"
	"github.com/cavalaria/backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterReferenceValueRoutes registers the routes for ReferenceValues
// and the derived balance with the RouterGroup that is passed. The group
// is the vehicle detail group, the vehicle ID comes from the URI.
func RegisterReferenceValueRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/:id/reference-value", OptionsReferenceValue)
		r.GET("/:id/reference-value", GetReferenceValue)
		r.PUT("/:id/reference-value", PutReferenceValue)
	}

	{
		r.OPTIONS("/:id/balance", OptionsBalance)
		r.GET("/:id/balance", GetBalance)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			ReferenceValues
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/vehicles/{id}/reference-value [options]
func OptionsReferenceValue(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Vehicle{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPut(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			ReferenceValues
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/vehicles/{id}/balance [options]
func OptionsBalance(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Vehicle{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Get reference value
// @Description	Returns the reference value of a vehicle with its change history
// @Tags			ReferenceValues
// @Produce		json
// @Success		200	{object}	ReferenceValueResponse
// @Failure		400	{object}	ReferenceValueResponse
// @Failure		404	{object}	ReferenceValueResponse
// @Failure		500	{object}	ReferenceValueResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/vehicles/{id}/reference-value [get]
func GetReferenceValue(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReferenceValueResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.First(&models.Vehicle{}, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReferenceValueResponse{
			Error: &e,
		})
		return
	}

	value, err := models.ReferenceValueForVehicle(uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReferenceValueResponse{
			Error: &e,
		})
		return
	}

	data := newReferenceValue(c, value)
	c.JSON(http.StatusOK, ReferenceValueResponse{Data: &data})
}

// @Summary		Set reference value
// @Description	Sets the reference value of a vehicle. The first call creates the value, every later call updates it and appends a history entry.
// @Tags			ReferenceValues
// @Accept			json
// @Produce		json
// @Success		200		{object}	ReferenceValueResponse
// @Failure		400		{object}	ReferenceValueResponse
// @Failure		404		{object}	ReferenceValueResponse
// @Failure		409		{object}	ReferenceValueResponse
// @Failure		500		{object}	ReferenceValueResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			value	body		ReferenceValueEditable	true	"ReferenceValue"
// @Router			/v1/vehicles/{id}/reference-value [put]
func PutReferenceValue(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReferenceValueResponse{
			Error: &e,
		})
		return
	}

	var vehicle models.Vehicle
	err = models.DB.First(&vehicle, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReferenceValueResponse{
			Error: &e,
		})
		return
	}

	var editable ReferenceValueEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReferenceValueResponse{
			Error: &e,
		})
		return
	}

	value, err := models.SaveReferenceValue(vehicle, editable.ValueCents)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReferenceValueResponse{
			Error: &e,
		})
		return
	}

	// The history is preloaded again so the response is complete even when
	// this save only created the record
	value, err = models.ReferenceValueForVehicle(vehicle.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReferenceValueResponse{
			Error: &e,
		})
		return
	}

	data := newReferenceValue(c, value)
	c.JSON(http.StatusOK, ReferenceValueResponse{Data: &data})
}

// @Summary		Get maintenance balance
// @Description	Returns the maintenance spending balance of a vehicle for the trailing twelve months
// @Tags			ReferenceValues
// @Produce		json
// @Success		200	{object}	BalanceResponse
// @Failure		400	{object}	BalanceResponse
// @Failure		404	{object}	BalanceResponse
// @Failure		500	{object}	BalanceResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/vehicles/{id}/balance [get]
func GetBalance(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BalanceResponse{
			Error: &e,
		})
		return
	}

	var vehicle models.Vehicle
	err = models.DB.First(&vehicle, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BalanceResponse{
			Error: &e,
		})
		return
	}

	// A vehicle without a reference value has a zero limit, not an error
	var valueCents int64
	value, err := models.ReferenceValueForVehicle(vehicle.ID)
	if err != nil && !errors.Is(err, models.ErrResourceNotFound) && !errors.Is(err, gorm.ErrRecordNotFound) {
		e := err.Error()
		c.JSON(status(err), BalanceResponse{
			Error: &e,
		})
		return
	}
	if err == nil {
		valueCents = value.ValueCents
	}

	orders, err := models.OrdersForPlate(vehicle.Plate)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BalanceResponse{
			Error: &e,
		})
		return
	}

	summary := balance.Calculate(valueCents, balance.Window(orders, time.Now()))
	c.JSON(http.StatusOK, BalanceResponse{Data: &summary})
}
