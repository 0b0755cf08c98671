package v1

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/cavalaria/backend/internal/fleet"
	"github.com/cavalaria/backend/internal/httputil"
	"github.com/cavalaria/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// RegisterVehicleRoutes registers the routes for Vehicles with
// the RouterGroup that is passed. Mutations drop the vehicle lookup
// cache so document rendering sees the change.
func RegisterVehicleRoutes(r *gin.RouterGroup, vehicles *fleet.Cache) {
	invalidating := func(handler gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			handler(c)

			if vehicles != nil {
				vehicles.Invalidate()
			}
		}
	}

	// Root group
	{
		r.OPTIONS("", OptionsVehicleList)
		r.GET("", GetVehicles)
		r.POST("", invalidating(CreateVehicles))
	}

	// Fleet status board. Must be registered before the ":id" routes so gin
	// does not treat "fleet" as an ID.
	{
		r.OPTIONS("/fleet", OptionsFleet)
		r.GET("/fleet", GetFleet)
	}

	// Vehicle with ID
	{
		r.OPTIONS("/:id", OptionsVehicleDetail)
		r.GET("/:id", GetVehicle)
		r.PATCH("/:id", invalidating(UpdateVehicle))
		r.DELETE("/:id", invalidating(DeleteVehicle))
	}

	// Damage records of a vehicle
	{
		r.OPTIONS("/:id/damages", OptionsDamages)
		r.GET("/:id/damages", GetDamages)
		r.POST("/:id/damages", CreateDamage)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Vehicles
// @Success		204
// @Router			/v1/vehicles [options]
func OptionsVehicleList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Vehicles
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/vehicles/{id} [options]
func OptionsVehicleDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Vehicle{})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Vehicles
// @Success		204
// @Router			/v1/vehicles/fleet [options]
func OptionsFleet(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Vehicles
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/vehicles/{id}/damages [options]
func OptionsDamages(c *gin.Context) {
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

	httputil.OptionsGetPost(c)
}

// @Summary		Create vehicles
// @Description	Creates new fleet vehicles
// @Tags			Vehicles
// @Accept			json
// @Produce		json
// @Success		201			{object}	VehicleCreateResponse
// @Failure		400			{object}	VehicleCreateResponse
// @Failure		500			{object}	VehicleCreateResponse
// @Param			vehicles	body		[]VehicleEditable	true	"Vehicles"
// @Router			/v1/vehicles [post]
func CreateVehicles(c *gin.Context) {
	var vehicles []VehicleEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &vehicles)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VehicleCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := VehicleCreateResponse{}

	for _, editable := range vehicles {
		vehicle := editable.model()

		err := models.DB.Create(&vehicle).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newVehicle(c, vehicle)
		r.Data = append(r.Data, VehicleResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List vehicles
// @Description	Returns a list of fleet vehicles
// @Tags			Vehicles
// @Produce		json
// @Success		200	{object}	VehicleListResponse
// @Failure		500	{object}	VehicleListResponse
// @Router			/v1/vehicles [get]
// @Param			registrationTag	query	string	false	"Filter by registration tag"
// @Param			plate			query	string	false	"Filter by plate, *-wildcards are supported"
// @Param			make			query	string	false	"Filter by manufacturer"
// @Param			model			query	string	false	"Filter by model"
// @Param			year			query	int		false	"Filter by model year"
// @Param			status			query	string	false	"Filter by operational status"
// @Param			note			query	string	false	"Filter by note"
// @Param			search			query	string	false	"Search for this text in registration tag, plate and note"
// @Param			offset			query	uint	false	"The offset of the first Vehicle returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of Vehicles to return. Defaults to 50."
func GetVehicles(c *gin.Context) {
	var filter VehicleQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we're filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	var vehicles []models.Vehicle

	// Always sort by registration tag
	q := models.DB.
		Order("registration_tag ASC").
		Where(filter.model(), queryFields...)

	if filter.Note != "" {
		q = q.Where("note LIKE ?", fmt.Sprintf("%%%s%%", filter.Note))
	} else if slices.Contains(setFields, "Note") {
		q = q.Where("note = ''")
	}

	if filter.Search != "" {
		q = q.Where(
			models.DB.Where("registration_tag LIKE ?", fmt.Sprintf("%%%s%%", filter.Search)).Or(
				models.DB.Where("plate LIKE ?", fmt.Sprintf("%%%s%%", filter.Search)),
			).Or(
				models.DB.Where("note LIKE ?", fmt.Sprintf("%%%s%%", filter.Search)),
			),
		)
	}

	err := q.Find(&vehicles).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VehicleListResponse{
			Error: &e,
		})
		return
	}

	// The plate filter supports *-wildcards, which is matched in memory
	// because the plate pattern syntax is not SQL's
	if slices.Contains(setFields, "Plate") {
		pattern := strings.ToUpper(filter.Plate)

		matched := make([]models.Vehicle, 0, len(vehicles))
		for _, vehicle := range vehicles {
			if glob.Glob(pattern, vehicle.Plate) {
				matched = append(matched, vehicle)
			}
		}
		vehicles = matched
	}

	count := int64(len(vehicles))

	// Set the offset and limit on the filtered list. The conversion of a
	// huge uint can wrap to a negative value, which also clamps.
	offset := int(filter.Offset)
	if offset < 0 || offset > len(vehicles) {
		offset = len(vehicles)
	}
	vehicles = vehicles[offset:]

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	if limit >= 0 && limit < len(vehicles) {
		vehicles = vehicles[:limit]
	}

	apiResources := make([]Vehicle, 0)
	for _, vehicle := range vehicles {
		apiResources = append(apiResources, newVehicle(c, vehicle))
	}

	c.JSON(http.StatusOK, VehicleListResponse{
		Data: apiResources,
		Pagination: &Pagination{
			Count:  len(apiResources),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Fleet status
// @Description	Returns all vehicles with their current number of unrepaired damage records
// @Tags			Vehicles
// @Produce		json
// @Success		200	{object}	FleetListResponse
// @Failure		500	{object}	FleetListResponse
// @Router			/v1/vehicles/fleet [get]
func GetFleet(c *gin.Context) {
	var vehicles []models.Vehicle

	err := models.DB.Order("registration_tag ASC").Find(&vehicles).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FleetListResponse{
			Error: &e,
		})
		return
	}

	fleet := make([]FleetVehicle, len(vehicles))

	// Count the open damages for all vehicles concurrently
	g := new(errgroup.Group)
	for i, vehicle := range vehicles {
		i, vehicle := i, vehicle

		g.Go(func() error {
			count, err := models.OpenDamageCount(vehicle.ID)
			if err != nil {
				return err
			}

			fleet[i] = FleetVehicle{
				Vehicle:     newVehicle(c, vehicle),
				OpenDamages: count,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		e := err.Error()
		c.JSON(status(err), FleetListResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, FleetListResponse{Data: fleet})
}

// @Summary		Get vehicle
// @Description	Returns a specific fleet vehicle
// @Tags			Vehicles
// @Produce		json
// @Success		200	{object}	VehicleResponse
// @Failure		400	{object}	VehicleResponse
// @Failure		404	{object}	VehicleResponse
// @Failure		500	{object}	VehicleResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/vehicles/{id} [get]
func GetVehicle(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VehicleResponse{
			Error: &e,
		})
		return
	}

	var vehicle models.Vehicle
	err = models.DB.First(&vehicle, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VehicleResponse{
			Error: &e,
		})
		return
	}

	data := newVehicle(c, vehicle)
	c.JSON(http.StatusOK, VehicleResponse{Data: &data})
}

// @Summary		Update vehicle
// @Description	Update an existing fleet vehicle. Only values to be updated need to be specified.
// @Tags			Vehicles
// @Accept			json
// @Produce		json
// @Success		200		{object}	VehicleResponse
// @Failure		400		{object}	VehicleResponse
// @Failure		404		{object}	VehicleResponse
// @Failure		500		{object}	VehicleResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			vehicle	body		VehicleEditable	true	"Vehicle"
// @Router			/v1/vehicles/{id} [patch]
func UpdateVehicle(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VehicleResponse{
			Error: &e,
		})
		return
	}

	var vehicle models.Vehicle
	err = models.DB.First(&vehicle, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VehicleResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, VehicleEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VehicleResponse{
			Error: &e,
		})
		return
	}

	var data VehicleEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VehicleResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&vehicle).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VehicleResponse{
			Error: &e,
		})
		return
	}

	apiResource := newVehicle(c, vehicle)
	c.JSON(http.StatusOK, VehicleResponse{Data: &apiResource})
}

// @Summary		Delete vehicle
// @Description	Deletes a fleet vehicle
// @Tags			Vehicles
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/vehicles/{id} [delete]
func DeleteVehicle(c *gin.Context) {
	deleteResource[models.Vehicle](c)
}

// @Summary		List damage records
// @Description	Returns the damage records of a vehicle, newest first
// @Tags			Vehicles
// @Produce		json
// @Success		200	{object}	DamageListResponse
// @Failure		400	{object}	DamageListResponse
// @Failure		404	{object}	DamageListResponse
// @Failure		500	{object}	DamageListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/vehicles/{id}/damages [get]
func GetDamages(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DamageListResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.First(&models.Vehicle{}, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DamageListResponse{
			Error: &e,
		})
		return
	}

	var damages []models.VehicleDamage
	err = models.DB.
		Where("vehicle_id = ?", uri.ID).
		Order("reported_at DESC").
		Find(&damages).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DamageListResponse{
			Error: &e,
		})
		return
	}

	apiResources := make([]Damage, 0)
	for _, damage := range damages {
		apiResources = append(apiResources, newDamage(damage))
	}

	c.JSON(http.StatusOK, DamageListResponse{Data: apiResources})
}

// @Summary		Create damage record
// @Description	Creates a new damage record for a vehicle
// @Tags			Vehicles
// @Accept			json
// @Produce		json
// @Success		201		{object}	DamageResponse
// @Failure		400		{object}	DamageResponse
// @Failure		404		{object}	DamageResponse
// @Failure		500		{object}	DamageResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			damage	body		DamageEditable	true	"Damage"
// @Router			/v1/vehicles/{id}/damages [post]
func CreateDamage(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DamageResponse{
			Error: &e,
		})
		return
	}

	var editable DamageEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DamageResponse{
			Error: &e,
		})
		return
	}

	damage := models.VehicleDamage{
		VehicleID:   uri.ID.UUID,
		Description: editable.Description,
		ReportedAt:  editable.ReportedAt,
		Repaired:    editable.Repaired,
	}

	err = models.DB.Create(&damage).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DamageResponse{
			Error: &e,
		})
		return
	}

	data := newDamage(damage)
	c.JSON(http.StatusCreated, DamageResponse{Data: &data})
}
