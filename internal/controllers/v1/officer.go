package v1

import (
	"net/http"

	"github.com/cavalaria/backend/internal/httputil"
	"github.com/cavalaria/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterOfficerRoutes registers the routes for Officers with
// the RouterGroup that is passed.
func RegisterOfficerRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsOfficerList)
		r.GET("", GetOfficers)
		r.POST("", CreateOfficers)
	}

	// Officer with ID
	{
		r.OPTIONS("/:id", OptionsOfficerDetail)
		r.GET("/:id", GetOfficer)
		r.PATCH("/:id", UpdateOfficer)
		r.DELETE("/:id", DeleteOfficer)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Officers
// @Success		204
// @Router			/v1/officers [options]
func OptionsOfficerList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Officers
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/officers/{id} [options]
func OptionsOfficerDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Officer{})
}

// @Summary		Create officers
// @Description	Creates new personnel records
// @Tags			Officers
// @Accept			json
// @Produce		json
// @Success		201			{object}	OfficerCreateResponse
// @Failure		400			{object}	OfficerCreateResponse
// @Failure		500			{object}	OfficerCreateResponse
// @Param			officers	body		[]OfficerEditable	true	"Officers"
// @Router			/v1/officers [post]
func CreateOfficers(c *gin.Context) {
	var officers []OfficerEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &officers)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OfficerCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := OfficerCreateResponse{}

	for _, editable := range officers {
		officer := editable.model()

		err := models.DB.Create(&officer).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newOfficer(c, officer)
		r.Data = append(r.Data, OfficerResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List officers
// @Description	Returns a list of personnel records
// @Tags			Officers
// @Produce		json
// @Success		200	{object}	OfficerListResponse
// @Failure		500	{object}	OfficerListResponse
// @Router			/v1/officers [get]
// @Param			name			query	string	false	"Filter by name"
// @Param			rank			query	string	false	"Filter by rank"
// @Param			registration	query	string	false	"Filter by registration number"
// @Param			unit			query	string	false	"Filter by unit"
// @Param			active			query	bool	false	"Filter by active service state"
// @Param			note			query	string	false	"Filter by note"
// @Param			search			query	string	false	"Search for this text in name and note"
// @Param			offset			query	uint	false	"The offset of the first Officer returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of Officers to return. Defaults to 50."
func GetOfficers(c *gin.Context) {
	var filter OfficerQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we're filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	var officers []models.Officer

	// Always sort by name
	q := models.DB.
		Order("name ASC").
		Where(filter.model(), queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to all Officers and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	err := q.Find(&officers).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OfficerListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OfficerListResponse{
			Error: &e,
		})
		return
	}

	apiResources := make([]Officer, 0)
	for _, officer := range officers {
		apiResources = append(apiResources, newOfficer(c, officer))
	}

	c.JSON(http.StatusOK, OfficerListResponse{
		Data: apiResources,
		Pagination: &Pagination{
			Count:  len(apiResources),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get officer
// @Description	Returns a specific personnel record
// @Tags			Officers
// @Produce		json
// @Success		200	{object}	OfficerResponse
// @Failure		400	{object}	OfficerResponse
// @Failure		404	{object}	OfficerResponse
// @Failure		500	{object}	OfficerResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/officers/{id} [get]
func GetOfficer(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OfficerResponse{
			Error: &e,
		})
		return
	}

	var officer models.Officer
	err = models.DB.First(&officer, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OfficerResponse{
			Error: &e,
		})
		return
	}

	data := newOfficer(c, officer)
	c.JSON(http.StatusOK, OfficerResponse{Data: &data})
}

// @Summary		Update officer
// @Description	Update an existing personnel record. Only values to be updated need to be specified.
// @Tags			Officers
// @Accept			json
// @Produce		json
// @Success		200		{object}	OfficerResponse
// @Failure		400		{object}	OfficerResponse
// @Failure		404		{object}	OfficerResponse
// @Failure		500		{object}	OfficerResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			officer	body		OfficerEditable	true	"Officer"
// @Router			/v1/officers/{id} [patch]
func UpdateOfficer(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OfficerResponse{
			Error: &e,
		})
		return
	}

	var officer models.Officer
	err = models.DB.First(&officer, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OfficerResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, OfficerEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OfficerResponse{
			Error: &e,
		})
		return
	}

	var data OfficerEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OfficerResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&officer).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OfficerResponse{
			Error: &e,
		})
		return
	}

	apiResource := newOfficer(c, officer)
	c.JSON(http.StatusOK, OfficerResponse{Data: &apiResource})
}

// @Summary		Delete officer
// @Description	Deletes a personnel record
// @Tags			Officers
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/officers/{id} [delete]
func DeleteOfficer(c *gin.Context) {
	deleteResource[models.Officer](c)
}
