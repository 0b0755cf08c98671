package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cavalaria/backend/internal/currency"
	"github.com/cavalaria/backend/internal/docgen"
	"github.com/cavalaria/backend/internal/fleet"
	"github.com/cavalaria/backend/internal/httputil"
	"github.com/cavalaria/backend/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// DocumentController renders service order documents. Unlike the database
// backed resources it carries its dependencies explicitly: the template
// renderer, the vehicle lookup cache and the optional archive.
type DocumentController struct {
	Generator *docgen.Generator
	Vehicles  *fleet.Cache
	Archive   *storage.Archive // nil when archiving is not configured
}

// OrderDocumentRequest is the payload for a service order document.
type OrderDocumentRequest struct {
	Registration string `json:"registration" example:"VTR-031"`               // Registration tag of the serviced vehicle, required
	OrderNumber  string `json:"orderNumber" example:"2024/0147"`              // Service order number, required
	OrderDate    string `json:"orderDate" example:"12/03/2024"`               // Order date as printed on the document, required
	Shop         string `json:"shop" example:"Oficina Central"`               // The shop performing the service
	Observation  string `json:"observation" example:"Troca de pastilhas"`     // Free text observation
	Value        string `json:"value" example:"R$ 1.521,95"`                  // The order value as a Real display string
	SignerName   string `json:"signerName" example:"João Silva"`              // Name of the signing officer
	SignerRank   string `json:"signerRank" example:"Cap PM"`                  // Rank of the signing officer
}

// RegisterDocumentRoutes registers the document generation routes with
// the RouterGroup that is passed.
func (d DocumentController) RegisterDocumentRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/orders", OptionsOrderDocument)
	r.POST("/orders", d.CreateOrderDocument)

	r.OPTIONS("/orders/:name", OptionsOrderDocumentDetail)
	r.GET("/orders/:name", d.GetOrderDocument)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Documents
// @Success		204
// @Router			/v1/documents/orders [options]
func OptionsOrderDocument(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Create service order document
// @Description	Renders a service order document from the unit's template and returns it for download
// @Tags			Documents
// @Accept			json
// @Produce		application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Success		200
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			order	body	OrderDocumentRequest	true	"Order document"
// @Router			/v1/documents/orders [post]
func (d DocumentController) CreateOrderDocument(c *gin.Context) {
	var request OrderDocumentRequest

	err := httputil.BindData(c, &request)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if request.Registration == "" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errDocumentRegistrationMissing.Error(),
		})
		return
	}

	if request.OrderNumber == "" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errDocumentOrderNumberMissing.Error(),
		})
		return
	}

	if request.OrderDate == "" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errDocumentOrderDateMissing.Error(),
		})
		return
	}

	vehicle, err := d.Vehicles.ByTag(request.Registration)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	// Legacy clients submit the value as a display string. A string that
	// does not parse is an error, never a silent zero.
	value := ""
	if request.Value != "" {
		amount, err := currency.ParseBRL(request.Value)
		if err != nil {
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}
		value = currency.FormatBRL(amount)
	}

	document, err := d.Generator.Render(docgen.ServiceOrder{
		Registration: vehicle.RegistrationTag,
		OrderNumber:  request.OrderNumber,
		OrderDate:    request.OrderDate,
		Plate:        vehicle.Plate,
		Shop:         request.Shop,
		Observation:  request.Observation,
		Value:        value,
		FleetType:    fmt.Sprintf("%s %s %d", vehicle.Make, vehicle.Model, vehicle.Year),
		SignerName:   request.SignerName,
		SignerRank:   request.SignerRank,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}

	filename := docgen.Filename(vehicle.RegistrationTag, request.OrderNumber)

	// Archiving is best effort, a failure never blocks the download
	if d.Archive != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		err := d.Archive.Store(ctx, filename, document, docgen.ContentType)
		if err != nil {
			log.Error().Err(err).Str("document", filename).Msg("archiving the document failed")
		}
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, docgen.ContentType, document)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Documents
// @Success		204
// @Param			name	path	string	true	"Document name"
// @Router			/v1/documents/orders/{name} [options]
func OptionsOrderDocumentDetail(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get archived document
// @Description	Returns a previously generated service order document from the archive
// @Tags			Documents
// @Produce		application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Success		200
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			name	path	string	true	"Document name"
// @Router			/v1/documents/orders/{name} [get]
func (d DocumentController) GetOrderDocument(c *gin.Context) {
	if d.Archive == nil {
		c.JSON(http.StatusNotFound, httpError{
			Error: errDocumentArchiveDisabled.Error(),
		})
		return
	}

	name := c.Param("name")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	document, err := d.Archive.Fetch(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, httpError{
				Error: err.Error(),
			})
			return
		}

		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, docgen.ContentType, document)
}
