// Package httpapi exposes the shipping use cases over HTTP with gin. All
// failures, wherever raised, flow through the shared responder so the error
// contract stays uniform across endpoints.
package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/microcommerce/shipping-service/internal/shared/apperrors"
	"github.com/microcommerce/shipping-service/internal/shipping/domain"
	"github.com/microcommerce/shipping-service/internal/shipping/ports"
)

// ShippingAPI carries the handlers for the order-item resource.
type ShippingAPI struct {
	service   ports.Service
	responder *apperrors.Responder
}

// NewShippingAPI wires the HTTP handlers with the shipping service and the
// boundary responder.
func NewShippingAPI(service ports.Service, responder *apperrors.Responder) *ShippingAPI {
	return &ShippingAPI{service: service, responder: responder}
}

// Get /api/shippings
// List all order items with their product and order snapshots

func (api *ShippingAPI) FindAll(c *gin.Context) {
	views, err := api.service.List(c.Request.Context())
	if err != nil {
		api.responder.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, OrderItemCollection{Collection: fromViews(views)})
}

// Get /api/shippings/:orderId/:productId
// Find one order item by its composite identity

func (api *ShippingAPI) FindByID(c *gin.Context) {
	id, err := pathIdentity(c)
	if err != nil {
		api.responder.Respond(c, err)
		return
	}
	view, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		api.responder.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, fromView(view))
}

// Post /api/shippings
// Create or overwrite an order item

func (api *ShippingAPI) Save(c *gin.Context) {
	var payload OrderItem
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.responder.Respond(c, bindingFailure(err))
		return
	}
	view, err := api.service.Save(c.Request.Context(), payload.toView())
	if err != nil {
		api.responder.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, fromView(view))
}

// Put /api/shippings
// Overwrite the order item at the embedded identity

func (api *ShippingAPI) Update(c *gin.Context) {
	var payload OrderItem
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.responder.Respond(c, bindingFailure(err))
		return
	}
	view, err := api.service.Update(c.Request.Context(), payload.toView())
	if err != nil {
		api.responder.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, fromView(view))
}

// Delete /api/shippings/:orderId/:productId
// Remove an order item; the response body is the literal boolean true

func (api *ShippingAPI) DeleteByID(c *gin.Context) {
	id, err := pathIdentity(c)
	if err != nil {
		api.responder.Respond(c, err)
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		api.responder.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, true)
}

// pathIdentity parses the composite identity from the route parameters.
func pathIdentity(c *gin.Context) (domain.OrderItemID, error) {
	orderID, err := intParam(c, "orderId")
	if err != nil {
		return domain.OrderItemID{}, err
	}
	productID, err := intParam(c, "productId")
	if err != nil {
		return domain.OrderItemID{}, err
	}
	return domain.NewOrderItemID(orderID, productID), nil
}

func intParam(c *gin.Context, name string) (int, error) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, apperrors.NewValidation(name, name+" must be an integer")
	}
	return value, nil
}

// bindingFailure translates a gin binding error into the validation failure
// category, keeping only the first field-level message.
func bindingFailure(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "required" {
			return apperrors.NewValidation(fe.Field(), "must not be null")
		}
		return apperrors.NewValidation(fe.Field(), fe.Error())
	}
	return apperrors.NewValidation("", "invalid request body")
}
