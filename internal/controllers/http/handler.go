package http

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"storefront/internal/catalog"
	"storefront/internal/domain"
	"storefront/internal/referral"
	"storefront/internal/services"
)

const fallbackOrderNumber = "ORD-DEMO-001"

// ScriptURLs are the external referral tag endpoints embedded in the
// product page markup.
type ScriptURLs struct {
	ReferrerOffer string
	RefereeFind   string
}

type Handler struct {
	service    *services.CheckoutService
	dispatcher referral.Dispatcher
	scripts    ScriptURLs
}

func NewHandler(s *services.CheckoutService, d referral.Dispatcher, scripts ScriptURLs) *Handler {
	return &Handler{service: s, dispatcher: d, scripts: scripts}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/product")
	})
	r.GET("/product", h.ProductPage)
	r.GET("/checkout", h.CheckoutPage)
	r.POST("/checkout", h.CompletePurchase)
	r.GET("/confirmation", h.ConfirmationPage)
	r.POST("/confirmation/:orderNumber/dismiss", h.DismissConfirmation)
}

func (h *Handler) ProductPage(c *gin.Context) {
	referrerID := c.Query("referrerId")
	product := h.service.ResolveProduct(c.Request.Context(), c.DefaultQuery("productId", catalog.HeroProductID))

	c.HTML(http.StatusOK, "product.html", gin.H{
		"Product":          product,
		"ReferrerID":       referrerID,
		"ReferrerOfferURL": h.scripts.ReferrerOffer,
		"RefereeFindURL":   h.scripts.RefereeFind,
		"CheckoutURL":      "/checkout?" + checkoutQuery(product.ID, referrerID),
	})
}

func checkoutQuery(productID, referrerID string) string {
	q := url.Values{"productId": {productID}}
	if referrerID != "" {
		q.Set("referrerId", referrerID)
	}
	return q.Encode()
}

func (h *Handler) CheckoutPage(c *gin.Context) {
	referrerID := c.Query("referrerId")
	product := h.service.ResolveProduct(c.Request.Context(), c.DefaultQuery("productId", catalog.DefaultProductID))

	item := domain.OrderItem{Product: product, Quantity: 1}
	subtotal := item.LineTotal()

	c.HTML(http.StatusOK, "checkout.html", gin.H{
		"Product":    product,
		"Item":       item,
		"Subtotal":   subtotal,
		"Shipping":   services.ShippingFee(subtotal),
		"Total":      subtotal + services.ShippingFee(subtotal),
		"ReferrerID": referrerID,
		"Form":       demoForm(),
	})
}

// demoForm pre-populates the checkout form, matching the demo nature of
// the storefront. Nothing here is ever charged.
func demoForm() CheckoutForm {
	return CheckoutForm{
		Email:      "jane@example.com",
		FirstName:  "Jane",
		LastName:   "Doe",
		Address:    "123 Demo Street",
		City:       "London",
		Postcode:   "SW1A 1AA",
		CardNumber: "4242 4242 4242 4242",
		Expiry:     "12/25",
		CVV:        "123",
		Quantity:   1,
	}
}

func (h *Handler) CompletePurchase(c *gin.Context) {
	var form CheckoutForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if form.Quantity == 0 {
		form.Quantity = 1
	}

	productID := c.DefaultQuery("productId", catalog.DefaultProductID)
	referrerID := c.Query("referrerId")

	order := h.service.CompletePurchase(c.Request.Context(), productID, form.Quantity, form.ToCustomer(), referrerID)

	q := url.Values{"orderNumber": {order.OrderNumber}}
	if referrerID != "" {
		q.Set("referrerId", referrerID)
	}
	c.Redirect(http.StatusSeeOther, "/confirmation?"+q.Encode())
}

func (h *Handler) ConfirmationPage(c *gin.Context) {
	orderNumber := c.DefaultQuery("orderNumber", fallbackOrderNumber)
	referrerID := c.Query("referrerId")

	order := h.displayOrder(c, orderNumber, referrerID)

	if err := h.dispatcher.Fire(c.Request.Context(), order); err != nil {
		// Zero-item orders cannot happen here, but a build failure
		// must not take the confirmation page down with it.
		c.Error(err)
	}

	c.HTML(http.StatusOK, "confirmation.html", gin.H{
		"Order": order,
	})
}

// displayOrder rebuilds the order shown on the confirmation page. No
// store exists to look the real one up, so the page shows the fixed
// demo customer with the number carried over from checkout.
func (h *Handler) displayOrder(c *gin.Context, orderNumber, referrerID string) domain.Order {
	product := h.service.ResolveProduct(c.Request.Context(), catalog.HeroProductID)
	item := domain.OrderItem{Product: product, Quantity: 1}
	subtotal := item.LineTotal()

	return domain.Order{
		OrderNumber: orderNumber,
		Customer: domain.Customer{
			Name:  "Jane Doe",
			Email: "jane.doe@example.com",
			Phone: "+44 7700 900000",
			Address: domain.Address{
				Street:     "123 Running Lane",
				City:       "London",
				PostalCode: "SW1A 1AA",
				Country:    "United Kingdom",
			},
		},
		Items:      []domain.OrderItem{item},
		Total:      subtotal + services.ShippingFee(subtotal),
		OrderDate:  time.Now(),
		ReferrerID: referrerID,
	}
}

func (h *Handler) DismissConfirmation(c *gin.Context) {
	h.dispatcher.Teardown(c.Param("orderNumber"))
	c.Status(http.StatusNoContent)
}
