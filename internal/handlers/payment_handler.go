package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/doctors-portal-api/internal/httperr"
	"github.com/BruksfildServices01/doctors-portal-api/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/doctors-portal-api/internal/usecase/booking"
)

type PaymentHandler struct {
	createIntent *ucBooking.CreatePaymentIntent
}

func NewPaymentHandler(createIntent *ucBooking.CreatePaymentIntent) *PaymentHandler {
	return &PaymentHandler{createIntent: createIntent}
}

type CreatePaymentIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "A positive price is required.")
		return
	}

	clientSecret, err := h.createIntent.Execute(c.Request.Context(), ucBooking.CreatePaymentIntentInput{
		Price: req.Price,
	})
	if err != nil {
		if httperr.IsBusiness(err, "invalid_price") {
			httperr.BadRequest(c, "invalid_price", "A positive price is required.")
			return
		}
		httperr.Upstream(c, "gateway_unavailable", "Could not create the payment intent.")
		return
	}

	httpresp.OK(c, gin.H{"clientSecret": clientSecret})
}
