package api

import (
	"github.com/gin-gonic/gin"
)

type subscribeRequest struct {
	Email  string   `json:"email"`
	Stocks []string `json:"stocks"`
}

type subscribeResponse struct {
	Message string   `json:"message"`
	Email   string   `json:"email"`
	Stocks  []string `json:"stocks"`
}

func (m ApiHandler) subscribe(c *gin.Context) {
	var requestBody subscribeRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	subscriber, err := m.SubscriptionApp.Subscribe(c.Request.Context(), requestBody.Email, requestBody.Stocks)
	if err != nil {
		returnAppError(err, c)
		return
	}

	c.JSON(200, subscribeResponse{
		Message: "Successfully subscribed!",
		Email:   subscriber.Email,
		Stocks:  subscriber.Symbols,
	})
}
