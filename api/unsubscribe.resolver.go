package api

import (
	"github.com/gin-gonic/gin"
)

const unsubscribedPage = `<!DOCTYPE html>
<html>
<head>
    <title>Unsubscribed - StockPulse AI</title>
    <style>
        body { font-family: 'Inter', sans-serif; background: #0a0e17; color: white;
               display: flex; justify-content: center; align-items: center;
               height: 100vh; margin: 0; }
        .container { text-align: center; padding: 2rem; }
        h1 { color: #3b82f6; }
        p { color: #94a3b8; }
        a { color: #3b82f6; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Successfully Unsubscribed</h1>
        <p>You will no longer receive StockPulse AI alerts.</p>
        <p><a href="/">Return to StockPulse AI</a></p>
    </div>
</body>
</html>
`

type unsubscribeRequest struct {
	Email string `json:"email"`
}

// unsubscribe serves both the link in digest emails (GET, answered with
// a page) and programmatic POSTs (answered with JSON).
func (m ApiHandler) unsubscribe(c *gin.Context) {
	fromLink := c.Query("email") != ""
	email := c.Query("email")
	if !fromLink && c.Request.ContentLength != 0 {
		var requestBody unsubscribeRequest
		if err := c.ShouldBindJSON(&requestBody); err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		email = requestBody.Email
	}

	err := m.SubscriptionApp.Unsubscribe(c.Request.Context(), email)
	if err != nil {
		returnAppError(err, c)
		return
	}

	if fromLink {
		c.Data(200, "text/html; charset=utf-8", []byte(unsubscribedPage))
		return
	}
	c.JSON(200, map[string]string{
		"message": "Successfully unsubscribed",
	})
}
