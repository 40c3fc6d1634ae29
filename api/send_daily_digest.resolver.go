package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

type sendDailyDigestResponse struct {
	Message     string `json:"message"`
	RunID       string `json:"runID"`
	Subscribers int    `json:"subscribers"`
	EmailsSent  int    `json:"emailsSent"`
	Skipped     int    `json:"skipped"`
	Errors      int    `json:"errors"`
}

// sendDailyDigest is the endpoint EventBridge triggers via Lambda/API
// Gateway. Per-subscriber failures are reported in the counts; only a
// failure to read the subscriber list is an error response.
func (m ApiHandler) sendDailyDigest(c *gin.Context) {
	report, err := m.DigestApp.SendDailyDigest(c.Request.Context())
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to send daily digest: %w", err), c)
		return
	}

	c.JSON(200, sendDailyDigestResponse{
		Message:     "Daily digest completed",
		RunID:       report.RunID.String(),
		Subscribers: report.SubscribersSeen,
		EmailsSent:  report.Sent,
		Skipped:     report.Skipped,
		Errors:      report.Errors,
	})
}
