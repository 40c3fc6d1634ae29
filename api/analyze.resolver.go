package api

import (
	"errors"
	"fmt"
	"io"

	"stockpulse/internal/app"
	"stockpulse/internal/domain"

	"github.com/gin-gonic/gin"
)

type analyzeRequest struct {
	Symbol string `json:"symbol"`
}

func (m ApiHandler) analyze(c *gin.Context) {
	request := analyzeRequest{
		Symbol: c.Query("symbol"),
	}
	if request.Symbol == "" && c.Request.Method == "POST" {
		// an empty body falls through to the missing symbol error
		if err := c.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
			returnErrorJsonCode(fmt.Errorf("invalid request body: %w", err), c, 400)
			return
		}
	}

	analysis, err := m.AnalysisApp.Analyze(c.Request.Context(), request.Symbol)
	if errors.Is(err, domain.ErrQuoteUnavailable) {
		returnErrorJsonCode(fmt.Errorf("Could not fetch data for %s", app.NormalizeSymbol(request.Symbol)), c, 404)
		return
	}
	if err != nil {
		returnAppError(err, c)
		return
	}

	c.JSON(200, analysis)
}
