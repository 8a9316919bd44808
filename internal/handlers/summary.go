package handlers

import (
	"net/http"

	"github.com/deliverydesk/deliverydesk/internal/finance"
	"github.com/deliverydesk/deliverydesk/internal/utils"
	"github.com/gin-gonic/gin"
)

type MonthlySummaryResponse struct {
	UserSummary   []finance.GroupSummary `json:"userSummary"`
	ClientSummary []finance.GroupSummary `json:"clientSummary"`
	PhaseSummary  []finance.GroupSummary `json:"phaseSummary"`
}

func GetMonthlySummary(ctx *gin.Context) {
	month, year, err := utils.ParsePeriod(ctx.Query("month"), ctx.Query("year"))

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Month and year are required"})
		return
	}

	rows, err := fetchDeliveryRows(month, year, true)

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve deliveries"})
		return
	}

	periodFacts := facts(rows)

	ctx.JSON(http.StatusOK, MonthlySummaryResponse{
		UserSummary:   finance.SummarizeByUser(periodFacts),
		ClientSummary: finance.SummarizeByClient(periodFacts),
		PhaseSummary:  finance.SummarizeByPhase(periodFacts),
	})
}
