package handlers

import (
	"net/http"

	"github.com/deliverydesk/deliverydesk/db"
	"github.com/deliverydesk/deliverydesk/internal/models"
	"github.com/gin-gonic/gin"
)

type SystemStatsResponse struct {
	Users      int64   `json:"users"`
	Clients    int64   `json:"clients"`
	Projects   int64   `json:"projects"`
	Deliveries int64   `json:"deliveries"`
	TotalGross float64 `json:"totalGross"`
	TotalNet   float64 `json:"totalNet"`
}

// GetSystemStats reports lifetime counts and delivery sums across the whole
// system.
func GetSystemStats(ctx *gin.Context) {
	var stats SystemStatsResponse

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.User{}, &stats.Users},
		{&models.Client{}, &stats.Clients},
		{&models.Project{}, &stats.Projects},
		{&models.Delivery{}, &stats.Deliveries},
	}

	for _, c := range counts {
		if err := db.DB.Model(c.model).Count(c.dest).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}
	}

	var err error

	if stats.TotalGross, err = sumDeliveries("gross_amount", 0, 0, false); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	if stats.TotalNet, err = sumDeliveries("net_amount", 0, 0, false); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
