package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/deliverydesk/deliverydesk/db"
	"github.com/deliverydesk/deliverydesk/internal/finance"
	"github.com/deliverydesk/deliverydesk/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// deliveryRow is a delivery joined with the display names of its project,
// client and contributor.
type deliveryRow struct {
	ID           uint
	ProjectID    uint
	UserID       uint
	Role         string
	Description  string
	DeliveryDate datatypes.Date
	GrossAmount  float64
	NetAmount    float64
	Month        int
	Year         int
	ProjectName  string
	ClientName   string
	UserName     string
}

// deliveryJoinQuery is the base query joining deliveries with the project,
// client and contributor display names.
func deliveryJoinQuery() *gorm.DB {
	return db.DB.Model(&models.Delivery{}).
		Select("deliveries.id, deliveries.project_id, deliveries.user_id, deliveries.role, deliveries.description, deliveries.delivery_date, deliveries.gross_amount, deliveries.net_amount, deliveries.month, deliveries.year, projects.name AS project_name, clients.name AS client_name, users.name AS user_name").
		Joins("JOIN projects ON projects.id = deliveries.project_id").
		Joins("JOIN clients ON clients.id = projects.client_id").
		Joins("JOIN users ON users.id = deliveries.user_id")
}

// fetchDeliveryRows loads delivery rows joined with their display names,
// optionally restricted to one reporting period, ordered by client name then
// delivery date.
func fetchDeliveryRows(month, year int, filtered bool) ([]deliveryRow, error) {
	query := deliveryJoinQuery()

	if filtered {
		query = query.Where("deliveries.month = ? AND deliveries.year = ?", month, year)
	}

	var rows []deliveryRow

	if err := query.Order("clients.name, deliveries.delivery_date").Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (r deliveryRow) fact() finance.DeliveryFact {
	return finance.DeliveryFact{
		UserID:     r.UserID,
		UserName:   r.UserName,
		ClientName: r.ClientName,
		Phase:      r.Role,
		Gross:      r.GrossAmount,
		Net:        r.NetAmount,
	}
}

func facts(rows []deliveryRow) []finance.DeliveryFact {
	out := make([]finance.DeliveryFact, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.fact())
	}
	return out
}

func formatDate(d datatypes.Date) string {
	return time.Time(d).Format(dateLayout)
}

// sumDeliveries computes a single aggregate over the deliveries table,
// optionally restricted to one reporting period. Empty result sets yield 0.
func sumDeliveries(column string, month, year int, filtered bool) (float64, error) {
	query := db.DB.Model(&models.Delivery{}).Select("COALESCE(SUM(" + column + "), 0)")

	if filtered {
		query = query.Where("month = ? AND year = ?", month, year)
	}

	var total float64

	if err := query.Scan(&total).Error; err != nil {
		return 0, err
	}

	return total, nil
}

// respondDomainError maps the finance error taxonomy onto HTTP statuses.
// Anything unclassified is logged and reported as a generic internal error.
func respondDomainError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, finance.ErrValidation):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, finance.ErrForbidden):
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, finance.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		log.Printf("Unexpected error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
