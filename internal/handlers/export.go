package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/deliverydesk/deliverydesk/internal/finance"
	"github.com/deliverydesk/deliverydesk/internal/utils"
	"github.com/gin-gonic/gin"
)

// ExportRow mirrors one line of the export sheet. Month and Year are strings
// so the synthetic TOTAL row can leave them blank.
type ExportRow struct {
	ClientName    string  `json:"Client Name"`
	ProjectName   string  `json:"Project Name"`
	DeliveryDate  string  `json:"Delivery Date"`
	Role          string  `json:"Role"`
	GrossDelivery float64 `json:"Gross Delivery"`
	NetDelivery   float64 `json:"Net Delivery"`
	Contributor   string  `json:"Contributor"`
	Description   string  `json:"Description"`
	Month         string  `json:"Month"`
	Year          string  `json:"Year"`
}

var exportHeaders = []string{
	"Client Name",
	"Project Name",
	"Delivery Date",
	"Role",
	"Gross Delivery",
	"Net Delivery",
	"Contributor",
	"Description",
	"Month",
	"Year",
}

// buildExportRows turns the period's deliveries into export rows and appends
// the TOTAL summary row.
func buildExportRows(rows []deliveryRow, month, year int) []ExportRow {
	out := make([]ExportRow, 0, len(rows)+1)

	for _, r := range rows {
		out = append(out, ExportRow{
			ClientName:    r.ClientName,
			ProjectName:   r.ProjectName,
			DeliveryDate:  formatDate(r.DeliveryDate),
			Role:          r.Role,
			GrossDelivery: r.GrossAmount,
			NetDelivery:   r.NetAmount,
			Contributor:   r.UserName,
			Description:   r.Description,
			Month:         strconv.Itoa(month),
			Year:          strconv.Itoa(year),
		})
	}

	totalGross, totalNet := finance.Totals(facts(rows))

	out = append(out, ExportRow{
		ClientName:    "TOTAL",
		GrossDelivery: totalGross,
		NetDelivery:   totalNet,
	})

	return out
}

func csvQuote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// renderCSV renders export rows as CSV with every field quoted.
func renderCSV(rows []ExportRow) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(quoteAll(exportHeaders), ","))

	for _, r := range rows {
		fields := []string{
			r.ClientName,
			r.ProjectName,
			r.DeliveryDate,
			r.Role,
			formatAmount(r.GrossDelivery),
			formatAmount(r.NetDelivery),
			r.Contributor,
			r.Description,
			r.Month,
			r.Year,
		}
		lines = append(lines, strings.Join(quoteAll(fields), ","))
	}

	return strings.Join(lines, "\n")
}

func quoteAll(fields []string) []string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = csvQuote(f)
	}
	return quoted
}

func ExportDeliveries(ctx *gin.Context) {
	month, year, err := utils.ParsePeriod(ctx.Query("month"), ctx.Query("year"))

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Month and year are required"})
		return
	}

	format := ctx.DefaultQuery("format", "json")

	if format != "json" && format != "csv" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported format"})
		return
	}

	rows, err := fetchDeliveryRows(month, year, true)

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve deliveries"})
		return
	}

	exportRows := buildExportRows(rows, month, year)

	if format == "json" {
		ctx.JSON(http.StatusOK, exportRows)
		return
	}

	filename := fmt.Sprintf("Deliveries-%d-%d.csv", month, year)

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "text/csv", []byte(renderCSV(exportRows)))
}
