package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/deliverydesk/deliverydesk/db"
	"github.com/deliverydesk/deliverydesk/internal/finance"
	"github.com/deliverydesk/deliverydesk/internal/models"
	"github.com/deliverydesk/deliverydesk/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type seedEntry struct {
	ClientName   string
	ProjectName  string
	DeliveryDate string
	Role         string
	GrossAmount  float64
	Contributor  string
	Description  string
}

var sampleEntries = []seedEntry{
	{
		ClientName:   "sux_go",
		ProjectName:  "Ai Finance HUB",
		DeliveryDate: "2025-05-05",
		Role:         "Frontend (App)",
		GrossAmount:  2000,
		Contributor:  "Abir Rahman",
		Description:  "Bank API Implemented",
	},
	{
		ClientName:   "sux_go",
		ProjectName:  "Ai Finance HUB",
		DeliveryDate: "2025-05-07",
		Role:         "Backend",
		GrossAmount:  2000,
		Contributor:  "Shakib Ahmed",
		Description:  "API Implemented - App",
	},
	{
		ClientName:   "xavfreakinrican",
		ProjectName:  "ZenActive",
		DeliveryDate: "2025-05-10",
		Role:         "AI Development",
		GrossAmount:  800,
		Contributor:  "Zaman Khan",
		Description:  "GeminiAI",
	},
}

// SeedData loads the sample dataset. Admin only. Clients and projects are
// created on demand; entries whose contributor has no user account are
// skipped.
func SeedData(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if !currentUser.IsAdmin() {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		return
	}

	for _, entry := range sampleEntries {
		if err := seedOne(entry); err != nil {
			log.Printf("Failed to seed entry for %s: %v", entry.ProjectName, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed data"})
			return
		}
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Sample data seeded successfully"})
}

func seedOne(entry seedEntry) error {
	var client models.Client

	if err := db.DB.Where("name = ?", entry.ClientName).FirstOrCreate(&client, models.Client{Name: entry.ClientName}).Error; err != nil {
		return err
	}

	var project models.Project

	err := db.DB.Where("name = ? AND client_id = ?", entry.ProjectName, client.ID).First(&project).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		project = models.Project{
			Name:               entry.ProjectName,
			ClientID:           client.ID,
			TotalGrossDelivery: entry.GrossAmount,
			TotalNetDelivery:   finance.ToNet(entry.GrossAmount),
		}
		err = db.DB.Create(&project).Error
	}

	if err != nil {
		return err
	}

	var contributor models.User

	if err := db.DB.Where("name = ?", entry.Contributor).First(&contributor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// No account for this contributor yet, skip the entry.
			return nil
		}
		return err
	}

	date, err := time.Parse(dateLayout, entry.DeliveryDate)

	if err != nil {
		return err
	}

	derived, err := finance.DeriveDelivery(entry.GrossAmount, true, date)

	if err != nil {
		return err
	}

	delivery := models.Delivery{
		ProjectID:    project.ID,
		UserID:       contributor.ID,
		Role:         entry.Role,
		Description:  entry.Description,
		DeliveryDate: datatypes.Date(date),
		GrossAmount:  derived.Gross,
		NetAmount:    derived.Net,
		Month:        derived.Month,
		Year:         derived.Year,
	}

	return db.DB.Create(&delivery).Error
}
