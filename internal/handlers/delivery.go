package handlers

import (
	"errors"
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

type DeliveryRequest struct {
	ProjectID    uint    `json:"project_id" binding:"required"`
	UserID       uint    `json:"user_id" binding:"required"`
	Role         string  `json:"role" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	DeliveryDate string  `json:"delivery_date" binding:"required"`
	Amount       float64 `json:"amount" binding:"required"`
	IsGross      *bool   `json:"is_gross"`
}

type DeliveryResponse struct {
	ID           uint    `json:"id"`
	ProjectID    uint    `json:"project_id"`
	ProjectName  string  `json:"project_name"`
	ClientName   string  `json:"client_name"`
	UserID       uint    `json:"user_id"`
	UserName     string  `json:"user_name"`
	Role         string  `json:"role"`
	Description  string  `json:"description"`
	DeliveryDate string  `json:"delivery_date"`
	GrossAmount  float64 `json:"gross_amount"`
	NetAmount    float64 `json:"net_amount"`
	Month        int     `json:"month"`
	Year         int     `json:"year"`
}

func (r deliveryRow) response() DeliveryResponse {
	return DeliveryResponse{
		ID:           r.ID,
		ProjectID:    r.ProjectID,
		ProjectName:  r.ProjectName,
		ClientName:   r.ClientName,
		UserID:       r.UserID,
		UserName:     r.UserName,
		Role:         r.Role,
		Description:  r.Description,
		DeliveryDate: formatDate(r.DeliveryDate),
		GrossAmount:  r.GrossAmount,
		NetAmount:    r.NetAmount,
		Month:        r.Month,
		Year:         r.Year,
	}
}

// validateDeliveryRequest runs every business-rule check before anything is
// persisted and returns the derived amounts and parsed date.
func validateDeliveryRequest(req DeliveryRequest) (finance.DeliveryAmounts, time.Time, error) {
	if !finance.ValidPhase(req.Role) {
		return finance.DeliveryAmounts{}, time.Time{}, finance.UnknownPhase(req.Role)
	}

	date, err := time.Parse(dateLayout, req.DeliveryDate)
	if err != nil {
		return finance.DeliveryAmounts{}, time.Time{}, finance.InvalidDate(req.DeliveryDate)
	}

	isGross := true
	if req.IsGross != nil {
		isGross = *req.IsGross
	}

	derived, err := finance.DeriveDelivery(req.Amount, isGross, date)
	if err != nil {
		return finance.DeliveryAmounts{}, time.Time{}, err
	}

	return derived, date, nil
}

// checkDeliveryReferences verifies the referenced project and contributor
// exist, reporting a missing one as a validation failure.
func checkDeliveryReferences(projectID, userID uint) error {
	var project models.Project

	if err := db.DB.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return finance.MissingReference("project")
		}
		return err
	}

	var contributor models.User

	if err := db.DB.First(&contributor, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return finance.MissingReference("contributor")
		}
		return err
	}

	return nil
}

func ListDeliveries(ctx *gin.Context) {
	month, year, filtered, err := utils.GetPeriodQuery(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := fetchDeliveryRows(month, year, filtered)

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve deliveries"})
		return
	}

	response := make([]DeliveryResponse, 0, len(rows))

	for _, row := range rows {
		response = append(response, row.response())
	}

	ctx.JSON(http.StatusOK, response)
}

func CreateDelivery(ctx *gin.Context) {
	var req DeliveryRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	derived, date, err := validateDeliveryRequest(req)

	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	if err := checkDeliveryReferences(req.ProjectID, req.UserID); err != nil {
		respondDomainError(ctx, err)
		return
	}

	delivery := models.Delivery{
		ProjectID:    req.ProjectID,
		UserID:       req.UserID,
		Role:         req.Role,
		Description:  req.Description,
		DeliveryDate: datatypes.Date(date),
		GrossAmount:  derived.Gross,
		NetAmount:    derived.Net,
		Month:        derived.Month,
		Year:         derived.Year,
	}

	if err := db.DB.Create(&delivery).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create delivery"})
		return
	}

	row, err := fetchDeliveryRowByID(delivery.ID)

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve delivery"})
		return
	}

	ctx.JSON(http.StatusCreated, row.response())
}

func UpdateDelivery(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	deliveryID, err := utils.GetIDParam(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var delivery models.Delivery

	if err := db.DB.First(&delivery, deliveryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Delivery not found"})
		} else {
			respondDomainError(ctx, err)
		}
		return
	}

	// Authorization is checked against the owner as stored before the edit;
	// reassigning user_id in the request does not change who may edit.
	caller := finance.Caller{ID: currentUser.ID, Admin: currentUser.IsAdmin()}

	if !finance.CanModify(caller, delivery.UserID) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	var req DeliveryRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	derived, date, err := validateDeliveryRequest(req)

	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	if err := checkDeliveryReferences(req.ProjectID, req.UserID); err != nil {
		respondDomainError(ctx, err)
		return
	}

	delivery.ProjectID = req.ProjectID
	delivery.UserID = req.UserID
	delivery.Role = req.Role
	delivery.Description = req.Description
	delivery.DeliveryDate = datatypes.Date(date)
	delivery.GrossAmount = derived.Gross
	delivery.NetAmount = derived.Net
	delivery.Month = derived.Month
	delivery.Year = derived.Year

	if err := db.DB.Save(&delivery).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update delivery"})
		return
	}

	row, err := fetchDeliveryRowByID(delivery.ID)

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve delivery"})
		return
	}

	ctx.JSON(http.StatusOK, row.response())
}

func DeleteDelivery(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	deliveryID, err := utils.GetIDParam(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var delivery models.Delivery

	if err := db.DB.First(&delivery, deliveryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Delivery not found"})
		} else {
			respondDomainError(ctx, err)
		}
		return
	}

	caller := finance.Caller{ID: currentUser.ID, Admin: currentUser.IsAdmin()}

	if !finance.CanModify(caller, delivery.UserID) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	if err := db.DB.Delete(&delivery).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete delivery"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func fetchDeliveryRowByID(id uint) (deliveryRow, error) {
	var row deliveryRow

	err := deliveryJoinQuery().Where("deliveries.id = ?", id).Scan(&row).Error

	return row, err
}
