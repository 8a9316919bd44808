package handlers

import (
	"errors"
	"net/http"

	"github.com/deliverydesk/deliverydesk/db"
	"github.com/deliverydesk/deliverydesk/internal/finance"
	"github.com/deliverydesk/deliverydesk/internal/models"
	"github.com/deliverydesk/deliverydesk/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SetTargetRequest struct {
	Month        int      `json:"month" binding:"required"`
	Year         int      `json:"year" binding:"required"`
	TargetAmount *float64 `json:"target_amount" binding:"required"`
}

type TargetResponse struct {
	ID           uint    `json:"id"`
	Month        int     `json:"month"`
	Year         int     `json:"year"`
	TargetAmount float64 `json:"target_amount"`
}

func targetResponse(t models.MonthlyTarget) TargetResponse {
	return TargetResponse{
		ID:           t.ID,
		Month:        t.Month,
		Year:         t.Year,
		TargetAmount: t.TargetAmount,
	}
}

// GetTargets returns the target for one period when month and year are given,
// or every stored target otherwise. A missing single target is null, never an
// error.
func GetTargets(ctx *gin.Context) {
	month, year, filtered, err := utils.GetPeriodQuery(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if filtered {
		var target models.MonthlyTarget

		if err := db.DB.Where("month = ? AND year = ?", month, year).First(&target).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				ctx.JSON(http.StatusOK, nil)
			} else {
				respondDomainError(ctx, err)
			}
			return
		}

		ctx.JSON(http.StatusOK, targetResponse(target))
		return
	}

	var targets []models.MonthlyTarget

	if err := db.DB.Order("year DESC, month DESC").Find(&targets).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve targets"})
		return
	}

	response := make([]TargetResponse, 0, len(targets))

	for _, target := range targets {
		response = append(response, targetResponse(target))
	}

	ctx.JSON(http.StatusOK, response)
}

// SetTarget upserts the target for one (month, year) in a single atomic
// statement, so concurrent calls cannot race a duplicate row past the unique
// constraint.
func SetTarget(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if !currentUser.IsAdmin() {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		return
	}

	var req SetTargetRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Month, year, and target amount are required"})
		return
	}

	if err := finance.ValidateTarget(req.Month, req.Year, *req.TargetAmount); err != nil {
		respondDomainError(ctx, err)
		return
	}

	target := models.MonthlyTarget{
		Month:        req.Month,
		Year:         req.Year,
		TargetAmount: *req.TargetAmount,
	}

	err = db.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "month"}, {Name: "year"}},
		DoUpdates: clause.AssignmentColumns([]string{"target_amount", "updated_at"}),
	}).Create(&target).Error

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save target"})
		return
	}

	ctx.JSON(http.StatusOK, targetResponse(target))
}
