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
	"gorm.io/gorm"
)

// targetAmount returns the stored target for a period, or 0 when unset.
func targetAmount(month, year int) (float64, error) {
	var target models.MonthlyTarget

	err := db.DB.Where("month = ? AND year = ?", month, year).First(&target).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return target.TargetAmount, nil
}

// GetFinancialOverview composes the monthly financial picture. The period
// defaults to the current calendar month.
func GetFinancialOverview(ctx *gin.Context) {
	month, year, filtered, err := utils.GetPeriodQuery(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !filtered {
		now := time.Now()
		month = int(now.Month())
		year = now.Year()
	}

	inputs := finance.OverviewInputs{Month: month, Year: year}

	// Total workload is the sum of declared project gross totals, not the sum
	// of delivery rows.
	err = db.DB.Model(&models.Project{}).
		Select("COALESCE(SUM(total_gross_delivery), 0)").
		Scan(&inputs.TotalWorkLoad).Error

	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	if inputs.PeriodGross, err = sumDeliveries("gross_amount", month, year, true); err != nil {
		respondDomainError(ctx, err)
		return
	}

	if inputs.PeriodNet, err = sumDeliveries("net_amount", month, year, true); err != nil {
		respondDomainError(ctx, err)
		return
	}

	if inputs.LifetimeGross, err = sumDeliveries("gross_amount", 0, 0, false); err != nil {
		respondDomainError(ctx, err)
		return
	}

	if inputs.LifetimeNet, err = sumDeliveries("net_amount", 0, 0, false); err != nil {
		respondDomainError(ctx, err)
		return
	}

	if inputs.Target, err = targetAmount(month, year); err != nil {
		respondDomainError(ctx, err)
		return
	}

	nextMonth, nextYear := finance.NextPeriod(month, year)

	if inputs.UpcomingTarget, err = targetAmount(nextMonth, nextYear); err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, finance.BuildOverview(inputs))
}
