package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParsePeriod parses month/year strings into a validated reporting period.
func ParsePeriod(monthStr, yearStr string) (int, int, error) {
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q", monthStr)
	}

	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("month must be between 1 and 12")
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1 {
		return 0, 0, fmt.Errorf("invalid year %q", yearStr)
	}

	return month, year, nil
}

// GetPeriodQuery reads the optional month/year query parameters. The period
// only applies when both are present; a malformed value is an error.
func GetPeriodQuery(ctx *gin.Context) (month, year int, ok bool, err error) {
	monthStr := ctx.Query("month")
	yearStr := ctx.Query("year")

	if monthStr == "" || yearStr == "" {
		return 0, 0, false, nil
	}

	month, year, err = ParsePeriod(monthStr, yearStr)
	if err != nil {
		return 0, 0, false, err
	}

	return month, year, true, nil
}

// GetIDParam parses a numeric :id path parameter.
func GetIDParam(ctx *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid ID")
	}
	return uint(id), nil
}
