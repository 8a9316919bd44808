package handlers

import (
	"errors"
	"net/http"

	"github.com/deliverydesk/deliverydesk/db"
	"github.com/deliverydesk/deliverydesk/internal/finance"
	"github.com/deliverydesk/deliverydesk/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateProjectRequest struct {
	Name               string  `json:"name" binding:"required"`
	ClientID           uint    `json:"client_id" binding:"required"`
	TotalGrossDelivery float64 `json:"total_gross_delivery" binding:"required,gt=0"`
}

type ProjectResponse struct {
	ID                 uint    `json:"id"`
	Name               string  `json:"name"`
	ClientID           uint    `json:"client_id"`
	ClientName         string  `json:"client_name"`
	TotalGrossDelivery float64 `json:"total_gross_delivery"`
	TotalNetDelivery   float64 `json:"total_net_delivery"`
}

func ListProjects(ctx *gin.Context) {
	var rows []ProjectResponse

	err := db.DB.Model(&models.Project{}).
		Select("projects.id, projects.name, projects.client_id, clients.name AS client_name, projects.total_gross_delivery, projects.total_net_delivery").
		Joins("JOIN clients ON clients.id = projects.client_id").
		Order("projects.name").
		Scan(&rows).Error

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	if rows == nil {
		rows = []ProjectResponse{}
	}

	ctx.JSON(http.StatusOK, rows)
}

func CreateProject(ctx *gin.Context) {
	var req CreateProjectRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var client models.Client

	if err := db.DB.First(&client, req.ClientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Client not found"})
		} else {
			respondDomainError(ctx, err)
		}
		return
	}

	// The declared net total is fixed from the gross total at creation and is
	// never recomputed from the project's deliveries.
	project := models.Project{
		Name:               req.Name,
		ClientID:           req.ClientID,
		TotalGrossDelivery: req.TotalGrossDelivery,
		TotalNetDelivery:   finance.ToNet(req.TotalGrossDelivery),
	}

	if err := db.DB.Create(&project).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	ctx.JSON(http.StatusCreated, ProjectResponse{
		ID:                 project.ID,
		Name:               project.Name,
		ClientID:           project.ClientID,
		ClientName:         client.Name,
		TotalGrossDelivery: project.TotalGrossDelivery,
		TotalNetDelivery:   project.TotalNetDelivery,
	})
}
