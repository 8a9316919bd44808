package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/deliverydesk/deliverydesk/db"
	"github.com/deliverydesk/deliverydesk/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateClientRequest struct {
	Name string `json:"name" binding:"required"`
}

type ClientResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func ListClients(ctx *gin.Context) {
	var clients []models.Client

	if err := db.DB.Order("name").Find(&clients).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve clients"})
		return
	}

	response := make([]ClientResponse, 0, len(clients))

	for _, client := range clients {
		response = append(response, ClientResponse{ID: client.ID, Name: client.Name})
	}

	ctx.JSON(http.StatusOK, response)
}

func CreateClient(ctx *gin.Context) {
	var req CreateClientRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	req.Name = strings.TrimSpace(req.Name)

	if req.Name == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Client name is required"})
		return
	}

	var existingClient models.Client

	err := db.DB.Where("name = ?", req.Name).First(&existingClient).Error

	if err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Client with this name already exists"})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondDomainError(ctx, err)
		return
	}

	client := models.Client{Name: req.Name}

	if err := db.DB.Create(&client).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create client"})
		return
	}

	ctx.JSON(http.StatusCreated, ClientResponse{ID: client.ID, Name: client.Name})
}
