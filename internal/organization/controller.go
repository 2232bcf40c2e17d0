// Package organization provides HTTP handlers for the tenant side of the
// system: the organizations whose plans cap how many careers can be active.
package organization

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"careerhub-backend/internal/database"
	"careerhub-backend/internal/model"
	"careerhub-backend/internal/sanitize"
	"careerhub-backend/internal/utilities"
)

// Controller handles organization endpoints
type Controller struct {
	DB *database.DBinstanceStruct
}

// NewController creates a new instance of Controller
func NewController(db *database.DBinstanceStruct) *Controller {
	return &Controller{
		DB: db,
	}
}

var orgIDPattern = regexp.MustCompile(`^[a-fA-F0-9]{24}$`)

// newOrgID generates a 24-hex-character identifier, the shape organization
// ids have carried since the legacy system.
func newOrgID() string {
	bytes := make([]byte, 12)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal(err)
	}
	return hex.EncodeToString(bytes)
}

type createOrganizationRequest struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	PlanID        string `json:"planId"`
	ExtraJobSlots int    `json:"extraJobSlots"`
}

// CreateOrganization registers a new tenant on an existing plan.
// @Summary Create organization
// @Tags Organization
// @Accept json
// @Produce json
// @Param Organization body createOrganizationRequest true "Organization to create"
// @Success 201 {object} model.Organization "Created organization"
// @Failure 400 {object} utilities.ErrorResponse "Invalid body, id or plan"
// @Failure 409 {object} utilities.ErrorResponse "Organization already exists"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /organizations [post]
func (oc *Controller) CreateOrganization(c *gin.Context) {

	var req createOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid payload"})
		return
	}

	if req.ID == "" {
		req.ID = newOrgID()
	}
	if !orgIDPattern.MatchString(req.ID) {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid organization ID"})
		return
	}

	name := sanitize.Text(req.Name, 160)
	if name == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "name is required"})
		return
	}

	var plan model.Plan
	if err := oc.DB.First(&plan, "id = ?", req.PlanID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid plan"})
			return
		}
		log.Printf("Failed to look up plan %s: %v", req.PlanID, err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to create organization"})
		return
	}

	var existing int64
	if err := oc.DB.Model(&model.Organization{}).Where("id = ?", req.ID).Count(&existing).Error; err != nil {
		log.Printf("Failed to check organization %s: %v", req.ID, err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to create organization"})
		return
	}
	if existing > 0 {
		c.JSON(http.StatusConflict, utilities.ErrorResponse{Error: "Organization already exists"})
		return
	}

	extraSlots := req.ExtraJobSlots
	if extraSlots < 0 {
		extraSlots = 0
	}

	org := model.Organization{
		ID:            req.ID,
		Name:          name,
		PlanID:        plan.ID,
		Plan:          plan,
		ExtraJobSlots: extraSlots,
	}
	if err := oc.DB.Create(&org).Error; err != nil {
		log.Printf("Failed to create organization %s: %v", req.ID, err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to create organization"})
		return
	}

	c.JSON(http.StatusCreated, org)
}

// GetOrganization fetches one organization with its plan.
// @Summary Get organization by ID
// @Tags Organization
// @Produce json
// @Param id path string true "Organization ID (24 hex characters)"
// @Success 200 {object} model.Organization "The organization with its plan"
// @Failure 400 {object} utilities.ErrorResponse "Invalid organization ID"
// @Failure 404 {object} utilities.ErrorResponse "Organization not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /organizations/{id} [get]
func (oc *Controller) GetOrganization(c *gin.Context) {
	id := c.Param("id")

	if !orgIDPattern.MatchString(id) {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid organization ID"})
		return
	}

	var org model.Organization
	if err := oc.DB.Preload("Plan").First(&org, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Organization not found"})
			return
		}
		log.Printf("Failed to fetch organization %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to fetch organization"})
		return
	}

	c.JSON(http.StatusOK, org)
}
