package career

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"careerhub-backend/internal/database"
	"careerhub-backend/internal/model"
	"careerhub-backend/internal/utilities"
)

// Controller handles career posting endpoints
type Controller struct {
	DB *database.DBinstanceStruct
}

// NewController creates a new instance of Controller
func NewController(db *database.DBinstanceStruct) *Controller {
	return &Controller{
		DB: db,
	}
}

func respondError(c *gin.Context, verr *ValidationError) {
	c.JSON(verr.Status, utilities.ErrorResponse{Error: verr.Message})
}

// AddCareer validates, sanitizes and stores a new career posting.
// @Summary Submit a new career posting
// @Description Sanitizes the payload, checks the organization's plan quota and stores the posting
// @Tags Career
// @Accept json
// @Produce json
// @Param Career body map[string]interface{} true "Career posting payload"
// @Success 200 {object} utilities.CareerResponse "Career added successfully"
// @Failure 400 {object} utilities.ErrorResponse "Validation failure or plan quota reached"
// @Failure 404 {object} utilities.ErrorResponse "Organization not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /careers [post]
func (cc *Controller) AddCareer(c *gin.Context) {

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload())
		return
	}

	career, verr := BuildCareer(payload)
	if verr != nil {
		respondError(c, verr)
		return
	}

	// Resolve the organization together with its plan. An organization
	// without a matching plan row counts as not found.
	var org model.Organization
	if err := cc.DB.InnerJoins("Plan").
		Where("organizations.id = ?", career.OrgID).
		First(&org).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, errOrganizationNotFound())
			return
		}
		log.Printf("Failed to look up organization %s: %v", career.OrgID, err)
		respondError(c, errInternal())
		return
	}

	now := time.Now()
	career.ID = uuid.NewString()
	career.CreatedAt = now
	career.UpdatedAt = now
	career.LastActivityAt = now

	// Quota check and insert share one transaction so concurrent
	// submissions cannot both pass the check and overshoot the plan limit.
	txErr := cc.DB.Transaction(func(tx *gorm.DB) error {
		var active int64
		if err := tx.Model(&model.Career{}).
			Where("org_id = ? AND status = ?", career.OrgID, model.StatusActive).
			Count(&active).Error; err != nil {
			return err
		}
		if active >= int64(org.JobSlots()) {
			return errQuotaExceeded()
		}
		return tx.Create(career).Error
	})
	if txErr != nil {
		var quotaErr *ValidationError
		if errors.As(txErr, &quotaErr) {
			respondError(c, quotaErr)
			return
		}
		log.Printf("Failed to insert career for organization %s: %v", career.OrgID, txErr)
		respondError(c, errInternal())
		return
	}

	c.JSON(http.StatusOK, utilities.CareerResponse{
		Message: "Career added successfully",
		Career:  career,
	})
}

// GetCareers fetches career postings, optionally filtered by query.
// @Summary List career postings
// @Description Every query is optional; orgID narrows to one organization, status to active/inactive, search matches job titles case-insensitively
// @Tags Career
// @Produce json
// @Param orgID query string false "Organization ID (24 hex characters)"
// @Param status query string false "Posting status" Enums(active, inactive)
// @Param search query string false "Substring match on job title"
// @Success 200 {array} model.Career "Matching career postings"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /careers [get]
func (cc *Controller) GetCareers(c *gin.Context) {

	rawOrgID := c.Query("orgID")
	rawStatus := c.Query("status")
	rawSearch := c.Query("search")

	query := cc.DB.Preload("PreScreeningQuestions", func(db *gorm.DB) *gorm.DB {
		return db.Order("pre_screening_questions.position ASC")
	})

	if rawOrgID != "" {
		query = query.Where("org_id = ?", rawOrgID)
	}
	if rawStatus != "" {
		query = query.Where("status = ?", rawStatus)
	}
	if rawSearch != "" {
		query = query.Where("job_title ILIKE ?", "%"+rawSearch+"%")
	}

	careers := []model.Career{}
	if err := query.Order("created_at DESC").Find(&careers).Error; err != nil {
		log.Printf("Failed to fetch careers: %v", err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to fetch careers"})
		return
	}

	c.JSON(http.StatusOK, careers)
}

// GetCareerByID fetches a single career posting.
// @Summary Get career posting by ID
// @Tags Career
// @Produce json
// @Param id path string true "Career ID"
// @Success 200 {object} model.Career "The career posting"
// @Failure 404 {object} utilities.ErrorResponse "Career not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /careers/{id} [get]
func (cc *Controller) GetCareerByID(c *gin.Context) {
	id := c.Param("id")

	var career model.Career
	if err := cc.DB.Preload("PreScreeningQuestions", func(db *gorm.DB) *gorm.DB {
		return db.Order("pre_screening_questions.position ASC")
	}).First(&career, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Career not found"})
			return
		}
		log.Printf("Failed to fetch career %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to fetch career"})
		return
	}

	c.JSON(http.StatusOK, career)
}

// UpdateCareer replaces the editable fields of an existing posting with a
// freshly sanitized submission. The multi-step form resubmits the whole
// record on every save, so updates take the full payload, not a partial one.
// @Summary Update career posting
// @Description Runs the same sanitization pipeline as submission; organization ownership cannot change
// @Tags Career
// @Accept json
// @Produce json
// @Param id path string true "Career ID"
// @Param Career body map[string]interface{} true "Career posting payload"
// @Success 200 {object} utilities.CareerResponse "Career updated successfully"
// @Failure 400 {object} utilities.ErrorResponse "Validation failure"
// @Failure 404 {object} utilities.ErrorResponse "Career not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /careers/{id} [patch]
func (cc *Controller) UpdateCareer(c *gin.Context) {
	id := c.Param("id")

	var existing model.Career
	if err := cc.DB.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Career not found"})
			return
		}
		log.Printf("Failed to fetch career %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to update career"})
		return
	}

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil || payload == nil {
		respondError(c, errInvalidPayload())
		return
	}

	// A posting cannot move between organizations.
	payload["orgID"] = existing.OrgID

	updated, verr := BuildCareer(payload)
	if verr != nil {
		respondError(c, verr)
		return
	}

	now := time.Now()
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	updated.CreatedBy = existing.CreatedBy
	updated.UpdatedAt = now
	updated.LastActivityAt = now
	for i := range updated.PreScreeningQuestions {
		updated.PreScreeningQuestions[i].CareerID = existing.ID
	}

	txErr := cc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("career_id = ?", existing.ID).
			Delete(&model.PreScreeningQuestion{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(updated).Error
	})
	if txErr != nil {
		log.Printf("Failed to update career %s: %v", id, txErr)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to update career"})
		return
	}

	c.JSON(http.StatusOK, utilities.CareerResponse{
		Message: "Career updated successfully",
		Career:  updated,
	})
}

// DeactivateCareer closes a posting. Postings are never physically removed,
// a delete flips the status to inactive and frees up a plan slot.
// @Summary Deactivate career posting
// @Tags Career
// @Produce json
// @Param id path string true "Career ID"
// @Success 200 {object} utilities.MessageResponse "Career deactivated"
// @Failure 404 {object} utilities.ErrorResponse "Career not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /careers/{id} [delete]
func (cc *Controller) DeactivateCareer(c *gin.Context) {
	id := c.Param("id")

	var career model.Career
	if err := cc.DB.First(&career, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Career not found"})
			return
		}
		log.Printf("Failed to fetch career %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to deactivate career"})
		return
	}

	now := time.Now()
	if err := cc.DB.Model(&career).Updates(map[string]any{
		"status":           model.StatusInactive,
		"updated_at":       now,
		"last_activity_at": now,
	}).Error; err != nil {
		log.Printf("Failed to deactivate career %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to deactivate career"})
		return
	}

	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Career deactivated"})
}
