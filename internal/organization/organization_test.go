package organization

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"careerhub-backend/internal/database"
	"careerhub-backend/internal/model"
	"careerhub-backend/internal/testutil"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	teardown, db, err := database.GetTestDB()
	if err != nil {
		log.Fatalf("could not start test database: %v", err)
	}
	testDB = db

	code := m.Run()

	if teardown != nil {
		if err := teardown(context.Background()); err != nil {
			log.Printf("could not teardown test database: %v", err)
		}
	}
	os.Exit(code)
}

func newRouter() *gin.Engine {
	r := gin.New()
	oc := NewController(testDB)

	grp := r.Group("/api/v1/organizations")
	grp.POST("", oc.CreateOrganization)
	grp.GET("/:id", oc.GetOrganization)
	return r
}

func TestCreateOrganization(t *testing.T) {
	r := newRouter()

	body := map[string]any{
		"id":     "aaaaaaaaaaaaaaaaaaaaaaaa",
		"name":   "  Acme Talent  ",
		"planId": "plan-free",
	}
	rec, resp := testutil.MakeJSONRequest(body, r, "/api/v1/organizations", http.MethodPost)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "aaaaaaaaaaaaaaaaaaaaaaaa", resp["id"])
	assert.Equal(t, "Acme Talent", resp["name"])

	plan, ok := resp["plan"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "plan-free", plan["id"])
}

func TestCreateOrganizationGeneratesID(t *testing.T) {
	r := newRouter()

	body := map[string]any{"name": "Generated Co", "planId": "plan-free"}
	rec, resp := testutil.MakeJSONRequest(body, r, "/api/v1/organizations", http.MethodPost)

	assert.Equal(t, http.StatusCreated, rec.Code)
	id, _ := resp["id"].(string)
	assert.Len(t, id, 24)
}

func TestCreateOrganizationValidation(t *testing.T) {
	r := newRouter()

	body := map[string]any{"id": "short", "name": "Bad ID Co", "planId": "plan-free"}
	rec, resp := testutil.MakeJSONRequest(body, r, "/api/v1/organizations", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid organization ID", resp["error"])

	body = map[string]any{"name": "   ", "planId": "plan-free"}
	rec, resp = testutil.MakeJSONRequest(body, r, "/api/v1/organizations", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "name is required", resp["error"])

	body = map[string]any{"name": "No Plan Co", "planId": "plan-imaginary"}
	rec, resp = testutil.MakeJSONRequest(body, r, "/api/v1/organizations", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid plan", resp["error"])
}

func TestCreateOrganizationConflict(t *testing.T) {
	r := newRouter()

	body := map[string]any{
		"id":     database.TestOrgGrowthID,
		"name":   "Duplicate Co",
		"planId": "plan-free",
	}
	rec, resp := testutil.MakeJSONRequest(body, r, "/api/v1/organizations", http.MethodPost)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Organization already exists", resp["error"])
}

func TestCreateOrganizationClampsExtraSlots(t *testing.T) {
	r := newRouter()

	body := map[string]any{
		"id":            "bbbbbbbbbbbbbbbbbbbbbbbb",
		"name":          "Clamped Co",
		"planId":        "plan-free",
		"extraJobSlots": -5,
	}
	rec, _ := testutil.MakeJSONRequest(body, r, "/api/v1/organizations", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var org model.Organization
	assert.Nil(t, testDB.First(&org, "id = ?", "bbbbbbbbbbbbbbbbbbbbbbbb").Error)
	assert.Equal(t, 0, org.ExtraJobSlots)
}

func TestGetOrganization(t *testing.T) {
	r := newRouter()

	rec, _ := testutil.MakeJSONRequest(nil, r,
		"/api/v1/organizations/"+database.TestOrgGrowthID, http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)

	var org model.Organization
	assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &org))
	assert.Equal(t, database.TestOrgGrowthID, org.ID)
	assert.Equal(t, "plan-growth", org.Plan.ID)

	rec, resp := testutil.MakeJSONRequest(nil, r,
		"/api/v1/organizations/ffffffffffffffffffffffff", http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Organization not found", resp["error"])

	rec, resp = testutil.MakeJSONRequest(nil, r,
		"/api/v1/organizations/not-hex", http.MethodGet)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid organization ID", resp["error"])
}
