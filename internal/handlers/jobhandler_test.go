package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/jobjournal/internal/models"
	"github.com/justsurfingit/jobjournal/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func jobTestRouter(t *testing.T, db *gorm.DB, userID uint) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewJobHandler(services.NewJobService(db), &fakeMailer{})

	r := gin.New()
	r.Use(identity(userID, "owner@x.com"))
	r.GET("/jobs", h.ListJobs)
	r.POST("/jobs", h.CreateJob)
	r.PATCH("/jobs", h.UpdateJob)
	r.DELETE("/jobs", h.DeleteJob)
	return r
}

type jobResponse struct {
	Message string     `json:"message"`
	Job     models.Job `json:"job"`
}

func TestJobHandler_CreateAndList(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "owner@x.com")
	r := jobTestRouter(t, db, user.ID)

	w := performJSON(t, r, http.MethodPost, "/jobs", gin.H{
		"jobtitle": "Backend Engineer",
		"company":  "Acme",
		"rounds":   []string{"HR", "Technical"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created jobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, models.RoundStatus{"HR": 0, "Technical": 0}, created.Job.RoundStatus)

	w = performJSON(t, r, http.MethodGet, "/jobs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Backend Engineer")
}

func TestJobHandler_Create_MissingRequiredField(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "owner@x.com")
	r := jobTestRouter(t, db, user.ID)

	w := performJSON(t, r, http.MethodPost, "/jobs", gin.H{"company": "Acme"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJobHandler_Update_ToggleThenReplace(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "owner@x.com")
	r := jobTestRouter(t, db, user.ID)

	w := performJSON(t, r, http.MethodPost, "/jobs", gin.H{
		"jobtitle": "A",
		"company":  "B",
		"rounds":   []string{"HR", "Technical"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created jobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	jobID := created.Job.ID

	// round+status selects the per-key merge
	w = performJSON(t, r, http.MethodPatch, "/jobs", gin.H{
		"jobId":  jobID,
		"round":  "Technical",
		"status": 1,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var toggled jobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &toggled))
	assert.Equal(t, models.RoundStatus{"HR": 0, "Technical": 1}, toggled.Job.RoundStatus)

	// a roundStatus payload replaces the map wholesale
	w = performJSON(t, r, http.MethodPatch, "/jobs", gin.H{
		"jobId":       jobID,
		"roundStatus": map[string]int{"HR": 1},
	})
	require.Equal(t, http.StatusOK, w.Code)
	var replaced jobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &replaced))
	assert.Equal(t, models.RoundStatus{"HR": 1}, replaced.Job.RoundStatus)
}

func TestJobHandler_Update_ToggleAndFieldEditInOnePayload(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "owner@x.com")
	r := jobTestRouter(t, db, user.ID)

	w := performJSON(t, r, http.MethodPost, "/jobs", gin.H{
		"jobtitle": "Old Title",
		"company":  "B",
		"rounds":   []string{"HR"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created jobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// round+status alongside editable fields: both land, nothing is dropped
	w = performJSON(t, r, http.MethodPatch, "/jobs", gin.H{
		"jobId":    created.Job.ID,
		"round":    "HR",
		"status":   1,
		"jobtitle": "New Title",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var patched jobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &patched))
	assert.Equal(t, models.RoundStatus{"HR": 1}, patched.Job.RoundStatus)
	assert.Equal(t, "New Title", patched.Job.Jobtitle)

	var stored models.Job
	require.NoError(t, db.First(&stored, created.Job.ID).Error)
	assert.Equal(t, models.RoundStatus{"HR": 1}, stored.RoundStatus)
	assert.Equal(t, "New Title", stored.Jobtitle)
}

func TestJobHandler_Update_SparseFieldEdit(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "owner@x.com")
	r := jobTestRouter(t, db, user.ID)

	w := performJSON(t, r, http.MethodPost, "/jobs", gin.H{
		"jobtitle": "A",
		"company":  "B",
		"salary":   "100k",
		"rounds":   []string{"HR"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created jobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = performJSON(t, r, http.MethodPatch, "/jobs", gin.H{
		"jobId":  created.Job.ID,
		"salary": "120k",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var patched jobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &patched))
	assert.Equal(t, "120k", patched.Job.Salary)
	assert.Equal(t, "A", patched.Job.Jobtitle)
	assert.Equal(t, models.RoundStatus{"HR": 0}, patched.Job.RoundStatus)
}

func TestJobHandler_ForeignJobLooksMissing(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@x.com")
	stranger := seedUser(t, db, "stranger@x.com")

	ownerRouter := jobTestRouter(t, db, owner.ID)
	w := performJSON(t, ownerRouter, http.MethodPost, "/jobs", gin.H{
		"jobtitle": "A",
		"company":  "B",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created jobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	strangerRouter := jobTestRouter(t, db, stranger.ID)

	// an existing foreign job and a nonexistent id answer identically
	wForeign := performJSON(t, strangerRouter, http.MethodPatch, "/jobs", gin.H{
		"jobId": created.Job.ID,
		"round": "HR", "status": 1,
	})
	wMissing := performJSON(t, strangerRouter, http.MethodPatch, "/jobs", gin.H{
		"jobId": 99999,
		"round": "HR", "status": 1,
	})
	assert.Equal(t, http.StatusNotFound, wForeign.Code)
	assert.Equal(t, http.StatusNotFound, wMissing.Code)
	assert.Equal(t, wMissing.Body.String(), wForeign.Body.String())

	wDelete := performJSON(t, strangerRouter, http.MethodDelete, "/jobs", gin.H{"jobId": created.Job.ID})
	assert.Equal(t, http.StatusNotFound, wDelete.Code)
}

func TestJobHandler_Delete(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "owner@x.com")
	r := jobTestRouter(t, db, user.ID)

	w := performJSON(t, r, http.MethodPost, "/jobs", gin.H{"jobtitle": "A", "company": "B"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created jobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = performJSON(t, r, http.MethodDelete, "/jobs", gin.H{"jobId": created.Job.ID})
	assert.Equal(t, http.StatusOK, w.Code)

	w = performJSON(t, r, http.MethodDelete, "/jobs", gin.H{"jobId": created.Job.ID})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
