package controllers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"evoting-backend/controllers"
	"evoting-backend/models"
	"evoting-backend/otp"
	"evoting-backend/routes"
)

var testJWTSecret = []byte("test-secret")

type sentMail struct {
	To      string
	Subject string
	Body    string
}

// fakeMailer records outgoing mail and can be told to fail the next send.
type fakeMailer struct {
	Sent     []sentMail
	FailNext bool
}

func (f *fakeMailer) Send(to, subject, body string) error {
	if f.FailNext {
		f.FailNext = false
		return errors.New("smtp unavailable")
	}
	f.Sent = append(f.Sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

type testEnv struct {
	DB     *gorm.DB
	Router *gin.Engine
	Mailer *fakeMailer
	OTP    *otp.Store
}

// newTestEnv wires the real handlers and router against an in-memory
// sqlite database and a fake mailer.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// In-memory sqlite is per-connection; keep the pool at one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	require.NoError(t, models.AutoMigrate(db))

	m := &fakeMailer{}
	store := otp.New(5 * time.Minute)
	h := controllers.New(db, store, m, testJWTSecret)

	return &testEnv{
		DB:     db,
		Router: routes.SetupRouter(h),
		Mailer: m,
		OTP:    store,
	}
}

// doJSON sends body (marshalled to JSON when non-nil) and returns the recorder.
func (e *testEnv) doJSON(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func (e *testEnv) setPhase(t *testing.T, phase string) {
	t.Helper()
	w := e.doJSON(t, http.MethodPost, "/election-phase", gin.H{"phase": phase})
	require.Equal(t, http.StatusOK, w.Code)
}

func (e *testEnv) registerVoter(t *testing.T, email, password string) {
	t.Helper()
	w := e.doJSON(t, http.MethodPost, "/register", gin.H{
		"email":           email,
		"password":        password,
		"confirmPassword": password,
	})
	require.Equal(t, http.StatusOK, w.Code)
}

func (e *testEnv) createCandidate(t *testing.T, name string, age int, party string) uint {
	t.Helper()
	w := e.doJSON(t, http.MethodPost, "/candidates", gin.H{
		"name":          name,
		"age":           age,
		"party":         party,
		"qualification": "Graduate",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var candidate models.Candidate
	require.NoError(t, e.DB.Where("name = ?", name).First(&candidate).Error)
	return candidate.ID
}
