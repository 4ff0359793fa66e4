package httpserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"tunedesk/internal/models"
	"tunedesk/internal/storage"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on",
		strings.NewReplacer("/", "_", " ", "_").Replace(t.Name()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         glogger.Default.LogMode(glogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(
		&models.Car{}, &models.CarInformation{}, &models.Customer{},
		&models.Tag{}, &models.User{}, &models.Order{}, &models.Binary{},
	))
	st, err := storage.New(t.TempDir(), 64)
	require.NoError(t, err)
	return NewRouter(db, st, zap.NewNop().Sugar())
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCarEndpoints(t *testing.T) {
	h := newTestRouter(t)

	rec := doJSON(t, h, http.MethodPost, "/v1/cars", map[string]any{
		"modelName": "Tesla Model S",
		"regNumber": "ABC123X",
		"engine":    "Electric 100kWh",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var car models.Car
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &car))
	assert.Equal(t, uint(1), car.ID)

	rec = doJSON(t, h, http.MethodGet, "/v1/cars/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/v1/cars/99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/v1/cars/count", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count":1}`, rec.Body.String())
}

func TestCarValidationResponse(t *testing.T) {
	h := newTestRouter(t)

	rec := doJSON(t, h, http.MethodPost, "/v1/cars", map[string]any{"modelName": "Golf"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error  string `json:"error"`
		Fields []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "validation failed", body.Error)
	assert.Len(t, body.Fields, 2)
}

func TestOrderMissingUserIsConflict(t *testing.T) {
	h := newTestRouter(t)

	rec := doJSON(t, h, http.MethodPost, "/v1/cars", map[string]any{
		"modelName": "Tesla Model S", "regNumber": "ABC123X", "engine": "Electric 100kWh",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/v1/orders", map[string]any{
		"carId": 1, "userId": 1, "readTool": "KESS", "requestedStage": "Stage 1",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// The already committed car is untouched.
	rec = doJSON(t, h, http.MethodGet, "/v1/cars/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIntakeEndpoint(t *testing.T) {
	h := newTestRouter(t)

	rec := doJSON(t, h, http.MethodPost, "/v1/users", map[string]any{
		"name": "Erik", "email": "erik@workshop.test", "phone": "+46701234567",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/v1/intake", map[string]any{
		"car": map[string]any{
			"modelName": "Volvo V70", "regNumber": "GHI789Z", "engine": "D5244T",
		},
		"carInformation": map[string]any{
			"vehicleType": "Estate", "manufacturer": "Volvo", "model": "V70",
			"generation": "P2", "engine": "2.4 D5", "year": "2004-01-01",
			"gearbox": "Manual", "ecuType": "EDC15C11",
		},
		"tags":  []map[string]any{{"name": "Stage 1", "colour": "#3B82F6"}},
		"order": map[string]any{"userId": 1, "readTool": "KESS", "requestedStage": "Stage 1"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var res struct {
		Car   models.Car   `json:"car"`
		Order models.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, res.Car.ID, res.Order.CarID)
	require.NotNil(t, res.Car.Information)
	assert.Len(t, res.Car.Tags, 1)
}

func TestUploadEndpoint(t *testing.T) {
	h := newTestRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "stage1.bin")
	require.NoError(t, err)
	_, err = fw.Write([]byte("firmware"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/uploads", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var stored storage.StoredFile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stored))
	assert.Equal(t, "stage1.bin", stored.OriginalName)
	assert.Equal(t, int64(8), stored.FileSize)
	assert.True(t, strings.HasSuffix(stored.FileName, ".bin"))
}

func TestUploadTooLarge(t *testing.T) {
	h := newTestRouter(t) // 64 byte cap

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "big.bin")
	require.NoError(t, err)
	_, err = fw.Write(bytes.Repeat([]byte{0xFF}, 65))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/uploads", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestHealthz(t *testing.T) {
	h := newTestRouter(t)
	rec := doJSON(t, h, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
