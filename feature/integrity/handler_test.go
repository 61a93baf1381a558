package integrity

import (
	"net/http/httptest"
	"testing"

	"ship-registry/core/storage/mocks"
	"ship-registry/feature/fleet/snapshot"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client, sqlmock.Sqlmock) {
	app := fiber.New()
	mockClient := new(mocks.Client)
	db, sqlMock := setupMockDB(t)
	svc := NewService(mockClient, "test-bucket", snapshot.NewBucketSource(mockClient, "test-bucket"), testLayout(), db, zap.NewNop())
	handler := NewHandler(svc)
	handler.RegisterRoutes(app)
	return app, mockClient, sqlMock
}

func TestHandleStructureCheck(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	ch := make(chan minio.ObjectInfo)
	close(ch)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	req := httptest.NewRequest("GET", "/integrity/structure", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "checked", body["status"])
	assert.NotEmpty(t, body["missing"])
}

func TestHandleStructureCheck_Fix(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	ch := make(chan minio.ObjectInfo)
	close(ch)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))
	mockClient.On("PutObject", mock.Anything, "test-bucket", "snapshots/latest/", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/structure?fix=true", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "fixed", body["status"])
	mockClient.AssertNumberOfCalls(t, "PutObject", 1)
}

func TestHandleSnapshotCheck(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)

	mockClient.On("StatObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything).
		Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey"})

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/snapshot", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["complete"])
	assert.Len(t, body["missing"], 2)
}

func TestHandleSnapshotCheck_Error(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)

	mockClient.On("StatObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything).
		Return(minio.ObjectInfo{}, assert.AnError)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/snapshot", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}

func TestHandleServerCheck(t *testing.T) {
	app, _, sqlMock := setupTestApp(t)

	sqlMock.ExpectQuery(".*").WillReturnRows(sqlmock.NewRows([]string{"Field", "Type"}).AddRow("id", "int(11)"))
	sqlMock.ExpectQuery(".*").WillReturnRows(sqlmock.NewRows([]string{"Field", "Type"}).AddRow("id", "int(11)"))

	req := httptest.NewRequest("GET", "/integrity/server", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["matched"])
	assert.Equal(t, "mysql", body["driver"])
}

func TestHandleIntegrityCheck(t *testing.T) {
	app, mockClient, sqlMock := setupTestApp(t)

	// Fail every dependency so the combined report carries three error sections.
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, assert.AnError)
	mockClient.On("StatObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything).Return(minio.ObjectInfo{}, assert.AnError)
	sqlMock.ExpectQuery(".*").WillReturnError(assert.AnError)
	sqlMock.ExpectQuery(".*").WillReturnError(assert.AnError)

	req := httptest.NewRequest("GET", "/integrity", nil)
	resp, err := app.Test(req, 2000)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "error", body["structure"]["status"])
	assert.Equal(t, "error", body["snapshot"]["status"])
	assert.Equal(t, false, body["server"]["matched"])
}
