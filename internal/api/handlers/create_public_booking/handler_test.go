package create_public_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	publicBooking "github.com/m04kA/SMC-AppointmentService/internal/usecase/public_booking"
)

type fakeUseCase struct {
	resp   *publicBooking.Response
	err    error
	gotReq *publicBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *publicBooking.Request) (*publicBooking.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, h *Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/public/book", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func validBody() PublicBookingRequest {
	return PublicBookingRequest{
		Slug:        "barbershop",
		ServiceID:   10,
		ClientName:  "Иван Петров",
		ClientPhone: "+79991234567",
		Date:        "2025-06-02",
		StartTime:   "14:00",
	}
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &publicBooking.Response{
		ID:          42,
		CompanyID:   7,
		ServiceID:   10,
		ClientName:  "Иван Петров",
		ClientPhone: "+79991234567",
		StartTime:   time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2025, 6, 2, 14, 45, 0, 0, time.UTC),
		ServiceName: "Стрижка",
	}}
	h := NewHandler(uc, noopLogger{})

	rec := doRequest(t, h, validBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC), uc.gotReq.StartTime)

	var resp PublicBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "2025-06-02T14:00:00Z", resp.StartTime)
	assert.Equal(t, "2025-06-02T14:45:00Z", resp.EndTime)

	// Телефон клиента наружу не возвращается
	assert.NotContains(t, rec.Body.String(), "+79991234567")
}

func TestHandle_SlotConflictReturns409(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: publicBooking.ErrSlotNotAvailable}, noopLogger{})

	rec := doRequest(t, h, validBody())
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_UnknownCompanyReturns404(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: publicBooking.ErrCompanyNotFound}, noopLogger{})

	rec := doRequest(t, h, validBody())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_BadDateReturns400(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, noopLogger{})

	body := validBody()
	body.Date = "02.06.2025"

	rec := doRequest(t, h, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_MalformedJSONReturns400(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/public/book", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
