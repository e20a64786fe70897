package resolve_request

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/logger"
)

type fakeService struct {
	accepted []string
	rejected []string
	err      error
}

func (f *fakeService) Accept(ctx context.Context, id string) (*domain.Request, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.accepted = append(f.accepted, id)
	return &domain.Request{ID: id, Status: domain.StatusApproved}, nil
}

func (f *fakeService) Reject(ctx context.Context, id string) (*domain.Request, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.rejected = append(f.rejected, id)
	return &domain.Request{ID: id, Status: domain.StatusRejected}, nil
}

func serve(svc RequestsService, action Action, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/requests/{requestId}/"+string(action), NewHandler(svc, action, logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/requests/a/"+string(action), strings.NewReader(body)))
	return rec
}

func TestHandle_RequiresConfirmation(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, ActionAccept, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.accepted)

	rec = serve(svc, ActionAccept, `{"confirm": true}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"a"}, svc.accepted)
}

func TestHandle_Reject(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, ActionReject, `{"confirm": true}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"a"}, svc.rejected)
	assert.Contains(t, rec.Body.String(), `"status":"rejected"`)
}

func TestHandle_ErrorMapping(t *testing.T) {
	rec := serve(&fakeService{err: domain.ErrRequestNotFound}, ActionAccept, `{"confirm": true}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(&fakeService{err: domain.ErrInvalidTransition}, ActionReject, `{"confirm": true}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}
