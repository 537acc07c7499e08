package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/doctors-portal-api/internal/audit"
	"github.com/BruksfildServices01/doctors-portal-api/internal/httperr"
	"github.com/BruksfildServices01/doctors-portal-api/internal/middleware"
	"github.com/BruksfildServices01/doctors-portal-api/internal/models"
	"github.com/BruksfildServices01/doctors-portal-api/internal/token"
)

type fakeDoctorStore struct {
	mu      sync.Mutex
	doctors map[string]*models.Doctor
}

func newFakeDoctorStore() *fakeDoctorStore {
	return &fakeDoctorStore{doctors: map[string]*models.Doctor{}}
}

func (f *fakeDoctorStore) ListDoctors(_ context.Context) ([]models.Doctor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Doctor
	for _, d := range f.doctors {
		out = append(out, *d)
	}
	return out, nil
}

func (f *fakeDoctorStore) InsertDoctor(_ context.Context, d *models.Doctor) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	email := strings.ToLower(d.Email)
	if _, exists := f.doctors[email]; exists {
		return httperr.ErrBusiness("doctor_exists")
	}
	stored := *d
	f.doctors[email] = &stored
	return nil
}

func (f *fakeDoctorStore) DeleteDoctorByEmail(_ context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.doctors[email]; !exists {
		return false, nil
	}
	delete(f.doctors, email)
	return true, nil
}

// Compile-time check
var _ DoctorStore = (*fakeDoctorStore)(nil)

// fakeAuditSink records events in memory so the async dispatch can be
// observed.
type fakeAuditSink struct {
	mu     sync.Mutex
	events []audit.Event
}

func (s *fakeAuditSink) Log(ev audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func (s *fakeAuditSink) find(action string) *audit.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.events {
		if s.events[i].Action == action {
			return &s.events[i]
		}
	}
	return nil
}

func newDoctorTestRouter(store DoctorStore, sink *fakeAuditSink) (*gin.Engine, *token.Manager) {
	gin.SetMode(gin.TestMode)

	tokens := token.NewManager("secret", time.Hour)
	h := NewDoctorHandler(store, audit.NewDispatcher(sink, zap.NewNop()))

	r := gin.New()
	r.GET("/doctors", h.List)
	r.POST("/doctors", middleware.RequireIdentity(tokens), h.Create)
	r.DELETE("/doctors/:email", middleware.RequireIdentity(tokens), h.Delete)
	return r, tokens
}

func TestDoctorHandler(t *testing.T) {
	authed := func(t *testing.T, tokens *token.Manager, req *http.Request) {
		signed, err := tokens.Sign("admin@x.com")
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+signed)
	}

	t.Run("create inserts and audits", func(t *testing.T) {
		store := newFakeDoctorStore()
		sink := &fakeAuditSink{}
		r, tokens := newDoctorTestRouter(store, sink)

		body := `{"name":"Dr. Roe","email":"roe@x.com","specialty":"Dentistry"}`
		req := httptest.NewRequest(http.MethodPost, "/doctors", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		authed(t, tokens, req)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		require.Eventually(t, func() bool {
			return sink.find("doctor_added") != nil
		}, 2*time.Second, 10*time.Millisecond)

		ev := sink.find("doctor_added")
		assert.Equal(t, "admin@x.com", ev.Actor)
		assert.Equal(t, "roe@x.com", ev.EntityID)
	})

	t.Run("duplicate doctor is a conflict", func(t *testing.T) {
		store := newFakeDoctorStore()
		sink := &fakeAuditSink{}
		r, tokens := newDoctorTestRouter(store, sink)

		body := `{"name":"Dr. Roe","email":"roe@x.com","specialty":"Dentistry"}`
		for i, want := range []int{http.StatusCreated, http.StatusConflict} {
			req := httptest.NewRequest(http.MethodPost, "/doctors", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			authed(t, tokens, req)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)
			assert.Equal(t, want, rr.Code, "request %d", i)
		}
	})

	t.Run("delete removes and audits", func(t *testing.T) {
		store := newFakeDoctorStore()
		require.NoError(t, store.InsertDoctor(context.Background(), &models.Doctor{
			Name: "Dr. Roe", Email: "roe@x.com", Specialty: "Dentistry",
		}))
		sink := &fakeAuditSink{}
		r, tokens := newDoctorTestRouter(store, sink)

		req := httptest.NewRequest(http.MethodDelete, "/doctors/roe@x.com", nil)
		authed(t, tokens, req)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		require.Eventually(t, func() bool {
			return sink.find("doctor_removed") != nil
		}, 2*time.Second, 10*time.Millisecond)

		ev := sink.find("doctor_removed")
		assert.Equal(t, "admin@x.com", ev.Actor)
		assert.Equal(t, "roe@x.com", ev.EntityID)
	})

	t.Run("deleting an absent doctor is not found and not audited", func(t *testing.T) {
		store := newFakeDoctorStore()
		sink := &fakeAuditSink{}
		r, tokens := newDoctorTestRouter(store, sink)

		req := httptest.NewRequest(http.MethodDelete, "/doctors/nobody@x.com", nil)
		authed(t, tokens, req)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Nil(t, sink.find("doctor_removed"))
	})
}
