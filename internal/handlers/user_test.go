package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kaiseldev-sudo/budget-buddy/internal/middleware"
	"github.com/kaiseldev-sudo/budget-buddy/internal/models"
)

type stubUserService struct {
	called     bool
	uid, email string
	fullName   string
	err        error
}

func (s *stubUserService) Register(_ context.Context, uid, email, fullName string) (*models.User, error) {
	s.called = true
	s.uid = uid
	s.email = email
	s.fullName = fullName
	if s.err != nil {
		return nil, s.err
	}
	return &models.User{UID: uid, Email: email, FullName: fullName}, nil
}

func (s *stubUserService) GetProfile(_ context.Context, uid string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.User{UID: uid}, nil
}

func (s *stubUserService) UpdateProfile(_ context.Context, uid, fullName string) (*models.User, error) {
	s.called = true
	s.uid = uid
	s.fullName = fullName
	if s.err != nil {
		return nil, s.err
	}
	return &models.User{UID: uid, FullName: fullName}, nil
}

type stubResponseHandler struct {
	writeSuccessCalled bool
	writeSuccessStatus int
	writeSuccessData   any

	handleErrorCalled bool
	handleError       error

	errorWriteCalled bool
	errorWriteStatus int
	errorWriteCode   string
	errorWriteMsg    string
}

func (s *stubResponseHandler) WriteSuccess(w http.ResponseWriter, _ *http.Request, status int, data any) {
	s.writeSuccessCalled = true
	s.writeSuccessStatus = status
	s.writeSuccessData = data

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"success":true}`))
}

func (s *stubResponseHandler) WriteError(w http.ResponseWriter, _ *http.Request, status int, code, message string) {
	s.errorWriteCalled = true
	s.errorWriteStatus = status
	s.errorWriteCode = code
	s.errorWriteMsg = message
	w.WriteHeader(status)
}

func (s *stubResponseHandler) HandleError(w http.ResponseWriter, _ *http.Request, err error) {
	s.handleErrorCalled = true
	s.handleError = err
	w.WriteHeader(http.StatusInternalServerError)
}

func withUID(req *http.Request, uid string) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.UIDKey, uid)
	return req.WithContext(ctx)
}

func TestRegisterSuccess(t *testing.T) {
	userSvc := &stubUserService{}
	resp := &stubResponseHandler{}

	h := NewUserHandlers(&Deps{
		ResponseHandler: resp,
		UserSvc:         userSvc,
	})

	body := `{"email":"jane@example.com","fullName":"Jane Doe"}`
	req := httptest.NewRequest(http.MethodPost, "/users/register", strings.NewReader(body))
	req = withUID(req, "uid-123")

	rr := httptest.NewRecorder()
	h.Register(rr, req)

	if !userSvc.called {
		t.Fatal("expected Register to be called on service")
	}
	if userSvc.uid != "uid-123" || userSvc.email != "jane@example.com" {
		t.Fatalf("service received wrong identifiers: uid=%s email=%s", userSvc.uid, userSvc.email)
	}
	if userSvc.fullName != "Jane Doe" {
		t.Fatalf("service received wrong name: %s", userSvc.fullName)
	}

	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusCreated {
		t.Fatal("WriteSuccess not called with status 201")
	}
	if rr.Code != http.StatusCreated {
		t.Fatalf("unexpected response status: %d", rr.Code)
	}
}

func TestRegisterInvalidJSON(t *testing.T) {
	userSvc := &stubUserService{}
	resp := &stubResponseHandler{}

	h := NewUserHandlers(&Deps{
		ResponseHandler: resp,
		UserSvc:         userSvc,
	})

	req := httptest.NewRequest(http.MethodPost, "/users/register", strings.NewReader("not-json"))
	rr := httptest.NewRecorder()

	h.Register(rr, req)

	if userSvc.called {
		t.Fatal("Register should not be called on service when JSON invalid")
	}
	if !resp.handleErrorCalled || resp.handleError == nil {
		t.Fatal("HandleError should receive the decode error")
	}
}

func TestRegisterServiceError(t *testing.T) {
	userSvc := &stubUserService{err: errors.New("service failure")}
	resp := &stubResponseHandler{}

	h := NewUserHandlers(&Deps{
		ResponseHandler: resp,
		UserSvc:         userSvc,
	})

	body := `{"email":"jane@example.com","fullName":"Jane Doe"}`
	req := httptest.NewRequest(http.MethodPost, "/users/register", strings.NewReader(body))
	req = withUID(req, "uid-123")
	rr := httptest.NewRecorder()

	h.Register(rr, req)

	if !resp.handleErrorCalled {
		t.Fatal("expected handler to delegate error to ResponseHandler.HandleError")
	}
	if !errors.Is(resp.handleError, userSvc.err) {
		t.Fatalf("unexpected error passed to HandleError: %v", resp.handleError)
	}
	if resp.writeSuccessCalled {
		t.Fatal("WriteSuccess should not be called on service error")
	}
}

func TestGetProfile(t *testing.T) {
	userSvc := &stubUserService{}
	resp := &stubResponseHandler{}

	h := NewUserHandlers(&Deps{
		ResponseHandler: resp,
		UserSvc:         userSvc,
	})

	req := withUID(httptest.NewRequest(http.MethodGet, "/users/me", nil), "uid-9")
	rr := httptest.NewRecorder()
	h.GetProfile(rr, req)

	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatal("WriteSuccess not called with status 200")
	}
	user, ok := resp.writeSuccessData.(*models.User)
	if !ok || user.UID != "uid-9" {
		t.Fatalf("unexpected payload: %+v", resp.writeSuccessData)
	}
}

func TestUpdateProfile(t *testing.T) {
	userSvc := &stubUserService{}
	resp := &stubResponseHandler{}

	h := NewUserHandlers(&Deps{
		ResponseHandler: resp,
		UserSvc:         userSvc,
	})

	body := `{"fullName":"Jane Smith"}`
	req := httptest.NewRequest(http.MethodPut, "/users/me", strings.NewReader(body))
	req = withUID(req, "uid-9")
	rr := httptest.NewRecorder()

	h.UpdateProfile(rr, req)

	if !userSvc.called {
		t.Fatal("expected UpdateProfile to be called on service")
	}
	if userSvc.uid != "uid-9" || userSvc.fullName != "Jane Smith" {
		t.Fatalf("service received wrong arguments: uid=%s fullName=%s", userSvc.uid, userSvc.fullName)
	}
	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatal("WriteSuccess not called with status 200")
	}
	user, ok := resp.writeSuccessData.(*models.User)
	if !ok || user.FullName != "Jane Smith" {
		t.Fatalf("unexpected payload: %+v", resp.writeSuccessData)
	}
}

func TestUpdateProfileInvalidJSON(t *testing.T) {
	userSvc := &stubUserService{}
	resp := &stubResponseHandler{}

	h := NewUserHandlers(&Deps{
		ResponseHandler: resp,
		UserSvc:         userSvc,
	})

	req := httptest.NewRequest(http.MethodPut, "/users/me", strings.NewReader("not-json"))
	rr := httptest.NewRecorder()

	h.UpdateProfile(rr, req)

	if userSvc.called {
		t.Fatal("UpdateProfile should not be called on service when JSON invalid")
	}
	if !resp.handleErrorCalled || resp.handleError == nil {
		t.Fatal("HandleError should receive the decode error")
	}
}
