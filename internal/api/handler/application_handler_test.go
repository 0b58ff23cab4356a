package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bumdes-sale/backend/internal/core/domain"
	"github.com/bumdes-sale/backend/internal/core/ports"
)

type stubApplicationService struct {
	lastSubmit ports.ApplicationInput
	apps       []*domain.CapitalApplication
}

func (s *stubApplicationService) Submit(_ context.Context, in ports.ApplicationInput) (*domain.CapitalApplication, error) {
	s.lastSubmit = in
	return &domain.CapitalApplication{
		ID:            "app-1",
		ApplicantName: in.ApplicantName,
		Phone:         in.Phone,
		Email:         in.Email,
		BusinessType:  in.BusinessType,
		LoanAmount:    in.LoanAmount,
		Purpose:       in.Purpose,
		Status:        domain.ApplicationPending,
	}, nil
}

func (s *stubApplicationService) Get(_ context.Context, id string) (*domain.CapitalApplication, error) {
	for _, a := range s.apps {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubApplicationService) ListAll(_ context.Context) ([]*domain.CapitalApplication, error) {
	return s.apps, nil
}

func (s *stubApplicationService) Review(_ context.Context, id string, in ports.ReviewInput) (*domain.CapitalApplication, error) {
	app, err := s.Get(context.Background(), id)
	if err != nil {
		return nil, err
	}
	app.Status = in.Status
	return app, nil
}

func TestApplicationHandler_Submit(t *testing.T) {
	svc := &stubApplicationService{}
	h := NewApplicationHandler(svc)

	c, rec := jsonRequest(t, http.MethodPost, "/api/permodalan/apply",
		`{"applicant_name":"Budi","phone":"+62 812","email":"budi@example.com","business_type":"Warung","loan_amount":"Rp 10 Juta","purpose":"Modal awal"}`)

	if err := h.Submit(c); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var app domain.CapitalApplication
	if err := json.Unmarshal(rec.Body.Bytes(), &app); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if app.Status != domain.ApplicationPending {
		t.Fatalf("expected pending status, got %q", app.Status)
	}
}

func TestApplicationHandler_Submit_WithoutEmail(t *testing.T) {
	// Email is optional on the application form.
	svc := &stubApplicationService{}
	h := NewApplicationHandler(svc)

	c, rec := jsonRequest(t, http.MethodPost, "/api/permodalan/apply",
		`{"applicant_name":"Budi","phone":"+62 812","business_type":"Warung","loan_amount":"Rp 10 Juta","purpose":"Modal awal"}`)

	if err := h.Submit(c); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.lastSubmit.Email != "" {
		t.Fatalf("expected empty email, got %q", svc.lastSubmit.Email)
	}
}

func TestApplicationHandler_Submit_MalformedEmail(t *testing.T) {
	h := NewApplicationHandler(&stubApplicationService{})

	c, _ := jsonRequest(t, http.MethodPost, "/api/permodalan/apply",
		`{"applicant_name":"Budi","phone":"+62 812","email":"not-an-email","business_type":"Warung","loan_amount":"Rp 10 Juta","purpose":"Modal awal"}`)

	err := h.Submit(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T: %v", err, err)
	}
	if he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", he.Code)
	}
}

func TestApplicationHandler_Review_RequiresDecision(t *testing.T) {
	h := NewApplicationHandler(&stubApplicationService{
		apps: []*domain.CapitalApplication{{ID: "app-1", Status: domain.ApplicationPending}},
	})

	// "pending" is not a decision.
	c, _ := jsonRequest(t, http.MethodPut, "/api/admin/permodalan/app-1/approve",
		`{"status":"pending"}`)
	c.SetParamNames("id")
	c.SetParamValues("app-1")

	err := h.Review(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T: %v", err, err)
	}
	if he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", he.Code)
	}
}
