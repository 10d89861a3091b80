package application

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeRepository struct {
	apps   map[int64]Application
	nextID int64
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{apps: make(map[int64]Application), nextID: 1}
}

func (f *fakeRepository) List(context.Context) ([]Application, error) {
	out := make([]Application, 0, len(f.apps))
	for _, app := range f.apps {
		out = append(out, app)
	}
	return out, nil
}

func (f *fakeRepository) ListByAd(_ context.Context, adID int64) ([]Application, error) {
	var out []Application
	for _, app := range f.apps {
		if app.AdID == adID {
			out = append(out, app)
		}
	}
	return out, nil
}

func (f *fakeRepository) Create(_ context.Context, req CreateRequest) (Application, error) {
	app := Application{
		ID:          f.nextID,
		AdID:        req.AdID,
		CompanyName: req.CompanyName,
		Name:        req.Name,
		Lastname:    req.Lastname,
		Email:       req.Email,
		Phone:       req.Phone,
		Motivations: req.Motivations,
		Website:     req.Website,
		CV:          req.CV,
		CreatedAt:   time.Now().UTC(),
	}
	f.nextID++
	f.apps[app.ID] = app
	return app, nil
}

func (f *fakeRepository) Update(_ context.Context, id int64, fields map[string]any) (bool, error) {
	_, ok := f.apps[id]
	return ok && len(fields) > 0, nil
}

func (f *fakeRepository) Delete(_ context.Context, id int64) (bool, error) {
	_, ok := f.apps[id]
	delete(f.apps, id)
	return ok, nil
}

func validCreateRequest() CreateRequest {
	return CreateRequest{
		AdID:        3,
		CompanyName: "Acme",
		Name:        "Alice",
		Lastname:    "Applicant",
		Email:       "alice@example.com",
		Motivations: "I want this job.",
	}
}

func TestService_CreateAndListByAd(t *testing.T) {
	svc := NewService(newFakeRepository())

	created, err := svc.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("create: unexpected error: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}

	apps, err := svc.ListByAd(context.Background(), 3)
	if err != nil {
		t.Fatalf("list by ad: %v", err)
	}
	if len(apps) != 1 || apps[0].Email != "alice@example.com" {
		t.Fatalf("unexpected applications: %+v", apps)
	}

	none, err := svc.ListByAd(context.Background(), 99)
	if err != nil {
		t.Fatalf("list by ad: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no applications for unknown ad, got %d", len(none))
	}
}

func TestService_CreateValidation(t *testing.T) {
	svc := NewService(newFakeRepository())

	cases := map[string]func(*CreateRequest){
		"missing ad":          func(r *CreateRequest) { r.AdID = 0 },
		"missing company":     func(r *CreateRequest) { r.CompanyName = "" },
		"missing name":        func(r *CreateRequest) { r.Name = "" },
		"bad email":           func(r *CreateRequest) { r.Email = "nope" },
		"missing motivations": func(r *CreateRequest) { r.Motivations = "" },
	}
	for name, mutate := range cases {
		req := validCreateRequest()
		mutate(&req)
		if _, err := svc.Create(context.Background(), req); !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("%s: expected ErrInvalidRequest, got %v", name, err)
		}
	}
}

func TestService_ListByAdRequiresID(t *testing.T) {
	svc := NewService(newFakeRepository())

	if _, err := svc.ListByAd(context.Background(), 0); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}
