package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/doggyworld/backend/internal/client"
	"github.com/doggyworld/backend/internal/model"
)

type fakeAdoptionRepo struct {
	requests []model.AdoptionRequest
	nextID   int
}

func (f *fakeAdoptionRepo) CreateAdoptionRequest(ctx context.Context, req model.CreateAdoptionRequest) (*model.AdoptionRequest, error) {
	f.nextID++
	adoption := model.AdoptionRequest{
		ID:          fmt.Sprintf("req-%d", f.nextID),
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		UserEmail:   req.UserEmail,
		UserName:    req.UserName,
		UserContact: req.UserContact,
		Message:     req.Message,
		Status:      model.StatusPending,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	f.requests = append(f.requests, adoption)
	return &adoption, nil
}

func (f *fakeAdoptionRepo) ListAdoptionRequests(ctx context.Context) ([]model.AdoptionRequest, error) {
	out := make([]model.AdoptionRequest, len(f.requests))
	copy(out, f.requests)
	return out, nil
}

func (f *fakeAdoptionRepo) GetAdoptionRequestByID(ctx context.Context, id string) (*model.AdoptionRequest, error) {
	for i := range f.requests {
		if f.requests[i].ID == id {
			req := f.requests[i]
			return &req, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeAdoptionRepo) UpdateAdoptionStatus(ctx context.Context, id string, status model.AdoptionStatus) (*model.AdoptionRequest, error) {
	for i := range f.requests {
		if f.requests[i].ID == id {
			f.requests[i].Status = status
			f.requests[i].UpdatedAt = time.Now()
			req := f.requests[i]
			return &req, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeAdoptionRepo) DeleteAdoptionRequest(ctx context.Context, id string) (*model.AdoptionRequest, error) {
	for i := range f.requests {
		if f.requests[i].ID == id {
			req := f.requests[i]
			f.requests = append(f.requests[:i], f.requests[i+1:]...)
			return &req, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type countingMailer struct {
	calls int
	fail  bool
}

func (m *countingMailer) Send(ctx context.Context, to, subject, htmlBody string) (*client.Delivery, error) {
	m.calls++
	if m.fail {
		return nil, errors.New("transport down")
	}
	return &client.Delivery{MessageID: "m1"}, nil
}

func validCreateRequest() model.CreateAdoptionRequest {
	return model.CreateAdoptionRequest{
		ProductID:   "pet-1",
		ProductName: "Rex",
		UserEmail:   "adopter@example.com",
		UserName:    "Sam",
	}
}

func TestAdoptionCreateMissingFields(t *testing.T) {
	repo := &fakeAdoptionRepo{}
	svc := NewAdoptionService(repo, &countingMailer{}, "ops@example.com")

	tests := []struct {
		name string
		req  model.CreateAdoptionRequest
	}{
		{"no-email", model.CreateAdoptionRequest{ProductID: "pet-1", ProductName: "Rex"}},
		{"no-product-id", model.CreateAdoptionRequest{ProductName: "Rex", UserEmail: "a@b.com"}},
		{"no-product-name", model.CreateAdoptionRequest{ProductID: "pet-1", UserEmail: "a@b.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), tt.req); !errors.Is(err, ErrMissingField) {
				t.Fatalf("err = %v, want ErrMissingField", err)
			}
			if len(repo.requests) != 0 {
				t.Fatalf("record persisted: %d", len(repo.requests))
			}
		})
	}
}

func TestAdoptionCreateNotifiesOperator(t *testing.T) {
	repo := &fakeAdoptionRepo{}
	mailer := &countingMailer{}
	svc := NewAdoptionService(repo, mailer, "ops@example.com")

	adoption, err := svc.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if adoption.Status != model.StatusPending {
		t.Fatalf("status = %q, want Pending", adoption.Status)
	}
	if mailer.calls != 1 {
		t.Fatalf("mailer calls = %d, want 1", mailer.calls)
	}
}

func TestAdoptionCreateSurvivesMailFailure(t *testing.T) {
	repo := &fakeAdoptionRepo{}
	mailer := &countingMailer{fail: true}
	svc := NewAdoptionService(repo, mailer, "ops@example.com")

	adoption, err := svc.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("Create must not fail on delivery error: %v", err)
	}
	if len(repo.requests) != 1 {
		t.Fatalf("records = %d, want 1", len(repo.requests))
	}
	if adoption.ID == "" {
		t.Fatal("missing id")
	}
	// one attempt plus one retry
	if mailer.calls != 2 {
		t.Fatalf("mailer calls = %d, want 2", mailer.calls)
	}
}

func TestAdoptionUpdateStatus(t *testing.T) {
	repo := &fakeAdoptionRepo{}
	svc := NewAdoptionService(repo, &countingMailer{}, "ops@example.com")

	created, err := svc.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	approved := model.StatusApproved
	updated, err := svc.UpdateStatus(context.Background(), created.ID, &approved)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != model.StatusApproved {
		t.Fatalf("status = %q, want Approved", updated.Status)
	}

	// transitions are unguarded; back to Pending is allowed
	pending := model.StatusPending
	if _, err := svc.UpdateStatus(context.Background(), created.ID, &pending); err != nil {
		t.Fatalf("UpdateStatus back to Pending: %v", err)
	}
}

func TestAdoptionUpdateStatusRejectsUnknownValue(t *testing.T) {
	repo := &fakeAdoptionRepo{}
	svc := NewAdoptionService(repo, &countingMailer{}, "ops@example.com")

	created, err := svc.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	whatever := model.AdoptionStatus("Whatever")
	if _, err := svc.UpdateStatus(context.Background(), created.ID, &whatever); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("err = %v, want ErrInvalidStatus", err)
	}
	if repo.requests[0].Status != model.StatusPending {
		t.Fatalf("status mutated to %q", repo.requests[0].Status)
	}
}

func TestAdoptionUpdateStatusAbsentKeepsCurrent(t *testing.T) {
	repo := &fakeAdoptionRepo{}
	svc := NewAdoptionService(repo, &countingMailer{}, "ops@example.com")

	created, err := svc.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), created.ID, nil)
	if err != nil {
		t.Fatalf("UpdateStatus(nil): %v", err)
	}
	if updated.Status != model.StatusPending {
		t.Fatalf("status = %q, want unchanged Pending", updated.Status)
	}
}

func TestAdoptionUpdateStatusNotFound(t *testing.T) {
	svc := NewAdoptionService(&fakeAdoptionRepo{}, &countingMailer{}, "ops@example.com")

	approved := model.StatusApproved
	if _, err := svc.UpdateStatus(context.Background(), "missing", &approved); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), "missing", nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("nil status: err = %v, want ErrNotFound", err)
	}
}

func TestAdoptionDelete(t *testing.T) {
	repo := &fakeAdoptionRepo{}
	svc := NewAdoptionService(repo, &countingMailer{}, "ops@example.com")

	created, err := svc.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	deleted, err := svc.Delete(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted.ID != created.ID {
		t.Fatalf("snapshot id = %q, want %q", deleted.ID, created.ID)
	}
	if len(repo.requests) != 0 {
		t.Fatalf("records = %d, want 0", len(repo.requests))
	}

	if _, err := svc.Delete(context.Background(), created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: err = %v, want ErrNotFound", err)
	}
}
