package service

import (
	"context"
	"log"

	"github.com/doggyworld/backend/internal/client"
	"github.com/doggyworld/backend/internal/db"
	"github.com/doggyworld/backend/internal/model"
	"github.com/doggyworld/backend/internal/template"
)

type adoptionRepo interface {
	CreateAdoptionRequest(ctx context.Context, req model.CreateAdoptionRequest) (*model.AdoptionRequest, error)
	ListAdoptionRequests(ctx context.Context) ([]model.AdoptionRequest, error)
	GetAdoptionRequestByID(ctx context.Context, id string) (*model.AdoptionRequest, error)
	UpdateAdoptionStatus(ctx context.Context, id string, status model.AdoptionStatus) (*model.AdoptionRequest, error)
	DeleteAdoptionRequest(ctx context.Context, id string) (*model.AdoptionRequest, error)
}

// AdoptionService owns the request lifecycle. Creation persists first and
// treats the operator alert as best-effort: a failed send is retried once,
// then logged, and never fails the already-durable request.
type AdoptionService struct {
	repo    adoptionRepo
	mailer  client.Mailer
	alertTo string
}

func NewAdoptionService(repo adoptionRepo, mailer client.Mailer, alertTo string) *AdoptionService {
	return &AdoptionService{
		repo:    repo,
		mailer:  mailer,
		alertTo: alertTo,
	}
}

func (s *AdoptionService) Create(ctx context.Context, req model.CreateAdoptionRequest) (*model.AdoptionRequest, error) {
	if req.ProductID == "" || req.ProductName == "" || req.UserEmail == "" {
		return nil, ErrMissingField
	}

	adoption, err := s.repo.CreateAdoptionRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	s.notifyOperator(ctx, adoption)
	return adoption, nil
}

func (s *AdoptionService) List(ctx context.Context) ([]model.AdoptionRequest, error) {
	return s.repo.ListAdoptionRequests(ctx)
}

// UpdateStatus sets the request status. A nil status keeps the current one;
// anything outside the closed set is rejected.
func (s *AdoptionService) UpdateStatus(ctx context.Context, id string, status *model.AdoptionStatus) (*model.AdoptionRequest, error) {
	if status == nil {
		adoption, err := s.repo.GetAdoptionRequestByID(ctx, id)
		if err != nil {
			if db.IsNoRows(err) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		return adoption, nil
	}

	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	adoption, err := s.repo.UpdateAdoptionStatus(ctx, id, *status)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return adoption, nil
}

func (s *AdoptionService) Delete(ctx context.Context, id string) (*model.AdoptionRequest, error) {
	adoption, err := s.repo.DeleteAdoptionRequest(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return adoption, nil
}

func (s *AdoptionService) notifyOperator(ctx context.Context, adoption *model.AdoptionRequest) {
	if s.alertTo == "" {
		return
	}

	body, err := template.RenderAdoptionAlert(template.AdoptionAlertData{
		ProductName: adoption.ProductName,
		UserName:    adoption.UserName,
		UserEmail:   adoption.UserEmail,
		UserContact: adoption.UserContact,
		Message:     adoption.Message,
	})
	if err != nil {
		log.Printf("[AdoptionAlert] Failed to render alert body (id=%s): %v", adoption.ID, err)
		return
	}

	subject := template.AdoptionAlertSubject + adoption.ProductName

	for attempt := 1; attempt <= 2; attempt++ {
		sendCtx, cancel := context.WithTimeout(ctx, mailTimeout)
		_, err = s.mailer.Send(sendCtx, s.alertTo, subject, body)
		cancel()
		if err == nil {
			return
		}
		log.Printf("[AdoptionAlert] Delivery attempt %d failed (id=%s): %v", attempt, adoption.ID, err)
	}
	log.Printf("[AdoptionAlert] Giving up on alert for request %s; record is persisted", adoption.ID)
}
