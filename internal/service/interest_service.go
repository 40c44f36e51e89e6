package service

import (
	"context"
	"encoding/json"

	"viwahaa-be/internal/dto"
	"viwahaa-be/internal/entity"
	"viwahaa-be/internal/pkg/logger"
	"viwahaa-be/internal/repository/unitofwork"
	"viwahaa-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// InterestSubmittedPayload travels over the in-process message bus from the
// submission handler to the notification consumer.
type InterestSubmittedPayload struct {
	Kind         string `json:"kind"` // "enquiry" or "profile"
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	ContactNo    string `json:"contact_no"`
	Message      string `json:"message,omitempty"`
	MemId        string `json:"mem_id,omitempty"`
	ProfileName  string `json:"profile_name,omitempty"`
	ProfileMemId string `json:"profile_mem_id,omitempty"`
}

type IInterestService interface {
	SubmitInterest(ctx context.Context, req *dto.CreateInterestRequest) (*dto.InterestResponse, error)
	SubmitProfileInterest(ctx context.Context, req *dto.CreateProfileInterestRequest) (*dto.ProfileInterestResponse, error)
}

type interestService struct {
	uowFactory     unitofwork.RepositoryFactory
	publisher      message.Publisher
	topic          string
	eventPublisher events.Publisher
	logger         logger.ILogger
}

func NewInterestService(uowFactory unitofwork.RepositoryFactory, publisher message.Publisher, topic string, eventPublisher events.Publisher, log logger.ILogger) IInterestService {
	return &interestService{
		uowFactory:     uowFactory,
		publisher:      publisher,
		topic:          topic,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *interestService) SubmitInterest(ctx context.Context, req *dto.CreateInterestRequest) (*dto.InterestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	interest := &entity.Interest{
		Name:      req.Name,
		Email:     req.Email,
		ContactNo: req.ContactNo,
		Message:   req.Message,
	}
	if err := uow.InterestRepository().Create(ctx, interest); err != nil {
		return nil, err
	}

	s.publish(InterestSubmittedPayload{
		Kind:      "enquiry",
		Name:      interest.Name,
		Email:     interest.Email,
		ContactNo: interest.ContactNo,
		Message:   interest.Message,
	})
	publishAudit(ctx, s.eventPublisher, s.logger, "Interest", events.TypeInterestSubmitted, map[string]interface{}{
		"interest_id": interest.Id,
		"kind":        "enquiry",
		"name":        interest.Name,
	})

	return &dto.InterestResponse{
		Id:        interest.Id,
		Name:      interest.Name,
		Email:     interest.Email,
		ContactNo: interest.ContactNo,
		Message:   interest.Message,
		CreatedAt: interest.CreatedAt,
	}, nil
}

func (s *interestService) SubmitProfileInterest(ctx context.Context, req *dto.CreateProfileInterestRequest) (*dto.ProfileInterestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	interest := &entity.ProfileInterest{
		CustomerName: req.CustomerName,
		MemId:        req.MemId,
		ProfileName:  req.ProfileName,
		ProfileMemId: req.ProfileMemId,
		ContactNo:    req.ContactNo,
	}
	if err := uow.ProfileInterestRepository().Create(ctx, interest); err != nil {
		return nil, err
	}

	s.publish(InterestSubmittedPayload{
		Kind:         "profile",
		Name:         interest.CustomerName,
		ContactNo:    interest.ContactNo,
		MemId:        interest.MemId,
		ProfileName:  interest.ProfileName,
		ProfileMemId: interest.ProfileMemId,
	})
	publishAudit(ctx, s.eventPublisher, s.logger, "Interest", events.TypeInterestSubmitted, map[string]interface{}{
		"interest_id":    interest.Id,
		"kind":           "profile",
		"mem_id":         interest.MemId,
		"profile_mem_id": interest.ProfileMemId,
	})

	return &dto.ProfileInterestResponse{
		Id:           interest.Id,
		CustomerName: interest.CustomerName,
		MemId:        interest.MemId,
		ProfileName:  interest.ProfileName,
		ProfileMemId: interest.ProfileMemId,
		ContactNo:    interest.ContactNo,
		CreatedAt:    interest.CreatedAt,
	}, nil
}

// publish is fire-and-forget: the record is already stored, a lost
// notification only delays the back-office follow-up.
func (s *interestService) publish(payload InterestSubmittedPayload) {
	if s.publisher == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		s.logger.Warn("Interest", "Payload marshal failed", map[string]interface{}{"error": err.Error()})
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), data)
	if err := s.publisher.Publish(s.topic, msg); err != nil {
		s.logger.Warn("Interest", "Notification publish failed", map[string]interface{}{"error": err.Error()})
	}
}
