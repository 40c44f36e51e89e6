package service

import (
	"context"
	"testing"

	"viwahaa-be/internal/dto"
	"viwahaa-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitInterestStoresAndPublishesAudit(t *testing.T) {
	repo := &stubInterestRepo{}
	pub := &recordingPublisher{}
	svc := NewInterestService(&stubFactory{uow: &stubUnitOfWork{interests: repo}}, nil, "interest.submitted", pub, noopLogger{})

	resp, err := svc.SubmitInterest(context.Background(), &dto.CreateInterestRequest{
		Name:      "Arun",
		Email:     "arun@example.com",
		ContactNo: "9876543210",
		Message:   "Looking for details",
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, repo.created[0].Id, resp.Id)

	require.Len(t, pub.published, 1)
	assert.Equal(t, events.TypeInterestSubmitted, pub.published[0].Type)
	assert.Equal(t, "enquiry", pub.published[0].Data["kind"])
}

func TestSubmitProfileInterestPublishesAudit(t *testing.T) {
	pub := &recordingPublisher{}
	svc := NewInterestService(&stubFactory{uow: &stubUnitOfWork{profileInterests: &stubProfileInterestRepo{}}}, nil, "interest.submitted", pub, noopLogger{})

	_, err := svc.SubmitProfileInterest(context.Background(), &dto.CreateProfileInterestRequest{
		CustomerName: "Nithya",
		MemId:        "SM-0002",
		ProfileName:  "Arun",
		ProfileMemId: "SM-0001",
		ContactNo:    "9876543210",
	})
	require.NoError(t, err)

	require.Len(t, pub.published, 1)
	assert.Equal(t, events.TypeInterestSubmitted, pub.published[0].Type)
	assert.Equal(t, "profile", pub.published[0].Data["kind"])
	assert.Equal(t, "SM-0001", pub.published[0].Data["profile_mem_id"])
}
