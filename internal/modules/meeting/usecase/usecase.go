package usecase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/golangid/meetup/candishared"
	"github.com/golangid/meetup/candiutils"
	"github.com/golangid/meetup/codebase/interfaces"
	"github.com/golangid/meetup/internal/modules/meeting/domain"
	"github.com/golangid/meetup/internal/modules/meeting/repository"
	"github.com/golangid/meetup/pkg/shared/credential"
)

// MeetingUsecase abstraction
type MeetingUsecase interface {
	CreateMeeting(ctx context.Context, req *domain.RequestCreateMeeting) (domain.ResponseCreateMeeting, error)
	GetDetailMeeting(ctx context.Context, id string) (domain.ResponseMeeting, error)
	SearchMeeting(ctx context.Context, filter *domain.FilterMeeting) ([]domain.ResponseMeeting, candishared.Meta, error)
	UpdateMeeting(ctx context.Context, id string, cred domain.OwnerCredential, req *domain.RequestUpdateMeeting) error
	DeleteMeeting(ctx context.Context, id string, cred domain.OwnerCredential) error
	AuthenticateOwner(ctx context.Context, id string, req *domain.RequestOwnerAuth) (domain.ResponseOwnerAuth, error)

	JoinMeeting(ctx context.Context, id string, req *domain.RequestJoinMeeting) (domain.ResponseJoinMeeting, error)
	ResolveParticipant(ctx context.Context, meetingID primitive.ObjectID, nickname, secret string) (primitive.ObjectID, error)

	Vote(ctx context.Context, id string, req *domain.RequestVote) error
	SetVotes(ctx context.Context, meetingID, participantID primitive.ObjectID, targets []primitive.ObjectID) error
	GetVoteTally(ctx context.Context, id string) (domain.VoteTally, error)
	GetVoters(ctx context.Context, id, dateOptionID string) ([]domain.Voter, error)
}

type meetingUsecaseImpl struct {
	repo        repository.MeetingRepository
	hasher      credential.Hasher
	limiter     interfaces.Limiter
	tokenIssuer interfaces.TokenIssuer
	now         func() time.Time
}

// NewMeetingUsecase usecase impl constructor, nil limiter means no attempt limit
func NewMeetingUsecase(repo repository.MeetingRepository, hasher credential.Hasher, limiter interfaces.Limiter, tokenIssuer interfaces.TokenIssuer) MeetingUsecase {
	if limiter == nil {
		limiter = candiutils.NoopLimiter{}
	}
	return &meetingUsecaseImpl{
		repo:        repo,
		hasher:      hasher,
		limiter:     limiter,
		tokenIssuer: tokenIssuer,
		now:         time.Now,
	}
}

func parseObjectID(field, hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return id, candishared.NewValidationError("invalid " + field + " format")
	}
	return id, nil
}

func ownerAttemptKey(meetingID primitive.ObjectID) string {
	return meetingID.Hex() + ":owner"
}

func participantAttemptKey(meetingID primitive.ObjectID, nickname string) string {
	return meetingID.Hex() + ":" + nickname
}

// verifySecret compare secret with digest, failed attempt counted per key
func (uc *meetingUsecaseImpl) verifySecret(key, secret, digest string) error {
	if uc.limiter.IsLimited(key) {
		return candishared.NewAuthFailedError("too many failed attempt, try again later")
	}
	if !uc.hasher.Verify(secret, digest) {
		uc.limiter.Hit(key)
		return candishared.NewAuthFailedError("password does not match")
	}
	uc.limiter.Reset(key)
	return nil
}
