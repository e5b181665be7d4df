package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/golangid/meetup/candishared"
	"github.com/golangid/meetup/internal/modules/meeting/domain"
)

// MeetingUsecase is a mock type for the MeetingUsecase type
type MeetingUsecase struct {
	mock.Mock
}

// AuthenticateOwner provides a mock function with given fields: ctx, id, req
func (_m *MeetingUsecase) AuthenticateOwner(ctx context.Context, id string, req *domain.RequestOwnerAuth) (domain.ResponseOwnerAuth, error) {
	ret := _m.Called(ctx, id, req)

	var r0 domain.ResponseOwnerAuth
	if rf, ok := ret.Get(0).(func(context.Context, string, *domain.RequestOwnerAuth) domain.ResponseOwnerAuth); ok {
		r0 = rf(ctx, id, req)
	} else {
		r0 = ret.Get(0).(domain.ResponseOwnerAuth)
	}

	return r0, ret.Error(1)
}

// CreateMeeting provides a mock function with given fields: ctx, req
func (_m *MeetingUsecase) CreateMeeting(ctx context.Context, req *domain.RequestCreateMeeting) (domain.ResponseCreateMeeting, error) {
	ret := _m.Called(ctx, req)

	var r0 domain.ResponseCreateMeeting
	if rf, ok := ret.Get(0).(func(context.Context, *domain.RequestCreateMeeting) domain.ResponseCreateMeeting); ok {
		r0 = rf(ctx, req)
	} else {
		r0 = ret.Get(0).(domain.ResponseCreateMeeting)
	}

	return r0, ret.Error(1)
}

// DeleteMeeting provides a mock function with given fields: ctx, id, cred
func (_m *MeetingUsecase) DeleteMeeting(ctx context.Context, id string, cred domain.OwnerCredential) error {
	ret := _m.Called(ctx, id, cred)
	return ret.Error(0)
}

// GetDetailMeeting provides a mock function with given fields: ctx, id
func (_m *MeetingUsecase) GetDetailMeeting(ctx context.Context, id string) (domain.ResponseMeeting, error) {
	ret := _m.Called(ctx, id)

	var r0 domain.ResponseMeeting
	if rf, ok := ret.Get(0).(func(context.Context, string) domain.ResponseMeeting); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Get(0).(domain.ResponseMeeting)
	}

	return r0, ret.Error(1)
}

// GetVoteTally provides a mock function with given fields: ctx, id
func (_m *MeetingUsecase) GetVoteTally(ctx context.Context, id string) (domain.VoteTally, error) {
	ret := _m.Called(ctx, id)

	var r0 domain.VoteTally
	if rf, ok := ret.Get(0).(func(context.Context, string) domain.VoteTally); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(domain.VoteTally)
	}

	return r0, ret.Error(1)
}

// GetVoters provides a mock function with given fields: ctx, id, dateOptionID
func (_m *MeetingUsecase) GetVoters(ctx context.Context, id string, dateOptionID string) ([]domain.Voter, error) {
	ret := _m.Called(ctx, id, dateOptionID)

	var r0 []domain.Voter
	if rf, ok := ret.Get(0).(func(context.Context, string, string) []domain.Voter); ok {
		r0 = rf(ctx, id, dateOptionID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Voter)
	}

	return r0, ret.Error(1)
}

// JoinMeeting provides a mock function with given fields: ctx, id, req
func (_m *MeetingUsecase) JoinMeeting(ctx context.Context, id string, req *domain.RequestJoinMeeting) (domain.ResponseJoinMeeting, error) {
	ret := _m.Called(ctx, id, req)

	var r0 domain.ResponseJoinMeeting
	if rf, ok := ret.Get(0).(func(context.Context, string, *domain.RequestJoinMeeting) domain.ResponseJoinMeeting); ok {
		r0 = rf(ctx, id, req)
	} else {
		r0 = ret.Get(0).(domain.ResponseJoinMeeting)
	}

	return r0, ret.Error(1)
}

// ResolveParticipant provides a mock function with given fields: ctx, meetingID, nickname, secret
func (_m *MeetingUsecase) ResolveParticipant(ctx context.Context, meetingID primitive.ObjectID, nickname string, secret string) (primitive.ObjectID, error) {
	ret := _m.Called(ctx, meetingID, nickname, secret)

	var r0 primitive.ObjectID
	if rf, ok := ret.Get(0).(func(context.Context, primitive.ObjectID, string, string) primitive.ObjectID); ok {
		r0 = rf(ctx, meetingID, nickname, secret)
	} else {
		r0 = ret.Get(0).(primitive.ObjectID)
	}

	return r0, ret.Error(1)
}

// SearchMeeting provides a mock function with given fields: ctx, filter
func (_m *MeetingUsecase) SearchMeeting(ctx context.Context, filter *domain.FilterMeeting) ([]domain.ResponseMeeting, candishared.Meta, error) {
	ret := _m.Called(ctx, filter)

	var r0 []domain.ResponseMeeting
	if rf, ok := ret.Get(0).(func(context.Context, *domain.FilterMeeting) []domain.ResponseMeeting); ok {
		r0 = rf(ctx, filter)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.ResponseMeeting)
	}

	var r1 candishared.Meta
	if rf, ok := ret.Get(1).(func(context.Context, *domain.FilterMeeting) candishared.Meta); ok {
		r1 = rf(ctx, filter)
	} else {
		r1 = ret.Get(1).(candishared.Meta)
	}

	return r0, r1, ret.Error(2)
}

// SetVotes provides a mock function with given fields: ctx, meetingID, participantID, targets
func (_m *MeetingUsecase) SetVotes(ctx context.Context, meetingID primitive.ObjectID, participantID primitive.ObjectID, targets []primitive.ObjectID) error {
	ret := _m.Called(ctx, meetingID, participantID, targets)
	return ret.Error(0)
}

// UpdateMeeting provides a mock function with given fields: ctx, id, cred, req
func (_m *MeetingUsecase) UpdateMeeting(ctx context.Context, id string, cred domain.OwnerCredential, req *domain.RequestUpdateMeeting) error {
	ret := _m.Called(ctx, id, cred, req)
	return ret.Error(0)
}

// Vote provides a mock function with given fields: ctx, id, req
func (_m *MeetingUsecase) Vote(ctx context.Context, id string, req *domain.RequestVote) error {
	ret := _m.Called(ctx, id, req)
	return ret.Error(0)
}
