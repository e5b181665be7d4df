package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/golangid/meetup/internal/modules/meeting/domain"
)

// MeetingRepository is a mock type for the MeetingRepository type
type MeetingRepository struct {
	mock.Mock
}

// AddVotes provides a mock function with given fields: ctx, meetingID, participantID, dateOptionIDs
func (_m *MeetingRepository) AddVotes(ctx context.Context, meetingID primitive.ObjectID, participantID primitive.ObjectID, dateOptionIDs []primitive.ObjectID) error {
	ret := _m.Called(ctx, meetingID, participantID, dateOptionIDs)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, primitive.ObjectID, primitive.ObjectID, []primitive.ObjectID) error); ok {
		r0 = rf(ctx, meetingID, participantID, dateOptionIDs)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Count provides a mock function with given fields: ctx, filter
func (_m *MeetingRepository) Count(ctx context.Context, filter *domain.FilterMeeting) int {
	ret := _m.Called(ctx, filter)

	var r0 int
	if rf, ok := ret.Get(0).(func(context.Context, *domain.FilterMeeting) int); ok {
		r0 = rf(ctx, filter)
	} else {
		r0 = ret.Get(0).(int)
	}

	return r0
}

// Create provides a mock function with given fields: ctx, data
func (_m *MeetingRepository) Create(ctx context.Context, data *domain.Meeting) error {
	ret := _m.Called(ctx, data)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Meeting) error); ok {
		r0 = rf(ctx, data)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MeetingRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	ret := _m.Called(ctx, id)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, primitive.ObjectID) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// FetchAll provides a mock function with given fields: ctx, filter
func (_m *MeetingRepository) FetchAll(ctx context.Context, filter *domain.FilterMeeting) ([]domain.Meeting, error) {
	ret := _m.Called(ctx, filter)

	var r0 []domain.Meeting
	if rf, ok := ret.Get(0).(func(context.Context, *domain.FilterMeeting) []domain.Meeting); ok {
		r0 = rf(ctx, filter)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.Meeting)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *domain.FilterMeeting) error); ok {
		r1 = rf(ctx, filter)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Find provides a mock function with given fields: ctx, id
func (_m *MeetingRepository) Find(ctx context.Context, id primitive.ObjectID) (domain.Meeting, error) {
	ret := _m.Called(ctx, id)

	var r0 domain.Meeting
	if rf, ok := ret.Get(0).(func(context.Context, primitive.ObjectID) domain.Meeting); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Get(0).(domain.Meeting)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, primitive.ObjectID) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FindPrimary provides a mock function with given fields: ctx, id
func (_m *MeetingRepository) FindPrimary(ctx context.Context, id primitive.ObjectID) (domain.Meeting, error) {
	ret := _m.Called(ctx, id)

	var r0 domain.Meeting
	if rf, ok := ret.Get(0).(func(context.Context, primitive.ObjectID) domain.Meeting); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Get(0).(domain.Meeting)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, primitive.ObjectID) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// InsertParticipant provides a mock function with given fields: ctx, meetingID, participant
func (_m *MeetingRepository) InsertParticipant(ctx context.Context, meetingID primitive.ObjectID, participant domain.Participant) (bool, error) {
	ret := _m.Called(ctx, meetingID, participant)

	var r0 bool
	if rf, ok := ret.Get(0).(func(context.Context, primitive.ObjectID, domain.Participant) bool); ok {
		r0 = rf(ctx, meetingID, participant)
	} else {
		r0 = ret.Get(0).(bool)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, primitive.ObjectID, domain.Participant) error); ok {
		r1 = rf(ctx, meetingID, participant)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// PullVotes provides a mock function with given fields: ctx, meetingID, participantID
func (_m *MeetingRepository) PullVotes(ctx context.Context, meetingID primitive.ObjectID, participantID primitive.ObjectID) error {
	ret := _m.Called(ctx, meetingID, participantID)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, primitive.ObjectID, primitive.ObjectID) error); ok {
		r0 = rf(ctx, meetingID, participantID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// UpdateFields provides a mock function with given fields: ctx, id, fields
func (_m *MeetingRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields domain.UpdateMeetingFields) error {
	ret := _m.Called(ctx, id, fields)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, primitive.ObjectID, domain.UpdateMeetingFields) error); ok {
		r0 = rf(ctx, id, fields)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
