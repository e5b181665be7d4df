package usecase

import (
	"bytes"
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/golangid/meetup/candishared"
	"github.com/golangid/meetup/internal/modules/meeting/domain"
	"github.com/golangid/meetup/logger"
	mockinterfaces "github.com/golangid/meetup/mocks/codebase/interfaces"
	mockrepo "github.com/golangid/meetup/pkg/mocks/modules/meeting/repository"
	mockcredential "github.com/golangid/meetup/pkg/mocks/shared/credential"
)

var (
	errFoo      = errors.New("Something error")
	fixedNow    = time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	aliceID     = primitive.NewObjectID()
	dateOption1 = primitive.NewObjectID()
	dateOption2 = primitive.NewObjectID()
)

func newMeetingFixture() domain.Meeting {
	return domain.Meeting{
		ID:       primitive.NewObjectID(),
		Title:    "Team sync",
		Password: "owner-digest",
		Deadline: fixedNow.Add(-time.Hour),
		DateOptions: []domain.DateOption{
			{ID: dateOption1, Votes: []primitive.ObjectID{aliceID}},
			{ID: dateOption2, Votes: []primitive.ObjectID{}},
		},
		Participants: []domain.Participant{{ID: aliceID, Nickname: "alice", Password: "alice-digest"}},
	}
}

func newUsecase(repo *mockrepo.MeetingRepository, hasher *mockcredential.Hasher, limiter *mockinterfaces.Limiter, issuer *mockinterfaces.TokenIssuer) *meetingUsecaseImpl {
	uc := NewMeetingUsecase(repo, hasher, limiter, issuer).(*meetingUsecaseImpl)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func newOpenLimiter() *mockinterfaces.Limiter {
	limiter := &mockinterfaces.Limiter{}
	limiter.On("IsLimited", mock.Anything).Return(false)
	limiter.On("Hit", mock.Anything).Return(int64(1))
	limiter.On("Reset", mock.Anything).Return()
	return limiter
}

func TestNewMeetingUsecase(t *testing.T) {
	uc := NewMeetingUsecase(&mockrepo.MeetingRepository{}, &mockcredential.Hasher{}, nil, nil)
	assert.NotNil(t, uc.(*meetingUsecaseImpl).limiter)
}

func Test_meetingUsecaseImpl_CreateMeeting(t *testing.T) {
	validReq := func() *domain.RequestCreateMeeting {
		return &domain.RequestCreateMeeting{
			Title: "Team sync", Password: "pw", Deadline: "2030-01-01T00:00:00Z",
			DateOptions: []string{"2030-01-02T10:00:00Z"},
		}
	}

	tests := []struct {
		name                       string
		req                        *domain.RequestCreateMeeting
		wantHashErr, wantCreateErr error
		wantErr                    bool
	}{
		{name: "Testcase #1: Positive", req: validReq()},
		{name: "Testcase #2: Negative, hash error", req: validReq(), wantHashErr: errFoo, wantErr: true},
		{name: "Testcase #3: Negative, repo error", req: validReq(), wantCreateErr: errFoo, wantErr: true},
		{name: "Testcase #4: Negative, missing password", req: &domain.RequestCreateMeeting{Title: "x"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := &mockcredential.Hasher{}
			hasher.On("Hash", "pw").Return("digest", tt.wantHashErr)
			repo := &mockrepo.MeetingRepository{}
			repo.On("Create", mock.Anything, mock.MatchedBy(func(m *domain.Meeting) bool {
				return m.Password == "digest" && len(m.DateOptions) == 1
			})).Return(tt.wantCreateErr)

			uc := newUsecase(repo, hasher, newOpenLimiter(), nil)
			res, err := uc.CreateMeeting(context.Background(), tt.req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.True(t, primitive.IsValidObjectID(res.MeetingID))
		})
	}
}

func Test_meetingUsecaseImpl_GetDetailMeeting(t *testing.T) {
	meeting := newMeetingFixture()

	t.Run("Testcase #1: Positive, expired computed without touching deadline", func(t *testing.T) {
		repo := &mockrepo.MeetingRepository{}
		repo.On("Find", mock.Anything, meeting.ID).Return(meeting, nil)

		res, err := newUsecase(repo, nil, newOpenLimiter(), nil).GetDetailMeeting(context.Background(), meeting.ID.Hex())
		require.NoError(t, err)
		assert.True(t, res.IsExpired)
		assert.Equal(t, meeting.Deadline, res.Deadline)
		repo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Testcase #2: Negative, invalid id", func(t *testing.T) {
		_, err := newUsecase(&mockrepo.MeetingRepository{}, nil, newOpenLimiter(), nil).GetDetailMeeting(context.Background(), "xyz")
		assert.True(t, candishared.IsValidation(err))
	})

	t.Run("Testcase #3: Negative, not found", func(t *testing.T) {
		repo := &mockrepo.MeetingRepository{}
		repo.On("Find", mock.Anything, mock.Anything).Return(domain.Meeting{}, candishared.NewNotFoundError("meeting"))

		_, err := newUsecase(repo, nil, newOpenLimiter(), nil).GetDetailMeeting(context.Background(), meeting.ID.Hex())
		assert.True(t, candishared.IsNotFound(err))
	})
}

func Test_meetingUsecaseImpl_SearchMeeting(t *testing.T) {
	t.Run("Testcase #1: Positive", func(t *testing.T) {
		repo := &mockrepo.MeetingRepository{}
		repo.On("FetchAll", mock.Anything, mock.Anything).Return([]domain.Meeting{newMeetingFixture()}, nil)
		repo.On("Count", mock.Anything, mock.Anything).Return(1)

		filter := &domain.FilterMeeting{Title: "sync"}
		filter.Page, filter.Limit = 1, 10
		res, meta, err := newUsecase(repo, nil, newOpenLimiter(), nil).SearchMeeting(context.Background(), filter)
		require.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, 1, meta.TotalRecords)
		assert.Equal(t, 1, meta.TotalPages)
	})

	t.Run("Testcase #2: Negative, empty title", func(t *testing.T) {
		_, _, err := newUsecase(&mockrepo.MeetingRepository{}, nil, newOpenLimiter(), nil).SearchMeeting(context.Background(), &domain.FilterMeeting{})
		assert.True(t, candishared.IsValidation(err))
	})

	t.Run("Testcase #3: Negative, repo error", func(t *testing.T) {
		repo := &mockrepo.MeetingRepository{}
		repo.On("FetchAll", mock.Anything, mock.Anything).Return(nil, errFoo)

		_, _, err := newUsecase(repo, nil, newOpenLimiter(), nil).SearchMeeting(context.Background(), &domain.FilterMeeting{Title: "x"})
		assert.Equal(t, errFoo, err)
	})

	t.Run("Testcase #4: Negative, page out of range", func(t *testing.T) {
		repo := &mockrepo.MeetingRepository{}
		filter := &domain.FilterMeeting{Title: "sync"}
		filter.Page, filter.Limit = math.MaxInt, 100

		_, _, err := newUsecase(repo, nil, newOpenLimiter(), nil).SearchMeeting(context.Background(), filter)
		assert.True(t, candishared.IsValidation(err))
		repo.AssertNotCalled(t, "FetchAll", mock.Anything, mock.Anything)
	})
}

func Test_meetingUsecaseImpl_UpdateMeeting(t *testing.T) {
	meeting := newMeetingFixture()

	tests := []struct {
		name          string
		cred          domain.OwnerCredential
		req           domain.RequestUpdateMeeting
		verify        bool
		wantWrite     bool
		wantErrStatus int
	}{
		{
			name: "Testcase #1: Positive, password", cred: domain.OwnerCredential{Password: "pw"},
			req: domain.RequestUpdateMeeting{Title: "New title"}, verify: true, wantWrite: true,
		},
		{
			name: "Testcase #2: Positive, empty update is ack without write", cred: domain.OwnerCredential{Password: "pw"},
			verify: true,
		},
		{
			name: "Testcase #3: Positive, organizer token",
			cred: domain.OwnerCredential{TokenClaim: func() *candishared.TokenClaim {
				c := &candishared.TokenClaim{}
				c.Subject = meeting.ID.Hex()
				return c
			}()},
			req: domain.RequestUpdateMeeting{Description: "desc"}, wantWrite: true,
		},
		{
			name: "Testcase #4: Negative, missing credential", req: domain.RequestUpdateMeeting{Title: "x"},
			wantErrStatus: 401,
		},
		{
			name: "Testcase #5: Negative, wrong password", cred: domain.OwnerCredential{Password: "wrong"},
			req: domain.RequestUpdateMeeting{Title: "x"}, wantErrStatus: 403,
		},
		{
			name: "Testcase #6: Negative, token of other meeting",
			cred: domain.OwnerCredential{TokenClaim: &candishared.TokenClaim{}},
			req:  domain.RequestUpdateMeeting{Title: "x"}, wantErrStatus: 403,
		},
		{
			name: "Testcase #7: Negative, invalid deadline", cred: domain.OwnerCredential{Password: "pw"},
			req: domain.RequestUpdateMeeting{Deadline: "soon"}, wantErrStatus: 400,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockrepo.MeetingRepository{}
			repo.On("Find", mock.Anything, meeting.ID).Return(meeting, nil)
			repo.On("UpdateFields", mock.Anything, meeting.ID, mock.Anything).Return(nil)
			hasher := &mockcredential.Hasher{}
			hasher.On("Verify", mock.Anything, meeting.Password).Return(tt.verify)

			err := newUsecase(repo, hasher, newOpenLimiter(), nil).UpdateMeeting(context.Background(), meeting.ID.Hex(), tt.cred, &tt.req)
			if tt.wantErrStatus != 0 {
				assert.Equal(t, tt.wantErrStatus, candishared.HTTPStatusFromError(err))
				repo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
				return
			}
			assert.NoError(t, err)
			if tt.wantWrite {
				repo.AssertCalled(t, "UpdateFields", mock.Anything, meeting.ID, mock.Anything)
			} else {
				repo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func Test_meetingUsecaseImpl_DeleteMeeting(t *testing.T) {
	meeting := newMeetingFixture()

	t.Run("Testcase #1: Positive", func(t *testing.T) {
		repo := &mockrepo.MeetingRepository{}
		repo.On("Find", mock.Anything, meeting.ID).Return(meeting, nil)
		repo.On("Delete", mock.Anything, meeting.ID).Return(nil)
		hasher := &mockcredential.Hasher{}
		hasher.On("Verify", "pw", meeting.Password).Return(true)

		err := newUsecase(repo, hasher, newOpenLimiter(), nil).DeleteMeeting(context.Background(), meeting.ID.Hex(), domain.OwnerCredential{Password: "pw"})
		assert.NoError(t, err)
	})

	t.Run("Testcase #2: Negative, wrong password never delete", func(t *testing.T) {
		repo := &mockrepo.MeetingRepository{}
		repo.On("Find", mock.Anything, meeting.ID).Return(meeting, nil)
		hasher := &mockcredential.Hasher{}
		hasher.On("Verify", "bad", meeting.Password).Return(false)
		limiter := newOpenLimiter()

		err := newUsecase(repo, hasher, limiter, nil).DeleteMeeting(context.Background(), meeting.ID.Hex(), domain.OwnerCredential{Password: "bad"})
		assert.True(t, candishared.IsAuthFailed(err))
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		limiter.AssertCalled(t, "Hit", meeting.ID.Hex()+":owner")
	})

	t.Run("Testcase #3: Negative, not found", func(t *testing.T) {
		repo := &mockrepo.MeetingRepository{}
		repo.On("Find", mock.Anything, mock.Anything).Return(domain.Meeting{}, candishared.NewNotFoundError("meeting"))

		err := newUsecase(repo, nil, newOpenLimiter(), nil).DeleteMeeting(context.Background(), meeting.ID.Hex(), domain.OwnerCredential{Password: "pw"})
		assert.True(t, candishared.IsNotFound(err))
	})

	t.Run("Testcase #4: Negative, missing credential", func(t *testing.T) {
		err := newUsecase(&mockrepo.MeetingRepository{}, nil, newOpenLimiter(), nil).DeleteMeeting(context.Background(), meeting.ID.Hex(), domain.OwnerCredential{})
		assert.Equal(t, 401, candishared.HTTPStatusFromError(err))
	})
}

func Test_meetingUsecaseImpl_AuthenticateOwner(t *testing.T) {
	meeting := newMeetingFixture()

	t.Run("Testcase #1: Positive", func(t *testing.T) {
		repo := &mockrepo.MeetingRepository{}
		repo.On("Find", mock.Anything, meeting.ID).Return(meeting, nil)
		hasher := &mockcredential.Hasher{}
		hasher.On("Verify", "pw", meeting.Password).Return(true)
		issuer := &mockinterfaces.TokenIssuer{}
		issuer.On("Generate", mock.Anything, meeting.ID.Hex()).Return("token", nil)
		limiter := newOpenLimiter()

		res, err := newUsecase(repo, hasher, limiter, issuer).AuthenticateOwner(context.Background(), meeting.ID.Hex(), &domain.RequestOwnerAuth{Password: "pw"})
		require.NoError(t, err)
		assert.Equal(t, "token", res.Token)
		limiter.AssertCalled(t, "Reset", meeting.ID.Hex()+":owner")
	})

	t.Run("Testcase #2: Negative, too many attempt skip verify", func(t *testing.T) {
		repo := &mockrepo.MeetingRepository{}
		repo.On("Find", mock.Anything, meeting.ID).Return(meeting, nil)
		hasher := &mockcredential.Hasher{}
		limiter := &mockinterfaces.Limiter{}
		limiter.On("IsLimited", mock.Anything).Return(true)

		_, err := newUsecase(repo, hasher, limiter, nil).AuthenticateOwner(context.Background(), meeting.ID.Hex(), &domain.RequestOwnerAuth{Password: "pw"})
		assert.True(t, candishared.IsAuthFailed(err))
		hasher.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
	})

	t.Run("Testcase #3: Negative, empty password", func(t *testing.T) {
		_, err := newUsecase(&mockrepo.MeetingRepository{}, nil, newOpenLimiter(), nil).AuthenticateOwner(context.Background(), meeting.ID.Hex(), &domain.RequestOwnerAuth{})
		assert.Equal(t, 401, candishared.HTTPStatusFromError(err))
	})
}

func Test_meetingUsecaseImpl_JoinMeeting(t *testing.T) {
	meeting := newMeetingFixture()

	t.Run("Testcase #1: Positive", func(t *testing.T) {
		repo := &mockrepo.MeetingRepository{}
		repo.On("FindPrimary", mock.Anything, meeting.ID).Return(meeting, nil)
		repo.On("InsertParticipant", mock.Anything, meeting.ID, mock.Anything).Return(true, nil)
		hasher := &mockcredential.Hasher{}
		hasher.On("Hash", "pw").Return("digest", nil)

		res, err := newUsecase(repo, hasher, newOpenLimiter(), nil).JoinMeeting(context.Background(), meeting.ID.Hex(), &domain.RequestJoinMeeting{Nickname: "bob", Password: "pw"})
		require.NoError(t, err)
		assert.True(t, primitive.IsValidObjectID(res.ParticipantID))
	})

	t.Run("Testcase #2: Negative, nickname taken", func(t *testing.T) {
		repo := &mockrepo.MeetingRepository{}
		repo.On("FindPrimary", mock.Anything, meeting.ID).Return(meeting, nil)

		_, err := newUsecase(repo, nil, newOpenLimiter(), nil).JoinMeeting(context.Background(), meeting.ID.Hex(), &domain.RequestJoinMeeting{Nickname: "alice", Password: "pw"})
		assert.True(t, candishared.IsConflict(err))
	})

	t.Run("Testcase #3: Negative, lost insert race is conflict without authenticate", func(t *testing.T) {
		repo := &mockrepo.MeetingRepository{}
		repo.On("FindPrimary", mock.Anything, meeting.ID).Return(meeting, nil)
		repo.On("InsertParticipant", mock.Anything, meeting.ID, mock.Anything).Return(false, nil)
		hasher := &mockcredential.Hasher{}
		hasher.On("Hash", "pw").Return("digest", nil)

		_, err := newUsecase(repo, hasher, newOpenLimiter(), nil).JoinMeeting(context.Background(), meeting.ID.Hex(), &domain.RequestJoinMeeting{Nickname: "bob", Password: "pw"})
		assert.True(t, candishared.IsConflict(err))
		hasher.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
	})

	t.Run("Testcase #4: Negative, meeting deleted while joining", func(t *testing.T) {
		repo := &mockrepo.MeetingRepository{}
		repo.On("FindPrimary", mock.Anything, meeting.ID).Return(meeting, nil).Once()
		repo.On("FindPrimary", mock.Anything, meeting.ID).Return(domain.Meeting{}, candishared.NewNotFoundError("meeting"))
		repo.On("InsertParticipant", mock.Anything, meeting.ID, mock.Anything).Return(false, nil)
		hasher := &mockcredential.Hasher{}
		hasher.On("Hash", "pw").Return("digest", nil)

		_, err := newUsecase(repo, hasher, newOpenLimiter(), nil).JoinMeeting(context.Background(), meeting.ID.Hex(), &domain.RequestJoinMeeting{Nickname: "bob", Password: "pw"})
		assert.True(t, candishared.IsNotFound(err))
	})

	t.Run("Testcase #5: Negative, empty nickname", func(t *testing.T) {
		_, err := newUsecase(&mockrepo.MeetingRepository{}, nil, newOpenLimiter(), nil).JoinMeeting(context.Background(), meeting.ID.Hex(), &domain.RequestJoinMeeting{Password: "pw"})
		assert.True(t, candishared.IsValidation(err))
	})
}

func Test_meetingUsecaseImpl_ResolveParticipant(t *testing.T) {
	meeting := newMeetingFixture()
	winner := domain.Participant{ID: primitive.NewObjectID(), Nickname: "bob", Password: "bob-digest"}
	afterRace := newMeetingFixture()
	afterRace.ID = meeting.ID
	afterRace.Participants = append(afterRace.Participants, winner)

	tests := []struct {
		name          string
		nickname      string
		inserted      bool
		verify        bool
		wantID        primitive.ObjectID
		wantErrStatus int
	}{
		{name: "Testcase #1: Positive, authenticate existing", nickname: "alice", verify: true, wantID: aliceID},
		{name: "Testcase #2: Negative, existing with wrong secret", nickname: "alice", verify: false, wantErrStatus: 403},
		{name: "Testcase #3: Positive, register new", nickname: "carol", inserted: true},
		{name: "Testcase #4: Positive, lost race then authenticate", nickname: "bob", verify: true, wantID: winner.ID},
		{name: "Testcase #5: Negative, lost race with other secret", nickname: "bob", verify: false, wantErrStatus: 409},
	}
	t.Run("Testcase #6: Positive, lost race ignore stale replica read", func(t *testing.T) {
		repo := &mockrepo.MeetingRepository{}
		repo.On("Find", mock.Anything, meeting.ID).Return(meeting, nil)
		repo.On("FindPrimary", mock.Anything, meeting.ID).Return(meeting, nil).Once()
		repo.On("FindPrimary", mock.Anything, meeting.ID).Return(afterRace, nil)
		repo.On("InsertParticipant", mock.Anything, meeting.ID, mock.Anything).Return(false, nil)
		hasher := &mockcredential.Hasher{}
		hasher.On("Hash", "pw").Return("digest", nil)
		hasher.On("Verify", "pw", "bob-digest").Return(true)

		id, err := newUsecase(repo, hasher, newOpenLimiter(), nil).ResolveParticipant(context.Background(), meeting.ID, "bob", "pw")
		require.NoError(t, err)
		assert.Equal(t, winner.ID, id)
		repo.AssertNumberOfCalls(t, "FindPrimary", 2)
		repo.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockrepo.MeetingRepository{}
			repo.On("FindPrimary", mock.Anything, meeting.ID).Return(meeting, nil).Once()
			repo.On("FindPrimary", mock.Anything, meeting.ID).Return(afterRace, nil)
			repo.On("InsertParticipant", mock.Anything, meeting.ID, mock.Anything).Return(tt.inserted, nil)
			hasher := &mockcredential.Hasher{}
			hasher.On("Hash", "pw").Return("digest", nil)
			hasher.On("Verify", "pw", mock.Anything).Return(tt.verify)

			id, err := newUsecase(repo, hasher, newOpenLimiter(), nil).ResolveParticipant(context.Background(), meeting.ID, tt.nickname, "pw")
			if tt.wantErrStatus != 0 {
				assert.Equal(t, tt.wantErrStatus, candishared.HTTPStatusFromError(err))
				return
			}
			require.NoError(t, err)
			repo.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
			if tt.wantID.IsZero() {
				assert.False(t, id.IsZero())
				return
			}
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func Test_meetingUsecaseImpl_SetVotes(t *testing.T) {
	meetingID, participantID := primitive.NewObjectID(), primitive.NewObjectID()

	t.Run("Testcase #1: Positive, empty targets only pull", func(t *testing.T) {
		repo := &mockrepo.MeetingRepository{}
		repo.On("PullVotes", mock.Anything, meetingID, participantID).Return(nil)

		err := newUsecase(repo, nil, newOpenLimiter(), nil).SetVotes(context.Background(), meetingID, participantID, nil)
		assert.NoError(t, err)
		repo.AssertNotCalled(t, "AddVotes", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Testcase #2: Negative, meeting gone in second phase", func(t *testing.T) {
		repo := &mockrepo.MeetingRepository{}
		repo.On("PullVotes", mock.Anything, meetingID, participantID).Return(nil)
		repo.On("AddVotes", mock.Anything, meetingID, participantID, mock.Anything).Return(candishared.NewNotFoundError("meeting"))

		err := newUsecase(repo, nil, newOpenLimiter(), nil).SetVotes(context.Background(), meetingID, participantID, []primitive.ObjectID{dateOption1})
		assert.True(t, candishared.IsNotFound(err))
	})

	t.Run("Testcase #3: Negative, first phase error stop the call", func(t *testing.T) {
		repo := &mockrepo.MeetingRepository{}
		repo.On("PullVotes", mock.Anything, meetingID, participantID).Return(errFoo)

		err := newUsecase(repo, nil, newOpenLimiter(), nil).SetVotes(context.Background(), meetingID, participantID, []primitive.ObjectID{dateOption1})
		assert.Equal(t, errFoo, err)
		repo.AssertNotCalled(t, "AddVotes", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func Test_meetingUsecaseImpl_Vote(t *testing.T) {
	meeting := newMeetingFixture()

	t.Run("Testcase #1: Positive", func(t *testing.T) {
		repo := &mockrepo.MeetingRepository{}
		repo.On("FindPrimary", mock.Anything, meeting.ID).Return(meeting, nil)
		repo.On("PullVotes", mock.Anything, meeting.ID, aliceID).Return(nil)
		repo.On("AddVotes", mock.Anything, meeting.ID, aliceID, []primitive.ObjectID{dateOption2}).Return(nil)
		hasher := &mockcredential.Hasher{}
		hasher.On("Verify", "pw", "alice-digest").Return(true)

		err := newUsecase(repo, hasher, newOpenLimiter(), nil).Vote(context.Background(), meeting.ID.Hex(), &domain.RequestVote{
			Nickname: "alice", Password: "pw", DateOptionIDs: []string{dateOption2.Hex()},
		})
		assert.NoError(t, err)
	})

	t.Run("Testcase #2: Negative, wrong password mutate nothing", func(t *testing.T) {
		repo := &mockrepo.MeetingRepository{}
		repo.On("FindPrimary", mock.Anything, meeting.ID).Return(meeting, nil)
		hasher := &mockcredential.Hasher{}
		hasher.On("Verify", "bad", "alice-digest").Return(false)

		err := newUsecase(repo, hasher, newOpenLimiter(), nil).Vote(context.Background(), meeting.ID.Hex(), &domain.RequestVote{
			Nickname: "alice", Password: "bad", DateOptionIDs: []string{dateOption2.Hex()},
		})
		assert.True(t, candishared.IsAuthFailed(err))
		repo.AssertNotCalled(t, "PullVotes", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Testcase #3: Negative, malformed date option id", func(t *testing.T) {
		err := newUsecase(&mockrepo.MeetingRepository{}, nil, newOpenLimiter(), nil).Vote(context.Background(), meeting.ID.Hex(), &domain.RequestVote{
			Nickname: "alice", Password: "pw", DateOptionIDs: []string{"nope"},
		})
		assert.True(t, candishared.IsValidation(err))
	})
}

func Test_meetingUsecaseImpl_GetVoteTally(t *testing.T) {
	meeting := newMeetingFixture()
	repo := &mockrepo.MeetingRepository{}
	repo.On("Find", mock.Anything, meeting.ID).Return(meeting, nil)

	res, err := newUsecase(repo, nil, newOpenLimiter(), nil).GetVoteTally(context.Background(), meeting.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, domain.VoteTally{dateOption1.Hex(): 1, dateOption2.Hex(): 0}, res)
}

func Test_meetingUsecaseImpl_GetVoters(t *testing.T) {
	meeting := newMeetingFixture()
	dangling := primitive.NewObjectID()
	meeting.DateOptions[0].Votes = append(meeting.DateOptions[0].Votes, dangling)

	repo := &mockrepo.MeetingRepository{}
	repo.On("Find", mock.Anything, meeting.ID).Return(meeting, nil)
	uc := newUsecase(repo, nil, newOpenLimiter(), nil)

	t.Run("Testcase #1: Positive, dangling reference omitted", func(t *testing.T) {
		logOutput := new(bytes.Buffer)
		logger.InitZap(logger.OptionSetWriter(logOutput))
		defer logger.InitZap()

		res, err := uc.GetVoters(context.Background(), meeting.ID.Hex(), dateOption1.Hex())
		require.NoError(t, err)
		assert.Equal(t, []domain.Voter{{ParticipantID: aliceID.Hex(), Nickname: "alice"}}, res)

		assert.Contains(t, logOutput.String(), `"scope":"integrity_fault"`)
		assert.Contains(t, logOutput.String(), `"context":"MeetingUsecase:GetVoters"`)
		assert.Contains(t, logOutput.String(), `"level":"ERROR"`)
		assert.Contains(t, logOutput.String(), dangling.Hex())
	})

	t.Run("Testcase #2: Negative, unknown date option", func(t *testing.T) {
		_, err := uc.GetVoters(context.Background(), meeting.ID.Hex(), primitive.NewObjectID().Hex())
		assert.True(t, candishared.IsNotFound(err))
	})

	t.Run("Testcase #3: Negative, invalid date option id", func(t *testing.T) {
		_, err := uc.GetVoters(context.Background(), meeting.ID.Hex(), "zz")
		assert.True(t, candishared.IsValidation(err))
	})
}
