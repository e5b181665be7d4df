package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/golangid/meetup/candishared"
)

func TestRequestCreateMeeting_Deserialize(t *testing.T) {
	tests := []struct {
		name    string
		req     RequestCreateMeeting
		wantErr bool
	}{
		{
			name: "Testcase #1: Positive",
			req: RequestCreateMeeting{
				Title: "Sync", Password: "pw", Deadline: "2030-01-01T00:00:00Z",
				DateOptions: []string{"2030-01-02T10:00:00Z", "2030-01-03"},
			},
		},
		{
			name: "Testcase #2: Negative, unparsable date option",
			req: RequestCreateMeeting{
				Title: "Sync", Password: "pw", Deadline: "2030-01-01T00:00:00Z", DateOptions: []string{"tomorrow"},
			},
			wantErr: true,
		},
		{
			name:    "Testcase #3: Negative, empty date options",
			req:     RequestCreateMeeting{Title: "Sync", Password: "pw", Deadline: "2030-01-01T00:00:00Z"},
			wantErr: true,
		},
		{
			name: "Testcase #4: Negative, missing deadline",
			req: RequestCreateMeeting{
				Title: "Sync", Password: "pw", DateOptions: []string{"2030-01-02T10:00:00Z"},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.req.Deserialize()
			if tt.wantErr {
				assert.True(t, candishared.IsValidation(err))
				return
			}

			require.NoError(t, err)
			assert.False(t, res.ID.IsZero())
			assert.NotNil(t, res.Participants)
			assert.Len(t, res.DateOptions, len(tt.req.DateOptions))
			seen := map[primitive.ObjectID]bool{}
			for _, opt := range res.DateOptions {
				assert.False(t, opt.ID.IsZero())
				assert.False(t, seen[opt.ID])
				seen[opt.ID] = true
				assert.NotNil(t, opt.Votes)
				assert.Empty(t, opt.Votes)
			}
		})
	}
}

func TestRequestUpdateMeeting_Deserialize(t *testing.T) {
	fields, err := (&RequestUpdateMeeting{Password: "pw", Title: "New"}).Deserialize()
	require.NoError(t, err)
	assert.Equal(t, "New", *fields.Title)
	assert.Nil(t, fields.Description)
	assert.Nil(t, fields.Deadline)
	assert.False(t, fields.IsEmpty())

	fields, err = (&RequestUpdateMeeting{Password: "pw"}).Deserialize()
	require.NoError(t, err)
	assert.True(t, fields.IsEmpty())

	_, err = (&RequestUpdateMeeting{Deadline: "someday"}).Deserialize()
	assert.True(t, candishared.IsValidation(err))
}

func TestRequestVote_ParseDateOptionIDs(t *testing.T) {
	id := primitive.NewObjectID()
	ids, err := (&RequestVote{DateOptionIDs: []string{id.Hex()}}).ParseDateOptionIDs()
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{id}, ids)

	ids, err = (&RequestVote{DateOptionIDs: []string{}}).ParseDateOptionIDs()
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = (&RequestVote{DateOptionIDs: []string{"zzz"}}).ParseDateOptionIDs()
	assert.True(t, candishared.IsValidation(err))
}

func TestMeeting(t *testing.T) {
	deadline := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	participant := Participant{ID: primitive.NewObjectID(), Nickname: "alice", Password: "digest-participant"}
	option := DateOption{ID: primitive.NewObjectID(), Votes: []primitive.ObjectID{participant.ID}}
	meeting := Meeting{
		ID: primitive.NewObjectID(), Title: "Sync", Password: "digest-owner", Deadline: deadline,
		DateOptions: []DateOption{option}, Participants: []Participant{participant},
	}

	t.Run("Testcase #1: Positive, expired computed at read time", func(t *testing.T) {
		assert.True(t, meeting.IsExpired(deadline.Add(time.Second)))
		assert.False(t, meeting.IsExpired(deadline))
		assert.Equal(t, deadline, meeting.Deadline)
	})

	t.Run("Testcase #2: Positive, lookup", func(t *testing.T) {
		p, ok := meeting.FindParticipantByNickname("alice")
		assert.True(t, ok)
		assert.Equal(t, participant.ID, p.ID)
		_, ok = meeting.FindParticipantByNickname("Alice")
		assert.False(t, ok)
		_, ok = meeting.FindParticipantByID(primitive.NewObjectID())
		assert.False(t, ok)
		_, ok = meeting.FindDateOption(option.ID)
		assert.True(t, ok)
	})

	t.Run("Testcase #3: Positive, response never carry digest", func(t *testing.T) {
		var res ResponseMeeting
		res.Serialize(&meeting, deadline.Add(time.Hour))
		assert.True(t, res.IsExpired)
		assert.Equal(t, []string{participant.ID.Hex()}, res.DateOptions[0].Votes)

		raw, err := json.Marshal(res)
		require.NoError(t, err)
		assert.NotContains(t, string(raw), "digest")
		assert.NotContains(t, string(raw), "password")
	})
}

func TestRequestCreateMeeting_UnmarshalJSON(t *testing.T) {
	var req RequestCreateMeeting
	err := json.Unmarshal([]byte(`{"title":"Sync","password":"pw","deadline":1893456000000,"dateOptions":["2030-01-02",1893542400000]}`), &req)
	assert.NoError(t, err)
	assert.Equal(t, "Sync", req.Title)
	assert.Equal(t, "1893456000000", req.Deadline)
	assert.Equal(t, []string{"2030-01-02", "1893542400000"}, req.DateOptions)

	res, err := req.Deserialize()
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), res.Deadline)

	err = json.Unmarshal([]byte(`{"deadline":true}`), &req)
	assert.Error(t, err)
}

func TestRequestUpdateMeeting_UnmarshalJSON(t *testing.T) {
	var req RequestUpdateMeeting
	assert.NoError(t, json.Unmarshal([]byte(`{"title":"Retro","deadline":1893456000000}`), &req))
	assert.Equal(t, "Retro", req.Title)
	assert.Equal(t, "1893456000000", req.Deadline)

	req = RequestUpdateMeeting{}
	assert.NoError(t, json.Unmarshal([]byte(`{"description":"x"}`), &req))
	assert.Empty(t, req.Deadline)
}
