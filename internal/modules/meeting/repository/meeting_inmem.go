package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/golangid/meetup/candishared"
	"github.com/golangid/meetup/internal/modules/meeting/domain"
	"github.com/golangid/meetup/tracer"
)

// meetingRepoInMem same document semantic with mongo repo, every method hold the lock for one whole operation
type meetingRepoInMem struct {
	mu       sync.RWMutex
	meetings map[primitive.ObjectID]*domain.Meeting
}

// NewMeetingRepoInMem in memory repo constructor, for local run without database and concurrency test
func NewMeetingRepoInMem() MeetingRepository {
	return &meetingRepoInMem{meetings: make(map[primitive.ObjectID]*domain.Meeting)}
}

func (r *meetingRepoInMem) Create(ctx context.Context, data *domain.Meeting) error {
	trace := tracer.StartTrace(ctx, "MeetingRepoInMem:Create")
	defer trace.Finish()

	r.mu.Lock()
	defer r.mu.Unlock()

	if data.ID.IsZero() {
		data.ID = primitive.NewObjectID()
	}
	data.CreatedAt = time.Now().UTC()
	stored := copyMeeting(data)
	r.meetings[data.ID] = &stored
	return nil
}

func (r *meetingRepoInMem) Find(ctx context.Context, id primitive.ObjectID) (domain.Meeting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.meetings[id]
	if !ok {
		return domain.Meeting{}, candishared.NewNotFoundError(meetingResource)
	}
	return copyMeeting(m), nil
}

// FindPrimary single node store, same as Find
func (r *meetingRepoInMem) FindPrimary(ctx context.Context, id primitive.ObjectID) (domain.Meeting, error) {
	return r.Find(ctx, id)
}

func (r *meetingRepoInMem) UpdateFields(ctx context.Context, id primitive.ObjectID, fields domain.UpdateMeetingFields) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.meetings[id]
	if !ok {
		return candishared.NewNotFoundError(meetingResource)
	}
	if fields.Title != nil {
		m.Title = *fields.Title
	}
	if fields.Description != nil {
		m.Description = *fields.Description
	}
	if fields.Deadline != nil {
		m.Deadline = *fields.Deadline
	}
	return nil
}

func (r *meetingRepoInMem) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.meetings[id]; !ok {
		return candishared.NewNotFoundError(meetingResource)
	}
	delete(r.meetings, id)
	return nil
}

func (r *meetingRepoInMem) FetchAll(ctx context.Context, filter *domain.FilterMeeting) ([]domain.Meeting, error) {
	matches := r.search(filter)
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})

	filter.CalculateOffset()
	if filter.Offset >= len(matches) {
		return []domain.Meeting{}, nil
	}
	end := filter.Offset + filter.Limit
	if end > len(matches) {
		end = len(matches)
	}
	return matches[filter.Offset:end], nil
}

func (r *meetingRepoInMem) Count(ctx context.Context, filter *domain.FilterMeeting) int {
	return len(r.search(filter))
}

func (r *meetingRepoInMem) InsertParticipant(ctx context.Context, meetingID primitive.ObjectID, participant domain.Participant) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.meetings[meetingID]
	if !ok {
		return false, nil
	}
	if _, taken := m.FindParticipantByNickname(participant.Nickname); taken {
		return false, nil
	}
	m.Participants = append(m.Participants, participant)
	return true, nil
}

func (r *meetingRepoInMem) PullVotes(ctx context.Context, meetingID, participantID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.meetings[meetingID]
	if !ok {
		return nil
	}
	for i := range m.DateOptions {
		votes := m.DateOptions[i].Votes[:0]
		for _, v := range m.DateOptions[i].Votes {
			if v != participantID {
				votes = append(votes, v)
			}
		}
		m.DateOptions[i].Votes = votes
	}
	return nil
}

func (r *meetingRepoInMem) AddVotes(ctx context.Context, meetingID, participantID primitive.ObjectID, dateOptionIDs []primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.meetings[meetingID]
	if !ok {
		return candishared.NewNotFoundError(meetingResource)
	}

	targets := make(map[primitive.ObjectID]struct{}, len(dateOptionIDs))
	for _, id := range dateOptionIDs {
		targets[id] = struct{}{}
	}
	matched := false
	for i := range m.DateOptions {
		if _, ok := targets[m.DateOptions[i].ID]; !ok {
			continue
		}
		matched = true
		if !containsObjectID(m.DateOptions[i].Votes, participantID) {
			m.DateOptions[i].Votes = append(m.DateOptions[i].Votes, participantID)
		}
	}
	if !matched {
		return candishared.NewNotFoundError("date option")
	}
	return nil
}

func (r *meetingRepoInMem) search(filter *domain.FilterMeeting) []domain.Meeting {
	r.mu.RLock()
	defer r.mu.RUnlock()

	title := strings.ToLower(filter.Title)
	matches := []domain.Meeting{}
	for _, m := range r.meetings {
		if strings.Contains(strings.ToLower(m.Title), title) {
			found := copyMeeting(m)
			found.Password = ""
			for i := range found.Participants {
				found.Participants[i].Password = ""
			}
			matches = append(matches, found)
		}
	}
	return matches
}

func copyMeeting(m *domain.Meeting) domain.Meeting {
	c := *m
	c.DateOptions = make([]domain.DateOption, len(m.DateOptions))
	for i, opt := range m.DateOptions {
		opt.Votes = append([]primitive.ObjectID{}, opt.Votes...)
		c.DateOptions[i] = opt
	}
	c.Participants = append([]domain.Participant{}, m.Participants...)
	return c
}

func containsObjectID(list []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}
