package domain

import "time"

// ResponseMeeting model, never carry any digest
type ResponseMeeting struct {
	ID           string                `json:"id"`
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	Place        Place                 `json:"place"`
	Deadline     time.Time             `json:"deadline"`
	IsExpired    bool                  `json:"isExpired"`
	DateOptions  []ResponseDateOption  `json:"dateOptions"`
	Participants []ResponseParticipant `json:"participants"`
	CreatedAt    time.Time             `json:"createdAt"`
}

// ResponseDateOption model
type ResponseDateOption struct {
	ID    string    `json:"id"`
	Date  time.Time `json:"date"`
	Votes []string  `json:"votes"`
}

// ResponseParticipant model
type ResponseParticipant struct {
	ID       string `json:"id"`
	Nickname string `json:"nickname"`
}

// Serialize from meeting model, isExpired computed from given time
func (r *ResponseMeeting) Serialize(source *Meeting, now time.Time) {
	r.ID = source.ID.Hex()
	r.Title = source.Title
	r.Description = source.Description
	r.Place = source.Place
	r.Deadline = source.Deadline
	r.IsExpired = source.IsExpired(now)
	r.CreatedAt = source.CreatedAt

	r.DateOptions = make([]ResponseDateOption, 0, len(source.DateOptions))
	for _, opt := range source.DateOptions {
		votes := make([]string, 0, len(opt.Votes))
		for _, v := range opt.Votes {
			votes = append(votes, v.Hex())
		}
		r.DateOptions = append(r.DateOptions, ResponseDateOption{ID: opt.ID.Hex(), Date: opt.Date, Votes: votes})
	}

	r.Participants = make([]ResponseParticipant, 0, len(source.Participants))
	for _, p := range source.Participants {
		r.Participants = append(r.Participants, ResponseParticipant{ID: p.ID.Hex(), Nickname: p.Nickname})
	}
}

// ResponseCreateMeeting model
type ResponseCreateMeeting struct {
	MeetingID string `json:"meetingId"`
}

// ResponseJoinMeeting model
type ResponseJoinMeeting struct {
	ParticipantID string `json:"participantId"`
}

// ResponseOwnerAuth model
type ResponseOwnerAuth struct {
	Token string `json:"token"`
}

// VoteTally date option id to number of voter
type VoteTally map[string]int

// Voter model
type Voter struct {
	ParticipantID string `json:"participantId"`
	Nickname      string `json:"nickname"`
}
