package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Meeting model, one document own its date options and participants
type Meeting struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Place        Place              `bson:"place" json:"place"`
	Password     string             `bson:"password,omitempty" json:"-"`
	Deadline     time.Time          `bson:"deadline" json:"deadline"`
	DateOptions  []DateOption       `bson:"dateOptions" json:"dateOptions"`
	Participants []Participant      `bson:"participants" json:"participants"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// Place model, every part nullable
type Place struct {
	Name *string  `bson:"name" json:"name"`
	Lat  *float64 `bson:"lat" json:"lat"`
	Lng  *float64 `bson:"lng" json:"lng"`
}

// DateOption candidate date, Votes is a set of participant id
type DateOption struct {
	ID    primitive.ObjectID   `bson:"_id" json:"id"`
	Date  time.Time            `bson:"date" json:"date"`
	Votes []primitive.ObjectID `bson:"votes" json:"votes"`
}

// Participant model
type Participant struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Nickname string             `bson:"nickname" json:"nickname"`
	Password string             `bson:"password,omitempty" json:"-"`
}

// IsExpired true when now is after deadline
func (m *Meeting) IsExpired(now time.Time) bool {
	return now.After(m.Deadline)
}

// FindParticipantByNickname exact, case sensitive match
func (m *Meeting) FindParticipantByNickname(nickname string) (Participant, bool) {
	for _, p := range m.Participants {
		if p.Nickname == nickname {
			return p, true
		}
	}
	return Participant{}, false
}

// FindParticipantByID method
func (m *Meeting) FindParticipantByID(id primitive.ObjectID) (Participant, bool) {
	for _, p := range m.Participants {
		if p.ID == id {
			return p, true
		}
	}
	return Participant{}, false
}

// FindDateOption method
func (m *Meeting) FindDateOption(id primitive.ObjectID) (DateOption, bool) {
	for _, opt := range m.DateOptions {
		if opt.ID == id {
			return opt, true
		}
	}
	return DateOption{}, false
}

// UpdateMeetingFields partial update, nil field is untouched
type UpdateMeetingFields struct {
	Title       *string
	Description *string
	Deadline    *time.Time
}

// IsEmpty method
func (u *UpdateMeetingFields) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Deadline == nil
}
