package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/golangid/meetup/internal/modules/meeting/domain"
)

// MeetingRepository abstraction, every method atomic on one meeting document
type MeetingRepository interface {
	Create(ctx context.Context, data *domain.Meeting) error
	Find(ctx context.Context, id primitive.ObjectID) (domain.Meeting, error)
	// FindPrimary read from primary node, used before and after conditional write on participant
	FindPrimary(ctx context.Context, id primitive.ObjectID) (domain.Meeting, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields domain.UpdateMeetingFields) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	FetchAll(ctx context.Context, filter *domain.FilterMeeting) ([]domain.Meeting, error)
	Count(ctx context.Context, filter *domain.FilterMeeting) int

	// InsertParticipant append participant iff no participant in meeting has the same nickname,
	// inserted false when precondition failed or meeting not exist
	InsertParticipant(ctx context.Context, meetingID primitive.ObjectID, participant domain.Participant) (inserted bool, err error)
	// PullVotes remove participant from vote set of every date option
	PullVotes(ctx context.Context, meetingID, participantID primitive.ObjectID) error
	// AddVotes add participant to vote set of matching date option, unknown id ignored.
	// Return NotFound when meeting document not matched
	AddVotes(ctx context.Context, meetingID, participantID primitive.ObjectID, dateOptionIDs []primitive.ObjectID) error
}
