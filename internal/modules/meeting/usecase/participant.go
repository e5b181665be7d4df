package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/golangid/meetup/candishared"
	"github.com/golangid/meetup/internal/modules/meeting/domain"
	"github.com/golangid/meetup/tracer"
)

func (uc *meetingUsecaseImpl) JoinMeeting(ctx context.Context, id string, req *domain.RequestJoinMeeting) (result domain.ResponseJoinMeeting, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "MeetingUsecase:JoinMeeting")
	defer func() { trace.SetError(err); trace.Finish() }()

	meetingID, err := parseObjectID("id", id)
	if err != nil {
		return result, err
	}
	if req.Nickname == "" || req.Password == "" {
		return result, candishared.NewValidationError("nickname and password are required")
	}

	meeting, err := uc.repo.FindPrimary(ctx, meetingID)
	if err != nil {
		return result, err
	}
	if _, taken := meeting.FindParticipantByNickname(req.Nickname); taken {
		return result, candishared.NewConflictError("nickname already taken")
	}

	participant, inserted, err := uc.insertParticipant(ctx, meetingID, req.Nickname, req.Password)
	if err != nil {
		return result, err
	}
	if !inserted {
		if _, err = uc.repo.FindPrimary(ctx, meetingID); err != nil {
			return result, err
		}
		return result, candishared.NewConflictError("nickname already taken")
	}

	result.ParticipantID = participant.ID.Hex()
	return result, nil
}

// ResolveParticipant authenticate existing participant or register a new one,
// concurrent resolve with the same nickname end up with exactly one participant
func (uc *meetingUsecaseImpl) ResolveParticipant(ctx context.Context, meetingID primitive.ObjectID, nickname, secret string) (participantID primitive.ObjectID, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "MeetingUsecase:ResolveParticipant")
	defer func() { trace.SetError(err); trace.Finish() }()
	trace.SetTag("nickname", nickname)

	meeting, err := uc.repo.FindPrimary(ctx, meetingID)
	if err != nil {
		return participantID, err
	}
	if existing, ok := meeting.FindParticipantByNickname(nickname); ok {
		trace.SetTag("resolved_by", "authenticate")
		return existing.ID, uc.verifySecret(participantAttemptKey(meetingID, nickname), secret, existing.Password)
	}

	participant, inserted, err := uc.insertParticipant(ctx, meetingID, nickname, secret)
	if err != nil {
		return participantID, err
	}
	if inserted {
		trace.SetTag("resolved_by", "register")
		return participant.ID, nil
	}

	// lost the insert race, retry as authentication against the winner
	trace.SetTag("resolved_by", "retry_authenticate")
	meeting, err = uc.repo.FindPrimary(ctx, meetingID)
	if err != nil {
		return participantID, err
	}
	existing, ok := meeting.FindParticipantByNickname(nickname)
	if !ok {
		return participantID, candishared.NewConflictError("nickname already taken")
	}
	if err := uc.verifySecret(participantAttemptKey(meetingID, nickname), secret, existing.Password); err != nil {
		return participantID, candishared.NewConflictError("nickname already taken")
	}
	return existing.ID, nil
}

func (uc *meetingUsecaseImpl) insertParticipant(ctx context.Context, meetingID primitive.ObjectID, nickname, secret string) (participant domain.Participant, inserted bool, err error) {
	digest, err := uc.hasher.Hash(secret)
	if err != nil {
		return participant, false, err
	}

	participant = domain.Participant{ID: primitive.NewObjectID(), Nickname: nickname, Password: digest}
	inserted, err = uc.repo.InsertParticipant(ctx, meetingID, participant)
	return participant, inserted, err
}
