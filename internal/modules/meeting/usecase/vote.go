package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap/zapcore"

	"github.com/golangid/meetup/candishared"
	"github.com/golangid/meetup/internal/modules/meeting/domain"
	"github.com/golangid/meetup/logger"
	"github.com/golangid/meetup/tracer"
)

func (uc *meetingUsecaseImpl) Vote(ctx context.Context, id string, req *domain.RequestVote) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "MeetingUsecase:Vote")
	defer func() { trace.SetError(err); trace.Finish() }()

	meetingID, err := parseObjectID("id", id)
	if err != nil {
		return err
	}
	if req.Nickname == "" || req.Password == "" || req.DateOptionIDs == nil {
		return candishared.NewValidationError("nickname, password and date selection are required")
	}
	targets, err := req.ParseDateOptionIDs()
	if err != nil {
		return err
	}

	participantID, err := uc.ResolveParticipant(ctx, meetingID, req.Nickname, req.Password)
	if err != nil {
		return err
	}
	return uc.SetVotes(ctx, meetingID, participantID, targets)
}

// SetVotes replace whole vote set of participant, pull from every date option then add to targets.
// Both phase idempotent, between them participant observed as voting nothing
func (uc *meetingUsecaseImpl) SetVotes(ctx context.Context, meetingID, participantID primitive.ObjectID, targets []primitive.ObjectID) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "MeetingUsecase:SetVotes")
	defer func() { trace.SetError(err); trace.Finish() }()
	trace.SetTag("participant_id", participantID.Hex())
	trace.Log("targets", targets)

	if err = uc.repo.PullVotes(ctx, meetingID, participantID); err != nil {
		return err
	}
	if len(targets) == 0 {
		return nil
	}
	return uc.repo.AddVotes(ctx, meetingID, participantID, targets)
}

func (uc *meetingUsecaseImpl) GetVoteTally(ctx context.Context, id string) (result domain.VoteTally, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "MeetingUsecase:GetVoteTally")
	defer func() { trace.SetError(err); trace.Finish() }()

	meetingID, err := parseObjectID("id", id)
	if err != nil {
		return nil, err
	}
	meeting, err := uc.repo.Find(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	result = make(domain.VoteTally, len(meeting.DateOptions))
	for _, opt := range meeting.DateOptions {
		result[opt.ID.Hex()] = len(opt.Votes)
	}
	return result, nil
}

func (uc *meetingUsecaseImpl) GetVoters(ctx context.Context, id, dateOptionID string) (result []domain.Voter, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "MeetingUsecase:GetVoters")
	defer func() { trace.SetError(err); trace.Finish() }()

	meetingID, err := parseObjectID("id", id)
	if err != nil {
		return nil, err
	}
	optionID, err := parseObjectID("dateOptionId", dateOptionID)
	if err != nil {
		return nil, err
	}

	meeting, err := uc.repo.Find(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	option, ok := meeting.FindDateOption(optionID)
	if !ok {
		return nil, candishared.NewNotFoundError("date option")
	}

	result = make([]domain.Voter, 0, len(option.Votes))
	for _, voterID := range option.Votes {
		participant, ok := meeting.FindParticipantByID(voterID)
		if !ok {
			fault := candishared.NewIntegrityFaultError("meeting %s date option %s has vote of unknown participant %s",
				meetingID.Hex(), optionID.Hex(), voterID.Hex())
			trace.Log("integrity_fault", fault.Error())
			logger.Log(zapcore.ErrorLevel, fault.Error(), "MeetingUsecase:GetVoters", "integrity_fault")
			continue
		}
		result = append(result, domain.Voter{ParticipantID: participant.ID.Hex(), Nickname: participant.Nickname})
	}
	return result, nil
}
