package usecase

import (
	"context"

	"github.com/golangid/meetup/candishared"
	"github.com/golangid/meetup/internal/modules/meeting/domain"
	"github.com/golangid/meetup/tracer"
)

func (uc *meetingUsecaseImpl) CreateMeeting(ctx context.Context, req *domain.RequestCreateMeeting) (result domain.ResponseCreateMeeting, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "MeetingUsecase:CreateMeeting")
	defer func() { trace.SetError(err); trace.Finish() }()

	if req.Password == "" {
		return result, candishared.NewValidationError("password is required")
	}
	data, err := req.Deserialize()
	if err != nil {
		return result, err
	}
	if data.Password, err = uc.hasher.Hash(req.Password); err != nil {
		return result, err
	}

	if err = uc.repo.Create(ctx, &data); err != nil {
		return result, err
	}
	result.MeetingID = data.ID.Hex()
	return result, nil
}

func (uc *meetingUsecaseImpl) GetDetailMeeting(ctx context.Context, id string) (result domain.ResponseMeeting, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "MeetingUsecase:GetDetailMeeting")
	defer func() { trace.SetError(err); trace.Finish() }()

	meetingID, err := parseObjectID("id", id)
	if err != nil {
		return result, err
	}
	data, err := uc.repo.Find(ctx, meetingID)
	if err != nil {
		return result, err
	}
	result.Serialize(&data, uc.now())
	return result, nil
}

func (uc *meetingUsecaseImpl) SearchMeeting(ctx context.Context, filter *domain.FilterMeeting) (results []domain.ResponseMeeting, meta candishared.Meta, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "MeetingUsecase:SearchMeeting")
	defer func() { trace.SetError(err); trace.Finish() }()

	if filter.Title == "" {
		return nil, meta, candishared.NewValidationError("search title is required")
	}
	if err = filter.Validate(); err != nil {
		return nil, meta, err
	}

	data, err := uc.repo.FetchAll(ctx, filter)
	if err != nil {
		return nil, meta, err
	}
	count := uc.repo.Count(ctx, filter)
	meta = candishared.NewMeta(filter.Page, filter.Limit, count)

	now := uc.now()
	results = make([]domain.ResponseMeeting, 0, len(data))
	for i := range data {
		var res domain.ResponseMeeting
		res.Serialize(&data[i], now)
		results = append(results, res)
	}
	return results, meta, nil
}

func (uc *meetingUsecaseImpl) UpdateMeeting(ctx context.Context, id string, cred domain.OwnerCredential, req *domain.RequestUpdateMeeting) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "MeetingUsecase:UpdateMeeting")
	defer func() { trace.SetError(err); trace.Finish() }()

	meetingID, err := parseObjectID("id", id)
	if err != nil {
		return err
	}
	if cred.IsEmpty() {
		return candishared.NewCredentialRequiredError("password is required to update meeting")
	}
	fields, err := req.Deserialize()
	if err != nil {
		return err
	}

	meeting, err := uc.repo.Find(ctx, meetingID)
	if err != nil {
		return err
	}
	if err = uc.authorizeOwner(&meeting, cred); err != nil {
		return err
	}

	if fields.IsEmpty() {
		return nil
	}
	return uc.repo.UpdateFields(ctx, meetingID, fields)
}

func (uc *meetingUsecaseImpl) DeleteMeeting(ctx context.Context, id string, cred domain.OwnerCredential) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "MeetingUsecase:DeleteMeeting")
	defer func() { trace.SetError(err); trace.Finish() }()

	meetingID, err := parseObjectID("id", id)
	if err != nil {
		return err
	}
	if cred.IsEmpty() {
		return candishared.NewCredentialRequiredError("password is required to delete meeting")
	}

	meeting, err := uc.repo.Find(ctx, meetingID)
	if err != nil {
		return err
	}
	if err = uc.authorizeOwner(&meeting, cred); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, meetingID)
}

func (uc *meetingUsecaseImpl) AuthenticateOwner(ctx context.Context, id string, req *domain.RequestOwnerAuth) (result domain.ResponseOwnerAuth, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "MeetingUsecase:AuthenticateOwner")
	defer func() { trace.SetError(err); trace.Finish() }()

	meetingID, err := parseObjectID("id", id)
	if err != nil {
		return result, err
	}
	if req.Password == "" {
		return result, candishared.NewCredentialRequiredError("password is required")
	}

	meeting, err := uc.repo.Find(ctx, meetingID)
	if err != nil {
		return result, err
	}
	if err = uc.verifySecret(ownerAttemptKey(meetingID), req.Password, meeting.Password); err != nil {
		return result, err
	}

	result.Token, err = uc.tokenIssuer.Generate(ctx, meetingID.Hex())
	return result, err
}

// authorizeOwner organizer token take precedence over password
func (uc *meetingUsecaseImpl) authorizeOwner(meeting *domain.Meeting, cred domain.OwnerCredential) error {
	if cred.TokenClaim != nil {
		if cred.TokenClaim.Subject != meeting.ID.Hex() {
			return candishared.NewAuthFailedError("token is not issued for this meeting")
		}
		return nil
	}
	return uc.verifySecret(ownerAttemptKey(meeting.ID), cred.Password, meeting.Password)
}
