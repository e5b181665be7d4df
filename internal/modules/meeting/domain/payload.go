package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/golangid/meetup/candihelper"
	"github.com/golangid/meetup/candishared"
)

// RequestCreateMeeting model
type RequestCreateMeeting struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	PlaceName   *string  `json:"placeName"`
	PlaceLat    *float64 `json:"placeLat" validate:"omitempty,latitude"`
	PlaceLng    *float64 `json:"placeLng" validate:"omitempty,longitude"`
	Password    string   `json:"password" validate:"required"`
	Deadline    string   `json:"deadline" validate:"required"`
	DateOptions []string `json:"dateOptions" validate:"required,min=1"`
}

// Deserialize to meeting model, all timestamp must be parsable.
// Fresh id assigned to meeting and every date option, vote sets and participants start empty
func (r *RequestCreateMeeting) Deserialize() (res Meeting, err error) {
	multiError := candihelper.NewMultiError()

	deadline, e := candihelper.ParseTimestamp(r.Deadline)
	multiError.Append("deadline", e)

	res.DateOptions = make([]DateOption, 0, len(r.DateOptions))
	for i, dateStr := range r.DateOptions {
		date, e := candihelper.ParseTimestamp(dateStr)
		if e != nil {
			multiError.Append("dateOptions["+itoa(i)+"]", e)
			continue
		}
		res.DateOptions = append(res.DateOptions, DateOption{
			ID: primitive.NewObjectID(), Date: date, Votes: []primitive.ObjectID{},
		})
	}
	if len(r.DateOptions) == 0 {
		multiError.Append("dateOptions", errors.New("at least one date option required"))
	}
	if strings.TrimSpace(r.Title) == "" {
		multiError.Append("title", errors.New("title cannot empty"))
	}

	if multiError.HasError() {
		return res, candishared.NewValidationError("invalid payload", multiError)
	}

	res.ID = primitive.NewObjectID()
	res.Title = r.Title
	res.Description = r.Description
	res.Place = Place{Name: r.PlaceName, Lat: r.PlaceLat, Lng: r.PlaceLng}
	res.Deadline = deadline
	res.Participants = []Participant{}
	return res, nil
}

// UnmarshalJSON accept deadline and date options as string or epoch millisecond number
func (r *RequestCreateMeeting) UnmarshalJSON(data []byte) error {
	type alias RequestCreateMeeting
	raw := struct {
		*alias
		Deadline    interface{}   `json:"deadline"`
		DateOptions []interface{} `json:"dateOptions"`
	}{alias: (*alias)(r)}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var err error
	if r.Deadline, err = timestampString(raw.Deadline); err != nil {
		return err
	}
	r.DateOptions = nil
	if raw.DateOptions != nil {
		r.DateOptions = make([]string, 0, len(raw.DateOptions))
	}
	for _, opt := range raw.DateOptions {
		str, err := timestampString(opt)
		if err != nil {
			return err
		}
		r.DateOptions = append(r.DateOptions, str)
	}
	return nil
}

// RequestJoinMeeting model
type RequestJoinMeeting struct {
	Nickname string `json:"nickname" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RequestVote model, DateOptionIDs is the whole new vote set of participant
type RequestVote struct {
	Nickname      string   `json:"nickname" validate:"required"`
	Password      string   `json:"password" validate:"required"`
	DateOptionIDs []string `json:"dateOptionIds" validate:"dive,objectid"`
}

// ParseDateOptionIDs method
func (r *RequestVote) ParseDateOptionIDs() ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(r.DateOptionIDs))
	for i, hex := range r.DateOptionIDs {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			return nil, candishared.NewValidationError("invalid payload",
				candihelper.NewMultiError().Append("dateOptionIds["+itoa(i)+"]", errors.New("must be a valid id")))
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// RequestUpdateMeeting model, only non empty field applied
type RequestUpdateMeeting struct {
	Password    string `json:"password"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
}

// UnmarshalJSON accept deadline as string or epoch millisecond number
func (r *RequestUpdateMeeting) UnmarshalJSON(data []byte) error {
	type alias RequestUpdateMeeting
	raw := struct {
		*alias
		Deadline interface{} `json:"deadline"`
	}{alias: (*alias)(r)}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var err error
	r.Deadline, err = timestampString(raw.Deadline)
	return err
}

// Deserialize to partial update fields
func (r *RequestUpdateMeeting) Deserialize() (res UpdateMeetingFields, err error) {
	if r.Title != "" {
		res.Title = &r.Title
	}
	if r.Description != "" {
		res.Description = &r.Description
	}
	if r.Deadline != "" {
		deadline, err := candihelper.ParseTimestamp(r.Deadline)
		if err != nil {
			return res, candishared.NewValidationError("invalid payload",
				candihelper.NewMultiError().Append("deadline", err))
		}
		res.Deadline = &deadline
	}
	return res, nil
}

// RequestOwnerAuth model
type RequestOwnerAuth struct {
	Password string `json:"password" validate:"required"`
}

// OwnerCredential secret or organizer token (one of them) for edit and delete
type OwnerCredential struct {
	Password   string
	TokenClaim *candishared.TokenClaim
}

// IsEmpty method
func (o *OwnerCredential) IsEmpty() bool {
	return o.Password == "" && o.TokenClaim == nil
}

func timestampString(v interface{}) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	}
	return "", fmt.Errorf("timestamp must be string or number, got %T", v)
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
