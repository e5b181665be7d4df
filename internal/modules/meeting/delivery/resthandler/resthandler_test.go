package resthandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/golangid/meetup/candishared"
	"github.com/golangid/meetup/internal/modules/meeting/domain"
	"github.com/golangid/meetup/middleware"
	mockinterfaces "github.com/golangid/meetup/mocks/codebase/interfaces"
	mockusecase "github.com/golangid/meetup/pkg/mocks/modules/meeting/usecase"
	"github.com/golangid/meetup/validator"
)

const meetingHex = "5f1d7c3e9b1e8a0001a2b3c4"

var errFoo = errors.New("Something error")

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Add(echo.HeaderContentType, echo.MIMEApplicationJSON)
	res := httptest.NewRecorder()
	return echo.New().NewContext(req, res), res
}

func newPassValidator() *mockinterfaces.Validator {
	validatorMock := &mockinterfaces.Validator{}
	validatorMock.On("ValidateDocument", mock.Anything, mock.Anything).Return(nil)
	validatorMock.On("ValidateStruct", mock.Anything).Return(nil)
	return validatorMock
}

func TestNewRestHandler(t *testing.T) {
	handler := NewRestHandler(middleware.NewMiddlewareWithOption(), &mockusecase.MeetingUsecase{}, newPassValidator())
	assert.NotNil(t, handler)

	e := echo.New()
	handler.Mount(e.Group("/api"))

	routes := map[string]bool{}
	for _, r := range e.Routes() {
		routes[r.Method+" "+r.Path] = true
	}
	for _, want := range []string{
		"POST /api/meetings", "GET /api/meetings/search", "GET /api/meetings/:id",
		"PUT /api/meetings/:id", "DELETE /api/meetings/:id", "POST /api/meetings/:id/auth",
		"POST /api/meetings/:id/participants", "POST /api/meetings/:id/votes", "PUT /api/meetings/:id/votes",
		"GET /api/meetings/:id/votes", "GET /api/meetings/:id/votes/:dateOptionId",
	} {
		assert.True(t, routes[want], want)
	}
}

func TestRestHandler_createMeeting(t *testing.T) {
	tests := []struct {
		name             string
		body             string
		errValidate      error
		ucErr            error
		wantResponseCode int
	}{
		{
			name:             "Testcase #1: Positive",
			body:             `{"title":"Sync","password":"pw","deadline":"2030-01-01","dateOptions":["2030-01-02"]}`,
			wantResponseCode: http.StatusCreated,
		},
		{
			name:             "Testcase #2: Negative, schema validation",
			body:             `{}`,
			errValidate:      candishared.NewValidationError("invalid payload"),
			wantResponseCode: http.StatusBadRequest,
		},
		{
			name:             "Testcase #3: Negative, malformed json",
			body:             `{"title":`,
			wantResponseCode: http.StatusBadRequest,
		},
		{
			name:             "Testcase #4: Negative, usecase error",
			body:             `{"title":"Sync","password":"pw","deadline":"2030-01-01","dateOptions":["2030-01-02"]}`,
			ucErr:            errFoo,
			wantResponseCode: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ucMock := &mockusecase.MeetingUsecase{}
			ucMock.On("CreateMeeting", mock.Anything, mock.Anything).Return(domain.ResponseCreateMeeting{MeetingID: meetingHex}, tt.ucErr)
			validatorMock := &mockinterfaces.Validator{}
			validatorMock.On("ValidateDocument", "meeting/create", mock.Anything).Return(tt.errValidate)
			validatorMock.On("ValidateStruct", mock.Anything).Return(nil)

			c, res := newContext(http.MethodPost, "/api/meetings", tt.body)
			handler := NewRestHandler(nil, ucMock, validatorMock)
			assert.NoError(t, handler.createMeeting(c))
			assert.Equal(t, tt.wantResponseCode, res.Code)
		})
	}
}

func TestRestHandler_createMeeting_WithSchema(t *testing.T) {
	ucMock := &mockusecase.MeetingUsecase{}
	ucMock.On("CreateMeeting", mock.Anything, mock.MatchedBy(func(req *domain.RequestCreateMeeting) bool {
		return req.Title == "Sync" && len(req.DateOptions) == 2
	})).Return(domain.ResponseCreateMeeting{MeetingID: meetingHex}, nil)
	handler := NewRestHandler(nil, ucMock, validator.NewValidator())

	c, res := newContext(http.MethodPost, "/api/meetings",
		`{"title":"Sync","password":"pw","deadline":1893456000000,"dateOptions":["2030-01-02",1893542400000]}`)
	assert.NoError(t, handler.createMeeting(c))
	require.Equal(t, http.StatusCreated, res.Code)

	var body struct {
		Data domain.ResponseCreateMeeting `json:"data"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, meetingHex, body.Data.MeetingID)

	c, res = newContext(http.MethodPost, "/api/meetings", `{"title":"Sync","password":"pw","dateOptions":[]}`)
	assert.NoError(t, handler.createMeeting(c))
	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestRestHandler_searchMeeting(t *testing.T) {
	tests := []struct {
		name             string
		query            string
		ucErr            error
		wantResponseCode int
	}{
		{name: "Testcase #1: Positive", query: "?title=sync&page=1&limit=5", wantResponseCode: http.StatusOK},
		{name: "Testcase #2: Negative, invalid page", query: "?title=sync&page=abc", wantResponseCode: http.StatusBadRequest},
		{name: "Testcase #3: Negative, empty title", query: "", ucErr: candishared.NewValidationError("search title is required"), wantResponseCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ucMock := &mockusecase.MeetingUsecase{}
			ucMock.On("SearchMeeting", mock.Anything, mock.Anything).Return([]domain.ResponseMeeting{}, candishared.Meta{}, tt.ucErr)

			c, res := newContext(http.MethodGet, "/api/meetings/search"+tt.query, "")
			handler := NewRestHandler(nil, ucMock, newPassValidator())
			assert.NoError(t, handler.searchMeeting(c))
			assert.Equal(t, tt.wantResponseCode, res.Code)
		})
	}
}

func TestRestHandler_getDetailMeeting(t *testing.T) {
	tests := []struct {
		name             string
		ucErr            error
		wantResponseCode int
	}{
		{name: "Testcase #1: Positive", wantResponseCode: http.StatusOK},
		{name: "Testcase #2: Negative, not found", ucErr: candishared.NewNotFoundError("meeting"), wantResponseCode: http.StatusNotFound},
		{name: "Testcase #3: Negative, invalid id", ucErr: candishared.NewValidationError("invalid id format"), wantResponseCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ucMock := &mockusecase.MeetingUsecase{}
			ucMock.On("GetDetailMeeting", mock.Anything, meetingHex).Return(domain.ResponseMeeting{ID: meetingHex}, tt.ucErr)

			c, res := newContext(http.MethodGet, "/", "")
			c.SetParamNames("id")
			c.SetParamValues(meetingHex)
			handler := NewRestHandler(nil, ucMock, newPassValidator())
			assert.NoError(t, handler.getDetailMeeting(c))
			assert.Equal(t, tt.wantResponseCode, res.Code)
		})
	}
}

func TestRestHandler_updateMeeting(t *testing.T) {
	claim := &candishared.TokenClaim{StandardClaims: jwt.StandardClaims{Subject: meetingHex}}

	tests := []struct {
		name             string
		body             string
		authorization    string
		ucErr            error
		wantCred         domain.OwnerCredential
		wantResponseCode int
	}{
		{
			name: "Testcase #1: Positive, password", body: `{"password":"pw","title":"Retro"}`,
			wantCred: domain.OwnerCredential{Password: "pw"}, wantResponseCode: http.StatusOK,
		},
		{
			name: "Testcase #2: Positive, organizer token", body: `{"title":"Retro"}`, authorization: "Bearer token",
			wantCred: domain.OwnerCredential{TokenClaim: claim}, wantResponseCode: http.StatusOK,
		},
		{
			name: "Testcase #3: Negative, missing credential", body: `{"title":"Retro"}`,
			ucErr: candishared.NewCredentialRequiredError("password is required"), wantResponseCode: http.StatusUnauthorized,
		},
		{
			name: "Testcase #4: Negative, wrong password", body: `{"password":"bad","title":"Retro"}`,
			wantCred: domain.OwnerCredential{Password: "bad"},
			ucErr:    candishared.NewAuthFailedError("password does not match"), wantResponseCode: http.StatusForbidden,
		},
		{
			name: "Testcase #5: Negative, invalid token", body: `{"title":"Retro"}`, authorization: "Bearer expired",
			wantResponseCode: http.StatusUnauthorized,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenValidator := &mockinterfaces.TokenIssuer{}
			tokenValidator.On("ValidateToken", mock.Anything, "token").Return(claim, nil)
			tokenValidator.On("ValidateToken", mock.Anything, "expired").Return(nil, errors.New("Token is expired"))
			ucMock := &mockusecase.MeetingUsecase{}
			ucMock.On("UpdateMeeting", mock.Anything, meetingHex, mock.Anything, mock.Anything).Return(tt.ucErr)

			c, res := newContext(http.MethodPut, "/", tt.body)
			if tt.authorization != "" {
				c.Request().Header.Set(echo.HeaderAuthorization, tt.authorization)
			}
			c.SetParamNames("id")
			c.SetParamValues(meetingHex)

			mw := middleware.NewMiddleware(tokenValidator)
			handler := NewRestHandler(mw, ucMock, newPassValidator())
			assert.NoError(t, mw.HTTPOrganizerAuth(handler.updateMeeting)(c))
			assert.Equal(t, tt.wantResponseCode, res.Code)
			if tt.ucErr == nil && tt.wantResponseCode == http.StatusOK {
				ucMock.AssertCalled(t, "UpdateMeeting", mock.Anything, meetingHex, tt.wantCred, mock.Anything)
			}
		})
	}
}

func TestRestHandler_deleteMeeting(t *testing.T) {
	tests := []struct {
		name             string
		body             string
		ucErr            error
		wantResponseCode int
	}{
		{name: "Testcase #1: Positive", body: `{"password":"pw"}`, wantResponseCode: http.StatusOK},
		{name: "Testcase #2: Negative, malformed body", body: `{"password":`, wantResponseCode: http.StatusBadRequest},
		{name: "Testcase #3: Negative, not found", body: `{"password":"pw"}`, ucErr: candishared.NewNotFoundError("meeting"), wantResponseCode: http.StatusNotFound},
		{name: "Testcase #4: Negative, without credential", ucErr: candishared.NewCredentialRequiredError("password is required"), wantResponseCode: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ucMock := &mockusecase.MeetingUsecase{}
			ucMock.On("DeleteMeeting", mock.Anything, meetingHex, mock.Anything).Return(tt.ucErr)

			c, res := newContext(http.MethodDelete, "/", tt.body)
			c.SetParamNames("id")
			c.SetParamValues(meetingHex)
			handler := NewRestHandler(nil, ucMock, newPassValidator())
			assert.NoError(t, handler.deleteMeeting(c))
			assert.Equal(t, tt.wantResponseCode, res.Code)
		})
	}
}

func TestRestHandler_deleteMeeting_UnreadableBody(t *testing.T) {
	ucMock := &mockusecase.MeetingUsecase{}

	req := httptest.NewRequest(http.MethodDelete, "/", iotest.ErrReader(errors.New("connection reset")))
	res := httptest.NewRecorder()
	c := echo.New().NewContext(req, res)
	c.SetParamNames("id")
	c.SetParamValues(meetingHex)

	handler := NewRestHandler(nil, ucMock, newPassValidator())
	assert.NoError(t, handler.deleteMeeting(c))
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Contains(t, res.Body.String(), "cannot read request body")
	ucMock.AssertNotCalled(t, "DeleteMeeting", mock.Anything, mock.Anything, mock.Anything)
}

func TestRestHandler_authenticateOwner(t *testing.T) {
	tests := []struct {
		name             string
		ucErr            error
		wantResponseCode int
	}{
		{name: "Testcase #1: Positive", wantResponseCode: http.StatusOK},
		{name: "Testcase #2: Negative, wrong password", ucErr: candishared.NewAuthFailedError("password does not match"), wantResponseCode: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ucMock := &mockusecase.MeetingUsecase{}
			ucMock.On("AuthenticateOwner", mock.Anything, meetingHex, mock.Anything).Return(domain.ResponseOwnerAuth{Token: "token"}, tt.ucErr)

			c, res := newContext(http.MethodPost, "/", `{"password":"pw"}`)
			c.SetParamNames("id")
			c.SetParamValues(meetingHex)
			handler := NewRestHandler(nil, ucMock, newPassValidator())
			assert.NoError(t, handler.authenticateOwner(c))
			assert.Equal(t, tt.wantResponseCode, res.Code)
		})
	}
}

func TestRestHandler_joinMeeting(t *testing.T) {
	tests := []struct {
		name             string
		ucErr            error
		wantResponseCode int
	}{
		{name: "Testcase #1: Positive", wantResponseCode: http.StatusCreated},
		{name: "Testcase #2: Negative, nickname taken", ucErr: candishared.NewConflictError("nickname already taken"), wantResponseCode: http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ucMock := &mockusecase.MeetingUsecase{}
			ucMock.On("JoinMeeting", mock.Anything, meetingHex, mock.Anything).Return(domain.ResponseJoinMeeting{ParticipantID: meetingHex}, tt.ucErr)

			c, res := newContext(http.MethodPost, "/", `{"nickname":"alice","password":"pw"}`)
			c.SetParamNames("id")
			c.SetParamValues(meetingHex)
			handler := NewRestHandler(nil, ucMock, newPassValidator())
			assert.NoError(t, handler.joinMeeting(c))
			assert.Equal(t, tt.wantResponseCode, res.Code)
		})
	}
}

func TestRestHandler_vote(t *testing.T) {
	tests := []struct {
		name             string
		message          string
		ucErr            error
		wantResponseCode int
	}{
		{name: "Testcase #1: Positive, create", message: "vote saved", wantResponseCode: http.StatusOK},
		{name: "Testcase #2: Positive, update", message: "vote updated", wantResponseCode: http.StatusOK},
		{name: "Testcase #3: Negative, wrong password", message: "vote saved", ucErr: candishared.NewAuthFailedError("password does not match"), wantResponseCode: http.StatusForbidden},
		{name: "Testcase #4: Negative, nickname conflict", message: "vote saved", ucErr: candishared.NewConflictError("nickname already taken"), wantResponseCode: http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ucMock := &mockusecase.MeetingUsecase{}
			ucMock.On("Vote", mock.Anything, meetingHex, mock.Anything).Return(tt.ucErr)

			c, res := newContext(http.MethodPost, "/", `{"nickname":"alice","password":"pw","dateOptionIds":[]}`)
			c.SetParamNames("id")
			c.SetParamValues(meetingHex)
			handler := NewRestHandler(nil, ucMock, newPassValidator())
			assert.NoError(t, handler.vote(tt.message)(c))
			assert.Equal(t, tt.wantResponseCode, res.Code)
			if tt.ucErr == nil {
				assert.Contains(t, res.Body.String(), tt.message)
			}
		})
	}
}

func TestRestHandler_getVoteTally(t *testing.T) {
	ucMock := &mockusecase.MeetingUsecase{}
	ucMock.On("GetVoteTally", mock.Anything, meetingHex).Return(domain.VoteTally{"d1": 2}, nil)

	c, res := newContext(http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(meetingHex)
	handler := NewRestHandler(nil, ucMock, newPassValidator())
	assert.NoError(t, handler.getVoteTally(c))
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), `"d1":2`)
}

func TestRestHandler_getVoters(t *testing.T) {
	tests := []struct {
		name             string
		ucErr            error
		wantResponseCode int
	}{
		{name: "Testcase #1: Positive", wantResponseCode: http.StatusOK},
		{name: "Testcase #2: Negative, unknown date option", ucErr: candishared.NewNotFoundError("date option"), wantResponseCode: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ucMock := &mockusecase.MeetingUsecase{}
			ucMock.On("GetVoters", mock.Anything, meetingHex, "d1").Return([]domain.Voter{{ParticipantID: "p1", Nickname: "alice"}}, tt.ucErr)

			c, res := newContext(http.MethodGet, "/", "")
			c.SetParamNames("id", "dateOptionId")
			c.SetParamValues(meetingHex, "d1")
			handler := NewRestHandler(nil, ucMock, newPassValidator())
			assert.NoError(t, handler.getVoters(c))
			assert.Equal(t, tt.wantResponseCode, res.Code)
		})
	}
}
