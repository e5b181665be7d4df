package resthandler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo"

	"github.com/golangid/meetup/candihelper"
	"github.com/golangid/meetup/candishared"
	"github.com/golangid/meetup/codebase/interfaces"
	"github.com/golangid/meetup/internal/modules/meeting/domain"
	"github.com/golangid/meetup/internal/modules/meeting/usecase"
	"github.com/golangid/meetup/tracer"
	"github.com/golangid/meetup/wrapper"
)

// RestHandler handler
type RestHandler struct {
	mw        interfaces.Middleware
	uc        usecase.MeetingUsecase
	validator interfaces.Validator
}

// NewRestHandler create new rest handler
func NewRestHandler(mw interfaces.Middleware, uc usecase.MeetingUsecase, validator interfaces.Validator) *RestHandler {
	return &RestHandler{
		mw: mw, uc: uc, validator: validator,
	}
}

// Mount handler with root "/meetings"
func (h *RestHandler) Mount(root *echo.Group) {
	meeting := root.Group("/meetings")

	meeting.POST("", h.createMeeting)
	meeting.GET("/search", h.searchMeeting)
	meeting.GET("/:id", h.getDetailMeeting)
	meeting.PUT("/:id", h.updateMeeting, h.mw.HTTPOrganizerAuth)
	meeting.DELETE("/:id", h.deleteMeeting, h.mw.HTTPOrganizerAuth)
	meeting.POST("/:id/auth", h.authenticateOwner)
	meeting.POST("/:id/participants", h.joinMeeting)

	meeting.POST("/:id/votes", h.vote("vote saved"))
	meeting.PUT("/:id/votes", h.vote("vote updated"))
	meeting.GET("/:id/votes", h.getVoteTally)
	meeting.GET("/:id/votes/:dateOptionId", h.getVoters)
}

// bindPayload validate raw body with json schema, decode it, then validate struct tags
func (h *RestHandler) bindPayload(c echo.Context, schemaID string, target interface{}) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return candishared.NewValidationError("cannot read request body")
	}
	if err := h.validator.ValidateDocument(schemaID, body); err != nil {
		return err
	}
	if err := json.Unmarshal(body, target); err != nil {
		return candishared.NewValidationError("invalid payload",
			candihelper.NewMultiError().Append("document", err))
	}
	return h.validator.ValidateStruct(target)
}

func (h *RestHandler) createMeeting(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "MeetingDeliveryREST:CreateMeeting")
	defer trace.Finish()

	var payload domain.RequestCreateMeeting
	if err := h.bindPayload(c, "meeting/create", &payload); err != nil {
		return wrapper.NewHTTPResponseFromError(err).JSON(c.Response())
	}

	res, err := h.uc.CreateMeeting(ctx, &payload)
	if err != nil {
		return wrapper.NewHTTPResponseFromError(err).JSON(c.Response())
	}
	return wrapper.NewHTTPResponse(http.StatusCreated, "Success create meeting", res).JSON(c.Response())
}

func (h *RestHandler) searchMeeting(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "MeetingDeliveryREST:SearchMeeting")
	defer trace.Finish()

	var filter domain.FilterMeeting
	if err := candihelper.ParseFromQueryParam(c.Request().URL.Query(), &filter); err != nil {
		if mErr, ok := err.(candihelper.MultiError); ok {
			err = candishared.NewValidationError("invalid query param", mErr)
		} else {
			err = candishared.NewValidationError("invalid query param")
		}
		return wrapper.NewHTTPResponseFromError(err).JSON(c.Response())
	}

	data, meta, err := h.uc.SearchMeeting(ctx, &filter)
	if err != nil {
		return wrapper.NewHTTPResponseFromError(err).JSON(c.Response())
	}
	return wrapper.NewHTTPResponse(http.StatusOK, "Success", meta, data).JSON(c.Response())
}

func (h *RestHandler) getDetailMeeting(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "MeetingDeliveryREST:GetDetailMeeting")
	defer trace.Finish()

	data, err := h.uc.GetDetailMeeting(ctx, c.Param("id"))
	if err != nil {
		return wrapper.NewHTTPResponseFromError(err).JSON(c.Response())
	}
	return wrapper.NewHTTPResponse(http.StatusOK, "Success", data).JSON(c.Response())
}

func (h *RestHandler) updateMeeting(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "MeetingDeliveryREST:UpdateMeeting")
	defer trace.Finish()

	var payload domain.RequestUpdateMeeting
	if err := h.bindPayload(c, "meeting/update", &payload); err != nil {
		return wrapper.NewHTTPResponseFromError(err).JSON(c.Response())
	}

	cred := domain.OwnerCredential{
		Password:   payload.Password,
		TokenClaim: candishared.ParseTokenClaimFromContext(ctx),
	}
	if err := h.uc.UpdateMeeting(ctx, c.Param("id"), cred, &payload); err != nil {
		return wrapper.NewHTTPResponseFromError(err).JSON(c.Response())
	}
	return wrapper.NewHTTPResponse(http.StatusOK, "Success update meeting").JSON(c.Response())
}

func (h *RestHandler) deleteMeeting(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "MeetingDeliveryREST:DeleteMeeting")
	defer trace.Finish()

	// body is optional when organizer token present
	var payload domain.RequestOwnerAuth
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return wrapper.NewHTTPResponseFromError(candishared.NewValidationError("cannot read request body")).JSON(c.Response())
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &payload); err != nil {
			return wrapper.NewHTTPResponseFromError(candishared.NewValidationError("invalid payload",
				candihelper.NewMultiError().Append("document", err))).JSON(c.Response())
		}
	}

	cred := domain.OwnerCredential{
		Password:   payload.Password,
		TokenClaim: candishared.ParseTokenClaimFromContext(ctx),
	}
	if err := h.uc.DeleteMeeting(ctx, c.Param("id"), cred); err != nil {
		return wrapper.NewHTTPResponseFromError(err).JSON(c.Response())
	}
	return wrapper.NewHTTPResponse(http.StatusOK, "Success delete meeting").JSON(c.Response())
}

func (h *RestHandler) authenticateOwner(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "MeetingDeliveryREST:AuthenticateOwner")
	defer trace.Finish()

	var payload domain.RequestOwnerAuth
	if err := h.bindPayload(c, "meeting/owner_auth", &payload); err != nil {
		return wrapper.NewHTTPResponseFromError(err).JSON(c.Response())
	}

	res, err := h.uc.AuthenticateOwner(ctx, c.Param("id"), &payload)
	if err != nil {
		return wrapper.NewHTTPResponseFromError(err).JSON(c.Response())
	}
	return wrapper.NewHTTPResponse(http.StatusOK, "Success", res).JSON(c.Response())
}

func (h *RestHandler) joinMeeting(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "MeetingDeliveryREST:JoinMeeting")
	defer trace.Finish()

	var payload domain.RequestJoinMeeting
	if err := h.bindPayload(c, "meeting/join", &payload); err != nil {
		return wrapper.NewHTTPResponseFromError(err).JSON(c.Response())
	}

	res, err := h.uc.JoinMeeting(ctx, c.Param("id"), &payload)
	if err != nil {
		return wrapper.NewHTTPResponseFromError(err).JSON(c.Response())
	}
	return wrapper.NewHTTPResponse(http.StatusCreated, "Success join meeting", res).JSON(c.Response())
}

func (h *RestHandler) vote(successMessage string) echo.HandlerFunc {
	return func(c echo.Context) error {
		trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "MeetingDeliveryREST:Vote")
		defer trace.Finish()

		var payload domain.RequestVote
		if err := h.bindPayload(c, "meeting/vote", &payload); err != nil {
			return wrapper.NewHTTPResponseFromError(err).JSON(c.Response())
		}

		if err := h.uc.Vote(ctx, c.Param("id"), &payload); err != nil {
			return wrapper.NewHTTPResponseFromError(err).JSON(c.Response())
		}
		return wrapper.NewHTTPResponse(http.StatusOK, successMessage).JSON(c.Response())
	}
}

func (h *RestHandler) getVoteTally(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "MeetingDeliveryREST:GetVoteTally")
	defer trace.Finish()

	data, err := h.uc.GetVoteTally(ctx, c.Param("id"))
	if err != nil {
		return wrapper.NewHTTPResponseFromError(err).JSON(c.Response())
	}
	return wrapper.NewHTTPResponse(http.StatusOK, "Success", data).JSON(c.Response())
}

func (h *RestHandler) getVoters(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "MeetingDeliveryREST:GetVoters")
	defer trace.Finish()

	data, err := h.uc.GetVoters(ctx, c.Param("id"), c.Param("dateOptionId"))
	if err != nil {
		return wrapper.NewHTTPResponseFromError(err).JSON(c.Response())
	}
	return wrapper.NewHTTPResponse(http.StatusOK, "Success", data).JSON(c.Response())
}
