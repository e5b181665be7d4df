package restserver

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"strconv"

	"github.com/labstack/echo"

	"github.com/golangid/meetup/candihelper"
	"github.com/golangid/meetup/candishared"
	"github.com/golangid/meetup/logger"
	"github.com/golangid/meetup/tracer"
	"github.com/golangid/meetup/wrapper"
)

// tracerMiddleware for wrap from http inbound (request from client)
func (h *restServer) tracerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		if _, ok := MiddlewareExcludeURLPath[req.URL.Path]; ok {
			return next(c)
		}

		isDisableTrace, _ := strconv.ParseBool(req.Header.Get(candihelper.HeaderDisableTrace))
		if isDisableTrace {
			c.SetRequest(req.WithContext(tracer.SkipTraceContext(req.Context())))
			return next(c)
		}

		operationName := fmt.Sprintf("%s %s", req.Method, c.Path())

		header := map[string]string{}
		for key := range req.Header {
			header[key] = req.Header.Get(key)
		}

		trace, ctx := tracer.StartTraceFromHeader(req.Context(), operationName, header)
		defer func() {
			trace.SetTag("trace_id", tracer.GetTraceID(ctx))
			trace.Finish()
			if h.opt.debugMode {
				logger.LogGreen("rest_api > trace_url: " + tracer.GetTraceURL(ctx))
			}
		}()

		httpDump, _ := httputil.DumpRequest(req, false)
		trace.SetTag("http.url_path", req.URL.Path)
		trace.SetTag("http.method", req.Method)
		trace.SetTag("request_id", candishared.GetRequestIDFromContext(req.Context()))
		trace.Log("http.request", httpDump)

		body, _ := io.ReadAll(req.Body)
		if len(body) < h.opt.jaegerMaxPacketSize { // limit request body size (if higher tracer cannot show root span)
			trace.Log("request.body", logger.MaskLog(string(body)))
		} else {
			trace.Log("request.body.size", len(body))
		}
		req.Body = io.NopCloser(bytes.NewBuffer(body)) // reuse body

		// wrapper already tee written body to resBody
		resBody := new(bytes.Buffer)
		c.Response().Writer = wrapper.NewWrapHTTPResponseWriter(resBody, c.Response().Writer)
		c.SetRequest(req.WithContext(ctx))

		err := next(c)
		statusCode := c.Response().Status
		trace.SetTag("http.status_code", statusCode)
		if statusCode >= http.StatusBadRequest {
			trace.SetError(fmt.Errorf("resp.code:%d", statusCode))
		}

		if resBody.Len() < h.opt.jaegerMaxPacketSize {
			trace.Log("response.body", resBody.String())
		} else {
			trace.Log("response.body.size", resBody.Len())
		}
		return err
	}
}
