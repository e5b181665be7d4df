package restserver

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo"

	"github.com/golangid/meetup/candishared"
	"github.com/golangid/meetup/logger"
)

// EchoCORSMiddleware middleware
func EchoCORSMiddleware(allowMethods, allowHeaders, allowOrigins []string, allowCredential bool) echo.MiddlewareFunc {
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"*"}
	}
	if len(allowMethods) == 0 {
		allowMethods = []string{http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete}
	}
	allowMethod := strings.Join(allowMethods, ",")
	allowHeader := strings.Join(allowHeaders, ",")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {

			req := c.Request()
			res := c.Response()
			origin := req.Header.Get(echo.HeaderOrigin)
			allowOrigin := ""

			// Check allowed origins
			for _, o := range allowOrigins {
				if o == "*" && allowCredential {
					allowOrigin = origin
					break
				}
				if o == "*" || o == origin {
					allowOrigin = o
					break
				}
			}

			// Simple request
			if req.Method != http.MethodOptions {
				res.Header().Add(echo.HeaderVary, echo.HeaderOrigin)
				res.Header().Set(echo.HeaderAccessControlAllowOrigin, allowOrigin)
				if allowCredential {
					res.Header().Set(echo.HeaderAccessControlAllowCredentials, "true")
				}
				return next(c)
			}

			// Preflight request
			res.Header().Add(echo.HeaderVary, echo.HeaderOrigin)
			res.Header().Add(echo.HeaderVary, echo.HeaderAccessControlRequestMethod)
			res.Header().Add(echo.HeaderVary, echo.HeaderAccessControlRequestHeaders)
			res.Header().Set(echo.HeaderAccessControlAllowOrigin, allowOrigin)
			res.Header().Set(echo.HeaderAccessControlAllowMethods, allowMethod)
			if allowCredential {
				res.Header().Set(echo.HeaderAccessControlAllowCredentials, "true")
			}
			if allowHeader != "" {
				res.Header().Set(echo.HeaderAccessControlAllowHeaders, allowHeader)
			} else {
				h := req.Header.Get(echo.HeaderAccessControlRequestHeaders)
				if h != "" {
					res.Header().Set(echo.HeaderAccessControlAllowHeaders, h)
				}
			}
			return c.NoContent(http.StatusNoContent)
		}
	}
}

// EchoLoggerMiddleware middleware, write one json line per request
func EchoLoggerMiddleware(isActive bool, writer io.Writer) echo.MiddlewareFunc {
	bPool := &sync.Pool{
		New: func() interface{} {
			return bytes.NewBuffer(make([]byte, 256))
		},
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			if _, ok := MiddlewareExcludeURLPath[c.Request().URL.Path]; !isActive || ok {
				return next(c)
			}

			start := time.Now()
			if err = next(c); err != nil {
				c.Error(err)
			}
			stop := time.Now()

			req := c.Request()
			res := c.Response()
			buf := bPool.Get().(*bytes.Buffer)
			buf.Reset()
			defer bPool.Put(buf)

			buf.WriteString(`{"time":"`)
			buf.WriteString(stop.Format(time.RFC3339Nano))

			buf.WriteString(`","id":"`)
			id := candishared.GetRequestIDFromContext(req.Context())
			if id == "" {
				id = res.Header().Get(echo.HeaderXRequestID)
			}
			buf.WriteString(id)

			buf.WriteString(`","remote_ip":"`)
			buf.WriteString(c.RealIP())

			buf.WriteString(`","host":"`)
			buf.WriteString(req.Host)

			buf.WriteString(`","method":"`)
			buf.WriteString(req.Method)

			buf.WriteString(`","uri":"`)
			buf.WriteString(req.RequestURI)

			buf.WriteString(`","user_agent":"`)
			buf.WriteString(req.UserAgent())

			buf.WriteString(`","status":`)
			n := res.Status
			s := logger.GreenColor(n)
			switch {
			case n >= 500:
				s = logger.RedColor(n)
			case n >= 400:
				s = logger.YellowColor(n)
			case n >= 300:
				s = logger.CyanColor(n)
			}
			buf.WriteString(s)

			buf.WriteString(`,"error":"`)
			if err != nil {
				buf.WriteString(err.Error())
			}

			buf.WriteString(`","latency":`)
			l := stop.Sub(start)
			buf.WriteString(strconv.FormatInt(int64(l), 10))

			buf.WriteString(`,"latency_human":"`)
			buf.WriteString(l.String())

			buf.WriteString(`","bytes_in":`)
			cl := req.Header.Get(echo.HeaderContentLength)
			if cl == "" {
				cl = "0"
			}
			buf.WriteString(cl)

			buf.WriteString(`,"bytes_out":`)
			buf.WriteString(strconv.FormatInt(res.Size, 10))

			buf.WriteString("}\n")

			_, err = writer.Write(buf.Bytes())
			return
		}
	}
}
