package candihelper

const (
	// TimeFormatLogger const
	TimeFormatLogger = "2006/01/02 15:04:05"

	// Byte ...
	Byte uint64 = 1
	// KByte ...
	KByte = Byte * 1024
	// MByte ...
	MByte = KByte * 1024

	// WORKDIR const for workdir environment
	WORKDIR = "WORKDIR"

	// HeaderContentType const
	HeaderContentType = "Content-Type"
	// HeaderMIMEApplicationJSON const
	HeaderMIMEApplicationJSON = "application/json"
	// HeaderAuthorization const
	HeaderAuthorization = "Authorization"
	// HeaderXRequestID const
	HeaderXRequestID = "X-Request-Id"
	// HeaderDisableTrace const
	HeaderDisableTrace = "X-Disable-Trace"
)
