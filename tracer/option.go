package tracer

type (
	// Option for init tracer option
	Option struct {
		agentHost      string
		level          string
		buildNumberTag string
		maxPacketSize  int
		traceDashboard string
		errorWhitelist []error
	}

	// OptionFunc func
	OptionFunc func(*Option)
)

// OptionSetAgentHost option func
func OptionSetAgentHost(agent string) OptionFunc {
	return func(o *Option) {
		o.agentHost = agent
	}
}

// OptionSetLevel option func, appended to service name
func OptionSetLevel(level string) OptionFunc {
	return func(o *Option) {
		o.level = level
	}
}

// OptionSetBuildNumberTag option func
func OptionSetBuildNumberTag(number string) OptionFunc {
	return func(o *Option) {
		o.buildNumberTag = number
	}
}

// OptionSetMaxPacketSize option func, log value bigger than this size is replaced with overflow notice
func OptionSetMaxPacketSize(size int) OptionFunc {
	return func(o *Option) {
		o.maxPacketSize = size
	}
}

// OptionSetTraceDashboard option func
func OptionSetTraceDashboard(url string) OptionFunc {
	return func(o *Option) {
		o.traceDashboard = url
	}
}

// OptionSetErrorWhitelist option func, listed errors are not flagged as span error
func OptionSetErrorWhitelist(errs []error) OptionFunc {
	return func(o *Option) {
		o.errorWhitelist = errs
	}
}
