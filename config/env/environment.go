package env

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golangid/meetup/candihelper"
	"github.com/joho/godotenv"
)

// Env model
type Env struct {
	ServiceName string
	BuildNumber string
	// Env on application
	Environment       string
	LoadConfigTimeout time.Duration

	DebugMode bool

	// HTTPPort config
	HTTPPort     uint16
	HTTPRootPath string

	// JaegerTracingHost env, tracing disabled if empty
	JaegerTracingHost string
	// JaegerMaxPacketSize env
	JaegerMaxPacketSize int

	// Database environment
	DbMongoWriteHost, DbMongoReadHost string
	DbMongoDatabaseName               string

	// Redis environment, attempt limiter disabled if host empty
	RedisHost, RedisPort, RedisAuth string
	RedisUseTLS                     bool

	// CORS Environment
	CORSAllowOrigins, CORSAllowMethods, CORSAllowHeaders []string
	CORSAllowCredential                                  bool

	// OrganizerTokenSecret HMAC key for organizer token
	OrganizerTokenSecret string
	// OrganizerTokenTTL lifetime of organizer token
	OrganizerTokenTTL time.Duration

	// AuthMaxAttempt failed password attempt allowed in AuthAttemptWindow
	AuthMaxAttempt    int
	AuthAttemptWindow time.Duration

	// BcryptCost hash cost of stored secret
	BcryptCost int

	StartAt string
}

var env Env

// BaseEnv get global basic environment
func BaseEnv() Env {
	return env
}

// SetEnv set env for mocking data env
func SetEnv(newEnv Env) {
	env = newEnv
}

// Load environment from .env file in WORKDIR and process environment, panic if required environment is missing
func Load(serviceName string) {
	if err := godotenv.Load(os.Getenv(candihelper.WORKDIR) + ".env"); err != nil {
		log.Printf("Warning: load env, %v", err)
	}

	newEnv, mErrs := Parse(serviceName)
	if mErrs.HasError() {
		panic("Basic environment error: \n" + mErrs.Error())
	}
	env = newEnv
}

// Parse read environment variable to Env
func Parse(serviceName string) (e Env, mErrs candihelper.MultiError) {
	mErrs = candihelper.NewMultiError()
	e.ServiceName = serviceName
	e.BuildNumber = os.Getenv("BUILD_NUMBER")
	e.Environment = os.Getenv("ENVIRONMENT")
	e.DebugMode = candihelper.GetEnvBool("DEBUG_MODE", true)
	e.LoadConfigTimeout = candihelper.GetEnvDuration("LOAD_CONFIG_TIMEOUT", 10*time.Second)

	httpPort := candihelper.GetEnvInt("HTTP_PORT", 3001)
	if httpPort <= 0 || httpPort > 65535 {
		mErrs.Append("HTTP_PORT", errors.New("HTTP_PORT environment must be valid port number"))
	}
	e.HTTPPort = uint16(httpPort)
	e.HTTPRootPath = strings.TrimSuffix(os.Getenv("HTTP_ROOT_PATH"), "/")

	e.JaegerTracingHost = os.Getenv("JAEGER_TRACING_HOST")
	maxPacketSize := candihelper.GetEnvInt("JAEGER_MAX_PACKET_SIZE", 65000)
	if maxPacketSize < 0 {
		maxPacketSize = 65000 // default max packet size of UDP
	}
	e.JaegerMaxPacketSize = maxPacketSize * int(candihelper.Byte)

	parseDatabaseEnv(&e, mErrs)
	parseCorsEnv(&e)
	parseAuthEnv(&e, mErrs)

	e.StartAt = time.Now().Format(time.RFC3339)
	return e, mErrs
}

func parseDatabaseEnv(e *Env, mErrs candihelper.MultiError) {
	var ok bool
	e.DbMongoWriteHost, ok = os.LookupEnv("MONGODB_HOST_WRITE")
	if !ok || e.DbMongoWriteHost == "" {
		mErrs.Append("MONGODB_HOST_WRITE", errors.New("missing MONGODB_HOST_WRITE environment"))
	}
	e.DbMongoReadHost = os.Getenv("MONGODB_HOST_READ")
	e.DbMongoDatabaseName = os.Getenv("MONGODB_DATABASE")
	if e.DbMongoDatabaseName == "" {
		e.DbMongoDatabaseName = "meetup"
	}

	e.RedisHost = os.Getenv("REDIS_HOST")
	e.RedisPort = os.Getenv("REDIS_PORT")
	if e.RedisPort == "" {
		e.RedisPort = "6379"
	}
	e.RedisAuth = os.Getenv("REDIS_AUTH")
	e.RedisUseTLS = candihelper.GetEnvBool("REDIS_TLS", false)
}

func parseCorsEnv(e *Env) {
	if origins := os.Getenv("CORS_ALLOW_ORIGINS"); origins == "" {
		e.CORSAllowOrigins = []string{"*"}
	} else {
		e.CORSAllowOrigins = strings.Split(origins, ",")
	}
	if methods := os.Getenv("CORS_ALLOW_METHODS"); methods == "" {
		e.CORSAllowMethods = []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPut,
			http.MethodPatch,
			http.MethodPost,
			http.MethodDelete,
		}
	} else {
		e.CORSAllowMethods = strings.Split(methods, ",")
	}
	if headers := os.Getenv("CORS_ALLOW_HEADERS"); headers != "" {
		e.CORSAllowHeaders = strings.Split(headers, ",")
	}
	e.CORSAllowCredential = candihelper.GetEnvBool("CORS_ALLOW_CREDENTIAL", false)
}

func parseAuthEnv(e *Env, mErrs candihelper.MultiError) {
	var ok bool
	e.OrganizerTokenSecret, ok = os.LookupEnv("ORGANIZER_TOKEN_SECRET")
	if !ok || e.OrganizerTokenSecret == "" {
		mErrs.Append("ORGANIZER_TOKEN_SECRET", errors.New("missing ORGANIZER_TOKEN_SECRET environment"))
	}
	e.OrganizerTokenTTL = candihelper.GetEnvDuration("ORGANIZER_TOKEN_TTL", 24*time.Hour)

	e.AuthMaxAttempt = candihelper.GetEnvInt("AUTH_MAX_ATTEMPT", 5)
	e.AuthAttemptWindow = candihelper.GetEnvDuration("AUTH_ATTEMPT_WINDOW", 5*time.Minute)

	e.BcryptCost = candihelper.GetEnvInt("BCRYPT_COST", 10)
	if e.BcryptCost < 4 || e.BcryptCost > 31 {
		mErrs.Append("BCRYPT_COST", errors.New("BCRYPT_COST environment must between 4 and 31"))
	}
}
