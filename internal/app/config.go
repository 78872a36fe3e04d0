package app

import (
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type config struct {
	port        int
	env         string
	staticDir   string
	corsOrigins []string
	db          struct {
		dsn          string
		maxOpenConns int
		maxIdleTime  time.Duration
	}
	redis struct {
		url          string
		maxOpenConns int
		maxIdleConns int
		maxIdleTime  time.Duration
	}
	smtp struct {
		host     string
		port     int
		username string
		password string
		sender   string
	}
	stripe struct {
		secretKey      string
		publishableKey string
		webhookSecret  string
	}
	session struct {
		idleTimeout time.Duration
	}
	webhookEventTTL  time.Duration
	otelCollectorUrl string
	sentryDsn        string
	displayVersion   bool
}

// loadConfig parses the command line flags. Every flag can also be set through
// an environment variable named after it, e.g. --stripe-secret-key and
// STRIPE_SECRET_KEY.
func loadConfig(args []string) (config, error) {
	var cfg config

	fs := pflag.NewFlagSet("api", pflag.ContinueOnError)

	fs.Int("port", 4242, "server port")
	fs.String("env", "dev", "Environment (dev|staging|prod)")
	fs.String("static-dir", "./client/build", "Directory of the built client assets")
	fs.StringSlice("cors-origins", []string{"*"}, "Allowed CORS origins, comma separated")

	fs.String("db-dsn", "", "PostgreSQL DSN")
	fs.Int("db-max-open-conns", 25, "PostgreSQL max open connections")
	fs.Duration("db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")

	fs.String("redis-url", "", "Redis URL")
	fs.Int("redis-max-open-conns", 25, "Redis max open connections")
	fs.Int("redis-max-idle-conns", 10, "Redis max idle connections")
	fs.Duration("redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	fs.String("smtp-host", "sandbox.smtp.mailtrap.io", "SMTP host")
	fs.Int("smtp-port", 2525, "SMTP port")
	fs.String("smtp-username", "", "SMTP username")
	fs.String("smtp-password", "", "SMTP password")
	fs.String("smtp-sender", "Lessons <no-reply@lessons.example.com>", "SMTP sender")

	fs.String("stripe-secret-key", "", "Stripe secret key")
	fs.String("stripe-publishable-key", "", "Stripe publishable key handed to the client")
	fs.String("stripe-webhook-secret", "", "Stripe webhook signing secret")

	fs.Duration("session-idle-timeout", 20*time.Minute, "Idle timeout of browser sessions")
	fs.Duration("webhook-event-ttl", 24*time.Hour, "How long processed webhook event ids are remembered")

	fs.String("otel-collector-url", "", "OpenTelemetry collector gRPC endpoint")
	fs.String("sentry-dsn", "", "Sentry DSN")

	fs.Bool("version", false, "Display version and exit")

	err := fs.Parse(args)
	if err != nil {
		return cfg, err
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	err = v.BindPFlags(fs)
	if err != nil {
		return cfg, err
	}

	cfg.port = v.GetInt("port")
	cfg.env = v.GetString("env")
	cfg.staticDir = v.GetString("static-dir")
	cfg.corsOrigins = splitList(v.GetStringSlice("cors-origins"))

	cfg.db.dsn = v.GetString("db-dsn")
	cfg.db.maxOpenConns = v.GetInt("db-max-open-conns")
	cfg.db.maxIdleTime = v.GetDuration("db-max-idle-time")

	cfg.redis.url = v.GetString("redis-url")
	cfg.redis.maxOpenConns = v.GetInt("redis-max-open-conns")
	cfg.redis.maxIdleConns = v.GetInt("redis-max-idle-conns")
	cfg.redis.maxIdleTime = v.GetDuration("redis-max-idle-time")

	cfg.smtp.host = v.GetString("smtp-host")
	cfg.smtp.port = v.GetInt("smtp-port")
	cfg.smtp.username = v.GetString("smtp-username")
	cfg.smtp.password = v.GetString("smtp-password")
	cfg.smtp.sender = v.GetString("smtp-sender")

	cfg.stripe.secretKey = v.GetString("stripe-secret-key")
	cfg.stripe.publishableKey = v.GetString("stripe-publishable-key")
	cfg.stripe.webhookSecret = v.GetString("stripe-webhook-secret")

	cfg.session.idleTimeout = v.GetDuration("session-idle-timeout")
	cfg.webhookEventTTL = v.GetDuration("webhook-event-ttl")

	cfg.otelCollectorUrl = v.GetString("otel-collector-url")
	cfg.sentryDsn = v.GetString("sentry-dsn")

	cfg.displayVersion = v.GetBool("version")

	return cfg, nil
}

// splitList splits every value on commas. Environment variables reach viper as
// a single string, which it only splits on whitespace.
func splitList(values []string) []string {
	var list []string

	for _, value := range values {
		for _, item := range strings.Split(value, ",") {
			item = strings.TrimSpace(item)
			if item != "" {
				list = append(list, item)
			}
		}
	}

	return list
}
