package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"

	"github.com/goliatone/go-gconfig/pkg/config"
	"github.com/goliatone/go-gconfig/pkg/env"
	"github.com/goliatone/go-gconfig/pkg/gconfig"
	"github.com/goliatone/go-gconfig/pkg/logger"
	"github.com/goliatone/go-gconfig/pkg/value"
)

var errMissing = errors.New("required value not found")

type cli struct {
	app *kingpin.Application

	envPrefix    *string
	remotePrefix *string
	region       *string
	endpoint     *string
	overrides    *map[string]string
	logLevel     *string

	get         *kingpin.CmdClause
	getType     *string
	getEnv      *string
	getRemote   *string
	getDefault  *string
	getHasDflt  bool
	getRequired *bool

	put      *kingpin.CmdClause
	putMode  *string
	putKey   *string
	putValue *string
}

func newCLI() *cli {
	c := &cli{app: kingpin.New("gconfig", "Resolve configuration values from the environment and AWS Secrets Manager")}
	c.envPrefix = c.app.Flag("env-prefix", "Prefix applied to every environment key").Envar("GCONFIG_ENV_PREFIX").String()
	c.remotePrefix = c.app.Flag("remote-prefix", "Namespace prefix for Secrets Manager keys").Envar("GCONFIG_REMOTE_PREFIX").String()
	c.region = c.app.Flag("region", "AWS region used when AWS_REGION is not set").String()
	c.endpoint = c.app.Flag("endpoint", "Secrets Manager endpoint override").Envar("GCONFIG_ENDPOINT").String()
	c.overrides = c.app.Flag("set", "Environment override (KEY=VALUE), checked before the process environment").StringMap()
	c.logLevel = c.app.Flag("log-level", "Log level (debug, info, warn, error)").Default("warn").String()

	c.get = c.app.Command("get", "Resolve a value")
	c.getType = c.get.Flag("type", "Value type").Default("string").Enum("string", "number", "boolean")
	c.getEnv = c.get.Flag("env", "Environment key").String()
	c.getRemote = c.get.Flag("remote", "Secrets Manager key").String()
	c.getDefault = c.get.Flag("default", "Default value").IsSetByUser(&c.getHasDflt).String()
	c.getRequired = c.get.Flag("required", "Fail when the value cannot be resolved").Bool()

	c.put = c.app.Command("put", "Write a value to Secrets Manager")
	c.putMode = c.put.Flag("mode", "create, update, or upsert").Default("upsert").Enum("create", "update", "upsert")
	c.putKey = c.put.Arg("key", "Secrets Manager key").Required().String()
	c.putValue = c.put.Arg("value", "Secret value").Required().String()
	return c
}

func main() {
	c := newCLI()
	command := kingpin.MustParse(c.app.Parse(os.Args[1:]))

	log, err := logger.NewProduction(*c.logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	if err := c.run(context.Background(), command, os.Stdout, log); err != nil {
		log.Error("gconfig command failed", logger.F("command", command), logger.Err(err))
		os.Exit(1)
	}
}

func (c *cli) settings() (config.Settings, error) {
	return config.Load(config.Settings{
		EnvPrefix:    *c.envPrefix,
		RemotePrefix: *c.remotePrefix,
		Region:       *c.region,
		Endpoint:     *c.endpoint,
	})
}

func (c *cli) run(ctx context.Context, command string, out io.Writer, log logger.Logger, opts ...gconfig.Option) error {
	settings, err := c.settings()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	missing := false
	base := []gconfig.Option{
		gconfig.WithSettings(settings),
		gconfig.WithEnv(env.Chain(env.Map(*c.overrides), env.OS())),
		gconfig.WithLogger(log),
		gconfig.WithNotFound(func(nf gconfig.NotFound) {
			missing = true
			log.Warn("required value not found",
				logger.F("env", nf.Env),
				logger.F("remote", nf.Remote),
			)
		}),
	}
	cfg := gconfig.New(append(base, opts...)...)

	switch command {
	case c.get.FullCommand():
		typ, err := value.ParseType(*c.getType)
		if err != nil {
			return err
		}
		l := gconfig.Lookup{
			Env:      *c.getEnv,
			Remote:   *c.getRemote,
			Required: *c.getRequired,
		}
		if c.getHasDflt {
			l.Default = gconfig.Default(*c.getDefault)
		}
		res, err := cfg.Resolve(ctx, typ, l)
		if err != nil {
			return err
		}
		if missing {
			return errMissing
		}
		if !res.Found() {
			return nil
		}
		_, err = fmt.Fprintln(out, render(typ, res.Value))
		return err

	case c.put.FullCommand():
		switch *c.putMode {
		case "create":
			return cfg.CreateSecret(ctx, *c.putKey, *c.putValue)
		case "update":
			return cfg.UpdateSecret(ctx, *c.putKey, *c.putValue)
		default:
			return cfg.PutSecret(ctx, *c.putKey, *c.putValue)
		}
	}
	return fmt.Errorf("unknown command %q", command)
}

func render(typ value.Type, raw string) string {
	s, ok := value.AsString(value.Parse(typ, raw))
	if !ok {
		return raw
	}
	return s
}
