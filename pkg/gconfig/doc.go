// Package gconfig resolves named configuration values from the process
// environment and AWS Secrets Manager.
//
// Each lookup checks, in order, the environment (with an optional prefix),
// the remote store (with an optional "<prefix>/" namespace), a default, and
// finally whether the value is required:
//
//	cfg := gconfig.New(
//		gconfig.WithEnvPrefix("GCONFIG_"),
//		gconfig.WithRemotePrefix("centaur"),
//		gconfig.WithNotFound(func(nf gconfig.NotFound) {
//			log.Printf("missing %s", nf.Env)
//		}),
//	)
//	user, ok, err := cfg.String(ctx, gconfig.Lookup{Env: "FOO", Remote: "FOO", Required: true})
//
// The Secrets Manager client is built lazily from GCONFIG_AWS_* variables, an
// STS role assumption, or the ambient identity when running on Lambda, ECS or
// EC2. A failed bootstrap is retried on the next lookup.
//
// Every successful env or remote read is recorded in EnvCache or RemoteCache.
// The caches are observational: lookups always go back to the sources.
package gconfig
