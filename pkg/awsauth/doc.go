// Package awsauth derives AWS credentials for the remote secret store.
//
// Variables are read through an env.Source with an optional prefix, so
// GCONFIG_AWS_ACCESS_KEY_ID is used when the prefix is "GCONFIG_". When the
// process runs on Lambda, ECS or EC2 the SDK default chain is used instead,
// and without a session token the long-lived keys are exchanged for role
// credentials through STS.
package awsauth
