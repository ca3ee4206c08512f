// Package secretstore defines the remote secret store contract used by the
// resolver, with an AWS Secrets Manager implementation and an in-memory one.
//
// Keys are plain strings. A namespace prefix is joined with "/":
//
//	store := secretstore.NewAWS(awsCfg)
//	v, err := store.GetSecret(ctx, secretstore.Key("centaur", "FOO"))
//	if secretstore.IsNotFound(err) {
//		// absent
//	}
package secretstore
