package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/nativoenglish/lingo/pkg/jwtx"
)

const signingKID = "lingo-1"

// initSigningKeys loads the Ed25519 signing key from the configured PEM
// file, or generates an ephemeral one. With an ephemeral key every
// outstanding token dies on restart, which is acceptable for dev.
func initSigningKeys(cfg Config, logger *slog.Logger) (jwtx.Signer, *jwtx.KeySet, error) {
	var (
		signer *jwtx.EdDSASigner
		err    error
	)

	if cfg.SigningKeyFile != "" {
		pemKey, readErr := os.ReadFile(cfg.SigningKeyFile)
		if readErr != nil {
			return nil, nil, fmt.Errorf("failed to read signing key: %w", readErr)
		}
		signer, err = jwtx.NewSignerEdDSA(signingKID, pemKey)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load signing key: %w", err)
		}
		logger.Info("signing key loaded", "file", cfg.SigningKeyFile, "kid", signingKID)
	} else {
		signer, err = jwtx.GenerateSignerEdDSA(signingKID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to generate signing key: %w", err)
		}
		logger.Warn("using ephemeral signing key; tokens will not survive a restart")
	}

	keys := jwtx.NewKeySet()
	keys.AddSigner(signer)

	return signer, keys, nil
}
