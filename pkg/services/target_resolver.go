package services

import (
	"context"
	"fmt"

	"github.com/infrallm/infrallm/ent"
	"github.com/infrallm/infrallm/ent/credential"
	"github.com/infrallm/infrallm/pkg/crypto"
	"github.com/infrallm/infrallm/pkg/sshpool"
)

// NewTargetResolver builds the sshpool resolver: host row plus decrypted
// credential. Decrypted secrets go straight into the Target and are never
// logged or persisted.
func NewTargetResolver(client *ent.Client, encryptor *crypto.Encryptor) sshpool.TargetResolver {
	return func(ctx context.Context, hostID string) (*sshpool.Target, error) {
		h, err := client.Host.Get(ctx, hostID)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to load host: %w", err)
		}

		target := &sshpool.Target{
			HostID:          h.ID,
			Addr:            fmt.Sprintf("%s:%d", h.Hostname, h.Port),
			User:            h.Username,
			InsecureHostKey: h.AllowInsecureSsl,
		}
		if h.CredentialID == "" {
			return target, nil
		}

		cred, err := client.Credential.Query().
			Where(credential.ID(h.CredentialID), credential.OrganizationID(h.OrganizationID)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, sshpool.ErrNoCredential
			}
			return nil, fmt.Errorf("failed to load credential: %w", err)
		}

		// Decrypt handles legacy plaintext values itself, with a one-time
		// warning; no pre-check here.
		value, err := encryptor.Decrypt(cred.EncryptedValue)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt credential %s: %w", cred.ID, err)
		}

		switch cred.Kind {
		case credential.KindPassword:
			target.Password = value
		case credential.KindSSHKey:
			target.PrivateKeyPEM = value
		default:
			return nil, sshpool.ErrNoCredential
		}
		return target, nil
	}
}
