package logic

import (
	"time"

	"federblog/dal"
	"federblog/shared"
)

// EnsureLocalActor creates the local actor row with a fresh key pair on first
// startup. The key pair is never regenerated, or followers would stop
// trusting our signatures.
func EnsureLocalActor(cfg *shared.Config, logger shared.ILogger, repo dal.IRepo, keyStore IKeyStore) error {

	actor, err := repo.GetLocalActor()
	if err != nil {
		return err
	}
	if actor != nil {
		logger.Infof("Local actor '%s' present", actor.Username)
		return nil
	}

	logger.Printf("No local actor yet; generating key pair for '%s'", cfg.Actor.User)
	pubKey, privKey, err := keyStore.MakeKeyPair()
	if err != nil {
		return err
	}

	return repo.AddLocalActor(&dal.LocalActor{
		CreatedAt:   time.Now().UTC(),
		Username:    cfg.Actor.User,
		DisplayName: cfg.Actor.DisplayName,
		Summary:     cfg.Actor.Summary,
		PubKey:      pubKey,
		PrivKey:     privKey,
	})
}
