package docket

import (
	"context"

	"go.uber.org/zap"

	"github.com/linesmerrill/court-docket-api/validation"
)

// RehashLegacyPasswords rewrites every password still stored with the legacy
// reversible transform as a bcrypt hash. Users already on bcrypt are left
// alone. With dryRun set nothing is written. It returns the number of users
// that were (or would be) migrated.
func (s *Service) RehashLegacyPasswords(ctx context.Context, dryRun bool) (int, error) {
	users, err := s.Users.Scan(ctx)
	if err != nil {
		return 0, fault("rehashPasswords", err)
	}

	bcryptHasher, ok := s.Hasher.(validation.BcryptHasher)
	if !ok {
		bcryptHasher = validation.BcryptHasher{}
	}

	migrated := 0
	for i := range users {
		u := &users[i]
		if u.Password == "" || validation.IsBcryptHash(u.Password) {
			continue
		}
		migrated++
		if dryRun {
			zap.S().Infow("would rehash legacy password", "userId", u.ID)
			continue
		}
		hashed, err := bcryptHasher.Hash(validation.Deobfuscate(u.Password))
		if err != nil {
			return migrated - 1, fault("rehashPasswords", err)
		}
		u.Password = hashed
		if err := s.Users.Put(ctx, u); err != nil {
			return migrated - 1, fault("rehashPasswords", err)
		}
		zap.S().Infow("rehashed legacy password", "userId", u.ID)
	}
	return migrated, nil
}
