package docket

import (
	"context"

	"go.uber.org/zap"

	"github.com/linesmerrill/court-docket-api/integrity"
	"github.com/linesmerrill/court-docket-api/models"
	v "github.com/linesmerrill/court-docket-api/validation"
)

// CreateUserInput holds the fields accepted when creating a user
type CreateUserInput struct {
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

// UpdateUserInput holds the fields a partial user update may change. Nil
// fields are left as they are.
type UpdateUserInput struct {
	Username *string      `json:"username"`
	Email    *string      `json:"email"`
	Password *string      `json:"password"`
	Role     *models.Role `json:"role"`
}

// CreateUser validates and stores a new user account
func (s *Service) CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	user, err := s.createUser(ctx, in)
	if err = finish("createUser", err); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) createUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	err := v.Require(
		v.Text("username", in.Username),
		v.Text("email", in.Email),
		v.Text("password", in.Password),
		v.Text("role", string(in.Role)),
	)
	if err != nil {
		return nil, err
	}
	if err := v.CheckEmail(in.Email); err != nil {
		return nil, err
	}
	if err := v.CheckPassword(in.Password); err != nil {
		return nil, err
	}
	if err := v.CheckRole(in.Role); err != nil {
		return nil, err
	}

	g := s.guard()
	if err := g.UniquenessGuard(ctx, integrity.FieldUsername, in.Username, ""); err != nil {
		return nil, err
	}
	if err := g.UniquenessGuard(ctx, integrity.FieldEmail, in.Email, ""); err != nil {
		return nil, err
	}

	hashed, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		ID:        s.IDs.NewID(),
		Username:  in.Username,
		Email:     in.Email,
		Password:  hashed,
		Role:      in.Role,
		CreatedAt: s.now(),
	}
	if err := s.Users.Put(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser applies a partial update to the user with the given id
func (s *Service) UpdateUser(ctx context.Context, id string, in UpdateUserInput) (*models.User, error) {
	user, err := s.updateUser(ctx, id, in)
	if err = finish("updateUser", err); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) updateUser(ctx context.Context, id string, in UpdateUserInput) (*models.User, error) {
	var present []v.Field
	if in.Username != nil {
		present = append(present, v.Text("username", *in.Username))
	}
	if in.Email != nil {
		present = append(present, v.Text("email", *in.Email))
	}
	if in.Password != nil {
		present = append(present, v.Text("password", *in.Password))
	}
	if in.Role != nil {
		present = append(present, v.Text("role", string(*in.Role)))
	}
	if err := v.Require(present...); err != nil {
		return nil, err
	}
	if in.Email != nil {
		if err := v.CheckEmail(*in.Email); err != nil {
			return nil, err
		}
	}
	if in.Password != nil {
		if err := v.CheckPassword(*in.Password); err != nil {
			return nil, err
		}
	}
	if in.Role != nil {
		if err := v.CheckRole(*in.Role); err != nil {
			return nil, err
		}
	}

	g := s.guard()
	user, err := g.UserExists(ctx, "user", id)
	if err != nil {
		return nil, err
	}
	if in.Username != nil {
		if err := g.UniquenessGuard(ctx, integrity.FieldUsername, *in.Username, id); err != nil {
			return nil, err
		}
		user.Username = *in.Username
	}
	if in.Email != nil {
		if err := g.UniquenessGuard(ctx, integrity.FieldEmail, *in.Email, id); err != nil {
			return nil, err
		}
		user.Email = *in.Email
	}
	if in.Password != nil {
		hashed, err := s.Hasher.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}
	previousRole := user.Role
	if in.Role != nil {
		user.Role = *in.Role
	}

	now := s.now()
	user.UpdatedAt = &now
	if err := s.Users.Put(ctx, user); err != nil {
		return nil, err
	}
	if user.Role != previousRole {
		s.warnStaleReferences(ctx, user, previousRole)
	}
	return user, nil
}

// warnStaleReferences logs cases that still reference a user under a role
// the user no longer holds. References are not rewritten.
func (s *Service) warnStaleReferences(ctx context.Context, user *models.User, previous models.Role) {
	if previous != models.RoleJudge && previous != models.RoleLawyer {
		return
	}
	cases, err := s.Cases.Scan(ctx)
	if err != nil {
		zap.S().Warnw("failed to scan cases for stale references", "userID", user.ID, "error", err)
		return
	}
	var stale []string
	for _, c := range cases {
		if (previous == models.RoleJudge && c.JudgeID == user.ID) || (previous == models.RoleLawyer && c.HasLawyer(user.ID)) {
			stale = append(stale, c.ID)
		}
	}
	if len(stale) > 0 {
		zap.S().Warnw("user role changed while referenced by cases",
			"userID", user.ID,
			"previousRole", previous,
			"role", user.Role,
			"caseIDs", stale,
		)
	}
}

// DeleteUser removes the user with the given id. Cases and hearings that
// reference the user are left untouched.
func (s *Service) DeleteUser(ctx context.Context, id string) error {
	err := s.Users.Delete(ctx, id)
	if isNotFound(err) {
		err = models.NotFound("user", id)
	}
	return finish("deleteUser", err)
}
