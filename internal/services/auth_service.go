package services

import (
	"context"
	"errors"
	"os"
	"strings"

	"ellp/voluntariado/internal/apperrors"
	"ellp/voluntariado/internal/auth"
	"ellp/voluntariado/internal/constants"
	"ellp/voluntariado/internal/db/repositories"
	"ellp/voluntariado/internal/logging"
	"ellp/voluntariado/internal/models/dtos"
	gormModels "ellp/voluntariado/internal/models/gorm"

	"golang.org/x/crypto/bcrypt"
)

// AuthService owns subject credentials: login, self-registration, profile
// reads/updates and the first-run admin seed.
type AuthService struct {
	users  *repositories.UserRepository
	issuer *auth.Issuer
}

func NewAuthService(users *repositories.UserRepository, issuer *auth.Issuer) *AuthService {
	return &AuthService{users: users, issuer: issuer}
}

func hashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", apperrors.Internal(err)
	}
	return string(hash), nil
}

func checkPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// Login verifies the credential and mints a bearer token. Unknown email and
// wrong password collapse into the same message; a deactivated subject is
// reported distinctly, as the legacy API did.
func (s *AuthService) Login(ctx context.Context, req dtos.LoginRequest) (*dtos.LoginResponse, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, apperrors.Validation("email", "Email e senha são obrigatórios")
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Unauthorized(constants.MsgInvalidCredentials)
		}
		return nil, err
	}

	if !user.Ativo {
		return nil, apperrors.Unauthorized(constants.MsgUserDisabled)
	}

	if !checkPassword(user.Senha, req.Password) {
		return nil, apperrors.Unauthorized(constants.MsgInvalidCredentials)
	}

	token, err := s.issuer.Issue(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return &dtos.LoginResponse{
		Token: token,
		User: dtos.UserSummary{
			ID:    user.ID,
			Nome:  user.Nome,
			Email: user.Email,
			Role:  user.Role.String(),
		},
	}, nil
}

// Register creates a subject. A requested admin role is downgraded to the
// lowest privilege; only the seed path may create admins.
func (s *AuthService) Register(ctx context.Context, req dtos.RegisterRequest) (*dtos.UserSummary, error) {
	if strings.TrimSpace(req.Nome) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, apperrors.Validation("email", "Nome, email e senha são obrigatórios")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	taken, err := s.users.EmailTaken(ctx, email, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.Conflict(constants.MsgEmailTaken)
	}

	role := constants.RoleVisitante
	if parsed, ok := constants.ParseRole(req.Role); ok && parsed != constants.RoleAdmin {
		role = parsed
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &gormModels.User{
		Nome:  strings.TrimSpace(req.Nome),
		Email: email,
		Senha: hash,
		Role:  role,
		Ativo: true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return &dtos.UserSummary{
		ID:    user.ID,
		Nome:  user.Nome,
		Email: user.Email,
		Role:  user.Role.String(),
	}, nil
}

func (s *AuthService) Me(ctx context.Context, userID string) (*dtos.MeResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dtos.MeResponse{
		ID:        user.ID,
		Nome:      user.Nome,
		Email:     user.Email,
		Role:      user.Role.String(),
		Ativo:     user.Ativo,
		CreatedAt: user.CreatedAt,
	}, nil
}

// UpdateMe merges profile fields. A credential change requires the current
// credential to verify first.
func (s *AuthService) UpdateMe(ctx context.Context, userID string, req dtos.UpdateMeRequest) (*dtos.UserSummary, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Nome != nil && strings.TrimSpace(*req.Nome) != "" {
		user.Nome = strings.TrimSpace(*req.Nome)
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != "" && email != user.Email {
			taken, err := s.users.EmailTaken(ctx, email, user.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, apperrors.Conflict("Email já está em uso")
			}
			user.Email = email
		}
	}

	if req.NewPassword != "" {
		if req.CurrentPassword == "" {
			return nil, apperrors.Validation("currentPassword", constants.MsgCurrentPwdRequired)
		}
		if !checkPassword(user.Senha, req.CurrentPassword) {
			return nil, apperrors.Validation("currentPassword", constants.MsgCurrentPwdWrong)
		}
		hash, err := hashPassword(req.NewPassword)
		if err != nil {
			return nil, err
		}
		user.Senha = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	return &dtos.UserSummary{
		ID:    user.ID,
		Nome:  user.Nome,
		Email: user.Email,
		Role:  user.Role.String(),
	}, nil
}

// SeedDefaultAdmin guarantees one privileged subject exists. It is a
// conditional insert keyed on the admin email; a concurrent duplicate
// insert hits the unique index and is treated as already-seeded.
func (s *AuthService) SeedDefaultAdmin(ctx context.Context) error {
	nome := os.Getenv("ADMIN_NAME")
	if nome == "" {
		nome = "Administrador"
	}
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@ellp.com"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		logging.Info("default admin already exists", "email", email)
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return err
	}

	admin := &gormModels.User{
		Nome:  nome,
		Email: strings.ToLower(email),
		Senha: hash,
		Role:  constants.RoleAdmin,
		Ativo: true,
	}
	if err := s.users.Create(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil
		}
		return err
	}

	logging.Info("default admin created", "email", email)
	return nil
}
