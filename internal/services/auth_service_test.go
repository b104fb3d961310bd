package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"ellp/voluntariado/internal/apperrors"
	"ellp/voluntariado/internal/auth"
	"ellp/voluntariado/internal/constants"
	"ellp/voluntariado/internal/db/repositories"
	"ellp/voluntariado/internal/models/dtos"
	gormModels "ellp/voluntariado/internal/models/gorm"

	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	issuer := auth.NewIssuer([]byte("test-secret"), time.Hour)
	return NewAuthService(repositories.NewUserRepository(db), issuer)
}

func registerTestUser(t *testing.T, svc *AuthService, nome, email, password, role string) *dtos.UserSummary {
	t.Helper()

	user, err := svc.Register(context.Background(), dtos.RegisterRequest{
		Nome:     nome,
		Email:    email,
		Password: password,
		Role:     role,
	})
	if err != nil {
		t.Fatalf("Failed to register %q: %v", email, err)
	}
	return user
}

func TestAuthService_Login_Success(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	registerTestUser(t, svc, "Maria", "maria@ellp.com", "senha123", "coordenador")

	resp, err := svc.Login(context.Background(), dtos.LoginRequest{
		Email:    "Maria@ELLP.com",
		Password: "senha123",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if resp.Token == "" {
		t.Error("Expected a token")
	}
	if resp.User.Role != "coordenador" {
		t.Errorf("Expected coordenador role, got %q", resp.User.Role)
	}
}

func TestAuthService_Login_WrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	registerTestUser(t, svc, "Maria", "maria@ellp.com", "senha123", "")

	_, errWrongPwd := svc.Login(context.Background(), dtos.LoginRequest{
		Email:    "maria@ellp.com",
		Password: "errada",
	})
	_, errUnknown := svc.Login(context.Background(), dtos.LoginRequest{
		Email:    "ninguem@ellp.com",
		Password: "senha123",
	})

	for _, err := range []error{errWrongPwd, errUnknown} {
		if !errors.Is(err, apperrors.ErrUnauthorized) {
			t.Fatalf("Expected unauthorized, got %v", err)
		}
		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) || appErr.Message != constants.MsgInvalidCredentials {
			t.Fatalf("Expected the generic credential message, got %v", err)
		}
	}
}

func TestAuthService_Login_DisabledUser(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	user := registerTestUser(t, svc, "Inativo", "inativo@ellp.com", "senha123", "")
	if err := db.Model(&gormModels.User{}).Where("id = ?", user.ID).Update("ativo", false).Error; err != nil {
		t.Fatalf("Failed to deactivate user: %v", err)
	}

	_, err := svc.Login(context.Background(), dtos.LoginRequest{
		Email:    "inativo@ellp.com",
		Password: "senha123",
	})
	if !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("Expected unauthorized, got %v", err)
	}
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Message != constants.MsgUserDisabled {
		t.Fatalf("Expected the disabled-user message, got %v", err)
	}
}

func TestAuthService_Register_DowngradesAdmin(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	user := registerTestUser(t, svc, "Esperto", "esperto@ellp.com", "senha123", "admin")
	if user.Role != "visitante" {
		t.Errorf("Expected requested admin to be downgraded to visitante, got %q", user.Role)
	}

	coord := registerTestUser(t, svc, "Coordenadora", "coord@ellp.com", "senha123", "Coordenador")
	if coord.Role != "coordenador" {
		t.Errorf("Expected coordenador to be kept (case-insensitive), got %q", coord.Role)
	}

	blank := registerTestUser(t, svc, "Comum", "comum@ellp.com", "senha123", "")
	if blank.Role != "visitante" {
		t.Errorf("Expected default visitante, got %q", blank.Role)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	registerTestUser(t, svc, "Primeira", "dupla@ellp.com", "senha123", "")

	_, err := svc.Register(context.Background(), dtos.RegisterRequest{
		Nome:     "Segunda",
		Email:    "DUPLA@ellp.com",
		Password: "senha456",
	})
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("Expected conflict on duplicate email, got %v", err)
	}
}

func TestAuthService_UpdateMe_PasswordChangeNeedsCurrent(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	user := registerTestUser(t, svc, "Troca", "troca@ellp.com", "antiga123", "")

	_, err := svc.UpdateMe(context.Background(), user.ID, dtos.UpdateMeRequest{
		NewPassword: "nova123",
	})
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("Expected validation without current password, got %v", err)
	}

	_, err = svc.UpdateMe(context.Background(), user.ID, dtos.UpdateMeRequest{
		CurrentPassword: "errada",
		NewPassword:     "nova123",
	})
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("Expected validation with wrong current password, got %v", err)
	}

	if _, err := svc.UpdateMe(context.Background(), user.ID, dtos.UpdateMeRequest{
		CurrentPassword: "antiga123",
		NewPassword:     "nova123",
	}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := svc.Login(context.Background(), dtos.LoginRequest{
		Email:    "troca@ellp.com",
		Password: "nova123",
	}); err != nil {
		t.Fatalf("Expected login with new password, got %v", err)
	}
}

func TestAuthService_SeedDefaultAdmin_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	if err := svc.SeedDefaultAdmin(context.Background()); err != nil {
		t.Fatalf("Expected no error on first seed, got %v", err)
	}
	if err := svc.SeedDefaultAdmin(context.Background()); err != nil {
		t.Fatalf("Expected no error on second seed, got %v", err)
	}

	var count int64
	if err := db.Model(&gormModels.User{}).Where("role = ?", constants.RoleAdmin).Count(&count).Error; err != nil {
		t.Fatalf("Failed to count admins: %v", err)
	}
	if count != 1 {
		t.Fatalf("Expected exactly 1 admin after two seeds, got %d", count)
	}
}
