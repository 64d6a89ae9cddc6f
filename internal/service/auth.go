package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"alumni-jobboard-backend/internal/domain"
	"alumni-jobboard-backend/internal/logger"
	"alumni-jobboard-backend/internal/repository"
	"alumni-jobboard-backend/internal/security"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

var errInvalidCredentials = domain.NewError(domain.KindUnauthenticated, "invalid email or password", nil)

type RegisterInput struct {
	Email       string             `json:"email"`
	Password    string             `json:"password"`
	FullName    string             `json:"full_name"`
	Company     string             `json:"company"`
	AccountType domain.AccountType `json:"account_type"`
	IDNumber    string             `json:"id_number"`
}

func (in *RegisterInput) validate() error {
	in.Email = strings.TrimSpace(in.Email)
	in.FullName = strings.TrimSpace(in.FullName)
	in.Company = strings.TrimSpace(in.Company)
	in.IDNumber = strings.TrimSpace(in.IDNumber)

	if _, err := mail.ParseAddress(in.Email); err != nil {
		return invalidInput("a valid email is required")
	}
	if len(in.Password) < minPasswordLength {
		return invalidInput("password must be at least 8 characters")
	}
	if in.FullName == "" {
		return invalidInput("full name is required")
	}
	if !in.AccountType.Valid() {
		return invalidInput("account type must be alumni or employer")
	}
	if in.AccountType == domain.AccountTypeAlumni && in.IDNumber == "" {
		return invalidInput("student id number is required for alumni")
	}
	if in.AccountType == domain.AccountTypeEmployer && in.Company == "" {
		return invalidInput("company is required for employers")
	}
	return nil
}

type authService struct {
	accountRepo repository.AccountRepository
	roleRepo    repository.RoleRepository
	profileRepo repository.VerificationRepository
	tokens      security.TokenManager
	hashCost    int
}

func NewAuthService(
	accountRepo repository.AccountRepository,
	roleRepo repository.RoleRepository,
	profileRepo repository.VerificationRepository,
	tokens security.TokenManager,
) AuthService {
	return &authService{
		accountRepo: accountRepo,
		roleRepo:    roleRepo,
		profileRepo: profileRepo,
		tokens:      tokens,
		hashCost:    bcrypt.DefaultCost,
	}
}

// Register creates the account, its default alumni role and a pending
// verification profile. The writes are sequential; a failure part way leaves
// an account that reads as alumni/pending, which is the same as a fresh one.
func (s *authService) Register(ctx context.Context, in RegisterInput) (*domain.Account, error) {
	logger.EnterMethod("authService.Register", "email", in.Email, "accountType", in.AccountType)

	if err := in.validate(); err != nil {
		return nil, err
	}

	if _, err := s.accountRepo.GetByEmail(ctx, in.Email); err == nil {
		return nil, invalidInput("email already registered")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, storeError(err, "failed to look up email")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.hashCost)
	if err != nil {
		return nil, domain.NewError(domain.KindInvalidInput, "password cannot be used", err)
	}

	account := &domain.Account{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(in.Email),
		PasswordHash: string(hash),
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, domain.NewError(domain.KindInvalidInput, "email already registered", err)
		}
		return nil, storeError(err, "failed to create account")
	}

	if err := s.roleRepo.Append(ctx, &domain.RoleAssignment{
		AccountID:  account.ID,
		Role:       domain.RoleAlumni,
		AssignedBy: domain.SystemActor,
	}); err != nil {
		return nil, storeError(err, "failed to assign default role")
	}

	profile := &domain.VerificationProfile{
		AccountID:   account.ID,
		Status:      domain.VerificationPending,
		IDNumber:    in.IDNumber,
		AccountType: in.AccountType,
		FullName:    in.FullName,
		Company:     in.Company,
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, storeError(err, "failed to create verification profile")
	}

	logger.ExitMethod("authService.Register", "accountID", account.ID)
	return account, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	account, err := s.accountRepo.GetByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, repository.ErrNotFound) {
		return "", errInvalidCredentials
	}
	if err != nil {
		return "", storeError(err, "failed to look up account")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", errInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(account.ID)
	if err != nil {
		return "", domain.NewError(domain.KindStoreUnavailable, "failed to issue token", err)
	}
	return token, nil
}

func (s *authService) Authenticate(_ context.Context, token string) (string, error) {
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return "", domain.NewError(domain.KindUnauthenticated, err.Error(), nil)
	}
	return claims.AccountID(), nil
}
