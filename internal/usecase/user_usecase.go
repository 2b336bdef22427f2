package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mikiasgoitom/Commune/internal/domain/contract"
	"github.com/mikiasgoitom/Commune/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Commune/internal/usecase/contract"
)

// UserUsecase implements the IUserUseCase interface.
type UserUsecase struct {
	userRepo      contract.IUserRepository
	hasher        contract.IHasher
	jwtService    JWTService
	logger        usecasecontract.IAppLogger
	validator     usecasecontract.IValidator
	uuidGenerator contract.IUUIDGenerator
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	hasher contract.IHasher,
	jwtService JWTService,
	logger usecasecontract.IAppLogger,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
) *UserUsecase {
	return &UserUsecase{
		userRepo:      userRepo,
		hasher:        hasher,
		jwtService:    jwtService,
		logger:        logger,
		validator:     validator,
		uuidGenerator: uuidGenerator,
	}
}

// check if UserUsecase implements the IUserUseCase
var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// Register handles user registration.
func (uc *UserUsecase) Register(ctx context.Context, username, email, password, displayName string) (*entity.User, error) {
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email format: %v", ErrInvalidInput, err)
	}
	if err := uc.validator.ValidatePasswordStrength(password); err != nil {
		return nil, fmt.Errorf("%w: weak password: %v", ErrInvalidInput, err)
	}

	if _, err := uc.userRepo.GetUserByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: email %s is taken", ErrUserExists, email)
	} else if !errors.Is(err, contract.ErrUserNotFound) {
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	if _, err := uc.userRepo.GetUserByUsername(ctx, username); err == nil {
		return nil, fmt.Errorf("%w: username %s is taken", ErrUserExists, username)
	} else if !errors.Is(err, contract.ErrUserNotFound) {
		uc.logger.Errorf("failed to check for existing user by username: %v", err)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to process password")
	}

	var pDisplayName *string
	if name := strings.TrimSpace(displayName); name != "" {
		pDisplayName = &name
	}

	now := time.Now()
	user := &entity.User{
		ID:           uc.uuidGenerator.NewUUID(),
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         entity.DefaultRole(),
		IsActive:     true,
		DisplayName:  pDisplayName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		uc.logger.Errorf("failed to create user: %v", err)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

// Login checks the credentials and issues an access token. identifier is
// either an e-mail address or a username.
func (uc *UserUsecase) Login(ctx context.Context, identifier, password string) (*entity.User, string, error) {
	var user *entity.User
	var err error

	if uc.validator.ValidateEmail(identifier) == nil {
		user, err = uc.userRepo.GetUserByEmail(ctx, identifier)
	} else {
		user, err = uc.userRepo.GetUserByUsername(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		uc.logger.Errorf("failed to retrieve user for login: %v", err)
		return nil, "", fmt.Errorf("failed to log in: %w", err)
	}

	if !user.IsActive {
		return nil, "", errors.New("account not active")
	}
	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	accessToken, err := uc.jwtService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return nil, "", errors.New("failed to generate token")
	}
	return user, accessToken, nil
}

// GetUserByID returns the user with the given ID.
func (uc *UserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}
