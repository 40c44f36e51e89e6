package service

import (
	"context"
	"fmt"
	"time"
	"unicode"

	"viwahaa-be/internal/dto"
	"viwahaa-be/internal/entity"
	"viwahaa-be/internal/pkg/logger"
	"viwahaa-be/internal/pkg/mailer"
	"viwahaa-be/internal/repository/contract"
	"viwahaa-be/internal/repository/specification"
	"viwahaa-be/internal/repository/unitofwork"
	"viwahaa-be/pkg/events"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = time.Hour

type IAuthService interface {
	SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.AuthResponse, error)
	SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.AuthResponse, error)
	AdminSignIn(ctx context.Context, req *dto.AdminSignInRequest) (*dto.AdminAuthResponse, error)
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	mailer         mailer.IEmailService
	eventPublisher events.Publisher
	jwtSecret      string
	logger         logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, mail mailer.IEmailService, eventPublisher events.Publisher, jwtSecret string, log logger.ILogger) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		mailer:         mail,
		eventPublisher: eventPublisher,
		jwtSecret:      jwtSecret,
		logger:         log,
	}
}

func (s *authService) SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.AuthResponse, error) {
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("%w: d_o_b must be YYYY-MM-DD", entity.ErrValidation)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ProfileRepository()

	existing, err := repo.FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email already registered", entity.ErrValidation)
	}

	memberId, err := nextMemberId(ctx, repo)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	profile := &entity.Profile{
		MemberId:     memberId,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: &hashStr,
		DateOfBirth:  dob,
		Age:          ageAt(dob, time.Now()),
		Gender:       req.Gender,
		ContactNo:    req.ContactNo,
		WhatsappNo:   req.WhatsappNo,
		Religion:     req.Religion,
		Caste:        req.Caste,
		Status:       entity.ProfileStatusSingle,
	}

	if err := repo.Create(ctx, profile); err != nil {
		return nil, err
	}

	publishAudit(ctx, s.eventPublisher, s.logger, "Auth", events.TypeProfileRegistered, map[string]interface{}{
		"profile_id": profile.Id,
		"member_id":  profile.MemberId,
		"email":      profile.Email,
	})

	go func() {
		if err := s.mailer.SendWelcome(profile.Email, profile.FullName(), profile.MemberId); err != nil {
			s.logger.Warn("Auth", "Welcome mail failed", map[string]interface{}{"email": profile.Email, "error": err.Error()})
		}
	}()

	token, err := s.generateToken(profile.Id.String(), profile.Email, false)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token:    token,
		Id:       profile.Id.String(),
		MemberId: profile.MemberId,
		Name:     profile.FullName(),
		Email:    profile.Email,
	}, nil
}

func (s *authService) SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if profile == nil || profile.PasswordHash == nil {
		return nil, fmt.Errorf("%w: invalid email or password", entity.ErrValidation)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*profile.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid email or password", entity.ErrValidation)
	}

	token, err := s.generateToken(profile.Id.String(), profile.Email, false)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token:    token,
		Id:       profile.Id.String(),
		MemberId: profile.MemberId,
		Name:     profile.FullName(),
		Email:    profile.Email,
	}, nil
}

// AdminSignIn authenticates against the back-office users table. Accounts
// without the admin user type are rejected even with the right password.
func (s *authService) AdminSignIn(ctx context.Context, req *dto.AdminSignInRequest) (*dto.AdminAuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.AdminUserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: invalid email or password", entity.ErrValidation)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid email or password", entity.ErrValidation)
	}
	if !user.IsAdmin() {
		return nil, fmt.Errorf("%w: not an admin account", entity.ErrValidation)
	}

	token, err := s.generateToken(user.Id.String(), user.Email, true)
	if err != nil {
		return nil, err
	}

	return &dto.AdminAuthResponse{
		Token: token,
		Id:    user.Id.String(),
		Name:  user.Name,
		Email: user.Email,
	}, nil
}

func (s *authService) generateToken(userId, email string, isAdmin bool) (string, error) {
	return signToken(s.jwtSecret, userId, email, isAdmin)
}

func signToken(secret, userId, email string, isAdmin bool) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  userId,
		"email":    email,
		"is_admin": isAdmin,
		"exp":      time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// nextMemberId allocates the next sequential member id from the highest one
// already assigned. Deriving it from the row count would reissue an id after
// a purge shrinks the table and trip the member_id unique index.
func nextMemberId(ctx context.Context, repo contract.ProfileRepository) (string, error) {
	last, err := repo.MaxMemberId(ctx)
	if err != nil {
		return "", err
	}
	seq := 0
	if last != "" {
		if _, err := fmt.Sscanf(last, "SM-%d", &seq); err != nil {
			return "", fmt.Errorf("malformed member id %q: %w", last, err)
		}
	}
	return fmt.Sprintf("SM-%04d", seq+1), nil
}

// validatePassword enforces the registration policy: at least five
// characters with one uppercase letter, one digit and one symbol.
func validatePassword(password string) error {
	if len(password) < 5 {
		return fmt.Errorf("%w: password must be at least 5 characters", entity.ErrValidation)
	}
	var hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			hasSymbol = true
		}
	}
	if !hasUpper || !hasDigit || !hasSymbol {
		return fmt.Errorf("%w: password needs an uppercase letter, a digit and a symbol", entity.ErrValidation)
	}
	return nil
}

func ageAt(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	if now.YearDay() < dob.YearDay() {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
