package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"viwahaa-be/internal/config"
	"viwahaa-be/internal/dto"
	"viwahaa-be/internal/entity"
	"viwahaa-be/internal/pkg/logger"
	"viwahaa-be/internal/repository/specification"
	"viwahaa-be/internal/repository/unitofwork"
	"viwahaa-be/pkg/events"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

type IOAuthService interface {
	GetLoginURL(provider string) (string, error)
	HandleCallback(ctx context.Context, provider string, code string) (*dto.AuthResponse, error)
}

type oauthService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher events.Publisher
	jwtSecret      string
	googleConf     *oauth2.Config
	logger         logger.ILogger
}

func NewOAuthService(uowFactory unitofwork.RepositoryFactory, jwtSecret string, cfg config.OAuthConfig, eventPublisher events.Publisher, log logger.ILogger) IOAuthService {
	conf := &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	return &oauthService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		jwtSecret:      jwtSecret,
		googleConf:     conf,
		logger:         log,
	}
}

func (s *oauthService) GetLoginURL(provider string) (string, error) {
	if provider != "google" {
		return "", errors.New("unsupported provider")
	}

	b := make([]byte, 16)
	rand.Read(b)
	state := base64.URLEncoding.EncodeToString(b)

	return s.googleConf.AuthCodeURL(state), nil
}

// HandleCallback exchanges the authorization code, provisions a customer
// profile on first sign-in and issues the same JWT as password auth.
func (s *oauthService) HandleCallback(ctx context.Context, provider string, code string) (*dto.AuthResponse, error) {
	if provider != "google" {
		return nil, errors.New("unsupported provider")
	}

	token, err := s.googleConf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("code exchange failed: %w", err)
	}

	googleUser, err := s.fetchUserInfo(token.AccessToken)
	if err != nil {
		return nil, err
	}
	if !googleUser.VerifiedEmail {
		return nil, fmt.Errorf("%w: google account email is not verified", entity.ErrValidation)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ProfileRepository()

	profile, err := repo.FindOne(ctx, specification.ByEmail{Email: googleUser.Email})
	if err != nil {
		return nil, err
	}

	if profile == nil {
		memberId, err := nextMemberId(ctx, repo)
		if err != nil {
			return nil, err
		}
		profile = &entity.Profile{
			MemberId:    memberId,
			FirstName:   googleUser.GivenName,
			LastName:    googleUser.FamilyName,
			Email:       googleUser.Email,
			ProfileImg:  googleUser.Picture,
			DateOfBirth: time.Now(),
			Status:      entity.ProfileStatusSingle,
		}
		if profile.FirstName == "" {
			profile.FirstName = googleUser.Name
		}
		if err := repo.Create(ctx, profile); err != nil {
			return nil, err
		}
		s.logger.Info("OAuth", "Provisioned profile from Google sign-in", map[string]interface{}{
			"email":     profile.Email,
			"member_id": profile.MemberId,
		})
		publishAudit(ctx, s.eventPublisher, s.logger, "OAuth", events.TypeProfileRegistered, map[string]interface{}{
			"profile_id": profile.Id,
			"member_id":  profile.MemberId,
			"email":      profile.Email,
		})
	}

	jwtToken, err := signToken(s.jwtSecret, profile.Id.String(), profile.Email, false)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token:    jwtToken,
		Id:       profile.Id.String(),
		MemberId: profile.MemberId,
		Name:     profile.FullName(),
		Email:    profile.Email,
	}, nil
}

type googleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
}

func (s *oauthService) fetchUserInfo(accessToken string) (*googleUserInfo, error) {
	resp, err := http.Get("https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed getting user info: %w", err)
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed reading user info: %w", err)
	}

	var user googleUserInfo
	if err := json.Unmarshal(content, &user); err != nil {
		return nil, fmt.Errorf("failed parsing user info: %w", err)
	}
	return &user, nil
}
