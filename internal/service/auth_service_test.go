package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"viwahaa-be/internal/dto"
	"viwahaa-be/internal/entity"
	"viwahaa-be/internal/repository/specification"
	"viwahaa-be/pkg/events"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid", password: "Ab1!x", wantErr: false},
		{name: "too short", password: "A1!x", wantErr: true},
		{name: "no uppercase", password: "ab1!xyz", wantErr: true},
		{name: "no digit", password: "Abc!xyz", wantErr: true},
		{name: "no symbol", password: "Abc1xyz", wantErr: true},
		{name: "long valid", password: "Str0ng@Password", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePassword(tt.password)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, entity.ErrValidation))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAgeAt(t *testing.T) {
	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		dob  time.Time
		want int
	}{
		{name: "birthday passed", dob: time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC), want: 31},
		{name: "birthday pending", dob: time.Date(1995, 9, 3, 0, 0, 0, 0, time.UTC), want: 30},
		{name: "birthday today", dob: time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC), want: 31},
		{name: "future dob clamps to zero", dob: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ageAt(tt.dob, now))
		})
	}
}

func TestSignUpAssignsSequentialMemberId(t *testing.T) {
	repo := &stubProfileRepo{maxMemberId: "SM-0041"}
	svc := NewAuthService(&stubFactory{uow: &stubUnitOfWork{profiles: repo}}, stubMailer{}, nil, "secret", noopLogger{})

	resp, err := svc.SignUp(context.Background(), &dto.SignUpRequest{
		FirstName:   "Arun",
		Email:       "arun@example.com",
		Password:    "Str0ng@Pass",
		DateOfBirth: "1995-04-12",
		Gender:      "Male",
	})
	require.NoError(t, err)
	assert.Equal(t, "SM-0042", resp.MemberId)

	require.Len(t, repo.created, 1)
	created := repo.created[0]
	assert.Equal(t, entity.ProfileStatusSingle, created.Status)
	require.NotNil(t, created.PasswordHash)
	assert.NotEqual(t, "Str0ng@Pass", *created.PasswordHash, "password must be stored hashed")
}

func TestNextMemberId(t *testing.T) {
	tests := []struct {
		name string
		last string
		want string
	}{
		{name: "empty table starts the sequence", last: "", want: "SM-0001"},
		{name: "increments the highest id", last: "SM-0041", want: "SM-0042"},
		{name: "widens past four digits", last: "SM-9999", want: "SM-10000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := nextMemberId(context.Background(), &stubProfileRepo{maxMemberId: tt.last})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSignUpMemberIdSurvivesPurges(t *testing.T) {
	// Three rows remain but SM-0042 was already handed out; counting rows
	// would reissue SM-0004 and collide with the live SM-0003.
	repo := &stubProfileRepo{count: 3, maxMemberId: "SM-0042"}
	svc := NewAuthService(&stubFactory{uow: &stubUnitOfWork{profiles: repo}}, stubMailer{}, nil, "secret", noopLogger{})

	resp, err := svc.SignUp(context.Background(), &dto.SignUpRequest{
		FirstName:   "Nithya",
		Email:       "nithya@example.com",
		Password:    "Str0ng@Pass",
		DateOfBirth: "1997-02-20",
		Gender:      "Female",
	})
	require.NoError(t, err)
	assert.Equal(t, "SM-0043", resp.MemberId)
}

func TestSignUpPublishesRegistrationEvent(t *testing.T) {
	repo := &stubProfileRepo{}
	pub := &recordingPublisher{}
	svc := NewAuthService(&stubFactory{uow: &stubUnitOfWork{profiles: repo}}, stubMailer{}, pub, "secret", noopLogger{})

	_, err := svc.SignUp(context.Background(), &dto.SignUpRequest{
		FirstName:   "Arun",
		Email:       "arun@example.com",
		Password:    "Str0ng@Pass",
		DateOfBirth: "1995-04-12",
		Gender:      "Male",
	})
	require.NoError(t, err)

	require.Len(t, pub.published, 1)
	assert.Equal(t, events.TypeProfileRegistered, pub.published[0].Type)
	assert.Equal(t, "SM-0001", pub.published[0].Data["member_id"])
}

func TestSignUpRejectsDuplicateEmail(t *testing.T) {
	existing := &entity.Profile{Id: uuid.New(), Email: "taken@example.com"}
	repo := &stubProfileRepo{
		findOne: func(specs ...specification.Specification) (*entity.Profile, error) {
			return existing, nil
		},
	}
	svc := NewAuthService(&stubFactory{uow: &stubUnitOfWork{profiles: repo}}, stubMailer{}, nil, "secret", noopLogger{})

	_, err := svc.SignUp(context.Background(), &dto.SignUpRequest{
		FirstName:   "Arun",
		Email:       "taken@example.com",
		Password:    "Str0ng@Pass",
		DateOfBirth: "1995-04-12",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrValidation))
	assert.Empty(t, repo.created)
}

func TestSignUpRejectsBadDateOfBirth(t *testing.T) {
	svc := NewAuthService(&stubFactory{uow: &stubUnitOfWork{profiles: &stubProfileRepo{}}}, stubMailer{}, nil, "secret", noopLogger{})

	_, err := svc.SignUp(context.Background(), &dto.SignUpRequest{
		FirstName:   "Arun",
		Email:       "arun@example.com",
		Password:    "Str0ng@Pass",
		DateOfBirth: "12/04/1995",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrValidation))
}

func TestSignInWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Right@1"), bcrypt.DefaultCost)
	require.NoError(t, err)
	hashStr := string(hash)

	repo := &stubProfileRepo{
		findOne: func(specs ...specification.Specification) (*entity.Profile, error) {
			return &entity.Profile{Email: "arun@example.com", PasswordHash: &hashStr}, nil
		},
	}
	svc := NewAuthService(&stubFactory{uow: &stubUnitOfWork{profiles: repo}}, stubMailer{}, nil, "secret", noopLogger{})

	_, err = svc.SignIn(context.Background(), &dto.SignInRequest{Email: "arun@example.com", Password: "Wrong@1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrValidation))
}

func TestAdminSignInRejectsNonAdmin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Admin@1"), bcrypt.DefaultCost)
	require.NoError(t, err)

	admins := &stubAdminUserRepo{
		findOne: func(specs ...specification.Specification) (*entity.AdminUser, error) {
			return &entity.AdminUser{
				Email:        "member@example.com",
				PasswordHash: string(hash),
				UserTypeId:   2,
			}, nil
		},
	}
	svc := NewAuthService(&stubFactory{uow: &stubUnitOfWork{admins: admins}}, stubMailer{}, nil, "secret", noopLogger{})

	_, err = svc.AdminSignIn(context.Background(), &dto.AdminSignInRequest{Email: "member@example.com", Password: "Admin@1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrValidation))
}

func TestSignTokenClaims(t *testing.T) {
	signed, err := signToken("secret", "uid-1", "arun@example.com", true)
	require.NoError(t, err)

	parsed, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "uid-1", claims["user_id"])
	assert.Equal(t, "arun@example.com", claims["email"])
	assert.Equal(t, true, claims["is_admin"])

	exp := time.Unix(int64(claims["exp"].(float64)), 0)
	assert.WithinDuration(t, time.Now().Add(tokenTTL), exp, time.Minute)
}
