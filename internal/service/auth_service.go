package service

import (
	"context"
	"errors"
	"strings"

	"tutor_dashboard_backend/internal/config"
	"tutor_dashboard_backend/internal/model"
	"tutor_dashboard_backend/internal/repository"
	"tutor_dashboard_backend/internal/util"
)

type AuthService struct {
	Tutors *repository.TutorRepository
	Cfg    *config.Config
}

func NewAuthService(tutors *repository.TutorRepository, cfg *config.Config) *AuthService {
	return &AuthService{Tutors: tutors, Cfg: cfg}
}

// Authenticate checks the supplied credentials against the Tutors table.
// Unknown ID and wrong password are distinct errors here; the controller
// collapses them into one generic message so the login form leaks nothing.
func (s *AuthService) Authenticate(ctx context.Context, tutorID, password string) (*model.TutorIdentity, error) {
	tutor, err := s.Tutors.FindByID(ctx, tutorID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(tutor.Password) != strings.TrimSpace(password) {
		return nil, util.ErrBadCredentials
	}

	name := tutor.Name
	if name == "" {
		name = tutor.ID
	}
	return &model.TutorIdentity{ID: tutor.ID, Name: name}, nil
}

// Login authenticates and issues a session token for the identity.
func (s *AuthService) Login(ctx context.Context, tutorID, password string) (string, *model.TutorIdentity, error) {
	identity, err := s.Authenticate(ctx, tutorID, password)
	if err != nil {
		return "", nil, err
	}

	token, err := util.GenerateJWT(*identity, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return token, identity, nil
}

// IsCredentialError reports whether err is a business-level login failure as
// opposed to a backend fault.
func IsCredentialError(err error) bool {
	return errors.Is(err, util.ErrUnknownTutor) || errors.Is(err, util.ErrBadCredentials)
}
