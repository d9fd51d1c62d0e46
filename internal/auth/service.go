package auth

import (
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
)

var (
	ErrUserExists      = errors.New("username already exists")
	ErrUnknownUser     = errors.New("no such user found")
	ErrInvalidUsername = errors.New("invalid username")
)

// Service manages the per-user account directories under usersPath.
// An account exists exactly when its directory does; there are no
// passwords, and nothing about a session survives the process.
type Service struct {
	usersPath string
}

func NewService(usersPath string) (*Service, error) {
	if usersPath == "" {
		return nil, errors.New("users path cannot be empty")
	}
	if err := os.MkdirAll(usersPath, 0755); err != nil {
		return nil, fmt.Errorf("create users dir %s: %w", usersPath, err)
	}
	return &Service{
		usersPath: usersPath,
	}, nil
}

func (s *Service) userDir(username string) string {
	return path.Join(s.usersPath, username)
}

// SignUp creates the account directory for a new user and returns the
// normalized username. An existing account yields ErrUserExists.
func (s *Service) SignUp(username string) (string, error) {
	username = pkg.NormalizeUsername(username)
	if username == "" {
		return "", ErrInvalidUsername
	}

	exists, err := pkg.PathExists(s.userDir(username), true)
	if err != nil {
		return "", fmt.Errorf("check user dir: %w", err)
	}
	if exists {
		return "", fmt.Errorf("%s: %w", username, ErrUserExists)
	}

	if err := os.MkdirAll(s.userDir(username), 0755); err != nil {
		return "", fmt.Errorf("create user dir: %w", err)
	}

	log.Debugf("auth: account created for [%s]", username)

	return username, nil
}

// SignIn checks that the account exists and returns the normalized
// username. Nothing is created on failure.
func (s *Service) SignIn(username string) (string, error) {
	username = pkg.NormalizeUsername(username)
	if username == "" {
		return "", ErrInvalidUsername
	}

	exists, err := pkg.PathExists(s.userDir(username), true)
	if err != nil {
		return "", fmt.Errorf("check user dir: %w", err)
	}
	if !exists {
		return "", fmt.Errorf("%s: %w", username, ErrUnknownUser)
	}

	log.Debugf("auth: [%s] signed in", username)

	return username, nil
}
