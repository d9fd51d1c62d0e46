package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
)

const profileJsonFileName = "profile.json"

var ErrProfileNotFound = errors.New("profile not found")

// Store reads and writes one profile.json per user, kept under
// <usersPath>/<username>/profile.json
type Store struct {
	usersPath string
}

func NewStore(usersPath string) (*Store, error) {
	if usersPath == "" {
		return nil, errors.New("users path cannot be empty")
	}
	return &Store{
		usersPath: usersPath,
	}, nil
}

func (s *Store) profilePath(username string) string {
	return path.Join(s.usersPath, username, profileJsonFileName)
}

// Load returns the persisted profile, or ErrProfileNotFound
// if the user has none yet
func (s *Store) Load(username string) (*Profile, error) {
	profilePath := s.profilePath(username)
	log.Debugf("profile store: loading profile from: %s", profilePath)

	exists, err := pkg.PathExists(profilePath, false)
	if err != nil {
		return nil, fmt.Errorf("check profile path %s: %w", profilePath, err)
	}
	if !exists {
		return nil, fmt.Errorf("%s: %w", username, ErrProfileNotFound)
	}

	profileJson, err := os.ReadFile(profilePath)
	if err != nil {
		return nil, err
	}

	var p Profile
	if err := json.Unmarshal(profileJson, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &p, nil
}

// Save overwrites the whole profile record
func (s *Store) Save(username string, p *Profile) error {
	profilePath := s.profilePath(username)
	log.Debugf("profile store: saving profile to: %s", profilePath)

	profileJson, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(profilePath, profileJson, 0644); err != nil {
		return fmt.Errorf("write profile %s: %w", profilePath, err)
	}

	log.Debugf("profile store: profile for [%s] saved", username)

	return nil
}
