// Package envfile reads and writes the console's local environment file.
package envfile

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/joho/godotenv"
)

const (
	// KeyAPIURL holds the backend base URL.
	KeyAPIURL = "API_URL"
	// KeyEnv holds the environment label.
	KeyEnv = "APP_ENV"
)

// ErrUnknownEnvironment is returned for names outside Profiles.
var ErrUnknownEnvironment = errors.New("envfile: unknown environment")

// Profile is the pair of values written for one environment.
type Profile struct {
	Name   string
	APIURL string
}

// Profiles lists the environments the switch accepts.
var Profiles = map[string]Profile{
	"local":      {Name: "local", APIURL: "http://127.0.0.1:8000"},
	"production": {Name: "production", APIURL: "/api"},
}

// Names returns the profile names sorted.
func Names() []string {
	names := make([]string, 0, len(Profiles))
	for name := range Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the profile called name.
func Lookup(name string) (Profile, error) {
	p, ok := Profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownEnvironment, name)
	}
	return p, nil
}

// Write replaces path with exactly the two keys of p.
func Write(path string, p Profile) error {
	values := map[string]string{
		KeyAPIURL: p.APIURL,
		KeyEnv:    p.Name,
	}
	if err := godotenv.Write(values, path); err != nil {
		return fmt.Errorf("envfile: write %s: %w", path, err)
	}
	return nil
}

// Current reads the environment label from path. ok is false when the file
// does not exist or has no label.
func Current(path string) (env string, ok bool, err error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("envfile: read %s: %w", path, err)
	}
	env, ok = values[KeyEnv]
	return env, ok && env != "", nil
}
