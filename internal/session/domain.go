// Package session holds the authenticated identity of each floor role.
package session

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnknownRole is returned for role names outside the role table.
	ErrUnknownRole = errors.New("session: unknown role")
	// ErrInvalidIdentity is returned when an identity lacks an id or a name.
	ErrInvalidIdentity = errors.New("session: invalid identity")
	// ErrNotFound is returned by persisters when nothing is stored for a key.
	ErrNotFound = errors.New("session: not found")
)

// Role names a login surface of the console.
type Role string

const (
	RoleAdminProduksi Role = "admin-produksi"
	RoleCoordinator   Role = "coordinator"
	RoleSupervisor    Role = "supervisor"
	// RoleSuperadmin guards the master data screens.
	RoleSuperadmin Role = "superadmin"
)

var roleFieldPrefix = map[Role]string{
	RoleAdminProduksi: "adminProduksi",
	RoleCoordinator:   "coordinator",
	RoleSupervisor:    "supervisor",
	RoleSuperadmin:    "superadmin",
}

var roleAliases = map[string]Role{
	"admin":          RoleAdminProduksi,
	"adminproduksi":  RoleAdminProduksi,
	"admin-produksi": RoleAdminProduksi,
	"koordinator":    RoleCoordinator,
	"coordinator":    RoleCoordinator,
	"supervisor":     RoleSupervisor,
	"superadmin":     RoleSuperadmin,
	"master-data":    RoleSuperadmin,
	"masterdata":     RoleSuperadmin,
}

// Roles lists the role stores in display order.
func Roles() []Role {
	return []Role{RoleAdminProduksi, RoleCoordinator, RoleSupervisor, RoleSuperadmin}
}

// ParseRole resolves a role name or one of its aliases.
func ParseRole(name string) (Role, error) {
	role, ok := roleAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, name)
	}
	return role, nil
}

// ID is an identity key issued by the backend: a JSON number or string.
// The zero value is null.
type ID struct {
	raw string
}

// IntID wraps a numeric id.
func IntID(n int64) ID {
	return ID{raw: strconv.FormatInt(n, 10)}
}

// StringID wraps a textual id. An empty string yields the null ID.
func StringID(s string) ID {
	if s == "" {
		return ID{}
	}
	quoted, _ := json.Marshal(s)
	return ID{raw: string(quoted)}
}

// ParseID treats canonical integers as numbers and anything else, leading
// zeros included, as a string.
func ParseID(s string) ID {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil && strconv.FormatInt(n, 10) == s {
		return IntID(n)
	}
	return StringID(s)
}

// IsZero reports whether the id is null.
func (id ID) IsZero() bool {
	return id.raw == ""
}

// String returns the id without JSON quoting.
func (id ID) String() string {
	if strings.HasPrefix(id.raw, `"`) {
		var s string
		if err := json.Unmarshal([]byte(id.raw), &s); err == nil {
			return s
		}
	}
	return id.raw
}

// MarshalJSON implements json.Marshaler.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.raw == "" {
		return []byte("null"), nil
	}
	return []byte(id.raw), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		id.raw = ""
		return nil
	}
	switch {
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = StringID(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("session: id must be a number or string: %w", err)
		}
		id.raw = n.String()
	}
	return nil
}

// Identity is the state of one role store.
type Identity struct {
	ID            ID     `json:"id"`
	Name          string `json:"name"`
	Authenticated bool   `json:"isAuthenticated"`
}

// Snapshot is a role store's state keyed the way the console front-end names
// its fields, e.g. supervisorId and supervisorName.
type Snapshot struct {
	Role     Role
	Identity Identity
}

// MarshalJSON implements json.Marshaler.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	prefix := roleFieldPrefix[s.Role]
	if prefix == "" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, s.Role)
	}
	return json.Marshal(map[string]any{
		prefix + "Id":     s.Identity.ID,
		prefix + "Name":   s.Identity.Name,
		"isAuthenticated": s.Identity.Authenticated,
	})
}

// Worker is the operator session filled in field by field by the production input screen.
type Worker struct {
	WorkerID        ID     `json:"workerId"`
	WorkerName      string `json:"workerName"`
	PositionID      ID     `json:"positionId"`
	PositionCode    string `json:"positionCode"`
	PositionUnit    string `json:"positionUnit"`
	SubPositionID   ID     `json:"subPositionId"`
	SubPositionCode string `json:"subPositionCode"`
}
