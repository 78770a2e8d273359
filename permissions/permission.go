package permissions

import (
	_ "embed"
	"encoding/json"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission describes one endpoint: the chi route pattern, the HTTP method
// and the roles allowed to call it. Skip marks public endpoints that bypass
// authentication entirely.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`
}

// FindPermissions returns the endpoint entry matching the route pattern and
// method, or a zero Permission when the endpoint is not declared.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	for _, endpoint := range r.Endpoints {
		if endpoint.Path == path && endpoint.Method == method {
			return endpoint
		}
	}

	return Permission{}
}

// Get decodes the embedded permissions file. A nil return means the embedded
// data is corrupt and the RBAC middleware must deny everything.
func Get() *PermissionData {
	var permissions PermissionData

	if err := json.Unmarshal(permissionsData, &permissions); err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return &permissions
}
