package shared

// Visibility levels a repository can be created with.
const (
	VisibilityPublic  = "public"
	VisibilityHidden  = "hidden"
	VisibilityPrivate = "private"
)

// RegistrySettings configures artifact storage behavior.
type RegistrySettings struct {
	// AllowRedeployment permits overwriting an already deployed release version.
	AllowRedeployment bool `json:"allowRedeployment"`
	// PreservedSnapshots is how many snapshot versions are kept per artifact.
	PreservedSnapshots int `json:"preservedSnapshots" validate:"gte=0"`
	// DefaultVisibility applies to newly created repositories.
	DefaultVisibility string `json:"defaultVisibility" validate:"oneof=public hidden private"`
}

// DefaultRegistrySettings returns the registry domain defaults.
func DefaultRegistrySettings() RegistrySettings {
	return RegistrySettings{
		AllowRedeployment:  false,
		PreservedSnapshots: 3,
		DefaultVisibility:  VisibilityPublic,
	}
}
