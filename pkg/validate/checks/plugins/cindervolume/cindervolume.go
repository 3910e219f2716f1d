// Package cindervolume validates an OpenStack Cinder volume service backed
// by the Datera driver. It is loaded on request as the "cinder_volume" plugin.
package cindervolume

import (
	"github.com/datera/ddct/pkg/validate/check"
)

// PluginName is the name the plugin is requested by.
const PluginName = "cinder_volume"

const tagImage = "image"

// Fault codes reported by the plugin checks.
const (
	CodeDriverMissing   = "680E61DB"
	CodeDriverNoVersion = "A37FD778"
	CodeDriverMismatch  = "5B6EFC71"

	CodeDefaultSectionMissing = "7B98CFA1"
	CodeBackendNotEnabled     = "A4402034"
	CodeNotDefaultVolumeType  = "C2B8C696"
	CodeDateraSectionMissing  = "525BAAB0"
	CodeSanIPMismatch         = "8208B9E7"
	CodeSanLoginMismatch      = "3A6A78D1"
	CodeSanPasswordMismatch   = "8DBC87E8"
	CodeBackendNameMissing    = "5FEC0454"
	CodeDebugDisabled         = "0C3E5B2A"
	CodeTypeDefaultsMissing   = "B5D29621"

	CodeImageCacheDisabled    = "C5B86514"
	CodeImageCacheTypeInvalid = "B845D5B1"
)

// NewChecks returns the check definitions of the plugin, bound to a source of
// upstream driver releases.
func NewChecks(source VersionSource) []check.Definition {
	return []check.Definition{
		newDriverCheck(source),
		newVolumeConfCheck(),
		newImageCacheConfCheck(),
	}
}

// LoadChecks returns the plugin checks using the public GitHub release tags.
func LoadChecks() []check.Definition {
	return NewChecks(NewGitHubSource())
}
