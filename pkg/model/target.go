// Package model provides the data structures shared by the export submission,
// metadata and polling packages: targets, formats, statuses, job parameters
// and the download metadata projection.
package model

import "strings"

// Target selects the backend family that handles a job.
type Target string

const (
	// TargetHub is the hub indexing service. It is the default target.
	TargetHub Target = "hub"
	// TargetPortal is a hosted portal content-management service.
	TargetPortal Target = "portal"
	// TargetEnterprise is a self-hosted portal. It shares the portal implementation.
	TargetEnterprise Target = "enterprise"
)

// ParseTarget normalizes a target discriminator. Empty and unknown values map to TargetHub.
func ParseTarget(s string) Target {
	switch Target(strings.ToLower(strings.TrimSpace(s))) {
	case TargetPortal:
		return TargetPortal
	case TargetEnterprise:
		return TargetEnterprise
	default:
		return TargetHub
	}
}

// IsPortalFamily reports whether the target is served by the portal implementation.
func (t Target) IsPortalFamily() bool {
	return t == TargetPortal || t == TargetEnterprise
}

// String returns the normalized target name.
func (t Target) String() string {
	if t == "" {
		return string(TargetHub)
	}
	return string(t)
}
