package services

import "context"

// RoutingSvc picks the admin a new request is assigned to.
type RoutingSvc interface {
	// ResolveAssignee returns the user ID of the department admin for category,
	// falling back to the company superadmin. Nil means nobody is eligible.
	ResolveAssignee(ctx context.Context, category, companyID string) (*string, error)
}
