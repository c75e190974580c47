package permission

import (
	"fmt"

	"marketplace/internal/domain/permission"
	"marketplace/internal/shared/authorization"
	"marketplace/internal/shared/logger"
)

type policy struct {
	role     authorization.UserRole
	resource permission.Resource
	action   permission.Action
}

// defaultPolicies lists what each role may do beyond the public routes.
// Ownership checks (own store, own profile) happen in the use cases.
var defaultPolicies = []policy{
	{authorization.RoleAdmin, permission.ResourceUser, "*"},
	{authorization.RoleAdmin, permission.ResourcePlan, "*"},
	{authorization.RoleAdmin, permission.ResourceSubscription, "*"},
	{authorization.RoleAdmin, permission.ResourceStore, "*"},
	{authorization.RoleAdmin, permission.ResourceCategory, "*"},
	{authorization.RoleAdmin, permission.ResourceBlog, "*"},

	{authorization.RoleUser, permission.ResourceSubscription, permission.ActionCreate},
	{authorization.RoleUser, permission.ResourceStore, permission.ActionCreate},
	{authorization.RoleUser, permission.ResourceStore, permission.ActionUpdate},
	{authorization.RoleSeller, permission.ResourceSubscription, permission.ActionCreate},
	{authorization.RoleSeller, permission.ResourceStore, permission.ActionCreate},
	{authorization.RoleSeller, permission.ResourceStore, permission.ActionUpdate},
	{authorization.RoleSpecialist, permission.ResourceSubscription, permission.ActionCreate},
	{authorization.RoleSpecialist, permission.ResourceStore, permission.ActionCreate},
	{authorization.RoleSpecialist, permission.ResourceStore, permission.ActionUpdate},
}

// InitDefaultPermissions installs the default policies. SUPER_ADMIN inherits ADMIN.
// Existing rules are left in place, so calling it on every boot is safe.
func InitDefaultPermissions(e permission.Enforcer, log logger.Interface) error {
	for _, p := range defaultPolicies {
		if err := e.AddPolicy(p.role.String(), p.resource, p.action); err != nil {
			log.Errorw("failed to add permission policy",
				"error", err,
				"role", p.role,
				"resource", p.resource,
				"action", p.action)
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w", p.role, p.resource, p.action, err)
		}
	}

	if err := e.AddRoleInheritance(authorization.RoleSuperAdmin.String(), authorization.RoleAdmin.String()); err != nil {
		return err
	}

	log.Infow("default permissions initialized successfully", "policies", len(defaultPolicies))
	return nil
}
