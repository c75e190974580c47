package permission

// Resource names a protected area of the API.
type Resource string

const (
	ResourceUser         Resource = "user"
	ResourcePlan         Resource = "plan"
	ResourceSubscription Resource = "subscription"
	ResourceStore        Resource = "store"
	ResourceCategory     Resource = "category"
	ResourceBlog         Resource = "blog"
)

type Action string

const (
	ActionCreate   Action = "create"
	ActionRead     Action = "read"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
	ActionModerate Action = "moderate"
)

// Enforcer decides whether a role may perform action on resource.
type Enforcer interface {
	Enforce(role string, resource Resource, action Action) (bool, error)
	AddPolicy(role string, resource Resource, action Action) error
	RemovePolicy(role string, resource Resource, action Action) error
	// AddRoleInheritance makes role inherit every permission of parent.
	AddRoleInheritance(role, parent string) error
	GetPermissionsForRole(role string) ([][]string, error)
	LoadPolicy() error
}
