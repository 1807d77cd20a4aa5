package authz

import (
	"fmt"

	"github.com/fresh-groceries/internal/constants"
)

// RoleSeed 预置角色定义
type RoleSeed struct {
	Role     constants.Role
	Inherits []constants.Role
	Policies []Policy
}

// BuiltinRoleSeeds 角色权限矩阵
// 管理员由 matcher 放行，这里只登记角色本身
func BuiltinRoleSeeds() []RoleSeed {
	return []RoleSeed{
		{Role: constants.RoleUser},
		{
			Role:     constants.RoleFarmer,
			Inherits: []constants.Role{constants.RoleUser},
			Policies: []Policy{
				{Object: "/farmer/*", Action: "*"},
				{Object: "/products", Action: "POST"},
			},
		},
		{
			Role:     constants.RoleCourier,
			Inherits: []constants.Role{constants.RoleUser},
			Policies: []Policy{
				{Object: "/courier/*", Action: "*"},
			},
		},
		{Role: constants.RoleAdmin},
	}
}

// BootstrapRolePolicies 初始化角色与默认策略，可重复执行
func (s *Service) BootstrapRolePolicies() error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}

	for _, seed := range BuiltinRoleSeeds() {
		role, err := s.EnsureRole(seed.Role.String())
		if err != nil {
			return err
		}

		for _, parent := range seed.Inherits {
			if _, err := s.enforcer.AddNamedGroupingPolicy("g", role, SubjectForRole(parent)); err != nil {
				return fmt.Errorf("link role inheritance failed: %w", err)
			}
		}

		for _, policy := range seed.Policies {
			action := NormalizeAction(policy.Action)
			if action == "" {
				return fmt.Errorf("builtin policy action is required")
			}
			if _, err := s.enforcer.AddPolicy(role, NormalizeObject(policy.Object), action); err != nil {
				return fmt.Errorf("add builtin policy failed: %w", err)
			}
		}
	}
	return nil
}
