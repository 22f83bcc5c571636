// Package entitlements decides which marketplace features a (plan, role)
// pair may use.
//
// Rules live in a Table that is validated once when it is built and never
// mutated afterwards. Lookups normalize plan and role to lower case. Feature
// keys missing from the table are allowed, so surfaces that ship ahead of a
// table update keep working.
package entitlements

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Plan is a subscription tier. Tiers are totally ordered by Rank.
type Plan string

const (
	PlanFree    Plan = "free"
	PlanPremium Plan = "premium"
	PlanSystem  Plan = "system"
)

var planRanks = map[Plan]int{
	PlanFree:    0,
	PlanPremium: 1,
	PlanSystem:  2,
}

// Rank returns the position of p in free < premium < system. Unknown plans
// rank below free.
func (p Plan) Rank() int {
	if r, ok := planRanks[p]; ok {
		return r
	}
	return -1
}

// Valid reports whether p is one of the known plans.
func (p Plan) Valid() bool {
	_, ok := planRanks[p]
	return ok
}

// ParsePlan normalizes s. The result may be invalid; see Plan.Valid.
func ParsePlan(s string) Plan {
	return Plan(normalize(s))
}

// Role is a marketplace account type.
type Role string

const (
	RoleTenant     Role = "tenant"
	RoleLandlord   Role = "landlord"
	RoleArtisan    Role = "artisan"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super-admin"
)

// Roles lists every known role.
var Roles = []Role{RoleTenant, RoleLandlord, RoleArtisan, RoleAdmin, RoleSuperAdmin}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// ParseRole normalizes s. The result may be invalid; see Role.Valid.
func ParseRole(s string) Role {
	return Role(normalize(s))
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

var (
	ErrDenied      = errors.New("feature not available for plan/role")
	ErrInvalidRule = errors.New("invalid capability rule")
)

// Rule grants Feature to every role in Roles whose plan ranks at least
// MinPlan.
type Rule struct {
	Feature string
	MinPlan Plan
	Roles   []Role
}

type compiledRule struct {
	minPlan Plan
	roles   map[Role]struct{}
}

// Table is an immutable, validated set of rules keyed by feature.
type Table struct {
	rules map[string]compiledRule
}

// NewTable validates rules and compiles them into a Table. A rule must have
// a non-empty key that appears once, a known MinPlan, and at least one
// role, all of them known.
func NewTable(rules ...Rule) (*Table, error) {
	t := &Table{rules: make(map[string]compiledRule, len(rules))}

	for _, r := range rules {
		key := normalize(r.Feature)
		if key == "" {
			return nil, fmt.Errorf("%w: empty feature key", ErrInvalidRule)
		}
		if _, dup := t.rules[key]; dup {
			return nil, fmt.Errorf("%w: duplicate feature %q", ErrInvalidRule, key)
		}
		if !r.MinPlan.Valid() {
			return nil, fmt.Errorf("%w: feature %q has unknown plan %q", ErrInvalidRule, key, r.MinPlan)
		}
		if len(r.Roles) == 0 {
			return nil, fmt.Errorf("%w: feature %q has no roles", ErrInvalidRule, key)
		}

		roles := make(map[Role]struct{}, len(r.Roles))
		for _, role := range r.Roles {
			if !role.Valid() {
				return nil, fmt.Errorf("%w: feature %q has unknown role %q", ErrInvalidRule, key, role)
			}
			roles[role] = struct{}{}
		}

		t.rules[key] = compiledRule{minPlan: r.MinPlan, roles: roles}
	}

	return t, nil
}

// MustNewTable is like NewTable but panics on an invalid rule set.
func MustNewTable(rules ...Rule) *Table {
	t, err := NewTable(rules...)
	if err != nil {
		panic(err)
	}
	return t
}

// CanUse reports whether role on plan may use feature.
func (t *Table) CanUse(plan, role, feature string) bool {
	rule, ok := t.rules[normalize(feature)]
	if !ok {
		return true
	}
	if _, member := rule.roles[ParseRole(role)]; !member {
		return false
	}
	return ParsePlan(plan).Rank() >= rule.minPlan.Rank()
}

// Require returns nil when CanUse holds and an error wrapping ErrDenied
// otherwise.
func (t *Table) Require(plan, role, feature string) error {
	if t.CanUse(plan, role, feature) {
		return nil
	}
	return fmt.Errorf("%w: %s (plan=%s, role=%s)", ErrDenied, feature, ParsePlan(plan), ParseRole(role))
}

// ListFeatures returns, sorted, every known feature usable by role on plan.
func (t *Table) ListFeatures(role, plan string) []string {
	features := make([]string, 0, len(t.rules))
	for key := range t.rules {
		if t.CanUse(plan, role, key) {
			features = append(features, key)
		}
	}
	sort.Strings(features)
	return features
}

// Features returns every feature key in the table, sorted.
func (t *Table) Features() []string {
	keys := make([]string, 0, len(t.rules))
	for key := range t.rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
