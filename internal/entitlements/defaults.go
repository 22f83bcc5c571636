package entitlements

// Feature keys known to the marketplace.
const (
	FeatureDirectMessaging    = "direct_messaging"
	FeaturePropertyListing    = "property_listing"
	FeatureFeaturedListings   = "featured_listings"
	FeatureBookingRequests    = "booking_requests"
	FeatureSavedSearches      = "saved_searches"
	FeaturePaymentHistory     = "payment_history"
	FeatureArtisanJobs        = "artisan_jobs"
	FeatureArtisanQuotes      = "artisan_quotes"
	FeatureAnalyticsDashboard = "analytics_dashboard"
	FeatureCSVExport          = "csv_export"
	FeatureUserManagement     = "user_management"
	FeaturePlatformSettings   = "platform_settings"
)

var staff = []Role{RoleAdmin, RoleSuperAdmin}

func withStaff(roles ...Role) []Role {
	return append(roles, staff...)
}

// Default is the process-wide capability table.
var Default = MustNewTable(
	Rule{Feature: FeatureDirectMessaging, MinPlan: PlanPremium, Roles: Roles},
	Rule{Feature: FeaturePropertyListing, MinPlan: PlanFree, Roles: withStaff(RoleLandlord)},
	Rule{Feature: FeatureFeaturedListings, MinPlan: PlanPremium, Roles: withStaff(RoleLandlord)},
	Rule{Feature: FeatureBookingRequests, MinPlan: PlanFree, Roles: withStaff(RoleTenant, RoleLandlord)},
	Rule{Feature: FeatureSavedSearches, MinPlan: PlanFree, Roles: []Role{RoleTenant}},
	Rule{Feature: FeaturePaymentHistory, MinPlan: PlanFree, Roles: withStaff(RoleTenant, RoleLandlord)},
	Rule{Feature: FeatureArtisanJobs, MinPlan: PlanFree, Roles: withStaff(RoleArtisan)},
	Rule{Feature: FeatureArtisanQuotes, MinPlan: PlanPremium, Roles: []Role{RoleArtisan}},
	Rule{Feature: FeatureAnalyticsDashboard, MinPlan: PlanPremium, Roles: withStaff(RoleLandlord, RoleArtisan)},
	Rule{Feature: FeatureCSVExport, MinPlan: PlanPremium, Roles: withStaff(RoleLandlord)},
	Rule{Feature: FeatureUserManagement, MinPlan: PlanSystem, Roles: staff},
	Rule{Feature: FeaturePlatformSettings, MinPlan: PlanSystem, Roles: []Role{RoleSuperAdmin}},
)

// CanUse calls Default.CanUse.
func CanUse(plan, role, feature string) bool {
	return Default.CanUse(plan, role, feature)
}

// Require calls Default.Require.
func Require(plan, role, feature string) error {
	return Default.Require(plan, role, feature)
}

// ListFeatures calls Default.ListFeatures.
func ListFeatures(role, plan string) []string {
	return Default.ListFeatures(role, plan)
}
