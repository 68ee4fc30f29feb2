package webpath

const (
	Api = "/api/v1"

	ApiLogin = Api + "/auth/login/microsoft"
	ApiMe    = Api + "/auth/me"

	ApiEvents = Api + "/events"
	// fixed event paths must be registered before ApiEvent captures :id
	ApiEventsCalendar        = ApiEvents + "/calendar"
	ApiEventsRecommendations = ApiEvents + "/recommendations"
	ApiEvent                 = ApiEvents + "/:id"
	ApiEventRegister         = ApiEvent + "/register"
	ApiEventFeedback         = ApiEvent + "/feedback"

	ApiProfile = Api + "/profile"

	ApiOrg          = Api + "/org"
	ApiOrgDashboard = ApiOrg + "/dashboard"
	ApiOrgEvents    = ApiOrg + "/events"
	ApiOrgExport    = ApiOrgEvents + "/:id/registrations"
	ApiOrgTeam      = ApiOrg + "/team"
	ApiOrgMember    = ApiOrgTeam + "/:userId"
	ApiOrgUpload    = ApiOrg + "/uploads"

	ApiAdminRoles = Api + "/admin/roles"
	ApiAdminUsers = Api + "/admin/users"

	Uploads = "/uploads"
)
