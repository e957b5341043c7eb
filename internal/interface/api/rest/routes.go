package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth    = RouteApiV1 + "/auth"
	RouteSignup  = RouteAuth + "/signup"
	RouteSignin  = RouteAuth + "/signin"
	RouteSignout = RouteAuth + "/signout"
	RouteMe      = RouteAuth + "/me"

	// media
	RouteUpload = RouteApiV1 + "/upload"
	RouteFiles  = RouteApiV1 + "/files"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
