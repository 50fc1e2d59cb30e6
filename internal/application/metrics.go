package application

import "expvar"

// Published under /debug/vars when debug metrics are enabled.
var (
	metricRegistrations = expvar.NewInt("auth_registrations")
	metricLogins        = expvar.NewInt("auth_logins")
	metricLoginFailures = expvar.NewInt("auth_login_failures")
	metricNotesCreated  = expvar.NewInt("notes_created")
)
