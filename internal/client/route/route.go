// Package route decides which view the client shows. Resolve is a pure
// function of the requested view, profile availability and authentication,
// so every navigation goes through the same gate.
package route

// View names a client screen.
type View string

const (
	ViewLanding    View = "landing"
	ViewAuth       View = "auth"
	ViewOnboarding View = "onboarding"
	ViewDashboard  View = "dashboard"
	ViewCalendar   View = "calendar"
	ViewLeads      View = "leads"
	ViewEmail      View = "email"
	ViewBlog       View = "blog"
	ViewResearch   View = "research"
	ViewStrategy   View = "strategy"
)

// allowedWithoutProfile lists the views reachable before any profile exists.
var allowedWithoutProfile = map[View]bool{
	ViewLanding:    true,
	ViewAuth:       true,
	ViewOnboarding: true,
}

// Resolve returns the view to show. With at least one profile present every
// view is reachable and an empty request lands on the dashboard. Without a
// profile only the landing, auth and onboarding views are allowed; anything
// else redirects to onboarding when signed in, and to landing otherwise.
func Resolve(requested View, hasProfile, isAuthenticated bool) View {
	if hasProfile {
		if requested == "" {
			return ViewDashboard
		}
		return requested
	}

	if allowedWithoutProfile[requested] {
		return requested
	}

	if isAuthenticated {
		return ViewOnboarding
	}
	return ViewLanding
}
