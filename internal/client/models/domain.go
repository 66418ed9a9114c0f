package models

// Domain identifies one feature area whose working document is kept per
// profile. The set is closed; unknown domains are rejected at the edges.
type Domain string

const (
	DomainCalendar Domain = "calendar"
	DomainLeads    Domain = "leads"
	DomainEmail    Domain = "email"
	DomainBlog     Domain = "blog"
	DomainResearch Domain = "research"
	DomainStrategy Domain = "strategy"
)

// Domains returns every known feature domain in a stable order.
func Domains() []Domain {
	return []Domain{
		DomainCalendar,
		DomainLeads,
		DomainEmail,
		DomainBlog,
		DomainResearch,
		DomainStrategy,
	}
}

// Valid reports whether d is one of the known feature domains.
func (d Domain) Valid() bool {
	switch d {
	case DomainCalendar, DomainLeads, DomainEmail, DomainBlog, DomainResearch, DomainStrategy:
		return true
	}
	return false
}
