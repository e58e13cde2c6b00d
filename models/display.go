package models

// DisplayRecord is one immutable card or list entry on the landing page.
// Title and Description hold i18n keys, Icon holds an iconify name.
type DisplayRecord struct {
	Key         string
	Icon        string
	Title       string
	Description string
	Color       string
}

// ServiceCards back the "Trust your future" grid. Selecting one is never gated.
var ServiceCards = []DisplayRecord{
	{Key: "immigration", Icon: "lucide:building-2", Title: "services.immigration", Description: "services.description", Color: "blue"},
	{Key: "matrimonial", Icon: "lucide:heart", Title: "services.matrimonial", Description: "services.description", Color: "red"},
	{Key: "property", Icon: "lucide:home", Title: "services.property", Description: "services.description", Color: "green"},
	{Key: "personal", Icon: "lucide:user", Title: "services.personal", Description: "services.description", Color: "purple"},
}

// FeatureItems back the key features list. Activating one requires the session flag.
var FeatureItems = []DisplayRecord{
	{Key: "ask", Icon: "lucide:arrow-right", Title: "features.ask"},
	{Key: "insights", Icon: "lucide:notebook", Title: "features.insights"},
	{Key: "advice", Icon: "lucide:clock", Title: "features.advice"},
}

// Benefits back the "why choose us" grid
var Benefits = []DisplayRecord{
	{Key: "economic", Icon: "lucide:dollar-sign", Title: "benefits.economic.title", Description: "benefits.economic.desc"},
	{Key: "time", Icon: "lucide:clock", Title: "benefits.time.title", Description: "benefits.time.desc"},
	{Key: "security", Icon: "lucide:shield", Title: "benefits.security.title", Description: "benefits.security.desc"},
	{Key: "satisfaction", Icon: "lucide:smile", Title: "benefits.satisfaction.title", Description: "benefits.satisfaction.desc"},
}

// NavSections are the navigation bar targets, in display order
var NavSections = []DisplayRecord{
	{Key: "home", Title: "nav.home"},
	{Key: "services", Title: "nav.services"},
	{Key: "about", Title: "nav.about"},
	{Key: "contact", Title: "nav.contact"},
}
