package partials

import (
	"context"

	"lai_landing_go/models"
	"lai_landing_go/services"
	"lai_landing_go/services/i18n"
	"lai_landing_go/templates/components"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// NavBar renders the fixed navigation bar. Every link only triggers a navigation notification.
func NavBar(ctx context.Context, csrfToken string, state models.ViewState) g.Node {
	return Nav(
		Class("fixed w-full bg-white/95 backdrop-blur-sm z-40 shadow-sm"),
		Div(
			Class("container mx-auto px-4 py-4 flex justify-between items-center"),
			components.ActionForm(ActionNavigate, csrfToken, "home",
				Button(
					Type("submit"),
					Class("flex items-center space-x-2 cursor-pointer"),
					components.Icon("lucide:scale", "h-8 w-8 text-red-600", ""),
					Span(Class("text-2xl font-bold"), g.Text(i18n.T(ctx, "brand"))),
				),
			),
			Div(
				Class("hidden md:flex items-center space-x-8"),
				g.Group(g.Map(models.NavSections, func(section models.DisplayRecord) g.Node {
					return components.ActionForm(ActionNavigate, csrfToken, section.Key,
						Button(
							Type("submit"),
							Class("text-gray-600 hover:text-red-600"),
							g.Text(i18n.T(ctx, section.Title)),
						),
					)
				})),
			),
			LoginButton(ctx, csrfToken, state, false),
		),
	)
}

// LoginButton always opens the modal. Its label reflects the session flag.
func LoginButton(ctx context.Context, csrfToken string, state models.ViewState, oob bool) g.Node {
	return Div(
		ID(LoginButtonID),
		oobAttr(oob),
		components.ActionForm(ActionOpenLogin, csrfToken, "",
			Button(
				Type("submit"),
				Class("bg-red-600 text-white px-6 py-2 rounded-full hover:bg-red-700 transition"),
				g.Text(i18n.T(ctx, services.LoginButtonLabelKey(state))),
			),
		),
	)
}
