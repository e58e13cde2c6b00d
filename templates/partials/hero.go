package partials

import (
	"context"

	"lai_landing_go/services/i18n"
	"lai_landing_go/templates/components"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// HeroSection renders the banner. A hero image that fails to load is left to the browser.
func HeroSection(ctx context.Context, csrfToken, heroImageURL string) g.Node {
	return Section(
		Class("relative h-screen"),
		Div(
			Class("absolute inset-0 bg-gradient-to-r from-gray-900/90 to-gray-900/80"),
			Img(
				Src(heroImageURL),
				Alt(i18n.T(ctx, "hero.image_alt")),
				Class("w-full h-full object-cover mix-blend-overlay"),
			),
		),
		Div(
			Class("relative container mx-auto px-4 h-full flex items-center"),
			Div(
				Class("max-w-3xl"),
				H1(Class("text-5xl md:text-6xl font-bold text-white mb-6"), g.Text(i18n.T(ctx, "hero.title"))),
				P(Class("text-xl text-gray-200 mb-8"), g.Text(i18n.T(ctx, "hero.subtitle"))),
				components.ActionForm(ActionTryAssistant, csrfToken, "",
					Button(
						Type("submit"),
						Class("bg-red-600 text-white px-8 py-4 rounded-full text-lg font-semibold hover:bg-red-700 transition"),
						g.Text(i18n.T(ctx, "hero.cta")),
					),
				),
			),
		),
	)
}
