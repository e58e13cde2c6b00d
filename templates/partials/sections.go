package partials

import (
	"context"
	"strings"

	"lai_landing_go/models"
	"lai_landing_go/services/i18n"
	"lai_landing_go/templates/components"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ServicesSection renders the "Trust your future" grid. The posted label is
// the card title in the visitor's language.
func ServicesSection(ctx context.Context, csrfToken string) g.Node {
	return Section(
		ID("services"),
		Class("py-20 bg-gray-50"),
		Div(
			Class("container mx-auto px-4"),
			Div(
				Class("text-center mb-16"),
				H2(Class("text-4xl font-bold mb-4"), g.Text(i18n.T(ctx, "services.title"))),
				P(Class("text-gray-600 max-w-2xl mx-auto"), g.Text(i18n.T(ctx, "services.subtitle"))),
			),
			Div(
				Class("grid md:grid-cols-2 lg:grid-cols-4 gap-8"),
				g.Group(g.Map(models.ServiceCards, func(card models.DisplayRecord) g.Node {
					title := i18n.T(ctx, card.Title)
					return components.ActionForm(ActionSelectService, csrfToken, title,
						Button(
							Type("submit"),
							Class("w-full h-full text-left bg-white p-6 rounded-xl shadow-lg hover:shadow-xl transition cursor-pointer"),
							components.Icon(card.Icon, "h-12 w-12 text-"+card.Color+"-500 mb-4", ""),
							H3(Class("text-xl font-semibold mb-2"), g.Text(title)),
							P(Class("text-gray-600"), g.Text(i18n.T(ctx, card.Description, map[string]any{"name": strings.ToLower(title)}))),
						),
					)
				})),
			),
		),
	)
}

// FeaturesSection renders the key features list next to the assistant illustration
func FeaturesSection(ctx context.Context, csrfToken string) g.Node {
	return Section(
		Class("py-20 bg-white"),
		Div(
			Class("container mx-auto px-4"),
			Div(
				Class("flex flex-col md:flex-row items-center justify-between gap-8"),
				Div(
					Class("flex-1"),
					Div(
						Class("grid gap-4"),
						g.Group(g.Map(models.FeatureItems, func(feature models.DisplayRecord) g.Node {
							text := i18n.T(ctx, feature.Title)
							return components.ActionForm(ActionActivateFeature, csrfToken, text,
								Button(
									Type("submit"),
									Class("flex items-center space-x-4 bg-gray-50 p-6 rounded-xl hover:bg-gray-100 transition w-full"),
									components.Icon(feature.Icon, "h-6 w-6 text-red-600", ""),
									Span(Class("font-semibold"), g.Text(text)),
								),
							)
						})),
					),
				),
				Div(
					Class("flex-1 flex justify-center"),
					components.Icon("lucide:notebook", "h-64 w-64 text-red-600", ""),
				),
			),
		),
	)
}

// InfoSection is static copy
func InfoSection(ctx context.Context) g.Node {
	return Section(
		ID("about"),
		Class("py-20 bg-gray-50"),
		Div(
			Class("container mx-auto px-4"),
			Div(
				Class("max-w-3xl mx-auto text-center"),
				H2(Class("text-4xl font-bold mb-6"), g.Text(i18n.T(ctx, "info.title"))),
				P(Class("text-gray-600 text-lg"), g.Text(i18n.T(ctx, "info.body"))),
			),
		),
	)
}

// BenefitsSection renders the "why choose us" grid
func BenefitsSection(ctx context.Context) g.Node {
	return Section(
		Class("py-20 bg-white"),
		Div(
			Class("container mx-auto px-4"),
			Div(
				Class("grid md:grid-cols-2 lg:grid-cols-4 gap-8"),
				g.Group(g.Map(models.Benefits, func(benefit models.DisplayRecord) g.Node {
					return Div(
						Class("text-center"),
						Div(
							Class("inline-block p-4 bg-red-100 rounded-full mb-4"),
							components.Icon(benefit.Icon, "h-8 w-8 text-red-600", ""),
						),
						H3(Class("text-xl font-semibold mb-2"), g.Text(i18n.T(ctx, benefit.Title))),
						P(Class("text-gray-600"), g.Text(i18n.T(ctx, benefit.Description))),
					)
				})),
			),
		),
	)
}

// PageFooter renders the copyright line
func PageFooter(ctx context.Context, year int) g.Node {
	return Footer(
		Class("py-6 bg-gray-50"),
		Div(
			Class("container mx-auto px-4 text-center text-gray-600"),
			P(g.Text(i18n.T(ctx, "footer.copyright", map[string]any{"year": year}))),
		),
	)
}
