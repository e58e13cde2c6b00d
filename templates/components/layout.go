package components

import (
	"context"

	"lai_landing_go/middleware"
	"lai_landing_go/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	htmxScript     = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"
	iconifyScript  = "https://code.iconify.design/3/3.1.1/iconify.min.js"
	tailwindScript = "https://cdn.tailwindcss.com"
)

// Layout renders the document shell: SEO head, scripts carrying the CSP nonce, and body content
func Layout(ctx context.Context, seo *models.SEO, body ...g.Node) g.Node {
	nonce := middleware.GetNonce(ctx)

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang(seo.Locale),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(seo.Title)),
				Meta(Name("description"), Content(seo.Description)),
				g.If(seo.Keywords != "", Meta(Name("keywords"), Content(seo.Keywords))),
				g.If(seo.NoIndex, Meta(Name("robots"), Content("noindex"))),
				g.If(seo.Canonical != "", Link(Rel("canonical"), Href(seo.Canonical))),
				g.Group(g.Map(seo.AltLocales, func(locale string) g.Node {
					return Link(Rel("alternate"), g.Attr("hreflang", locale), Href(seo.AlternateURL(locale)))
				})),

				Meta(g.Attr("property", "og:title"), Content(seo.GetOGTitle())),
				Meta(g.Attr("property", "og:description"), Content(seo.GetOGDesc())),
				Meta(g.Attr("property", "og:type"), Content(seo.OGType)),
				g.If(seo.OGImage != "", Meta(g.Attr("property", "og:image"), Content(seo.OGImage))),
				Meta(Name("twitter:card"), Content(seo.TwitterCard)),

				Link(Rel("icon"), Type("image/svg+xml"), Href(middleware.AssetURL("images/favicon.svg"))),
				Link(Rel("stylesheet"), Href(middleware.AssetURL("css/app.css"))),

				Script(Src(tailwindScript), g.Attr("nonce", nonce)),
				Script(Src(htmxScript), g.Attr("nonce", nonce), g.Attr("defer", "")),
				Script(Src(iconifyScript), g.Attr("nonce", nonce), g.Attr("defer", "")),
				Script(Src(middleware.AssetURL("js/app.js")), g.Attr("nonce", nonce), g.Attr("defer", "")),
			),
			Body(
				Class("min-h-screen bg-white"),
				g.Group(body),
			),
		),
	})
}
