package partials

import (
	"context"

	"lai_landing_go/services/i18n"
	"lai_landing_go/templates/components"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// LoginModal renders the modal root, with the dialog inside only while open.
// The email and password fields are never read by the server, and the form
// skips browser validation so any input (or none) is accepted.
func LoginModal(ctx context.Context, csrfToken string, open, oob bool) g.Node {
	return Div(
		ID(ModalRootID),
		oobAttr(oob),
		g.If(open, Div(
			Class("fixed inset-0 bg-black/50 flex items-center justify-center z-50"),
			g.Attr("role", "dialog"),
			g.Attr("aria-modal", "true"),
			g.Attr("aria-labelledby", "login-modal-title"),
			Div(
				Class("bg-white p-8 rounded-xl max-w-md w-full mx-4"),
				H2(ID("login-modal-title"), Class("text-2xl font-bold mb-4"), g.Text(i18n.T(ctx, "login.title"))),
				Form(
					Method("post"),
					Action(ActionSubmitLogin),
					g.Attr("hx-post", ActionSubmitLogin),
					g.Attr("hx-swap", "none"),
					g.Attr("novalidate", ""),
					Class("space-y-4"),
					components.HiddenInput("_csrf", csrfToken),
					Input(
						Type("email"),
						Name("email"),
						Placeholder(i18n.T(ctx, "login.email")),
						g.Attr("aria-label", i18n.T(ctx, "login.email")),
						Class("w-full p-2 border rounded"),
					),
					Input(
						Type("password"),
						Name("password"),
						Placeholder(i18n.T(ctx, "login.password")),
						g.Attr("aria-label", i18n.T(ctx, "login.password")),
						Class("w-full p-2 border rounded"),
					),
					Div(
						Class("flex justify-end space-x-4"),
						Button(
							Type("submit"),
							g.Attr("formaction", ActionCancelLogin),
							g.Attr("hx-post", ActionCancelLogin),
							Class("px-4 py-2 text-gray-600 hover:text-gray-800"),
							g.Text(i18n.T(ctx, "login.cancel")),
						),
						Button(
							Type("submit"),
							Class("px-4 py-2 bg-red-600 text-white rounded hover:bg-red-700"),
							g.Text(i18n.T(ctx, "login.submit")),
						),
					),
				),
			),
		)),
	)
}
