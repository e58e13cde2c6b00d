package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Icon renders an iconify icon such as "lucide:scale". Decorative unless a label is given.
func Icon(name, class, ariaLabel string) g.Node {
	if ariaLabel != "" {
		return Span(
			Class("iconify inline-block "+class),
			g.Attr("data-icon", name),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}
	return Span(
		Class("iconify inline-block "+class),
		g.Attr("data-icon", name),
		g.Attr("aria-hidden", "true"),
	)
}

// ActionForm wraps an interaction in a form that posts normally without
// JavaScript and through htmx otherwise. Responses only carry out-of-band
// fragments, so the form itself is never swapped.
func ActionForm(action, csrfToken, label string, children ...g.Node) g.Node {
	return Form(
		Method("post"),
		Action(action),
		g.Attr("hx-post", action),
		g.Attr("hx-swap", "none"),
		HiddenInput("_csrf", csrfToken),
		g.If(label != "", HiddenInput("name", label)),
		g.Group(children),
	)
}

// HiddenInput renders <input type="hidden">
func HiddenInput(name, value string) g.Node {
	return Input(Type("hidden"), Name(name), Value(value))
}
