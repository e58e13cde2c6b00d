package partials

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// NotificationRegion lists placeholder notifications. app.js alerts the
// ones present on page load; htmx responses alert through the notify event.
func NotificationRegion(messages []string, oob bool) g.Node {
	return Div(
		ID(NotificationRegionID),
		oobAttr(oob),
		Class("fixed bottom-6 right-6 z-50 space-y-2"),
		g.Attr("role", "status"),
		g.Attr("aria-live", "polite"),
		g.Group(g.Map(messages, func(message string) g.Node {
			return Div(
				Class("lai-notification bg-gray-900 text-white px-4 py-3 rounded-xl shadow-lg"),
				g.Attr("data-lai-notify", ""),
				g.Text(message),
			)
		})),
	)
}
