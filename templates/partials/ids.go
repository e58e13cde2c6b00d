package partials

import g "maragu.dev/gomponents"

// Element IDs targeted by out-of-band swaps
const (
	LoginButtonID        = "nav-login"
	ModalRootID          = "login-modal-root"
	NotificationRegionID = "notification-region"
)

// Form actions
const (
	ActionTryAssistant    = "/actions/try"
	ActionSelectService   = "/actions/service"
	ActionActivateFeature = "/actions/feature"
	ActionNavigate        = "/actions/navigate"
	ActionOpenLogin       = "/login/open"
	ActionCancelLogin     = "/login/cancel"
	ActionSubmitLogin     = "/login"
)

func oobAttr(oob bool) g.Node {
	return g.If(oob, g.Attr("hx-swap-oob", "true"))
}
