package pages

import (
	"context"

	"lai_landing_go/templates/components"
	"lai_landing_go/templates/partials"

	"github.com/a-h/templ"
	. "maragu.dev/gomponents/html"
)

// Landing renders the full page. The login modal is part of the markup
// whenever the view state says it is open, so it survives a plain form post.
func Landing(ctx context.Context, vm LandingViewModel) templ.Component {
	return components.Component(
		components.Layout(ctx, vm.SEO,
			partials.NavBar(ctx, vm.CSRFToken, vm.State),
			Main(
				partials.HeroSection(ctx, vm.CSRFToken, vm.HeroImageURL),
				partials.ServicesSection(ctx, vm.CSRFToken),
				partials.FeaturesSection(ctx, vm.CSRFToken),
				partials.InfoSection(ctx),
				partials.BenefitsSection(ctx),
			),
			partials.PageFooter(ctx, vm.Year),
			partials.LoginModal(ctx, vm.CSRFToken, vm.State.ShowLoginModal, false),
			partials.NotificationRegion(vm.Notifications, false),
		),
	)
}

// ActionResponse renders the out-of-band fragments that follow an
// interaction: the login button label, the modal root and a cleared
// notification region.
func ActionResponse(ctx context.Context, vm ActionViewModel) templ.Component {
	return components.Component(
		partials.LoginButton(ctx, vm.CSRFToken, vm.State, true),
		partials.LoginModal(ctx, vm.CSRFToken, vm.State.ShowLoginModal, true),
		partials.NotificationRegion(nil, true),
	)
}
