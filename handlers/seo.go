package handlers

import (
	"context"
	"net/url"

	"lai_landing_go/models"
	"lai_landing_go/services/i18n"
)

const heroOGImageWidth = "1200"

// landingSEO builds the landing page metadata in the request's language
func landingSEO(ctx context.Context, appURL, heroImageURL string) *models.SEO {
	locale := i18n.GetLocale(ctx)

	alternates := make([]string, 0, len(i18n.Supported))
	for _, lang := range i18n.Supported {
		if lang != locale {
			alternates = append(alternates, lang)
		}
	}

	seo := models.DefaultSEO(i18n.T(ctx, "meta.title"), i18n.T(ctx, "meta.description")).
		WithCanonical(appURL + "/").
		WithOGImage(ogImage(heroImageURL)).
		WithLocale(locale, alternates...)
	seo.Keywords = i18n.T(ctx, "meta.keywords")
	return seo
}

// ogImage asks Unsplash for a share-sized crop; other hosts are used as is
func ogImage(heroImageURL string) string {
	if heroImageURL == "" {
		return ""
	}
	u, err := url.Parse(heroImageURL)
	if err != nil || u.Host != "images.unsplash.com" {
		return heroImageURL
	}
	q := u.Query()
	q.Set("w", heroOGImageWidth)
	u.RawQuery = q.Encode()
	return u.String()
}
