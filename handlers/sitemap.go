package handlers

import (
	"encoding/xml"
	"fmt"
	"net/http"

	"lai_landing_go/config"
	"lai_landing_go/services/i18n"

	"github.com/labstack/echo/v4"
)

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

type SitemapURLSet struct {
	XMLName string       `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// GetSitemapHandler lists the landing page once per supported language
func GetSitemapHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)
	baseURL := cfg.AppURL

	urls := []SitemapURL{
		{Loc: baseURL + "/", ChangeFreq: "weekly", Priority: 1.0},
	}
	for _, lang := range i18n.Supported {
		urls = append(urls, SitemapURL{
			Loc:        baseURL + "/?lang=" + lang,
			ChangeFreq: "weekly",
			Priority:   0.8,
		})
	}

	urlSet := SitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXML)
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}

	encoder := xml.NewEncoder(c.Response().Writer)
	encoder.Indent("", "  ")
	return encoder.Encode(urlSet)
}

// GetRobotsHandler allows crawling the page but not the form endpoints
func GetRobotsHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /actions/\nDisallow: /login\n\nSitemap: %s/sitemap.xml\n", cfg.AppURL)
	return c.String(http.StatusOK, body)
}
