package checkout

import (
	"net/url"

	"kizuna/internal/domain/draft"
	"kizuna/internal/domain/plan"
)

// Links builds the share URL of a page and the QR image pointing at it.
// The QR image is rendered by a third-party service; only its URL is
// built here.
type Links struct {
	ServiceDomain string
	DefaultSlug   string
	QREndpoint    string
	QRSize        string
	QRColor       string
	QRBgColor     string
}

func DefaultLinks() Links {
	return Links{
		ServiceDomain: "kizuna.love",
		DefaultSlug:   "nosso-amor",
		QREndpoint:    "https://api.qrserver.com/v1/create-qr-code/",
		QRSize:        "500x500",
		QRColor:       "050505",
		QRBgColor:     "ffffff",
	}
}

// PageURL is https://www.<requestedDomain> for Infinity drafts with an
// accepted domain and https://<service>/<slug or default> otherwise.
func (l Links) PageURL(d draft.CoupleDraft) string {
	if plan.IsTopTier(d.Plan) && d.RequestedDomain != "" {
		return "https://www." + d.RequestedDomain
	}
	slug := d.Slug
	if slug == "" {
		slug = l.DefaultSlug
	}
	return "https://" + l.ServiceDomain + "/" + slug
}

// QRCodeURL embeds pageURL as the data parameter of the QR endpoint.
func (l Links) QRCodeURL(pageURL string) string {
	return l.QREndpoint +
		"?size=" + l.QRSize +
		"&data=" + url.QueryEscape(pageURL) +
		"&color=" + l.QRColor +
		"&bgcolor=" + l.QRBgColor
}
