package service

import (
	"net/url"
	"strings"
)

// LinkBuilder turns a formatted order message into the platform-specific
// outbound deep links. It is a pure string boundary: the message passes
// through unchanged apart from URI encoding.
type LinkBuilder struct {
	countryCode string
	localNumber string
}

// NewLinkBuilder creates a LinkBuilder for the given country calling code
// (without the plus sign, e.g. "33") and local phone number. Spaces in the
// phone number are ignored.
func NewLinkBuilder(countryCode, phone string) *LinkBuilder {
	return &LinkBuilder{
		countryCode: countryCode,
		localNumber: strings.ReplaceAll(phone, " ", ""),
	}
}

// internationalNumber returns the number in international form without the
// plus sign: country code followed by the local number minus its leading
// zero.
func (b *LinkBuilder) internationalNumber() string {
	local := b.localNumber
	if strings.HasPrefix(local, "0") {
		local = local[1:]
	}
	return b.countryCode + local
}

// WhatsAppURL returns the wa.me deep link carrying the message as the text
// query parameter.
func (b *LinkBuilder) WhatsAppURL(message string) string {
	return "https://wa.me/" + b.internationalNumber() + "?text=" + encodeComponent(message)
}

// WhatsAppContactURL returns the bare wa.me link without a prefilled
// message, used by the storefront's contact buttons.
func (b *LinkBuilder) WhatsAppContactURL() string {
	return "https://wa.me/" + b.internationalNumber()
}

// SMSURI returns the messaging intent URI addressed to the local-format
// number with the message as the body parameter. The "?&body=" separator
// is what iOS and Android both tolerate; keep it.
func (b *LinkBuilder) SMSURI(message string) string {
	return "sms:" + b.localNumber + "?&body=" + encodeComponent(message)
}

// encodeComponent percent-encodes a string the way encodeURIComponent does
// for the characters that matter here: spaces become %20, never "+".
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
