package detect

import (
	"regexp"
	"strings"

	"github.com/framedesk/order-intake/constants"
)

// vendorSignature holds the per-vendor signal tables the rule chain is
// built from. Adding a vendor means adding one entry here.
type vendorSignature struct {
	vendor string
	// subjectKeywords must be paired with a bodyConfirmation hit; generic
	// "order confirmation" subjects alone would match every vendor.
	subjectKeywords   []string
	bodyConfirmations []string
	// brandPhrases are footer/signature strings that survive forwarding.
	brandPhrases []string
	// domains appearing in forwarded From: lines, References, In-Reply-To
	// and the live From header.
	domains []string
}

var signatures = []vendorSignature{
	{
		vendor:            string(constants.VendorModernOptical),
		subjectKeywords:   []string{"modern optical", "order confirmation"},
		bodyConfirmations: []string{"modernoptical.com", "modern optical international"},
		brandPhrases:      []string{"modern optical international", "www.modernoptical.com"},
		domains:           []string{"modernoptical.com"},
	},
	{
		vendor:            string(constants.VendorSafilo),
		subjectKeywords:   []string{"safilo", "order receipt"},
		bodyConfirmations: []string{"safilo.com", "mysafilo", "safilo group"},
		brandPhrases:      []string{"safilo group", "mysafilo.com"},
		domains:           []string{"safilo.com", "mysafilo.com"},
	},
}

// reForwardedFrom finds an original sender address preserved as plain text
// in a quoted forward ("From: ..." or "Sender: ...", possibly "> "-quoted).
var reForwardedFrom = regexp.MustCompile(`(?im)^[>\s]*(?:From|Sender):.*?([A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,})`)

// buildRules assembles the ordered detection chain. Order matters:
// content-based signals come before header-based ones because forwarding
// rewrites headers but tends to preserve body text.
func buildRules() []rule {
	var rules []rule

	// 1. Subject keyword + body confirmation.
	for _, sig := range signatures {
		sig := sig
		rules = append(rules, rule{
			name:   "subject+body/" + sig.vendor,
			vendor: sig.vendor,
			match: func(s *Signals) bool {
				subject := strings.ToLower(s.Subject)
				if !containsAny(subject, sig.subjectKeywords) {
					return false
				}
				body := strings.ToLower(s.PlainTextBody + "\n" + s.HTMLBody)
				return containsAny(body, sig.bodyConfirmations)
			},
		})
	}

	// 2. Forwarded From:/Sender: line embedded in the quoted body.
	for _, sig := range signatures {
		sig := sig
		rules = append(rules, rule{
			name:   "forwarded-from/" + sig.vendor,
			vendor: sig.vendor,
			match: func(s *Signals) bool {
				for _, body := range []string{s.PlainTextBody, s.HTMLBody} {
					m := reForwardedFrom.FindStringSubmatch(body)
					if m == nil {
						continue
					}
					addr := strings.ToLower(m[1])
					for _, d := range sig.domains {
						if strings.HasSuffix(addr, "@"+d) || strings.HasSuffix(addr, "."+d) {
							return true
						}
					}
				}
				return false
			},
		})
	}

	// 3. Brand-signature phrases anywhere in either body.
	for _, sig := range signatures {
		sig := sig
		rules = append(rules, rule{
			name:   "brand-phrase/" + sig.vendor,
			vendor: sig.vendor,
			match: func(s *Signals) bool {
				body := strings.ToLower(s.PlainTextBody + "\n" + s.HTMLBody)
				return containsAny(body, sig.brandPhrases)
			},
		})
	}

	// 4. References / In-Reply-To headers carrying the vendor's domain.
	for _, sig := range signatures {
		sig := sig
		rules = append(rules, rule{
			name:   "thread-headers/" + sig.vendor,
			vendor: sig.vendor,
			match: func(s *Signals) bool {
				headers := strings.ToLower(s.HeaderReferences + " " + s.HeaderInReplyTo)
				return containsAny(headers, sig.domains)
			},
		})
	}

	return rules
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
