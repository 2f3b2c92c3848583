package manifest

// Contact is the contact block of the manifest.
type Contact struct {
	Email   string `mapstructure:"email"`
	Phone   string `mapstructure:"phone"`
	Address string `mapstructure:"address"`
	Demo    string `mapstructure:"demo"`
}

// Boilerplate is the fixed prose of the manifest.
type Boilerplate struct {
	SiteName       string   `mapstructure:"site_name"`
	Summary        string   `mapstructure:"summary"`
	Guarantee      string   `mapstructure:"guarantee"`
	AllowedUses    []string `mapstructure:"allowed_uses"`
	DisallowedUses []string `mapstructure:"disallowed_uses"`
	Attribution    string   `mapstructure:"attribution"`
	Results        []string `mapstructure:"results"`
	Contact        Contact  `mapstructure:"contact"`
}

// DefaultBoilerplate returns the prose shipped with the generator.
func DefaultBoilerplate() Boilerplate {
	return Boilerplate{
		SiteName: "Fidelia",
		Summary: "Fidelia is a loyalty, promotions and referral platform for brick-and-mortar " +
			"and online brands in Latin America and Spain. This file describes the public " +
			"pages of the site for AI assistants and crawlers.",
		Guarantee: "If a customer does not see a measurable increase in repeat purchases within " +
			"the first 90 days, the next three months of service are free.",
		AllowedUses: []string{
			"Summarizing public product, pricing and case-study pages.",
			"Answering questions about features, integrations and availability.",
			"Quoting short passages with attribution and a link to the source page.",
		},
		DisallowedUses: []string{
			"Training models on the full text of the site without written permission.",
			"Presenting case-study figures without their source page.",
			"Generating pricing quotes or contractual terms on behalf of the company.",
		},
		Attribution: "Cite \"Fidelia\" and link to the exact page the information came from.",
		Results: []string{
			"+28% average repeat-purchase rate after six months.",
			"12 million rewards redeemed across all customers.",
			"450+ brands and 9,000+ store locations.",
		},
		Contact: Contact{
			Email: "hola@fidelia.example",
			Phone: "+52 55 0000 0000",
			Demo:  "/contact",
		},
	}
}

// Merge returns b with every empty field filled from defaults.
func (b Boilerplate) Merge(defaults Boilerplate) Boilerplate {
	out := b
	out.SiteName = firstNonEmpty(b.SiteName, defaults.SiteName)
	out.Summary = firstNonEmpty(b.Summary, defaults.Summary)
	out.Guarantee = firstNonEmpty(b.Guarantee, defaults.Guarantee)
	out.Attribution = firstNonEmpty(b.Attribution, defaults.Attribution)
	if len(b.AllowedUses) == 0 {
		out.AllowedUses = defaults.AllowedUses
	}
	if len(b.DisallowedUses) == 0 {
		out.DisallowedUses = defaults.DisallowedUses
	}
	if len(b.Results) == 0 {
		out.Results = defaults.Results
	}
	out.Contact.Email = firstNonEmpty(b.Contact.Email, defaults.Contact.Email)
	out.Contact.Phone = firstNonEmpty(b.Contact.Phone, defaults.Contact.Phone)
	out.Contact.Address = firstNonEmpty(b.Contact.Address, defaults.Contact.Address)
	out.Contact.Demo = firstNonEmpty(b.Contact.Demo, defaults.Contact.Demo)
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
