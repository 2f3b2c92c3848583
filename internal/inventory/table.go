package inventory

// Route prefixes for the discovered sections.
const (
	ProductPrefix   = "/product"
	CaseStudyPrefix = "/case-studies"
)

// FallbackProducts is used when the product content directory cannot be scanned.
var FallbackProducts = []string{
	"gift-cards",
	"loyalty",
	"promotions",
	"referrals",
}

// FallbackCaseStudies is used when the case-study params cannot be loaded.
var FallbackCaseStudies = []string{
	"coffee-franchise",
	"fitness-club",
	"retail-chain",
}

// StaticPages is the hand-authored table of root-level, core and legal routes.
var StaticPages = []Page{
	{
		Path:     "",
		Category: CategoryMain,
		Copy: map[string]Copy{
			"es": {
				Title:       "Inicio",
				Description: "Plataforma de fidelización, promociones y referidos para marcas que venden en tienda y en línea.",
			},
			"en": {
				Title:       "Home",
				Description: "Loyalty, promotions and referral platform for brands selling in store and online.",
			},
		},
	},
	{
		Path:            ProductPrefix,
		Category:        CategoryCore,
		Priority:        priority(0.85),
		ChangeFrequency: ChangeWeekly,
		Copy: map[string]Copy{
			"es": {Title: "Productos", Description: "Resumen de todos los módulos de la plataforma."},
			"en": {Title: "Products", Description: "Overview of every platform module."},
		},
	},
	{
		Path:     CaseStudyPrefix,
		Category: CategoryCore,
		Copy: map[string]Copy{
			"es": {Title: "Casos de éxito", Description: "Resultados medibles de clientes en retail, restauración y servicios."},
			"en": {Title: "Case Studies", Description: "Measured customer results across retail, food service and services."},
		},
	},
	{
		Path:     "/pricing",
		Category: CategoryCore,
		Copy: map[string]Copy{
			"es": {Title: "Precios", Description: "Planes mensuales sin permanencia y con implementación incluida."},
			"en": {Title: "Pricing", Description: "Monthly plans with no lock-in and onboarding included."},
		},
	},
	{
		Path:     "/about",
		Category: CategoryCore,
		Copy: map[string]Copy{
			"es": {Title: "Nosotros", Description: "El equipo y la historia detrás de la plataforma."},
			"en": {Title: "About", Description: "The team and the story behind the platform."},
		},
	},
	{
		Path:            "/contact",
		Category:        CategoryCore,
		Priority:        priority(0.6),
		ChangeFrequency: ChangeYearly,
		Copy: map[string]Copy{
			"es": {Title: "Contacto", Description: "Agenda una demo o escribe al equipo comercial."},
			"en": {Title: "Contact", Description: "Book a demo or reach the sales team."},
		},
	},
	{
		Path:     "/privacy",
		Category: CategoryLegal,
		Copy: map[string]Copy{
			"es": {Title: "Aviso de privacidad", Description: "Cómo tratamos los datos personales."},
			"en": {Title: "Privacy Policy", Description: "How personal data is processed."},
		},
	},
	{
		Path:     "/terms",
		Category: CategoryLegal,
		Copy: map[string]Copy{
			"es": {Title: "Términos y condiciones", Description: "Condiciones de uso del sitio y del servicio."},
			"en": {Title: "Terms of Service", Description: "Terms governing the site and the service."},
		},
	},
	{
		Path:     "/cookies",
		Category: CategoryLegal,
		Copy: map[string]Copy{
			"es": {Title: "Política de cookies", Description: "Qué cookies usamos y para qué."},
			"en": {Title: "Cookie Policy", Description: "Which cookies are used and why."},
		},
	},
}

// ProductCopy is the per-locale copy of known product slugs. Discovered slugs
// without an entry get a derived title.
var ProductCopy = map[string]map[string]Copy{
	"loyalty": {
		"es": {Title: "Programa de lealtad", Description: "Puntos, niveles y recompensas configurables por sucursal."},
		"en": {Title: "Loyalty Program", Description: "Points, tiers and rewards configurable per location."},
	},
	"gift-cards": {
		"es": {Title: "Tarjetas de regalo", Description: "Tarjetas físicas y digitales con saldo recargable."},
		"en": {Title: "Gift Cards", Description: "Physical and digital cards with reloadable balance."},
	},
	"promotions": {
		"es": {Title: "Promociones", Description: "Cupones y códigos promocionales con reglas de canje."},
		"en": {Title: "Promotions", Description: "Coupons and promo codes with redemption rules."},
	},
	"referrals": {
		"es": {Title: "Referidos", Description: "Recompensas para clientes que recomiendan tu marca."},
		"en": {Title: "Referrals", Description: "Rewards for customers who recommend your brand."},
	},
}

// CaseStudyCopy is the per-locale copy of known case-study slugs.
var CaseStudyCopy = map[string]map[string]Copy{
	"coffee-franchise": {
		"es": {Title: "Franquicia de cafeterías", Description: "+32% de visitas recurrentes en seis meses."},
		"en": {Title: "Coffee Franchise", Description: "+32% repeat visits in six months."},
	},
	"fitness-club": {
		"es": {Title: "Club deportivo", Description: "Reducción del 18% en cancelaciones de membresía."},
		"en": {Title: "Fitness Club", Description: "18% fewer membership cancellations."},
	},
	"retail-chain": {
		"es": {Title: "Cadena minorista", Description: "2,4 millones de canjes procesados en la primera temporada."},
		"en": {Title: "Retail Chain", Description: "2.4 million redemptions processed in the first season."},
	},
}
