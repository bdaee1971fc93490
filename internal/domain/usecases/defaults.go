package usecases

// Built-in retrieval and intent configuration. These are the defaults a
// deployment starts with; both tables can be overridden from a config
// file and hot-swapped at runtime via ReplaceSynonyms / ReplaceRules.

// genericNoContextReply is the fallback when no intent matched and
// retrieval found nothing.
const genericNoContextReply = "I couldn’t find a precise match in our docs. Try asking about **warranties**, **lead times**, **quotes**, **inspections**, **contact details**, or **solar sizing**. For anything urgent or very specific, the team on the **Contact** page can help. — Andy"

// nextStepQuote is shared: lead-time and payment answers both steer the
// customer toward the quote forms.
const nextStepQuote = "\n\n**Next step:** Use the quote forms on the Home page or Contact to request a formal quote."

// quotesAndPaymentReply answers both quote and payment questions when
// context was retrieved; the two intents have always shared it, and the
// quote rule carries the payment wording so finance questions mixed with
// later topics still land here.
const quotesAndPaymentReply = "**Quotes & payment:**\n\n• Quotes **valid 30 days**; usually include supply and install unless marked otherwise.\n• Payment: **30%** on acceptance, **60%** on delivery, **10%** on completion.\n• Finance is available through partners—ask when you get a quote.\n• Scope changes need a **variation order** before extra work. — Andy"

// DefaultSynonyms returns the built-in synonym table.
func DefaultSynonyms() SynonymTable {
	return SynonymTable{
		"warranty":    {"guarantee", "cover", "covered", "claim", "claims"},
		"quote":       {"quotation", "quote", "price", "pricing", "cost", "estimate"},
		"delivery":    {"lead", "time", "when", "arrive", "dispatch", "shipping"},
		"install":     {"installation", "install", "fitting", "fitted", "mounting"},
		"inspection":  {"survey", "site visit", "assessment", "check"},
		"contact":     {"phone", "email", "address", "office", "call", "reach"},
		"payment":     {"pay", "finance", "deposit", "invoice", "eft"},
		"solar":       {"panels", "pv", "inverter", "battery", "system", "roof"},
		"maintenance": {"service", "servicing", "clean", "repair", "fault"},
		"complaint":   {"complaints", "issue", "problem", "escalate", "unhappy"},
	}
}

// DefaultIntentRules returns the built-in decision list, in priority
// order. Order is part of the contract: a question like "quote for
// warranty" answers as warranty because warranty is checked first.
func DefaultIntentRules() []IntentRule {
	return []IntentRule{
		{
			Name:           "warranty",
			Keywords:       []string{"warranty", "guarantee", "cover", "claim"},
			NoContextReply: "I don't have the latest warranty doc to hand. Our panels typically have a **25-year performance warranty** and **12-year product warranty**; inverters **10 years** (extendable to 20). Workmanship is **2 years**. I’d confirm the exact terms for your product with the team. — Andy",
			ContextReply:   "Here’s what I found:\n\n• **Panels:** 25-year linear performance warranty, 12-year product warranty.\n• **Inverter:** 10 years (extendable to 20).\n• **Workmanship:** 2 years.\n\nClaims need proof of purchase and installation certificate. — Andy",
			NextStep:       "\n\n**Next step:** Request your certificate from the team or ask for a callback.",
		},
		{
			Name:           "lead-time",
			Keywords:       []string{"lead time", "delivery", "when", "how long", "arrive", "dispatch"},
			NoContextReply: "Lead times vary by product: usually **10–14 days** for sheets and fasteners, up to **21 days** for some sealants. Express options are available. For your exact order I’d check stock and get you a date. Need a specific product? — Andy",
			ContextReply:   "**Lead times:**\n\n• Roofing sheets & fasteners: **10–14** working days.\n• Sealants & specialist items: **14–21** days.\n• Bulk (500+ units): can be **3–4 weeks**.\n\nExpress delivery is available at extra cost. I can suggest you check stock on the portal or ask the team for your specific order. — Andy",
			NextStep:       nextStepQuote,
		},
		{
			Name:           "quote",
			Keywords:       []string{"quote", "quotation", "price", "cost", "estimate", "how much", "payment", "finance"},
			NoContextReply: "Quotes are **valid 30 days** and normally include supply and install. For a tailored quote we’d need site details and system size. You can request one on our **Home** or **Contact** page—or I can note that you’d like a call from sales. — Andy",
			ContextReply:   quotesAndPaymentReply,
			NextStep:       nextStepQuote,
		},
		{
			Name:           "inspection",
			Keywords:       []string{"inspection", "survey", "site visit", "assessment"},
			NoContextReply: "We do a **site inspection** before final design—roof condition, shading, access. You’ll get a summary within **2 working days**. No obligation to proceed. Want me to suggest you request one via the Contact page? — Andy",
			ContextReply:   "We do a **site inspection** before finalising the design. It covers roof condition, orientation, tilt, shading, and access. You’ll get a summary within **2 working days**. No obligation to proceed. Asbestos or structural concerns may require a specialist report. — Andy",
			NextStep:       "\n\n**Next step:** Request a site inspection via the Contact page.",
		},
		{
			// Context-only: without retrieved guidelines there is nothing
			// specific to say, so the rule is transparent in that branch.
			Name:         "installation",
			Keywords:     []string{"install", "installation", "mounting", "roof"},
			ContextReply: "Based on our guidelines: roof prep first, then panels. We use approved mounting systems; tilt **15–40°** for optimal yield. Shading is assessed and included in the quote. A **certified installer** must sign off. If you’d like a quote or inspection, use the Home or Contact page. — Andy",
		},
		{
			Name:           "contact",
			Keywords:       []string{"contact", "phone", "email", "address", "call", "office", "reach"},
			NoContextReply: "You can find our **Gauteng and Western Cape** contact details on the **Contact** page (phone and address). For quotes and support, use the website or call your nearest branch. I’m here for quick questions; for complex or urgent matters the team will help. — Andy",
			ContextReply:   "Our **Gauteng and Western Cape** offices are on the **Contact** page with phone and address. Use the website forms or call your nearest branch for quotes and support. — Andy",
			NextStep:       "\n\n**Next step:** Open the Contact page for phone numbers and addresses.",
		},
		{
			Name:           "greeting",
			Keywords:       []string{"hello", "hi", "hey", "good morning", "good afternoon"},
			NoContextReply: "Hi! I’m **Andy**, your support assistant. You can ask me about installations, warranties, lead times, quotes, inspections, payment, maintenance, or how to contact us. What would you like to know? — Andy",
		},
		{
			Name:           "farewell",
			Keywords:       []string{"thanks", "thank you", "cheers", "bye", "goodbye"},
			NoContextReply: "You’re welcome! If you need anything else, just ask. Have a good one! — Andy",
		},
		{
			Name:           "human-handoff",
			Keywords:       []string{"human", "agent", "person", "speak to someone", "real person"},
			NoContextReply: "I can’t transfer you to a person from here, but you’ll get a quick response if you **call your nearest branch** or use the **Contact** page. Mention what you asked about and they’ll pick it up. — Andy",
		},
		{
			Name:           "solar-sizing",
			Keywords:       []string{"solar", "panel", "inverter", "battery", "system", "sizing"},
			NoContextReply: "We offer **grid-tied, hybrid, and off-grid** solar; typical residential sizes are **3–20 kW**. Use the **Solar Sizing** tool on this site for an indicative yield. Battery backup is optional—we can factor in load-shedding. For a formal quote we’d need a site inspection. Want more detail on warranties or lead times? — Andy",
			ContextReply:   "We offer **grid-tied, hybrid, and off-grid** solar; typical residential **3–20 kW**. Use the **Solar Sizing** tool on this site for an indicative yield. Battery backup is optional. Site inspection is needed for a final design. — Andy",
		},
		{
			Name:           "maintenance",
			Keywords:       []string{"maintenance", "service", "repair", "fault", "cleaning"},
			NoContextReply: "Panels need **minimal maintenance**—occasional cleaning. We recommend an **annual check** of connections and inverter. If production drops, book a service visit; inverter faults are often covered under warranty. Need warranty or contact details? — Andy",
			ContextReply:   "Panels need **minimal maintenance** (occasional cleaning). We recommend an **annual check** of connections and inverter. If production drops, book a service visit; keep your installation certificate for warranty claims. — Andy",
		},
		{
			Name:           "payment",
			Keywords:       []string{"payment", "pay", "finance", "deposit", "invoice"},
			NoContextReply: "Standard terms: **30% on acceptance, 60% on delivery, 10% on completion**. We accept EFT and card; **finance** is available through partners—ask when you get a quote. Invoices are sent by email. — Andy",
			ContextReply:   quotesAndPaymentReply,
			NextStep:       nextStepQuote,
		},
		{
			Name:           "complaint",
			Keywords:       []string{"complaint", "issue", "problem", "escalate", "unhappy"},
			NoContextReply: "Sorry to hear that. Please **contact your project manager or branch** first. For escalation, use the **Contact** page with your project reference—we aim to respond within **2 working days**. For warranty claims, include photos and your installation certificate. — Andy",
			ContextReply:   "Contact your project manager or branch first. To escalate: use the Contact page with your **project reference**; we aim to respond within **2 working days**. For defects, include photos and your installation certificate. — Andy",
			NextStep:       "\n\n**Next step:** Email or call with your project reference for a formal response.",
		},
		{
			// Context-only, same reasoning as installation.
			Name:         "safety",
			Keywords:     []string{"safety", "compliance", "asbestos", "regulation"},
			ContextReply: "We comply with local building and electrical regulations. Asbestos must be assessed by a licensed contractor; we don’t disturb suspected asbestos. Structural changes need engineer sign-off. Fire and isolation requirements are in the design. — Andy",
		},
	}
}
