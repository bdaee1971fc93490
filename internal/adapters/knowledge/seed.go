package knowledge

import (
	"context"
	"errors"
	"fmt"

	"github.com/chartwell/andy/internal/adapters/docstore"
	"github.com/chartwell/andy/internal/domain/entities"
	"github.com/chartwell/andy/internal/domain/ports"
)

// SeedDocuments returns the starter FAQ/SOP corpus so a fresh deployment
// can answer questions before anyone has uploaded documents.
func SeedDocuments() []entities.Document {
	return []entities.Document{
		{
			ID:      "faq-warranty",
			Title:   "Product warranty",
			DocType: "faq",
			Content: "Solar panels come with a 25-year linear performance warranty and 12-year product warranty. Inverter warranty is 10 years extendable to 20. Workmanship on installation is covered for 2 years. Claims must be submitted with proof of purchase and installation certificate.",
		},
		{
			ID:      "faq-lead-times",
			Title:   "Lead times and delivery",
			DocType: "faq",
			Content: "Standard lead time for roofing sheets and fasteners is 10–14 working days. Sealants and specialist items can take 14–21 days. Express delivery is available for urgent orders at extra cost. Bulk orders over 500 units may require 3–4 weeks. Check stock levels on the portal before placing orders.",
		},
		{
			ID:      "faq-installation",
			Title:   "Installation guidelines",
			DocType: "sop",
			Content: "Roof preparation must be completed before panel installation. Use only approved mounting systems and follow spacing and torque specs. Maximum tilt 15–40 degrees for optimal yield. Shading from trees or adjacent structures must be assessed; we provide a shading report with each quote. All installations must be signed off by a certified installer.",
		},
		{
			ID:      "faq-quotes",
			Title:   "Quotes and proposals",
			DocType: "faq",
			Content: "Quotes are valid for 30 days. They include supply and install unless marked supply only. Payment terms are 30% on acceptance, 60% on delivery, 10% on completion. Finance options are available through our partners. For changes to scope, a variation order is required before extra work is carried out.",
		},
		{
			ID:      "faq-inspection",
			Title:   "Site inspection",
			DocType: "sop",
			Content: "We carry out a site inspection before finalising the design. Inspection covers roof condition, orientation, tilt, shading, and access. Asbestos or structural concerns are flagged and may require a specialist report. You will receive an inspection summary within 2 working days. No obligation to proceed after inspection.",
		},
		{
			ID:      "faq-safety",
			Title:   "Safety and compliance",
			DocType: "sop",
			Content: "All work complies with local building and electrical regulations. Asbestos-containing materials must be assessed by a licensed contractor before any work; we do not disturb suspected asbestos. Structural changes require engineer sign-off. Fire safety and isolation requirements are included in the design.",
		},
		{
			ID:      "faq-contact",
			Title:   "Contact and offices",
			DocType: "faq",
			Content: "Chartwell Roofing has offices in Gauteng and Western Cape. Visit the Contact page for phone numbers and addresses. For quotes and support use the website forms or call your nearest branch. Emergency or after-hours issues: leave a message and we respond within one business day.",
		},
		{
			ID:      "faq-solar-systems",
			Title:   "Solar system types and sizing",
			DocType: "faq",
			Content: "We offer grid-tied, hybrid, and off-grid solar solutions. System sizes typically range from 3 kW to 20 kW for residential; commercial systems are quoted individually. Use our Solar Sizing tool on the website to get an indicative yield. Battery backup is optional; we recommend sizing based on your usage and load-shedding needs.",
		},
		{
			ID:      "faq-maintenance",
			Title:   "Maintenance and servicing",
			DocType: "faq",
			Content: "Solar panels need minimal maintenance: occasional cleaning of dust and debris. We recommend an annual check of connections and inverter. Monitoring is available via app for supported inverters. If production drops noticeably, book a service visit. Inverter faults are often covered under warranty—keep your installation certificate.",
		},
		{
			ID:      "faq-payment",
			Title:   "Payment and finance",
			DocType: "faq",
			Content: "Payment terms: 30% on acceptance, 60% on delivery, 10% on completion. We accept EFT and card. Finance is available through partner providers; ask for a quote with finance. Deposits are non-refundable once materials are ordered. Invoices are sent by email; payment reminders at 7 and 14 days.",
		},
		{
			ID:      "faq-complaints",
			Title:   "Complaints and escalation",
			DocType: "faq",
			Content: "If you are not satisfied, contact your project manager or branch first. Escalation: email support with your project reference and we aim to respond within 2 working days. For warranty or defect claims, include photos and your installation certificate. We follow a formal complaints process and will keep you updated.",
		},
	}
}

// SeedStore appends the seed corpus to a store. Documents that already
// exist (a durable store restarted) are skipped, not errors.
func SeedStore(ctx context.Context, store ports.DocumentStore) error {
	for _, doc := range SeedDocuments() {
		err := store.Append(ctx, doc)
		if errors.Is(err, docstore.ErrDuplicateID) {
			continue
		}
		if err != nil {
			return fmt.Errorf("seeding document %s: %w", doc.ID, err)
		}
	}
	return nil
}
