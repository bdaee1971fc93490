package usecases

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/chartwell/andy/internal/domain/entities"
)

// Mode selects how the composer renders its output.
type Mode string

const (
	ModeSupportAnswer Mode = "support_answer"
	ModeEmailDraft    Mode = "email_draft"
)

// Caps for the no-intent synthesis fallback.
const (
	synthesisJoinLimit    = 800
	synthesisSummaryLimit = 320
)

// IntentRule is one entry of the composer's decision list: a keyword
// predicate plus the canned replies for each branch. A rule with an empty
// reply for a branch is transparent in that branch, so per-branch intent
// lists can share one priority order.
type IntentRule struct {
	Name           string
	Keywords       []string
	NoContextReply string
	ContextReply   string
	NextStep       string
}

// Composer is a rule-based intent classifier plus template filler, not a
// generative model. Same question, same chunks, same mode - same answer,
// always. The rule list is configuration owned by the instance;
// ReplaceRules swaps it atomically for hot reload.
type Composer struct {
	mu    sync.RWMutex
	rules []IntentRule
}

// NewComposer creates a Composer. A nil rule list falls back to the
// built-in defaults.
func NewComposer(rules []IntentRule) *Composer {
	if rules == nil {
		rules = DefaultIntentRules()
	}
	return &Composer{rules: rules}
}

// ReplaceRules swaps the intent rule list. Concurrent Compose calls
// observe either the old or the new list, never a mix.
func (c *Composer) ReplaceRules(rules []IntentRule) {
	if rules == nil {
		rules = DefaultIntentRules()
	}
	c.mu.Lock()
	c.rules = rules
	c.mu.Unlock()
}

// Compose produces the final answer text for a question and its retrieved
// context. Rules are evaluated top to bottom and the first match wins;
// order matters, since a question can match several groups.
func (c *Composer) Compose(question string, chunks []entities.ContextChunk, mode Mode) string {
	if mode == ModeEmailDraft {
		return emailDraft(chunks)
	}

	c.mu.RLock()
	rules := c.rules
	c.mu.RUnlock()

	q := normalize(question)

	if len(chunks) == 0 {
		for _, r := range rules {
			if r.NoContextReply != "" && matchesAny(q, r.Keywords) {
				return r.NoContextReply
			}
		}
		return genericNoContextReply
	}

	for _, r := range rules {
		if r.ContextReply != "" && matchesAny(q, r.Keywords) {
			return r.ContextReply + r.NextStep
		}
	}
	return synthesize(chunks)
}

// synthesize is the no-intent fallback when context was found: a capped
// concatenation of snippets prefixed with the source titles.
func synthesize(chunks []entities.ContextChunk) string {
	snippets := make([]string, len(chunks))
	titles := make([]string, len(chunks))
	for i, ch := range chunks {
		snippets[i] = ch.Snippet
		titles[i] = ch.Title
	}
	combined := truncateRunes(strings.Join(snippets, " "), synthesisJoinLimit)

	summary := strings.TrimSpace(truncateRunes(combined, synthesisSummaryLimit))
	if len([]rune(combined)) > synthesisSummaryLimit {
		summary += "…"
	}

	return fmt.Sprintf("Based on %s:\n\n%s\n\nIf you need the full details or something specific (e.g. warranty, lead time, quote), ask and I’ll narrow it down. — Andy",
		strings.Join(titles, ", "), summary)
}

// emailDraft ignores intent classification and lays the chunks out as
// numbered source blocks inside a fixed draft-email frame.
func emailDraft(chunks []entities.ContextChunk) string {
	var contextText string
	if len(chunks) == 0 {
		contextText = "No internal documents were found for this query.\n\n"
	} else {
		blocks := make([]string, len(chunks))
		for i, ch := range chunks {
			blocks[i] = fmt.Sprintf("Source %d - %s:\n%s\n", i+1, ch.Title, ch.Snippet)
		}
		contextText = strings.Join(blocks, "\n")
	}
	return "Here is a draft email based on the provided context:\n\n" +
		contextText +
		"\nPlease review, edit, and personalize this draft before sending. — Andy"
}

var whitespace = regexp.MustCompile(`\s+`)

func normalize(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(strings.ToLower(s), " "))
}

func matchesAny(normalized string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(normalized, kw) {
			return true
		}
	}
	return false
}

// EmailDraftRequest is the input for the structured support email
// templates (distinct from ModeEmailDraft, which drafts from retrieved
// context).
type EmailDraftRequest struct {
	Type         string `json:"type"`
	CustomerName string `json:"customerName"`
	ProjectID    string `json:"projectId,omitempty"`
	MainFindings string `json:"mainFindings,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// EmailDraft is a ready-to-edit outbound email.
type EmailDraft struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Email draft template types.
const (
	EmailTypeInspectionSummary = "inspection_summary"
	EmailTypeQuoteFollowUp     = "quote_follow_up"
)

// DraftEmail fills one of the fixed support email templates.
func (c *Composer) DraftEmail(req EmailDraftRequest) (EmailDraft, error) {
	if req.CustomerName == "" {
		return EmailDraft{}, fmt.Errorf("%w: customerName is required", entities.ErrInvalidInput)
	}

	projectSuffix := ""
	if req.ProjectID != "" {
		projectSuffix = fmt.Sprintf(" (Project %s)", req.ProjectID)
	}

	switch req.Type {
	case EmailTypeInspectionSummary:
		findings := req.MainFindings
		if findings == "" {
			findings = "- [Add key findings here]"
		}
		return EmailDraft{
			Subject: fmt.Sprintf("Inspection summary for %s%s", req.CustomerName, projectSuffix),
			Body: joinLines(
				fmt.Sprintf("Hi %s,", req.CustomerName),
				"",
				"Thank you for the opportunity to inspect your roof for a potential solar installation.",
				"",
				"Summary of inspection:",
				findings,
				"",
				"Next steps:",
				"- Review the attached proposal and confirm if you would like to proceed.",
				"- Let us know if you have any questions about system size, performance, or warranty terms.",
				"",
				req.Notes,
				"Kind regards,",
				"[Your name]",
				"[Your company]",
			),
		}, nil

	case EmailTypeQuoteFollowUp:
		findings := req.MainFindings
		if findings == "" {
			findings = "The proposed system is designed to balance yield, roof constraints, and budget, with an expected payback period and ROI that suit your profile."
		}
		return EmailDraft{
			Subject: fmt.Sprintf("Following up on your solar quote%s", projectSuffix),
			Body: joinLines(
				fmt.Sprintf("Hi %s,", req.CustomerName),
				"",
				"I wanted to follow up on the solar proposal we shared with you.",
				"",
				findings,
				"",
				"If you have any questions about system sizing, expected energy yield, or financing options, I’d be happy to help.",
				"",
				"Please let me know if you’d like to adjust the design or schedule a call to walk through the proposal.",
				"",
				req.Notes,
				"Kind regards,",
				"[Your name]",
				"[Your company]",
			),
		}, nil

	default:
		return EmailDraft{}, fmt.Errorf("%w: unknown email draft type %q", entities.ErrInvalidInput, req.Type)
	}
}

// joinLines joins the non-empty lines, dropping blank optional fields.
func joinLines(lines ...string) string {
	kept := lines[:0:0]
	for _, l := range lines {
		if l != "" {
			kept = append(kept, l)
		}
	}
	return strings.Join(kept, "\n")
}
