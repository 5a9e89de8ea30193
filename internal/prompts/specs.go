package prompts

const classifySpec = `Respond with a JSON object matching this exact structure:

{
  "format": "<Email|JSON|PDF|Unknown>",
  "intent": "<RFQ|Complaint|Invoice|Regulation|Fraud Risk|Unknown>",
  "confidence": 0.0
}

Field constraints:
- format: The detected content format. Use Unknown only when the content
  gives no structural signal at all.
- intent: The business intent of the content. Use Unknown for very short
  or ambiguous content.
- confidence: Number between 0.0 and 1.0 reflecting how clearly the
  content signals its format and intent.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Classify only from the content provided, never from assumptions about
  where it came from`

const emailSpec = `Respond with a JSON object matching this exact structure:

{
  "sender": "<address or name>",
  "urgency": "<High|Medium|Low>",
  "issue_request": "<concise description>",
  "tone": "<Escalation|Polite|Threatening|Neutral|Unknown>"
}

Field constraints:
- sender: The email address or name of the sender as it appears in the
  content. Use Unknown when no sender is identifiable.
- urgency: How time-sensitive the issue or request is.
- issue_request: One concise sentence describing the main issue or
  request in the email.
- tone: The overall tone of the message.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Extract only what the email states, do not speculate`

const invoiceSpec = `Respond with a JSON object matching this exact structure:

{
  "invoice_number": "<identifier>",
  "date": "<date as written>",
  "total_amount": 0.0,
  "currency": "<symbol or code>",
  "line_items": [
    {
      "description": "<item description>",
      "quantity": 0,
      "unit_price": 0.0,
      "total": 0.0
    }
  ]
}

Field constraints:
- invoice_number: The invoice or bill identifier exactly as written.
- date: The invoice date in the format used by the document.
- total_amount: The grand total as a number, without currency markers.
- currency: The currency symbol or code used by the document.
- line_items: One entry per billed item. Empty array when the document
  lists no individual items.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Only respond when the content is an invoice; extract values exactly as
  they appear in the text`

const policySpec = `Respond with a JSON object matching this exact structure:

{
  "policy_title": "<title>",
  "policy_id": "<identifier>",
  "keywords_found": ["<keyword>"],
  "summary": "<brief summary>"
}

Field constraints:
- policy_title: The document title as written.
- policy_id: The policy identifier or document reference as written.
- keywords_found: Regulatory keywords present in the text (e.g., GDPR,
  FDA, HIPAA, CCPA, PCI DSS). Empty array when none appear.
- summary: One or two sentences summarizing what the policy covers.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Only respond when the content is a policy document; report only
  keywords that actually appear in the text`

var specs = map[Stage]string{
	StageClassify: classifySpec,
	StageEmail:    emailSpec,
	StageInvoice:  invoiceSpec,
	StagePolicy:   policySpec,
}

// Spec returns the output specification for an extraction stage.
// Specifications define the expected response format and behavioral constraints.
// Returns ErrInvalidStage if the stage is not recognized.
func Spec(stage Stage) (string, error) {
	text, ok := specs[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}
