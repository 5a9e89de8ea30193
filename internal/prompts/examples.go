package prompts

const classifyExamples = `Input: Subject: Urgent - Complaint about service
Output: {"format": "Email", "intent": "Complaint", "confidence": 0.9}

Input: {"event": "order_created", "data": {"id": "123"}}
Output: {"format": "JSON", "intent": "Unknown", "confidence": 0.85}

Input: Invoice #XYZ - Total $1500
Output: {"format": "Email", "intent": "Invoice", "confidence": 0.8}

Input: This document outlines our privacy policy and GDPR compliance.
Output: {"format": "PDF", "intent": "Regulation", "confidence": 0.85}

Input: Subject: Quote Request for Hardware
Output: {"format": "Email", "intent": "RFQ", "confidence": 0.9}

Input: Possible fraudulent activity detected on account 123
Output: {"format": "Email", "intent": "Fraud Risk", "confidence": 0.75}

Input: {"webhook_event": "new_user", "user_id": "abc"}
Output: {"format": "JSON", "intent": "Unknown", "confidence": 0.85}

Input: This agreement details financial terms. Invoice No. 2023-001. Total: 5000 USD
Output: {"format": "PDF", "intent": "Invoice", "confidence": 0.8}`

const emailExamples = `Email:
From: customer@example.com
Subject: Urgent - Service Down!
Dear Support, our service has been down for 2 hours, this is unacceptable! Fix it now!
Sincerely, An Upset Customer
Output: {"sender": "customer@example.com", "urgency": "High", "issue_request": "Service outage, urgent fix required", "tone": "Escalation"}

Email:
From: info@company.com
Subject: Quick Question
Hi Team, just wondering about the latest update on project X. No rush, just curious.
Thanks, John
Output: {"sender": "info@company.com", "urgency": "Low", "issue_request": "Inquiry about project X update", "tone": "Polite"}

Email:
From: fraudster@evil.net
Subject: You owe us money
Pay us 5000 USD by tomorrow or face consequences. We know where you live.
Output: {"sender": "fraudster@evil.net", "urgency": "High", "issue_request": "Demand for money, threat of harm", "tone": "Threatening"}

Email:
From: hr@corp.com
Subject: Meeting Reminder
Reminder for the all-hands meeting at 2 PM. Please be on time.
Output: {"sender": "hr@corp.com", "urgency": "Medium", "issue_request": "Meeting reminder", "tone": "Neutral"}`

const invoiceExamples = `Content:
Invoice # INV-2023-001
Date: 2023-10-26
Total Due: $1250.00
Item: Consulting, Qty: 1, Price: 1000.00
Item: Training, Qty: 1, Price: 250.00
Output: {"invoice_number": "INV-2023-001", "date": "2023-10-26", "total_amount": 1250.0, "currency": "$", "line_items": [{"description": "Consulting", "quantity": 1, "unit_price": 1000.0, "total": 1000.0}, {"description": "Training", "quantity": 1, "unit_price": 250.0, "total": 250.0}]}

Content:
Bill No. 000123
Date: 2023/11/01
Grand Total: 85.50 EUR
Service Fee: 1 * 85.50 = 85.50
Output: {"invoice_number": "000123", "date": "2023/11/01", "total_amount": 85.5, "currency": "EUR", "line_items": [{"description": "Service Fee", "quantity": 1, "unit_price": 85.5, "total": 85.5}]}`

const policyExamples = `Content:
Privacy Policy (Version 2.0)
Policy ID: PRIV-2023-001
Effective: Jan 1, 2023
This policy outlines our commitment to GDPR compliance and data protection.
Output: {"policy_title": "Privacy Policy (Version 2.0)", "policy_id": "PRIV-2023-001", "keywords_found": ["GDPR"], "summary": "This policy outlines the company's commitment to GDPR compliance and data protection."}

Content:
Drug Approval Guidelines (FDA)
Document Ref: FDA-DRUG-005
This document details the procedures for FDA approval of new pharmaceutical products.
Output: {"policy_title": "Drug Approval Guidelines (FDA)", "policy_id": "FDA-DRUG-005", "keywords_found": ["FDA"], "summary": "This document details the procedures for FDA approval of new pharmaceutical products."}`

var examples = map[Stage]string{
	StageClassify: classifyExamples,
	StageEmail:    emailExamples,
	StageInvoice:  invoiceExamples,
	StagePolicy:   policyExamples,
}

// Examples returns the few-shot examples for an extraction stage.
// Returns ErrInvalidStage if the stage is not recognized.
func Examples(stage Stage) (string, error) {
	text, ok := examples[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}
