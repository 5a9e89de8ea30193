// Package actions dispatches the simulated side effects triggered by format
// agents: CRM escalation, risk alerts, compliance flags, and closure
// logging. Every dispatch records an action entry in the trace store.
package actions

import "fmt"

// Type identifies an action kind. The string values double as the trace
// stage suffix: action_triggered:{Type}.
type Type string

// Action kinds.
const (
	TypeCRMEscalation     Type = "CRM_Escalation"
	TypeRiskAlert         Type = "Risk_Alert"
	TypeComplianceFlag    Type = "Compliance_Flag"
	TypeSummaryGeneration Type = "Summary_Generation"
	TypeLogAndClose       Type = "Log_and_Close"
	TypeAnomalyAlert      Type = "Anomaly_Alert"
)

// Stage returns the trace stage label for an action of this type.
func (t Type) Stage() string {
	return "action_triggered:" + string(t)
}

// Result is the status reported by a dispatched action. The simulated call
// always succeeds; a real integration would surface its outcome here.
type Result struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Record is the trace payload persisted for each dispatched action. It is
// never mutated after being written.
type Record struct {
	Payload any    `json:"payload"`
	Result  Result `json:"result"`
}

func successResult(t Type) Result {
	return Result{
		Status:  "success",
		Message: fmt.Sprintf("%s triggered successfully", t),
	}
}
