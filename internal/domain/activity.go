package domain

import "time"

type ActivityOutcome string

const (
	OutcomePromiseToPay    ActivityOutcome = "PROMISE_TO_PAY"
	OutcomeSpokeToCustomer ActivityOutcome = "SPOKE_TO_CUSTOMER"
	OutcomePaymentReceived ActivityOutcome = "PAYMENT_RECEIVED"
	OutcomeNoAnswer        ActivityOutcome = "NO_ANSWER"
	OutcomeLeftMessage     ActivityOutcome = "LEFT_MESSAGE"
	OutcomeDispute         ActivityOutcome = "DISPUTE"
	OutcomeWrongNumber     ActivityOutcome = "WRONG_NUMBER"
	OutcomeEmailSent       ActivityOutcome = "EMAIL_SENT"
	OutcomeOther           ActivityOutcome = "OTHER"
)

func (o ActivityOutcome) Valid() bool {
	switch o {
	case OutcomePromiseToPay, OutcomeSpokeToCustomer, OutcomePaymentReceived, OutcomeNoAnswer,
		OutcomeLeftMessage, OutcomeDispute, OutcomeWrongNumber, OutcomeEmailSent, OutcomeOther:
		return true
	}
	return false
}

// IsSuccessfulContact indica se o resultado conta como contato efetivo
func (o ActivityOutcome) IsSuccessfulContact() bool {
	switch o {
	case OutcomeSpokeToCustomer, OutcomePromiseToPay, OutcomePaymentReceived:
		return true
	}
	return false
}

type ActivityType string

const (
	ActivityTypePhoneCall ActivityType = "PHONE_CALL"
	ActivityTypeEmail     ActivityType = "EMAIL"
	ActivityTypeLetter    ActivityType = "LETTER"
	ActivityTypeMeeting   ActivityType = "MEETING"
	ActivityTypeNote      ActivityType = "NOTE"
)

type Activity struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customer_id"`
	InvoiceID    *string         `json:"invoice_id"`
	ActivityDate time.Time       `json:"activity_date"`
	Type         ActivityType    `json:"activity_type"`
	Outcome      ActivityOutcome `json:"outcome"`
	PerformedBy  string          `json:"performed_by"`
	Notes        *string         `json:"notes"`
	CreatedAt    time.Time       `json:"created_at"`
}
