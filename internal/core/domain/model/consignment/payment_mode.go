package consignment

import (
	"fmt"

	"hubops/internal/pkg/errs"
)

// PaymentMode tells who pays for the shipment and when.
type PaymentMode string

const (
	PaymentCash   PaymentMode = "CASH"
	PaymentCredit PaymentMode = "CREDIT"
	PaymentCOD    PaymentMode = "COD"
	PaymentToPay  PaymentMode = "TO_PAY"
)

func (p PaymentMode) Validate() error {
	switch p {
	case PaymentCash, PaymentCredit, PaymentCOD, PaymentToPay:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("paymentMode", fmt.Errorf("%q is not a known payment mode", string(p)))
	}
}
