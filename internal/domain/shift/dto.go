package shift

import (
	"github.com/shopspring/decimal"

	"github.com/cyberclub/staffhub-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	Date      string  `json:"date"`
	AdminID   *string `json:"admin_id"`
	CashierID *string `json:"cashier_id"`
}

func (r CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a date in YYYY-MM-DD format"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateShiftFiguresRequest carries the closing figures a manager enters
// at the end of a shift. Nil fields are left untouched.
type UpdateShiftFiguresRequest struct {
	Date string `json:"-"`

	AdminID   *string `json:"admin_id"`
	CashierID *string `json:"cashier_id"`

	BarRevenue    *decimal.Decimal `json:"bar_revenue"`
	GameZoneGross *decimal.Decimal `json:"game_zone_gross"`
	GameZoneError *decimal.Decimal `json:"game_zone_error"`
	VRRevenue     *decimal.Decimal `json:"vr_revenue"`
	HookahRevenue *decimal.Decimal `json:"hookah_revenue"`

	HallCleaned         *bool   `json:"hall_cleaned"`
	TechReportFiled     *bool   `json:"tech_report_filed"`
	PublicationLink     *string `json:"publication_link"`
	PublicationVerified *bool   `json:"publication_verified"`

	Shortage     *decimal.Decimal `json:"shortage"`
	ShortagePaid *bool            `json:"shortage_paid"`
}

func (r UpdateShiftFiguresRequest) Validate() error {
	var errs validator.ValidationErrors
	for field, v := range map[string]*decimal.Decimal{
		"bar_revenue":     r.BarRevenue,
		"game_zone_gross": r.GameZoneGross,
		"game_zone_error": r.GameZoneError,
		"vr_revenue":      r.VRRevenue,
		"hookah_revenue":  r.HookahRevenue,
		"shortage":        r.Shortage,
	} {
		if v != nil && v.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must not be negative"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TransitionRequest struct {
	Date   string `json:"-"`
	Status string `json:"status"`
}

func (r TransitionRequest) Validate() error {
	if !Status(r.Status).Valid() {
		return validator.ValidationErrors{{Field: "status", Message: "must be one of not_confirmed, unverified, wait_correction, verified"}}
	}
	return nil
}

type ShiftResponse struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	AdminID   *string `json:"admin_id"`
	CashierID *string `json:"cashier_id"`

	BarRevenue    decimal.Decimal `json:"bar_revenue"`
	GameZoneGross decimal.Decimal `json:"game_zone_gross"`
	GameZoneError decimal.Decimal `json:"game_zone_error"`
	GameZoneNet   decimal.Decimal `json:"game_zone_net"`
	VRRevenue     decimal.Decimal `json:"vr_revenue"`
	HookahRevenue decimal.Decimal `json:"hookah_revenue"`

	HallCleaned         bool    `json:"hall_cleaned"`
	TechReportFiled     bool    `json:"tech_report_filed"`
	PublicationLink     *string `json:"publication_link,omitempty"`
	PublicationVerified bool    `json:"publication_verified"`

	AdminPenalty   decimal.Decimal `json:"admin_penalty"`
	CashierPenalty decimal.Decimal `json:"cashier_penalty"`

	Shortage     decimal.Decimal `json:"shortage"`
	ShortagePaid bool            `json:"shortage_paid"`

	Status string `json:"status"`
}
