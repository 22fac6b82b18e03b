package request

import (
	"travel-backoffice/internal/usecase/commands"
)

type BookingRequest struct {
	UserEmail string `json:"user_email" binding:"required,email"`
	PackageID int    `json:"package_id" binding:"required,min=1"`
	FromDate  string `json:"from_date" binding:"required"`
	ToDate    string `json:"to_date" binding:"required"`
	Status    string `json:"status" binding:"required,oneof=pending confirmed cancelled"`
}

func (r *BookingRequest) ToInput() (commands.BookingInput, error) {
	from, err := ParseDate(r.FromDate)
	if err != nil {
		return commands.BookingInput{}, err
	}
	to, err := ParseDate(r.ToDate)
	if err != nil {
		return commands.BookingInput{}, err
	}
	return commands.BookingInput{
		UserEmail: r.UserEmail,
		PackageID: r.PackageID,
		FromDate:  from,
		ToDate:    to,
		Status:    r.Status,
	}, nil
}
