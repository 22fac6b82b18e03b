package response

import (
	"time"

	"travel-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type PackageResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	BasePrice string `json:"base_price"`
}

func FromPackageViews(views []*queries.PackageView) []*PackageResponse {
	res := make([]*PackageResponse, len(views))
	for i, v := range views {
		res[i] = &PackageResponse{ID: v.ID, Name: v.Name, BasePrice: Money(v.BasePrice)}
	}
	return res
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromUserViews(views []*queries.UserView) ([]*UserResponse, error) {
	res := make([]*UserResponse, 0, len(views))
	for _, v := range views {
		var u UserResponse
		if err := copyInto(&u, v); err != nil {
			return nil, err
		}
		res = append(res, &u)
	}
	return res, nil
}
