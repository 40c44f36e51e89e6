package mapper

import (
	"viwahaa-be/internal/entity"
	"viwahaa-be/internal/model"
)

type BookingMapper struct{}

func NewBookingMapper() *BookingMapper {
	return &BookingMapper{}
}

func (m *BookingMapper) ToEntity(b *model.BookedPackage) *entity.Booking {
	if b == nil {
		return nil
	}
	e := &entity.Booking{
		Id:            b.Id,
		CustomerId:    b.CustomerId,
		Package:       b.Package,
		PayType:       entity.PayType(b.PayType),
		Amount:        b.Amount,
		InstallAmount: b.InstallAmount,
		Balance:       b.Balance,
		Income:        b.Income,
		ReciptImg:     b.ReciptImg,
		ExpDate:       b.ExpDate,
		PackagePlan:   b.PackagePlan,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
	if b.Customer != nil {
		e.CustomerFirstName = b.Customer.FirstName
		e.CustomerLastName = b.Customer.LastName
		e.CustomerContactNo = b.Customer.ContactNo
		e.CustomerWhatsapp = b.Customer.WhatsappNo
	}
	return e
}

func (m *BookingMapper) ToModel(b *entity.Booking) *model.BookedPackage {
	if b == nil {
		return nil
	}
	return &model.BookedPackage{
		Id:            b.Id,
		CustomerId:    b.CustomerId,
		Package:       b.Package,
		PayType:       string(b.PayType),
		Amount:        b.Amount,
		InstallAmount: b.InstallAmount,
		Balance:       b.Balance,
		Income:        b.Income,
		ReciptImg:     b.ReciptImg,
		ExpDate:       b.ExpDate,
		PackagePlan:   b.PackagePlan,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
