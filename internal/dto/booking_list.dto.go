package dto

type BookingListDTO struct {
	ID        string `json:"id"`
	Treatment string `json:"treatment"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Paid      bool   `json:"paid"`
}
