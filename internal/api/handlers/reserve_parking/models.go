package reserve_parking

import (
	"time"

	reserveParking "github.com/altosdelparque/ADP-BookingService/internal/usecase/reserve_parking"
)

// ReserveParkingRequest HTTP request model.
type ReserveParkingRequest struct {
	ParkingID     int64  `json:"parkingId"`
	UserID        int64  `json:"userId"`
	VehicleTypeID int64  `json:"vehicleTypeId"`
	StartTime     string `json:"startTime"` // RFC3339
	EndTime       string `json:"endTime"`   // RFC3339
}

// ReserveParkingResponse HTTP response model.
type ReserveParkingResponse struct {
	ReservationID int64  `json:"reservationId"`
	ParkingID     int64  `json:"parkingId"`
	UserID        int64  `json:"userId"`
	VehicleTypeID int64  `json:"vehicleTypeId"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	DurationDays  int    `json:"durationDays"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *ReserveParkingRequest) ToUseCaseRequest() (*reserveParking.Request, error) {
	start, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &reserveParking.Request{
		ParkingID:     r.ParkingID,
		UserID:        r.UserID,
		VehicleTypeID: r.VehicleTypeID,
		StartTime:     start,
		EndTime:       end,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *reserveParking.Response) *ReserveParkingResponse {
	return &ReserveParkingResponse{
		ReservationID: resp.ReservationID,
		ParkingID:     resp.ParkingID,
		UserID:        resp.UserID,
		VehicleTypeID: resp.VehicleTypeID,
		StartTime:     resp.StartTime.Format(time.RFC3339),
		EndTime:       resp.EndTime.Format(time.RFC3339),
		DurationDays:  resp.DurationDays,
	}
}
