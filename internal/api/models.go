package api

// SubmissionResponse is the one response contract every form endpoint speaks.
type SubmissionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Details string `json:"details,omitempty"`
}

// HealthResponse mirrors the original health payload.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// legacyBookingRequest accepts both the uniform schema and the field names
// the old per-destination forms posted (Ctno, nofTravellers, veh). JSON
// decoding is case-insensitive, so Name/Email land on the embedded struct.
type legacyBookingRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Cab         string `json:"cab"`
	Travellers  string `json:"travellers"`
	BookingDate string `json:"bookingDate"`
	Message     string `json:"message"`

	Ctno          string `json:"Ctno"`
	NofTravellers string `json:"nofTravellers"`
	Veh           string `json:"veh"`
}
