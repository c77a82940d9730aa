package api

type BookOfficeRequest struct {
	Date      string `json:"date"` // M/D/YYYY
	Slot      int    `json:"slot"` // 1-12
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	DOB       string `json:"dob"`
	NPI       string `json:"npi"`
}

type BookImagingRequest struct {
	Date      string `json:"date"`
	Slot      int    `json:"slot"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	DOB       string `json:"dob"`
	Service   string `json:"service"` // catscan, ultrasound, xray
}

type CancelRequest struct {
	Date      string `json:"date"`
	Slot      int    `json:"slot"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	DOB       string `json:"dob"`
}

type RescheduleRequest struct {
	Date      string `json:"date"`
	Slot      int    `json:"slot"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	DOB       string `json:"dob"`
	NewSlot   int    `json:"new_slot"`
}

type PatientResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	DOB       string `json:"dob"`
}

type ProviderResponse struct {
	Kind      string `json:"kind"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Location  string `json:"location"`
	County    string `json:"county"`
	Specialty string `json:"specialty,omitempty"`
	NPI       string `json:"npi,omitempty"`
	Rate      int    `json:"rate"`
}

type AppointmentResponse struct {
	Kind     string           `json:"kind"`
	Date     string           `json:"date"`
	Slot     int              `json:"slot"`
	Time     string           `json:"time"`
	Patient  PatientResponse  `json:"patient"`
	Provider ProviderResponse `json:"provider"`
	Room     string           `json:"room,omitempty"`
}

type CreditResponse struct {
	Provider ProviderResponse `json:"provider"`
	Visits   int              `json:"visits"`
	Amount   int              `json:"amount"`
}

type StatementResponse struct {
	Patient PatientResponse `json:"patient"`
	Visits  int             `json:"visits"`
	Amount  int             `json:"amount"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
